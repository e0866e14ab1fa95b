package assets

import (
	"context"
	"fmt"
	"image"
	"os"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/sync/errgroup"

	// Register WebP so planet maps can ship as .webp.
	_ "golang.org/x/image/webp"
)

// maxParallel bounds concurrent decodes.
const maxParallel = 4

// Spec describes one image to load.
type Spec struct {
	Path       string
	MaxSize    int     // longest side in pixels; 0 keeps the original size
	Brightness float64 // -1..1; 0 leaves the image untouched
}

// Result is one decoded image, or the error that prevented it.
type Result struct {
	Path  string
	Image image.Image
	Err   error
}

// Load decodes a single image and applies Spec's resize and brightness.
func Load(s Spec) (image.Image, error) {
	if _, err := os.Stat(s.Path); err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	img, err := imgio.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", s.Path, err)
	}
	return Prepare(img, s), nil
}

// Prepare applies the resize cap and brightness adjustment of s to img.
func Prepare(img image.Image, s Spec) image.Image {
	if s.MaxSize > 0 {
		b := img.Bounds()
		w, h := b.Dx(), b.Dy()
		if w > s.MaxSize || h > s.MaxSize {
			nw, nh := fit(w, h, s.MaxSize)
			img = transform.Resize(img, nw, nh, transform.Linear)
		}
	}
	if s.Brightness != 0 {
		img = adjust.Brightness(img, clamp(s.Brightness, -1, 1))
	}
	return img
}

// LoadAll decodes specs in parallel. Results are in spec order; a failed file sets its Err and
// never aborts the others. Only ctx cancellation is returned as an error.
func LoadAll(ctx context.Context, specs []Spec) ([]Result, error) {
	out := make([]Result, len(specs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for i, s := range specs {
		i, s := i, s
		out[i].Path = s.Path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i].Image, out[i].Err = Load(s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, fmt.Errorf("assets: %w", err)
	}
	return out, nil
}

// fit scales (w, h) so the longer side equals limit, keeping the aspect ratio.
func fit(w, h, limit int) (int, int) {
	if w >= h {
		return limit, max(h*limit/w, 1)
	}
	return max(w*limit/h, 1), limit
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
