package environment

import (
	"context"
	"fmt"
	"image"
	"os"

	"golang.org/x/image/draw"

	"planet-showcase/internal/download"
	"planet-showcase/internal/hdr"
	"planet-showcase/internal/logger"
)

// Options says where the panorama comes from and how to turn it into light.
type Options struct {
	URL       string
	Exposure  float32
	Intensity float32
	MaxWidth  int
}

// Result is a loaded environment: a tone-mapped equirectangular panorama for the background and
// the ambient color it contributes. Err is set when loading failed.
type Result struct {
	Panorama *image.RGBA
	Ambient  [3]float32
	Source   string
	Err      error
}

// Loader fetches and decodes the panorama off the render thread.
type Loader struct {
	Fetcher *download.Fetcher
	Log     *logger.Logger
}

// NewLoader returns a loader caching downloads under cacheDir.
func NewLoader(cacheDir string, log *logger.Logger) *Loader {
	return &Loader{Fetcher: download.New(cacheDir), Log: log}
}

// Start loads in a goroutine and delivers exactly one Result on the returned channel.
// The channel is buffered so the loader never blocks on a reader that went away.
func (l *Loader) Start(ctx context.Context, opts Options) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		res := l.Load(ctx, opts)
		if res.Err != nil && l.Log != nil {
			l.Log.Logf("environment: %v", res.Err)
		}
		ch <- res
	}()
	return ch
}

// Load fetches (or reuses the cached copy of) opts.URL, decodes it and builds the Result.
func (l *Loader) Load(ctx context.Context, opts Options) Result {
	path, cached, err := l.Fetcher.Fetch(ctx, opts.URL)
	if err != nil {
		return Result{Err: err}
	}
	if l.Log != nil {
		if cached {
			l.Log.Logf("environment: using cached %s", path)
		} else {
			l.Log.Logf("environment: downloaded %s", path)
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return Result{Err: fmt.Errorf("environment: %w", err)}
	}
	defer f.Close()
	m, err := hdr.Decode(f)
	if err != nil {
		return Result{Err: fmt.Errorf("environment: %s: %w", path, err)}
	}
	return Build(m, opts, path)
}

// Build derives the ambient color and the (possibly downscaled) panorama from a decoded image.
func Build(m *hdr.Image, opts Options, source string) Result {
	exposure := opts.Exposure
	if exposure <= 0 {
		exposure = 1
	}
	intensity := max(opts.Intensity, 0)
	avg := m.Average()
	res := Result{Source: source}
	for i := range avg {
		res.Ambient[i] = avg[i] * exposure * intensity
	}
	pano := m.ToneMap(exposure)
	if opts.MaxWidth > 0 && pano.Bounds().Dx() > opts.MaxWidth {
		pano = downscale(pano, opts.MaxWidth)
	}
	res.Panorama = pano
	return res
}

func downscale(src *image.RGBA, width int) *image.RGBA {
	b := src.Bounds()
	height := max(b.Dy()*width/b.Dx(), 1)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
