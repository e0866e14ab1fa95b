package assets

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoadAllKeepsOrderAndPerFileErrors(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	c := filepath.Join(dir, "c.png")
	writePNG(t, a, 4, 2, color.RGBA{255, 0, 0, 255})
	writePNG(t, c, 2, 2, color.RGBA{0, 0, 255, 255})

	res, err := LoadAll(context.Background(), []Spec{
		{Path: a},
		{Path: filepath.Join(dir, "missing.png")},
		{Path: c},
	})
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(res) != 3 {
		t.Fatalf("len = %d", len(res))
	}
	if res[0].Err != nil || res[0].Image.Bounds().Dx() != 4 {
		t.Errorf("a = %+v", res[0])
	}
	if res[1].Err == nil || res[1].Image != nil {
		t.Errorf("missing file should fail alone: %+v", res[1])
	}
	if res[2].Err != nil || res[2].Path != c {
		t.Errorf("c = %+v", res[2])
	}
}

func TestPrepareResizeCap(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 100))
	out := Prepare(img, Spec{MaxSize: 200})
	if b := out.Bounds(); b.Dx() != 200 || b.Dy() != 50 {
		t.Fatalf("bounds = %v, want 200x50", b)
	}
	small := Prepare(img, Spec{MaxSize: 1000})
	if small.Bounds().Dx() != 400 {
		t.Fatalf("image under the cap was resized: %v", small.Bounds())
	}
}

func TestPrepareBrightness(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{200, 200, 200, 255})
	out := Prepare(img, Spec{Brightness: -0.5})
	r, _, _, _ := out.At(0, 0).RGBA()
	if r>>8 >= 200 {
		t.Fatalf("red = %d, want darker than 200", r>>8)
	}
}

func TestFit(t *testing.T) {
	tests := []struct{ w, h, max, ww, wh int }{
		{4096, 2048, 2048, 2048, 1024},
		{1000, 3000, 300, 100, 300},
		{5000, 1, 100, 100, 1},
	}
	for _, tt := range tests {
		if w, h := fit(tt.w, tt.h, tt.max); w != tt.ww || h != tt.wh {
			t.Errorf("fit(%d,%d,%d) = %d,%d want %d,%d", tt.w, tt.h, tt.max, w, h, tt.ww, tt.wh)
		}
	}
}
