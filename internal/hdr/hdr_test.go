package hdr

import (
	"bytes"
	"errors"
	"strconv"
	"testing"
)

func header(w, h int) string {
	return "#?RADIANCE\n# made by a test\nFORMAT=32-bit_rle_rgbe\nEXPOSURE=1.0\n\n-Y " + strconv.Itoa(h) + " +X " + strconv.Itoa(w) + "\n"
}

func TestDecodeFlat(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(header(2, 1))
	// exponent 129 → scale 2^-7, so 128 → 1.0, 64 → 0.5
	buf.Write([]byte{128, 64, 0, 129, 0, 0, 0, 0})

	m, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if m.Width != 2 || m.Height != 1 {
		t.Fatalf("size = %dx%d", m.Width, m.Height)
	}
	r, g, b := m.At(0, 0)
	if r != 1 || g != 0.5 || b != 0 {
		t.Errorf("pixel 0 = %v,%v,%v want 1,0.5,0", r, g, b)
	}
	r, g, b = m.At(1, 0)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("zero exponent pixel = %v,%v,%v", r, g, b)
	}
}

func TestDecodeRLE(t *testing.T) {
	const w = 8
	var buf bytes.Buffer
	buf.WriteString(header(w, 2))
	for y := 0; y < 2; y++ {
		buf.Write([]byte{2, 2, 0, w})
		// R: one run of 8 × 128
		buf.Write([]byte{128 + w, 128})
		// G: literal 8 values
		buf.Write([]byte{w, 0, 16, 32, 48, 64, 80, 96, 112})
		// B: two runs of 4
		buf.Write([]byte{128 + 4, 0, 128 + 4, 255})
		// E: run of 129
		buf.Write([]byte{128 + w, 129})
	}
	m, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	r, g, b := m.At(3, 1)
	if r != 1 || g != 48.0/128 || b != 0 {
		t.Errorf("pixel (3,1) = %v,%v,%v", r, g, b)
	}
	_, _, b = m.At(7, 0)
	if b != 255.0/128 {
		t.Errorf("pixel (7,0) blue = %v", b)
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := map[string]string{
		"magic":       "P6\n2 1\n",
		"format":      "#?RADIANCE\nFORMAT=32-bit_rle_xyze\n\n-Y 1 +X 1\n",
		"orientation": "#?RADIANCE\n\n+Y 1 +X 1\n",
		"overflow":    "#?RADIANCE\nFORMAT=32-bit_rle_rgbe\n\n-Y 3000000000 +X 3000000000\n",
		"too wide":    "#?RADIANCE\n\n-Y 1 +X 40000\n",
		"too many":    "#?RADIANCE\n\n-Y 20000 +X 20000\n",
	}
	for name, in := range tests {
		if _, err := Decode(bytes.NewBufferString(in)); !errors.Is(err, ErrFormat) {
			t.Errorf("%s: err = %v, want ErrFormat", name, err)
		}
	}
	short := header(2, 2) + "\x80\x80"
	if _, err := Decode(bytes.NewBufferString(short)); err == nil {
		t.Error("truncated pixels decoded without error")
	}
}

func TestAverageAndToneMap(t *testing.T) {
	m := &Image{Width: 2, Height: 1, Pix: []float32{1, 1, 1, 0, 0, 0}}
	avg := m.Average()
	if avg != [3]float32{0.5, 0.5, 0.5} {
		t.Errorf("Average() = %v", avg)
	}
	img := m.ToneMap(1)
	if img.Bounds().Dx() != 2 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	// Reinhard maps 1 → 0.5, gamma 2.2 → ≈0.7297 → 186.
	if c := img.RGBAAt(0, 0); c.R != 186 || c.A != 255 {
		t.Errorf("tone mapped white = %v, want R 186", c)
	}
	if c := img.RGBAAt(1, 0); c.R != 0 {
		t.Errorf("tone mapped black = %v", c)
	}
}
