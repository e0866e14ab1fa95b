package viewport

import "testing"

func TestResize(t *testing.T) {
	v := New(1280, 720)
	if v.Resize(1280, 720) {
		t.Error("same size reported as change")
	}
	if v.Resize(0, 720) || v.Resize(800, -1) {
		t.Error("non-positive size accepted")
	}
	if v.Width != 1280 || v.Height != 720 {
		t.Fatalf("size = %dx%d after ignored resizes", v.Width, v.Height)
	}
	if !v.Resize(800, 800) {
		t.Fatal("new size not reported")
	}
	if v.Aspect() != 1 {
		t.Errorf("Aspect() = %v, want 1", v.Aspect())
	}
}

func TestAspect(t *testing.T) {
	if got := New(1920, 1080).Aspect(); got < 1.777 || got > 1.778 {
		t.Errorf("Aspect() = %v, want ≈1.7778", got)
	}
	var zero Viewport
	if zero.Aspect() != 1 {
		t.Errorf("zero viewport Aspect() = %v, want 1", zero.Aspect())
	}
}
