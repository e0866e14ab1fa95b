package viewport

// Viewport is the output surface size. The scene reads Aspect for its projection and the
// heading strip lays itself out against Width/Height.
type Viewport struct {
	Width  int32
	Height int32
}

// New returns a viewport of the given size.
func New(w, h int32) Viewport {
	return Viewport{Width: w, Height: h}
}

// Resize records a new surface size and reports whether it differs from the current one.
// Non-positive sizes (e.g. a minimized window) are ignored.
func (v *Viewport) Resize(w, h int32) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	if w == v.Width && h == v.Height {
		return false
	}
	v.Width, v.Height = w, h
	return true
}

// Aspect returns width/height, or 1 before a size is known.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}
