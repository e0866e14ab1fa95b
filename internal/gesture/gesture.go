package gesture

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"planet-showcase/internal/scroll"
)

// DefaultSwipeThreshold is the minimum displacement, in pixels, for a touch to count as a swipe.
const DefaultSwipeThreshold = 40

// Axis selects which touch coordinate a swipe is measured along.
type Axis int

const (
	AxisY Axis = iota
	AxisX
)

// ParseAxis accepts "x" or "y" (case-insensitive). Empty means AxisY.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "y":
		return AxisY, nil
	case "x":
		return AxisX, nil
	}
	return AxisY, fmt.Errorf("gesture: unknown axis %q", s)
}

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Wheel converts a vertical scroll delta into a direction. delta follows page-scroll convention:
// positive means the content scrolls down, which moves forward. A zero delta is not a gesture.
func Wheel(delta float32) (scroll.Direction, bool) {
	switch {
	case delta > 0:
		return scroll.Forward, true
	case delta < 0:
		return scroll.Backward, true
	}
	return 0, false
}

// Swipe tracks a single touch from Begin to End along Axis.
type Swipe struct {
	Axis      Axis
	Threshold float32

	start  float32
	active bool
}

// Begin records the touch start position.
func (s *Swipe) Begin(x, y float32) {
	s.start = s.pick(x, y)
	s.active = true
}

// Active reports whether a touch is in progress.
func (s *Swipe) Active() bool {
	return s.active
}

// End finishes the touch at (x, y). The direction is the sign of start minus end, so dragging up
// (or left on AxisX) moves forward. Displacements shorter than Threshold are taps and yield no gesture.
func (s *Swipe) End(x, y float32) (scroll.Direction, bool) {
	if !s.active {
		return 0, false
	}
	s.active = false
	delta := s.start - s.pick(x, y)
	if math32.Abs(delta) < s.Threshold || delta == 0 {
		return 0, false
	}
	if delta > 0 {
		return scroll.Forward, true
	}
	return scroll.Backward, true
}

// Cancel drops a touch in progress without producing a gesture.
func (s *Swipe) Cancel() {
	s.active = false
}

func (s *Swipe) pick(x, y float32) float32 {
	if s.Axis == AxisX {
		return x
	}
	return y
}

// Pointer turns a per-frame pressed state and position into swipes. A press begins the swipe and
// the release ends it at the last position seen while pressed, since touch positions are not
// reliable on the release frame.
type Pointer struct {
	Swipe Swipe

	down         bool
	lastX, lastY float32
}

// Update feeds one frame of pointer state and returns the swipe completed on this frame, if any.
func (p *Pointer) Update(down bool, x, y float32) (scroll.Direction, bool) {
	switch {
	case down && !p.down:
		p.Swipe.Begin(x, y)
		p.lastX, p.lastY = x, y
	case down:
		p.lastX, p.lastY = x, y
	case p.down:
		p.down = false
		return p.Swipe.End(p.lastX, p.lastY)
	}
	p.down = down
	return 0, false
}

// Cancel drops a press in progress, e.g. when the window loses focus mid-drag. The next
// pressed frame starts a new swipe.
func (p *Pointer) Cancel() {
	p.down = false
	p.Swipe.Cancel()
}
