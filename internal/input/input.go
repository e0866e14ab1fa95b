package input

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"planet-showcase/internal/gesture"
	"planet-showcase/internal/scroll"
)

// Handler receives gestures. *scroll.Machine implements it.
type Handler interface {
	Handle(dir scroll.Direction, now time.Time) bool
}

// Options selects which raylib inputs produce gestures. The wheel is always on.
type Options struct {
	Axis       gesture.Axis
	Threshold  float32
	MouseSwipe bool // left-button drag counts as a swipe
	Keyboard   bool
}

// Poller reads raylib's input state once per frame and forwards gestures to a Handler.
type Poller struct {
	handler    Handler
	pointer    gesture.Pointer
	keys       gesture.Keys
	mouseSwipe bool
	now        func() time.Time
}

// NewPoller returns a poller feeding h.
func NewPoller(h Handler, opts Options) *Poller {
	p := &Poller{
		handler:    h,
		pointer:    gesture.Pointer{Swipe: gesture.Swipe{Axis: opts.Axis, Threshold: opts.Threshold}},
		mouseSwipe: opts.MouseSwipe,
		now:        time.Now,
	}
	if opts.Keyboard {
		p.keys = gesture.DefaultKeys()
	}
	return p
}

// Poll runs once per frame, before the scene update.
func (p *Poller) Poll() {
	// raylib reports wheel-up as positive; page scrolling treats down as positive.
	if dir, ok := gesture.Wheel(-rl.GetMouseWheelMove()); ok {
		p.handler.Handle(dir, p.now())
	}

	if !rl.IsWindowFocused() {
		p.pointer.Cancel()
		return
	}

	down, pos := false, rl.Vector2{}
	if rl.GetTouchPointCount() > 0 {
		down, pos = true, rl.GetTouchPosition(0)
	} else if p.mouseSwipe && rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		down, pos = true, rl.GetMousePosition()
	}
	if dir, ok := p.pointer.Update(down, pos.X, pos.Y); ok {
		p.handler.Handle(dir, p.now())
	}

	if p.keys == nil {
		return
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if dir, ok := p.keys.Direction(gesture.Key(key)); ok {
			p.handler.Handle(dir, p.now())
		}
	}
}
