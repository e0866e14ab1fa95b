package gesture

import "planet-showcase/internal/scroll"

// Key is a keyboard key code. Values match raylib's KeyboardKey codes so the poller can pass them through.
type Key int32

const (
	KeySpace    Key = 32
	KeyRight    Key = 262
	KeyLeft     Key = 263
	KeyDown     Key = 264
	KeyUp       Key = 265
	KeyPageUp   Key = 266
	KeyPageDown Key = 267
)

// Keys maps keys to directions.
type Keys map[Key]scroll.Direction

// DefaultKeys: down/right/page-down/space go forward, up/left/page-up go back.
func DefaultKeys() Keys {
	return Keys{
		KeyDown:     scroll.Forward,
		KeyRight:    scroll.Forward,
		KeyPageDown: scroll.Forward,
		KeySpace:    scroll.Forward,
		KeyUp:       scroll.Backward,
		KeyLeft:     scroll.Backward,
		KeyPageUp:   scroll.Backward,
	}
}

// Direction returns the direction bound to k.
func (k Keys) Direction(key Key) (scroll.Direction, bool) {
	d, ok := k[key]
	return d, ok
}
