package tween

import (
	"sort"
	"time"

	"github.com/chewxy/math32"
)

// Property is a float value a tween drives: Get reads the current value, Set writes the next one.
type Property struct {
	Get func() float32
	Set func(float32)
}

// Tween interpolates one property from a start value to a target over a fixed duration.
type Tween struct {
	prop     Property
	from     float32
	to       float32
	duration float32 // seconds
	elapsed  float32
	ease     Ease
}

// Target returns the value the tween ends at.
func (tw *Tween) Target() float32 {
	return tw.to
}

// Progress returns eased progress in [0,1].
func (tw *Tween) Progress() float32 {
	if tw.duration <= 0 {
		return 1
	}
	t := math32.Min(tw.elapsed/tw.duration, 1)
	return tw.ease(t)
}

// step advances by dt seconds, writes the interpolated value, and reports whether the tween finished.
func (tw *Tween) step(dt float32) bool {
	if dt > 0 {
		tw.elapsed += dt
	}
	done := tw.elapsed >= tw.duration
	if done {
		tw.prop.Set(tw.to)
		return true
	}
	tw.prop.Set(tw.from + (tw.to-tw.from)*tw.Progress())
	return false
}

// Tweener owns the in-flight tweens, keyed by a property name. Not safe for concurrent use;
// it is driven from the render loop and fed from input handlers on the same thread.
type Tweener struct {
	active map[string]*Tween
}

// New returns an empty Tweener.
func New() *Tweener {
	return &Tweener{active: make(map[string]*Tween)}
}

// To starts a tween of prop from its current value to `to`. A tween already running under key is
// replaced, so the new one picks up from wherever the old one had got to.
// A non-positive duration sets the value immediately.
func (t *Tweener) To(key string, prop Property, to float32, duration time.Duration, ease Ease) {
	if ease == nil {
		ease = Power2InOut
	}
	if duration <= 0 {
		delete(t.active, key)
		prop.Set(to)
		return
	}
	t.active[key] = &Tween{
		prop:     prop,
		from:     prop.Get(),
		to:       to,
		duration: float32(duration.Seconds()),
		ease:     ease,
	}
}

// Update advances every tween by dt seconds and drops the finished ones.
// Keys are stepped in sorted order so runs are reproducible.
func (t *Tweener) Update(dt float32) {
	if len(t.active) == 0 {
		return
	}
	keys := make([]string, 0, len(t.active))
	for k := range t.active {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if t.active[k].step(dt) {
			delete(t.active, k)
		}
	}
}

// Active returns the tween running under key, if any.
func (t *Tweener) Active(key string) (*Tween, bool) {
	tw, ok := t.active[key]
	return tw, ok
}

// Len returns the number of running tweens.
func (t *Tweener) Len() int {
	return len(t.active)
}
