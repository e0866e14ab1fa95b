package scroll

import "planet-showcase/internal/tween"

// TweenAnimator turns requests into tweens on the properties bound to each Target.
// Requests for unbound targets are ignored.
type TweenAnimator struct {
	tw    *tween.Tweener
	props map[Target]tween.Property
}

// NewTweenAnimator returns an animator that drives tw.
func NewTweenAnimator(tw *tween.Tweener) *TweenAnimator {
	return &TweenAnimator{tw: tw, props: make(map[Target]tween.Property)}
}

// Bind attaches the property a Target animates.
func (a *TweenAnimator) Bind(t Target, p tween.Property) {
	a.props[t] = p
}

// Animate starts (or re-targets) the tween for req.Target.
func (a *TweenAnimator) Animate(req Request) {
	p, ok := a.props[req.Target]
	if !ok {
		return
	}
	a.tw.To(req.Target.String(), p, req.To, req.Duration, req.Ease)
}
