package scroll

import (
	"time"

	"github.com/chewxy/math32"

	"planet-showcase/internal/tween"
)

// Direction is a normalized gesture: Forward (+1) or Backward (-1).
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// DefaultSections is the number of sections (and planets) the showcase cycles through.
const DefaultSections = 4

// Target names a value the machine animates on each accepted gesture.
type Target int

const (
	// TargetGroupYaw is the planet group's rotation about the vertical axis, in radians.
	TargetGroupYaw Target = iota
	// TargetHeadingOffset is the heading strip's vertical offset, in percent of one heading.
	TargetHeadingOffset
)

func (t Target) String() string {
	switch t {
	case TargetGroupYaw:
		return "group-yaw"
	case TargetHeadingOffset:
		return "heading-offset"
	}
	return "unknown"
}

// Request asks an Animator to move Target to To over Duration using Ease.
type Request struct {
	Target   Target
	To       float32
	Duration time.Duration
	Ease     tween.Ease
}

// Animator consumes animation requests. Requests for a target that is already animating re-target it.
type Animator interface {
	Animate(req Request)
}

// Options configures a Machine. Zero values fall back to the defaults.
type Options struct {
	Sections int
	Cooldown time.Duration
	Duration time.Duration
	Ease     tween.Ease
}

// Machine is the section state: a cyclic index plus the time of the last accepted gesture.
// Gestures arriving within the cooldown window are dropped, not queued.
type Machine struct {
	index    int
	sections int
	last     time.Time
	accepted bool
	cooldown time.Duration
	duration time.Duration
	ease     tween.Ease
	anim     Animator

	// OnChange, if set, is called with the new index after every accepted gesture.
	OnChange func(index int)
}

// New returns a machine at index 0 that sends its requests to anim.
func New(opts Options, anim Animator) *Machine {
	if opts.Sections <= 0 {
		opts.Sections = DefaultSections
	}
	if opts.Cooldown < 0 {
		opts.Cooldown = 0
	}
	if opts.Duration <= 0 {
		opts.Duration = time.Second
	}
	if opts.Ease == nil {
		opts.Ease = tween.Power2InOut
	}
	return &Machine{
		sections: opts.Sections,
		cooldown: opts.Cooldown,
		duration: opts.Duration,
		ease:     opts.Ease,
		anim:     anim,
	}
}

// Handle applies one gesture observed at now. It reports whether the gesture was accepted.
// Anything other than Forward/Backward is rejected, as is a gesture within the cooldown
// of the previous accepted one.
func (m *Machine) Handle(dir Direction, now time.Time) bool {
	if dir != Forward && dir != Backward {
		return false
	}
	if m.accepted && now.Sub(m.last) < m.cooldown {
		return false
	}
	m.accepted = true
	m.last = now
	m.index = (m.index + int(dir) + m.sections) % m.sections

	if m.anim != nil {
		m.anim.Animate(Request{Target: TargetGroupYaw, To: m.RotationTarget(m.index), Duration: m.duration, Ease: m.ease})
		m.anim.Animate(Request{Target: TargetHeadingOffset, To: HeadingOffsetTarget(m.index), Duration: m.duration, Ease: m.ease})
	}
	if m.OnChange != nil {
		m.OnChange(m.index)
	}
	return true
}

// Index returns the active section in [0, Sections()).
func (m *Machine) Index() int {
	return m.index
}

// Sections returns the number of sections the index cycles through.
func (m *Machine) Sections() int {
	return m.sections
}

// RotationTarget is the group yaw for section i: one step of 2π/sections per section, turning backwards.
func (m *Machine) RotationTarget(i int) float32 {
	return -float32(i) * (2 * math32.Pi / float32(m.sections))
}

// HeadingOffsetTarget is the heading strip offset for section i: -100% per section.
func HeadingOffsetTarget(i int) float32 {
	return -float32(i) * 100
}
