package tween

import (
	"strings"

	"github.com/chewxy/math32"
)

// Ease maps normalized time t in [0,1] to normalized progress. Ease(0) == 0 and Ease(1) == 1.
type Ease func(t float32) float32

// Linear is the identity curve.
func Linear(t float32) float32 { return t }

// Power2In is a quadratic ease-in.
func Power2In(t float32) float32 { return t * t }

// Power2Out is a quadratic ease-out.
func Power2Out(t float32) float32 { return 1 - (1-t)*(1-t) }

// Power2InOut is quadratic ease-in for the first half and ease-out for the second.
func Power2InOut(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// ExpoInOut is an exponential ease-in-out.
func ExpoInOut(t float32) float32 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return math32.Pow(2, 20*t-10) / 2
	default:
		return (2 - math32.Pow(2, -20*t+10)) / 2
	}
}

var byName = map[string]Ease{
	"linear":       Linear,
	"none":         Linear,
	"power2.in":    Power2In,
	"power2.out":   Power2Out,
	"power2.inout": Power2InOut,
	"expo.inout":   ExpoInOut,
}

// ByName returns the curve registered under name (case-insensitive, e.g. "power2.inOut").
func ByName(name string) (Ease, bool) {
	e, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return e, ok
}
