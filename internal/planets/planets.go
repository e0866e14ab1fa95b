package planets

import (
	"github.com/chewxy/math32"
)

// Planet is one orbiting sphere. Orbit and Position are fixed at layout time; Spin grows every frame.
type Planet struct {
	Name     string
	Texture  string
	Color    [3]uint8 // drawn when the texture is missing
	Orbit    float32  // orbital angle, radians
	Position [3]float32
	Spin     float32 // self-rotation about the planet's Y axis, radians
}

// Advance adds elapsed*rate to the self-rotation. Negative elapsed is ignored.
func (p *Planet) Advance(elapsed, rate float32) {
	if elapsed <= 0 {
		return
	}
	p.Spin += elapsed * rate
}

// Layout places n planets evenly on a circle of radius orbitRadius in the XZ plane:
// planet i sits at angle 2π·i/n.
func Layout(n int, orbitRadius float32) []Planet {
	if n <= 0 {
		return nil
	}
	out := make([]Planet, n)
	for i := range out {
		angle := float32(i) / float32(n) * (2 * math32.Pi)
		out[i] = Planet{
			Orbit:    angle,
			Position: [3]float32{orbitRadius * math32.Cos(angle), 0, orbitRadius * math32.Sin(angle)},
		}
	}
	return out
}

// Group is the rotating parent of all planets. Yaw is animated by section changes;
// Tilt (about X) and Lift (Y offset) are fixed framing.
type Group struct {
	Planets []Planet
	Yaw     float32
	Tilt    float32
	Lift    float32
}

// NewGroup lays out one planet per texture. names and colors are matched by index and may be shorter.
func NewGroup(textures, names []string, colors [][3]uint8, orbitRadius float32) *Group {
	g := &Group{Planets: Layout(len(textures), orbitRadius)}
	for i := range g.Planets {
		g.Planets[i].Texture = textures[i]
		if i < len(names) {
			g.Planets[i].Name = names[i]
		}
		if i < len(colors) {
			g.Planets[i].Color = colors[i]
		}
	}
	return g
}

// Tick is the per-frame step: advances every planet's self-rotation by elapsed*spinRate.
func (g *Group) Tick(elapsed, spinRate float32) {
	for i := range g.Planets {
		g.Planets[i].Advance(elapsed, spinRate)
	}
}

// YawValue and SetYaw let the group's yaw be a tween target.
func (g *Group) YawValue() float32 { return g.Yaw }
func (g *Group) SetYaw(v float32) { g.Yaw = v }
