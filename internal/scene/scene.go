package scene

import (
	"context"
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"

	"planet-showcase/internal/assets"
	"planet-showcase/internal/config"
	"planet-showcase/internal/environment"
	"planet-showcase/internal/logger"
	"planet-showcase/internal/planets"
	"planet-showcase/internal/primitives"
	"planet-showcase/internal/stylesheet"
	"planet-showcase/internal/viewport"
)

// Scene holds the fixed camera, the planet group and the GPU resources drawn between
// BeginMode3D and EndMode3D.
type Scene struct {
	Camera rl.Camera3D
	Group  *planets.Group

	cfg      config.Config
	log      *logger.Logger
	renderer *primitives.Renderer
	view     viewport.Viewport

	// Decoded images waiting for the GL context; uploaded on the first Draw.
	decoded       []assets.Result
	backdrop      *assets.Result
	uploadPending bool

	textures    []rl.Texture2D
	backdropTex rl.Texture2D
	envTex      rl.Texture2D

	envCh <-chan environment.Result
}

// New builds the scene from cfg. No GPU work happens here; call Decode, then let Draw upload.
func New(cfg config.Config, log *logger.Logger) *Scene {
	s := &Scene{cfg: cfg, log: log}
	s.Camera.Position = rl.NewVector3(0, 0, cfg.Camera.Distance)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = cfg.Camera.Fovy
	s.Camera.Projection = rl.CameraPerspective

	p := cfg.Planets
	s.Group = planets.NewGroup(p.Textures, p.Names, cfg.PlanetColors(), p.OrbitRadius)
	s.Group.Tilt = p.Tilt
	s.Group.Lift = p.Lift

	s.renderer = primitives.NewRenderer(p.Radius, p.Segments, lightFromConfig(cfg.Light))
	return s
}

func lightFromConfig(l config.Light) primitives.Light {
	col := [3]float32{1, 1, 1}
	if c, ok := stylesheet.ParseHexColor(l.Color); ok {
		col = [3]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
	}
	return primitives.Light{
		Direction: l.Direction,
		Color:     col,
		Intensity: l.Intensity,
		Ambient:   [3]float32{col[0] * l.Ambient, col[1] * l.Ambient, col[2] * l.Ambient},
	}
}

// Decode reads the planet textures and the backdrop from disk in parallel. It may run before
// the window exists. Files that fail to decode are logged; their planets use the fallback color.
func (s *Scene) Decode(ctx context.Context) error {
	p := s.cfg.Planets
	specs := make([]assets.Spec, 0, len(p.Textures)+1)
	for _, path := range p.Textures {
		specs = append(specs, assets.Spec{Path: path, MaxSize: p.MaxTextureSize})
	}
	withBackdrop := s.cfg.Backdrop.Enabled && s.cfg.Backdrop.Texture != ""
	if withBackdrop {
		specs = append(specs, assets.Spec{
			Path:       s.cfg.Backdrop.Texture,
			MaxSize:    p.MaxTextureSize,
			Brightness: s.cfg.Backdrop.Brightness,
		})
	}
	results, err := assets.LoadAll(ctx, specs)
	if err != nil {
		return err
	}
	for _, r := range results {
		if r.Err != nil {
			s.logf("scene: texture unavailable, using fallback: %v", r.Err)
		}
	}
	if withBackdrop {
		last := results[len(results)-1]
		s.backdrop = &last
		results = results[:len(results)-1]
	}
	s.decoded = results
	s.uploadPending = true
	return nil
}

// WatchEnvironment makes the scene pick up the environment result when it arrives.
func (s *Scene) WatchEnvironment(ch <-chan environment.Result) {
	s.envCh = ch
}

// Resize records the new surface size. BeginMode3D derives the projection aspect from the
// current framebuffer, so the camera needs no further update.
func (s *Scene) Resize(w, h int32) {
	if s.view.Resize(w, h) {
		s.logf("scene: viewport %dx%d (aspect %.3f)", w, h, s.view.Aspect())
	}
}

// Update advances the planets' self-rotation by dt seconds.
func (s *Scene) Update(dt float32) {
	s.Group.Tick(dt, s.cfg.Planets.SpinRate)
}

// Draw renders the environment background, the star backdrop and the planets.
func (s *Scene) Draw() {
	s.ensureUploaded()
	s.pollEnvironment()

	pos := s.Camera.Position
	s.renderer.SetView([3]float32{pos.X, pos.Y, pos.Z})

	rl.BeginMode3D(s.Camera)
	s.renderer.DrawEnvironment(pos)
	s.renderer.DrawBackdrop()
	for i, p := range s.Group.Planets {
		var tex rl.Texture2D
		if i < len(s.textures) {
			tex = s.textures[i]
		}
		tint := rl.NewColor(p.Color[0], p.Color[1], p.Color[2], 255)
		s.renderer.DrawSphere(PlanetTransform(p, s.Group), tex, tint)
	}
	rl.EndMode3D()
}

// PlanetTransform composes a planet's model matrix: self-rotation, orbit position, then the
// group's yaw, tilt and lift.
func PlanetTransform(p planets.Planet, g *planets.Group) rl.Matrix {
	m := rl.MatrixRotateY(p.Spin)
	m = rl.MatrixMultiply(m, rl.MatrixTranslate(p.Position[0], p.Position[1], p.Position[2]))
	m = rl.MatrixMultiply(m, rl.MatrixRotateY(g.Yaw))
	m = rl.MatrixMultiply(m, rl.MatrixRotateX(g.Tilt))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(0, g.Lift, 0))
}

// ensureUploaded runs on the first Draw after Decode so that textures are created after the
// window/OpenGL context exists.
func (s *Scene) ensureUploaded() {
	if !s.uploadPending {
		return
	}
	s.uploadPending = false
	s.textures = make([]rl.Texture2D, len(s.decoded))
	for i, r := range s.decoded {
		if r.Image != nil {
			s.textures[i] = upload(r.Image)
		}
	}
	if s.backdrop != nil && s.backdrop.Image != nil {
		s.backdropTex = upload(s.backdrop.Image)
		s.renderer.LoadBackdrop(s.backdropTex, s.cfg.Backdrop.Radius, s.cfg.Backdrop.Segments)
	}
	s.decoded = nil
	s.backdrop = nil
}

// pollEnvironment takes the environment result without blocking, once.
func (s *Scene) pollEnvironment() {
	if s.envCh == nil {
		return
	}
	select {
	case res := <-s.envCh:
		s.envCh = nil
		if res.Err != nil {
			return
		}
		s.renderer.SetEnvironmentLight(res.Ambient)
		s.logf("scene: environment ambient %.3f %.3f %.3f from %s", res.Ambient[0], res.Ambient[1], res.Ambient[2], res.Source)
		if s.cfg.Environment.ShowBackground && res.Panorama != nil {
			s.envTex = upload(res.Panorama)
			s.renderer.LoadEnvironment(s.envTex)
		}
	default:
	}
}

func upload(img image.Image) rl.Texture2D {
	rimg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rimg)
	rl.UnloadImage(rimg)
	if rl.IsTextureValid(tex) {
		rl.GenTextureMipmaps(&tex)
		rl.SetTextureFilter(tex, rl.FilterTrilinear)
	}
	return tex
}

// Unload frees textures and renderer resources. Call before the window closes.
func (s *Scene) Unload() {
	for _, t := range s.textures {
		if rl.IsTextureValid(t) {
			rl.UnloadTexture(t)
		}
	}
	s.textures = nil
	for _, t := range []rl.Texture2D{s.backdropTex, s.envTex} {
		if rl.IsTextureValid(t) {
			rl.UnloadTexture(t)
		}
	}
	s.renderer.Unload()
}

func (s *Scene) logf(format string, args ...any) {
	if s.log != nil {
		s.log.Logf(format, args...)
	}
}
