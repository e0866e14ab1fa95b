package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"planet-showcase/internal/gesture"
	"planet-showcase/internal/stylesheet"
	"planet-showcase/internal/tween"
)

// DefaultPath is the config file, relative to the process working directory.
const DefaultPath = "config/showcase.yaml"

// Window controls the raylib window.
type Window struct {
	Title      string `yaml:"title"`
	Width      int32  `yaml:"width"`
	Height     int32  `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	TargetFPS  int32  `yaml:"target_fps"`
	MSAA       bool   `yaml:"msaa"`
	Background string `yaml:"background"`
}

// Camera is the fixed perspective camera.
type Camera struct {
	Fovy     float32 `yaml:"fovy"`
	Distance float32 `yaml:"distance"`
}

// Scroll configures the section state machine and its tweens.
type Scroll struct {
	Sections int           `yaml:"sections"`
	Cooldown time.Duration `yaml:"cooldown"`
	Duration time.Duration `yaml:"duration"`
	Ease     string        `yaml:"ease"`
}

// Gesture configures the input adapters.
type Gesture struct {
	TouchAxis      string  `yaml:"touch_axis"`
	SwipeThreshold float32 `yaml:"swipe_threshold"`
	MouseSwipe     bool    `yaml:"mouse_swipe"`
	Keyboard       bool    `yaml:"keyboard"`
}

// Planets describes the orbiting spheres. Textures has one entry per section.
type Planets struct {
	Radius         float32  `yaml:"radius"`
	Segments       int32    `yaml:"segments"`
	OrbitRadius    float32  `yaml:"orbit_radius"`
	SpinRate       float32  `yaml:"spin_rate"`
	Tilt           float32  `yaml:"tilt"`
	Lift           float32  `yaml:"lift"`
	MaxTextureSize int      `yaml:"max_texture_size"`
	Textures       []string `yaml:"textures"`
	Names          []string `yaml:"names"`
	Colors         []string `yaml:"colors"`
}

// Backdrop is the optional inside-out star sphere.
type Backdrop struct {
	Enabled    bool    `yaml:"enabled"`
	Texture    string  `yaml:"texture"`
	Radius     float32 `yaml:"radius"`
	Segments   int32   `yaml:"segments"`
	Brightness float64 `yaml:"brightness"` // -1..1, applied to the texture before upload
}

// Light is the directional light plus a flat ambient term.
type Light struct {
	Direction [3]float32 `yaml:"direction"`
	Color     string     `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
	Ambient   float32    `yaml:"ambient"`
}

// Environment is the HDR panorama used for ambient light and, optionally, as the background.
type Environment struct {
	Enabled        bool          `yaml:"enabled"`
	URL            string        `yaml:"url"`
	CacheDir       string        `yaml:"cache_dir"`
	Timeout        time.Duration `yaml:"timeout"`
	Exposure       float32       `yaml:"exposure"`
	Intensity      float32       `yaml:"intensity"`
	MaxWidth       int           `yaml:"max_width"`
	ShowBackground bool          `yaml:"show_background"`
}

// Headings is the text strip that slides with the sections.
type Headings struct {
	Texts      []string `yaml:"texts"`
	Stylesheet string   `yaml:"stylesheet"`
	Font       string   `yaml:"font"`
}

// Debug toggles the overlays.
type Debug struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	ShowSection  bool `yaml:"show_section"`
}

// Log configures the file logger.
type Log struct {
	Path string `yaml:"path"`
	Echo bool   `yaml:"echo"`
}

// Config is the whole showcase configuration.
type Config struct {
	Window      Window      `yaml:"window"`
	Camera      Camera      `yaml:"camera"`
	Scroll      Scroll      `yaml:"scroll"`
	Gesture     Gesture     `yaml:"gesture"`
	Planets     Planets     `yaml:"planets"`
	Backdrop    Backdrop    `yaml:"backdrop"`
	Light       Light       `yaml:"light"`
	Environment Environment `yaml:"environment"`
	Headings    Headings    `yaml:"headings"`
	Debug       Debug       `yaml:"debug"`
	Log         Log         `yaml:"log"`
}

// Default returns the stock showcase: four planets, 1.2s cooldown, 1s power2.inOut tweens.
func Default() Config {
	return Config{
		Window: Window{
			Title:      "Planets",
			Width:      1280,
			Height:     720,
			TargetFPS:  60,
			MSAA:       true,
			Background: "#000000",
		},
		Camera: Camera{Fovy: 25, Distance: 9},
		Scroll: Scroll{
			Sections: 4,
			Cooldown: 1200 * time.Millisecond,
			Duration: time.Second,
			Ease:     "power2.inOut",
		},
		Gesture: Gesture{
			TouchAxis:      "y",
			SwipeThreshold: gesture.DefaultSwipeThreshold,
			MouseSwipe:     true,
			Keyboard:       true,
		},
		Planets: Planets{
			Radius:         1.3,
			Segments:       64,
			OrbitRadius:    4.5,
			SpinRate:       0.02,
			Tilt:           0.1,
			Lift:           -0.8,
			MaxTextureSize: 2048,
			Textures: []string{
				"assets/csilla/color.png",
				"assets/earth/map.jpg",
				"assets/venus/map.jpg",
				"assets/volcanic/color.png",
			},
			Names:  []string{"Csilla", "Earth", "Venus", "Volcanic"},
			Colors: []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00"},
		},
		Backdrop: Backdrop{
			Enabled:  true,
			Texture:  "assets/stars.jpg",
			Radius:   50,
			Segments: 64,
		},
		Light: Light{
			Direction: [3]float32{5, 3.5, 1},
			Color:     "#ffffff",
			Intensity: 1.5,
			Ambient:   0,
		},
		Environment: Environment{
			Enabled:   true,
			URL:       "https://dl.polyhaven.org/file/ph-assets/HDRIs/hdr/1k/moonlit_golf_1k.hdr",
			CacheDir:  "assets/hdri",
			Timeout:   60 * time.Second,
			Exposure:  1,
			Intensity: 1,
			MaxWidth:  1024,
		},
		Headings: Headings{
			Texts:      []string{"Csilla", "Earth", "Venus", "Volcanic"},
			Stylesheet: "assets/ui/headings.css",
			Font:       "",
		},
		Log: Log{Echo: true},
	}
}

// Load reads the YAML config at path on top of Default(). A missing file is not an error:
// Default() is returned. Malformed YAML or a config that fails Validate is.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Save writes c as YAML to path, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the values the rest of the program relies on.
func (c Config) Validate() error {
	var errs []error
	if c.Scroll.Sections <= 0 {
		errs = append(errs, fmt.Errorf("scroll.sections must be positive, got %d", c.Scroll.Sections))
	}
	if len(c.Planets.Textures) != c.Scroll.Sections {
		errs = append(errs, fmt.Errorf("planets.textures has %d entries, want one per section (%d)", len(c.Planets.Textures), c.Scroll.Sections))
	}
	if c.Scroll.Cooldown < 0 {
		errs = append(errs, fmt.Errorf("scroll.cooldown must not be negative"))
	}
	if c.Scroll.Duration <= 0 {
		errs = append(errs, fmt.Errorf("scroll.duration must be positive"))
	}
	if _, ok := tween.ByName(c.Scroll.Ease); !ok {
		errs = append(errs, fmt.Errorf("scroll.ease: unknown curve %q", c.Scroll.Ease))
	}
	if _, err := gesture.ParseAxis(c.Gesture.TouchAxis); err != nil {
		errs = append(errs, err)
	}
	if c.Gesture.SwipeThreshold < 0 {
		errs = append(errs, fmt.Errorf("gesture.swipe_threshold must not be negative"))
	}
	if c.Planets.Radius <= 0 || c.Planets.Segments < 3 {
		errs = append(errs, fmt.Errorf("planets.radius must be positive and planets.segments at least 3"))
	}
	for _, s := range append([]string{c.Window.Background, c.Light.Color}, c.Planets.Colors...) {
		if _, ok := stylesheet.ParseHexColor(s); !ok {
			errs = append(errs, fmt.Errorf("invalid color %q", s))
		}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive"))
	}
	return errors.Join(errs...)
}

// Ease returns the configured scroll curve, falling back to power2.inOut.
func (c Config) Ease() tween.Ease {
	if e, ok := tween.ByName(c.Scroll.Ease); ok {
		return e
	}
	return tween.Power2InOut
}

// TouchAxis returns the configured swipe axis, falling back to Y.
func (c Config) TouchAxis() gesture.Axis {
	a, _ := gesture.ParseAxis(c.Gesture.TouchAxis)
	return a
}

// PlanetColors returns the fallback colors as RGB triples; invalid entries become mid grey.
func (c Config) PlanetColors() [][3]uint8 {
	out := make([][3]uint8, len(c.Planets.Colors))
	for i, s := range c.Planets.Colors {
		col, ok := stylesheet.ParseHexColor(s)
		if !ok {
			out[i] = [3]uint8{128, 128, 128}
			continue
		}
		out[i] = [3]uint8{col.R, col.G, col.B}
	}
	return out
}
