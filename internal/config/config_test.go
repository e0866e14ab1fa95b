package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if c.Scroll.Cooldown != 1200*time.Millisecond || c.Scroll.Sections != 4 {
		t.Fatalf("got %+v, want defaults", c.Scroll)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showcase.yaml")
	yml := `
scroll:
  cooldown: 2s
  ease: expo.inOut
gesture:
  touch_axis: x
  swipe_threshold: 50
backdrop:
  enabled: false
`
	if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Scroll.Cooldown != 2*time.Second {
		t.Errorf("cooldown = %v, want 2s", c.Scroll.Cooldown)
	}
	if c.TouchAxis().String() != "x" || c.Gesture.SwipeThreshold != 50 {
		t.Errorf("gesture = %+v", c.Gesture)
	}
	if c.Backdrop.Enabled {
		t.Error("backdrop should be disabled")
	}
	// Untouched sections keep their defaults.
	if c.Scroll.Duration != time.Second || len(c.Planets.Textures) != 4 {
		t.Errorf("defaults lost: duration %v textures %d", c.Scroll.Duration, len(c.Planets.Textures))
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":          "scroll: [",
		"unknown ease":      "scroll:\n  ease: bounce\n",
		"texture count":     "planets:\n  textures: [a.png]\n",
		"bad axis":          "gesture:\n  touch_axis: z\n",
		"bad color":         "planets:\n  colors: [red]\n",
		"negative cooldown": "scroll:\n  cooldown: -1s\n",
	}
	for name, yml := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "c.yaml")
			if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Fatal("expected error")
			} else if !strings.HasPrefix(err.Error(), "config: ") {
				t.Fatalf("error %q lacks package prefix", err)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "showcase.yaml")
	c := Default()
	c.Scroll.Cooldown = 1500 * time.Millisecond
	c.Debug.ShowFPS = true
	if err := Save(path, c); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Scroll.Cooldown != c.Scroll.Cooldown || !got.Debug.ShowFPS {
		t.Fatalf("round trip lost values: %+v %+v", got.Scroll, got.Debug)
	}
}

func TestPlanetColors(t *testing.T) {
	c := Default()
	c.Planets.Colors = []string{"#ff0000", "#0f0", "oops"}
	got := c.PlanetColors()
	want := [][3]uint8{{255, 0, 0}, {0, 255, 0}, {128, 128, 128}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("color %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestShippedConfigMatchesDefault(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", DefaultPath))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	want.Log.Path = "logs/showcase.txt"
	if !reflect.DeepEqual(c, want) {
		t.Errorf("shipped config differs from Default():\n got %+v\nwant %+v", c, want)
	}
}
