package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"planet-showcase/internal/config"
	"planet-showcase/internal/stylesheet"
)

// Hooks are the per-frame callbacks. Resize runs before Update whenever the window size changed
// (and once on the first frame); Update gets the time since the previous frame in seconds.
type Hooks struct {
	Init   func()
	Resize func(width, height int32)
	Update func(dt float32)
	Draw   func()
	Close  func()
}

// Run opens the window and drives the frame loop until the window is closed. raylib paces frames
// to the display (or TargetFPS); a slow frame just shows up as a larger dt.
func Run(win config.Window, hooks Hooks) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagVsyncHint)
	if win.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	if win.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	w, h := win.Width, win.Height
	if win.Fullscreen {
		w, h = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	}
	rl.InitWindow(w, h, win.Title)
	defer rl.CloseWindow()

	if win.TargetFPS > 0 {
		rl.SetTargetFPS(win.TargetFPS)
	}
	bg := rl.Black
	if c, ok := stylesheet.ParseHexColor(win.Background); ok {
		bg = rl.NewColor(c.R, c.G, c.B, c.A)
	}

	if hooks.Init != nil {
		hooks.Init()
	}
	if hooks.Close != nil {
		defer hooks.Close()
	}

	first := true
	for !rl.WindowShouldClose() {
		if (first || rl.IsWindowResized()) && hooks.Resize != nil {
			hooks.Resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
		}
		first = false
		if hooks.Update != nil {
			hooks.Update(rl.GetFrameTime())
		}

		rl.BeginDrawing()
		rl.ClearBackground(bg)
		if hooks.Draw != nil {
			hooks.Draw()
		}
		rl.EndDrawing()
	}
}
