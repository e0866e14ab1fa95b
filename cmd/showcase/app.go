package main

import (
	"context"
	"fmt"

	"planet-showcase/internal/config"
	"planet-showcase/internal/debug"
	"planet-showcase/internal/environment"
	"planet-showcase/internal/fonts"
	"planet-showcase/internal/graphics"
	"planet-showcase/internal/input"
	"planet-showcase/internal/logger"
	"planet-showcase/internal/scene"
	"planet-showcase/internal/scroll"
	"planet-showcase/internal/tween"
	"planet-showcase/internal/ui"
)

// app wires the section machine to the scene, the heading strip and the input poller.
type app struct {
	cfg      config.Config
	log      *logger.Logger
	scene    *scene.Scene
	headings *ui.HeadingStrip
	tweens   *tween.Tweener
	machine  *scroll.Machine
	poller   *input.Poller
	debug    *debug.Debug

	cancelEnv context.CancelFunc
}

func newApp(ctx context.Context, cfg config.Config, log *logger.Logger) (*app, error) {
	a := &app{
		cfg:      cfg,
		log:      log,
		scene:    scene.New(cfg, log),
		headings: ui.NewHeadingStrip(cfg.Headings.Texts),
		tweens:   tween.New(),
		debug:    debug.New(),
	}

	anim := scroll.NewTweenAnimator(a.tweens)
	anim.Bind(scroll.TargetGroupYaw, tween.Property{Get: a.scene.Group.YawValue, Set: a.scene.Group.SetYaw})
	anim.Bind(scroll.TargetHeadingOffset, tween.Property{Get: a.headings.Offset, Set: a.headings.SetOffset})
	a.machine = scroll.New(scroll.Options{
		Sections: cfg.Scroll.Sections,
		Cooldown: cfg.Scroll.Cooldown,
		Duration: cfg.Scroll.Duration,
		Ease:     cfg.Ease(),
	}, anim)
	a.machine.OnChange = func(i int) {
		log.Logf("Active index: %d", i)
	}

	a.poller = input.NewPoller(a.machine, input.Options{
		Axis:       cfg.TouchAxis(),
		Threshold:  cfg.Gesture.SwipeThreshold,
		MouseSwipe: cfg.Gesture.MouseSwipe,
		Keyboard:   cfg.Gesture.Keyboard,
	})

	a.debug.ShowFPS = cfg.Debug.ShowFPS
	a.debug.ShowMemAlloc = cfg.Debug.ShowMemAlloc
	a.debug.ShowSection = cfg.Debug.ShowSection
	a.debug.Section = func() (int, int) { return a.machine.Index(), a.machine.Sections() }

	if path := cfg.Headings.Stylesheet; path != "" {
		if err := a.headings.LoadCSS(path); err != nil {
			log.Logf("headings: %v", err)
		}
	}

	if err := a.scene.Decode(ctx); err != nil {
		return nil, fmt.Errorf("showcase: %w", err)
	}
	if env := cfg.Environment; env.Enabled && env.URL != "" {
		a.scene.WatchEnvironment(a.startEnvironment(ctx, env))
	}
	return a, nil
}

func (a *app) startEnvironment(ctx context.Context, env config.Environment) <-chan environment.Result {
	if env.Timeout > 0 {
		ctx, a.cancelEnv = context.WithTimeout(ctx, env.Timeout)
	}
	return environment.NewLoader(env.CacheDir, a.log).Start(ctx, environment.Options{
		URL:       env.URL,
		Exposure:  env.Exposure,
		Intensity: env.Intensity,
		MaxWidth:  env.MaxWidth,
	})
}

func (a *app) hooks() graphics.Hooks {
	return graphics.Hooks{
		Init:   a.loadFonts,
		Resize: a.resize,
		Update: a.update,
		Draw:   a.draw,
		Close:  a.close,
	}
}

// loadFonts runs once the window/OpenGL context exists.
func (a *app) loadFonts() {
	if name := a.cfg.Headings.Font; name != "" {
		path, err := fonts.FindFont(name)
		if err == nil {
			err = a.headings.LoadFont(path)
		}
		if err != nil {
			a.log.Logf("headings: font %q: %v", name, err)
		}
	}
	a.debug.SetFont(a.headings.Font())
}

func (a *app) resize(w, h int32) {
	a.scene.Resize(w, h)
	a.headings.Layout(w, h)
}

// update advances running tweens before polling, so a tween started by this frame's gesture
// is drawn at its start value and first stepped on the next frame.
func (a *app) update(dt float32) {
	a.tweens.Update(dt)
	a.poller.Poll()
	a.scene.Update(dt)
}

func (a *app) draw() {
	a.scene.Draw()
	a.headings.Draw()
	a.debug.Draw()
}

func (a *app) close() {
	if a.cancelEnv != nil {
		a.cancelEnv()
	}
	a.headings.Unload()
	a.scene.Unload()
}
