package main

import (
	"time"

	"sphere-tracer/internal/commands"
	"sphere-tracer/internal/debug"
	"sphere-tracer/internal/engineconfig"
	"sphere-tracer/internal/graphics"
	"sphere-tracer/internal/logger"
	"sphere-tracer/internal/terminal"
	"sphere-tracer/internal/variants"
)

// app ties one running variant to the window, overlay and console.
type app struct {
	log     *logger.Logger
	opts    variants.Options
	variant variants.Variant
	screen  *graphics.Screen
	overlay *debug.Debug
	term    *terminal.Terminal
	paused  bool
}

func newApp(log *logger.Logger, prefs engineconfig.Prefs, opts variants.Options, v variants.Variant) *app {
	a := &app{
		log:     log,
		opts:    opts,
		variant: v,
		screen:  graphics.NewScreen(v.Bounds()),
		overlay: debug.New(),
	}
	a.overlay.ShowFPS = prefs.ShowFPS
	a.overlay.ShowMemAlloc = prefs.ShowMemAlloc
	a.overlay.ShowRenderTime = prefs.ShowRenderTime

	reg := commands.NewRegistry()
	registerCommands(a, reg)
	a.term = terminal.New(log, reg)
	return a
}

func (a *app) run() {
	b := a.variant.Bounds()
	win := graphics.Window{
		Width:  int32(b.Dx()),
		Height: int32(b.Dy()),
		Title:  a.variant.Title(),
		FPS:    a.variant.TickRate(),
	}
	a.log.Logf("%s: %dx%d at %d Hz", a.variant.Name(), win.Width, win.Height, win.FPS)
	graphics.Run(win, a.update, a.draw)
	a.screen.Unload()
}

// update handles console input, advances the simulation and traces the next frame.
func (a *app) update() {
	a.term.Update()
	if !a.paused {
		a.variant.Tick(graphics.FrameTime())
	}
	start := time.Now()
	a.variant.Render(a.screen.Image())
	a.overlay.SetRenderTime(time.Since(start))
}

func (a *app) draw() {
	a.screen.Draw()
	a.overlay.Draw()
	a.term.Draw()
}

// switchTo replaces the running variant, keeping the frame size.
func (a *app) switchTo(name string) error {
	v, err := variants.New(name, a.opts)
	if err != nil {
		return err
	}
	a.variant = v
	graphics.SetTitle(v.Title())
	graphics.SetFPS(v.TickRate())
	a.log.Logf("switched to %s (%s)", v.Name(), v.Title())
	return nil
}
