package main

import (
	"flag"
	"fmt"
	"time"

	"sphere-tracer/internal/commands"
	"sphere-tracer/internal/snapshot"
	"sphere-tracer/internal/variants"
)

// registerCommands adds the console commands that act on a.
func registerCommands(a *app, reg *commands.Registry) {
	reg.Register("help", "list commands", nil, func() error {
		for _, line := range reg.Help() {
			a.log.Log(line)
		}
		return nil
	})

	reg.Register("list", "list variants", nil, func() error {
		for _, name := range variants.Names() {
			marker := " "
			if name == a.variant.Name() {
				marker = "*"
			}
			a.log.Logf("%s %s", marker, name)
		}
		return nil
	})

	variantFS := flag.NewFlagSet("variant", flag.ContinueOnError)
	variantName := variantFS.String("name", "", "variant to switch to")
	reg.Register("variant", "-name <n>: switch scene", variantFS, func() error {
		if *variantName == "" {
			return fmt.Errorf("variant: -name is required")
		}
		return a.switchTo(*variantName)
	})

	reg.Register("pause", "toggle animation", nil, func() error {
		a.paused = !a.paused
		a.log.Logf("paused: %v", a.paused)
		return nil
	})

	reg.Register("reset", "restart the animation", nil, func() error {
		a.variant.Reset()
		return nil
	})

	overlayFS := flag.NewFlagSet("overlay", flag.ContinueOnError)
	fps := overlayFS.Bool("fps", false, "show FPS")
	mem := overlayFS.Bool("mem", false, "show heap allocation")
	trace := overlayFS.Bool("trace", false, "show trace time")
	reg.Register("overlay", "-fps -mem -trace: set overlays", overlayFS, func() error {
		a.overlay.ShowFPS = *fps
		a.overlay.ShowMemAlloc = *mem
		a.overlay.ShowRenderTime = *trace
		*fps, *mem, *trace = false, false, false
		return nil
	})

	snapFS := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	out := snapFS.String("out", "", "PNG path (default snapshots/<variant>-<time>.png)")
	scale := snapFS.Int("scale", 1, "integer upscale")
	reg.Register("snapshot", "-out <path> -scale <k>: save the current frame", snapFS, func() error {
		path := *out
		if path == "" {
			path = fmt.Sprintf("snapshots/%s-%s.png", a.variant.Name(), time.Now().Format("20060102-150405"))
		}
		k := *scale
		*out, *scale = "", 1
		if err := snapshot.Save(a.screen.Image(), path, k); err != nil {
			return err
		}
		a.log.Logf("saved %s", path)
		return nil
	})
}
