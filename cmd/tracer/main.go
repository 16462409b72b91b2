package main

import (
	"flag"
	"fmt"
	"os"

	"sphere-tracer/internal/engineconfig"
	"sphere-tracer/internal/env"
	"sphere-tracer/internal/logger"
	"sphere-tracer/internal/snapshot"
	"sphere-tracer/internal/variants"
)

func main() {
	os.Exit(run())
}

func run() int {
	variantName := flag.String("variant", "", "variant to show (see -list)")
	list := flag.Bool("list", false, "print the available variants and exit")
	snapPath := flag.String("snapshot", "", "render headless and write a PNG to this path")
	frames := flag.Int("frames", 60, "ticks to simulate before a -snapshot")
	scale := flag.Int("scale", 1, "integer upscale for -snapshot")
	configPath := flag.String("config", engineconfig.EngineConfigPath, "config file")
	flag.Parse()

	log := logger.New()
	if err := env.Load(".env"); err != nil {
		log.Logf("env: %v", err)
	}
	prefs, err := engineconfig.LoadFile(*configPath)
	if err != nil {
		log.Logf("%v (using defaults)", err)
	}

	if *list {
		for _, name := range variants.Names() {
			v, err := variants.New(name, variants.Options{Width: 1, Height: 1})
			if err != nil {
				continue
			}
			fmt.Printf("%-10s %s\n", name, v.Title())
		}
		return 0
	}

	name := *variantName
	if name == "" {
		name = env.Get(env.VariantKey, prefs.Variant)
	}
	opts := variants.Options{Width: prefs.Width, Height: prefs.Height, Supersample: prefs.Supersample}
	v, err := variants.New(name, opts)
	if err != nil {
		log.Log(err.Error())
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *snapPath != "" {
		img := snapshot.Capture(v, *frames)
		if err := snapshot.Save(img, *snapPath, *scale); err != nil {
			log.Log(err.Error())
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		log.Logf("wrote %s (%s, %d ticks)", *snapPath, v.Name(), *frames)
		return 0
	}

	newApp(log, prefs, opts, v).run()
	return 0
}
