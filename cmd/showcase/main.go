package main

import (
	"context"
	"flag"
	"io"
	"os"

	"planet-showcase/internal/config"
	"planet-showcase/internal/graphics"
	"planet-showcase/internal/logger"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	flag.Parse()

	cfg, cfgErr := config.Load(*configPath)
	var echo io.Writer
	if cfg.Log.Echo {
		echo = os.Stderr
	}
	log := logger.New(cfg.Log.Path, echo)
	if cfgErr != nil {
		log.Logf("%v", cfgErr)
		os.Exit(1)
	}

	log.Logf("logging to %s", log.Path())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		log.Logf("%v", err)
		os.Exit(1)
	}
	graphics.Run(cfg.Window, a.hooks())
}
