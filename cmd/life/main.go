//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"boardlife/internal/app"
	"boardlife/internal/core"
	"boardlife/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	geo, err := cfg.Geometry()
	if err != nil {
		log.Fatal(err)
	}

	logger := log.New(os.Stderr, "life: ", log.LstdFlags)
	var debug core.Logger = core.NopLogger
	if cfg.Verbose {
		debug = logger
	}

	run := life.New(geo, cfg.InitialCells(logger), life.WithLogger(debug))
	game := app.New(run, cfg, logger)

	ebiten.SetWindowTitle("boardlife")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.SurfaceW, cfg.SurfaceH)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
