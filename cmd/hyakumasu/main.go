//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"hyakumasu/internal/app"
	"hyakumasu/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("hyakumasu")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(render.Width*cfg.Scale, render.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
