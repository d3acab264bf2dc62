package main

import (
	"flag"
	"log"
	"os"

	"hyakumasu/internal/app"
	"hyakumasu/internal/core"
	"hyakumasu/internal/leaderboard"
	"hyakumasu/internal/scenes"
	"hyakumasu/internal/session"
	"hyakumasu/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg, err := app.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := s.Init(); err != nil {
		log.Fatal(err)
	}
	s.EnableMouse()
	s.HideCursor()

	t := term.New(s)
	m, err := scenes.NewManager(session.Default(), scenes.Deps{
		Input: t,
		View:  t,
		Cue:   t,
		Store: leaderboard.NewFile(cfg.RecordFile),
		Rand:  core.NewRand(cfg.Seed),
	})
	if err != nil {
		s.Fini()
		log.Fatal(err)
	}
	m.SetOverlay(t.DrawFade)

	err = t.Run(m, cfg.TPS)
	s.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
