package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"hyakumasu/internal/app"
	"hyakumasu/internal/leaderboard"
	"hyakumasu/internal/render"
	"hyakumasu/internal/session"

	"github.com/fatih/color"
)

func main() {
	fs := flag.NewFlagSet("scores", flag.ExitOnError)
	reset := fs.Bool("reset", false, "overwrite the leaderboard with the defaults")
	cfg, err := app.Load(fs, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	store := leaderboard.NewFile(cfg.RecordFile)
	if *reset {
		if err := store.Save(session.DefaultRecord); err != nil {
			log.Fatal(err)
		}
		color.Green("Leaderboard at %s reset to defaults.", store.Path())
	}

	rec, err := store.Load()
	switch {
	case errors.Is(err, leaderboard.ErrNotFound):
		color.Yellow("No leaderboard at %s yet; showing defaults.", store.Path())
		rec = session.DefaultRecord
	case errors.Is(err, leaderboard.ErrCorrupt):
		color.Red("%v", err)
		os.Exit(1)
	case err != nil:
		log.Fatal(err)
	}

	color.Yellow("LEADERBOARD")
	for i, sec := range rec {
		color.Cyan("  %s", render.RankLine(i, sec))
	}
}
