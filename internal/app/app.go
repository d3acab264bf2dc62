//go:build ebiten

package app

import (
	"hyakumasu/internal/core"
	"hyakumasu/internal/leaderboard"
	"hyakumasu/internal/render"
	"hyakumasu/internal/scenes"
	"hyakumasu/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the scene manager to the ebiten.Game interface.
type Game struct {
	manager *scenes.Manager
	screen  *render.Screen
	input   *Input
}

// New constructs a Game from cfg, starting on the title scene.
func New(cfg *Config) (*Game, error) {
	g := &Game{screen: render.NewScreen(), input: &Input{}}
	m, err := scenes.NewManager(session.Default(), scenes.Deps{
		Input: g.input,
		View:  g.screen,
		Cue:   NewCue(),
		Store: leaderboard.NewFile(cfg.RecordFile),
		Rand:  core.NewRand(cfg.Seed),
	})
	if err != nil {
		return nil, err
	}
	m.SetOverlay(g.screen.DrawFade)
	g.manager = m
	return g, nil
}

// Update polls input and runs one frame of scene logic.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.input.Poll()
	return g.manager.Step()
}

// Draw renders the visible scene and any fade cover.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Begin(screen)
	g.manager.Draw()
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.Width, render.Height
}
