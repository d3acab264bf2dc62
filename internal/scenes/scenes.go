// Package scenes implements the Title, Game and Score scenes of the drill on
// top of the scene manager.
package scenes

import (
	"log"
	"math/rand/v2"
	"time"

	"hyakumasu/internal/core"
	"hyakumasu/internal/leaderboard"
	"hyakumasu/internal/puzzle"
	"hyakumasu/internal/scene"
	"hyakumasu/internal/session"
)

// Scene names.
const (
	Title = "Title"
	Game  = "Game"
	Score = "Score"
)

// Fade durations for each transition.
const (
	TitleToGame  = 500 * time.Millisecond
	GameToScore  = 2000 * time.Millisecond
	ScoreToTitle = 500 * time.Millisecond
)

// Manager is the scene manager type the drill runs on.
type Manager = scene.Manager[session.Data]

// Input is the platform's view of the player.
type Input interface {
	// AnyActivation reports a key or primary pointer button press edge.
	AnyActivation() bool
	// PollText returns the characters typed since the previous poll.
	PollText() string
}

// Eraser is implemented by inputs that can report backspace presses.
type Eraser interface {
	PollErase() int
}

// View draws each scene.
type View interface {
	DrawTitle(d *session.Data)
	DrawGame(p *puzzle.Puzzle)
	DrawScore(d *session.Data, shown time.Duration)
}

// Cue plays sound effects.
type Cue interface {
	PlayAccept()
}

// Deps are the collaborators shared by every scene.
type Deps struct {
	Input Input
	View  View
	Cue   Cue
	Store leaderboard.Store
	Rand  *rand.Rand
	Clock core.Clock
	Log   *log.Logger
}

type silent struct{}

func (silent) PlayAccept() {}

func (d Deps) withDefaults() Deps {
	if d.Cue == nil {
		d.Cue = silent{}
	}
	if d.Store == nil {
		d.Store = &leaderboard.Memory{}
	}
	if d.Rand == nil {
		d.Rand = core.NewRand(0)
	}
	if d.Clock == nil {
		d.Clock = core.SystemClock{}
	}
	if d.Log == nil {
		d.Log = log.Default()
	}
	return d
}

// NewManager builds a manager over data with all three scenes registered and
// Title started.
func NewManager(data *session.Data, deps Deps) (*Manager, error) {
	deps = deps.withDefaults()
	m := scene.NewManager(data, deps.Clock)
	Register(m, deps)
	if err := m.Start(Title); err != nil {
		return nil, err
	}
	return m, nil
}

// Register adds the Title, Game and Score scenes to m.
func Register(m *Manager, deps Deps) {
	deps = deps.withDefaults()
	m.Register(Title, func(ctx *scene.Context[session.Data]) scene.Scene {
		return &titleScene{ctx: ctx, deps: deps}
	})
	m.Register(Game, func(ctx *scene.Context[session.Data]) scene.Scene {
		return &gameScene{ctx: ctx, deps: deps}
	})
	m.Register(Score, func(ctx *scene.Context[session.Data]) scene.Scene {
		return &scoreScene{ctx: ctx, deps: deps}
	})
}

func change(ctx *scene.Context[session.Data], deps Deps, name string, fade time.Duration) {
	if err := ctx.ChangeScene(name, fade); err != nil {
		deps.Log.Printf("scenes: %v", err)
	}
}
