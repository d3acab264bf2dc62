package scenes

import (
	"errors"

	"hyakumasu/internal/leaderboard"
	"hyakumasu/internal/scene"
	"hyakumasu/internal/session"
)

type titleScene struct {
	ctx  *scene.Context[session.Data]
	deps Deps
}

// Init refreshes the leaderboard from the store. Without a saved leaderboard
// the in-memory one stays; an unreadable one is reported and ignored.
func (t *titleScene) Init() {
	rec, err := t.deps.Store.Load()
	switch {
	case err == nil:
		t.ctx.Data.Record = rec
	case errors.Is(err, leaderboard.ErrNotFound):
	default:
		t.deps.Log.Printf("title: keeping current leaderboard: %v", err)
	}
}

func (t *titleScene) Update() {
	if t.deps.Input.AnyActivation() {
		change(t.ctx, t.deps, Game, TitleToGame)
	}
}

func (t *titleScene) Render() { t.deps.View.DrawTitle(t.ctx.Data) }
