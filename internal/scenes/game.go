package scenes

import (
	"hyakumasu/internal/puzzle"
	"hyakumasu/internal/scene"
	"hyakumasu/internal/session"
)

type gameScene struct {
	ctx    *scene.Context[session.Data]
	deps   Deps
	puzzle *puzzle.Puzzle
	done   bool
}

func (g *gameScene) Init() {
	g.puzzle = puzzle.New(g.deps.Rand, g.deps.Clock)
}

func (g *gameScene) Update() {
	if g.done {
		return
	}
	if e, ok := g.deps.Input.(Eraser); ok {
		for n := e.PollErase(); n > 0; n-- {
			g.puzzle.Erase()
		}
	}
	g.puzzle.SubmitText(g.deps.Input.PollText())

	out := g.puzzle.Tick()
	if out.Accepted {
		g.deps.Cue.PlayAccept()
	}
	if out.Complete {
		g.finish(out.Seconds)
	}
}

func (g *gameScene) finish(seconds int) {
	g.done = true
	if g.ctx.Data.Complete(seconds) {
		if err := g.deps.Store.Save(g.ctx.Data.Record); err != nil {
			g.deps.Log.Printf("game: saving leaderboard: %v", err)
		}
	}
	change(g.ctx, g.deps, Score, GameToScore)
}

func (g *gameScene) Render() { g.deps.View.DrawGame(g.puzzle) }

func (g *gameScene) Close() { g.puzzle = nil }
