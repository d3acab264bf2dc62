package scenes

import (
	"hyakumasu/internal/core"
	"hyakumasu/internal/scene"
	"hyakumasu/internal/session"
)

type scoreScene struct {
	ctx   *scene.Context[session.Data]
	deps  Deps
	watch *core.Stopwatch
}

func (s *scoreScene) Init() {
	s.watch = core.NewStopwatch(s.deps.Clock)
	s.watch.Start()
}

func (s *scoreScene) Update() {
	if s.deps.Input.AnyActivation() {
		change(s.ctx, s.deps, Title, ScoreToTitle)
	}
}

func (s *scoreScene) Render() { s.deps.View.DrawScore(s.ctx.Data, s.watch.Elapsed()) }
