package term

import (
	"time"

	"hyakumasu/internal/scenes"

	"github.com/gdamore/tcell/v2"
)

// Frame draws one frame of m: Begin, AdvanceFrame, End.
func (t *Terminal) Frame(m *scenes.Manager) error {
	t.Begin()
	if err := m.AdvanceFrame(); err != nil {
		return err
	}
	t.End()
	return nil
}

// Run pumps screen events and advances m tps times per second until the
// player quits.
func (t *Terminal) Run(m *scenes.Manager, tps int) error {
	if tps <= 0 {
		tps = 60
	}
	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	tick := time.NewTicker(time.Second / time.Duration(tps))
	defer tick.Stop()

	for {
		select {
		case ev := <-events:
			t.HandleEvent(ev)
			if t.quit {
				return nil
			}
		case <-tick.C:
			if err := t.Frame(m); err != nil {
				return err
			}
		}
	}
}
