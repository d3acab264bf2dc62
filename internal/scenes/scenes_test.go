package scenes

import (
	"bytes"
	"errors"
	"log"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"hyakumasu/internal/core"
	"hyakumasu/internal/leaderboard"
	"hyakumasu/internal/puzzle"
	"hyakumasu/internal/session"
)

type fakeInput struct {
	activate bool
	text     string
	erase    int
}

func (f *fakeInput) AnyActivation() bool {
	v := f.activate
	f.activate = false
	return v
}

func (f *fakeInput) PollText() string {
	s := f.text
	f.text = ""
	return s
}

func (f *fakeInput) PollErase() int {
	n := f.erase
	f.erase = 0
	return n
}

type fakeView struct {
	last   string
	puzzle *puzzle.Puzzle
	shown  time.Duration
}

func (v *fakeView) DrawTitle(*session.Data) { v.last = Title }

func (v *fakeView) DrawGame(p *puzzle.Puzzle) {
	v.last = Game
	v.puzzle = p
}

func (v *fakeView) DrawScore(_ *session.Data, shown time.Duration) {
	v.last = Score
	v.shown = shown
}

type countingCue struct{ n int }

func (c *countingCue) PlayAccept() { c.n++ }

type failingStore struct {
	loadErr error
}

func (f failingStore) Load() (session.Record, error) { return session.Record{}, f.loadErr }
func (f failingStore) Save(session.Record) error    { return errors.New("disk full") }

type rig struct {
	m     *Manager
	data  *session.Data
	clock *core.ManualClock
	input *fakeInput
	view  *fakeView
	cue   *countingCue
	logs  *bytes.Buffer
}

func newRig(t *testing.T, store leaderboard.Store) *rig {
	t.Helper()
	r := &rig{
		data:  session.Default(),
		clock: core.NewManualClock(),
		input: &fakeInput{},
		view:  &fakeView{},
		cue:   &countingCue{},
		logs:  &bytes.Buffer{},
	}
	m, err := NewManager(r.data, Deps{
		Input: r.input,
		View:  r.view,
		Cue:   r.cue,
		Store: store,
		Rand:  core.NewRand(11),
		Clock: r.clock,
		Log:   log.New(r.logs, "", 0),
	})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	r.m = m
	return r
}

func (r *rig) frame(t *testing.T, d time.Duration) {
	t.Helper()
	r.clock.Advance(d)
	if err := r.m.AdvanceFrame(); err != nil {
		t.Fatalf("advance: %v", err)
	}
}

// enterGame presses a key on the title screen and waits out the fade.
func (r *rig) enterGame(t *testing.T) {
	t.Helper()
	r.frame(t, 16*time.Millisecond)
	r.input.activate = true
	r.frame(t, 16*time.Millisecond)
	if r.m.Current() != Game {
		t.Fatalf("current = %s, want Game", r.m.Current())
	}
	r.frame(t, TitleToGame)
	if r.m.Transitioning() {
		t.Fatal("title fade did not finish")
	}
}

// play answers every cell, one per frame, with step between frames.
func (r *rig) play(t *testing.T, step time.Duration) {
	t.Helper()
	for i := 0; i < puzzle.Cells; i++ {
		p := r.view.puzzle
		if p == nil {
			t.Fatal("game view never drawn")
		}
		c := p.Cursor()
		r.input.text = p.Product(c%puzzle.Size, c/puzzle.Size)
		r.frame(t, step)
	}
}

func TestFastRunEntersLeaderboard(t *testing.T) {
	store := &leaderboard.Memory{}
	r := newRig(t, store)
	r.enterGame(t)

	// The first answered frame starts the clock; 99 more steps of 1.02s
	// finish the grid at 100.98s.
	r.play(t, 1020*time.Millisecond)

	want := session.Record{100, 222, 333, 444, 555}
	if r.data.Record != want {
		t.Fatalf("record = %v, want %v", r.data.Record, want)
	}
	if r.data.Previous != 100 {
		t.Fatalf("previous = %d, want 100", r.data.Previous)
	}
	if store.Saves != 1 {
		t.Fatalf("saves = %d, want 1", store.Saves)
	}
	saved, _ := store.Load()
	if saved != want {
		t.Fatalf("saved = %v, want %v", saved, want)
	}
	if r.cue.n != puzzle.Cells {
		t.Fatalf("accept cues = %d, want %d", r.cue.n, puzzle.Cells)
	}
	if r.m.Current() != Score || !r.m.Transitioning() {
		t.Fatalf("current=%s transitioning=%v, want fading to Score", r.m.Current(), r.m.Transitioning())
	}

	// The grid stays on screen while it fades out.
	r.frame(t, GameToScore/4)
	if r.view.last != Game {
		t.Fatalf("drew %s during fade-out, want Game", r.view.last)
	}
	r.frame(t, GameToScore)
	if r.view.last != Score || r.m.Transitioning() {
		t.Fatalf("drew %s, transitioning=%v", r.view.last, r.m.Transitioning())
	}

	r.input.activate = true
	r.frame(t, 16*time.Millisecond)
	r.frame(t, ScoreToTitle)
	if r.m.Current() != Title || r.view.last != Title {
		t.Fatalf("current=%s drew=%s, want Title", r.m.Current(), r.view.last)
	}
	if r.data.Record != want {
		t.Fatalf("title reload changed record to %v", r.data.Record)
	}
}

func TestSlowRunKeepsLeaderboard(t *testing.T) {
	store := &leaderboard.Memory{}
	r := newRig(t, store)
	r.enterGame(t)
	// 99 steps of 7.08s is 700.92s.
	r.play(t, 7080*time.Millisecond)

	if r.data.Record != session.DefaultRecord {
		t.Fatalf("record = %v, want defaults", r.data.Record)
	}
	if r.data.Previous != 700 {
		t.Fatalf("previous = %d, want 700", r.data.Previous)
	}
	if store.Saves != 0 {
		t.Fatalf("saved %d times for a non-record", store.Saves)
	}
	if r.m.Current() != Score {
		t.Fatalf("current = %s, want Score", r.m.Current())
	}
}

func TestInputIgnoredDuringFade(t *testing.T) {
	r := newRig(t, nil)
	r.frame(t, 0)
	r.input.activate = true
	r.frame(t, 0)
	if !r.m.Transitioning() {
		t.Fatal("expected a fade to Game")
	}
	r.input.text = "12"
	r.frame(t, TitleToGame/2)
	if r.input.text != "12" {
		t.Fatal("game consumed input while fading in")
	}
}

func TestWrongAnswerThenErase(t *testing.T) {
	r := newRig(t, nil)
	r.enterGame(t)
	p := r.view.puzzle
	want := p.Product(0, 0)

	r.input.text = "x"
	r.frame(t, time.Second)
	if p.Cursor() != 0 || p.Pending() != "" {
		t.Fatalf("non-digit changed state: cursor=%d pending=%q", p.Cursor(), p.Pending())
	}

	wrong := want + "9"
	if len(want) == 2 {
		wrong = "1"
		if want == "1" {
			wrong = "2"
		}
	}
	r.input.text = wrong
	r.frame(t, time.Second)
	if p.Cursor() != 0 {
		t.Fatalf("wrong answer %q accepted for %q", wrong, want)
	}

	r.input.erase = 2
	r.input.text = want
	r.frame(t, time.Second)
	if p.Cursor() != 1 {
		t.Fatalf("cursor = %d after erase and retype of %q", p.Cursor(), want)
	}
	if r.cue.n != 1 {
		t.Fatalf("cues = %d, want 1", r.cue.n)
	}
}

func TestTitleLoadsPersistedLeaderboard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score.bin")
	store := leaderboard.NewFile(path)
	saved := session.Record{10, 20, 30, 40, 50}
	if err := store.Save(saved); err != nil {
		t.Fatal(err)
	}
	r := newRig(t, store)
	if r.data.Record != saved {
		t.Fatalf("record = %v, want %v", r.data.Record, saved)
	}
	if r.data.Previous != session.DefaultRecord[4] {
		t.Fatalf("previous = %d, want default", r.data.Previous)
	}
}

func TestTitleRejectsCorruptLeaderboard(t *testing.T) {
	r := newRig(t, failingStore{loadErr: leaderboard.ErrCorrupt})
	if r.data.Record != session.DefaultRecord {
		t.Fatalf("record = %v, want defaults", r.data.Record)
	}
	if !strings.Contains(r.logs.String(), "corrupt") {
		t.Fatalf("corrupt leaderboard not logged: %q", r.logs.String())
	}
}

func TestSaveFailureIsLoggedAndGameContinues(t *testing.T) {
	r := newRig(t, failingStore{loadErr: leaderboard.ErrNotFound})
	r.enterGame(t)
	r.play(t, 100*time.Millisecond)
	if !strings.Contains(r.logs.String(), "disk full") {
		t.Fatalf("save failure not logged: %q", r.logs.String())
	}
	if r.m.Current() != Score {
		t.Fatalf("current = %s, want Score", r.m.Current())
	}
	if r.data.Record[0] != r.data.Previous {
		t.Fatalf("in-memory record %v lacks new best %d", r.data.Record, r.data.Previous)
	}
}

func TestScoreStopwatchRuns(t *testing.T) {
	r := newRig(t, nil)
	if err := r.m.ChangeScene(Score, 0); err != nil {
		t.Fatal(err)
	}
	r.frame(t, 300*time.Millisecond)
	if r.view.last != Score || r.view.shown != 300*time.Millisecond {
		t.Fatalf("drew %s shown=%v", r.view.last, r.view.shown)
	}
}
