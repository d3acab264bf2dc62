// Package scene runs a set of named scenes that share one data value and
// switch between each other with timed fades.
package scene

import (
	"errors"
	"fmt"
	"time"

	"hyakumasu/internal/core"
)

var (
	// ErrUnknownScene is returned when changing to a name that was never registered.
	ErrUnknownScene = errors.New("scene: unknown scene")
	// ErrNoScene is returned when a frame is advanced before Start.
	ErrNoScene = errors.New("scene: no active scene")
)

// Scene is one full-screen mode of the application.
type Scene interface {
	Init()
	Update()
	Render()
}

// Closer is implemented by scenes that hold resources to release when the
// manager drops them.
type Closer interface {
	Close()
}

// Factory builds a fresh scene instance bound to ctx.
type Factory[D any] func(ctx *Context[D]) Scene

// Context is handed to every scene at construction.
type Context[D any] struct {
	// Data is the value shared by all scenes of the manager.
	Data *D
	m    *Manager[D]
}

// ChangeScene requests a transition to name. See Manager.ChangeScene.
func (c *Context[D]) ChangeScene(name string, fade time.Duration) error {
	return c.m.ChangeScene(name, fade)
}

// Phase is the state of the transition machine.
type Phase int

const (
	// Idle means no transition is running and the active scene updates.
	Idle Phase = iota
	// FadingOut means the departing scene is being covered.
	FadingOut
	// FadingIn means the incoming scene is being revealed.
	FadingIn
)

func (p Phase) String() string {
	switch p {
	case FadingOut:
		return "fading-out"
	case FadingIn:
		return "fading-in"
	default:
		return "idle"
	}
}

type transition struct {
	phase Phase
	start time.Time
	total time.Duration
	alpha float64
}

// Manager owns the registry, the active scene and the shared data.
type Manager[D any] struct {
	data    *D
	clock   core.Clock
	scenes  map[string]Factory[D]
	overlay func(alpha float64)

	active     Scene
	activeName string
	departing  Scene
	fade       transition
}

// NewManager returns a Manager sharing data between its scenes. A nil clock
// uses the system clock.
func NewManager[D any](data *D, clock core.Clock) *Manager[D] {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &Manager[D]{data: data, clock: clock, scenes: map[string]Factory[D]{}}
}

// Register adds a scene factory under name.
func (m *Manager[D]) Register(name string, f Factory[D]) {
	if name == "" || f == nil {
		return
	}
	m.scenes[name] = f
}

// SetOverlay installs the function that paints the fade cover. It receives
// the cover opacity in [0, 1].
func (m *Manager[D]) SetOverlay(fn func(alpha float64)) { m.overlay = fn }

// Data returns the shared data.
func (m *Manager[D]) Data() *D { return m.data }

// Current returns the name of the active scene. During a fade this is the
// incoming scene.
func (m *Manager[D]) Current() string { return m.activeName }

// Phase reports the transition state.
func (m *Manager[D]) Phase() Phase { return m.fade.phase }

// Transitioning reports whether a fade is running.
func (m *Manager[D]) Transitioning() bool { return m.fade.phase != Idle }

// Alpha returns the current fade cover opacity.
func (m *Manager[D]) Alpha() float64 { return m.fade.alpha }

// Start makes name the active scene without a fade.
func (m *Manager[D]) Start(name string) error {
	return m.ChangeScene(name, 0)
}

// ChangeScene switches to name. A non-positive fade switches immediately;
// otherwise the current scene fades out over the first half of fade and the
// new one fades in over the second half. Requests made while a fade is
// running are ignored.
func (m *Manager[D]) ChangeScene(name string, fade time.Duration) error {
	f, ok := m.scenes[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	if m.fade.phase != Idle {
		return nil
	}

	next := f(&Context[D]{Data: m.data, m: m})
	next.Init()

	if fade <= 0 || m.active == nil {
		closeScene(m.active)
		m.active, m.activeName = next, name
		return nil
	}

	m.departing = m.active
	m.active, m.activeName = next, name
	m.fade = transition{phase: FadingOut, start: m.clock.Now(), total: fade}
	return nil
}

// Step runs one frame of logic: the active scene's Update when idle, the
// fade clock otherwise.
func (m *Manager[D]) Step() error {
	if m.active == nil {
		return ErrNoScene
	}
	if m.fade.phase != Idle {
		m.advanceFade(m.clock.Now())
		return nil
	}
	m.active.Update()
	return nil
}

// Draw renders the visible scene and the fade cover.
func (m *Manager[D]) Draw() {
	switch m.fade.phase {
	case FadingOut:
		if m.departing != nil {
			m.departing.Render()
		}
	default:
		if m.active != nil {
			m.active.Render()
		}
	}
	if m.fade.phase != Idle && m.overlay != nil {
		m.overlay(m.fade.alpha)
	}
}

// AdvanceFrame is Step followed by Draw.
func (m *Manager[D]) AdvanceFrame() error {
	if err := m.Step(); err != nil {
		return err
	}
	m.Draw()
	return nil
}

func (m *Manager[D]) advanceFade(now time.Time) {
	elapsed := now.Sub(m.fade.start)
	half := m.fade.total / 2
	switch {
	case elapsed >= m.fade.total:
		closeScene(m.departing)
		m.departing = nil
		m.fade = transition{}
	case elapsed >= half:
		m.fade.phase = FadingIn
		m.fade.alpha = 1 - ratio(elapsed-half, m.fade.total-half)
	default:
		m.fade.alpha = ratio(elapsed, half)
	}
}

func ratio(n, d time.Duration) float64 {
	if d <= 0 {
		return 1
	}
	r := float64(n) / float64(d)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

func closeScene(s Scene) {
	if c, ok := s.(Closer); ok {
		c.Close()
	}
}
