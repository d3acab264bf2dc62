//go:build ebiten

package app

import (
	"hyakumasu/internal/scenes"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ scenes.Eraser = (*Input)(nil)

// Input collects one frame of keyboard and mouse state.
type Input struct {
	activated bool
	erase     int
	chars     []rune
	keys      []ebiten.Key
}

// Poll replaces the buffered state with this frame's input.
func (in *Input) Poll() {
	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	in.activated = len(in.keys) > 0 || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.erase = 0
	for _, k := range in.keys {
		if k == ebiten.KeyBackspace {
			in.erase++
		}
	}
	in.chars = ebiten.AppendInputChars(in.chars[:0])
}

// AnyActivation reports a press edge once.
func (in *Input) AnyActivation() bool {
	v := in.activated
	in.activated = false
	return v
}

// PollText returns and clears the typed characters.
func (in *Input) PollText() string {
	s := string(in.chars)
	in.chars = in.chars[:0]
	return s
}

// PollErase returns and clears the backspace count.
func (in *Input) PollErase() int {
	n := in.erase
	in.erase = 0
	return n
}
