//go:build ebiten

package app

import (
	"log"

	"hyakumasu/internal/sound"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Cue plays the answer chime, overlapping rapid repeats.
type Cue struct {
	ctx     *audio.Context
	pcm     []byte
	players []*audio.Player
}

// NewCue creates the audio context. Only one may exist per process.
func NewCue() *Cue {
	return &Cue{ctx: audio.NewContext(sound.SampleRate), pcm: sound.Accept()}
}

// PlayAccept starts the chime on an idle player, creating one if needed.
func (c *Cue) PlayAccept() {
	for _, p := range c.players {
		if p.IsPlaying() {
			continue
		}
		if err := p.Rewind(); err != nil {
			log.Printf("cue: %v", err)
			return
		}
		p.Play()
		return
	}
	p := c.ctx.NewPlayerFromBytes(c.pcm)
	c.players = append(c.players, p)
	p.Play()
}
