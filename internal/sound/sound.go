// Package sound synthesizes the short PCM effects played by the frontends.
package sound

import (
	"encoding/binary"
	"math"
	"time"
)

// SampleRate is the rate every effect is rendered at.
const SampleRate = 44100

// Tone renders amp*sin(2*pi*freq*t)*exp(-decay*t) for d as 16-bit
// little-endian stereo PCM.
func Tone(freq, decay, amp float64, d time.Duration, rate int) []byte {
	n := int(float64(rate) * d.Seconds())
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(rate)
		v := amp * math.Sin(2*math.Pi*freq*t) * math.Exp(-decay*t)
		s := uint16(int16(math.Round(v * math.MaxInt16)))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
	}
	return buf
}

// Accept is the chime played when an answer is accepted.
func Accept() []byte {
	return Tone(1320, 10, 0.6, time.Second, SampleRate)
}
