package render

import (
	"fmt"
	"image/color"
	"math"
	"time"
)

// Logical screen size shared by the frontends.
const (
	Width  = 640
	Height = 360
)

// Game board geometry in logical pixels.
const (
	BoardX   = 100
	BoardY   = 15
	CellSize = 30
)

var (
	Background = color.RGBA{R: 255, G: 244, B: 233, A: 255}
	Ink        = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	Rule       = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	Frame      = color.RGBA{R: 207, G: 215, B: 225, A: 255}
	Cursor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// Premultiplied translucent accents.
	Crosshair = premultiply(50, 120, 200, 60)
	TimerDisc = premultiply(50, 120, 200, 160)
)

func premultiply(r, g, b, a uint8) color.RGBA {
	f := float64(a) / 255
	return color.RGBA{
		R: uint8(math.Round(float64(r) * f)),
		G: uint8(math.Round(float64(g) * f)),
		B: uint8(math.Round(float64(b) * f)),
		A: a,
	}
}

// FadeColor is the white transition cover at the given opacity.
func FadeColor(alpha float64) color.RGBA {
	a := uint8(math.Round(clamp01(alpha) * 255))
	return color.RGBA{R: a, G: a, B: a, A: a}
}

// RecordGlow is the pulsing highlight behind a freshly set record.
func RecordGlow(frame int) color.RGBA {
	a := 0.5 + 0.5*math.Sin(float64(frame)/20)
	return premultiply(255, 204, 128, uint8(math.Round(a*0.5*255)))
}

// Clock formats whole seconds as mm:ss.
func Clock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// RankLine formats one leaderboard row.
func RankLine(i, seconds int) string {
	return fmt.Sprintf("%d: %s", i+1, Clock(seconds))
}

// Sweep returns how far a bar that grows one unit per millisecond after delay
// has extended after shown, capped at max.
func Sweep(shown, delay time.Duration, max float64) float64 {
	ms := float64((shown - delay).Milliseconds())
	if ms < 0 {
		return 0
	}
	if ms > max {
		return max
	}
	return ms
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
