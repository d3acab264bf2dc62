//go:build ebiten

package render

import (
	"image/color"
	"math"
	"strconv"
	"time"

	"hyakumasu/internal/puzzle"
	"hyakumasu/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Screen draws the scenes onto an ebiten image.
type Screen struct {
	dst   *ebiten.Image
	face  font.Face
	frame int
}

// NewScreen constructs a Screen using the built-in bitmap font.
func NewScreen() *Screen {
	return &Screen{face: basicfont.Face7x13}
}

// Begin targets dst for this frame and clears it to the background.
func (s *Screen) Begin(dst *ebiten.Image) {
	s.dst = dst
	s.frame++
	dst.Fill(Background)
}

// DrawTitle paints two counter-rotating frames, the title and the leaderboard.
func (s *Screen) DrawTitle(d *session.Data) {
	angle := float64(s.frame) / 240
	s.strokeSquare(Width/2, Height/2, 500, angle, Frame)
	s.strokeSquare(Width/2, Height/2, 500, -angle, Frame)

	s.centered("HYAKUMASU KEISAN", Width/2, 100, Ink)
	for i, sec := range d.Record {
		text.Draw(s.dst, RankLine(i, sec), s.face, 270, 150+i*30, Ink)
	}
	s.centered("press any key", Width/2, 320, Ink)
}

// DrawGame paints the board, the crosshair on the current cell and the clock.
func (s *Screen) DrawGame(p *puzzle.Puzzle) {
	if p == nil {
		return
	}
	const span = CellSize * (puzzle.Size + 1)
	ox, oy := float32(BoardX), float32(BoardY)

	if !p.Done() {
		cx := ox + float32((p.Cursor()%puzzle.Size+1)*CellSize)
		cy := oy + float32((p.Cursor()/puzzle.Size+1)*CellSize)
		vector.DrawFilledRect(s.dst, ox, cy, span, CellSize, Crosshair, false)
		vector.DrawFilledRect(s.dst, cx, oy, CellSize, span, Crosshair, false)
		vector.DrawFilledRect(s.dst, cx, cy, CellSize, CellSize, Cursor, false)
	}

	rows, cols := p.RowFactors(), p.ColFactors()
	for i := 0; i < puzzle.Size; i++ {
		mid := int((float64(i) + 1.5) * CellSize)
		s.centered(strconv.Itoa(cols[i]), BoardX+mid, BoardY+CellSize/2, Ink)
		s.centered(strconv.Itoa(rows[i]), BoardX+CellSize/2, BoardY+mid, Ink)
	}

	for i := 0; i <= puzzle.Size+1; i++ {
		off := float32(i * CellSize)
		vector.StrokeLine(s.dst, ox+off, oy, ox+off, oy+span, 1, Rule, false)
		vector.StrokeLine(s.dst, ox, oy+off, ox+span, oy+off, 1, Rule, false)
	}

	for y := 0; y < puzzle.Size; y++ {
		for x := 0; x < puzzle.Size; x++ {
			v := p.Cell(x, y)
			if v == "" {
				continue
			}
			s.centered(v, BoardX+int((float64(x)+1.5)*CellSize), BoardY+int((float64(y)+1.5)*CellSize), Ink)
		}
	}

	vector.DrawFilledCircle(s.dst, 540, 80, 60, TimerDisc, true)
	s.centered(Clock(int(p.Elapsed()/time.Second)), 540, 80, color.White)
}

// DrawScore paints the result banner and the leaderboard, highlighting the
// row the last run landed on.
func (s *Screen) DrawScore(d *session.Data, shown time.Duration) {
	banner := float32(Sweep(shown, 0, Width))
	vector.DrawFilledRect(s.dst, (Width-banner)/2, 100-22, banner, 45, Crosshair, false)
	s.centered("RESULT "+Clock(d.Previous), Width/2, 100, Ink)

	if rank := d.Rank(); rank >= 0 {
		w := float32(Sweep(shown, 200*time.Millisecond, Width))
		y := float32(145 + rank*30)
		vector.DrawFilledRect(s.dst, (Width-w)/2, y, w, 30, RecordGlow(s.frame), false)
	}
	for i, sec := range d.Record {
		text.Draw(s.dst, RankLine(i, sec), s.face, 270, 165+i*30, Ink)
	}
}

// DrawFade covers the whole screen with white at the given opacity.
func (s *Screen) DrawFade(alpha float64) {
	vector.DrawFilledRect(s.dst, 0, 0, Width, Height, FadeColor(alpha), false)
}

func (s *Screen) centered(str string, cx, cy int, clr color.Color) {
	b := text.BoundString(s.face, str)
	x := cx - b.Dx()/2 - b.Min.X
	y := cy - (b.Min.Y+b.Max.Y)/2
	text.Draw(s.dst, str, s.face, x, y, clr)
}

func (s *Screen) strokeSquare(cx, cy, size, angle float64, clr color.Color) {
	h := size / 2
	var pts [4][2]float32
	for i, c := range [4][2]float64{{-h, -h}, {h, -h}, {h, h}, {-h, h}} {
		sin, cos := math.Sincos(angle)
		pts[i] = [2]float32{
			float32(cx + c[0]*cos - c[1]*sin),
			float32(cy + c[0]*sin + c[1]*cos),
		}
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(s.dst, a[0], a[1], b[0], b[1], 5, clr, true)
	}
}
