// Package term is a tcell frontend for the drill: it feeds key and mouse
// events to the scenes and draws them as text.
package term

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	"hyakumasu/internal/puzzle"
	"hyakumasu/internal/render"
	"hyakumasu/internal/scenes"
	"hyakumasu/internal/session"

	"github.com/gdamore/tcell/v2"
)

var (
	_ scenes.Input  = (*Terminal)(nil)
	_ scenes.Eraser = (*Terminal)(nil)
	_ scenes.View   = (*Terminal)(nil)
	_ scenes.Cue    = (*Terminal)(nil)
)

const cellWidth = 4

// Terminal implements the scene collaborators on a tcell screen.
type Terminal struct {
	screen tcell.Screen
	style  tcell.Style
	frame  int

	activated  bool
	buttonDown bool
	erase      int
	text       []rune
	quit       bool
}

// New wraps an initialised screen.
func New(s tcell.Screen) *Terminal {
	return &Terminal{
		screen: s,
		style:  tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(rgb(render.Background)),
	}
}

// HandleEvent buffers one tcell event for the next frame.
func (t *Terminal) HandleEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
			t.quit = true
			return
		}
		t.activated = true
		switch e.Key() {
		case tcell.KeyRune:
			t.text = append(t.text, e.Rune())
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			t.erase++
		}
	case *tcell.EventMouse:
		down := e.Buttons()&tcell.Button1 != 0
		if down && !t.buttonDown {
			t.activated = true
		}
		t.buttonDown = down
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

// Quit reports whether the player asked to leave.
func (t *Terminal) Quit() bool { return t.quit }

// AnyActivation reports a key press or click once.
func (t *Terminal) AnyActivation() bool {
	v := t.activated
	t.activated = false
	return v
}

// PollText returns and clears the typed runes.
func (t *Terminal) PollText() string {
	s := string(t.text)
	t.text = t.text[:0]
	return s
}

// PollErase returns and clears the backspace count.
func (t *Terminal) PollErase() int {
	n := t.erase
	t.erase = 0
	return n
}

// PlayAccept rings the terminal bell.
func (t *Terminal) PlayAccept() { _ = t.screen.Beep() }

// Begin clears the screen for a new frame.
func (t *Terminal) Begin() {
	t.frame++
	t.screen.SetStyle(t.style)
	t.screen.Clear()
}

// End presents the frame and drops input nobody consumed.
func (t *Terminal) End() {
	t.screen.Show()
	t.activated = false
	t.text = t.text[:0]
	t.erase = 0
}

// DrawTitle lists the leaderboard under the title.
func (t *Terminal) DrawTitle(d *session.Data) {
	w, _ := t.screen.Size()
	t.centered(w/2, 2, "HYAKUMASU KEISAN", t.style.Bold(true))
	for i, sec := range d.Record {
		t.centered(w/2, 5+i, render.RankLine(i, sec), t.style)
	}
	t.centered(w/2, 12, "press any key (Esc quits)", t.style.Dim(true))
}

// DrawGame draws the factor headers, the answers so far and the clock.
func (t *Terminal) DrawGame(p *puzzle.Puzzle) {
	if p == nil {
		return
	}
	const ox, oy = 2, 1
	rows, cols := p.RowFactors(), p.ColFactors()
	head := t.style.Bold(true)
	t.print(ox, oy, fmt.Sprintf("%*s", cellWidth-1, "x"), head)
	for i := 0; i < puzzle.Size; i++ {
		t.print(ox+(i+1)*cellWidth, oy, fmt.Sprintf("%*d", cellWidth-1, cols[i]), head)
		t.print(ox, oy+2+i, fmt.Sprintf("%*d", cellWidth-1, rows[i]), head)
	}
	for i := 0; i < (puzzle.Size+1)*cellWidth; i++ {
		t.screen.SetContent(ox+i, oy+1, tcell.RuneHLine, nil, t.style)
	}

	cursor := t.style.Reverse(true)
	for y := 0; y < puzzle.Size; y++ {
		for x := 0; x < puzzle.Size; x++ {
			st := t.style
			if !p.Done() && y*puzzle.Size+x == p.Cursor() {
				st = cursor
			}
			t.print(ox+(x+1)*cellWidth, oy+2+y, fmt.Sprintf("%*s", cellWidth-1, p.Cell(x, y)), st)
		}
	}

	t.print(ox+(puzzle.Size+2)*cellWidth, oy+2, render.Clock(int(p.Elapsed()/time.Second)), head)
	t.print(ox+(puzzle.Size+2)*cellWidth, oy+4, strconv.Itoa(p.Cursor())+"/"+strconv.Itoa(puzzle.Cells), t.style)
}

// DrawScore shows the last time and the leaderboard, marking the new record.
func (t *Terminal) DrawScore(d *session.Data, shown time.Duration) {
	w, _ := t.screen.Size()
	t.centered(w/2, 2, "RESULT "+render.Clock(d.Previous), t.style.Bold(true))
	rank := d.Rank()
	for i, sec := range d.Record {
		st := t.style
		line := render.RankLine(i, sec)
		if i == rank && shown >= 200*time.Millisecond {
			st = st.Reverse(t.frame/20%2 == 0)
			line += "  NEW"
		}
		t.centered(w/2, 5+i, line, st)
	}
}

// DrawFade lowers a white curtain over the top alpha share of the rows.
func (t *Terminal) DrawFade(alpha float64) {
	w, h := t.screen.Size()
	rows := int(alpha*float64(h) + 0.5)
	st := tcell.StyleDefault.Background(tcell.ColorWhite)
	for y := 0; y < rows; y++ {
		for x := 0; x < w; x++ {
			t.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

func (t *Terminal) print(x, y int, s string, st tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, st)
	}
}

func (t *Terminal) centered(cx, y int, s string, st tcell.Style) {
	t.print(cx-len([]rune(s))/2, y, s, st)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
