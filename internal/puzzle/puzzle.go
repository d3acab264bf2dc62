// Package puzzle implements a 10x10 multiplication drill: shuffled row and
// column factors, a cursor walking the grid in row-major order, and a
// stopwatch measuring how long the player takes to fill every cell.
package puzzle

import (
	"math/rand/v2"
	"strconv"
	"time"

	"hyakumasu/internal/core"
)

const (
	// Size is the number of rows and columns.
	Size = 10
	// Cells is the number of answers needed to finish.
	Cells = Size * Size
	// MaxInput is the longest answer that can be typed.
	MaxInput = 2
)

// Outcome reports what a Tick did.
type Outcome struct {
	Accepted bool
	Complete bool
	Seconds  int
}

// Puzzle is the state of one drill session.
type Puzzle struct {
	rows    []int
	cols    []int
	grid    *core.Grid[string]
	cursor  int
	pending []rune
	watch   *core.Stopwatch
}

// New builds a puzzle with independently shuffled factors drawn from r.
func New(r *rand.Rand, clock core.Clock) *Puzzle {
	return &Puzzle{
		rows:  core.Permutation(r, Size),
		cols:  core.Permutation(r, Size),
		grid:  core.NewGrid[string](Size, Size),
		watch: core.NewStopwatch(clock),
	}
}

// SubmitChar appends c to the pending answer when it is a decimal digit and
// there is room. Anything else is dropped.
func (p *Puzzle) SubmitChar(c rune) {
	if c < '0' || c > '9' || len(p.pending) >= MaxInput {
		return
	}
	p.pending = append(p.pending, c)
}

// SubmitText feeds every rune of s through SubmitChar.
func (p *Puzzle) SubmitText(s string) {
	for _, c := range s {
		p.SubmitChar(c)
	}
}

// Tick runs one frame of game logic.
func (p *Puzzle) Tick() Outcome {
	if p.Done() {
		return Outcome{Complete: true, Seconds: p.watch.Seconds()}
	}
	if !p.watch.Started() {
		p.watch.Start()
	}

	x, y := p.cursor%Size, p.cursor/Size
	typed := string(p.pending)
	p.grid.Set(x, y, typed)

	var out Outcome
	if typed == p.Product(x, y) {
		p.cursor++
		p.pending = p.pending[:0]
		out.Accepted = true
	}
	if p.Done() {
		p.watch.Pause()
		out.Complete = true
		out.Seconds = p.watch.Seconds()
	}
	return out
}

// Product returns the expected answer for (x, y) as plain decimal text.
func (p *Puzzle) Product(x, y int) string {
	return strconv.Itoa(p.cols[x] * p.rows[y])
}

// RowFactors returns the multiplicand of each row.
func (p *Puzzle) RowFactors() []int { return p.rows }

// ColFactors returns the multiplicand of each column.
func (p *Puzzle) ColFactors() []int { return p.cols }

// Cell returns the text shown in (x, y).
func (p *Puzzle) Cell(x, y int) string { return p.grid.At(x, y) }

// Cursor returns the row-major index of the next unanswered cell.
func (p *Puzzle) Cursor() int { return p.cursor }

// Pending returns the answer typed so far for the current cell.
func (p *Puzzle) Pending() string { return string(p.pending) }

// Done reports whether every cell has been answered.
func (p *Puzzle) Done() bool { return p.cursor >= Cells }

// Elapsed returns the time spent on the puzzle so far.
func (p *Puzzle) Elapsed() time.Duration { return p.watch.Elapsed() }

// Erase removes the last pending character, if any.
func (p *Puzzle) Erase() {
	if len(p.pending) > 0 {
		p.pending = p.pending[:len(p.pending)-1]
	}
}
