// Package solver implements a brute-force backtracking search over a single
// Sudoku board. The search is iterative, with an explicit frame stack, so an
// adversarial input cannot blow the goroutine stack and cancellation checks
// can run at any cadence.
package solver

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/domino14/sudorace/board"
)

var (
	// ErrSearchExhausted means the engine backtracked past its root frame:
	// the board admits no solution.
	ErrSearchExhausted = errors.New("search space exhausted; puzzle has no solution")
	// ErrStopped means the cancellation probe fired and the search unwound
	// without finishing. The board may be left partially filled.
	ErrStopped = errors.New("search stopped early")
)

// DefaultCheckCadence is how many visited cells pass between cancellation
// checks when the caller does not set one.
const DefaultCheckCadence = 64

// Probe is consulted periodically during the search; returning true stops
// the engine. A Probe must not block for long and must release any lock it
// takes on every path.
type Probe func() bool

// A frame is one branching point: an originally-empty cell, the guess
// rotation it inherited on entry, and how many candidates it has consumed.
type frame struct {
	row, col int
	rot      int
	tried    int
	depth    int
}

// Engine runs the search over one exclusively-owned board. The zero value is
// not usable; call Init first.
type Engine struct {
	b        *board.Board
	startRow int
	startCol int
	rotation int

	cadence int
	probe   Probe

	visited atomic.Uint64
}

// Init points the engine at a board and a starting cursor. The scan begins
// one cell past (startRow, startCol), wrapping row-major. rotation seeds the
// guess order: the first candidate tried anywhere is rotation+1 (wrapping
// 9 to 1), and the rotation is carried across cells within the run, so
// different seeds explore genuinely different guess orders on the same scan
// path.
func (e *Engine) Init(b *board.Board, startRow, startCol, rotation int) {
	e.b = b
	e.startRow = startRow
	e.startCol = startCol
	e.rotation = rotation
	e.cadence = DefaultCheckCadence
}

func (e *Engine) SetProbe(p Probe) {
	e.probe = p
}

// SetCheckCadence sets how many visited cells pass between cancellation
// checks. Smaller is more responsive, larger contends less on the probe's
// lock. Non-positive disables the checks entirely.
func (e *Engine) SetCheckCadence(k int) {
	e.cadence = k
}

func (e *Engine) Board() *board.Board {
	return e.b
}

// Visited returns how many cell visits the engine has made so far. Safe to
// read from another goroutine.
func (e *Engine) Visited() uint64 {
	return e.visited.Load()
}

// Solve runs the search to completion. On a nil return the engine's board
// holds a full solution; an already-solved board succeeds without touching
// any cell. Returns ErrSearchExhausted if every candidate at every level
// fails, and ErrStopped (or the context error) if cancelled mid-search.
func (e *Engine) Solve(ctx context.Context) error {
	row, col := e.startRow, e.startCol
	rot := e.rotation
	depth := 0
	stack := make([]frame, 0, board.CellCount)

	for depth < board.CellCount {
		n := e.visited.Add(1)
		if e.cadence > 0 && n%uint64(e.cadence) == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			if e.probe != nil && e.probe() {
				return ErrStopped
			}
		}

		// Advance the cursor one cell, column fastest, wrapping row-major.
		col++
		if col == board.Dim {
			col = 0
			row++
			if row == board.Dim {
				row = 0
			}
		}
		depth++

		if e.b.Get(row, col) != 0 {
			// A given; no branching here.
			continue
		}

		stack = append(stack, frame{row: row, col: col, rot: rot, depth: depth})

		// Place the next workable candidate on the deepest frame,
		// backtracking while frames are out of candidates.
		for {
			f := &stack[len(stack)-1]
			placed := false
			for f.tried < board.Dim {
				f.tried++
				f.rot++
				if f.rot == board.Dim+1 {
					f.rot = 1
				}
				if e.b.Allowed(f.rot, f.row, f.col) {
					e.b.Set(f.row, f.col, f.rot)
					placed = true
					break
				}
			}
			if placed {
				// Descend: deeper cells inherit this frame's rotation.
				rot = f.rot
				row, col, depth = f.row, f.col, f.depth
				break
			}
			// All nine candidates failed here. Erase and back up.
			e.b.Set(f.row, f.col, 0)
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				log.Debug().Uint64("visited", e.visited.Load()).Msg("search-exhausted")
				return ErrSearchExhausted
			}
		}
	}
	return nil
}
