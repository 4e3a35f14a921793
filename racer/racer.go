// Package racer runs N independent backtracking searches over copies of the
// same puzzle and reports the first solution found. Each worker gets its own
// board, a guess-rotation offset spread across 1-9, and one shared random
// start cursor; the diversified guess orders are what make the race pay off,
// not any partitioning of the search space.
package racer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/domino14/sudorace/board"
	"github.com/domino14/sudorace/report"
	"github.com/domino14/sudorace/solver"
)

var ErrBadThreadCount = fmt.Errorf("%w: thread count must be at least 1", board.ErrInvalidInput)

// A SearchTask is the per-worker record: an exclusively-owned board copy,
// a start cursor, and a guess-rotation seed. It is built once by the
// supervisor and never shared between workers.
type SearchTask struct {
	Board    *board.Board
	StartRow int
	StartCol int
	Rotation int
}

type Racer struct {
	threads  int
	cadence  int
	reporter report.Reporter

	// Written only by the race winner, read by the supervisor after the
	// errgroup joins.
	solution *board.Board
	elapsed  time.Duration
}

func New(threads, cadence int, reporter report.Reporter) *Racer {
	return &Racer{threads: threads, cadence: cadence, reporter: reporter}
}

// buildTasks deep-copies the puzzle once per worker. Rotation offsets are
// spread evenly across 1-9; the start cursor is drawn once and shared by
// every task.
func (r *Racer) buildTasks(b *board.Board) []*SearchTask {
	startRow := frand.Intn(board.Dim)
	startCol := frand.Intn(board.Dim)
	tasks := make([]*SearchTask, 0, r.threads)
	for i := 0; i < r.threads; i++ {
		tasks = append(tasks, &SearchTask{
			Board:    b.Copy(),
			StartRow: startRow,
			StartCol: startCol,
			Rotation: int(float64(board.Dim) / float64(r.threads) * float64(i)),
		})
	}
	return tasks
}

// Run races the workers and returns the winning board and the wall-clock
// time from launch to the latch transition. The reporter is invoked exactly
// once, by the winner, before any worker is released. If every worker proves
// the board unsolvable the race returns ErrSearchExhausted.
func (r *Racer) Run(ctx context.Context, b *board.Board) (*board.Board, time.Duration, error) {
	if r.threads < 1 {
		return nil, 0, ErrBadThreadCount
	}
	coord := NewCoordinator()
	tasks := r.buildTasks(b)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Debug().Int("threads", r.threads).
		Int("startRow", tasks[0].StartRow).Int("startCol", tasks[0].StartCol).
		Msg("starting-race")

	tstart := time.Now()
	g := errgroup.Group{}
	for t, task := range tasks {
		t, task := t, task
		g.Go(func() error {
			eng := &solver.Engine{}
			eng.Init(task.Board, task.StartRow, task.StartCol, task.Rotation)
			eng.SetCheckCadence(r.cadence)
			eng.SetProbe(coord.Solved)

			err := eng.Solve(ctx)
			switch {
			case err == nil:
				if !coord.Win() {
					// Finished a hair too late. Exit quietly.
					log.Debug().Int("thread", t).Msg("lost-at-the-wire")
					return nil
				}
				elapsed := time.Since(tstart)
				r.solution = task.Board
				r.elapsed = elapsed
				log.Info().Int("thread", t).
					Uint64("visited", eng.Visited()).
					Float64("elapsed-sec", elapsed.Seconds()).
					Msg("race-won")
				var rerr error
				if r.reporter != nil {
					rerr = r.reporter.Send(&report.Payload{
						Grid:    task.Board,
						Elapsed: elapsed,
					})
				}
				coord.Signal()
				cancel()
				return rerr
			case errors.Is(err, solver.ErrStopped), errors.Is(err, context.Canceled):
				log.Debug().Int("thread", t).Uint64("visited", eng.Visited()).Msg("worker-cancelled")
				return nil
			default:
				// ErrSearchExhausted, or a context deadline. A complete
				// search cannot exhaust on a solvable board, so if one
				// worker exhausts they all will.
				return err
			}
		})
	}

	err := g.Wait()
	if r.solution == nil && err == nil {
		// Should not happen: no winner and no error.
		err = solver.ErrSearchExhausted
	}
	return r.solution, r.elapsed, err
}
