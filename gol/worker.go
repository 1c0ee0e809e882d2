package gol

import "fmt"

// stepFunc computes the next turn for a set of rows.
type stepFunc func(rows []Row, s Snapshot) error

// Step calculates the next state of every cell in rows, reading neighbours
// only from s and writing only into the given row views.
func Step(rows []Row, s Snapshot) error {
	for _, row := range rows {
		if row.Y < 0 || row.Y >= s.height || len(row.Cells) != s.width {
			return fmt.Errorf("row %d does not fit a %dx%d world", row.Y, s.width, s.height)
		}
		for x := range row.Cells {
			row.Cells[x] = NextValue(s.Get(row.Y, x), s.NeighbourCount(row.Y, x))
		}
	}
	return nil
}

// worker owns a fixed set of rows for the whole run. It receives one snapshot
// per turn and marks the turn done once its rows are written.
type worker struct {
	id    int
	rows  []Row
	step  stepFunc
	turns chan Snapshot
	// err is only read by the distributor after the turn's barrier.
	err error
}

func (w *worker) run(done func()) {
	for s := range w.turns {
		w.err = w.safeStep(s)
		done()
	}
}

// safeStep turns a panic inside a step into an error so one bad worker fails
// the turn instead of taking the process down mid-write.
func (w *worker) safeStep(s Snapshot) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: worker %d: %v", ErrWorkerFailed, w.id, r)
		}
	}()
	if err := w.step(w.rows, s); err != nil {
		return fmt.Errorf("%w: worker %d: %w", ErrWorkerFailed, w.id, err)
	}
	return nil
}
