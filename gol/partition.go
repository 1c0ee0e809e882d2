package gol

import "iter"

// RowsFor yields the rows owned by worker out of workers: every row y with
// y % workers == worker. Each row of the world is owned by exactly one worker.
func RowsFor(worker, workers, height int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if workers < 1 || worker < 0 {
			return
		}
		for y := worker; y < height; y += workers {
			if !yield(y) {
				return
			}
		}
	}
}
