package gol

import (
	"errors"
	"sync"
)

// distributor keeps one worker goroutine per thread alive for the whole run
// and releases them one turn at a time.
type distributor struct {
	workers []*worker
	barrier sync.WaitGroup
}

// startDistributor partitions the world's rows between threads workers and
// starts them. Each worker is only given write views over its own rows.
func startDistributor(world *Grid, threads int, step stepFunc) (*distributor, error) {
	d := &distributor{}
	for id := 0; id < threads; id++ {
		rows, err := world.Rows(RowsFor(id, threads, world.height))
		if err != nil {
			d.stop()
			return nil, err
		}
		w := &worker{id: id, rows: rows, step: step, turns: make(chan Snapshot, 1)}
		d.workers = append(d.workers, w)
		go w.run(d.barrier.Done)
	}
	return d, nil
}

// turn hands s to every worker and blocks until all of them have finished.
func (d *distributor) turn(s Snapshot) error {
	d.barrier.Add(len(d.workers))
	for _, w := range d.workers {
		w.turns <- s
	}
	d.barrier.Wait()

	var errs []error
	for _, w := range d.workers {
		if w.err != nil {
			errs = append(errs, w.err)
		}
	}
	return errors.Join(errs...)
}

func (d *distributor) stop() {
	for _, w := range d.workers {
		close(w.turns)
	}
}
