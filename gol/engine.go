package gol

import (
	"fmt"

	"uk.ac.bris.cs/cellsim/util"
)

// Run evolves world in place for p.Turns turns using p.Threads workers.
//
// If events is not nil, Run reports every flipped cell and completed turn on
// it and closes it before returning. A failing worker aborts the run and
// leaves world as it was at the start of the failed turn.
func Run(p Params, world *Grid, events chan<- Event) error {
	return run(p, world, events, Step)
}

func run(p Params, world *Grid, events chan<- Event, step stepFunc) error {
	if events != nil {
		defer close(events)
	}
	switch {
	case p.Threads <= 0:
		return fmt.Errorf("%w: %d", ErrInvalidWorkerCount, p.Threads)
	case p.Turns < 0:
		return fmt.Errorf("turns must not be negative, got %d", p.Turns)
	case world == nil:
		return fmt.Errorf("%w: no world", ErrMalformedInput)
	}

	d, err := startDistributor(world, p.Threads, step)
	if err != nil {
		return err
	}
	defer d.stop()

	if events != nil {
		events <- StateChange{CompletedTurns: 0, NewState: Executing}
	}

	buf := make([]uint8, len(world.cells))
	for turn := 0; turn < p.Turns; turn++ {
		previous := world.snapshot(buf)
		if err := d.turn(previous); err != nil {
			world.restore(previous)
			return fmt.Errorf("turn %d: %w", turn, err)
		}
		if events != nil {
			sendFlipped(events, turn+1, previous, world)
			events <- TurnComplete{CompletedTurns: turn + 1}
		}
	}

	if events != nil {
		events <- FinalTurnComplete{CompletedTurns: p.Turns, Alive: world.AliveCells()}
		events <- StateChange{CompletedTurns: p.Turns, NewState: Quitting}
	}
	return nil
}

// sendFlipped reports every cell that differs between the previous turn and
// the live world.
func sendFlipped(events chan<- Event, turn int, previous Snapshot, world *Grid) {
	for y := 0; y < world.height; y++ {
		for x := 0; x < world.width; x++ {
			if previous.Get(y, x) != world.Get(y, x) {
				events <- CellFlipped{CompletedTurns: turn, Cell: util.Cell{X: x, Y: y}}
			}
		}
	}
}
