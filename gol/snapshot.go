package gol

// Snapshot is the state of the world at the start of a turn. Workers read
// neighbours from it while writing the next state into the live Grid, so no
// worker ever observes another worker's writes from the same turn.
type Snapshot struct {
	height int
	width  int
	cells  []uint8
}

func (s Snapshot) Height() int { return s.height }
func (s Snapshot) Width() int  { return s.width }

// Get returns the value of the cell at row y, column x.
func (s Snapshot) Get(y, x int) uint8 {
	return s.cells[y*s.width+x]
}

// wrap maps any offset coordinate back onto [0, n).
func wrap(v, n int) int {
	return ((v % n) + n) % n
}

// NeighbourCount returns the number of live cells among the 8 cells around
// (y, x), wrapping around the world edges.
func (s Snapshot) NeighbourCount(y, x int) int {
	numNeighbours := 0
	for yInc := -1; yInc <= 1; yInc++ {
		testY := wrap(y+yInc, s.height)
		for xInc := -1; xInc <= 1; xInc++ {
			if yInc == 0 && xInc == 0 {
				continue
			}
			testX := wrap(x+xInc, s.width)
			numNeighbours += int(s.cells[testY*s.width+testX])
		}
	}
	return numNeighbours
}
