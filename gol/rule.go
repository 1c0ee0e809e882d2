package gol

// NextValue returns the value a cell takes in the next turn.
//
// A live cell survives with 2, 3, 5 or 7 neighbours and dies otherwise.
// A dead cell comes alive with an even, non-zero number of neighbours.
func NextValue(current uint8, neighbours int) uint8 {
	if current == 1 {
		switch neighbours {
		case 0, 1, 4, 6, 8:
			return 0
		default:
			return 1
		}
	}
	if neighbours != 0 && neighbours%2 == 0 {
		return 1
	}
	return 0
}
