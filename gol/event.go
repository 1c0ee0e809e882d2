package gol

import (
	"fmt"

	"uk.ac.bris.cs/cellsim/util"
)

// Event represents any event reported by Run while the world evolves.
type Event interface {
	fmt.Stringer
	GetCompletedTurns() int
}

// State represents a change in the state of a run.
type State int

const (
	Executing State = iota
	Quitting
)

func (state State) String() string {
	switch state {
	case Executing:
		return "Executing"
	case Quitting:
		return "Quitting"
	default:
		return "Incorrect State"
	}
}

// StateChange is sent when the run starts executing and when it finishes.
type StateChange struct {
	CompletedTurns int
	NewState       State
}

// CellFlipped is sent for every cell whose value changed during a turn.
type CellFlipped struct {
	CompletedTurns int
	Cell           util.Cell
}

// TurnComplete is sent once every worker has finished a turn.
type TurnComplete struct {
	CompletedTurns int
}

// FinalTurnComplete is sent after the last turn with every live cell.
type FinalTurnComplete struct {
	CompletedTurns int
	Alive          []util.Cell
}

func (event StateChange) String() string {
	return fmt.Sprintf("%v", event.NewState)
}

func (event StateChange) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event CellFlipped) String() string {
	return fmt.Sprintf("Cell flipped at (%d, %d)", event.Cell.X, event.Cell.Y)
}

func (event CellFlipped) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event TurnComplete) String() string {
	return fmt.Sprintf("Turn %d complete", event.CompletedTurns)
}

func (event TurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event FinalTurnComplete) String() string {
	return fmt.Sprintf("Final turn %d: %d alive", event.CompletedTurns, len(event.Alive))
}

func (event FinalTurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}
