package gol

// Generations is the number of turns every run of the program performs.
const Generations = 100

// Params provides the details of how to run the simulation.
type Params struct {
	Turns   int
	Threads int
}
