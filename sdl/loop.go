package sdl

import (
	"fmt"

	"uk.ac.bris.cs/cellsim/gol"
	"uk.ac.bris.cs/cellsim/util"
)

// Run shows the world evolving until events is closed. It must be called from
// the main OS thread. Closing the window stops the drawing, not the run:
// events keep being drained so the simulation never blocks on the viewer.
func Run(width, height int, alive []util.Cell, events <-chan gol.Event) {
	w, err := NewWindow(int32(width), int32(height))
	if err != nil {
		fmt.Println("Viewer unavailable:", err)
		for range events {
		}
		return
	}
	defer w.Destroy()

	for _, cell := range alive {
		w.FlipCell(cell.X, cell.Y)
	}
	visible := true
	if err := w.RenderFrame(); err != nil {
		fmt.Println("Render error:", err)
		visible = false
	}

	for event := range events {
		if visible && w.Closed() {
			w.Hide()
			visible = false
		}
		switch e := event.(type) {
		case gol.CellFlipped:
			w.FlipCell(e.Cell.X, e.Cell.Y)
		case gol.TurnComplete:
			if !visible {
				continue
			}
			if err := w.RenderFrame(); err != nil {
				fmt.Println("Render error:", err)
				w.Hide()
				visible = false
			}
		case gol.FinalTurnComplete, gol.StateChange:
			fmt.Println(e)
		}
	}
}
