package sdl

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Smallest window edge in pixels; small worlds are scaled up to reach it.
const minWindowEdge = 512

// Window draws a world of Width x Height cells, each cell a square of scale pixels.
type Window struct {
	Width, Height int32
	scale         int32
	window        *sdl.Window
	renderer      *sdl.Renderer
	cells         []bool
}

func scaleFor(width, height int32) int32 {
	edge := width
	if height > edge {
		edge = height
	}
	if edge >= minWindowEdge {
		return 1
	}
	return minWindowEdge / edge
}

// NewWindow initialises SDL and opens a window for a world of the given size.
func NewWindow(width, height int32) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}
	scale := scaleFor(width, height)
	window, err := sdl.CreateWindow("cellsim", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width*scale, height*scale, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl window: %w", err)
	}
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("sdl renderer: %w", err)
	}
	return &Window{
		Width:    width,
		Height:   height,
		scale:    scale,
		window:   window,
		renderer: renderer,
		cells:    make([]bool, width*height),
	}, nil
}

// FlipCell toggles the cell at column x, row y. The change shows on the next frame.
func (w *Window) FlipCell(x, y int) {
	i := int32(y)*w.Width + int32(x)
	w.cells[i] = !w.cells[i]
}

// RenderFrame draws every live cell white on a black background.
func (w *Window) RenderFrame() error {
	if err := w.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return err
	}
	if err := w.renderer.Clear(); err != nil {
		return err
	}
	if err := w.renderer.SetDrawColor(255, 255, 255, 255); err != nil {
		return err
	}
	for i, alive := range w.cells {
		if !alive {
			continue
		}
		x, y := int32(i)%w.Width, int32(i)/w.Width
		rect := sdl.Rect{X: x * w.scale, Y: y * w.scale, W: w.scale, H: w.scale}
		if err := w.renderer.FillRect(&rect); err != nil {
			return err
		}
	}
	w.renderer.Present()
	return nil
}

// Closed drains pending window events and reports whether the user asked to
// close the window.
func (w *Window) Closed() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_q {
				return true
			}
		}
	}
	return false
}

func (w *Window) Hide() {
	w.window.Hide()
}

func (w *Window) Destroy() {
	_ = w.renderer.Destroy()
	_ = w.window.Destroy()
	sdl.Quit()
}
