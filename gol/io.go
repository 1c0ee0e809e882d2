package gol

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	aliveGlyph = 'O'
	deadGlyph  = '.'
)

// Longest row ReadGrid accepts.
const maxRowBytes = 16 << 20

// Decode builds a world from rows of text. 'O' is a live cell and any other
// character is dead. Trailing line terminators are ignored. Every row must be
// as long as the first.
func Decode(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedInput)
	}
	width := len([]rune(strings.TrimRight(lines[0], "\r\n")))
	if width == 0 {
		return nil, fmt.Errorf("%w: first row is empty", ErrMalformedInput)
	}
	world, err := NewGrid(len(lines), width)
	if err != nil {
		return nil, err
	}
	for y, line := range lines {
		row := []rune(strings.TrimRight(line, "\r\n"))
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrMalformedInput, y, len(row), width)
		}
		for x, glyph := range row {
			if glyph == aliveGlyph {
				world.Set(y, x, 1)
			}
		}
	}
	return world, nil
}

// Encode renders the world one line per row, 'O' for alive and '.' for dead.
func Encode(g *Grid) string {
	var b strings.Builder
	b.Grow(g.height * (g.width + 1))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.Get(y, x) == 1 {
				b.WriteByte(aliveGlyph)
			} else {
				b.WriteByte(deadGlyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ReadGrid reads every line from r and decodes them into a world.
func ReadGrid(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRowBytes)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading world: %w", err)
	}
	return Decode(lines)
}

// WriteGrid writes the encoded world to w.
func WriteGrid(w io.Writer, g *Grid) error {
	out := bufio.NewWriter(w)
	if _, err := out.WriteString(Encode(g)); err != nil {
		return fmt.Errorf("writing world: %w", err)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("writing world: %w", err)
	}
	return nil
}
