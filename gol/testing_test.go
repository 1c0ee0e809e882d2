package gol

import (
	"math/rand"
	"testing"
)

// randomWorld returns a reproducible world with roughly half its cells alive.
func randomWorld(t testing.TB, height, width int, seed int64) *Grid {
	t.Helper()
	world, err := NewGrid(height, width)
	if err != nil {
		t.Fatal(err)
	}
	r := rand.New(rand.NewSource(seed))
	for i := range world.cells {
		world.cells[i] = uint8(r.Intn(2))
	}
	return world
}

func mustDecode(t testing.TB, lines ...string) *Grid {
	t.Helper()
	world, err := Decode(lines)
	if err != nil {
		t.Fatal(err)
	}
	return world
}
