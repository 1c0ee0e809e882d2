package gol

import "testing"

func TestStepWritesOnlyItsRows(t *testing.T) {
	world := randomWorld(t, 6, 4, 7)
	before := world.Clone()
	s := snapshotOf(world)

	rows, err := world.Rows(RowsFor(1, 3, world.Height()))
	if err != nil {
		t.Fatal(err)
	}
	if err := Step(rows, s); err != nil {
		t.Fatal(err)
	}

	for y := 0; y < world.Height(); y++ {
		for x := 0; x < world.Width(); x++ {
			want := before.Get(y, x)
			if y%3 == 1 {
				want = NextValue(s.Get(y, x), s.NeighbourCount(y, x))
			}
			if got := world.Get(y, x); got != want {
				t.Errorf("(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestStepRejectsForeignRow(t *testing.T) {
	small := mustDecode(t, "..", "..")
	big := mustDecode(t, "...", "...", "...")
	rows, err := big.Rows(RowsFor(0, 1, big.Height()))
	if err != nil {
		t.Fatal(err)
	}
	if err := Step(rows, snapshotOf(small)); err == nil {
		t.Fatal("expected an error for rows from another world")
	}
}
