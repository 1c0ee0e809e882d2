package gol

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	world, err := Decode([]string{"O.x\r\n", "#OO\n"})
	if err != nil {
		t.Fatal(err)
	}
	if world.Height() != 2 || world.Width() != 3 {
		t.Fatalf("got %dx%d, want 3x2", world.Width(), world.Height())
	}
	want := [][]uint8{{1, 0, 0}, {0, 1, 1}}
	for y, row := range want {
		for x, v := range row {
			if world.Get(y, x) != v {
				t.Errorf("cell (%d, %d) = %d, want %d", x, y, world.Get(y, x), v)
			}
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"no rows", nil},
		{"empty first row", []string{"\n", "OO\n"}},
		{"short row", []string{"OOO", "OO"}},
		{"long row", []string{"OO", "O.O"}},
		{"trailing blank row", []string{"OO", "..", ""}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := Decode(test.lines); !errors.Is(err, ErrMalformedInput) {
				t.Fatalf("got %v, want ErrMalformedInput", err)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	world, err := Decode([]string{"O..", "xOO"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Encode(world), "O..\n.OO\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCodecRoundTrip(t *testing.T) {
	inputs := []string{
		"O\n",
		".\n",
		"O.O.\n.O.O\nOOOO\n",
		"abcO\r\nO..z\r\n",
	}
	for _, input := range inputs {
		first, err := ReadGrid(strings.NewReader(input))
		if err != nil {
			t.Fatalf("%q: %v", input, err)
		}
		var out bytes.Buffer
		if err := WriteGrid(&out, first); err != nil {
			t.Fatal(err)
		}
		second, err := ReadGrid(&out)
		if err != nil {
			t.Fatal(err)
		}
		if !first.Equal(second) {
			t.Errorf("%q did not survive a round trip", input)
		}
	}
}
