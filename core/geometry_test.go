package core

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionDeltas(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Cell
	}{
		{Up, Cell{-1, 0}},
		{Down, Cell{1, 0}},
		{Left, Cell{0, -2}},
		{Right, Cell{0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dir.Delta())
		})
	}
}

func TestAdjacentExcludesOnlyOpposite(t *testing.T) {
	for _, dir := range []Direction{Up, Right, Down, Left} {
		arr := dir.Adjacent()
		adj := arr[:]
		assert.Contains(t, adj, dir, "%s should be able to keep its heading", dir)
		assert.NotContains(t, adj, dir.Opposite(), "%s must not reverse", dir)
		assert.Len(t, adj, 3)
	}
}

func TestWrap(t *testing.T) {
	b := Bounds{Rows: 24, Cols: 80}

	tests := []struct {
		name string
		cell Cell
		dir  Direction
		want Cell
	}{
		{"Interior down", Cell{10, 10}, Down, Cell{11, 10}},
		{"Interior right", Cell{10, 10}, Right, Cell{10, 12}},
		{"Top edge up", Cell{0, 10}, Up, Cell{22, 10}},
		{"Reserved last row", Cell{22, 10}, Down, Cell{0, 10}},
		{"Left edge", Cell{5, 1}, Left, Cell{5, 79}},
		{"Left edge exact", Cell{5, 0}, Left, Cell{5, 79}},
		{"Right edge", Cell{5, 78}, Right, Cell{5, 0}},
		{"Last column reachable", Cell{5, 77}, Right, Cell{5, 79}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.cell, tt.dir, b))
		})
	}
}

// A cell outside both axes only gets the first matching correction
func TestWrapSingleBranchPrecedence(t *testing.T) {
	b := Bounds{Rows: 24, Cols: 80}

	// Row and column both underflow: only the row is fixed
	got := Wrap(Cell{0, -3}, Up, b)
	assert.Equal(t, Cell{22, -3}, got)

	// Row overflow wins over column overflow
	got = Wrap(Cell{22, 95}, Down, b)
	assert.Equal(t, Cell{0, 95}, got)

	// Row underflow wins over column overflow
	got = Wrap(Cell{0, 90}, Up, b)
	assert.Equal(t, Cell{22, 90}, got)
}

func TestWrapStaysInBounds(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	dirs := []Direction{Up, Right, Down, Left}

	for i := 0; i < 5000; i++ {
		b := Bounds{Rows: 3 + r.IntN(60), Cols: 3 + r.IntN(200)}
		cell := Cell{Row: r.IntN(b.Rows - 1), Col: r.IntN(b.Cols)}
		dir := dirs[r.IntN(len(dirs))]

		got := Wrap(cell, dir, b)
		if got.Row < 0 || got.Row > b.Rows-2 || got.Col < 0 || got.Col > b.Cols-1 {
			t.Fatalf("Wrap(%v, %s, %v) = %v, out of [0,%d]x[0,%d]",
				cell, dir, b, got, b.Rows-2, b.Cols-1)
		}
	}
}

func TestIntRange(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := IntRange(r, 6, 10)
		assert.GreaterOrEqual(t, v, 6)
		assert.LessOrEqual(t, v, 10)
		seen[v] = true
	}
	assert.Len(t, seen, 5, "every value in the range should appear")

	assert.Equal(t, 4, IntRange(r, 4, 4))
}
