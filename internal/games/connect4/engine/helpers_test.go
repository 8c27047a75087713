package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// boardFromRows builds a board from text rows, top row first.
// 'X' is Player1, 'O' is Player2, anything else is empty.
// Gravity is not enforced so tests can set up arbitrary positions.
func boardFromRows(t *testing.T, rows ...string) *Board {
	t.Helper()
	require.NotEmpty(t, rows)

	b, err := NewBoard(len(rows), len(rows[0]))
	require.NoError(t, err)

	for y, row := range rows {
		require.Len(t, row, b.Width(), "row %d has wrong width", y)
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case 'X':
				b.cells[y*b.width+x] = Player1
			case 'O':
				b.cells[y*b.width+x] = Player2
			}
		}
	}
	return b
}

// assertGravity fails if any occupied cell floats above an empty one.
func assertGravity(t *testing.T, b *Board) {
	t.Helper()
	for x := 0; x < b.Width(); x++ {
		seenEmpty := false
		for y := b.Height() - 1; y >= 0; y-- {
			occupied := b.CellAt(y, x) != Empty
			if occupied && seenEmpty {
				t.Fatalf("column %d has a floating piece at row %d:\n%s", x, y, b)
			}
			if !occupied {
				seenEmpty = true
			}
		}
	}
}

// tieSequence fills the default board without any four-in-a-row.
// Each row is filled in the order 0,2,1,3,4,6,5, which yields rows
// alternating between XXOOXXO and OOXXOOX.
func tieSequence() []int {
	row := []int{0, 2, 1, 3, 4, 6, 5}
	seq := make([]int, 0, DefaultWidth*DefaultHeight)
	for i := 0; i < DefaultHeight; i++ {
		seq = append(seq, row...)
	}
	return seq
}
