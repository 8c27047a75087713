package engine

import (
	"fmt"
	"strings"
)

// Board is the occupancy grid. Row 0 is the top row, so pieces come to rest
// at the highest free row index of their column.
type Board struct {
	width  int
	height int
	cells  []Player // row-major, index row*width+col
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(height, width int) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if height > MaxDimension || width > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d, limit %d per side", ErrBoardTooLarge, width, height, MaxDimension)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Player, width*height),
	}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// CellAt returns the occupant of (row, col).
// Out-of-bounds coordinates read as Empty.
func (b *Board) CellAt(row, col int) Player {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[row*b.width+col]
}

// LandingRow returns the row where a piece dropped into col comes to rest.
// ok is false when the column is already full.
func (b *Board) LandingRow(col int) (row int, ok bool, err error) {
	if col < 0 || col >= b.width {
		return -1, false, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidColumn, col, b.width)
	}
	// Bottom-up: the first empty cell sits on top of the stack.
	for y := b.height - 1; y >= 0; y-- {
		if b.cells[y*b.width+col] == Empty {
			return y, true, nil
		}
	}
	return -1, false, nil
}

// Place puts player's piece at (row, col).
// Callers must ask LandingRow first; anything else is a programming error
// and panics rather than corrupting the grid.
func (b *Board) Place(row, col int, player Player) {
	if !player.Valid() {
		panic(fmt.Sprintf("engine: place with invalid player %d", uint8(player)))
	}
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("engine: place at (%d,%d) outside %dx%d board", row, col, b.width, b.height))
	}
	if b.cells[row*b.width+col] != Empty {
		panic(fmt.Sprintf("engine: place at occupied cell (%d,%d)", row, col))
	}
	if landing, _, _ := b.LandingRow(col); landing != row {
		panic(fmt.Sprintf("engine: place at (%d,%d) but column %d lands at row %d", row, col, col, landing))
	}
	b.cells[row*b.width+col] = player
}

// IsFull reports whether every cell is occupied.
func (b *Board) IsFull() bool {
	// Gravity keeps columns bottom-anchored, so the top row decides.
	for x := 0; x < b.width; x++ {
		if b.cells[x] == Empty {
			return false
		}
	}
	return true
}

// ColumnHeight returns how many pieces are stacked in col.
func (b *Board) ColumnHeight(col int) int {
	if col < 0 || col >= b.width {
		return 0
	}
	n := 0
	for y := b.height - 1; y >= 0 && b.cells[y*b.width+col] != Empty; y-- {
		n++
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Player, len(b.cells))
	copy(cells, b.cells)
	return &Board{width: b.width, height: b.height, cells: cells}
}

// String renders the board as text, one line per row, top row first.
// '.' is empty, 'X' is Player1 and 'O' is Player2.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			sb.WriteByte(glyph(b.cells[y*b.width+x]))
		}
	}
	return sb.String()
}

func glyph(p Player) byte {
	switch p {
	case Player1:
		return 'X'
	case Player2:
		return 'O'
	default:
		return '.'
	}
}
