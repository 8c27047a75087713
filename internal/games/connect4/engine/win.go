package engine

// direction is a (row, col) step along a line.
type direction struct {
	dRow, dCol int
}

// lines lists the four directions a run can take from its starting cell:
// horizontal, vertical, diagonal (down-right) and anti-diagonal (down-left).
var lines = [4]direction{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// CheckWin reports whether player owns ToWin contiguous cells anywhere on
// the board. It scans every cell as a potential run start.
func CheckWin(b *Board, player Player) bool {
	_, ok := WinningLine(b, player)
	return ok
}

// WinningLine returns the cells of the first winning run found for player,
// scanning cells in row-major order.
func WinningLine(b *Board, player Player) ([]Cell, bool) {
	if !player.Valid() {
		return nil, false
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			for _, d := range lines {
				if runFrom(b, y, x, d, player) {
					run := make([]Cell, ToWin)
					for i := range run {
						run[i] = Cell{Row: y + i*d.dRow, Col: x + i*d.dCol}
					}
					return run, true
				}
			}
		}
	}
	return nil, false
}

// runFrom reports whether the ToWin cells starting at (row, col) along d are
// all on the board and owned by player.
func runFrom(b *Board, row, col int, d direction, player Player) bool {
	for i := 0; i < ToWin; i++ {
		r, c := row+i*d.dRow, col+i*d.dCol
		if !b.InBounds(r, c) || b.cells[r*b.width+c] != player {
			return false
		}
	}
	return true
}

// CheckWinAt reports whether a winning run for player passes through
// (row, col). It only walks the four lines through that cell, so it is the
// cheap check to run right after a placement.
func CheckWinAt(b *Board, row, col int, player Player) bool {
	if !player.Valid() || b.CellAt(row, col) != player {
		return false
	}
	for _, d := range lines {
		count := 1 + countDir(b, row, col, d.dRow, d.dCol, player) +
			countDir(b, row, col, -d.dRow, -d.dCol, player)
		if count >= ToWin {
			return true
		}
	}
	return false
}

// countDir counts player's contiguous cells from (row, col), exclusive,
// stepping by (dRow, dCol).
func countDir(b *Board, row, col, dRow, dCol int, player Player) int {
	n := 0
	r, c := row+dRow, col+dCol
	for b.InBounds(r, c) && b.cells[r*b.width+c] == player {
		n++
		r += dRow
		c += dCol
	}
	return n
}
