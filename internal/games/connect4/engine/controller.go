package engine

// Controller sequences one game: it owns the board and the turn state and
// applies drop requests one at a time. A Controller is not safe for
// concurrent use; wrap it in a session when several goroutines share it.
type Controller struct {
	board     *Board
	active    Player
	status    Status
	moves     []int
	last      Cell
	localized bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLocalizedCheck makes the controller check only the lines through the
// placed piece instead of scanning the whole board.
func WithLocalizedCheck() Option {
	return func(c *Controller) {
		c.localized = true
	}
}

// NewController starts a game on an empty height x width board with
// Player1 to move.
func NewController(height, width int, opts ...Option) (*Controller, error) {
	b, err := NewBoard(height, width)
	if err != nil {
		return nil, err
	}
	c := &Controller{
		board:  b,
		active: Player1,
		status: Status{Phase: InProgress, Active: Player1},
		last:   Cell{Row: -1, Col: -1},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// DropPiece drops the active player's piece into col.
//
// A full column is reported as Move.Outcome == ColumnFull with no state
// change. After a placement the win check runs before the tie check, so a
// board completed by a winning move is a win.
func (c *Controller) DropPiece(col int) (Move, error) {
	if c.status.Terminal() {
		return Move{Row: -1, Col: col, Status: c.status}, ErrGameOver
	}

	row, ok, err := c.board.LandingRow(col)
	if err != nil {
		return Move{Row: -1, Col: col, Status: c.status}, err
	}
	if !ok {
		return Move{Outcome: ColumnFull, Row: -1, Col: col, Player: c.active, Status: c.status}, nil
	}

	// Capture the mover before the turn can toggle.
	mover := c.active
	c.board.Place(row, col, mover)
	c.moves = append(c.moves, col)
	c.last = Cell{Row: row, Col: col}

	switch {
	case c.won(row, col, mover):
		c.status = Status{Phase: Won, Winner: mover}
	case c.board.IsFull():
		c.status = Status{Phase: Tied}
	default:
		c.active = mover.Other()
		c.status = Status{Phase: InProgress, Active: c.active}
	}

	return Move{Outcome: Placed, Row: row, Col: col, Player: mover, Status: c.status}, nil
}

func (c *Controller) won(row, col int, player Player) bool {
	if c.localized {
		return CheckWinAt(c.board, row, col, player)
	}
	return CheckWin(c.board, player)
}

// Status returns the current game state.
func (c *Controller) Status() Status {
	return c.status
}

// Active returns the player whose turn it is.
func (c *Controller) Active() Player {
	return c.active
}

// Board returns the game board. Callers must treat it as read-only.
func (c *Controller) Board() *Board {
	return c.board
}

// Moves returns the columns played so far, in order.
func (c *Controller) Moves() []int {
	out := make([]int, len(c.moves))
	copy(out, c.moves)
	return out
}

// LastMove returns the cell of the most recent placement.
func (c *Controller) LastMove() (Cell, bool) {
	return c.last, len(c.moves) > 0
}

// WinningLine returns the winning run once the game is won.
func (c *Controller) WinningLine() []Cell {
	if c.status.Phase != Won {
		return nil
	}
	line, _ := WinningLine(c.board, c.status.Winner)
	return line
}
