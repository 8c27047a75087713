// Package engine holds the Connect Four rules: the board with its gravity
// drop rule, four-in-a-row detection, and the turn controller.
// It has no external dependencies and never blocks, so the presentation
// layer can drive it from any loop.
package engine

import "fmt"

// Default board dimensions.
const (
	DefaultWidth  = 7
	DefaultHeight = 6

	// ToWin is the run length that wins the game.
	ToWin = 4

	// MaxDimension bounds each side of a board.
	MaxDimension = 1024
)

// Player identifies the occupant of a cell.
type Player uint8

const (
	Empty   Player = 0
	Player1 Player = 1
	Player2 Player = 2
)

// Valid reports whether p is one of the two players.
func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

// Other returns the opponent of p.
func (p Player) Other() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Empty
	}
}

// String returns a human-readable name for the player.
func (p Player) String() string {
	switch p {
	case Empty:
		return "Empty"
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return fmt.Sprintf("Player(%d)", uint8(p))
	}
}

// Cell is a board coordinate.
type Cell struct {
	Row int
	Col int
}

// Phase is the lifecycle stage of a game.
type Phase int

const (
	InProgress Phase = iota
	Won
	Tied
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Tied:
		return "tied"
	default:
		return "unknown"
	}
}

// Status is the game-state notification sent after every move.
// Active is meaningful while InProgress, Winner only when Won.
type Status struct {
	Phase  Phase
	Active Player
	Winner Player
}

// Terminal reports whether no further moves are accepted.
func (s Status) Terminal() bool {
	return s.Phase == Won || s.Phase == Tied
}

// String formats the status for logs and the replay command.
func (s Status) String() string {
	switch s.Phase {
	case Won:
		return fmt.Sprintf("%s wins", s.Winner)
	case Tied:
		return "tie"
	default:
		return fmt.Sprintf("in progress, %s to move", s.Active)
	}
}

// Outcome is the immediate result of a drop request.
type Outcome int

const (
	Placed Outcome = iota
	ColumnFull
)

// String returns the outcome name.
func (o Outcome) String() string {
	if o == ColumnFull {
		return "column_full"
	}
	return "placed"
}

// Move describes what happened to a drop request.
// Row is -1 when the column was full.
type Move struct {
	Outcome Outcome
	Row     int
	Col     int
	Player  Player
	Status  Status
}

// Error is a sentinel error raised by the engine.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidDimensions Error = "engine: board dimensions must be positive"
	ErrBoardTooLarge     Error = "engine: board dimensions exceed the maximum"
	ErrInvalidColumn     Error = "engine: column out of range"
	ErrGameOver          Error = "engine: game is over"
)
