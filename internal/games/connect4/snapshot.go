package connect4

import "github.com/vovakirdan/connect4/internal/games/connect4/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateTied        GameStateType = "tied"
	StatePausedSmall GameStateType = "paused_small_window"
	StateFailed      GameStateType = "failed"
)

// Snapshot captures the game state for tests and replay output.
type Snapshot struct {
	Variant string
	Width   int
	Height  int
	Board   string // engine.Board.String() rendering
	Moves   []int  // Columns played, 0-indexed
	Cursor  int
	Active  engine.Player
	Winner  engine.Player
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Variant: g.id,
		Width:   g.width,
		Height:  g.height,
		Cursor:  g.cursor,
	}
	if g.table == nil || g.err != nil {
		snap.State = StateFailed
		return snap
	}

	g.table.Read(func(c *engine.Controller) {
		status := c.Status()
		snap.Board = c.Board().String()
		snap.Moves = c.Moves()
		snap.Active = status.Active
		snap.Winner = status.Winner

		switch {
		case g.tooSmall:
			snap.State = StatePausedSmall
		case status.Phase == engine.Won:
			snap.State = StateWon
		case status.Phase == engine.Tied:
			snap.State = StateTied
		default:
			snap.State = StatePlaying
		}
	})
	return snap
}
