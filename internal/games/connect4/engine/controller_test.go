package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultController(t *testing.T, opts ...Option) *Controller {
	t.Helper()
	c, err := NewController(DefaultHeight, DefaultWidth, opts...)
	require.NoError(t, err)
	return c
}

func TestNewControllerInitialState(t *testing.T) {
	c := newDefaultController(t)

	assert.Equal(t, Player1, c.Active())
	assert.Equal(t, Status{Phase: InProgress, Active: Player1}, c.Status())
	assert.Empty(t, c.Moves())
	_, ok := c.LastMove()
	assert.False(t, ok)
	assert.Nil(t, c.WinningLine())
}

func TestNewControllerInvalidDimensions(t *testing.T) {
	_, err := NewController(0, DefaultWidth)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestTurnAlternates(t *testing.T) {
	c := newDefaultController(t)

	// Spread pieces so nobody lines up four.
	cols := []int{0, 1, 2, 3, 4, 5, 6, 0, 1, 2}
	want := Player1
	for i, col := range cols {
		move, err := c.DropPiece(col)
		require.NoError(t, err)
		require.Equal(t, Placed, move.Outcome)
		assert.Equal(t, want, move.Player, "move %d", i+1)

		want = want.Other()
		assert.Equal(t, want, c.Active(), "after move %d", i+1)
		assert.Equal(t, Status{Phase: InProgress, Active: want}, move.Status)
	}
}

func TestDropPieceColumnFull(t *testing.T) {
	c := newDefaultController(t)

	for i := 0; i < DefaultHeight; i++ {
		move, err := c.DropPiece(2)
		require.NoError(t, err)
		require.Equal(t, Placed, move.Outcome)
		assert.Equal(t, DefaultHeight-1-i, move.Row)
	}

	active := c.Active()
	moves := c.Moves()
	before := c.Board().String()

	move, err := c.DropPiece(2)
	require.NoError(t, err)
	assert.Equal(t, ColumnFull, move.Outcome)
	assert.Equal(t, -1, move.Row)

	// A rejected move changes nothing, including whose turn it is.
	assert.Equal(t, active, c.Active())
	assert.Equal(t, moves, c.Moves())
	assert.Equal(t, before, c.Board().String())
}

func TestDropPieceInvalidColumn(t *testing.T) {
	c := newDefaultController(t)

	for _, col := range []int{-1, DefaultWidth} {
		_, err := c.DropPiece(col)
		assert.ErrorIs(t, err, ErrInvalidColumn)
	}
	assert.Equal(t, Player1, c.Active())
	assert.Empty(t, c.Moves())
}

func TestLandingRowColumnSevenOutOfRange(t *testing.T) {
	c := newDefaultController(t)

	_, _, err := c.Board().LandingRow(7)
	assert.ErrorIs(t, err, ErrInvalidColumn)
}

func TestVerticalWinScenario(t *testing.T) {
	for _, localized := range []bool{false, true} {
		var opts []Option
		if localized {
			opts = append(opts, WithLocalizedCheck())
		}
		c := newDefaultController(t, opts...)

		for _, col := range []int{0, 1, 0, 1, 0, 1} {
			move, err := c.DropPiece(col)
			require.NoError(t, err)
			require.Equal(t, InProgress, move.Status.Phase)
		}

		move, err := c.DropPiece(0)
		require.NoError(t, err)
		assert.Equal(t, Player1, move.Player)
		assert.Equal(t, 2, move.Row)
		assert.Equal(t, Status{Phase: Won, Winner: Player1}, move.Status)
		assert.Equal(t, []Cell{{2, 0}, {3, 0}, {4, 0}, {5, 0}}, c.WinningLine())

		_, err = c.DropPiece(3)
		assert.ErrorIs(t, err, ErrGameOver)
	}
}

func TestTieScenario(t *testing.T) {
	c := newDefaultController(t)

	seq := tieSequence()
	require.Len(t, seq, 42)

	for i, col := range seq {
		move, err := c.DropPiece(col)
		require.NoError(t, err, "move %d", i+1)
		require.Equal(t, Placed, move.Outcome, "move %d", i+1)
		if i < len(seq)-1 {
			require.Equal(t, InProgress, move.Status.Phase, "move %d\n%s", i+1, c.Board())
		}
	}

	assert.Equal(t, Status{Phase: Tied}, c.Status())
	assert.True(t, c.Board().IsFull())
	assert.Nil(t, c.WinningLine())

	_, err := c.DropPiece(0)
	assert.ErrorIs(t, err, ErrGameOver)
}

// A board filled by a winning final move is a win, never a tie.
func TestWinTakesPrecedenceOverTie(t *testing.T) {
	for _, localized := range []bool{false, true} {
		var opts []Option
		if localized {
			opts = append(opts, WithLocalizedCheck())
		}
		c := newDefaultController(t, opts...)
		c.board = boardFromRows(t,
			"OOXXX.X",
			"XXOOXXO",
			"OOXXOOX",
			"XXOOXXO",
			"OOXXOOX",
			"XXOOXXO",
		)
		require.False(t, CheckWin(c.board, Player1))
		require.False(t, CheckWin(c.board, Player2))

		move, err := c.DropPiece(5)
		require.NoError(t, err)
		assert.Equal(t, 0, move.Row)
		assert.True(t, c.Board().IsFull())
		assert.Equal(t, Status{Phase: Won, Winner: Player1}, move.Status)
	}
}

func TestMovesAndLastMove(t *testing.T) {
	c := newDefaultController(t)

	for _, col := range []int{3, 3, 4} {
		_, err := c.DropPiece(col)
		require.NoError(t, err)
	}

	assert.Equal(t, []int{3, 3, 4}, c.Moves())
	last, ok := c.LastMove()
	require.True(t, ok)
	assert.Equal(t, Cell{Row: 5, Col: 4}, last)

	// Moves returns a copy.
	moves := c.Moves()
	moves[0] = 6
	assert.Equal(t, 3, c.Moves()[0])
}

// Full-scan and localized controllers reach identical results on the
// same move sequences.
func TestControllerDetectorsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))

	for game := 0; game < 300; game++ {
		full := newDefaultController(t)
		local := newDefaultController(t, WithLocalizedCheck())

		for !full.Status().Terminal() {
			col := rng.Intn(DefaultWidth)
			a, errA := full.DropPiece(col)
			b, errB := local.DropPiece(col)
			require.NoError(t, errA)
			require.NoError(t, errB)
			require.Equal(t, a, b, "game %d moves %v", game, full.Moves())
			assertGravity(t, full.Board())
		}
		assert.Equal(t, full.Status(), local.Status())
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Player 2 wins", Status{Phase: Won, Winner: Player2}.String())
	assert.Equal(t, "tie", Status{Phase: Tied}.String())
	assert.Equal(t, "in progress, Player 1 to move", Status{Phase: InProgress, Active: Player1}.String())
}
