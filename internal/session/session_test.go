package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/connect4/internal/games/connect4/engine"
)

func TestNewTableInvalidDimensions(t *testing.T) {
	_, err := NewTable(0, 7)
	assert.ErrorIs(t, err, engine.ErrInvalidDimensions)
}

func TestTablesAreIsolated(t *testing.T) {
	a, err := NewTable(engine.DefaultHeight, engine.DefaultWidth)
	require.NoError(t, err)
	b, err := NewTable(engine.DefaultHeight, engine.DefaultWidth)
	require.NoError(t, err)

	_, err = a.Drop(3)
	require.NoError(t, err)

	assert.Equal(t, engine.Player2, a.Status().Active)
	assert.Equal(t, engine.Player1, b.Status().Active)
	b.Read(func(c *engine.Controller) {
		assert.Equal(t, engine.Empty, c.Board().CellAt(5, 3))
	})
}

// Concurrent drops on one table never lose a move or break alternation.
func TestTableSerializesDrops(t *testing.T) {
	table, err := NewTable(engine.DefaultHeight, engine.DefaultWidth)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for col := 0; col < engine.DefaultWidth; col++ {
		wg.Add(1)
		go func(col int) {
			defer wg.Done()
			for i := 0; i < 3; i++ {
				_, _ = table.Drop(col)
			}
		}(col)
	}
	wg.Wait()

	table.Read(func(c *engine.Controller) {
		moves := c.Moves()
		b := c.Board()

		placed := 0
		for y := 0; y < b.Height(); y++ {
			for x := 0; x < b.Width(); x++ {
				if b.CellAt(y, x) != engine.Empty {
					placed++
				}
			}
		}
		assert.Equal(t, len(moves), placed)

		if !c.Status().Terminal() {
			assert.Equal(t, 3*engine.DefaultWidth, placed)
		}
	})
}

func TestTableRestart(t *testing.T) {
	table, err := NewTable(engine.DefaultHeight, engine.DefaultWidth, engine.WithLocalizedCheck())
	require.NoError(t, err)

	for _, col := range []int{0, 1, 0, 1, 0, 1, 0} {
		_, err := table.Drop(col)
		require.NoError(t, err)
	}
	require.Equal(t, engine.Won, table.Status().Phase)

	_, err = table.Drop(4)
	assert.ErrorIs(t, err, engine.ErrGameOver)

	require.NoError(t, table.Restart())
	assert.Equal(t, engine.Status{Phase: engine.InProgress, Active: engine.Player1}, table.Status())
	assert.Equal(t, 2, table.Games())
}

func TestSessionRecord(t *testing.T) {
	s := New("alice", "127.0.0.1:5000")
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, "alice", s.User())
	assert.Equal(t, "127.0.0.1:5000", s.Remote())

	assert.True(t, s.Record("connect4", engine.Status{Phase: engine.Won, Winner: engine.Player1}, 7))
	assert.True(t, s.Record("connect4", engine.Status{Phase: engine.Won, Winner: engine.Player2}, 12))
	assert.True(t, s.Record("connect4_large", engine.Status{Phase: engine.Won, Winner: engine.Player1}, 9))
	assert.True(t, s.Record("connect4", engine.Status{Phase: engine.Tied}, 42))
	assert.False(t, s.Record("connect4", engine.Status{Phase: engine.InProgress, Active: engine.Player2}, 3))

	assert.Equal(t, Tally{Player1Wins: 2, Player2Wins: 1, Ties: 1}, s.Tally())
	assert.Equal(t, 4, s.Tally().Total())

	results := s.Results()
	require.Len(t, results, 4)
	assert.Equal(t, engine.Tied, results[0].Status.Phase, "most recent first")
	assert.Equal(t, 42, results[0].Moves)
	assert.Equal(t, "connect4_large", results[1].Variant)
	assert.Equal(t, 7, results[3].Moves)
}

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry()

	a := r.Open("alice", "a")
	b := r.Open("bob", "b")
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, 2, r.Count())

	got, ok := r.Get(a.ID())
	require.True(t, ok)
	assert.Same(t, a, got)

	closed, ok := r.Close(a.ID())
	require.True(t, ok)
	assert.Same(t, a, closed)
	assert.Equal(t, 1, r.Count())

	select {
	case <-a.Done():
	default:
		t.Fatal("closed session should be done")
	}

	_, ok = r.Close(a.ID())
	assert.False(t, ok)

	r.CloseAll()
	assert.Equal(t, 0, r.Count())
	select {
	case <-b.Done():
	default:
		t.Fatal("CloseAll should close every session")
	}

	// Closing twice is safe.
	b.Close()
}
