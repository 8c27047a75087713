// Package session isolates games per player session.
//
// A Table serializes moves on one game so that placement, win check and tie
// check run as a single step even when several goroutines (an SSH handler and
// its Bubble Tea program, say) touch the same game. A Registry tracks the
// sessions of a server; sessions never share a Table.
package session

import (
	"sync"

	"github.com/vovakirdan/connect4/internal/games/connect4/engine"
)

// Table owns one game controller and serializes access to it.
type Table struct {
	mu     sync.Mutex
	height int
	width  int
	opts   []engine.Option
	ctrl   *engine.Controller
	games  int
}

// NewTable starts a game on a fresh height x width board.
func NewTable(height, width int, opts ...engine.Option) (*Table, error) {
	ctrl, err := engine.NewController(height, width, opts...)
	if err != nil {
		return nil, err
	}
	return &Table{
		height: height,
		width:  width,
		opts:   opts,
		ctrl:   ctrl,
		games:  1,
	}, nil
}

// Drop applies one move. The whole place/win/tie transaction runs under the
// table lock.
func (t *Table) Drop(col int) (engine.Move, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ctrl.DropPiece(col)
}

// Restart replaces the game with a fresh one of the same size.
func (t *Table) Restart() error {
	ctrl, err := engine.NewController(t.height, t.width, t.opts...)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.ctrl = ctrl
	t.games++
	return nil
}

// Status returns the current game state.
func (t *Table) Status() engine.Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ctrl.Status()
}

// Games returns how many games have been started on this table.
func (t *Table) Games() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.games
}

// Read calls fn with the controller while holding the table lock.
// fn must not retain the controller or mutate it.
func (t *Table) Read(fn func(c *engine.Controller)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(t.ctrl)
}
