// Package connect4 adapts the Connect Four engine to the platform's Game
// interface: it turns input frames into drops and draws the board onto a
// core.Screen.
package connect4

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/connect4/internal/config"
	"github.com/vovakirdan/connect4/internal/core"
	"github.com/vovakirdan/connect4/internal/games/connect4/engine"
	"github.com/vovakirdan/connect4/internal/registry"
	"github.com/vovakirdan/connect4/internal/session"
)

// Variant IDs.
const (
	IDClassic = "connect4"
	IDLarge   = "connect4_large"
)

// Fixed size of the large variant.
const (
	largeWidth  = 9
	largeHeight = 7
)

// Package-level config shared by all games created from the registry.
var (
	cfgMu     sync.RWMutex
	activeCfg = config.Default()
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.Connect4Config) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	activeCfg = cfg
}

// CurrentConfig returns the configuration new games are created with.
func CurrentConfig() config.Connect4Config {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return activeCfg
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New(CurrentConfig())
	})
	registry.Register(IDLarge, func() registry.Game {
		return NewLarge(CurrentConfig())
	})
}

// Game is one Connect Four match played on a single terminal.
type Game struct {
	id    string
	title string
	cfg   config.Connect4Config

	width  int
	height int
	table  *session.Table
	err    error // set when the table could not be created

	cursor int    // Column the next drop goes into
	notice string // One-line feedback for the last action

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game on the board size from cfg.
func New(cfg config.Connect4Config) *Game {
	return &Game{
		id:     IDClassic,
		title:  "Connect Four",
		cfg:    cfg,
		width:  cfg.Board.Width,
		height: cfg.Board.Height,
	}
}

// NewLarge creates a game on a 9x7 board.
func NewLarge(cfg config.Connect4Config) *Game {
	return &Game{
		id:     IDLarge,
		title:  "Connect Four (9x7)",
		cfg:    cfg,
		width:  largeWidth,
		height: largeHeight,
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a new match. The first call creates the table; later calls
// restart it.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cursor = g.width / 2
	g.notice = ""
	g.Resize(cfg)

	if g.table == nil {
		var opts []engine.Option
		if g.cfg.Rules.LocalizedCheck {
			opts = append(opts, engine.WithLocalizedCheck())
		}
		g.table, g.err = session.NewTable(g.height, g.width, opts...)
		return
	}
	g.err = g.table.Restart()
}

// Resize records the screen size and rechecks the layout.
func (g *Game) Resize(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board and HUD.
func (g *Game) checkScreenSize() {
	minW, minH := g.minSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.table == nil || g.err != nil || g.tooSmall || in.Empty() {
		return core.StepResult{State: g.State()}
	}

	changed := false
	switch {
	case in.Has(core.ActionLeft):
		changed = g.moveCursor(-1)
	case in.Has(core.ActionRight):
		changed = g.moveCursor(1)
	}

	if col, ok := in.Column(); ok {
		if col < 0 || col >= g.width {
			g.notice = fmt.Sprintf("No column %d on this board", col+1)
			return core.StepResult{State: g.State(), Changed: true}
		}
		g.cursor = col
		return core.StepResult{State: g.State(), Changed: g.drop() || changed}
	}

	if in.Has(core.ActionDrop) {
		changed = g.drop() || changed
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// moveCursor shifts the cursor, clamped to the board.
func (g *Game) moveCursor(delta int) bool {
	next := core.Clamp(g.cursor+delta, 0, g.width-1)
	if next == g.cursor {
		return false
	}
	g.cursor = next
	g.notice = ""
	return true
}

// drop plays the active player's piece at the cursor.
func (g *Game) drop() bool {
	move, err := g.table.Drop(g.cursor)
	switch {
	case errors.Is(err, engine.ErrGameOver):
		g.notice = "Game over - press r for a new game"
		return true
	case err != nil:
		g.notice = err.Error()
		return true
	case move.Outcome == engine.ColumnFull:
		g.notice = fmt.Sprintf("Column %d is full", move.Col+1)
		return true
	}

	g.notice = ""
	return true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.table == nil || g.err != nil {
		return core.GameState{}
	}

	var st core.GameState
	g.table.Read(func(c *engine.Controller) {
		status := c.Status()
		st = core.GameState{
			GameOver: status.Terminal(),
			Moves:    len(c.Moves()),
		}
		if status.Terminal() {
			st.Result = g.resultText(status)
		}
	})
	return st
}

// Status returns the engine status of the current match.
func (g *Game) Status() engine.Status {
	if g.table == nil || g.err != nil {
		return engine.Status{}
	}
	return g.table.Status()
}

// Cursor returns the column the next drop goes into.
func (g *Game) Cursor() int {
	return g.cursor
}

// Notice returns the feedback line for the last action, if any.
func (g *Game) Notice() string {
	return g.notice
}

// Err returns the error that prevented the game from starting, if any.
func (g *Game) Err() error {
	return g.err
}

// player returns the display config for p.
func (g *Game) player(p engine.Player) config.PlayerConfig {
	if p == engine.Player2 {
		return g.cfg.Players.Two
	}
	return g.cfg.Players.One
}

func (g *Game) resultText(st engine.Status) string {
	switch st.Phase {
	case engine.Won:
		return g.player(st.Winner).Name + " wins!"
	case engine.Tied:
		return "It's a tie!"
	default:
		return ""
	}
}
