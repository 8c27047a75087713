// Package tui provides the Bubble Tea front end: the game model, the variant
// menu, the results screen and the SSH server.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/connect4/internal/core"
	"github.com/vovakirdan/connect4/internal/games/connect4/engine"
	"github.com/vovakirdan/connect4/internal/registry"
	"github.com/vovakirdan/connect4/internal/session"
)

// helpHeight is the number of rows reserved below the game for the help bar.
const helpHeight = 1

// statusReporter is implemented by games that expose the engine status.
type statusReporter interface {
	Status() engine.Status
}

// GameModel runs one game variant and returns to the caller on back or quit.
// Input is turn-based: the game only steps when a key arrives.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	sess       *session.Session
	logger     *log.Logger
	keyMapper  *KeyMapper
	help       help.Model
	gameState  core.GameState
	recorded   bool // Whether the current finished game was recorded
	standalone bool // Own program: going back ends it
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. sess and logger may be nil.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, sess *session.Session, logger *log.Logger) GameModel {
	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH)),
		config:    cfg,
		sess:      sess,
		logger:    logger,
		keyMapper: NewKeyMapper(),
		help:      h,
	}
}

// gameRows returns the screen rows left for the game.
func gameRows(height int) int {
	return core.Max(height-helpHeight, 0)
}

// gameConfig returns the runtime config the game sees.
func (m GameModel) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameRows(cfg.ScreenH)
	return cfg
}

// Init starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return nil
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, gameRows(msg.Height))
		m.help.Width = msg.Width
		m.game.Resize(m.gameConfig())
		return m, nil
	}
	return m, nil
}

// handleKey maps a key to one input frame and steps the game with it.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	frame := core.NewInputFrame()
	if m.keyMapper.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case frame.Has(core.ActionBack):
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil

	case frame.Has(core.ActionRestart):
		if m.gameState.GameOver {
			m.game.Reset(m.gameConfig())
			m.gameState = m.game.State()
			m.recorded = false
		}
		return m, nil

	case frame.Empty():
		return m, nil
	}

	result := m.game.Step(frame)
	m.gameState = result.State
	if m.gameState.GameOver && !m.recorded {
		m.recordResult()
		m.recorded = true
	}
	return m, nil
}

// recordResult adds the finished game to the session and logs it.
func (m GameModel) recordResult() {
	if m.logger != nil {
		fields := []any{"variant", m.game.ID(), "result", m.gameState.Result, "moves", m.gameState.Moves}
		if m.sess != nil {
			fields = append(fields, "session", m.sess.ID())
		}
		m.logger.Info("game finished", fields...)
	}

	if m.sess == nil {
		return
	}
	if sr, ok := m.game.(statusReporter); ok {
		m.sess.Record(m.game.ID(), sr.Status(), m.gameState.Moves)
	}
}

// View renders the game and the help bar.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// State returns the last known game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// newStandaloneModel creates a game model that owns its Bubble Tea program.
func newStandaloneModel(game registry.Game, cfg core.RuntimeConfig, sess *session.Session, logger *log.Logger) GameModel {
	model := NewGameModel(game, cfg, sess, logger)
	model.standalone = true
	return model
}

// Run plays one game in the terminal until the user quits or goes back.
// It reports whether the user asked to go back rather than quit.
// logger may be nil.
func Run(game registry.Game, sess *session.Session, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	p := tea.NewProgram(
		newStandaloneModel(game, cfg, sess, logger),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
