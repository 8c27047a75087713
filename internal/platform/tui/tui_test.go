package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/connect4/internal/core"
	"github.com/vovakirdan/connect4/internal/games/connect4"
	"github.com/vovakirdan/connect4/internal/games/connect4/engine"
	"github.com/vovakirdan/connect4/internal/registry"
	"github.com/vovakirdan/connect4/internal/session"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var testScreen = core.RuntimeConfig{ScreenW: 80, ScreenH: 24}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"h", runeKey("h"), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"l", runeKey("l"), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionDrop, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionDrop, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"b", runeKey("b"), core.ActionBack, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, isQuit := km.MapKey(tc.msg)
			assert.Equal(t, tc.want, action)
			assert.Equal(t, tc.isQuit, isQuit)
		})
	}
}

func TestMapKeyToFrameNumberKeys(t *testing.T) {
	km := NewKeyMapper()

	for n := 1; n <= 9; n++ {
		frame := core.NewInputFrame()
		quit := km.MapKeyToFrame(runeKey(string(rune('0'+n))), &frame)
		assert.False(t, quit)

		col, ok := frame.Column()
		require.True(t, ok, "key %d", n)
		assert.Equal(t, n-1, col)
	}

	frame := core.NewInputFrame()
	km.MapKeyToFrame(runeKey("0"), &frame)
	assert.True(t, frame.Empty(), "0 is not a column key")
}

func TestMapKeyToMenuAction(t *testing.T) {
	keys := DefaultMenuKeyMap()

	assert.Equal(t, MenuActionUp, MapKeyToMenuAction(keys, tea.KeyMsg{Type: tea.KeyUp}))
	assert.Equal(t, MenuActionUp, MapKeyToMenuAction(keys, runeKey("k")))
	assert.Equal(t, MenuActionDown, MapKeyToMenuAction(keys, runeKey("j")))
	assert.Equal(t, MenuActionSelect, MapKeyToMenuAction(keys, tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionResults, MapKeyToMenuAction(keys, tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionBack, MapKeyToMenuAction(keys, tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, MenuActionQuit, MapKeyToMenuAction(keys, runeKey("q")))
	assert.Equal(t, MenuActionNone, MapKeyToMenuAction(keys, runeKey("x")))
}

func newTestGameModel(t *testing.T, sess *session.Session) GameModel {
	t.Helper()
	game, err := registry.Create(connect4.IDClassic)
	require.NoError(t, err)

	m := NewGameModel(game, testScreen, sess, nil)
	m.Init()
	return m
}

func press(t *testing.T, m GameModel, keys ...tea.KeyMsg) GameModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(GameModel)
		require.True(t, ok)
	}
	return m
}

// winKeys drops 1,2,1,2,1,2,1 so the first player wins vertically.
func winKeys() []tea.KeyMsg {
	var keys []tea.KeyMsg
	for _, k := range []string{"1", "2", "1", "2", "1", "2", "1"} {
		keys = append(keys, runeKey(k))
	}
	return keys
}

func TestGameModelPlaysToWinAndRecords(t *testing.T) {
	sess := session.New("alice", "local")
	m := newTestGameModel(t, sess)

	m = press(t, m, winKeys()...)
	require.True(t, m.State().GameOver)
	assert.Equal(t, "Red wins!", m.State().Result)
	assert.Equal(t, session.Tally{Player1Wins: 1}, sess.Tally())

	// Further keys do not record the same game twice.
	m = press(t, m, runeKey("3"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, sess.Tally().Total())

	view := m.View()
	assert.Contains(t, view, "Red wins!")
	assert.Contains(t, view, "new game")

	// Restart starts a fresh game that can be recorded again.
	m = press(t, m, runeKey("r"))
	assert.False(t, m.State().GameOver)
	m = press(t, m, winKeys()...)
	assert.Equal(t, 2, sess.Tally().Player1Wins)
}

func TestStandaloneModelLogsFinishedGame(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	game, err := registry.Create(connect4.IDClassic)
	require.NoError(t, err)
	sess := session.New("erin", "local")

	m := newStandaloneModel(game, testScreen, sess, logger)
	m.Init()
	m = press(t, m, winKeys()...)

	out := buf.String()
	assert.Contains(t, out, "game finished")
	assert.Contains(t, out, "variant="+connect4.IDClassic)
	assert.Contains(t, out, "session="+string(sess.ID()))
	assert.Equal(t, 1, strings.Count(out, "game finished"))

	// Going back ends a standalone program.
	_, cmd := m.Update(runeKey("b"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestGameModelRestartIgnoredMidGame(t *testing.T) {
	m := newTestGameModel(t, nil)
	m = press(t, m, runeKey("4"), runeKey("r"))
	assert.Equal(t, 1, m.State().Moves)
}

func TestGameModelBackAndQuit(t *testing.T) {
	m := newTestGameModel(t, nil)

	back := press(t, m, runeKey("b"))
	assert.True(t, back.BackToMenu())
	assert.False(t, back.IsQuitting())

	next, cmd := m.Update(runeKey("q"))
	quit := next.(GameModel)
	assert.True(t, quit.IsQuitting())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, quit.View())
}

func TestGameModelResize(t *testing.T) {
	m := newTestGameModel(t, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 6})
	m = next.(GameModel)
	assert.Contains(t, m.View(), "Window too small")

	next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(GameModel)
	assert.Contains(t, m.View(), "to move")
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "plain")
	s.SetColored(0, 1, '●', core.ColorRed)
	s.SetColored(1, 1, '●', core.ColorYellow)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "plain     ", lines[0], "default color is unstyled")
	assert.Equal(t, 2, strings.Count(lines[1], "●"))
}

func TestResultLabel(t *testing.T) {
	assert.Equal(t, "Player 2 won", resultLabel(engine.Status{Phase: engine.Won, Winner: engine.Player2}))
	assert.Equal(t, "Tie", resultLabel(engine.Status{Phase: engine.Tied}))
}

func TestResultsModelRows(t *testing.T) {
	sess := session.New("bob", "local")
	sess.Record(connect4.IDClassic, engine.Status{Phase: engine.Won, Winner: engine.Player1}, 7)
	sess.Record(connect4.IDLarge, engine.Status{Phase: engine.Tied}, 63)

	m := NewResultsModel(sess, 80, 24)
	rows := m.table.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "2", rows[0][0])
	assert.Equal(t, connect4.IDLarge, rows[0][1])
	assert.Equal(t, "Tie", rows[0][2])
	assert.Equal(t, "63", rows[0][3])

	view := m.View()
	assert.Contains(t, view, "SESSION RESULTS")
	assert.Contains(t, view, "Player 1 1")
}

func TestResultsModelEmpty(t *testing.T) {
	m := NewResultsModel(session.New("carol", "local"), 80, 24)
	assert.Contains(t, m.View(), "No finished games yet.")
}

func sessionUpdate(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(SessionModel)
		require.True(t, ok)
	}
	return m
}

func TestSessionModelFlow(t *testing.T) {
	sess := session.New("dave", "127.0.0.1:40000")
	m := NewSessionModel(testScreen, sess, nil)
	assert.Contains(t, m.View(), "C O N N E C T")

	// Pick the first variant and win a game.
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, viewGame, m.view)

	msgs := make([]tea.Msg, 0, 7)
	for _, k := range winKeys() {
		msgs = append(msgs, k)
	}
	m = sessionUpdate(t, m, msgs...)
	assert.Equal(t, 1, sess.Tally().Player1Wins)

	// Back to the menu, which now shows the tally.
	m = sessionUpdate(t, m, runeKey("b"))
	require.Equal(t, viewMenu, m.view)
	assert.Contains(t, m.View(), "This session: P1 1")

	// Results and back again.
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, viewResults, m.view)
	assert.Contains(t, m.View(), "Player 1 won")

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewMenu, m.view)

	next, cmd := m.Update(runeKey("q"))
	assert.True(t, next.(SessionModel).quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestSessionsAreIsolated(t *testing.T) {
	a := sessionUpdate(t, NewSessionModel(testScreen, session.New("a", "a"), nil), tea.KeyMsg{Type: tea.KeyEnter})
	b := sessionUpdate(t, NewSessionModel(testScreen, session.New("b", "b"), nil), tea.KeyMsg{Type: tea.KeyEnter})

	a = sessionUpdate(t, a, runeKey("4"), runeKey("4"))
	assert.Equal(t, 2, a.gameModel.State().Moves)
	assert.Equal(t, 0, b.gameModel.State().Moves)
}
