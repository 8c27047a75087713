package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connect4/internal/games/connect4"
	"github.com/vovakirdan/connect4/internal/platform/tui"
	"github.com/vovakirdan/connect4/internal/registry"
	"github.com/vovakirdan/connect4/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start a two-player game on one terminal.

Controls:
  Left/Right, A/D, H/L  - Move the drop cursor
  1-9                   - Drop into that column
  Space/Enter           - Drop at the cursor
  R                     - New game (after the game ends)
  B/Esc, Q/Ctrl+C       - Quit

Examples:
  connect4 play
  connect4 play connect4_large
  connect4 play --config ./my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := connect4.IDClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'connect4 list' to see available variants)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	sess := session.New(os.Getenv("USER"), "local")
	if _, err := tui.Run(game, sess, terminalConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	printTally(cmd, sess)
	return nil
}

// printTally prints the finished-game counts of a local session.
func printTally(cmd *cobra.Command, sess *session.Session) {
	t := sess.Tally()
	if t.Total() == 0 {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d - %s %d, ties %d\n",
		settings.Players.One.Name, t.Player1Wins,
		settings.Players.Two.Name, t.Player2Wins,
		t.Ties,
	)
}
