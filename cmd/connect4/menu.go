package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connect4/internal/platform/tui"
	"github.com/vovakirdan/connect4/internal/registry"
	"github.com/vovakirdan/connect4/internal/session"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a game, press B to return to the menu. Tab shows the
results of the games finished since the menu was opened.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Session results
  Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	cfg := terminalConfig()
	sess := session.New(os.Getenv("USER"), "local")

	for {
		menuResult, err := tui.RunMenu(cfg, sess)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsResults {
			goBack, err := tui.RunResults(sess, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("showing results: %w", err)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "variant", menuResult.GameID, "error", err)
			continue
		}

		backToMenu, err := tui.Run(game, sess, cfg, logger)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !backToMenu {
			break
		}
	}

	printTally(cmd, sess)
	return nil
}
