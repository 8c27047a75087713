package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connect4/internal/config"
	"github.com/vovakirdan/connect4/internal/games/connect4/engine"
)

var (
	flagReplayWidth  int
	flagReplayHeight int
)

var replayCmd = &cobra.Command{
	Use:   "replay <col>...",
	Short: "Apply a column sequence and print the result",
	Long: `Drop pieces into the given 0-indexed columns, alternating players,
then print the board ('X' for player 1, 'O' for player 2) and the outcome.

Drops into a full column are reported and skipped; the same player moves
again. Moves after the game has ended are reported and ignored. A column
outside the board is an error. Boards are limited to 9 columns and 1024 rows.

Examples:
  connect4 replay 0 1 0 1 0 1 0
  connect4 replay --width 9 --height 7 4 4 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().IntVar(&flagReplayWidth, "width", 0, "Board width (default from config)")
	replayCmd.Flags().IntVar(&flagReplayHeight, "height", 0, "Board height (default from config)")
}

func runReplay(cmd *cobra.Command, args []string) error {
	cols, err := parseColumns(args)
	if err != nil {
		return err
	}

	cfg := settings
	if flagReplayWidth > 0 {
		cfg.Board.Width = flagReplayWidth
	}
	if flagReplayHeight > 0 {
		cfg.Board.Height = flagReplayHeight
	}

	return replay(cmd.OutOrStdout(), cfg, cols)
}

// parseColumns converts column arguments to integers.
func parseColumns(args []string) ([]int, error) {
	cols := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("move %d: %q is not a column number", i+1, a)
		}
		cols[i] = n
	}
	return cols, nil
}

// replay runs cols through a fresh controller and writes the rejected moves,
// the final board and the outcome to w.
func replay(w io.Writer, cfg config.Connect4Config, cols []int) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid board: %w", err)
	}

	var opts []engine.Option
	if cfg.Rules.LocalizedCheck {
		opts = append(opts, engine.WithLocalizedCheck())
	}

	ctrl, err := engine.NewController(cfg.Board.Height, cfg.Board.Width, opts...)
	if err != nil {
		return err
	}

	for i, col := range cols {
		move, err := ctrl.DropPiece(col)
		switch {
		case errors.Is(err, engine.ErrGameOver):
			fmt.Fprintf(w, "move %d: column %d ignored, game is over\n", i+1, col)
			continue
		case err != nil:
			return fmt.Errorf("move %d: %w", i+1, err)
		case move.Outcome == engine.ColumnFull:
			fmt.Fprintf(w, "move %d: column %d is full, %s moves again\n", i+1, col, move.Player)
		}
	}

	fmt.Fprintln(w, ctrl.Board().String())
	fmt.Fprintln(w, ctrl.Status())
	return nil
}
