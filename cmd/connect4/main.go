// connect4 is a two-player Connect Four game for the terminal.
//
// Usage:
//
//	connect4 list               - List board variants
//	connect4 play [variant]     - Play a game (default: connect4)
//	connect4 menu               - Pick variants interactively
//	connect4 serve              - Start SSH server for remote play
//	connect4 replay <col>...    - Apply a move sequence and print the board
//
// Global flags:
//
//	--config <path>     - YAML config (default: ~/.connect4/config.yaml)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/connect4/internal/config"
	"github.com/vovakirdan/connect4/internal/core"
	"github.com/vovakirdan/connect4/internal/games/connect4"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string

	// Set up by loadSettings before any subcommand runs.
	logger   *log.Logger
	settings config.Connect4Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connect4",
	Short: "Connect Four for two players in your terminal",
	Long: `Connect Four: take turns dropping pieces into a vertical grid.
The first player to line up four pieces horizontally, vertically or
diagonally wins; a full board without a line is a tie.

Available commands:
  list     - Show the board variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  replay   - Apply a column sequence and print the result

Examples:
  connect4 play
  connect4 play connect4_large
  connect4 serve --ssh :2222
  connect4 replay 0 1 0 1 0 1 0`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (env "+config.EnvConfigPath+")")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (env "+config.EnvLogLevel+")")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadSettings reads .env, builds the logger and loads the game config.
// Flags win over environment variables.
func loadSettings(_ *cobra.Command, _ []string) error {
	if err := config.LoadEnv(); err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}

	logger = newLogger(config.EnvOr(config.EnvLogLevel, "info"))
	if flagLogLevel != "" {
		level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
	}

	path := flagConfig
	if path == "" {
		path = config.EnvOr(config.EnvConfigPath, "")
	}

	cfg, err := config.LoadWith(path, func(rejected string, err error) {
		logger.Warn("config file ignored, using defaults", "path", rejected, "error", err)
	})
	if err != nil {
		return err
	}
	settings = cfg
	connect4.SetConfig(cfg)

	logger.Debug("config loaded",
		"path", path,
		"board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"localized_check", cfg.Rules.LocalizedCheck,
	)
	return nil
}

// newLogger creates the process logger. Unknown levels fall back to info.
func newLogger(level string) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "connect4",
	})
	if lvl, err := log.ParseLevel(strings.ToLower(level)); err == nil {
		l.SetLevel(lvl)
	}
	return l
}

// terminalConfig sizes the runtime config from the controlling terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}
