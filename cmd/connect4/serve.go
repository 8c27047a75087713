package main

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connect4/internal/config"
	"github.com/vovakirdan/connect4/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Connect Four SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session: a variant menu, its own
games and its own results. Nothing is shared between connections.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.connect4/host_key

Flags default to CONNECT4_SSH_ADDR, CONNECT4_HOST_KEY and
CONNECT4_IDLE_TIMEOUT when those are set (a .env file is read too).

Examples:
  connect4 serve                           # Listen on :23234 with auto-generated key
  connect4 serve --ssh :2222               # Listen on port 2222
  connect4 serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default "+defaults.Address+")")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default 30)")
}

// serverConfig merges flags, environment and defaults.
func serverConfig() tui.SSHServerConfig {
	cfg := tui.DefaultSSHServerConfig()

	cfg.Address = config.EnvOr(config.EnvSSHAddr, cfg.Address)
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}

	cfg.HostKeyPath = config.EnvOr(config.EnvHostKey, "")
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}

	minutes := config.EnvIntOr(config.EnvIdleTimeout, int(cfg.IdleTimeout/time.Minute))
	if flagIdleTimeout > 0 {
		minutes = flagIdleTimeout
	}
	cfg.IdleTimeout = time.Duration(minutes) * time.Minute

	return cfg
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := serverConfig()

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting Connect Four SSH server on %s\n", cfg.Address)
	fmt.Fprintf(out, "Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	return server.ListenAndServe()
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
