package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that provide defaults for CLI flags.
const (
	EnvConfigPath  = "CONNECT4_CONFIG"
	EnvSSHAddr     = "CONNECT4_SSH_ADDR"
	EnvHostKey     = "CONNECT4_HOST_KEY"
	EnvLogLevel    = "CONNECT4_LOG_LEVEL"
	EnvIdleTimeout = "CONNECT4_IDLE_TIMEOUT"
)

// LoadEnv loads variables from the given .env files (default ".env") into
// the process environment. Variables already set are left alone and
// missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// EnvOr returns the value of key, or fallback when it is unset or empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// EnvIntOr returns key parsed as an integer, or fallback when it is unset
// or not a number.
func EnvIntOr(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
