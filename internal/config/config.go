// Package config provides YAML-based configuration loading for Connect Four:
// board dimensions, player names and colors, and rule options.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/connect4/internal/core"
	"github.com/vovakirdan/connect4/internal/games/connect4/engine"
)

// Connect4Config contains all configuration for the game.
type Connect4Config struct {
	Board   BoardConfig   `yaml:"board"`
	Players PlayersConfig `yaml:"players"`
	Rules   RulesConfig   `yaml:"rules"`
}

// BoardConfig defines the grid size consumed when a game is created.
type BoardConfig struct {
	Width  int `yaml:"width"`  // Columns
	Height int `yaml:"height"` // Rows
}

// PlayersConfig defines how the two players are presented.
type PlayersConfig struct {
	One PlayerConfig `yaml:"one"`
	Two PlayerConfig `yaml:"two"`
}

// PlayerConfig is the display identity of one player.
type PlayerConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"` // Color name, see core.ParseColor
	Glyph string `yaml:"glyph"` // Single character drawn for the piece
}

// RulesConfig toggles engine options.
type RulesConfig struct {
	LocalizedCheck bool `yaml:"localized_check"`
}

// Validate reports every problem with the configuration.
func (c Connect4Config) Validate() error {
	var errs []error

	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board: dimensions must be positive, got %dx%d", c.Board.Width, c.Board.Height))
	}
	if c.Board.Width > 9 {
		errs = append(errs, fmt.Errorf("board: at most 9 columns are supported, got %d", c.Board.Width))
	}
	if c.Board.Height > engine.MaxDimension {
		errs = append(errs, fmt.Errorf("board: at most %d rows are supported, got %d", engine.MaxDimension, c.Board.Height))
	}

	for _, p := range []struct {
		key string
		cfg PlayerConfig
	}{{"players.one", c.Players.One}, {"players.two", c.Players.Two}} {
		if p.cfg.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", p.key))
		}
		if _, err := core.ParseColor(p.cfg.Color); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p.key, err))
		}
		if utf8.RuneCountInString(p.cfg.Glyph) != 1 {
			errs = append(errs, fmt.Errorf("%s: glyph must be a single character, got %q", p.key, p.cfg.Glyph))
		}
	}

	if c.Players.One.Glyph == c.Players.Two.Glyph && c.Players.One.Color == c.Players.Two.Color {
		errs = append(errs, errors.New("players: pieces must differ in glyph or color"))
	}

	return errors.Join(errs...)
}

// PlayerColor returns the parsed color for a player config, falling back to
// the default color for unknown names.
func (p PlayerConfig) PlayerColor() core.Color {
	c, err := core.ParseColor(p.Color)
	if err != nil {
		return core.ColorDefault
	}
	return c
}

// PlayerGlyph returns the piece rune for a player config.
func (p PlayerConfig) PlayerGlyph() rune {
	r, _ := utf8.DecodeRuneInString(p.Glyph)
	if r == utf8.RuneError {
		return '●'
	}
	return r
}
