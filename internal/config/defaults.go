package config

import (
	_ "embed"
)

//go:embed defaults/connect4.yaml
var defaultConnect4YAML []byte

// Default returns the hardcoded default configuration.
// It matches defaults/connect4.yaml and is used when the embedded file
// cannot be parsed.
func Default() Connect4Config {
	return Connect4Config{
		Board: BoardConfig{
			Width:  7,
			Height: 6,
		},
		Players: PlayersConfig{
			One: PlayerConfig{
				Name:  "Red",
				Color: "red",
				Glyph: "●",
			},
			Two: PlayerConfig{
				Name:  "Yellow",
				Color: "yellow",
				Glyph: "●",
			},
		},
		Rules: RulesConfig{
			LocalizedCheck: false,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultConnect4YAML
}
