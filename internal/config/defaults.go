package config

import (
	_ "embed"
)

//go:embed defaults/play.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Scores: ScoresConfig{
			Dir:     "~/.arcade/scores",
			Journal: "~/.arcade/history.db",
		},
		Log: LogConfig{
			Level: "warn",
		},
		Games: GamesConfig{
			T2048: T2048Config{Rank2Chance: 0.1},
			Snake: SnakeConfig{
				TickMS:     150,
				Rows:       24,
				Cols:       48,
				FoodCap:    25,
				FoodChance: 15,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
