// Package config loads the YAML settings for the score store, logging and
// per-game tuning.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the complete program configuration.
type Config struct {
	Scores ScoresConfig `yaml:"scores"`
	Player PlayerConfig `yaml:"player"`
	Log    LogConfig    `yaml:"log"`
	Games  GamesConfig  `yaml:"games"`
}

// ScoresConfig locates the board files and the session journal.
type ScoresConfig struct {
	Dir     string `yaml:"dir"`     // Holds <game>.scores and <game>.weekly.scores
	Journal string `yaml:"journal"` // SQLite session history; empty disables it
}

// PlayerConfig holds player defaults.
type PlayerConfig struct {
	Name string `yaml:"name"` // Offered at name entry; empty means $USER
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty logs to stderr
}

// GamesConfig holds per-game tuning.
type GamesConfig struct {
	T2048 T2048Config `yaml:"t2048"`
	Snake SnakeConfig `yaml:"snake"`
}

// T2048Config tunes the 2048 game.
type T2048Config struct {
	Rank2Chance float64 `yaml:"rank2_chance"` // Probability a spawned tile is a 4
}

// SnakeConfig tunes the snake arena and food lifecycle.
type SnakeConfig struct {
	TickMS     int `yaml:"tick_ms"`
	Rows       int `yaml:"rows"`
	Cols       int `yaml:"cols"`
	FoodCap    int `yaml:"food_cap"`
	FoodChance int `yaml:"food_chance"` // 1 in N per tick
	Ripe       int `yaml:"ripe"`        // 0 derives rows+cols
	Spoil      int `yaml:"spoil"`       // 0 derives ripe+cols
	Mulch      int `yaml:"mulch"`       // 0 derives spoil*10
}

// TickInterval returns the configured step duration.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// Thresholds returns ripe, spoil and mulch with zero values derived.
func (c SnakeConfig) Thresholds() (ripe, spoil, mulch int) {
	ripe, spoil, mulch = c.Ripe, c.Spoil, c.Mulch
	if ripe == 0 {
		ripe = c.Rows + c.Cols
	}
	if spoil == 0 {
		spoil = ripe + c.Cols
	}
	if mulch == 0 {
		mulch = spoil * 10
	}
	return ripe, spoil, mulch
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Scores.Dir == "" {
		errs = append(errs, errors.New("scores.dir must be set"))
	}
	if p := c.Games.T2048.Rank2Chance; p < 0 || p > 1 {
		errs = append(errs, fmt.Errorf("games.t2048.rank2_chance %v must be within [0, 1]", p))
	}

	s := c.Games.Snake
	if s.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("games.snake.tick_ms %d must be positive", s.TickMS))
	}
	if s.Rows < 2 || s.Cols < 2 {
		errs = append(errs, fmt.Errorf("games.snake arena %dx%d is too small", s.Rows, s.Cols))
	}
	if s.FoodCap < 1 {
		errs = append(errs, fmt.Errorf("games.snake.food_cap %d must be positive", s.FoodCap))
	}
	if s.FoodChance < 1 {
		errs = append(errs, fmt.Errorf("games.snake.food_chance %d must be positive", s.FoodChance))
	}
	ripe, spoil, mulch := s.Thresholds()
	if ripe >= spoil {
		errs = append(errs, fmt.Errorf("games.snake: ripe %d must be below spoil %d", ripe, spoil))
	}
	if spoil >= mulch {
		errs = append(errs, fmt.Errorf("games.snake: spoil %d must be below mulch %d", spoil, mulch))
	}
	return errors.Join(errs...)
}
