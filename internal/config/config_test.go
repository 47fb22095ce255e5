package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-play/internal/fault"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.yaml", `
scores:
  dir: /tmp/boards
games:
  snake:
    tick_ms: 100
`)

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, want %q", source, path)
	}
	if cfg.Scores.Dir != "/tmp/boards" {
		t.Errorf("scores.dir = %q", cfg.Scores.Dir)
	}
	if cfg.Games.Snake.TickInterval() != 100*time.Millisecond {
		t.Errorf("tick = %v, want 100ms", cfg.Games.Snake.TickInterval())
	}
	if cfg.Games.Snake.Rows != 24 || cfg.Scores.Journal != Default().Scores.Journal {
		t.Error("keys missing from the file should keep their defaults")
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "nope.yaml")},
		{"malformed", writeFile(t, dir, "bad.yaml", "scores: [")},
		{"invalid thresholds", writeFile(t, dir, "ripe.yaml", "games:\n  snake:\n    ripe: 500\n    spoil: 120\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load should fail")
			}
			if got := fault.ExitCode(err); got != fault.ExitUsage {
				t.Errorf("exit code = %d, want %d", got, fault.ExitUsage)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	_, source, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if source != "embedded" {
		t.Errorf("source = %q, want embedded", source)
	}

	local := writeFile(t, work, filepath.Join("configs", FileName), "player:\n  name: local\n")
	cfg, source, _ := Load("")
	if source != filepath.Join("configs", FileName) || cfg.Player.Name != "local" {
		t.Errorf("local config not used: source %q name %q (%s)", source, cfg.Player.Name, local)
	}

	user := writeFile(t, home, filepath.Join(".arcade", FileName), "player:\n  name: user\n")
	cfg, source, _ = Load("")
	if source != user || cfg.Player.Name != "user" {
		t.Errorf("user config should win: source %q name %q", source, cfg.Player.Name)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"explicit thresholds", func(c *Config) { c.Games.Snake.Ripe, c.Games.Snake.Spoil, c.Games.Snake.Mulch = 10, 20, 30 }, true},
		{"spoil not above ripe", func(c *Config) { c.Games.Snake.Spoil = 72 }, false},
		{"mulch not above spoil", func(c *Config) { c.Games.Snake.Mulch = 120 }, false},
		{"chance above one", func(c *Config) { c.Games.T2048.Rank2Chance = 1.5 }, false},
		{"zero tick", func(c *Config) { c.Games.Snake.TickMS = 0 }, false},
		{"no scores dir", func(c *Config) { c.Scores.Dir = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := map[string]string{
		"~/.arcade/scores": "/home/tester/.arcade/scores",
		"~":                "/home/tester",
		"/var/games":       "/var/games",
		"rel/~x":           "rel/~x",
	}
	for in, want := range tests {
		got, err := ExpandHome(in)
		if err != nil {
			t.Fatalf("ExpandHome(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ExpandHome(%q) = %q, want %q", in, got, want)
		}
	}
}
