// Package logging builds the program logger.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-play/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a logger prefixed "play" at the configured level, writing to
// cfg.File (appended) or to stderr. The closer releases the log file.
func New(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	level := log.WarnLevel
	if cfg.Level != "" {
		l, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = l
	}

	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		path, err := config.ExpandHome(cfg.File)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: cannot create directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "play",
		Level:           level,
	})
	return logger, closer, nil
}

// lockedBuffer collects log output while the terminal is owned by the UI.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// Hold captures l's output in memory. The returned release func points l
// back at w and writes out everything captured meanwhile.
func Hold(l *log.Logger, w io.Writer) (release func()) {
	held := &lockedBuffer{}
	l.SetOutput(held)
	return func() {
		l.SetOutput(w)
		held.mu.Lock()
		defer held.mu.Unlock()
		_, _ = w.Write(held.buf.Bytes())
		held.buf.Reset()
	}
}
