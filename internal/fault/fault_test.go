package fault

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"usage", Usagef("unknown game %q", "tetris"), ExitUsage},
		{"file access", CantCreate("open", "/x/2048.scores", fs.ErrPermission), ExitCantCreat},
		{"io", IO("lock", "/x/2048.scores", errors.New("EINTR")), ExitIOErr},
		{"software", Internal("local time", errors.New("no zone")), ExitSoftware},
		{"plain", errors.New("boom"), ExitSoftware},
		{"wrapped", fmt.Errorf("results: %w", IO("write", "f", errors.New("short write"))), ExitIOErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := CantCreate("open", "/tmp/snake.scores", fs.ErrPermission)
	assert.Equal(t, "open /tmp/snake.scores: permission denied", err.Error())
	assert.ErrorIs(t, err, fs.ErrPermission)

	assert.Equal(t, "unknown game \"x\"", Usagef("unknown game %q", "x").Error())
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("commit: %w", IO("write", "f", errors.New("disk full")))

	var fe *Error
	require.ErrorAs(t, wrapped, &fe)
	assert.Equal(t, IOError, fe.Kind)
	assert.Equal(t, IOError, KindOf(wrapped))
	assert.Equal(t, Unknown, KindOf(errors.New("plain")))
	assert.Equal(t, "i/o", IOError.String())
}
