package scores

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-play/internal/fault"
)

func TestOpenCreates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "2048.scores")

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	b, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpenFailureIsFileAccess(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := Open(filepath.Join(blocker, "snake.scores"))
	require.Error(t, err)
	assert.Equal(t, fault.FileAccess, fault.KindOf(err))
	assert.Equal(t, fault.ExitCantCreat, fault.ExitCode(err))
}

func TestCommitPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2048.scores")
	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	rank, err := f.Commit(rec(100, "first"))
	require.NoError(t, err)
	assert.Equal(t, 0, rank)

	rank, err = f.Commit(rec(200, "second"))
	require.NoError(t, err)
	assert.Equal(t, 0, rank)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(Capacity*RecordSize), info.Size())

	b, err := LoadPath(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "first"}, []string{b.At(0).Name, b.At(1).Name})
}

func TestCommitZeroLeavesFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2048.scores")
	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	rank, err := f.Commit(rec(0, "nobody"))
	require.NoError(t, err)
	assert.Equal(t, NotRanked, rank)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestCommitAbsorbsOtherWriters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.scores")
	a, err := Open(path)
	require.NoError(t, err)
	defer a.Close()
	b, err := Open(path)
	require.NoError(t, err)
	defer b.Close()

	// Both players see an empty board before either commits.
	board, err := a.Load()
	require.NoError(t, err)
	provisional := board.Insert(rec(300, "a"))
	assert.Equal(t, 0, provisional)

	_, err = b.Commit(rec(500, "b"))
	require.NoError(t, err)

	rank, err := a.Commit(rec(300, "a"))
	require.NoError(t, err)
	assert.Equal(t, 1, rank, "the authoritative rank moves below the concurrent higher score")
}

func TestConcurrentCommitsOrder(t *testing.T) {
	for _, order := range [][]uint32{{500, 300}, {300, 500}} {
		t.Run(fmt.Sprint(order), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "2048.scores")

			var wg sync.WaitGroup
			errs := make(chan error, len(order))
			for _, s := range order {
				wg.Add(1)
				go func() {
					defer wg.Done()
					f, err := Open(path)
					if err != nil {
						errs <- err
						return
					}
					defer f.Close()
					_, err = f.Commit(rec(s, fmt.Sprint(s)))
					errs <- err
				}()
			}
			wg.Wait()
			close(errs)
			for err := range errs {
				require.NoError(t, err)
			}

			b, err := LoadPath(path)
			require.NoError(t, err)
			assert.Equal(t, []uint32{500, 300}, scoresOf(b))
		})
	}
}

func TestConcurrentCommitsManyWriters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.scores")
	const writers = 24

	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f, err := Open(path)
			if !assert.NoError(t, err) {
				return
			}
			defer f.Close()
			_, err = f.Commit(rec(uint32(i*7%writers+1), "w"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	b, err := LoadPath(path)
	require.NoError(t, err)
	require.Equal(t, writers, b.Len(), "no commit may be lost")
	got := scoresOf(b)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1], got[i])
	}
}

func TestBoardPath(t *testing.T) {
	assert.Equal(t, filepath.Join("d", "snake.scores"), BoardPath("d", "snake", AllTime))
	assert.Equal(t, filepath.Join("d", "2048.weekly.scores"), BoardPath("d", "2048", Weekly))

	p, err := ParsePeriod("weekly")
	require.NoError(t, err)
	assert.Equal(t, Weekly, p)
	_, err = ParsePeriod("monthly")
	assert.Error(t, err)
	assert.Equal(t, "WEEKLY SCORES", Weekly.Title())
	assert.Equal(t, "TOP SCORES", AllTime.Title())
}
