package scores

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vovakirdan/tui-play/internal/fault"
)

// File is an open board file. Commits from any number of processes sharing
// the path are serialized by an exclusive advisory lock.
type File struct {
	f    *os.File
	path string
}

// Open opens the board at path, creating it and its directory if missing.
func Open(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fault.CantCreate("mkdir", filepath.Dir(path), err)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fault.CantCreate("open", path, err)
	}
	return &File{f: f, path: path}, nil
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Load reads the board without locking. The result is a snapshot that
// concurrent commits may already have superseded.
func (f *File) Load() (*Board, error) {
	b, err := ReadBoard(io.NewSectionReader(f.f, 0, Capacity*RecordSize))
	if err != nil {
		return nil, fault.IO("read", f.path, err)
	}
	return b, nil
}

// Commit inserts r under the exclusive lock: it rereads the board, inserts
// and writes the whole board back before unlocking. Returns the
// authoritative rank, or NotRanked without writing.
func (f *File) Commit(r Record) (rank int, err error) {
	if err := lock(f.f); err != nil {
		return NotRanked, fault.IO("lock", f.path, err)
	}
	defer func() {
		if uerr := unlock(f.f); uerr != nil && err == nil {
			err = fault.IO("unlock", f.path, uerr)
		}
	}()

	b, err := f.Load()
	if err != nil {
		return NotRanked, err
	}
	rank = b.Insert(r)
	if rank == NotRanked {
		return NotRanked, nil
	}
	if err := f.write(b); err != nil {
		return NotRanked, err
	}
	return rank, nil
}

func (f *File) write(b *Board) error {
	data, err := b.MarshalBinary()
	if err != nil {
		return fault.Internal("encode board", err)
	}
	n, err := f.f.WriteAt(data, 0)
	if err != nil {
		return fault.IO("write", f.path, err)
	}
	if n != len(data) {
		return fault.IO("write", f.path, fmt.Errorf("short write: %d of %d bytes", n, len(data)))
	}
	return nil
}

// Close releases the file.
func (f *File) Close() error {
	if err := f.f.Close(); err != nil {
		return fault.IO("close", f.path, err)
	}
	return nil
}

// LoadPath opens, reads and closes the board at path.
func LoadPath(path string) (*Board, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Load()
}
