//go:build unix

package scores

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// lock blocks until it holds an exclusive flock on f.
func lock(f *os.File) error {
	for {
		err := unix.Flock(int(f.Fd()), unix.LOCK_EX)
		if !errors.Is(err, unix.EINTR) {
			return err
		}
	}
}

func unlock(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}
