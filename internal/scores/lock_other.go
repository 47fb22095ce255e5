//go:build !unix

package scores

import (
	"errors"
	"os"
)

var errNoLock = errors.New("file locking is not supported on this platform")

func lock(*os.File) error {
	return errNoLock
}

func unlock(*os.File) error {
	return errNoLock
}
