//go:build windows

package lock

import (
	"fmt"
	"os"
	"path/filepath"
)

// LockDirectory acquires an exclusive lock on the directory holding the
// log file, via a file named "LOCK" inside it.
//
// On Windows this is implemented by atomically creating the lock file; if
// it already exists, the log is assumed to be open in another logcask
// process.
//
// The returned file handle must be kept open for the duration of the lock.
func LockDirectory(path string) (*os.File, error) {
	lockFilePath := filepath.Join(path, "LOCK")

	f, err := os.OpenFile(lockFilePath, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("log directory already in use by another logcask process")
	}

	return f, nil
}

// UnlockDirectory releases a lock acquired via LockDirectory.
//
// On Windows this removes the lock file from disk. UnlockDirectory should
// be called exactly once for each successful LockDirectory call.
func UnlockDirectory(f *os.File) {
	name := f.Name()
	f.Close()
	os.Remove(name)
}
