//go:build unix

package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// LockDirectory acquires an exclusive, non-blocking advisory lock on the
// directory holding the log file, via a file named "LOCK" inside it.
//
// On Unix systems this uses flock(2). If the lock cannot be acquired, the
// log is assumed to be open in another logcask process; appending from two
// processes at once would interleave records and corrupt the log.
//
// The returned file handle must remain open for the duration of the lock.
func LockDirectory(path string) (*os.File, error) {
	lockFilePath := filepath.Join(path, "LOCK")

	f, err := os.OpenFile(lockFilePath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("unable to open lock file: %w", err)
	}

	err = syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("log directory already in use by another logcask process")
	}

	return f, nil
}

// UnlockDirectory releases a lock acquired via LockDirectory.
func UnlockDirectory(f *os.File) {
	syscall.Flock(int(f.Fd()), syscall.LOCK_UN)
	f.Close()
}
