//go:build windows

package config

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// lockRange locks the first byte of the lock file; every caller uses the
// same range so it acts as a whole-file lock.
func lockRange(f *os.File, flags uint32) error {
	ol := new(windows.Overlapped)
	return windows.LockFileEx(windows.Handle(f.Fd()), flags, 0, 1, 0, ol)
}

// Lock acquires an exclusive lock, blocking until it is available.
func (l *FileLock) Lock() error {
	f, err := l.open(os.O_RDWR)
	if err != nil {
		return err
	}
	if err := lockRange(f, windows.LOCKFILE_EXCLUSIVE_LOCK); err != nil {
		f.Close()
		return fmt.Errorf("failed to acquire exclusive lock: %w", err)
	}
	l.file = f
	return nil
}

// RLock acquires a shared lock. Several readers may hold it at once.
func (l *FileLock) RLock() error {
	f, err := l.open(os.O_RDONLY)
	if err != nil {
		return err
	}
	if err := lockRange(f, 0); err != nil {
		f.Close()
		return fmt.Errorf("failed to acquire shared lock: %w", err)
	}
	l.file = f
	return nil
}

// Unlock releases the lock. Unlocking an unheld lock is a no-op.
func (l *FileLock) Unlock() error {
	if l.file == nil {
		return nil
	}
	ol := new(windows.Overlapped)
	if err := windows.UnlockFileEx(windows.Handle(l.file.Fd()), 0, 1, 0, ol); err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	return l.release()
}
