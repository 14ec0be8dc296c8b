package config

import (
	"fmt"
	"os"
)

// FileLock guards a data file across processes through a sibling lock file
// named after it, so the data file itself can be replaced by rename.
type FileLock struct {
	path string
	file *os.File
}

// NewFileLock creates a FileLock for the data file at path.
func NewFileLock(path string) *FileLock {
	return &FileLock{path: path + ".lock"}
}

// Path returns the lock file path.
func (l *FileLock) Path() string {
	return l.path
}

// Held reports whether this FileLock currently holds a lock.
func (l *FileLock) Held() bool {
	return l.file != nil
}

func (l *FileLock) open(flag int) (*os.File, error) {
	if l.file != nil {
		return nil, fmt.Errorf("lock already held")
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|flag, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}
	return f, nil
}

func (l *FileLock) release() error {
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close lock file: %w", err)
	}
	l.file = nil
	return nil
}
