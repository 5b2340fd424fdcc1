package filesystem

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/spotlight-manager/pkg/logging"
	"github.com/gofrs/flock"
)

// FileLock is an advisory, cross-process exclusive lock backed by flock(2).
// It only coordinates processes that take the same lock; it does not stop
// other programs from touching the guarded file.
type FileLock struct {
	path   string
	flock  *flock.Flock
	locked bool
}

// NewFileLock creates a lock on the given lock file path
func NewFileLock(path string) *FileLock {
	return &FileLock{
		path:  path,
		flock: flock.New(path),
	}
}

// Path returns the lock file location
func (l *FileLock) Path() string { return l.path }

// Lock blocks until the lock is acquired, creating the lock file's directory if needed
func (l *FileLock) Lock() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create lock directory: %w", err)
	}
	if err := l.flock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", l.path, err)
	}
	l.locked = true
	return nil
}

// TryLock attempts to acquire the lock without blocking
func (l *FileLock) TryLock() (bool, error) {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return false, fmt.Errorf("failed to create lock directory: %w", err)
	}
	acquired, err := l.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to try lock on %s: %w", l.path, err)
	}
	if acquired {
		l.locked = true
	}
	return acquired, nil
}

// Unlock releases the lock. Calling it on an unlocked FileLock is a no-op.
func (l *FileLock) Unlock() error {
	if !l.locked {
		return nil
	}
	l.locked = false
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}

// WithLock runs fn while holding the lock at lockPath. An empty lockPath
// runs fn unguarded. When another process holds the lock, WithLock logs
// that it is waiting and blocks.
func WithLock(lockPath string, fn func() error) error {
	if lockPath == "" {
		return fn()
	}
	lock := NewFileLock(lockPath)
	acquired, err := lock.TryLock()
	if err != nil {
		return err
	}
	if !acquired {
		logger := logging.GetLogger("filesystem")
		logger.Info().Str("lock", lockPath).Msg("Waiting for another process to release the lock")
		if err := lock.Lock(); err != nil {
			return err
		}
	}
	defer func() { _ = lock.Unlock() }()
	return fn()
}
