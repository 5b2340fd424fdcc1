// pkg/filesystem/filesystem_test.go
// TEST TYPE: Filesystem Tests
// DEPENDENCIES: Real filesystem (t.TempDir)
// PURPOSE: Atomic replacement and advisory locking

package filesystem_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/spotlight-manager/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWrite_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "doc.plist")

	require.NoError(t, filesystem.AtomicWrite(path, []byte("hello"), 0600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestAtomicWrite_ReplacesAndKeepsMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.plist")
	require.NoError(t, os.WriteFile(path, []byte("old content"), 0640))
	require.NoError(t, os.Chmod(path, 0640))

	require.NoError(t, filesystem.AtomicWrite(path, []byte("new"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should not be left behind")
}

func TestOSFS(t *testing.T) {
	fs := filesystem.NewOS()
	path := filepath.Join(t.TempDir(), "a.txt")

	require.NoError(t, fs.WriteFileAtomic(path, []byte("x"), 0644))

	info, err := fs.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestFileLock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "state", "store.lock")

	first := filesystem.NewFileLock(lockPath)
	require.NoError(t, first.Lock())

	second := filesystem.NewFileLock(lockPath)
	acquired, err := second.TryLock()
	require.NoError(t, err)
	assert.False(t, acquired, "lock held by first should not be acquired")

	require.NoError(t, first.Unlock())
	require.NoError(t, first.Unlock(), "double unlock is a no-op")

	acquired, err = second.TryLock()
	require.NoError(t, err)
	assert.True(t, acquired)
	require.NoError(t, second.Unlock())
}

func TestWithLock(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "registry.lock")

	called := false
	err := filesystem.WithLock(lockPath, func() error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)

	sentinel := errors.New("boom")
	err = filesystem.WithLock("", func() error { return sentinel })
	assert.ErrorIs(t, err, sentinel)
}

func TestWithLock_WaitsForHolder(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "registry.lock")

	holder := filesystem.NewFileLock(lockPath)
	require.NoError(t, holder.Lock())

	ran := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- filesystem.WithLock(lockPath, func() error {
			close(ran)
			return nil
		})
	}()

	select {
	case <-ran:
		t.Fatal("fn ran while another lock holder was active")
	case <-time.After(100 * time.Millisecond):
	}

	require.NoError(t, holder.Unlock())

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("WithLock did not acquire the lock after release")
	}
	_, ok := <-ran
	assert.False(t, ok, "fn should have run")
}
