package testutil

import (
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// MockFS is an in-memory filesystem.FS based on fstest.MapFS, with error
// injection per path
type MockFS struct {
	mu     sync.Mutex
	files  fstest.MapFS
	errors map[string]error

	// Writes counts successful WriteFileAtomic calls
	Writes int
}

// NewMockFS creates an empty mock filesystem
func NewMockFS() *MockFS {
	return &MockFS{
		files:  make(fstest.MapFS),
		errors: make(map[string]error),
	}
}

// normalizePath converts absolute paths to the relative form MapFS uses
func (m *MockFS) normalizePath(path string) string {
	return strings.TrimPrefix(filepath.Clean(path), string(filepath.Separator))
}

// AddFile seeds a file
func (m *MockFS) AddFile(path string, data []byte, perm fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[m.normalizePath(path)] = &fstest.MapFile{Data: data, Mode: perm, ModTime: time.Now()}
}

// FailOn makes every operation on path return err
func (m *MockFS) FailOn(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[m.normalizePath(path)] = err
}

// Contents returns the bytes stored at path, or nil
func (m *MockFS) Contents(path string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.files[m.normalizePath(path)]; ok {
		return f.Data
	}
	return nil
}

// Stat implements filesystem.FS
func (m *MockFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.errors[m.normalizePath(name)]; err != nil {
		return nil, err
	}
	return m.files.Stat(m.normalizePath(name))
}

// ReadFile implements filesystem.FS
func (m *MockFS) ReadFile(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.errors[m.normalizePath(name)]; err != nil {
		return nil, err
	}
	return m.files.ReadFile(m.normalizePath(name))
}

// WriteFileAtomic implements filesystem.FS
func (m *MockFS) WriteFileAtomic(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := m.normalizePath(name)
	if err := m.errors[key]; err != nil {
		return err
	}
	if existing, ok := m.files[key]; ok {
		perm = existing.Mode
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	m.files[key] = &fstest.MapFile{Data: buf, Mode: perm, ModTime: time.Now()}
	m.Writes++
	return nil
}
