package filesystem

import (
	"io/fs"
	"os"
)

// FS is the subset of filesystem operations the stores need
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)

	// WriteFileAtomic replaces name with data so that readers see either
	// the old or the new content, never a partial write.
	WriteFileAtomic(name string, data []byte, perm fs.FileMode) error
}

// osFS implements FS using the OS filesystem
type osFS struct{}

// NewOS creates a new OS filesystem implementation
func NewOS() FS {
	return &osFS{}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (o *osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (o *osFS) WriteFileAtomic(name string, data []byte, perm fs.FileMode) error {
	return AtomicWrite(name, data, perm)
}
