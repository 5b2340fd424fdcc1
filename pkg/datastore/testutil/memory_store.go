package testutil

import (
	"sync"

	"github.com/arthur-debert/spotlight-manager/pkg/errors"
	"github.com/arthur-debert/spotlight-manager/pkg/plist"
)

// MemoryStore is a datastore.DataStore holding its exclusions in memory
type MemoryStore struct {
	mu         sync.Mutex
	exclusions []string

	// ReadErr and WriteErr are returned by Read and Write when set
	ReadErr  error
	WriteErr error

	// Reads and Writes count calls
	Reads  int
	Writes int
}

// NewMemoryStore creates a store holding the given exclusions
func NewMemoryStore(exclusions ...string) *MemoryStore {
	return &MemoryStore{exclusions: append([]string{}, exclusions...)}
}

// Path implements datastore.DataStore
func (m *MemoryStore) Path() string { return "memory://VolumeConfiguration.plist" }

// Read implements datastore.DataStore
func (m *MemoryStore) Read() (*plist.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Reads++
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	doc := plist.NewXML()
	doc.SetExclusions(m.exclusions)
	return doc, nil
}

// Write implements datastore.DataStore
func (m *MemoryStore) Write(doc *plist.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	if doc == nil {
		return errors.New(errors.ErrStoreWrite, "nil document")
	}
	m.Writes++
	m.exclusions = doc.Exclusions()
	return nil
}

// Exclusions returns the stored exclusions
func (m *MemoryStore) Exclusions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.exclusions...)
}
