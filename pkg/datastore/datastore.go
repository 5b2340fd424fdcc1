package datastore

import "github.com/arthur-debert/spotlight-manager/pkg/plist"

// DataStore gives access to the current exclusion set
type DataStore interface {
	// Read loads and parses the store
	Read() (*plist.Document, error)

	// Write replaces the store with doc
	Write(doc *plist.Document) error

	// Path returns the store location, for messages
	Path() string
}
