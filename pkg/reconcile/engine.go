package reconcile

import (
	"github.com/arthur-debert/spotlight-manager/pkg/datastore"
	"github.com/arthur-debert/spotlight-manager/pkg/logging"
	"github.com/arthur-debert/spotlight-manager/pkg/plist"
	"github.com/arthur-debert/spotlight-manager/pkg/rules"
	"github.com/rs/zerolog"
)

// MergeResult describes an additive change that still has to be applied
type MergeResult struct {
	// Document is the store document with Updated already set
	Document *plist.Document

	Discovered        []string
	Added             []string
	Updated           []string
	DuplicatesRemoved int
}

// SubtractResult describes a subtractive change that still has to be applied
type SubtractResult struct {
	// Document is the store document with Kept already set
	Document *plist.Document

	Kept    []string
	Removed []string
}

// Changed reports whether applying the result would modify the store
func (r *SubtractResult) Changed() bool {
	return len(r.Removed) > 0
}

// Engine runs reconciliations against a store
type Engine struct {
	store  datastore.DataStore
	logger zerolog.Logger
}

// NewEngine creates an engine reading from and writing to store
func NewEngine(store datastore.DataStore) *Engine {
	return &Engine{
		store:  store,
		logger: logging.GetLogger("reconcile"),
	}
}

// Merge loads the store and adds the discovered paths it does not have yet.
// It returns nil when nothing would be added.
func (e *Engine) Merge(discovered []string) (*MergeResult, error) {
	doc, err := e.store.Read()
	if err != nil {
		return nil, err
	}

	current := doc.Exclusions()
	added, updated, dups := MergeExclusions(current, discovered)

	e.logger.Debug().
		Int("current", len(current)).
		Int("discovered", len(discovered)).
		Int("added", len(added)).
		Msg("Merge computed")

	if len(added) == 0 {
		return nil, nil
	}

	if dups > 0 {
		e.logger.Warn().
			Int("duplicates", dups).
			Str("store", e.store.Path()).
			Msg("Exclusion store already contained duplicate entries, collapsing them")
	}

	doc.SetExclusions(updated)
	return &MergeResult{
		Document:          doc,
		Discovered:        discovered,
		Added:             added,
		Updated:           updated,
		DuplicatesRemoved: dups,
	}, nil
}

// Subtract loads the store and drops every exclusion pattern matches
func (e *Engine) Subtract(pattern *rules.Pattern) (*SubtractResult, error) {
	doc, err := e.store.Read()
	if err != nil {
		return nil, err
	}

	kept, removed := PartitionExclusions(doc.Exclusions(), pattern)

	e.logger.Debug().
		Str("pattern", pattern.String()).
		Int("kept", len(kept)).
		Int("removed", len(removed)).
		Msg("Subtract computed")

	doc.SetExclusions(kept)
	return &SubtractResult{Document: doc, Kept: kept, Removed: removed}, nil
}

// Matching lists the current exclusions pattern matches, without changing anything
func (e *Engine) Matching(pattern *rules.Pattern) ([]string, error) {
	doc, err := e.store.Read()
	if err != nil {
		return nil, err
	}
	return pattern.Filter(doc.Exclusions()), nil
}

// Apply writes doc to the store
func (e *Engine) Apply(doc *plist.Document) error {
	return e.store.Write(doc)
}
