// Package orchestration runs a job: every registered rule is scanned
// concurrently, the results are merged into the exclusion store in a single
// read-modify-write, and the indexing service is restarted when the store
// changed.
package orchestration

import (
	"context"
	"fmt"

	"github.com/arthur-debert/spotlight-manager/pkg/plist"
	"github.com/arthur-debert/spotlight-manager/pkg/reconcile"
	"github.com/arthur-debert/spotlight-manager/pkg/rules"
	"github.com/arthur-debert/spotlight-manager/pkg/service"
	"github.com/arthur-debert/spotlight-manager/pkg/ui/confirmations"
)

// RuleSource lists the registered rules
type RuleSource interface {
	List() ([]rules.Rule, error)
}

// Scanner discovers the directories one rule matches
type Scanner interface {
	Scan(ctx context.Context, rule rules.Rule) ([]string, error)
}

// Reconciler merges discovered paths into the store
type Reconciler interface {
	Merge(discovered []string) (*reconcile.MergeResult, error)
	Apply(doc *plist.Document) error
}

// Options wires a job's collaborators and flags
type Options struct {
	Rules     RuleSource
	Scanner   Scanner
	Engine    Reconciler
	Restarter service.Restarter
	Confirmer confirmations.Confirmer

	// Concurrency bounds simultaneous scans; values below 1 mean one at a time
	Concurrency int

	// Force skips the confirmation
	Force bool

	// DryRun computes the change without writing it
	DryRun bool
}

// RuleResult is the outcome of scanning one rule
type RuleResult struct {
	Rule    rules.Rule
	Matches []string
	Err     error
}

// RuleError records a rule whose scan failed
type RuleError struct {
	Rule rules.Rule
	Err  error
}

// Error implements error
func (e RuleError) Error() string {
	return fmt.Sprintf("%s: %v", e.Rule, e.Err)
}

// Unwrap returns the scan error
func (e RuleError) Unwrap() error {
	return e.Err
}

// JobReport summarizes a job
type JobReport struct {
	RulesEvaluated int
	Results        []RuleResult

	// Discovered is every match, in rule declaration order
	Discovered []string

	// Added lists the paths new to the store; empty when nothing changed
	Added             []string
	DuplicatesRemoved int

	RuleErrors []RuleError

	// Declined is set when the user refused the change
	Declined bool
	DryRun   bool
	Written  bool

	// RestartErr is the service restart failure, if any. The store write stands.
	RestartErr error
}

// Changed reports whether the job found paths to add
func (r *JobReport) Changed() bool {
	return len(r.Added) > 0
}
