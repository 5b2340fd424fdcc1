// Package commands implements the user-facing operations of spotlight-manager.
//
// Each command takes an Env with its collaborators, built once by the CLI
// from the loaded configuration, and an Options value with the per-call
// flags. Commands return a result struct describing what happened; they
// never print. Presentation lives in the CLI.
//
//   - Exclude  scan one rule and add its matches to the store
//   - Include  drop the store entries one rule matches
//   - Add      register a rule, then run a job
//   - Remove   unregister a rule, then include it
//   - List     show registered rules and optionally their excluded paths
//   - Job      reconcile every registered rule in one pass
//
// Every command that writes the store asks for confirmation first (unless
// Force is set), stops before writing under DryRun, and restarts the
// indexing service after a successful write.
package commands

import (
	"context"

	"github.com/arthur-debert/spotlight-manager/pkg/errors"
	"github.com/arthur-debert/spotlight-manager/pkg/orchestration"
	"github.com/arthur-debert/spotlight-manager/pkg/plist"
	"github.com/arthur-debert/spotlight-manager/pkg/reconcile"
	"github.com/arthur-debert/spotlight-manager/pkg/rules"
	"github.com/arthur-debert/spotlight-manager/pkg/service"
	"github.com/arthur-debert/spotlight-manager/pkg/ui/confirmations"
)

// RuleRegistry is the persisted rule list
type RuleRegistry interface {
	List() ([]rules.Rule, error)
	Insert(rule rules.Rule) error
	RemoveOne(rule rules.Rule) (bool, error)
	RemoveOneStrict(rule rules.Rule) error
}

// Engine computes and applies exclusion changes
type Engine interface {
	Merge(discovered []string) (*reconcile.MergeResult, error)
	Subtract(pattern *rules.Pattern) (*reconcile.SubtractResult, error)
	Matching(pattern *rules.Pattern) ([]string, error)
	Apply(doc *plist.Document) error
}

// Env holds the collaborators shared by all commands
type Env struct {
	Registry  RuleRegistry
	Scanner   orchestration.Scanner
	Engine    Engine
	Restarter service.Restarter

	// Concurrency bounds simultaneous scans during a job
	Concurrency int
}

// Options are the per-call flags
type Options struct {
	// Force applies changes without asking
	Force bool

	// DryRun reports the change without writing anything
	DryRun bool

	// Strict makes Remove fail when the rule is not registered
	Strict bool

	// Confirmer asks before a write. Without one, a write that is not
	// forced fails with CONFIRMATION_REQUIRED.
	Confirmer confirmations.Confirmer
}

// outcome is what happened after a change was computed
type outcome struct {
	Declined   bool
	Written    bool
	RestartErr error
}

// apply confirms, writes and restarts, honouring Force and DryRun
func (env *Env) apply(ctx context.Context, opts Options, prompt string, items []string, doc *plist.Document) (outcome, error) {
	if opts.DryRun {
		return outcome{}, nil
	}

	if !opts.Force {
		ok, err := confirm(opts.Confirmer, prompt, items)
		if err != nil {
			return outcome{}, err
		}
		if !ok {
			return outcome{Declined: true}, nil
		}
	}

	if err := env.Engine.Apply(doc); err != nil {
		return outcome{}, err
	}

	out := outcome{Written: true}
	if env.Restarter != nil {
		out.RestartErr = env.Restarter.Restart(ctx)
	}
	return out, nil
}

func confirm(c confirmations.Confirmer, prompt string, items []string) (bool, error) {
	if c == nil {
		return false, errors.New(errors.ErrConfirmationRequired, "no way to confirm the change").
			WithHint("pass --force to apply changes without confirmation")
	}
	return c.Confirm(prompt, items)
}
