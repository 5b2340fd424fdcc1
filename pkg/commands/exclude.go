package commands

import (
	"context"
	"fmt"

	"github.com/arthur-debert/spotlight-manager/pkg/logging"
	"github.com/arthur-debert/spotlight-manager/pkg/rules"
)

// ExcludeResult reports an exclude run
type ExcludeResult struct {
	Rule rules.Rule

	// Matches are the directories the rule matched on disk
	Matches []string

	// Added are the matches that were not excluded yet
	Added []string

	Declined   bool
	DryRun     bool
	Written    bool
	RestartErr error
}

// Exclude scans for directories matching name under base and adds the new
// ones to the exclusion store
func Exclude(ctx context.Context, env *Env, name, base string, opts Options) (*ExcludeResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Exclude").Str("name", name).Str("base", base).Msg("Executing command")

	rule, err := rules.New(name, base)
	if err != nil {
		return nil, err
	}

	result := &ExcludeResult{Rule: rule, Matches: []string{}, Added: []string{}, DryRun: opts.DryRun}

	matches, err := env.Scanner.Scan(ctx, rule)
	if err != nil {
		return nil, err
	}
	result.Matches = matches
	if len(matches) == 0 {
		log.Info().Str("rule", rule.String()).Msg("No match")
		return result, nil
	}

	merged, err := env.Engine.Merge(matches)
	if err != nil {
		return nil, err
	}
	if merged == nil {
		log.Info().Str("rule", rule.String()).Msg("All matches already excluded")
		return result, nil
	}
	result.Added = merged.Added

	out, err := env.apply(ctx, opts, fmt.Sprintf("Exclude %d directories from indexing?", len(merged.Added)), merged.Added, merged.Document)
	if err != nil {
		return result, err
	}
	result.Declined, result.Written, result.RestartErr = out.Declined, out.Written, out.RestartErr

	log.Info().
		Str("command", "Exclude").
		Int("matches", len(matches)).
		Int("added", len(merged.Added)).
		Bool("written", out.Written).
		Msg("Command finished")
	return result, nil
}
