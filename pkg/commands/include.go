package commands

import (
	"context"
	"fmt"

	"github.com/arthur-debert/spotlight-manager/pkg/logging"
	"github.com/arthur-debert/spotlight-manager/pkg/rules"
)

// IncludeResult reports an include run
type IncludeResult struct {
	Rule rules.Rule

	// Removed are the store entries the rule matched
	Removed []string

	Declined   bool
	DryRun     bool
	Written    bool
	RestartErr error
}

// Include removes every exclusion matching the rule name/base from the store
func Include(ctx context.Context, env *Env, name, base string, opts Options) (*IncludeResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Include").Str("name", name).Str("base", base).Msg("Executing command")

	rule, err := rules.New(name, base)
	if err != nil {
		return nil, err
	}
	return include(ctx, env, rule, opts)
}

func include(ctx context.Context, env *Env, rule rules.Rule, opts Options) (*IncludeResult, error) {
	log := logging.GetLogger("commands")

	pattern, err := rule.Pattern()
	if err != nil {
		return nil, err
	}

	sub, err := env.Engine.Subtract(pattern)
	if err != nil {
		return nil, err
	}

	result := &IncludeResult{Rule: rule, Removed: sub.Removed, DryRun: opts.DryRun}
	if !sub.Changed() {
		log.Info().Str("rule", rule.String()).Msg("No excluded path matches")
		return result, nil
	}

	out, err := env.apply(ctx, opts, fmt.Sprintf("Include %d directories in indexing again?", len(sub.Removed)), sub.Removed, sub.Document)
	if err != nil {
		return result, err
	}
	result.Declined, result.Written, result.RestartErr = out.Declined, out.Written, out.RestartErr

	log.Info().
		Str("command", "Include").
		Int("removed", len(sub.Removed)).
		Bool("written", out.Written).
		Msg("Command finished")
	return result, nil
}
