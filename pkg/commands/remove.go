package commands

import (
	"context"

	"github.com/arthur-debert/spotlight-manager/pkg/logging"
	"github.com/arthur-debert/spotlight-manager/pkg/registry"
	"github.com/arthur-debert/spotlight-manager/pkg/rules"
)

// RemoveResult reports a remove run
type RemoveResult struct {
	Rule rules.Rule

	// Unregistered is false when the rule was not registered, or under DryRun
	Unregistered bool

	// WasRegistered tells whether the rule was found in the registry
	WasRegistered bool

	Include *IncludeResult
}

// Remove unregisters the first rule equal to name/base, then includes its
// matches again. A rule that is not registered is only a warning unless
// Strict is set.
func Remove(ctx context.Context, env *Env, name, base string, opts Options) (*RemoveResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Remove").Str("name", name).Str("base", base).Msg("Executing command")

	rule, err := rules.New(name, base)
	if err != nil {
		return nil, err
	}
	result := &RemoveResult{Rule: rule}

	switch {
	case opts.DryRun:
		registered, err := isRegistered(env.Registry, rule)
		if err != nil {
			return nil, err
		}
		result.WasRegistered = registered
		if !registered && opts.Strict {
			return result, registry.NotRegistered(rule)
		}
	case opts.Strict:
		if err := env.Registry.RemoveOneStrict(rule); err != nil {
			return result, err
		}
		result.WasRegistered = true
		result.Unregistered = true
	default:
		removed, err := env.Registry.RemoveOne(rule)
		if err != nil {
			return nil, err
		}
		result.WasRegistered = removed
		result.Unregistered = removed
	}

	if !result.WasRegistered {
		log.Warn().Str("rule", rule.String()).Msg("Rule is not registered, including its matches anyway")
	}

	inc, err := include(ctx, env, rule, opts)
	result.Include = inc
	if err != nil {
		return result, err
	}

	log.Info().Str("command", "Remove").Str("rule", rule.String()).Bool("unregistered", result.Unregistered).Msg("Command finished")
	return result, nil
}

func isRegistered(reg RuleRegistry, rule rules.Rule) (bool, error) {
	list, err := reg.List()
	if err != nil {
		return false, err
	}
	for _, r := range list {
		if r.Equal(rule) {
			return true, nil
		}
	}
	return false, nil
}
