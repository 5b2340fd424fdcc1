package commands

import (
	"context"

	"github.com/arthur-debert/spotlight-manager/pkg/logging"
	"github.com/arthur-debert/spotlight-manager/pkg/orchestration"
	"github.com/arthur-debert/spotlight-manager/pkg/rules"
)

// AddResult reports an add run
type AddResult struct {
	Rule rules.Rule

	// Registered is false under DryRun
	Registered bool

	Job *orchestration.JobReport
}

// Add registers a rule and runs a job so that its matches are excluded.
// Under DryRun the rule is not persisted but still takes part in the job.
func Add(ctx context.Context, env *Env, name, base string, opts Options) (*AddResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Add").Str("name", name).Str("base", base).Msg("Executing command")

	rule, err := rules.New(name, base)
	if err != nil {
		return nil, err
	}

	result := &AddResult{Rule: rule}
	source := orchestration.RuleSource(env.Registry)

	if opts.DryRun {
		source = withRule{RuleSource: env.Registry, extra: rule}
	} else {
		if err := env.Registry.Insert(rule); err != nil {
			return nil, err
		}
		result.Registered = true
	}

	report, err := runJob(ctx, env, source, opts)
	result.Job = report
	if err != nil {
		return result, err
	}

	log.Info().Str("command", "Add").Str("rule", rule.String()).Msg("Command finished")
	return result, nil
}

// withRule appends a rule that is not persisted to a rule source
type withRule struct {
	orchestration.RuleSource
	extra rules.Rule
}

func (w withRule) List() ([]rules.Rule, error) {
	list, err := w.RuleSource.List()
	if err != nil {
		return nil, err
	}
	return append(list, w.extra), nil
}
