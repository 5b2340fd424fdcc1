package commands

import (
	"context"

	"github.com/arthur-debert/spotlight-manager/pkg/logging"
	"github.com/arthur-debert/spotlight-manager/pkg/orchestration"
)

// Job reconciles every registered rule against the store in one pass
func Job(ctx context.Context, env *Env, opts Options) (*orchestration.JobReport, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Job").Bool("force", opts.Force).Bool("dryRun", opts.DryRun).Msg("Executing command")
	return runJob(ctx, env, env.Registry, opts)
}

func runJob(ctx context.Context, env *Env, source orchestration.RuleSource, opts Options) (*orchestration.JobReport, error) {
	return orchestration.RunAll(ctx, orchestration.Options{
		Rules:       source,
		Scanner:     env.Scanner,
		Engine:      env.Engine,
		Restarter:   env.Restarter,
		Confirmer:   opts.Confirmer,
		Concurrency: env.Concurrency,
		Force:       opts.Force,
		DryRun:      opts.DryRun,
	})
}
