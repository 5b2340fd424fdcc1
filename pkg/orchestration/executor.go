package orchestration

import (
	"context"
	"fmt"

	"github.com/arthur-debert/spotlight-manager/pkg/errors"
	"github.com/arthur-debert/spotlight-manager/pkg/logging"
	"golang.org/x/sync/errgroup"
)

// RunAll evaluates every registered rule and applies the combined result.
// A failing rule is recorded in the report and never stops its siblings.
// The returned error covers failures that abort the whole job: listing
// rules, reading or writing the store, or a confirmation that could not be
// asked.
func RunAll(ctx context.Context, opts Options) (*JobReport, error) {
	logger := logging.GetLogger("orchestration")
	done := logging.LogOperationStart(logger, "job")
	defer done()

	if opts.Rules == nil || opts.Scanner == nil || opts.Engine == nil {
		return nil, errors.New(errors.ErrInternal, "job requires a rule source, a scanner and an engine")
	}

	ruleList, err := opts.Rules.List()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list rules")
		return nil, err
	}

	report := &JobReport{
		RulesEvaluated: len(ruleList),
		Results:        make([]RuleResult, len(ruleList)),
		Discovered:     []string{},
		Added:          []string{},
		RuleErrors:     []RuleError{},
		DryRun:         opts.DryRun,
	}

	logger.Info().
		Int("rules", len(ruleList)).
		Int("concurrency", opts.Concurrency).
		Msg("Starting job")

	// Each goroutine owns one slot of Results; none returns an error so a
	// failing rule never cancels the others.
	g, gctx := errgroup.WithContext(ctx)
	limit := opts.Concurrency
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, rule := range ruleList {
		g.Go(func() error {
			matches, err := opts.Scanner.Scan(gctx, rule)
			report.Results[i] = RuleResult{Rule: rule, Matches: matches, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return report, err
	}

	for _, res := range report.Results {
		if res.Err != nil {
			logger.Warn().Err(res.Err).Str("rule", res.Rule.String()).Msg("Rule scan failed")
			report.RuleErrors = append(report.RuleErrors, RuleError{Rule: res.Rule, Err: res.Err})
			continue
		}
		logger.Debug().Str("rule", res.Rule.String()).Int("matches", len(res.Matches)).Msg("Rule scanned")
		report.Discovered = append(report.Discovered, res.Matches...)
	}

	merged, err := opts.Engine.Merge(report.Discovered)
	if err != nil {
		return report, err
	}
	if merged == nil {
		logger.Info().
			Int("discovered", len(report.Discovered)).
			Int("ruleErrors", len(report.RuleErrors)).
			Msg("Job found nothing new to exclude")
		return report, nil
	}

	report.Added = merged.Added
	report.DuplicatesRemoved = merged.DuplicatesRemoved

	if opts.DryRun {
		logger.Info().Int("added", len(merged.Added)).Msg("Dry run, store not written")
		return report, nil
	}

	if !opts.Force {
		if opts.Confirmer == nil {
			return report, errors.New(errors.ErrConfirmationRequired, "no way to confirm the change").
				WithHint("pass --force to apply changes without confirmation")
		}
		ok, err := opts.Confirmer.Confirm(fmt.Sprintf("Exclude %d new directories from indexing?", len(merged.Added)), merged.Added)
		if err != nil {
			return report, err
		}
		if !ok {
			logger.Info().Msg("Change declined")
			report.Declined = true
			return report, nil
		}
	}

	if err := opts.Engine.Apply(merged.Document); err != nil {
		return report, err
	}
	report.Written = true

	if opts.Restarter != nil {
		if err := opts.Restarter.Restart(ctx); err != nil {
			logger.Error().Err(err).Msg("Indexing service restart failed")
			report.RestartErr = err
		}
	}

	logger.Info().
		Int("rules", report.RulesEvaluated).
		Int("discovered", len(report.Discovered)).
		Int("added", len(report.Added)).
		Int("ruleErrors", len(report.RuleErrors)).
		Msg("Job completed")

	return report, nil
}
