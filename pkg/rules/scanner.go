package rules

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/spotlight-manager/pkg/errors"
	"github.com/arthur-debert/spotlight-manager/pkg/logging"
	"github.com/rs/zerolog"
)

// ScanOptions tunes directory discovery
type ScanOptions struct {
	// Hidden descends into dot-directories. Dot-directories can always be
	// matched by a rule that names them.
	Hidden bool
}

// Scanner finds the directories a rule matches
type Scanner struct {
	logger zerolog.Logger
	hidden bool
}

// NewScanner creates a new scanner
func NewScanner(opts ScanOptions) *Scanner {
	return &Scanner{
		logger: logging.GetLogger("rules.scanner"),
		hidden: opts.Hidden,
	}
}

// Scan walks rule.Base and returns every directory matching the rule.
// A matched directory is not descended into, so no returned path is a
// descendant of another. Symbolic links are never followed.
func (s *Scanner) Scan(ctx context.Context, rule Rule) ([]string, error) {
	pattern, err := rule.Pattern()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(rule.Base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrMatcherFailure, "search directory %s does not exist", rule.Base).
				WithDetail("rule", rule.String())
		}
		return nil, errors.Wrapf(err, errors.ErrMatcherFailure, "cannot access search directory %s", rule.Base).
			WithDetail("rule", rule.String())
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrMatcherFailure, "search directory %s is not a directory", rule.Base).
			WithDetail("rule", rule.String())
	}

	s.logger.Debug().
		Str("base", rule.Base).
		Str("pattern", pattern.String()).
		Bool("hidden", s.hidden).
		Msg("Scanning for matching directories")

	// A trailing separator makes the walk enter a base that is itself a
	// symlink, such as /tmp on macOS.
	root := rule.Base
	if !strings.HasSuffix(root, string(filepath.Separator)) {
		root += string(filepath.Separator)
	}

	matches := []string{}
	skipped := 0

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			if path == root {
				return err
			}
			skipped++
			s.logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable directory")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if path == root || !d.IsDir() {
			return nil
		}

		if pattern.Match(path) {
			s.logger.Trace().Str("path", path).Msg("Matched directory")
			matches = append(matches, path)
			return filepath.SkipDir
		}

		if !s.hidden && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}

		return nil
	})

	if walkErr != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrapf(walkErr, errors.ErrMatcherFailure, "failed to scan %s", rule.Base).
			WithDetail("rule", rule.String())
	}

	s.logger.Debug().
		Str("rule", rule.String()).
		Int("matches", len(matches)).
		Int("skipped", skipped).
		Msg("Scan completed")

	return matches, nil
}
