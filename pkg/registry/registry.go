package registry

import (
	"os"

	"github.com/arthur-debert/spotlight-manager/pkg/config"
	"github.com/arthur-debert/spotlight-manager/pkg/errors"
	"github.com/arthur-debert/spotlight-manager/pkg/filesystem"
	"github.com/arthur-debert/spotlight-manager/pkg/logging"
	"github.com/arthur-debert/spotlight-manager/pkg/rules"
	"github.com/rs/zerolog"
)

// documentPerm is used when the rule document is created
const documentPerm = 0644

// Registry is the ordered collection of persisted rules
type Registry struct {
	path     string
	lockPath string
	fs       filesystem.FS
	codec    codec
	logger   zerolog.Logger
}

// New creates a registry backed by the rule document at path. Rewrites hold
// the advisory lock at lockPath; an empty lockPath disables locking.
func New(path, lockPath string) *Registry {
	return NewWithFS(path, lockPath, filesystem.NewOS())
}

// NewWithFS is New with an explicit filesystem
func NewWithFS(path, lockPath string, fs filesystem.FS) *Registry {
	var c codec = yamlCodec{}
	if config.IsTOML(path) {
		c = tomlCodec{}
	}
	return &Registry{
		path:     path,
		lockPath: lockPath,
		fs:       fs,
		codec:    c,
		logger:   logging.GetLogger("registry"),
	}
}

// Path returns the rule document location
func (r *Registry) Path() string { return r.path }

// List returns all rules in insertion order. Entries are normalized and
// blank entries are skipped.
func (r *Registry) List() ([]rules.Rule, error) {
	data, err := r.read()
	if err != nil {
		return nil, err
	}
	return r.decode(data)
}

// Insert appends a rule. The rule is normalized and validated first;
// duplicates are allowed.
func (r *Registry) Insert(rule rules.Rule) error {
	rule = rule.Normalize()
	if err := rule.Validate(); err != nil {
		return err
	}

	return r.mutate(func(list []rules.Rule) ([]rules.Rule, bool) {
		r.logger.Info().Str("rule", rule.String()).Msg("Adding rule")
		return append(list, rule), true
	})
}

// RemoveOne removes the first rule equal to rule after normalization. It
// reports whether a rule was removed; on a miss the document is untouched.
func (r *Registry) RemoveOne(rule rules.Rule) (bool, error) {
	rule = rule.Normalize()
	removed := false

	err := r.mutate(func(list []rules.Rule) ([]rules.Rule, bool) {
		for i, existing := range list {
			if existing.Equal(rule) {
				removed = true
				r.logger.Info().Str("rule", rule.String()).Msg("Removing rule")
				return append(list[:i:i], list[i+1:]...), true
			}
		}
		r.logger.Debug().Str("rule", rule.String()).Msg("Rule not registered, nothing to remove")
		return list, false
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// RemoveOneStrict is RemoveOne that fails with RULE_NOT_FOUND on a miss
func (r *Registry) RemoveOneStrict(rule rules.Rule) error {
	removed, err := r.RemoveOne(rule)
	if err != nil {
		return err
	}
	if !removed {
		return NotRegistered(rule.Normalize()).WithDetail("path", r.path)
	}
	return nil
}

// NotRegistered is the RULE_NOT_FOUND error for rule.
func NotRegistered(rule rules.Rule) *errors.SpotlightError {
	return errors.Newf(errors.ErrRuleNotFound, "rule %s is not registered", rule).
		WithHint("run 'spotlight-manager list' to see the registered rules")
}

// mutate runs a read-modify-write cycle under the registry lock. fn returns
// the new list and whether the document needs rewriting.
func (r *Registry) mutate(fn func([]rules.Rule) ([]rules.Rule, bool)) error {
	err := filesystem.WithLock(r.lockPath, func() error {
		data, err := r.read()
		if err != nil {
			return err
		}
		current, err := r.decode(data)
		if err != nil {
			return err
		}

		updated, changed := fn(current)
		if !changed {
			return nil
		}

		out, err := r.codec.rewrite(data, updated)
		if err != nil {
			return errors.Wrapf(err, errors.ErrRegistryWrite, "failed to encode rule document %s", r.path)
		}
		if err := r.fs.WriteFileAtomic(r.path, out, documentPerm); err != nil {
			return errors.Wrapf(err, errors.ErrRegistryWrite, "failed to write rule document %s", r.path)
		}

		r.logger.Debug().Str("path", r.path).Int("rules", len(updated)).Msg("Rule document written")
		return nil
	})
	if err != nil {
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			return errors.Wrapf(err, errors.ErrRegistryWrite, "failed to lock rule document %s", r.path)
		}
		return err
	}
	return nil
}

// read returns the raw document, or nil when it does not exist yet
func (r *Registry) read() ([]byte, error) {
	data, err := r.fs.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrRegistryRead, "failed to read rule document %s", r.path)
	}
	return data, nil
}

func (r *Registry) decode(data []byte) ([]rules.Rule, error) {
	if len(data) == 0 {
		return []rules.Rule{}, nil
	}

	raw, err := r.codec.decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRegistryRead, "failed to parse rule document %s", r.path).
			WithHint("fix the syntax of the file or point --config elsewhere")
	}

	list := make([]rules.Rule, 0, len(raw))
	for _, entry := range raw {
		normalized := entry.Normalize()
		if normalized.Name == "" && normalized.Base == "" {
			continue
		}
		list = append(list, normalized)
	}
	return list, nil
}
