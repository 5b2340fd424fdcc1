package rules

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/spotlight-manager/pkg/errors"
)

// Rule declares that directories named Name under Base are excluded from indexing
type Rule struct {
	Name string `yaml:"name" toml:"name" json:"name"`
	Base string `yaml:"base" toml:"base" json:"base"`
}

// New normalizes and validates a rule
func New(name, base string) (Rule, error) {
	r := Rule{Name: name, Base: base}.Normalize()
	if err := r.Validate(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

// Normalize strips leading and trailing separators from Name, trailing
// separators from Base, and collapses doubled separators in both.
// Base is also cleaned lexically ("." and ".." segments) so that it agrees
// with the paths produced while walking it.
func (r Rule) Normalize() Rule {
	name := strings.Trim(collapseSeparators(strings.TrimSpace(r.Name)), "/")

	base := strings.TrimSpace(r.Base)
	if base != "" {
		base = filepath.Clean(collapseSeparators(base))
	}

	return Rule{Name: name, Base: base}
}

// Validate reports INVALID_RULE for rules that cannot select anything sensible
func (r Rule) Validate() error {
	if r.Name == "" {
		return errors.New(errors.ErrInvalidRule, "rule name must not be empty")
	}
	for _, segment := range strings.Split(r.Name, "/") {
		if segment == "." || segment == ".." || segment == "" {
			return errors.Newf(errors.ErrInvalidRule, "rule name %q must not contain empty, '.' or '..' segments", r.Name)
		}
	}
	if r.Base == "" {
		return errors.New(errors.ErrInvalidRule, "rule base must not be empty")
	}
	if !filepath.IsAbs(r.Base) {
		return errors.Newf(errors.ErrInvalidRule, "rule base %q must be an absolute path", r.Base)
	}
	return nil
}

// Equal compares rules field by field, exactly
func (r Rule) Equal(other Rule) bool {
	return r.Name == other.Name && r.Base == other.Base
}

// Expression returns the glob this rule matches
func (r Rule) Expression() string {
	if r.Base == "/" {
		return "/**/" + r.Name
	}
	return r.Base + "/**/" + r.Name
}

// Pattern compiles the rule's expression. Base is taken literally; only
// Name is a glob.
func (r Rule) Pattern() (*Pattern, error) {
	glob := "/**/" + r.Name
	if r.Base != "/" {
		glob = EscapeGlob(r.Base) + glob
	}
	p, err := CompileGlob(glob)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidRule, "rule %s does not compile", r)
	}
	return p, nil
}

// String renders the rule the way list shows it
func (r Rule) String() string {
	return r.Expression()
}

func collapseSeparators(s string) string {
	for strings.Contains(s, "//") {
		s = strings.ReplaceAll(s, "//", "/")
	}
	return s
}
