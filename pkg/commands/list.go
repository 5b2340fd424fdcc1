package commands

import (
	"github.com/arthur-debert/spotlight-manager/pkg/logging"
	"github.com/arthur-debert/spotlight-manager/pkg/rules"
)

// RuleListing is one registered rule and, when requested, the excluded
// paths it matches
type RuleListing struct {
	Rule  rules.Rule
	Paths []string
}

// ListResult reports the registered rules
type ListResult struct {
	Rules     []RuleListing
	ShowPaths bool
}

// List returns the registered rules in insertion order. With showPaths it
// also reads the store and attaches the exclusions each rule matches.
func List(env *Env, showPaths bool) (*ListResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "List").Bool("showPaths", showPaths).Msg("Executing command")

	ruleList, err := env.Registry.List()
	if err != nil {
		return nil, err
	}

	result := &ListResult{Rules: make([]RuleListing, 0, len(ruleList)), ShowPaths: showPaths}
	for _, rule := range ruleList {
		listing := RuleListing{Rule: rule}
		if showPaths {
			pattern, err := rule.Pattern()
			if err != nil {
				return nil, err
			}
			paths, err := env.Engine.Matching(pattern)
			if err != nil {
				return nil, err
			}
			listing.Paths = paths
		}
		result.Rules = append(result.Rules, listing)
	}

	log.Info().Str("command", "List").Int("rules", len(result.Rules)).Msg("Command finished")
	return result, nil
}
