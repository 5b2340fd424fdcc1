package reconcile

import "github.com/arthur-debert/spotlight-manager/pkg/rules"

// Dedup keeps the first occurrence of every path and reports how many
// later repeats were dropped
func Dedup(paths []string) ([]string, int) {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out, len(paths) - len(out)
}

// MergeExclusions returns the discovered paths missing from current (first
// seen order, without repeats) and the deduplicated union current ++ added.
// duplicatesRemoved counts repeats that were already present in current.
func MergeExclusions(current, discovered []string) (added, updated []string, duplicatesRemoved int) {
	present := make(map[string]struct{}, len(current))
	for _, p := range current {
		present[p] = struct{}{}
	}

	added = []string{}
	for _, p := range discovered {
		if _, ok := present[p]; ok {
			continue
		}
		present[p] = struct{}{}
		added = append(added, p)
	}

	combined := make([]string, 0, len(current)+len(added))
	combined = append(combined, current...)
	combined = append(combined, added...)
	updated, duplicatesRemoved = Dedup(combined)
	return added, updated, duplicatesRemoved
}

// PartitionExclusions splits current into the paths pattern does not match
// (kept) and the ones it does (removed), preserving order in both
func PartitionExclusions(current []string, pattern *rules.Pattern) (kept, removed []string) {
	kept = []string{}
	removed = []string{}
	for _, p := range current {
		if pattern.Match(p) {
			removed = append(removed, p)
		} else {
			kept = append(kept, p)
		}
	}
	return kept, removed
}
