// Package reconcile computes changes to the exclusion set.
//
// Two directions are supported. Merge adds discovered paths that are not
// already excluded and reports nil when there is nothing to add, so callers
// can skip the write and the service restart. Subtract removes every
// exclusion a rule's pattern matches and always reports, even when nothing
// matched.
//
// Paths are compared as exact strings. Two paths that differ only by a
// trailing separator, by case, or by a symlink in between are distinct.
//
// The set arithmetic lives in pure functions (MergeExclusions,
// PartitionExclusions, Dedup). Engine adds loading from and writing to a
// datastore.DataStore.
package reconcile
