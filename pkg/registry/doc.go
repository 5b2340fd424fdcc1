// Package registry persists exclusion rules in the rule document.
//
// The rule document is the same YAML (or TOML) file that holds the rest of
// the configuration. The registry owns only its `excludes` key: every other
// key is carried through a rewrite untouched, and in YAML documents the
// surrounding comments and key order are kept as well.
//
// Each mutation is a read-modify-write of the whole document performed under
// an advisory file lock and finished with an atomic rename, so concurrent
// invocations never interleave their edits and a crash never leaves a
// truncated document behind.
//
// The document is created lazily: List on a missing file returns no rules,
// and the first Insert writes it.
package registry
