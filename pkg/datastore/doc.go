// Package datastore reads and replaces the Spotlight exclusion store.
//
// The store is the volume configuration property list owned by the system
// indexing service. Reading it usually requires root; failures are reported
// as STORE_UNREADABLE with a hint about sudo and the spotlightPList setting.
//
// Writes encode the whole document and swap it in with an atomic rename
// while holding an advisory lock, so two spotlight-manager processes never
// interleave their replacements. The lock does not keep the indexing
// service itself from rewriting the file; the optional verify_unchanged
// check narrows that window by refusing to replace a file whose contents
// changed since it was read.
package datastore
