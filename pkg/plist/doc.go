// Package plist reads and rewrites the Spotlight volume configuration.
//
// The volume configuration is a property list whose top-level dictionary
// holds, among many other keys, an `Exclusions` array of absolute paths.
// A Document exposes that array and nothing else; every other key is kept
// exactly as it was read when the document is encoded again.
//
// Both on-disk formats are supported. XML documents are edited in place as
// an element tree (github.com/beevik/etree) so unrelated values keep their
// original representation. Binary documents (bplist00) are decoded into a
// generic dictionary and re-encoded with howett.net/plist.
package plist
