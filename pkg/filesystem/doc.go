// Package filesystem provides the filesystem access used by the rule registry
// and the exclusion store: an FS interface with an OS implementation,
// atomic whole-file replacement, and advisory cross-process locks.
package filesystem
