// Package service restarts the system indexing service so that a rewritten
// exclusion store takes effect.
//
// The restart is a list of commands (by default launchctl stop and start of
// com.apple.metadata.mds) run one after another with a shared timeout. A
// command that exits non-zero or writes to stderr fails the restart. A
// failed restart never undoes the store write that preceded it: the new
// exclusions apply at the next reboot anyway.
package service
