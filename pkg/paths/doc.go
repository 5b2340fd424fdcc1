// Package paths provides centralized path handling for spotlight-manager.
//
// It resolves, once per process:
//
//   - the rule document (config) location
//   - the XDG state directory holding the log file and advisory lock files
//   - home directory expansion for user-supplied search directories
//
// # Environment Variables
//
//   - SPOTLIGHT_MANAGER_CONFIG: rule document path (default: legacy
//     ~/.spotlight-manager.yaml if present, else $XDG_CONFIG_HOME/spotlight-manager/config.yaml)
//   - SPOTLIGHT_MANAGER_STATE_DIR: state directory (default: $XDG_STATE_HOME/spotlight-manager)
//
// Everything downstream receives a *Paths or plain strings derived from it.
package paths
