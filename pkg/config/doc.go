// Package config loads spotlight-manager's configuration.
//
// The configuration lives in the same document as the registered rules
// (the "excludes" key, owned by package registry). Sources are layered:
//
//  1. embedded defaults (embedded/defaults.yaml)
//  2. the rule document, YAML or TOML by file extension
//  3. SPOTLIGHT_MANAGER_* environment variables
//
// The resulting *Config is built once by the CLI and passed into every
// component constructor.
package config
