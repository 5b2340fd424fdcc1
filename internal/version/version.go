// Package version carries build information injected at link time.
package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/spotlight-manager/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/spotlight-manager/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/spotlight-manager/internal/version.Date={{.Date}}
)
