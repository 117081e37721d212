// Package buildinfo carries version metadata stamped in at link time.
package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/pennywise-dev/pennywise/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String renders the version line printed by --version.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
