package objectops

import "fmt"

//nolint:gochecknoglobals // set via ldflags at build time.
var (
	// Version is the release version, set via ldflags.
	Version = "dev"
	// Commit is the source revision, set via ldflags.
	Commit = "none"
	// CompiledAt is the build timestamp, set via ldflags.
	CompiledAt = "unknown"
)

// BuildInfo returns the build metadata as a single line, as printed by the
// commands' -version flag.
func BuildInfo() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, CompiledAt)
}
