// Package version holds build metadata stamped via -ldflags.
package version

var (
	// Version is the release version, "dev" for untagged builds.
	Version = "dev"
	// Commit is the short git revision of the build.
	Commit = "unknown"
)
