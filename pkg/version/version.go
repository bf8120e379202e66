// Package version exposes build metadata set at link time.
package version

// Build metadata, overridden with -ldflags "-X github.com/rshade/unitconv/pkg/version.version=...".
//
//nolint:gochecknoglobals // Set by the linker.
var (
	version   = "0.1.0-dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the semantic version of the binary.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns when the binary was built.
func GetBuildDate() string {
	return buildDate
}
