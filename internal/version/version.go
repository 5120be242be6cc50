// Package version holds build-time version information, injected via
// -ldflags at release time.
package version

var (
	// Version is the semantic version of the build
	Version = "dev"
	// GitCommit is the git commit hash of the build
	GitCommit = ""
	// BuildDate is the build timestamp
	BuildDate = ""
)
