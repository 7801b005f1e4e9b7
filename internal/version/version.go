package version

import "fmt"

// These variables are populated at build time using -ldflags
var (
	// Version is the semantic version of the application
	Version = "dev"

	// BuildTime is the time the binary was built
	BuildTime = "unknown"

	// Commit is the VCS revision the binary was built from
	Commit = "none"
)

// GetVersion returns the current version of the application
func GetVersion() string {
	return Version
}

// GetBuildTime returns the build time of the binary
func GetBuildTime() string {
	return BuildTime
}

// GetVersionInfo returns a formatted string with version information, used by `leetmetrics --version`
func GetVersionInfo() string {
	return fmt.Sprintf("leetmetrics v%s (commit %s, built %s)", Version, Commit, BuildTime)
}
