// Package version exposes build metadata set through -ldflags.
package version

import "fmt"

// Set at build time with -ldflags "-X github.com/rshade/sharesout/pkg/version.version=...".
//
//nolint:gochecknoglobals // ldflags targets
var (
	version   = "dev"
	gitCommit = ""
	buildDate = ""
)

// GetVersion returns the release version.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from, if recorded.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp, if recorded.
func GetBuildDate() string {
	return buildDate
}

// String returns the full version line shown by --version.
func String() string {
	s := version
	if gitCommit != "" {
		s += fmt.Sprintf(" (commit %s)", gitCommit)
	}
	if buildDate != "" {
		s += fmt.Sprintf(" built %s", buildDate)
	}
	return s
}
