package casetools

import (
	"fmt"
	"runtime"
)

var (
	// version is set via ldflags during build by GoReleaser
	// For development builds, this will show "dev"
	version = "dev"

	// commit is set via ldflags during build by GoReleaser
	commit = "unknown"

	// buildTime is set via ldflags during build by GoReleaser
	buildTime = "unknown"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the git commit hash or 'unknown' if run from source
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp or 'unknown' if run from source
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go runtime version used to build the binary
func GoVersion() string {
	return runtime.Version()
}

// BuildInfo returns a human-readable summary of all build metadata
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		Version(), Commit(), BuildTime(), GoVersion())
}

// UserAgent returns the User-Agent string to use
func UserAgent() string {
	return fmt.Sprintf("casetools/%s", version)
}
