// Package version provides build-time metadata for the CLI application.
//
// All variables have sensible defaults and can be overridden at build time
// using -ldflags:
//
//	go build -ldflags "\
//	  -X 'github.com/slashdevops/macaddrs/internal/version.Version=1.0.0' \
//	  -X 'github.com/slashdevops/macaddrs/internal/version.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)'"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// unset is the Version of a binary built without -ldflags.
const unset = "0.0.0"

var (
	// Version is the current version of the application
	Version = unset

	// BuildDate is the date the application was built
	BuildDate = "1970-01-01T00:00:00Z"

	// GitCommit is the commit hash the application was built from
	GitCommit = ""

	// GitBranch is the branch the application was built from
	GitBranch = ""

	// BuildUser is the user that built the application
	BuildUser = ""

	// GoVersion is the version of Go used to build the application
	GoVersion = runtime.Version()
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Short returns Version, or the module version recorded by go install when
// Version was not set at build time.
func Short() string {
	if Version == unset {
		if info, ok := readBuildInfo(); ok && info.Main.Version != "" {
			return info.Main.Version
		}
	}

	return Version
}

// Long returns a one-line description of the build of app.
func Long(app string) string {
	var sb strings.Builder

	if Version == unset {
		if info, ok := readBuildInfo(); ok {
			fmt.Fprintf(&sb, "%s version: %s, ", app, info.Main.Version)
			fmt.Fprintf(&sb, "Git commit: %s, ", info.Main.Sum)
			fmt.Fprintf(&sb, "Go version: %s\n", info.GoVersion)

			return sb.String()
		}
	}

	fmt.Fprintf(&sb, "%s version: %s, ", app, Version)
	fmt.Fprintf(&sb, "Build date: %s, ", BuildDate)
	fmt.Fprintf(&sb, "Build user: %s, ", BuildUser)
	fmt.Fprintf(&sb, "Git commit: %s, ", GitCommit)
	fmt.Fprintf(&sb, "Git branch: %s, ", GitBranch)
	fmt.Fprintf(&sb, "Go version: %s\n", GoVersion)

	return sb.String()
}
