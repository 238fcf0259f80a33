// Package version exposes build metadata for the sailfish binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time via -ldflags:
//
//	-X github.com/apps4uco/sailfish/internal/version.Version=v1.2.3
//	-X github.com/apps4uco/sailfish/internal/version.GitCommit=abc1234
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// Get returns the version, falling back to module build info when the
// binary was built without ldflags.
func Get() string {
	if Version != "" && Version != "dev" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
				return "dev-" + setting.Value[:7]
			}
		}
	}

	return "dev"
}

// Commit returns the git commit hash, read from VCS build settings when
// not injected at build time.
func Commit() string {
	if GitCommit != "" && GitCommit != "unknown" {
		return GitCommit
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}

	return "unknown"
}

// Short returns a one-line version string for display.
func Short() string {
	v := Get()
	if commit := Commit(); commit != "unknown" && len(commit) >= 7 {
		return fmt.Sprintf("%s (%s)", v, commit[:7])
	}
	return v
}

// Detailed returns the multi-line output of the version subcommand.
func Detailed() string {
	return fmt.Sprintf("sailfish %s\ncommit: %s\ngo: %s\nplatform: %s/%s",
		Get(), Commit(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
