// Package buildinfo carries version data stamped at link time:
//
//	go build -ldflags "-X github.com/idilsaglam/finmetrics/internal/buildinfo.Version=v0.2.0"
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// String renders a one-line version banner.
func String() string {
	commit, date := Commit, Date
	if commit == "" {
		commit = vcsSetting("vcs.revision")
	}
	if date == "" {
		date = vcsSetting("vcs.time")
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if commit == "" {
		commit = "unknown"
	}
	if date == "" {
		date = "unknown"
	}
	return fmt.Sprintf("finmetrics %s (commit %s, built %s, %s)", Version, commit, date, runtime.Version())
}

func vcsSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}
