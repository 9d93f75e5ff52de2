// Package buildinfo carries version metadata stamped in by the linker:
//
//	go build -ldflags "-X hamilton/internal/buildinfo.Version=v1.2.0 -X hamilton/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import (
	"fmt"
	"runtime"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns the release version, else the commit, else "dev".
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Long returns the full identifier printed by `quatcalc version`.
func Long() string {
	return fmt.Sprintf("quatcalc %s (commit %s, built %s, %s)", Short(), Commit, Date, runtime.Version())
}
