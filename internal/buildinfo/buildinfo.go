// Package buildinfo exposes version data injected at build time via ldflags:
//
//	go build -ldflags "-X .../internal/buildinfo.Version=v1.2.3 \
//	  -X .../internal/buildinfo.Commit=abc1234 \
//	  -X .../internal/buildinfo.Date=2026-01-02"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version = "N/A"
	Commit  = "N/A"
	Date    = "N/A"
)

// PrintBuildData writes the build version, commit, and date to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
	fmt.Fprintf(w, "Build date: %s\n", Date)
}
