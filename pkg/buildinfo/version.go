// Package buildinfo carries the version stamped into the letterboard binary.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/letterboard/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/letterboard/pkg/buildinfo.Commit=$(git rev-parse --short HEAD)" \
//	    ./cmd/letterboard
package buildinfo

import (
	"fmt"
	"runtime"
)

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"

	// Commit is the source revision.
	Commit = "none"

	// Date is the UTC build time.
	Date = "unknown"
)

// String returns a multi-line summary including the Go toolchain.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s\ngo: %s", Version, Commit, Date, runtime.Version())
}

// Template is the cobra --version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s, %s)\n", Version, Commit, Date)
}
