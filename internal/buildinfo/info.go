// Package buildinfo carries release metadata, injected at link time:
//
//	go build -ldflags "-X github.com/cleared-dev/cashview/internal/buildinfo.Version=v0.3.0" ./cmd/cashview
package buildinfo

var (
	// Version is the release tag.
	Version = "dev"
	// Commit is the source revision.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
