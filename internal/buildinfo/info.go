// Package buildinfo carries release metadata stamped into the tierbank binary.
package buildinfo

// Set with -ldflags "-X github.com/cleared-dev/tierbank/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
