package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/grovetools/codeclean/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the build information for `codeclean version`.
func String() string {
	return fmt.Sprintf("codeclean %s (commit=%s, date=%s)", Version, Commit, Date)
}
