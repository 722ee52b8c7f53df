// Package buildinfo holds release metadata injected at link time:
//
//	go build -ldflags "-X github.com/matzehuels/ifcgraph/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/ifcgraph/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/ifcgraph/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s, built %s)\n", Version, Commit, Date)
}

// CacheScope returns the cache key prefix for this build. Entries written by
// another release are never read back; development builds share one scope
// per commit.
func CacheScope() string {
	if Version == "dev" {
		return "dev-" + Commit + ":"
	}
	return Version + ":"
}
