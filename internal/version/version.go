package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"     // Default value if not built with LDFLAGS
	CommitHash = "unknown" // Default value
	BuildDate  = "unknown" // Default value
)

// Info returns the one-line version banner.
func Info() string {
	return fmt.Sprintf("termly %s (commit %s, built %s)", Version, CommitHash, BuildDate)
}
