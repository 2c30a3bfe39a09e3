package app

import "fmt"

// Version, Commit and BuildTime are set with ldflags, e.g.
// go build -ldflags "-X github.com/kamrul-CSE-official/ksa-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version string reported at startup and by the
// health endpoint.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
