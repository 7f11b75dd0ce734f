package app

import "fmt"

// Version, Commit and BuildTime are set at build time:
//
//	go build -ldflags "-X github.com/heartmarshall/habitcoach-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build metadata for logs and /health.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
