// Package version reports the build stamp of the binaries
package version

// Service is the API service name used in logs, meta responses and the ClickHouse client info
const Service = "hangman-api"

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build stamp
// set with -ldflags "-X 'hangman/internal/core/version.version=v0.1.0' -X 'hangman/internal/core/version.commit=abcd'"
func Info() BuildInfo {
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
