// Package version exposes build-time version metadata, set via ldflags:
//
//	go build -ldflags "\
//	  -X github.com/ncobase/relay/version.Version=1.2.3 \
//	  -X github.com/ncobase/relay/version.Revision=abc123 \
//	  -X 'github.com/ncobase/relay/version.BuiltAt=2026-08-31T12:00:00Z'"
package version

import (
	"encoding/json"
	"fmt"
	"runtime"
)

// These variables are set during build time.
var (
	// Version is the current version.
	Version = "0.0.0"

	// Revision is the short commit hash of the source tree.
	Revision = "unknown"

	// BuiltAt is the build time.
	BuiltAt = "unknown"
)

// Info contains version information.
type Info struct {
	Version   string `json:"version"`
	Revision  string `json:"revision"`
	BuiltAt   string `json:"builtAt"`
	GoVersion string `json:"goVersion"`
}

// GetVersionInfo returns the build's version information.
func GetVersionInfo() Info {
	return Info{
		Version:   Version,
		Revision:  Revision,
		BuiltAt:   BuiltAt,
		GoVersion: runtime.Version(),
	}
}

// String returns a string representation of version information.
func (i Info) String() string {
	return fmt.Sprintf("Version: %s\nRevision: %s\nBuilt At: %s\nGo Version: %s",
		i.Version, i.Revision, i.BuiltAt, i.GoVersion)
}

// JSON returns a JSON representation of version information.
func (i Info) JSON() (string, error) {
	data, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
