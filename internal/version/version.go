// Package version holds build-time version metadata.
package version

// These are stamped at build time via -ldflags, for example:
//
//	go build -ldflags "-X github.com/doeshing/intent-apparatus/internal/version.Version=1.2.0"
var (
	// Version is the semantic release version.
	Version = "0.1.0-dev"
	// Commit is the git commit hash the binary was built from.
	Commit = ""
	// BuildDate is the build timestamp in RFC 3339 form.
	BuildDate = ""
)
