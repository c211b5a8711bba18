// Package version exposes build metadata injected at link time.
package version

// Build-time variables injected via ldflags:
//
//	go build -ldflags "-X github.com/rshade/vpnmenu/pkg/version.version=1.2.3"
//
//nolint:gochecknoglobals // Set by ldflags
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the semantic version of this build.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// Full returns a one-line description suitable for --version output.
func Full() string {
	if gitCommit == "unknown" {
		return version
	}
	return version + " (" + gitCommit + ", built " + buildDate + ")"
}
