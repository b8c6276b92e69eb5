// ABOUTME: Version constants for the soundgen binaries
// ABOUTME: Reported by the -version flag
package version

const (
	// Product is the user-facing program name.
	Product = "soundgen"

	// Version is the release version of this build.
	Version = "1.0.0"
)
