// Package version provides build-time version information.
package version

// Set via ldflags. Defaults are used for builds that do not set them (e.g. go install).
var (
	Version = "dev"
	Commit  = "unknown" // e.g. "1234567" or "1234567-dirty"
)

// Get returns the version string exposed as the label of the
// ivtree_version_info metric.
func Get() string {
	return Version
}
