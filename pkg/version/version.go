// Package version exposes the build version of waylist.
package version

// version is set at build time via -ldflags "-X github.com/rshade/waylist/pkg/version.version=v1.2.3".
var version = "0.0.0-dev" //nolint:gochecknoglobals // Set by the linker.

// GetVersion returns the build version.
func GetVersion() string {
	return version
}
