// Package version exposes the Blynd build version.
package version

// version is injected at build time via
// -ldflags "-X github.com/Umesh-Bhati/Blynd/pkg/version.version=vX.Y.Z".
var version = "0.1.0-dev"

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}
