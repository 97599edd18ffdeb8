package blender

import (
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"

	"github.com/Umesh-Bhati/Blynd/internal/bridge"
)

// parseVersionDir parses a Blender config directory name of the form
// major[.minor[.patch]] into an ordered version. Names that do not parse
// are not version directories.
func parseVersionDir(name string) (*semver.Version, bool) {
	v, err := semver.NewVersion(name)
	if err != nil {
		return nil, false
	}
	return v, true
}

// latestVersionDir scans the immediate subdirectories of configRoot and
// returns the name of the highest Blender version directory. Comparison
// is numeric on the (major, minor, patch) triple, so 4.10 sorts above 4.9.
func latestVersionDir(configRoot string) (string, error) {
	entries, err := os.ReadDir(configRoot)
	if err != nil {
		return "", bridge.WrapError(bridge.KindConfigMissing, err,
			"Failed listing %s: %v", configRoot, err)
	}

	var latestName string
	var latest *semver.Version
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		v, ok := parseVersionDir(entry.Name())
		if !ok {
			continue
		}
		if latest == nil || v.GreaterThan(latest) {
			latest = v
			latestName = entry.Name()
		}
	}

	if latest == nil {
		return "", bridge.NewError(bridge.KindNoVersionFound,
			"No Blender version folders found in %s", configRoot)
	}

	return latestName, nil
}

// configRoot resolves the per-user Blender configuration root
// (%APPDATA%\Blender Foundation\Blender) and verifies it exists.
func (p *windowsPlatform) configRoot() (string, error) {
	appData, ok := p.lookupEnv("APPDATA")
	if !ok || appData == "" {
		return "", bridge.NewError(bridge.KindConfigMissing, "APPDATA is not available.")
	}

	root := filepath.Join(appData, configVendorSubpath, configProductDir)
	if _, err := os.Stat(root); err != nil {
		return "", bridge.NewError(bridge.KindConfigMissing,
			"Blender user config directory not found at %s", root)
	}

	return root, nil
}
