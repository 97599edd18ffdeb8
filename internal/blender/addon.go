package blender

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Umesh-Bhati/Blynd/internal/bridge"
	"github.com/Umesh-Bhati/Blynd/internal/logging"
)

const (
	addonDirPerm  = 0o750
	addonFilePerm = 0o644
)

// InstallAddon writes the embedded companion addon into the newest
// detected Blender version's scripts/addons directory. Installation is
// idempotent: an existing addon file is overwritten in place.
func (p *windowsPlatform) InstallAddon(ctx context.Context) (*bridge.AddonInstallResult, error) {
	log := logging.FromContext(ctx)

	root, err := p.configRoot()
	if err != nil {
		return nil, err
	}

	version, err := latestVersionDir(root)
	if err != nil {
		return nil, err
	}

	addonsDir := filepath.Join(root, version, "scripts", "addons")
	if mkErr := os.MkdirAll(addonsDir, addonDirPerm); mkErr != nil {
		return nil, fmt.Errorf("creating Blender addons directory: %w", mkErr)
	}

	addonPath := filepath.Join(addonsDir, p.addonFileName)
	if writeErr := os.WriteFile(addonPath, p.addonSource, addonFilePerm); writeErr != nil {
		return nil, fmt.Errorf("writing addon file: %w", writeErr)
	}

	log.Info().
		Str("component", "blender").
		Str("operation", "install_addon").
		Str("path", addonPath).
		Str("version", version).
		Msg("addon installed")

	return &bridge.AddonInstallResult{
		Installed:      true,
		AddonPath:      addonPath,
		BlenderVersion: version,
		Message: fmt.Sprintf(
			"Addon installed to Blender %s. In Blender Preferences > Add-ons, enable 'Interface: Blender MCP'.",
			version),
	}, nil
}
