// Package blender implements the host-application side of the bridge:
// locating an installed Blender, deploying the companion addon into its
// per-version addons directory, and enabling the addon through a headless
// activation run.
package blender

import (
	"context"
	"os"
	"runtime"

	"github.com/Umesh-Bhati/Blynd/internal/bridge"
)

// Platform is the OS capability surface for discovery, installation and
// activation. Exactly one implementation is selected at startup: the
// native Windows implementation, or the null implementation that reports
// every operation as unsupported.
type Platform interface {
	// DetectInstallation scans well-known roots for a Blender executable.
	// "Not found" is a normal result, never an error.
	DetectInstallation(ctx context.Context) bridge.InstallationScan

	// InstallAddon deploys the companion addon into the newest Blender
	// version directory under the per-user config root.
	InstallAddon(ctx context.Context) (*bridge.AddonInstallResult, error)

	// Activate launches Blender headless to enable the installed addon
	// and returns a truncated stdout excerpt as the activation trace.
	Activate(ctx context.Context, executablePath string) (string, error)
}

// NewPlatform selects the platform implementation for the current OS and
// injects the addon payload into the installer.
func NewPlatform(addonSource []byte) Platform {
	if runtime.GOOS == "windows" {
		return newWindowsPlatform(addonSource)
	}
	return nullPlatform{}
}

// nullPlatform reports the deliberate capability gap on non-Windows hosts.
type nullPlatform struct{}

func (nullPlatform) DetectInstallation(context.Context) bridge.InstallationScan {
	return bridge.InstallationScan{
		Found:         false,
		SearchedPaths: []string{},
		Message:       "Windows Blender scan is disabled on this OS.",
	}
}

func (nullPlatform) InstallAddon(context.Context) (*bridge.AddonInstallResult, error) {
	return nil, bridge.NewError(bridge.KindUnsupportedPlatform,
		"Automatic addon installation is currently implemented for Windows builds only.")
}

func (nullPlatform) Activate(context.Context, string) (string, error) {
	return "", bridge.NewError(bridge.KindUnsupportedPlatform,
		"Automatic addon activation is currently implemented for Windows builds only.")
}

// windowsPlatform carries the native scan/install/activate behavior. Its
// inputs (env lookup, fallback roots, temp dir) are fields so the logic
// stays unit-testable off Windows.
type windowsPlatform struct {
	lookupEnv     func(string) (string, bool)
	fallbackRoots []string
	exeName       string
	addonFileName string
	addonSource   []byte
	tempDir       string
}

const (
	blenderExeName      = "blender.exe"
	addonFileName       = "blender_mcp.py"
	installVendorDir    = "Blender Foundation"
	installProgramsDir  = "Programs"
	configVendorSubpath = "Blender Foundation"
	configProductDir    = "Blender"
)

func newWindowsPlatform(addonSource []byte) *windowsPlatform {
	return &windowsPlatform{
		lookupEnv: os.LookupEnv,
		fallbackRoots: []string{
			`C:\Program Files\Blender Foundation`,
			`C:\Program Files (x86)\Blender Foundation`,
		},
		exeName:       blenderExeName,
		addonFileName: addonFileName,
		addonSource:   addonSource,
		tempDir:       os.TempDir(),
	}
}
