package blender

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Umesh-Bhati/Blynd/internal/bridge"
)

// makeConfigRoot lays out an APPDATA tree with the given Blender version
// directories and returns the env map pointing at it.
func makeConfigRoot(t *testing.T, versions ...string) (map[string]string, string) {
	t.Helper()

	appData := t.TempDir()
	root := filepath.Join(appData, configVendorSubpath, configProductDir)
	for _, v := range versions {
		require.NoError(t, os.MkdirAll(filepath.Join(root, v), 0o750))
	}
	return map[string]string{"APPDATA": appData}, root
}

func TestInstallAddon_SelectsLatestVersion(t *testing.T) {
	t.Parallel()

	env, root := makeConfigRoot(t, "4.9", "4.10.0", "2")
	p := newTestPlatform(env, nil)

	result, err := p.InstallAddon(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Installed)
	assert.Equal(t, "4.10.0", result.BlenderVersion)
	assert.Equal(t, filepath.Join(root, "4.10.0", "scripts", "addons", addonFileName), result.AddonPath)
	assert.Contains(t, result.Message, "Addon installed to Blender 4.10.0.")

	content, err := os.ReadFile(result.AddonPath)
	require.NoError(t, err)
	assert.Equal(t, "# addon", string(content))
}

// Reinstalling must overwrite the addon file in place, never duplicate it.
func TestInstallAddon_Idempotent(t *testing.T) {
	t.Parallel()

	env, _ := makeConfigRoot(t, "4.2.1")
	p := newTestPlatform(env, nil)
	ctx := context.Background()

	first, err := p.InstallAddon(ctx)
	require.NoError(t, err)

	p.addonSource = []byte("# updated addon")
	second, err := p.InstallAddon(ctx)
	require.NoError(t, err)

	assert.True(t, first.Installed)
	assert.True(t, second.Installed)
	assert.Equal(t, first.AddonPath, second.AddonPath)

	content, err := os.ReadFile(second.AddonPath)
	require.NoError(t, err)
	assert.Equal(t, "# updated addon", string(content))

	entries, err := os.ReadDir(filepath.Dir(second.AddonPath))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestInstallAddon_ConfigMissing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "APPDATA unset",
			env:  nil,
		},
		{
			name: "config tree absent",
			env:  map[string]string{"APPDATA": filepath.Join(os.TempDir(), "definitely-missing-appdata")},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := newTestPlatform(tt.env, nil)
			_, err := p.InstallAddon(context.Background())
			require.Error(t, err)
			assert.Equal(t, bridge.KindConfigMissing, bridge.KindOf(err))
		})
	}
}

func TestInstallAddon_NoVersionFolders(t *testing.T) {
	t.Parallel()

	env, root := makeConfigRoot(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "config"), 0o750))

	p := newTestPlatform(env, nil)
	_, err := p.InstallAddon(context.Background())
	require.Error(t, err)
	assert.Equal(t, bridge.KindNoVersionFound, bridge.KindOf(err))
}
