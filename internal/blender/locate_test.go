package blender

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Umesh-Bhati/Blynd/internal/bridge"
)

// newTestPlatform builds a native platform whose environment and
// fallback roots are fully controlled by the test.
func newTestPlatform(env map[string]string, fallbacks []string) *windowsPlatform {
	return &windowsPlatform{
		lookupEnv: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
		fallbackRoots: fallbacks,
		exeName:       blenderExeName,
		addonFileName: addonFileName,
		addonSource:   []byte("# addon"),
		tempDir:       os.TempDir(),
	}
}

// placeExe creates dir and drops a blender.exe file into it.
func placeExe(t *testing.T, dir string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	exe := filepath.Join(dir, blenderExeName)
	require.NoError(t, os.WriteFile(exe, []byte("MZ"), 0o750))
	return exe
}

func TestDetectInstallation_Depths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		exeAt func(root string) string
		found bool
	}{
		{
			name:  "directly inside root",
			exeAt: func(root string) string { return root },
			found: true,
		},
		{
			name:  "one level down",
			exeAt: func(root string) string { return filepath.Join(root, "Blender 4.2") },
			found: true,
		},
		{
			name:  "two levels down",
			exeAt: func(root string) string { return filepath.Join(root, "Blender 4.2", "bin") },
			found: true,
		},
		{
			name:  "three levels down is out of bounds",
			exeAt: func(root string) string { return filepath.Join(root, "a", "b", "c") },
			found: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			exe := placeExe(t, tt.exeAt(root))

			p := newTestPlatform(nil, []string{root})
			scan := p.DetectInstallation(context.Background())

			assert.Equal(t, tt.found, scan.Found)
			if tt.found {
				assert.Equal(t, exe, scan.ExecutablePath)
				assert.Equal(t, "Blender installation detected.", scan.Message)
			}
		})
	}
}

func TestDetectInstallation_DeduplicatesRootsCaseInsensitively(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	fallback := filepath.Join(base, "fallback")
	require.NoError(t, os.MkdirAll(fallback, 0o750))

	env := map[string]string{
		// Same root spelled with different case: must be searched once.
		"PROGRAMFILES":      filepath.Join(base, "Programs"),
		"PROGRAMFILES(X86)": filepath.Join(base, "PROGRAMS"),
	}

	p := newTestPlatform(env, []string{fallback})
	scan := p.DetectInstallation(context.Background())

	require.False(t, scan.Found)
	require.Len(t, scan.SearchedPaths, 2)
	assert.Equal(t, filepath.Join(base, "Programs", installVendorDir), scan.SearchedPaths[0])
	assert.Equal(t, fallback, scan.SearchedPaths[1])
}

func TestDetectInstallation_StopsAtFirstMatch(t *testing.T) {
	t.Parallel()

	first := t.TempDir()
	second := t.TempDir()
	placeExe(t, filepath.Join(first, "Blender 4.1"))
	placeExe(t, second)

	p := newTestPlatform(nil, []string{first, second})
	scan := p.DetectInstallation(context.Background())

	require.True(t, scan.Found)
	assert.True(t, strings.HasPrefix(scan.ExecutablePath, first))
	// The second root is never visited once a match is found.
	assert.Equal(t, []string{first}, scan.SearchedPaths)
}

func TestDetectInstallation_FallbacksOnlyWhenEnvUnset(t *testing.T) {
	t.Parallel()

	fallbacks := []string{
		`C:\Program Files\Blender Foundation`,
		`C:\Program Files (x86)\Blender Foundation`,
	}

	p := newTestPlatform(nil, fallbacks)
	scan := p.DetectInstallation(context.Background())

	assert.False(t, scan.Found)
	assert.Equal(t, fallbacks, scan.SearchedPaths)
	assert.Equal(t, "Blender was not found in common Windows installation paths.", scan.Message)
}

func TestNullPlatform(t *testing.T) {
	t.Parallel()

	p := nullPlatform{}
	ctx := context.Background()

	scan := p.DetectInstallation(ctx)
	assert.False(t, scan.Found)
	assert.Empty(t, scan.SearchedPaths)
	assert.Equal(t, "Windows Blender scan is disabled on this OS.", scan.Message)

	_, err := p.InstallAddon(ctx)
	assert.Equal(t, bridge.KindUnsupportedPlatform, bridge.KindOf(err))

	_, err = p.Activate(ctx, "/usr/bin/blender")
	assert.Equal(t, bridge.KindUnsupportedPlatform, bridge.KindOf(err))
}
