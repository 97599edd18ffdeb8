package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, "127.0.0.1", cfg.Socket.Host)
	assert.Equal(t, uint16(9876), cfg.Socket.Port)
	assert.Equal(t, 3, cfg.Verify.Attempts)
	assert.Equal(t, 900*time.Millisecond, cfg.Verify.Delay.Std())
	assert.Equal(t, 5*time.Second, cfg.RPC.DialTimeout.Std())
	assert.Equal(t, 20*time.Second, cfg.RPC.ReadTimeout.Std())
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
socket:
  host: 192.168.1.20
  port: 9999
verify:
  attempts: 5
  delay: 250ms
rpc:
  read_timeout: 3s
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.20", cfg.Socket.Host)
	assert.Equal(t, uint16(9999), cfg.Socket.Port)
	assert.Equal(t, 5, cfg.Verify.Attempts)
	assert.Equal(t, 250*time.Millisecond, cfg.Verify.Delay.Std())
	assert.Equal(t, 3*time.Second, cfg.RPC.ReadTimeout.Std())
	// Untouched sections keep their defaults.
	assert.Equal(t, 10*time.Second, cfg.RPC.WriteTimeout.Std())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("socket: ["), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalForms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		want    time.Duration
		wantErr bool
	}{
		{name: "duration string", yaml: "delay: 1.5s", want: 1500 * time.Millisecond},
		{name: "integer nanoseconds", yaml: "delay: 1000000", want: time.Millisecond},
		{name: "invalid string", yaml: "delay: soonish", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out struct {
				Delay Duration `yaml:"delay"`
			}
			err := yaml.Unmarshal([]byte(tt.yaml), &out)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Delay.Std())
		})
	}
}

func TestResolveConfigDir_EnvOverride(t *testing.T) {
	t.Setenv("BLYND_HOME", "/opt/blynd")
	assert.Equal(t, "/opt/blynd", ResolveConfigDir())
}

func TestResolveConfigDir_DefaultHome(t *testing.T) {
	t.Setenv("BLYND_HOME", "")

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".blynd"), ResolveConfigDir())
}
