// Package config loads the Blynd configuration: socket defaults, RPC
// timeouts, the setup verification retry policy, and logging settings.
// Values come from built-in defaults overlaid by an optional YAML file
// at $BLYND_HOME/config.yaml (default ~/.blynd/config.yaml).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Umesh-Bhati/Blynd/internal/logging"
	"github.com/Umesh-Bhati/Blynd/internal/rpc"
)

const configFileName = "config.yaml"

// Duration wraps time.Duration so YAML values can be written as strings
// like "900ms" or "5s".
type Duration time.Duration

// UnmarshalYAML accepts either a plain integer interpreted as
// nanoseconds or a duration string like "900ms".
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var asInt int64
	if err := value.Decode(&asInt); err == nil {
		*d = Duration(asInt)
		return nil
	}

	var asString string
	if err := value.Decode(&asString); err != nil {
		return fmt.Errorf("invalid duration value: %w", err)
	}
	parsed, err := time.ParseDuration(asString)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", asString, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration in its string form.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// SocketConfig holds the default addon listener address used when a
// command does not override host/port.
type SocketConfig struct {
	Host string `yaml:"host"`
	Port uint16 `yaml:"port"`
}

// RPCConfig holds the per-call socket timeouts and read chunk size.
type RPCConfig struct {
	DialTimeout  Duration `yaml:"dial_timeout"`
	WriteTimeout Duration `yaml:"write_timeout"`
	ReadTimeout  Duration `yaml:"read_timeout"`
	ChunkSize    int      `yaml:"chunk_size"`
}

// ToRPC converts the YAML-facing settings into an rpc.Config.
func (r RPCConfig) ToRPC() rpc.Config {
	return rpc.Config{
		DialTimeout:  r.DialTimeout.Std(),
		WriteTimeout: r.WriteTimeout.Std(),
		ReadTimeout:  r.ReadTimeout.Std(),
		ChunkSize:    r.ChunkSize,
	}
}

// VerifyConfig is the bounded retry policy for the setup socket check.
type VerifyConfig struct {
	Attempts int      `yaml:"attempts"`
	Delay    Duration `yaml:"delay"`
}

// Config is the full Blynd configuration.
type Config struct {
	Socket  SocketConfig   `yaml:"socket"`
	RPC     RPCConfig      `yaml:"rpc"`
	Verify  VerifyConfig   `yaml:"verify"`
	Logging logging.Config `yaml:"logging"`
}

// Default returns the built-in configuration.
func Default() *Config {
	rpcDefaults := rpc.DefaultConfig()
	return &Config{
		Socket: SocketConfig{
			Host: rpc.DefaultHost,
			Port: rpc.DefaultPort,
		},
		RPC: RPCConfig{
			DialTimeout:  Duration(rpcDefaults.DialTimeout),
			WriteTimeout: Duration(rpcDefaults.WriteTimeout),
			ReadTimeout:  Duration(rpcDefaults.ReadTimeout),
			ChunkSize:    rpcDefaults.ChunkSize,
		},
		Verify: VerifyConfig{
			Attempts: 3,
			Delay:    Duration(900 * time.Millisecond),
		},
		Logging: logging.Config{
			Level:  "info",
			Format: "console",
		},
	}
}

// ResolveConfigDir returns the Blynd configuration directory:
// $BLYND_HOME when set, otherwise ~/.blynd. The directory is not created.
func ResolveConfigDir() string {
	if home := os.Getenv("BLYND_HOME"); home != "" {
		return home
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return ".blynd"
	}
	return filepath.Join(userHome, ".blynd")
}

// Load reads the YAML file at path over the defaults. A missing file is
// not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// New loads the configuration from the resolved config directory.
func New() (*Config, error) {
	return Load(filepath.Join(ResolveConfigDir(), configFileName))
}
