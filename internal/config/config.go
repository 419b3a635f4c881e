// Package config loads roswatch settings from a yaml file, the
// environment, and CLI flags, in ascending precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds every tunable the program reads at startup.
type Config struct {
	// LogFile receives all runtime logging; the TUI owns the terminal.
	LogFile string `mapstructure:"log_file" yaml:"log_file"`
	// Debug lowers the log level to debug.
	Debug bool `mapstructure:"debug" yaml:"debug"`
	// RefreshInterval is how often list content is re-polled.
	RefreshInterval time.Duration `mapstructure:"refresh_interval" yaml:"refresh_interval"`
	// DescribeTTL is how long per-item detail is cached.
	DescribeTTL time.Duration `mapstructure:"describe_ttl" yaml:"describe_ttl"`
	// SetupScript is sourced before every ros2 command, e.g.
	// /opt/ros/humble/setup.bash. Empty inherits the environment.
	SetupScript string `mapstructure:"setup_script" yaml:"setup_script"`
}

// defaults are applied below file, env, and flag values.
func defaults() map[string]any {
	return map[string]any{
		"log_file":         "roswatch.log",
		"debug":            false,
		"refresh_interval": time.Second,
		"describe_ttl":     5 * time.Second,
		"setup_script":     "",
	}
}

// configDir returns the user config directory for roswatch.
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, "roswatch"), nil
}

// Load resolves the configuration. explicitPath (from --config) has
// the highest file precedence; otherwise roswatch.yaml is searched in
// the user config directory and the current directory. Environment
// variables use the ROSWATCH_ prefix.
func Load(cmd *cobra.Command, explicitPath string) (Config, error) {
	var c Config
	v := viper.New()

	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName("roswatch")
	v.SetConfigType("yaml")
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	}
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; a malformed one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("roswatch")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}

// Write saves c as the user config file, creating the directory as
// needed.
func Write(c *Config) error {
	dir, err := configDir()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", dir, err)
	}
	return os.WriteFile(filepath.Join(dir, "roswatch.yaml"), data, 0o644)
}
