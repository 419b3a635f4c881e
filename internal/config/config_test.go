package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Run from an empty directory so no stray roswatch.yaml is found.
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c, err := Load(nil, "")
	require.NoError(t, err)
	require.Equal(t, "roswatch.log", c.LogFile)
	require.False(t, c.Debug)
	require.Equal(t, time.Second, c.RefreshInterval)
	require.Equal(t, 5*time.Second, c.DescribeTTL)
	require.Empty(t, c.SetupScript)
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("log_file: /tmp/rw.log\ndebug: true\nrefresh_interval: 250ms\nsetup_script: /opt/ros/humble/setup.bash\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	c, err := Load(nil, path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/rw.log", c.LogFile)
	require.True(t, c.Debug)
	require.Equal(t, 250*time.Millisecond, c.RefreshInterval)
	require.Equal(t, "/opt/ros/humble/setup.bash", c.SetupScript)
	// Unset keys keep their defaults.
	require.Equal(t, 5*time.Second, c.DescribeTTL)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_file: [unclosed"), 0o644))

	_, err := Load(nil, path)
	require.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ROSWATCH_DEBUG", "true")
	t.Setenv("ROSWATCH_REFRESH_INTERVAL", "2s")

	c, err := Load(nil, "")
	require.NoError(t, err)
	require.True(t, c.Debug)
	require.Equal(t, 2*time.Second, c.RefreshInterval)
}
