package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SURGERY_EXIFTOOL", "")
	t.Setenv("SURGERY_LOG_LEVEL", "")
	t.Setenv("SURGERY_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "exiftool", cfg.Tool)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.ExtraReadFlags)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SURGERY_EXIFTOOL", "/opt/exiftool/exiftool")
	t.Setenv("SURGERY_LOG_LEVEL", "debug")
	t.Setenv("SURGERY_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/opt/exiftool/exiftool", cfg.Tool)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadYAMLOverridesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "surgery.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"tool: /usr/local/bin/exiftool\nextra_read_flags: [\"-charset\", \"utf8\"]\nlog_level: warn\n",
	), 0o644))

	t.Setenv("SURGERY_EXIFTOOL", "env-tool")
	t.Setenv("SURGERY_LOG_LEVEL", "")
	t.Setenv("SURGERY_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/exiftool", cfg.Tool)
	assert.Equal(t, []string{"-charset", "utf8"}, cfg.ExtraReadFlags)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "surgery.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tool: [unclosed"), 0o644))
	t.Setenv("SURGERY_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
}

func TestLoadMissingConfigFile(t *testing.T) {
	t.Setenv("SURGERY_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Load()
	require.Error(t, err)
}
