package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithNoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.False(t, cfg.Diagnostics)
}

func TestLoad_EnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("CCPM_DIAGNOSTICS", "true")
	t.Setenv("CCPM_OUTPUT", "/tmp/aoa.json")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Diagnostics)
	assert.Equal(t, "/tmp/aoa.json", cfg.Output)
}

func TestLoad_MissingConfigFileIsNotAnError(t *testing.T) {
	_, err := Load("/nonexistent/ccpmcli.yaml")
	require.NoError(t, err)
}

func TestLoad_RejectsUnsupportedFormat(t *testing.T) {
	t.Setenv("CCPM_FORMAT", "yaml")

	_, err := Load("")
	assert.Error(t, err)
}

func TestConfig_DiagnosticsWriterIsStderr(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, os.Stderr, cfg.DiagnosticsWriter())
}
