package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statfuse/statfuse/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.Nil(t, cfg)

	cfg, err = config.LoadConfig("")
	require.NoError(t, err)

	assert.False(t, cfg.Merge.StrictSchema)
	assert.InDelta(t, 0.05, cfg.Summary.AFBinSize, 1e-9)
	assert.Equal(t, []int{25, 50, 75, 95}, cfg.Summary.Percentiles)
	assert.Equal(t, 6, cfg.Summary.TopSubstitutions)
	assert.Equal(t, config.FormatTable, cfg.Output.Format)
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statfuse.yaml")
	content := "merge:\n  strict_schema: true\nsummary:\n  af_bin_size: 0.1\n  top_substitutions: 3\noutput:\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.Merge.StrictSchema)
	assert.InDelta(t, 0.1, cfg.Summary.AFBinSize, 1e-9)
	assert.Equal(t, 3, cfg.Summary.TopSubstitutions)
	assert.Equal(t, config.FormatJSON, cfg.Output.Format)

	// Unset keys keep their defaults.
	assert.Equal(t, []int{25, 50, 75, 95}, cfg.Summary.Percentiles)
}

func TestLoadConfig_InvalidFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statfuse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("summary:\n  af_bin_size: 2.0\n"), 0o600))

	_, err := config.LoadConfig(path)
	require.ErrorIs(t, err, config.ErrInvalidAFBinSize)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("STATFUSE_MERGE_STRICT_SCHEMA", "true")
	t.Setenv("STATFUSE_OUTPUT_FORMAT", "yaml")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.True(t, cfg.Merge.StrictSchema)
	assert.Equal(t, config.FormatYAML, cfg.Output.Format)
}
