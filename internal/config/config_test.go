package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statfuse/statfuse/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Merge: config.MergeConfig{
			StrictSchema: true,
		},
		Summary: config.SummaryConfig{
			AFBinSize:        0.05,
			Percentiles:      []int{25, 50, 75, 95},
			TopSubstitutions: 6,
		},
		Output: config.OutputConfig{
			Format: config.FormatTable,
		},
	}
}

func TestValidate_ValidConfig_NoError(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidate_ZeroConfig_NoError(t *testing.T) {
	t.Parallel()

	cfg := config.Config{}
	require.NoError(t, cfg.Validate())
}

func TestValidate_InvalidAFBinSize_ReturnsError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		size float64
	}{
		{name: "negative", size: -0.1},
		{name: "above_one", size: 1.5},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			cfg.Summary.AFBinSize = tt.size

			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidAFBinSize)
		})
	}
}

func TestValidate_InvalidPercentile_ReturnsError(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Summary.Percentiles = []int{50, 101}

	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidPercentile)
}

func TestValidate_InvalidTopSubstitutions_ReturnsError(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Summary.TopSubstitutions = -1

	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidTopSubstitutions)
}

func TestValidate_InvalidFormat_ReturnsError(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Output.Format = "xml"

	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidFormat)
}

func TestSummaryConfig_Options(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	opts := cfg.Summary.Options()

	assert.InDelta(t, 0.05, opts.AFBinSize, 1e-9)
	assert.Equal(t, []int{25, 50, 75, 95}, opts.Percentiles)
	assert.Equal(t, 6, opts.TopSubstitutions)

	// The options carry their own copy of the percentile list.
	opts.Percentiles[0] = 1
	assert.Equal(t, 25, cfg.Summary.Percentiles[0])
}
