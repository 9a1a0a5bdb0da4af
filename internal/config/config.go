package config

import (
	"errors"
	"slices"

	"github.com/statfuse/statfuse/pkg/vcfstats"
)

// Config is the top-level configuration struct for statfuse.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Merge   MergeConfig   `mapstructure:"merge"`
	Summary SummaryConfig `mapstructure:"summary"`
	Output  OutputConfig  `mapstructure:"output"`
}

// MergeConfig holds merge behavior settings.
type MergeConfig struct {
	StrictSchema bool `mapstructure:"strict_schema"`
}

// SummaryConfig holds summary extraction settings.
type SummaryConfig struct {
	AFBinSize        float64 `mapstructure:"af_bin_size"`
	Percentiles      []int   `mapstructure:"percentiles"`
	TopSubstitutions int     `mapstructure:"top_substitutions"`
}

// OutputConfig holds rendering settings.
type OutputConfig struct {
	NoColor bool   `mapstructure:"no_color"`
	Format  string `mapstructure:"format"`
}

// Summary output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Defaults applied when neither config file nor environment sets a value.
const (
	DefaultStrictSchema = false
	DefaultNoColor      = false
	DefaultFormat       = FormatTable
)

// Bounds for summary settings. Allele frequencies span [0, 1]; a zero bin
// size disables rebinning.
const (
	afBinSizeMax  = 1.0
	percentileMax = 100
)

// Sentinel errors for configuration validation.
var (
	// ErrInvalidAFBinSize indicates the allele frequency bin width is out
	// of range.
	ErrInvalidAFBinSize = errors.New("summary.af_bin_size must be between 0 and 1")
	// ErrInvalidPercentile indicates a depth percentile is out of range.
	ErrInvalidPercentile = errors.New("summary.percentiles values must be between 0 and 100")
	// ErrInvalidTopSubstitutions indicates the substitution count is negative.
	ErrInvalidTopSubstitutions = errors.New("summary.top_substitutions must be non-negative")
	// ErrInvalidFormat indicates an unknown output format.
	ErrInvalidFormat = errors.New("output.format must be table, json or yaml")
)

// Validate checks config invariants.
func (c *Config) Validate() error {
	if c.Summary.AFBinSize < 0 || c.Summary.AFBinSize > afBinSizeMax {
		return ErrInvalidAFBinSize
	}

	for _, p := range c.Summary.Percentiles {
		if p < 0 || p > percentileMax {
			return ErrInvalidPercentile
		}
	}

	if c.Summary.TopSubstitutions < 0 {
		return ErrInvalidTopSubstitutions
	}

	switch c.Output.Format {
	case "", FormatTable, FormatJSON, FormatYAML:
	default:
		return ErrInvalidFormat
	}

	return nil
}

// Options converts the summary section into the engine's extraction
// options.
func (s SummaryConfig) Options() vcfstats.SummaryOptions {
	return vcfstats.SummaryOptions{
		AFBinSize:        s.AFBinSize,
		Percentiles:      slices.Clone(s.Percentiles),
		TopSubstitutions: s.TopSubstitutions,
	}
}
