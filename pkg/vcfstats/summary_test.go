package vcfstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummaryFixture(t *testing.T) {
	t.Parallel()

	file := loadFixture(t, "a.chk")
	summary := BuildSummary(file.Table, DefaultSummaryOptions())

	require.Len(t, summary.Sets, 1)
	set := summary.Sets[0]

	t.Run("set_identity", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "0", set.ID)
		assert.Equal(t, []string{"a.vcf.gz"}, set.Files)
	})

	t.Run("headline_counts", func(t *testing.T) {
		t.Parallel()

		require.Len(t, set.Counts, 4)
		assert.Equal(t, NamedCount{Name: "number of records", Value: 100}, set.Counts[1])
		assert.Equal(t, NamedCount{Name: "number of SNPs", Value: 80}, set.Counts[2])
	})

	t.Run("tstv", func(t *testing.T) {
		t.Parallel()

		assert.InDelta(t, 3.00, set.TsTv, 1e-9)
		assert.InDelta(t, 3.05, set.TsTv1stAlt, 1e-9)
	})

	t.Run("depth_percentiles", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []DepthPercentile{
			{Percentile: 25, Bin: "10"},
			{Percentile: 50, Bin: "11"},
			{Percentile: 75, Bin: "11"},
			{Percentile: 95, Bin: "11"},
		}, set.Depth)
	})

	t.Run("top_substitutions", func(t *testing.T) {
		t.Parallel()

		require.Len(t, set.Substitutions, DefaultTopSubstitutions)
		assert.Equal(t, SubstitutionCount{Type: "A>G", Count: 20}, set.Substitutions[0])
		assert.Equal(t, SubstitutionCount{Type: "G>A", Count: 13}, set.Substitutions[1])
		assert.Equal(t, SubstitutionCount{Type: "C>T", Count: 12}, set.Substitutions[2])
	})

	t.Run("allele_frequency_bins", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []AlleleFreqBin{
			{Frequency: "0.000000", SNPs: 30, Indels: 6},
			{Frequency: "0.490000", SNPs: 50, Indels: 14},
		}, set.AlleleFreq)
	})
}

func TestBuildSummaryRebinsAlleleFrequencies(t *testing.T) {
	t.Parallel()

	file := loadFixture(t, "a.chk")

	opts := DefaultSummaryOptions()
	opts.AFBinSize = 0.5

	summary := BuildSummary(file.Table, opts)
	require.Len(t, summary.Sets, 1)

	assert.Equal(t, []AlleleFreqBin{
		{Frequency: "0.000000", SNPs: 80, Indels: 20},
	}, summary.Sets[0].AlleleFreq)
}

func TestBuildSummaryOnMergedReport(t *testing.T) {
	t.Parallel()

	report := mergeFixtures(t)
	summary := BuildSummary(report.Table, DefaultSummaryOptions())

	require.Len(t, summary.Sets, 1)
	set := summary.Sets[0]

	assert.Equal(t, []string{"*.vcf.gz"}, set.Files)

	assert.Equal(t, []DepthPercentile{
		{Percentile: 25, Bin: "10"},
		{Percentile: 50, Bin: "10"},
		{Percentile: 75, Bin: "11"},
		{Percentile: 95, Bin: ">500"},
	}, set.Depth)
}

func TestBuildSummaryEmptyTable(t *testing.T) {
	t.Parallel()

	summary := BuildSummary(NewSectionTable(), DefaultSummaryOptions())
	assert.Empty(t, summary.Sets)
}

func TestBuildSummaryWithoutOptionalSections(t *testing.T) {
	t.Parallel()

	file := parseReport(t, "SN\t0\tnumber of records:\t5")
	summary := BuildSummary(file.Table, DefaultSummaryOptions())

	require.Len(t, summary.Sets, 1)
	set := summary.Sets[0]

	assert.Empty(t, set.Files)
	assert.Empty(t, set.Depth)
	assert.Empty(t, set.Substitutions)
	assert.Empty(t, set.AlleleFreq)
	assert.Zero(t, set.TsTv)
}
