package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/statfuse/statfuse/pkg/vcfstats"
)

func sampleSummary() *vcfstats.Summary {
	return &vcfstats.Summary{
		Sets: []vcfstats.SetSummary{
			{
				ID:         "0",
				Files:      []string{"a.vcf.gz", "b.vcf.gz"},
				Counts:     []vcfstats.NamedCount{{Name: "number of SNPs", Value: 1234567}},
				TsTv:       2.5,
				TsTv1stAlt: 2.4,
				Depth: []vcfstats.DepthPercentile{
					{Percentile: 50, Bin: "11"},
					{Percentile: 95, Bin: ">500"},
				},
				Substitutions: []vcfstats.SubstitutionCount{
					{Type: "A>G", Count: 900},
					{Type: "C>T", Count: 850},
				},
				AlleleFreq: []vcfstats.AlleleFreqBin{
					{Frequency: "0.000000", SNPs: 40, Indels: 4},
				},
			},
			{
				ID:    "1",
				Files: []string{"a.vcf.gz"},
			},
		},
	}
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	r := Renderer{Format: "table", NoColor: true}
	require.NoError(t, r.Render(sampleSummary(), &buf))

	out := buf.String()

	assert.Contains(t, out, "set 0 (a.vcf.gz, b.vcf.gz)")
	assert.Contains(t, out, "set 1 (a.vcf.gz)")
	assert.Contains(t, out, "number of SNPs")
	assert.Contains(t, out, "1,234,567")
	assert.Contains(t, out, "ts/tv: 2.50 (1st ALT 2.40)")
	assert.Contains(t, out, "p50=11")
	assert.Contains(t, out, "p95=>500")
	assert.Contains(t, out, "A>G")
	assert.Contains(t, out, "0.000000")
}

func TestRenderTableOmitsEmptyParts(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	r := Renderer{NoColor: true}
	require.NoError(t, r.Render(&vcfstats.Summary{
		Sets: []vcfstats.SetSummary{{ID: "0", Files: []string{"x.vcf"}}},
	}, &buf))

	out := buf.String()

	assert.Contains(t, out, "set 0 (x.vcf)")
	assert.NotContains(t, out, "ts/tv")
	assert.NotContains(t, out, "depth:")
	assert.NotContains(t, out, "substitution")
}

func TestRenderTableNoColorHasNoEscapes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	r := Renderer{NoColor: true}
	require.NoError(t, r.Render(sampleSummary(), &buf))

	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	r := Renderer{Format: "json"}
	require.NoError(t, r.Render(sampleSummary(), &buf))

	var decoded vcfstats.Summary

	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Sets, 2)
	assert.Equal(t, "0", decoded.Sets[0].ID)
	assert.Equal(t, []string{"a.vcf.gz", "b.vcf.gz"}, decoded.Sets[0].Files)
	assert.InDelta(t, 2.5, decoded.Sets[0].TsTv, 1e-9)
}

func TestRenderYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	r := Renderer{Format: "yaml"}
	require.NoError(t, r.Render(sampleSummary(), &buf))

	var decoded vcfstats.Summary

	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Sets, 2)
	assert.InDelta(t, 2.4, decoded.Sets[0].TsTv1stAlt, 1e-9)
	assert.Equal(t, ">500", decoded.Sets[0].Depth[1].Bin)
}

func TestFormatCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "integer", in: 1234567, want: "1,234,567"},
		{name: "zero", in: 0, want: "0"},
		{name: "fractional", in: 1234.5, want: "1,234.5"},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, formatCount(tt.in))
		})
	}
}

func TestRenderUnknownFormatFallsBackToTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	r := Renderer{Format: "wat", NoColor: true}
	require.NoError(t, r.Render(sampleSummary(), &buf))

	assert.True(t, strings.HasPrefix(buf.String(), "set 0"))
}
