// Package render writes report summaries for people and for machines:
// aligned terminal tables with optional color, or JSON and YAML for
// downstream tooling.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/statfuse/statfuse/pkg/vcfstats"
)

// Output format names, matching the configuration values.
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// Renderer writes summaries in one of the supported output formats. The
// zero value renders tables with color enabled.
type Renderer struct {
	Format  string
	NoColor bool
}

// Render writes the summary to w in the renderer's format.
func (r Renderer) Render(summary *vcfstats.Summary, w io.Writer) error {
	switch r.Format {
	case formatJSON:
		return writeJSON(summary, w)
	case formatYAML:
		return writeYAML(summary, w)
	default:
		r.writeTables(summary, w)

		return nil
	}
}

func writeJSON(summary *vcfstats.Summary, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("encode summary json: %w", err)
	}

	return nil
}

func writeYAML(summary *vcfstats.Summary, w io.Writer) error {
	enc := yaml.NewEncoder(w)

	if err := enc.Encode(summary); err != nil {
		enc.Close()

		return fmt.Errorf("encode summary yaml: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush summary yaml: %w", err)
	}

	return nil
}

func (r Renderer) writeTables(summary *vcfstats.Summary, w io.Writer) {
	heading := color.New(color.FgCyan, color.Bold)
	if r.NoColor {
		heading.DisableColor()
	}

	for i, set := range summary.Sets {
		if i > 0 {
			fmt.Fprintln(w)
		}

		heading.Fprintf(w, "set %s (%s)\n", set.ID, strings.Join(set.Files, ", "))

		if len(set.Counts) > 0 {
			fmt.Fprintln(w, countsTable(set.Counts))
		}

		if set.TsTv != 0 || set.TsTv1stAlt != 0 {
			fmt.Fprintf(w, "ts/tv: %.2f (1st ALT %.2f)\n", set.TsTv, set.TsTv1stAlt)
		}

		if len(set.Depth) > 0 {
			fmt.Fprintf(w, "depth: %s\n", depthLine(set.Depth))
		}

		if len(set.Substitutions) > 0 {
			fmt.Fprintln(w, substitutionsTable(set.Substitutions))
		}

		if len(set.AlleleFreq) > 0 {
			fmt.Fprintln(w, alleleFreqTable(set.AlleleFreq))
		}
	}
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateHeader = false

	return tbl
}

func countsTable(counts []vcfstats.NamedCount) string {
	tbl := newTable()

	for _, c := range counts {
		tbl.AppendRow(table.Row{c.Name, formatCount(c.Value)})
	}

	return tbl.Render()
}

func substitutionsTable(subs []vcfstats.SubstitutionCount) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"substitution", "count"})

	for _, s := range subs {
		tbl.AppendRow(table.Row{s.Type, formatCount(s.Count)})
	}

	return tbl.Render()
}

func alleleFreqTable(bins []vcfstats.AlleleFreqBin) string {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"allele freq", "SNPs", "indels"})

	for _, bin := range bins {
		tbl.AppendRow(table.Row{bin.Frequency, formatCount(bin.SNPs), formatCount(bin.Indels)})
	}

	return tbl.Render()
}

func depthLine(depth []vcfstats.DepthPercentile) string {
	parts := make([]string, 0, len(depth))

	for _, d := range depth {
		parts = append(parts, fmt.Sprintf("p%d=%s", d.Percentile, d.Bin))
	}

	return strings.Join(parts, "  ")
}

// formatCount renders counts with thousands separators, keeping fractional
// values as they are.
func formatCount(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < math.MaxInt64 {
		return humanize.Comma(int64(v))
	}

	return humanize.Commaf(v)
}
