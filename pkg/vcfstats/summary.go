package vcfstats

import (
	"cmp"
	"slices"
	"strings"
)

// Default summary extraction settings.
const (
	DefaultAFBinSize        = 0.05
	DefaultTopSubstitutions = 6
)

// DefaultPercentiles are the depth percentiles reported by default.
var DefaultPercentiles = []int{25, 50, 75, 95}

// SummaryOptions controls how much detail BuildSummary extracts.
type SummaryOptions struct {
	AFBinSize        float64
	Percentiles      []int
	TopSubstitutions int
}

// DefaultSummaryOptions returns the settings the summary command starts
// from.
func DefaultSummaryOptions() SummaryOptions {
	return SummaryOptions{
		AFBinSize:        DefaultAFBinSize,
		Percentiles:      slices.Clone(DefaultPercentiles),
		TopSubstitutions: DefaultTopSubstitutions,
	}
}

// Summary is a digest of one report, one entry per set.
type Summary struct {
	Sets []SetSummary `json:"sets" yaml:"sets"`
}

// SetSummary digests the sections of a single set.
type SetSummary struct {
	ID            string              `json:"id"                      yaml:"id"`
	Files         []string            `json:"files,omitempty"         yaml:"files,omitempty"`
	Counts        []NamedCount        `json:"counts,omitempty"        yaml:"counts,omitempty"`
	TsTv          float64             `json:"ts_tv,omitempty"         yaml:"ts_tv,omitempty"`
	TsTv1stAlt    float64             `json:"ts_tv_1st_alt,omitempty" yaml:"ts_tv_1st_alt,omitempty"`
	Depth         []DepthPercentile   `json:"depth,omitempty"         yaml:"depth,omitempty"`
	Substitutions []SubstitutionCount `json:"substitutions,omitempty" yaml:"substitutions,omitempty"`
	AlleleFreq    []AlleleFreqBin     `json:"allele_freq,omitempty"   yaml:"allele_freq,omitempty"`
}

// NamedCount is one SN summary number.
type NamedCount struct {
	Name  string  `json:"name"  yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// DepthPercentile maps one percentile to its depth bin label.
type DepthPercentile struct {
	Percentile int    `json:"percentile" yaml:"percentile"`
	Bin        string `json:"bin"        yaml:"bin"`
}

// SubstitutionCount is one substitution type with its count.
type SubstitutionCount struct {
	Type  string  `json:"type"  yaml:"type"`
	Count float64 `json:"count" yaml:"count"`
}

// AlleleFreqBin is one rebinned allele frequency row.
type AlleleFreqBin struct {
	Frequency string  `json:"frequency" yaml:"frequency"`
	SNPs      float64 `json:"snps"      yaml:"snps"`
	Indels    float64 `json:"indels"    yaml:"indels"`
}

// BuildSummary extracts a per-set digest from a section table: headline
// counts, ts/tv ratios, depth percentiles over the DP histogram, the most
// common substitutions and the allele frequency spectrum rebinned to the
// requested width. Sections the table lacks simply leave their part empty.
func BuildSummary(table *SectionTable, opts SummaryOptions) *Summary {
	summary := &Summary{}

	for _, key := range setKeys(table) {
		summary.Sets = append(summary.Sets, buildSet(table, key, opts))
	}

	return summary
}

// setKeys returns the set ids, preferring the ID section's order and
// falling back to any section that has keys.
func setKeys(table *SectionTable) []string {
	for _, id := range []string{SectionID, SectionSN} {
		if sec := table.Section(id); sec != nil && len(sec.Keys()) > 0 {
			return sec.Keys()
		}
	}

	for _, sec := range table.Sections() {
		if len(sec.Keys()) > 0 {
			return sec.Keys()
		}
	}

	return nil
}

func buildSet(table *SectionTable, key string, opts SummaryOptions) SetSummary {
	set := SetSummary{ID: key}

	if ids := table.Section(SectionID); ids != nil {
		for _, rec := range ids.Records(key) {
			set.Files = append(set.Files, rec...)
		}
	}

	if sn := table.Section(SectionSN); sn != nil {
		if scalars := sn.Scalars(key); scalars != nil {
			for _, name := range scalars.Names() {
				set.Counts = append(set.Counts, NamedCount{
					Name:  strings.TrimSuffix(name, ":"),
					Value: scalars.Num(name),
				})
			}
		}
	}

	if tstv := table.Section(SectionTSTV); tstv != nil {
		if recs := tstv.Records(key); len(recs) > 0 {
			set.TsTv = recs[0].Num(tstvColRatio)
			set.TsTv1stAlt = recs[0].Num(tstvColRatio1st)
		}
	}

	set.Depth = depthPercentiles(table, key, opts.Percentiles)
	set.Substitutions = topSubstitutions(table, key, opts.TopSubstitutions)
	set.AlleleFreq = alleleFreqBins(table, key, opts.AFBinSize)

	return set
}

// depthPercentiles resolves each requested percentile to the depth bin
// holding it, using genotype counts as weights.
func depthPercentiles(table *SectionTable, key string, percentiles []int) []DepthPercentile {
	dp := table.Section(SectionDP)
	if dp == nil {
		return nil
	}

	recs := dp.Records(key)
	if len(recs) == 0 {
		return nil
	}

	counts := make([]float64, len(recs))
	for i, rec := range recs {
		counts[i] = rec.Num(dpColGTs)
	}

	out := make([]DepthPercentile, 0, len(percentiles))

	for _, p := range percentiles {
		idx := WeightedPercentile(float64(p), counts)
		out = append(out, DepthPercentile{Percentile: p, Bin: recs[idx].Key()})
	}

	return out
}

// topSubstitutions returns the most frequent substitution types, ties kept
// in their original A>C .. T>G order.
func topSubstitutions(table *SectionTable, key string, top int) []SubstitutionCount {
	st := table.Section(SectionST)
	if st == nil || top <= 0 {
		return nil
	}

	recs := st.Records(key)

	subs := make([]SubstitutionCount, 0, len(recs))
	for _, rec := range recs {
		subs = append(subs, SubstitutionCount{Type: rec.Key(), Count: rec.Num(stColCount)})
	}

	slices.SortStableFunc(subs, func(a, b SubstitutionCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	if len(subs) > top {
		subs = subs[:top]
	}

	return subs
}

func alleleFreqBins(table *SectionTable, key string, width float64) []AlleleFreqBin {
	af := table.Section(SectionAF)
	if af == nil {
		return nil
	}

	recs := Rebin(af.Records(key), afColFreq, width)

	out := make([]AlleleFreqBin, 0, len(recs))
	for _, rec := range recs {
		out = append(out, AlleleFreqBin{
			Frequency: rec.Key(),
			SNPs:      rec.Num(afColSNPs),
			Indels:    rec.Num(afColIndels),
		})
	}

	return out
}
