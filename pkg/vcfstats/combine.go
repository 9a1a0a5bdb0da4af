package vcfstats

import (
	"fmt"
	"log/slog"
	"strings"
)

const percentScale = 100

// snKeepPrefix marks SN entries that describe the cohort rather than count
// anything. The running report's value wins for these.
const snKeepPrefix = "number of samples"

// Combiner folds parsed stats files into one CombinedReport. It owns all
// mutable merge state, including the input count that weights running
// averages; callers thread it through explicitly instead of sharing
// anything global.
type Combiner struct {
	report *CombinedReport
	merged int
	warned map[string]bool
	logger *slog.Logger
	strict bool
}

// Option configures a Combiner.
type Option func(*Combiner)

// WithLogger routes schema warnings to l instead of the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Combiner) {
		c.logger = l
	}
}

// WithStrictSchema makes column-definition mismatches fail the merge
// instead of warning once per section.
func WithStrictSchema(strict bool) Option {
	return func(c *Combiner) {
		c.strict = strict
	}
}

// NewCombiner starts a report as a deep copy of the first input. The input
// itself stays untouched, as do all later inputs passed to Add.
func NewCombiner(first *StatsFile, opts ...Option) *Combiner {
	c := &Combiner{
		report: &CombinedReport{
			Signature:  first.Signature,
			Table:      first.Table.Clone(),
			Provenance: map[string]*Provenance{},
		},
		merged: 1,
		warned: map[string]bool{},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.seedProvenance(first)

	return c
}

// Combine folds files into one report in input order. A convenience over
// NewCombiner and Add.
func Combine(files []*StatsFile, opts ...Option) (*CombinedReport, error) {
	if len(files) == 0 {
		return nil, ErrNoInputs
	}

	c := NewCombiner(files[0], opts...)

	for _, f := range files[1:] {
		if err := c.Add(f); err != nil {
			return nil, err
		}
	}

	return c.Report(), nil
}

// Add folds src into the running report. Sections fold independently, each
// under its own rule. Per-sample sections validate all their samples before
// touching anything, so a failed Add leaves them as they were; sections
// merged earlier in the same call keep the fold.
func (c *Combiner) Add(src *StatsFile) error {
	for _, sec := range src.Table.Sections() {
		rule := ruleFor(sec.ID)
		if rule.strategy == strategySkip {
			continue
		}

		if err := c.checkSchema(sec.ID, src); err != nil {
			return err
		}

		if err := c.merge(sec, rule); err != nil {
			return fmt.Errorf("merge %s section %s: %w", src.Name, sec.ID, err)
		}
	}

	c.merged++

	return nil
}

// Merged returns the number of inputs folded so far.
func (c *Combiner) Merged() int {
	return c.merged
}

// Report returns the accumulated report.
func (c *Combiner) Report() *CombinedReport {
	return c.report
}

// checkSchema compares src's column-definition line for a section against
// the running report's. A definition the report lacks is adopted; a
// conflicting one warns once per section, or fails the merge in strict
// mode.
func (c *Combiner) checkSchema(id string, src *StatsFile) error {
	got := src.Table.Def(id)

	want := c.report.Table.Def(id)
	if want == "" {
		if got != "" {
			c.report.Table.setDef(id, got)
		}

		return nil
	}

	if got == want {
		return nil
	}

	if c.strict {
		return fmt.Errorf("section %s in %s: %w", id, src.Name, ErrSchemaMismatch)
	}

	if c.warned[id] {
		return nil
	}

	c.warned[id] = true
	c.report.Warnings = append(c.report.Warnings, SchemaMismatch{
		Section: id,
		File:    src.Name,
		Want:    want,
		Got:     got,
	})
	c.logger.Warn("section definition changed between inputs, merging by column position",
		"section", id,
		"file", src.Name)

	return nil
}

func (c *Combiner) merge(src *Section, rule sectionRule) error {
	switch rule.strategy {
	case strategyScalar:
		c.mergeScalars(src)
	case strategyIdentity:
		c.mergeIdentity(src)
	case strategyElementwise:
		c.mergeElementwise(src, rule)
	case strategySamples:
		return c.mergeSamples(src, rule)
	default:
		c.mergeUnion(src, rule)
	}

	return nil
}

// mergeScalars adds src's summary numbers into the report, creating names
// the report has not seen. Cohort descriptors are kept, not added: sample
// counts describe the same samples in every input.
func (c *Combiner) mergeScalars(src *Section) {
	dst := c.report.Table.section(SectionSN)

	for _, key := range src.Keys() {
		set := src.Scalars(key)
		target := dst.scalarSet(key)

		for _, name := range set.Names() {
			if strings.HasPrefix(name, snKeepPrefix) {
				continue
			}

			value, _ := set.Get(name)
			target.Add(name, parseNum(value))
		}
	}
}

// mergeIdentity reconciles input filenames position by position and records
// every original name in the per-set provenance.
func (c *Combiner) mergeIdentity(src *Section) {
	dst := c.report.Table.section(SectionID)

	for _, key := range src.Keys() {
		for i, rec := range src.Records(key) {
			c.recordProvenance(key, rec)

			recs := dst.groups[key]
			if i < len(recs) {
				reconcileFields(&recs[i], rec)

				continue
			}

			dst.appendRecord(key, rec.Clone())
		}
	}
}

// mergeUnion folds a keyed section: pad to the rule's width, scale weighted
// columns, union the records in key order, then undo the scaling and
// recompute derived columns against the merged totals. Source records are
// cloned first; the padding and scaling must not leak into the input.
func (c *Combiner) mergeUnion(src *Section, rule sectionRule) {
	dst := c.report.Table.section(src.ID)

	for _, key := range src.Keys() {
		srcRecs := cloneRecords(src.Records(key))
		padRecords(srcRecs, rule.padTo)
		scaleByWeights(srcRecs, rule.weights)

		dstRecs := dst.groups[key]
		padRecords(dstRecs, rule.padTo)
		scaleByWeights(dstRecs, rule.weights)

		merged := MergeKeyed(dstRecs, srcRecs, rule.order)

		unscaleByWeights(merged, rule.weights)
		recomputePercents(merged, rule.percents)
		recomputeRatios(merged, rule.ratios)

		dst.setRecords(key, merged)
	}
}

// mergeElementwise pairs records by position, folds the configured columns
// and appends surplus source records as copies.
func (c *Combiner) mergeElementwise(src *Section, rule sectionRule) {
	dst := c.report.Table.section(src.ID)

	for _, key := range src.Keys() {
		recs := dst.groups[key]

		for i, rec := range src.Records(key) {
			if i >= len(recs) {
				recs = append(recs, rec.Clone())

				continue
			}

			foldColumns(&recs[i], rec, rule, c.merged)
		}

		recomputeRatios(recs, rule.ratios)
		dst.setRecords(key, recs)
	}
}

// mergeSamples folds per-sample sections. All sets are validated before any
// of them is touched, so an unknown sample fails the merge with the report
// exactly as it was.
func (c *Combiner) mergeSamples(src *Section, rule sectionRule) error {
	dst := c.report.Table.Section(src.ID)

	for _, key := range src.Keys() {
		var dstRecs []Record
		if dst != nil {
			dstRecs = dst.Records(key)
		}

		if err := checkSamples(dstRecs, src.Records(key)); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
	}

	if dst == nil {
		return nil
	}

	for _, key := range src.Keys() {
		recs := dst.Records(key)
		applySamples(recs, src.Records(key), rule.avgCols, c.merged)
		recomputeRatios(recs, rule.ratios)
	}

	return nil
}

func (c *Combiner) seedProvenance(file *StatsFile) {
	ids := file.Table.Section(SectionID)
	if ids == nil {
		return
	}

	for _, key := range ids.Keys() {
		for _, rec := range ids.Records(key) {
			c.recordProvenance(key, rec)
		}
	}
}

func (c *Combiner) recordProvenance(key string, rec Record) {
	prov, ok := c.report.Provenance[key]
	if !ok {
		prov = NewProvenance()
		c.report.Provenance[key] = prov
	}

	for _, name := range rec {
		if name != "" {
			prov.Add(name)
		}
	}
}

// reconcileFields generalizes dst's filename fields with src's, position by
// position, carrying over any extra source fields.
func reconcileFields(dst *Record, src Record) {
	for i, name := range src {
		if i < len(*dst) {
			(*dst)[i] = ReconcileNames((*dst)[i], name)

			continue
		}

		*dst = append(*dst, name)
	}
}

// foldColumns folds src into dst under an elementwise rule: a running
// average over every column, or a sum over the listed ones.
func foldColumns(dst *Record, src Record, rule sectionRule, n int) {
	dst.grow(len(src))

	if rule.avgAll {
		for i := range src {
			dst.SetNum(i, runningAvg(dst.Num(i), src.Num(i), n))
		}

		return
	}

	for _, col := range rule.sumCols {
		if col >= len(src) {
			continue
		}

		dst.SetNum(col, dst.Num(col)+src.Num(col))
	}
}

// recomputeRatios rewrites derived quotient columns from their summed
// components. Records too short to hold the target column are left alone.
func recomputeRatios(recs []Record, rules []ratioRule) {
	for _, rule := range rules {
		for i := range recs {
			if rule.target >= len(recs[i]) {
				continue
			}

			den := sumColumns(recs[i], rule.den)

			ratio := 0.0
			if den != 0 {
				ratio = sumColumns(recs[i], rule.num) / den
			}

			recs[i].SetFixed(rule.target, ratio, ratioPrecision)
		}
	}
}

// recomputePercents rewrites percentage columns against the merged total of
// their source column. A zero total zeroes the percentages.
func recomputePercents(recs []Record, rules []percentRule) {
	for _, rule := range rules {
		var total float64

		for _, rec := range recs {
			total += rec.Num(rule.source)
		}

		for i := range recs {
			share := 0.0
			if total != 0 {
				share = percentScale * recs[i].Num(rule.source) / total
			}

			recs[i].SetFixed(rule.target, share, percentPrecision)
		}
	}
}

// scaleByWeights multiplies each weighted column by its weight so averages
// fold as weighted sums.
func scaleByWeights(recs []Record, pairs []weightPair) {
	for _, pair := range pairs {
		for i := range recs {
			recs[i].SetNum(pair.value, recs[i].Num(pair.value)*recs[i].Num(pair.weight))
		}
	}
}

// unscaleByWeights divides the weighted columns back out after the fold. A
// zero combined weight yields 0.
func unscaleByWeights(recs []Record, pairs []weightPair) {
	for _, pair := range pairs {
		for i := range recs {
			weight := recs[i].Num(pair.weight)

			value := 0.0
			if weight != 0 {
				value = recs[i].Num(pair.value) / weight
			}

			recs[i].SetNum(pair.value, value)
		}
	}
}
