package vcfstats

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Numeric rendering limits. Values that are integral and below maxExactInt
// print without a decimal point; everything else keeps numPrecision
// significant digits, enough to round-trip a float64 through its decimal
// form.
const (
	maxExactInt  = 1e15
	numPrecision = 15
)

// Record is one tab-separated data row inside a section, with the section id
// and sub-key already stripped. Fields stay raw strings so values the merge
// never touches survive byte for byte. Numeric access is permissive: absent
// or malformed fields read as zero.
type Record []string

// Key returns the record's leading field, the key column of keyed sections.
func (r Record) Key() string {
	if len(r) == 0 {
		return ""
	}

	return r[0]
}

// Num returns field i as a float64, or 0 when the field is absent or not a
// number.
func (r Record) Num(i int) float64 {
	if i < 0 || i >= len(r) {
		return 0
	}

	return parseNum(r[i])
}

// SetNum stores v into field i in canonical numeric form. The record grows
// with zero fields when i is past its end.
func (r *Record) SetNum(i int, v float64) {
	r.grow(i + 1)
	(*r)[i] = formatNum(v)
}

// SetFixed stores v into field i with a fixed number of decimal places, the
// form used by recomputed ratio and percentage columns.
func (r *Record) SetFixed(i int, v float64, prec int) {
	r.grow(i + 1)
	(*r)[i] = strconv.FormatFloat(v, 'f', prec, 64)
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	return slices.Clone(r)
}

// grow zero-fills the record up to n fields.
func (r *Record) grow(n int) {
	for len(*r) < n {
		*r = append(*r, "0")
	}
}

// padRecords zero-fills every record in recs up to n fields. Older producer
// versions emitted short rows for some sections; padding lets positional
// rules address the full layout.
func padRecords(recs []Record, n int) {
	if n <= 0 {
		return
	}

	for i := range recs {
		recs[i].grow(n)
	}
}

// cloneRecords deep-copies a record list.
func cloneRecords(recs []Record) []Record {
	out := make([]Record, len(recs))

	for i, rec := range recs {
		out[i] = rec.Clone()
	}

	return out
}

// parseNum converts a raw field to float64, treating anything unparseable as
// zero.
func parseNum(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}

	return v
}

// formatNum renders a float64 the way the reports themselves do: integral
// values print bare, fractional ones keep full precision.
func formatNum(v float64) string {
	if v == 0 {
		return "0"
	}

	if v == math.Trunc(v) && math.Abs(v) < maxExactInt {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	return strconv.FormatFloat(v, 'g', numPrecision, 64)
}

// runningAvg folds next into a running mean that currently covers n inputs.
func runningAvg(old, next float64, n int) float64 {
	return (float64(n)*old + next) / float64(n+1)
}

// sumColumns totals the listed record fields.
func sumColumns(rec Record, cols []int) float64 {
	var total float64

	for _, c := range cols {
		total += rec.Num(c)
	}

	return total
}

// columnSet turns a column list into a membership set.
func columnSet(cols []int) map[int]bool {
	set := make(map[int]bool, len(cols))

	for _, c := range cols {
		set[c] = true
	}

	return set
}
