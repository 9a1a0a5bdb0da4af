package vcfstats

import (
	"cmp"
	"strconv"
	"strings"
)

const digits = "0123456789"

// BinKey is a section sub-key or record key split into a non-numeric prefix
// and a numeric value, so that bin labels such as "<3", "38.5" and ">500"
// sort by magnitude instead of by string.
type BinKey struct {
	Prefix string
	Value  float64
}

// Bound marks keys that name an open-ended bin rather than an exact value.
type Bound uint8

const (
	BoundExact Bound = iota
	BoundBelow       // "<N", everything under N
	BoundAbove       // ">N", everything over N
)

// ParseBinKey splits raw into its prefix and numeric value. Keys that parse
// as a number in full, including negative ones, carry an empty prefix. Keys
// with no digits at all keep the whole string as prefix and read as zero.
func ParseBinKey(raw string) BinKey {
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return BinKey{Value: v}
	}

	i := strings.IndexAny(raw, digits)
	if i < 0 {
		return BinKey{Prefix: raw}
	}

	start := i
	for start > 0 && isNumLeadByte(raw[start-1]) {
		start--
	}

	return BinKey{Prefix: raw[:start], Value: parseLeadingNum(raw[start:])}
}

// Compare orders keys numerically first and breaks ties on the lexical
// prefix, so "<30" sorts between 20 and 31 and before ">30".
func (k BinKey) Compare(o BinKey) int {
	if c := cmp.Compare(k.Value, o.Value); c != 0 {
		return c
	}

	return strings.Compare(k.Prefix, o.Prefix)
}

// Bound reports whether the key names an open-ended bin.
func (k BinKey) Bound() Bound {
	switch strings.TrimSpace(k.Prefix) {
	case "<":
		return BoundBelow
	case ">":
		return BoundAbove
	}

	return BoundExact
}

// KeyOrder selects the comparator that keeps a keyed section's records
// ordered.
type KeyOrder uint8

const (
	// OrderLex compares keys as plain strings (substitution types).
	OrderLex KeyOrder = iota

	// OrderNumeric compares keys as numbers, reading unparseable keys as
	// zero (allele frequencies, indel lengths).
	OrderNumeric

	// OrderBinKey compares prefixed bin labels numerically with a lexical
	// prefix tie-break (depth bins such as "<3" and ">500").
	OrderBinKey
)

// Compare orders two raw keys under the selected comparator.
func (o KeyOrder) Compare(a, b string) int {
	switch o {
	case OrderNumeric:
		return cmp.Compare(parseNum(a), parseNum(b))
	case OrderBinKey:
		return ParseBinKey(a).Compare(ParseBinKey(b))
	default:
		return strings.Compare(a, b)
	}
}

// isNumLeadByte reports bytes that can open a numeric literal besides a
// digit.
func isNumLeadByte(b byte) bool {
	return b == '-' || b == '+' || b == '.'
}

// parseLeadingNum parses the longest numeric run at the start of s, so range
// labels such as "500-599" read as 500. Returns 0 when no prefix parses.
func parseLeadingNum(s string) float64 {
	for end := len(s); end > 0; end-- {
		if v, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return v
		}
	}

	return 0
}
