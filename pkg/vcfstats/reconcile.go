package vcfstats

import (
	"slices"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// wildcard stands in for the differing span when two filenames generalize
// into one pattern.
const wildcard = "*"

// ReconcileNames generalizes two filenames merged under one set. Identical
// names pass through unchanged; otherwise the longest common prefix and
// suffix, clamped so they cannot overlap, surround a single wildcard. The
// result is a display pattern, never reopened as a path.
func ReconcileNames(a, b string) string {
	if a == b {
		return a
	}

	dmp := diffmatchpatch.New()
	prefix := dmp.DiffCommonPrefix(a, b)
	suffix := dmp.DiffCommonSuffix(a, b)

	ra := []rune(a)
	rb := []rune(b)

	if limit := min(len(ra), len(rb)) - prefix; suffix > limit {
		suffix = limit
	}

	return string(ra[:prefix]) + wildcard + string(ra[len(ra)-suffix:])
}

// Provenance is a multiset of the original filenames folded into one set of
// a merged report. The reconciled patterns in the ID section lose the exact
// names; provenance keeps them.
type Provenance struct {
	names  []string
	counts map[string]int
}

// NewProvenance returns an empty multiset.
func NewProvenance() *Provenance {
	return &Provenance{counts: map[string]int{}}
}

// Add records one contribution of name.
func (p *Provenance) Add(name string) {
	if _, ok := p.counts[name]; !ok {
		p.names = append(p.names, name)
	}

	p.counts[name]++
}

// Count returns how many times name contributed.
func (p *Provenance) Count(name string) int {
	return p.counts[name]
}

// Names returns the distinct names in first-seen order.
func (p *Provenance) Names() []string {
	return slices.Clone(p.names)
}

// Total returns the number of contributions across all names.
func (p *Provenance) Total() int {
	var total int

	for _, n := range p.counts {
		total += n
	}

	return total
}
