package vcfstats

// Section ids emitted by bcftools stats and its vcfcheck predecessor.
const (
	SectionSN    = "SN"    // summary numbers
	SectionID    = "ID"    // input filenames per set
	SectionTSTV  = "TSTV"  // transition/transversion counts
	SectionSiS   = "SiS"   // singleton stats by allele frequency
	SectionAF    = "AF"    // stats by non-reference allele frequency
	SectionQUAL  = "QUAL"  // stats by quality
	SectionIDD   = "IDD"   // indel distribution by length
	SectionST    = "ST"    // substitution type counts
	SectionDP    = "DP"    // depth distribution
	SectionGCsAF = "GCsAF" // genotype concordance by allele frequency (SNPs)
	SectionGCiAF = "GCiAF" // genotype concordance by allele frequency (indels)
	SectionNRDs  = "NRDs"  // non-reference discordance rates (SNPs)
	SectionNRDi  = "NRDi"  // non-reference discordance rates (indels)
	SectionGCsS  = "GCsS"  // genotype concordance by sample (SNPs)
	SectionGCiS  = "GCiS"  // genotype concordance by sample (indels)
	SectionPSC   = "PSC"   // per-sample counts
	SectionPSI   = "PSI"   // per-sample indel counts
	SectionFS    = "FS"    // indel frameshift counts
	SectionICS   = "ICS"   // indel context summary
	SectionICL   = "ICL"   // indel context by repeat length
	SectionDBG   = "DBG"   // debugging output, never merged
)

// Fixed decimal places used when derived columns are recomputed.
const (
	ratioPrecision   = 2
	percentPrecision = 1
)

// TSTV columns: ts, tv, ts/tv, then the same restricted to the first ALT
// allele.
const (
	tstvColTs       = 0
	tstvColTv       = 1
	tstvColRatio    = 2
	tstvColTs1st    = 3
	tstvColTv1st    = 4
	tstvColRatio1st = 5
)

// AF columns (shared by SiS): frequency bin, SNP count, transitions,
// transversions, indel count.
const (
	afColFreq   = 0
	afColSNPs   = 1
	afColIndels = 4
)

// ST columns: substitution type, count.
const (
	stColType  = 0
	stColCount = 1
)

// DP columns: depth bin, genotype count and percentage, site count and
// percentage. Early producers dropped the site columns, so rows are padded
// to the full width before merging.
const (
	dpColBin       = 0
	dpColGTs       = 1
	dpColGTsFrac   = 2
	dpColSites     = 3
	dpColSitesFrac = 4
	dpFieldCount   = 5
)

// GCsAF / GCiAF columns: the dosage r-squared and the genotype count that
// weights it across inputs.
const (
	gcafColRSquared  = 7
	gcafColGenotypes = 8
)

// GCsS / GCiS columns: sample name, then the non-reference discordance rate
// ahead of the raw match/mismatch counts.
const gcssColDiscordance = 1

// PSC columns: sample name, genotype and variant counts, with the average
// depth at column 7.
const pscColAvgDepth = 7

// PSI columns: sample name, in-frame, out-of-frame and not-applicable indel
// counts, then the out/(in+out) ratio.
const (
	psiColInFrame  = 1
	psiColOutFrame = 2
	psiColRatio    = 4
)

// FS columns: in-frame, out-of-frame, not-applicable, out/(in+out) ratio,
// then the same four restricted to the first ALT allele.
const (
	fsColInFrame     = 0
	fsColOutFrame    = 1
	fsColNA          = 2
	fsColRatio       = 3
	fsColInFrame1st  = 4
	fsColOutFrame1st = 5
	fsColNA1st       = 6
	fsColRatio1st    = 7
)

// ICS columns: repeat-consistent, repeat-inconsistent, not-applicable,
// c/(c+i) ratio.
const (
	icsColConsistent   = 0
	icsColInconsistent = 1
	icsColNA           = 2
	icsColRatio        = 3
)

// ICL columns: repeat length, consistent and inconsistent deletions,
// consistent and inconsistent insertions, c/(c+i) ratio.
const (
	iclColLength = 0
	iclColDelC   = 1
	iclColDelI   = 2
	iclColInsC   = 3
	iclColInsI   = 4
	iclColRatio  = 5
)

// strategy identifies how one section kind folds across inputs.
type strategy uint8

const (
	// strategyUnion merges keyed records ordered by a comparator, summing
	// exact key matches and inserting misses at their sorted position.
	strategyUnion strategy = iota

	// strategyScalar adds named summary numbers.
	strategyScalar

	// strategyIdentity reconciles input filenames into glob-like patterns.
	strategyIdentity

	// strategyElementwise pairs records by position and folds them column
	// by column.
	strategyElementwise

	// strategySamples matches records on the sample name and requires every
	// source sample to exist in the destination.
	strategySamples

	// strategySkip leaves the destination untouched.
	strategySkip
)

// ratioRule recomputes a derived column as the quotient of summed component
// columns. A zero denominator yields 0.
type ratioRule struct {
	target int
	num    []int
	den    []int
}

// percentRule recomputes a percentage column against the section-wide total
// of its source column.
type percentRule struct {
	target int
	source int
}

// weightPair scales a value column by a weight column before a union and
// divides it back out afterwards, so per-file averages recombine weighted by
// their support.
type weightPair struct {
	value  int
	weight int
}

// sectionRule describes how one section kind is merged. Column indexes refer
// to record fields; for keyed strategies field 0 is the key.
type sectionRule struct {
	strategy strategy
	order    KeyOrder
	padTo    int
	sumCols  []int
	avgAll   bool
	avgCols  []int
	weights  []weightPair
	ratios   []ratioRule
	percents []percentRule
}

// defaultRule covers section kinds with no explicit entry, QUAL and any
// additions from newer producers: a key-ordered union under the prefix-aware
// comparator.
var defaultRule = sectionRule{strategy: strategyUnion, order: OrderBinKey}

// sectionRules routes every known section kind to its combination rule.
var sectionRules = map[string]sectionRule{
	SectionSN: {strategy: strategyScalar},
	SectionID: {strategy: strategyIdentity},

	SectionTSTV: {
		strategy: strategyElementwise,
		sumCols:  []int{tstvColTs, tstvColTv, tstvColTs1st, tstvColTv1st},
		ratios: []ratioRule{
			{target: tstvColRatio, num: []int{tstvColTs}, den: []int{tstvColTv}},
			{target: tstvColRatio1st, num: []int{tstvColTs1st}, den: []int{tstvColTv1st}},
		},
	},

	SectionSiS: {strategy: strategyUnion, order: OrderNumeric},
	SectionAF:  {strategy: strategyUnion, order: OrderNumeric},
	SectionIDD: {strategy: strategyUnion, order: OrderNumeric},
	SectionST:  {strategy: strategyUnion, order: OrderLex},

	SectionDP: {
		strategy: strategyUnion,
		order:    OrderBinKey,
		padTo:    dpFieldCount,
		percents: []percentRule{
			{target: dpColGTsFrac, source: dpColGTs},
			{target: dpColSitesFrac, source: dpColSites},
		},
	},

	SectionGCsAF: {
		strategy: strategyUnion,
		order:    OrderNumeric,
		weights:  []weightPair{{value: gcafColRSquared, weight: gcafColGenotypes}},
	},
	SectionGCiAF: {
		strategy: strategyUnion,
		order:    OrderNumeric,
		weights:  []weightPair{{value: gcafColRSquared, weight: gcafColGenotypes}},
	},

	SectionNRDs: {strategy: strategyElementwise, avgAll: true},
	SectionNRDi: {strategy: strategyElementwise, avgAll: true},

	SectionGCsS: {strategy: strategySamples, avgCols: []int{gcssColDiscordance}},
	SectionGCiS: {strategy: strategySamples, avgCols: []int{gcssColDiscordance}},
	SectionPSC:  {strategy: strategySamples, avgCols: []int{pscColAvgDepth}},

	SectionPSI: {
		strategy: strategySamples,
		ratios: []ratioRule{
			{target: psiColRatio, num: []int{psiColOutFrame}, den: []int{psiColInFrame, psiColOutFrame}},
		},
	},

	SectionFS: {
		strategy: strategyElementwise,
		sumCols: []int{
			fsColInFrame, fsColOutFrame, fsColNA,
			fsColInFrame1st, fsColOutFrame1st, fsColNA1st,
		},
		ratios: []ratioRule{
			{target: fsColRatio, num: []int{fsColOutFrame}, den: []int{fsColInFrame, fsColOutFrame}},
			{target: fsColRatio1st, num: []int{fsColOutFrame1st}, den: []int{fsColInFrame1st, fsColOutFrame1st}},
		},
	},

	SectionICS: {
		strategy: strategyElementwise,
		sumCols:  []int{icsColConsistent, icsColInconsistent, icsColNA},
		ratios: []ratioRule{
			{target: icsColRatio, num: []int{icsColConsistent}, den: []int{icsColConsistent, icsColInconsistent}},
		},
	},

	SectionICL: {
		strategy: strategyElementwise,
		sumCols:  []int{iclColDelC, iclColDelI, iclColInsC, iclColInsI},
		ratios: []ratioRule{
			{
				target: iclColRatio,
				num:    []int{iclColDelC, iclColInsC},
				den:    []int{iclColDelC, iclColDelI, iclColInsC, iclColInsI},
			},
		},
	},

	SectionDBG: {strategy: strategySkip},
}

// ruleFor returns the combination rule for a section id, falling back to the
// key-ordered union for unknown kinds.
func ruleFor(id string) sectionRule {
	if rule, ok := sectionRules[id]; ok {
		return rule
	}

	return defaultRule
}
