package vcfstats

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
)

// defaultSignature opens reports that were built in memory rather than
// merged from files, keeping the output acceptable to Parse.
const defaultSignature = "# This file was produced by bcftools stats and merged from multiple inputs."

// Write serializes the report in the producer's own line format, so the
// output parses back into an equivalent table. The first input's signature
// line opens the file, the ID section leads, SN follows, and the remaining
// sections keep their first-seen order, each under its captured
// column-definition line with sub-keys in bin order.
func Write(report *CombinedReport, w io.Writer) error {
	bw := bufio.NewWriter(w)

	signature := report.Signature
	if signature == "" {
		signature = defaultSignature
	}

	fmt.Fprintln(bw, signature)

	for _, sec := range orderedSections(report.Table) {
		if def := report.Table.Def(sec.ID); def != "" {
			fmt.Fprintln(bw, def)
		}

		writeSection(bw, sec)
	}

	return bw.Flush()
}

func orderedSections(table *SectionTable) []*Section {
	secs := table.Sections()

	slices.SortStableFunc(secs, func(a, b *Section) int {
		return sectionRank(a.ID) - sectionRank(b.ID)
	})

	return secs
}

// sectionRank pins ID and SN to the top; everything else keeps input order.
func sectionRank(id string) int {
	switch id {
	case SectionID:
		return 0
	case SectionSN:
		return 1
	default:
		return 2
	}
}

func writeSection(w io.Writer, sec *Section) {
	keys := slices.Clone(sec.Keys())
	slices.SortStableFunc(keys, OrderBinKey.Compare)

	for _, key := range keys {
		if sec.IsScalar() {
			writeScalars(w, sec, key)

			continue
		}

		for _, rec := range sec.Records(key) {
			if len(rec) == 0 {
				fmt.Fprintf(w, "%s\t%s\n", sec.ID, key)

				continue
			}

			fmt.Fprintf(w, "%s\t%s\t%s\n", sec.ID, key, strings.Join(rec, "\t"))
		}
	}
}

func writeScalars(w io.Writer, sec *Section, key string) {
	set := sec.Scalars(key)

	for _, name := range set.Names() {
		value, _ := set.Get(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", sec.ID, key, name, value)
	}
}
