package vcfstats

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Scanner sizing for report lines. Per-sample sections can carry long rows
// when cohorts are large.
const (
	scanBufSize = 64 * 1024
	maxLineSize = 4 * 1024 * 1024
)

// producerPattern matches the signature line every stats report opens with,
// regardless of the path the producer was invoked under.
var producerPattern = regexp.MustCompile(`^# This file was produced by \S*(bcftools stats|vcfcheck)`)

// defPattern captures the section id of a column-definition comment such as
// "# SN\t[2]id\t[3]key\t[4]value".
var defPattern = regexp.MustCompile(`^# (\S+)\t`)

// Parse reads one stats report. The name is attached to the result and to
// errors; it is usually the input path. The first line must carry the
// producer signature, everything after it is section data: comments
// contribute their column definitions, data lines land in their section
// keyed by the set id in the second column.
func Parse(r io.Reader, name string) (*StatsFile, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, scanBufSize), maxLineSize)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		return nil, fmt.Errorf("%s: %w", name, ErrEmptyInput)
	}

	signature := strings.TrimRight(sc.Text(), "\r")
	if !producerPattern.MatchString(signature) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotStatsFile)
	}

	file := &StatsFile{Name: name, Signature: signature, Table: NewSectionTable()}

	for sc.Scan() {
		parseLine(file.Table, strings.TrimRight(sc.Text(), "\r"))
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	return file, nil
}

// parseLine routes one report line into the table. Lines too short to carry
// a set id are dropped rather than rejected; stats reports accumulate
// oddities across producer versions.
func parseLine(table *SectionTable, line string) {
	if line == "" {
		return
	}

	if strings.HasPrefix(line, "#") {
		if m := defPattern.FindStringSubmatch(line); m != nil {
			table.setDef(m[1], line)
		}

		return
	}

	items := strings.Split(line, "\t")
	if len(items) < 2 {
		return
	}

	if items[0] == SectionSN {
		parseScalar(table, items)

		return
	}

	table.section(items[0]).appendRecord(items[1], Record(items[2:]))
}

// parseScalar stores one SN line: set id, scalar name, value. A missing
// value column reads as zero.
func parseScalar(table *SectionTable, items []string) {
	if len(items) < 3 {
		return
	}

	value := "0"
	if len(items) > 3 {
		value = items[3]
	}

	table.section(SectionSN).setScalar(items[1], items[2], value)
}
