// Package vcfstats parses the text reports produced by bcftools stats (and
// its vcfcheck predecessor), merges any number of them into one equivalent
// report, and extracts summaries from the result. Each section kind carries
// its own combination rule: plain counts add up, distributions merge as
// ordered unions, rates recombine as weighted or running averages, and
// derived ratio columns are recomputed from the merged totals.
package vcfstats

import "slices"

// ScalarSet is an insertion-ordered set of named summary numbers, the
// payload of the SN section.
type ScalarSet struct {
	names  []string
	values map[string]string
}

// NewScalarSet returns an empty scalar set.
func NewScalarSet() *ScalarSet {
	return &ScalarSet{values: map[string]string{}}
}

// Set stores a value under name, keeping the first-seen name order.
func (s *ScalarSet) Set(name, value string) {
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}

	s.values[name] = value
}

// Get returns the raw value stored under name.
func (s *ScalarSet) Get(name string) (string, bool) {
	v, ok := s.values[name]

	return v, ok
}

// Num returns the value under name as a number, or 0 when absent.
func (s *ScalarSet) Num(name string) float64 {
	return parseNum(s.values[name])
}

// Add folds delta into the value under name, creating it when absent.
func (s *ScalarSet) Add(name string, delta float64) {
	if _, ok := s.values[name]; !ok {
		s.Set(name, formatNum(delta))

		return
	}

	s.values[name] = formatNum(s.Num(name) + delta)
}

// Names returns the stored names in first-seen order.
func (s *ScalarSet) Names() []string {
	return s.names
}

// Len returns the number of stored scalars.
func (s *ScalarSet) Len() int {
	return len(s.names)
}

func (s *ScalarSet) clone() *ScalarSet {
	out := &ScalarSet{
		names:  slices.Clone(s.names),
		values: make(map[string]string, len(s.values)),
	}

	for name, v := range s.values {
		out.values[name] = v
	}

	return out
}

// Section holds one parsed section. The SN section carries named scalars
// per set; every other section carries record lists per set. Exactly one of
// the two payloads is populated, keyed by the set id from the second column
// of each data line.
type Section struct {
	ID string

	scalars map[string]*ScalarSet
	groups  map[string][]Record
	keys    []string
}

func newSection(id string) *Section {
	sec := &Section{ID: id}
	if id == SectionSN {
		sec.scalars = map[string]*ScalarSet{}
	} else {
		sec.groups = map[string][]Record{}
	}

	return sec
}

// IsScalar reports whether the section stores named scalars rather than
// record lists.
func (s *Section) IsScalar() bool {
	return s.scalars != nil
}

// Keys returns the section's set ids in first-seen order.
func (s *Section) Keys() []string {
	return s.keys
}

// Records returns the record list stored under key, nil when absent.
func (s *Section) Records(key string) []Record {
	return s.groups[key]
}

// Scalars returns the scalar set stored under key, nil when absent.
func (s *Section) Scalars(key string) *ScalarSet {
	return s.scalars[key]
}

func (s *Section) setScalar(key, name, value string) {
	set, ok := s.scalars[key]
	if !ok {
		set = NewScalarSet()
		s.scalars[key] = set
		s.keys = append(s.keys, key)
	}

	set.Set(name, value)
}

func (s *Section) scalarSet(key string) *ScalarSet {
	set, ok := s.scalars[key]
	if !ok {
		set = NewScalarSet()
		s.scalars[key] = set
		s.keys = append(s.keys, key)
	}

	return set
}

func (s *Section) appendRecord(key string, rec Record) {
	if _, ok := s.groups[key]; !ok {
		s.keys = append(s.keys, key)
	}

	s.groups[key] = append(s.groups[key], rec)
}

func (s *Section) setRecords(key string, recs []Record) {
	if _, ok := s.groups[key]; !ok {
		s.keys = append(s.keys, key)
	}

	s.groups[key] = recs
}

func (s *Section) clone() *Section {
	out := &Section{ID: s.ID, keys: slices.Clone(s.keys)}

	if s.scalars != nil {
		out.scalars = make(map[string]*ScalarSet, len(s.scalars))
		for key, set := range s.scalars {
			out.scalars[key] = set.clone()
		}
	}

	if s.groups != nil {
		out.groups = make(map[string][]Record, len(s.groups))
		for key, recs := range s.groups {
			out.groups[key] = cloneRecords(recs)
		}
	}

	return out
}

// SectionTable is an ordered collection of parsed sections plus the literal
// column-definition comment captured for each section id.
type SectionTable struct {
	sections map[string]*Section
	order    []string
	defs     map[string]string
}

// NewSectionTable returns an empty table.
func NewSectionTable() *SectionTable {
	return &SectionTable{
		sections: map[string]*Section{},
		defs:     map[string]string{},
	}
}

// Section returns the section stored under id, nil when absent.
func (t *SectionTable) Section(id string) *Section {
	return t.sections[id]
}

// Sections returns all sections in first-seen order.
func (t *SectionTable) Sections() []*Section {
	out := make([]*Section, 0, len(t.order))

	for _, id := range t.order {
		out = append(out, t.sections[id])
	}

	return out
}

// Len returns the number of sections.
func (t *SectionTable) Len() int {
	return len(t.order)
}

// Def returns the captured column-definition line for id, "" when none was
// seen.
func (t *SectionTable) Def(id string) string {
	return t.defs[id]
}

func (t *SectionTable) setDef(id, line string) {
	t.defs[id] = line
}

// section returns the section under id, creating it on first touch.
func (t *SectionTable) section(id string) *Section {
	sec, ok := t.sections[id]
	if !ok {
		sec = newSection(id)
		t.sections[id] = sec
		t.order = append(t.order, id)
	}

	return sec
}

// Clone deep-copies the table.
func (t *SectionTable) Clone() *SectionTable {
	out := &SectionTable{
		sections: make(map[string]*Section, len(t.sections)),
		order:    slices.Clone(t.order),
		defs:     make(map[string]string, len(t.defs)),
	}

	for id, sec := range t.sections {
		out.sections[id] = sec.clone()
	}

	for id, line := range t.defs {
		out.defs[id] = line
	}

	return out
}

// StatsFile is one parsed stats report: the literal producer line plus the
// section table. Parse is its only constructor. Merging never mutates a
// StatsFile; every combination rule works on the running report instead.
type StatsFile struct {
	Name      string
	Signature string
	Table     *SectionTable
}

// CombinedReport is the result of folding stats files together. It keeps
// the first input's producer line for serialization, a per-set provenance
// multiset of contributing filenames, and any schema mismatches observed
// along the way.
type CombinedReport struct {
	Signature  string
	Table      *SectionTable
	Provenance map[string]*Provenance
	Warnings   []SchemaMismatch
}

// SchemaMismatch records a section whose column-definition line differed
// between inputs. The merge proceeded on column positions regardless.
type SchemaMismatch struct {
	Section string
	File    string
	Want    string
	Got     string
}
