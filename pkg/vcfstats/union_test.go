package vcfstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeKeyedSumsMatches(t *testing.T) {
	t.Parallel()

	dst := []Record{{"0.1", "10", "2"}, {"0.5", "20", "4"}}
	src := []Record{{"0.5", "5", "1"}}

	got := MergeKeyed(dst, src, OrderNumeric)

	assert.Equal(t, []Record{{"0.1", "10", "2"}, {"0.5", "25", "5"}}, got)
}

func TestMergeKeyedInsertsAtSortedPosition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ord  KeyOrder
		dst  []Record
		src  []Record
		want []string
	}{
		{
			name: "numeric_middle",
			ord:  OrderNumeric,
			dst:  []Record{{"0.0", "1"}, {"0.49", "1"}},
			src:  []Record{{"0.24", "1"}},
			want: []string{"0.0", "0.24", "0.49"},
		},
		{
			name: "negative_key_goes_first",
			ord:  OrderNumeric,
			dst:  []Record{{"-2", "4"}, {"1", "10"}},
			src:  []Record{{"-3", "2"}},
			want: []string{"-3", "-2", "1"},
		},
		{
			name: "lexical",
			ord:  OrderLex,
			dst:  []Record{{"A>C", "2"}, {"G>T", "4"}},
			src:  []Record{{"C>T", "6"}},
			want: []string{"A>C", "C>T", "G>T"},
		},
		{
			name: "depth_bins",
			ord:  OrderBinKey,
			dst:  []Record{{"<3", "0"}, {"10", "40"}, {"11", "60"}},
			src:  []Record{{">500", "40"}},
			want: []string{"<3", "10", "11", ">500"},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MergeKeyed(tt.dst, tt.src, tt.ord)

			var keys []string
			for _, rec := range got {
				keys = append(keys, rec.Key())
			}

			assert.Equal(t, tt.want, keys)
		})
	}
}

func TestMergeKeyedCardinality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dst  []Record
		src  []Record
		want int
	}{
		{
			name: "disjoint_keys_concatenate",
			dst:  []Record{{"1", "1"}, {"2", "1"}},
			src:  []Record{{"3", "1"}, {"4", "1"}},
			want: 4,
		},
		{
			name: "full_overlap_keeps_size",
			dst:  []Record{{"1", "1"}, {"2", "1"}},
			src:  []Record{{"1", "5"}, {"2", "5"}},
			want: 2,
		},
		{
			name: "partial_overlap_counts_collisions_once",
			dst:  []Record{{"1", "1"}, {"2", "1"}, {"3", "1"}},
			src:  []Record{{"2", "5"}, {"4", "5"}},
			want: 4,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Len(t, MergeKeyed(tt.dst, tt.src, OrderNumeric), tt.want)
		})
	}
}

func TestMergeKeyedInsertsCopies(t *testing.T) {
	t.Parallel()

	src := []Record{{"0.2", "7"}}
	got := MergeKeyed(nil, src, OrderNumeric)

	got[0][1] = "changed"

	assert.Equal(t, "7", src[0][1])
}

func TestMergeKeyedGrowsShortDestination(t *testing.T) {
	t.Parallel()

	dst := []Record{{"10", "5"}}
	src := []Record{{"10", "3", "8"}}

	got := MergeKeyed(dst, src, OrderBinKey)

	assert.Equal(t, []Record{{"10", "8", "8"}}, got)
}

func TestMergeKeyedSkipsEmptyRecords(t *testing.T) {
	t.Parallel()

	dst := []Record{{"1", "2"}}
	got := MergeKeyed(dst, []Record{{}}, OrderNumeric)

	assert.Equal(t, []Record{{"1", "2"}}, got)
}
