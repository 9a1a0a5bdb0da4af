package vcfstats

import "slices"

// MergeKeyed folds src into dst, keeping dst ordered by ord over the key in
// field 0. Key matches are summed field by field after the key; misses are
// inserted as copies at their sorted position. The returned slice replaces
// dst. Source records are not modified.
func MergeKeyed(dst, src []Record, ord KeyOrder) []Record {
	for _, rec := range src {
		if len(rec) == 0 {
			continue
		}

		pos, found := slices.BinarySearchFunc(dst, rec, func(d, s Record) int {
			return ord.Compare(d.Key(), s.Key())
		})

		if found {
			target := &dst[pos]
			addFields(target, rec, 1)
		} else {
			dst = slices.Insert(dst, pos, rec.Clone())
		}
	}

	return dst
}

// addFields adds src's fields into dst starting at column from, growing dst
// when src carries more columns.
func addFields(dst *Record, src Record, from int) {
	dst.grow(len(src))

	for i := from; i < len(src); i++ {
		dst.SetNum(i, dst.Num(i)+src.Num(i))
	}
}
