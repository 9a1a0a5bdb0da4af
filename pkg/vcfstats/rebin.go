package vcfstats

// Rebin coalesces records along the numeric key in column keyCol into bins
// of the given width: records fold into the open bin while their key stays
// within width of the bin's first key. Each bin keeps its first record's
// key as the label; other columns are summed, except avgCols, which are
// divided by the bin's record count on flush. A width of zero or less, or a
// width no record pair falls inside, returns the records unchanged (as
// copies), byte for byte.
func Rebin(recs []Record, keyCol int, width float64, avgCols ...int) []Record {
	out := make([]Record, 0, len(recs))
	if width <= 0 {
		return append(out, cloneRecords(recs)...)
	}

	avg := columnSet(avgCols)

	var (
		bin    Record
		start  float64
		folded int
	)

	flush := func() {
		if bin == nil {
			return
		}

		for i := range bin {
			if avg[i] && i != keyCol && folded > 1 {
				bin.SetNum(i, bin.Num(i)/float64(folded))
			}
		}

		out = append(out, bin)
		bin = nil
	}

	for _, rec := range recs {
		key := rec.Num(keyCol)

		if bin == nil || key-start >= width {
			flush()

			bin = rec.Clone()
			start = key
			folded = 1

			continue
		}

		bin.grow(len(rec))

		for i := range rec {
			if i == keyCol {
				continue
			}

			bin.SetNum(i, bin.Num(i)+rec.Num(i))
		}

		folded++
	}

	flush()

	return out
}
