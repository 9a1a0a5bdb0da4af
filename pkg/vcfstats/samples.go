package vcfstats

import "fmt"

// MergeSamples folds src into dst, matching records on the sample name in
// field 0. Destination samples keep their original order and no sample is
// ever inserted: a source sample missing from dst fails with
// ErrUnknownSample, and the check runs over all of src before anything is
// touched, so a failed merge leaves dst exactly as it was. Columns listed
// in avgCols fold as a running average weighted by n, the number of inputs
// already in dst; every other column is summed.
func MergeSamples(dst, src []Record, avgCols []int, n int) error {
	if err := checkSamples(dst, src); err != nil {
		return err
	}

	applySamples(dst, src, avgCols, n)

	return nil
}

// checkSamples verifies that every source sample exists in dst.
func checkSamples(dst, src []Record) error {
	names := make(map[string]bool, len(dst))

	for _, rec := range dst {
		names[rec.Key()] = true
	}

	for _, rec := range src {
		if !names[rec.Key()] {
			return fmt.Errorf("%w: %q", ErrUnknownSample, rec.Key())
		}
	}

	return nil
}

// applySamples folds src into dst in place. Callers must have run
// checkSamples first.
func applySamples(dst, src []Record, avgCols []int, n int) {
	index := make(map[string]int, len(dst))

	for i, rec := range dst {
		if _, ok := index[rec.Key()]; !ok {
			index[rec.Key()] = i
		}
	}

	avg := columnSet(avgCols)

	for _, rec := range src {
		pos, ok := index[rec.Key()]
		if !ok {
			continue
		}

		target := &dst[pos]
		target.grow(len(rec))

		for i := 1; i < len(rec); i++ {
			if avg[i] {
				target.SetNum(i, runningAvg(target.Num(i), rec.Num(i), n))
			} else {
				target.SetNum(i, target.Num(i)+rec.Num(i))
			}
		}
	}
}
