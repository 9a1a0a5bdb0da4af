package vcfstats

import "math"

const percentileScale = 100

// WeightedPercentile returns the index holding the p-th percentile of a
// frequency histogram, counts[i] being the number of occurrences of value
// i. The rank is the exact nearest rank floor(p*(N+1)/100) over the
// cumulative counts, with no interpolation; ranks falling before the first
// or past the last observation clamp to the smallest and largest occupied
// index. A histogram with no observations returns 0.
func WeightedPercentile(p float64, counts []float64) int {
	var total float64

	last := 0

	for i, c := range counts {
		total += c
		if c > 0 {
			last = i
		}
	}

	if total == 0 {
		return 0
	}

	rank := math.Floor(p * (total + 1) / percentileScale)
	if rank < 1 {
		rank = 1
	}

	var cum float64

	for i, c := range counts {
		cum += c
		if cum >= rank {
			return i
		}
	}

	return last
}
