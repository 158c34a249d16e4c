package survey

import (
	"math"

	"github.com/asp-curriculum/surveyfig/pkg/errors"
)

// WeightedMidpointAverage returns the average of bucketed counts weighted
// by their representative midpoints: Σ(counts[i]*midpoints[i]) / sampleSize.
//
// counts and midpoints must have equal length and counts must be
// non-negative; violations return INVALID_INPUT. A non-positive sampleSize
// returns DIVISION_BY_ZERO; callers must guarantee a positive sample size.
func WeightedMidpointAverage(counts []int, midpoints []float64, sampleSize int) (float64, error) {
	if len(counts) != len(midpoints) {
		return 0, errors.New(errors.ErrCodeInvalidInput,
			"counts/midpoints length mismatch: %d vs %d", len(counts), len(midpoints))
	}
	if sampleSize <= 0 {
		return 0, errors.New(errors.ErrCodeDivisionByZero,
			"sample size must be positive, got %d", sampleSize)
	}
	var sum float64
	for i, c := range counts {
		if c < 0 {
			return 0, errors.New(errors.ErrCodeInvalidInput, "negative count at index %d", i)
		}
		sum += float64(c) * midpoints[i]
	}
	return sum / float64(sampleSize), nil
}

// GapMagnitude returns |a-b|, the absolute gap between two paired values.
// Used both as a display annotation and as a sort key.
func GapMagnitude(a, b float64) float64 {
	return math.Abs(a - b)
}

// PercentageOfTotal converts a count to a percentage of total.
// A non-positive total returns DIVISION_BY_ZERO; a negative count returns
// INVALID_INPUT.
func PercentageOfTotal(count, total int) (float64, error) {
	if total <= 0 {
		return 0, errors.New(errors.ErrCodeDivisionByZero,
			"total must be positive, got %d", total)
	}
	if count < 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "negative count %d", count)
	}
	return float64(count) / float64(total) * 100, nil
}
