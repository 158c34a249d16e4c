package survey

import (
	"math"
	"testing"

	"github.com/asp-curriculum/surveyfig/pkg/errors"
)

const tol = 1e-9

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestWeightedMidpointAverage(t *testing.T) {
	tests := []struct {
		name       string
		counts     []int
		midpoints  []float64
		sampleSize int
		want       float64
	}{
		{
			name:       "interest counts",
			counts:     []int{11, 10, 5, 1},
			midpoints:  []float64{12.5, 37.5, 62.5, 87.5},
			sampleSize: 27,
			want:       912.5 / 27,
		},
		{
			name:       "career counts",
			counts:     []int{20, 4, 3, 0},
			midpoints:  []float64{12.5, 37.5, 62.5, 87.5},
			sampleSize: 27,
			want:       587.5 / 27,
		},
		{
			name:       "all counts zero",
			counts:     []int{0, 0, 0, 0},
			midpoints:  []float64{12.5, 37.5, 62.5, 87.5},
			sampleSize: 27,
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WeightedMidpointAverage(tt.counts, tt.midpoints, tt.sampleSize)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !almostEqual(got, tt.want, tol) {
				t.Errorf("WeightedMidpointAverage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeightedMidpointAverageLinearity(t *testing.T) {
	midpoints := []float64{12.5, 37.5, 62.5, 87.5}
	a := []int{11, 10, 5, 1}
	b := []int{20, 4, 3, 0}
	sum := []int{31, 14, 8, 1}

	avgA, err := WeightedMidpointAverage(a, midpoints, 27)
	if err != nil {
		t.Fatal(err)
	}
	avgB, err := WeightedMidpointAverage(b, midpoints, 27)
	if err != nil {
		t.Fatal(err)
	}
	avgSum, err := WeightedMidpointAverage(sum, midpoints, 27)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(avgSum, avgA+avgB, tol) {
		t.Errorf("not linear in counts: avg(a+b) = %v, avg(a)+avg(b) = %v", avgSum, avgA+avgB)
	}
}

func TestWeightedMidpointAveragePermutationInvariance(t *testing.T) {
	counts := []int{11, 10, 5, 1}
	midpoints := []float64{12.5, 37.5, 62.5, 87.5}
	permCounts := []int{1, 5, 10, 11}
	permMidpoints := []float64{87.5, 62.5, 37.5, 12.5}

	got, err := WeightedMidpointAverage(counts, midpoints, 27)
	if err != nil {
		t.Fatal(err)
	}
	gotPerm, err := WeightedMidpointAverage(permCounts, permMidpoints, 27)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(got, gotPerm, tol) {
		t.Errorf("permuting (count, midpoint) pairs changed the result: %v vs %v", got, gotPerm)
	}
}

func TestWeightedMidpointAverageErrors(t *testing.T) {
	midpoints := []float64{12.5, 37.5, 62.5, 87.5}

	t.Run("length mismatch", func(t *testing.T) {
		_, err := WeightedMidpointAverage([]int{1, 2}, midpoints, 27)
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("want INVALID_INPUT, got %v", err)
		}
	})

	t.Run("zero sample size", func(t *testing.T) {
		_, err := WeightedMidpointAverage([]int{1, 2, 3, 4}, midpoints, 0)
		if !errors.Is(err, errors.ErrCodeDivisionByZero) {
			t.Errorf("want DIVISION_BY_ZERO, got %v", err)
		}
	})

	t.Run("negative count", func(t *testing.T) {
		_, err := WeightedMidpointAverage([]int{1, -2, 3, 4}, midpoints, 27)
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("want INVALID_INPUT, got %v", err)
		}
	})
}

func TestGapMagnitude(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{name: "with larger", a: 76.47, b: 50, want: 26.47},
		{name: "without larger", a: 50, b: 76.47, want: 26.47},
		{name: "equal", a: 58.82, b: 58.82, want: 0},
		{name: "both zero", a: 0, b: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GapMagnitude(tt.a, tt.b); !almostEqual(got, tt.want, tol) {
				t.Errorf("GapMagnitude(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestGapMagnitudeSymmetry(t *testing.T) {
	pairs := [][2]float64{{3, 10}, {0, 0}, {-5, 5}, {17.65, 0}}
	for _, p := range pairs {
		if GapMagnitude(p[0], p[1]) != GapMagnitude(p[1], p[0]) {
			t.Errorf("GapMagnitude not symmetric for %v", p)
		}
	}
}

func TestPercentageOfTotal(t *testing.T) {
	got, err := PercentageOfTotal(12, 27)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(got, 44.444444444, 1e-6) {
		t.Errorf("PercentageOfTotal(12, 27) = %v", got)
	}

	if _, err := PercentageOfTotal(1, 0); !errors.Is(err, errors.ErrCodeDivisionByZero) {
		t.Errorf("want DIVISION_BY_ZERO, got %v", err)
	}
	if _, err := PercentageOfTotal(-1, 27); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("want INVALID_INPUT, got %v", err)
	}
}

func TestDefaultDataset(t *testing.T) {
	d := Default()

	if err := d.Validate(); err != nil {
		t.Fatalf("default dataset invalid: %v", err)
	}
	if d.SampleSize != 27 {
		t.Errorf("SampleSize = %d, want 27", d.SampleSize)
	}
	if len(d.Satisfaction) != 3 || len(d.Interventions) != 8 || len(d.Barriers) != 6 {
		t.Errorf("unexpected table sizes: %d satisfaction, %d interventions, %d barriers",
			len(d.Satisfaction), len(d.Interventions), len(d.Barriers))
	}

	// Each satisfaction row covers the full sample.
	for _, r := range d.Satisfaction {
		var total int
		for _, c := range r.Counts() {
			total += c
		}
		if total != d.SampleSize {
			t.Errorf("satisfaction %q counts sum to %d, want %d", r.Category, total, d.SampleSize)
		}
	}
}

func TestInterestCareerAverages(t *testing.T) {
	avgInterest, avgCareer, err := Default().InterestCareerAverages()
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(avgInterest, 33.7962962963, 1e-6) {
		t.Errorf("avgInterest = %v", avgInterest)
	}
	if !almostEqual(avgCareer, 21.7592592593, 1e-6) {
		t.Errorf("avgCareer = %v", avgCareer)
	}
	if gap := GapMagnitude(avgInterest, avgCareer); !almostEqual(gap, 12.037037037, 1e-6) {
		t.Errorf("gap = %v", gap)
	}
}

func TestBarrierPercent(t *testing.T) {
	d := Default()
	want := []float64{44.44, 33.33, 22.22, 14.81, 18.52, 7.41}
	for i, r := range d.Barriers {
		got, err := r.Percent(d.SampleSize)
		if err != nil {
			t.Fatal(err)
		}
		if !almostEqual(got, want[i], 0.01) {
			t.Errorf("barrier %q percent = %v, want %v", r.Name, got, want[i])
		}
	}
}

func TestSatisfactionPercentages(t *testing.T) {
	row := SatisfactionRow{
		Category:             "Ability to assume a\nleadership role in AS",
		VeryDissatisfied:     1,
		SomewhatDissatisfied: 3,
		Neither:              8,
		SomewhatSatisfied:    12,
		VerySatisfied:        3,
	}
	got, err := row.Percentages(27)
	if err != nil {
		t.Fatal(err)
	}
	want := [5]float64{3.7037, 11.1111, 29.6296, 44.4444, 11.1111}
	for i := range want {
		if !almostEqual(got[i], want[i], 1e-3) {
			t.Errorf("bucket %d = %v, want %v", i, got[i], want[i])
		}
	}
}
