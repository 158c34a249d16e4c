// Package survey defines the survey dataset model and the descriptive
// aggregates derived from it.
//
// The dataset is four small tables (interest, satisfaction, interventions,
// barriers) plus a fixed sample size. Tables are typed records with named
// fields rather than by-name column lookups; the loader in this package
// fails fast when an expected sheet or column is absent.
//
// All aggregate operations are pure: same inputs, same outputs, no state.
package survey

import "github.com/asp-curriculum/surveyfig/pkg/errors"

// TotalPrograms is the survey sample size: the number of fellowship
// programs that responded. It is fixed for the lifetime of a run and is
// the denominator for every count-to-percentage conversion.
const TotalPrograms = 27

// RangeMidpoints are the representative values for the four interest
// ranges 0-25%, 26-50%, 51-75% and 76-100%.
var RangeMidpoints = []float64{12.5, 37.5, 62.5, 87.5}

// InterestRow holds response counts for one interest range bucket.
type InterestRow struct {
	Range    string // bucket label, e.g. "0-25%"
	Interest int    // programs reporting fellow interest in this range
	Career   int    // programs reporting leadership placement in this range
}

// SatisfactionRow holds the five-bucket ordinal distribution for one
// competency category. Counts are raw respondent counts, not percentages.
type SatisfactionRow struct {
	Category             string
	VeryDissatisfied     int
	SomewhatDissatisfied int
	Neither              int
	SomewhatSatisfied    int
	VerySatisfied        int
}

// Counts returns the bucket counts ordered from most negative to most
// positive.
func (r SatisfactionRow) Counts() [5]int {
	return [5]int{r.VeryDissatisfied, r.SomewhatDissatisfied, r.Neither, r.SomewhatSatisfied, r.VerySatisfied}
}

// Percentages converts the bucket counts to percentages of sampleSize,
// ordered from most negative to most positive.
func (r SatisfactionRow) Percentages(sampleSize int) ([5]float64, error) {
	var out [5]float64
	for i, c := range r.Counts() {
		pct, err := PercentageOfTotal(c, sampleSize)
		if err != nil {
			return out, err
		}
		out[i] = pct
	}
	return out, nil
}

// InterventionRow holds the paired participation percentages for one ASP
// intervention: fellows at programs with a formal curriculum vs without.
type InterventionRow struct {
	Name       string
	WithPct    float64 // participation % with a formal curriculum
	WithoutPct float64 // participation % without a formal curriculum
}

// BarrierRow holds the count of programs reporting one barrier.
type BarrierRow struct {
	Name  string
	Count int
}

// Percent returns the barrier count as a percentage of sampleSize.
func (r BarrierRow) Percent(sampleSize int) (float64, error) {
	return PercentageOfTotal(r.Count, sampleSize)
}

// Dataset groups the four survey tables for one run. All figures are
// derived from a single Dataset; there is no cross-run state.
type Dataset struct {
	SampleSize    int
	Interest      []InterestRow
	Satisfaction  []SatisfactionRow
	Interventions []InterventionRow
	Barriers      []BarrierRow
}

// InterestCounts returns the interest counts in range order.
func (d *Dataset) InterestCounts() []int {
	out := make([]int, len(d.Interest))
	for i, r := range d.Interest {
		out[i] = r.Interest
	}
	return out
}

// CareerCounts returns the leadership placement counts in range order.
func (d *Dataset) CareerCounts() []int {
	out := make([]int, len(d.Interest))
	for i, r := range d.Interest {
		out[i] = r.Career
	}
	return out
}

// InterestCareerAverages computes the weighted midpoint averages for fellow
// interest and leadership placement, the headline numbers of the career
// funnel figure.
func (d *Dataset) InterestCareerAverages() (avgInterest, avgCareer float64, err error) {
	avgInterest, err = WeightedMidpointAverage(d.InterestCounts(), RangeMidpoints, d.SampleSize)
	if err != nil {
		return 0, 0, err
	}
	avgCareer, err = WeightedMidpointAverage(d.CareerCounts(), RangeMidpoints, d.SampleSize)
	if err != nil {
		return 0, 0, err
	}
	return avgInterest, avgCareer, nil
}

// Validate checks the dataset invariants: positive sample size and
// non-negative counts throughout.
func (d *Dataset) Validate() error {
	if d.SampleSize <= 0 {
		return errors.New(errors.ErrCodeDivisionByZero, "sample size must be positive, got %d", d.SampleSize)
	}
	for _, r := range d.Interest {
		if r.Interest < 0 || r.Career < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "negative count in interest range %q", r.Range)
		}
	}
	for _, r := range d.Satisfaction {
		for _, c := range r.Counts() {
			if c < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "negative count in satisfaction category %q", r.Category)
			}
		}
	}
	for _, r := range d.Interventions {
		if r.WithPct < 0 || r.WithPct > 100 || r.WithoutPct < 0 || r.WithoutPct > 100 {
			return errors.New(errors.ErrCodeInvalidInput, "intervention %q percentages out of [0,100]", r.Name)
		}
	}
	for _, r := range d.Barriers {
		if r.Count < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "negative count for barrier %q", r.Name)
		}
	}
	return nil
}

// Default returns the built-in AS survey dataset. This mirrors the survey
// workbook so the figures can be regenerated without the original file.
func Default() *Dataset {
	return &Dataset{
		SampleSize: TotalPrograms,
		Interest: []InterestRow{
			{Range: "0-25%", Interest: 11, Career: 20},
			{Range: "26-50%", Interest: 10, Career: 4},
			{Range: "51-75%", Interest: 5, Career: 3},
			{Range: "76-100%", Interest: 1, Career: 0},
		},
		Satisfaction: []SatisfactionRow{
			{
				Category:             "General education/\nbackground knowledge",
				VeryDissatisfied:     1,
				SomewhatDissatisfied: 2,
				Neither:              1,
				SomewhatSatisfied:    14,
				VerySatisfied:        9,
			},
			{
				Category:             "Ability to use AS in\nclinical practice",
				VeryDissatisfied:     0,
				SomewhatDissatisfied: 2,
				Neither:              0,
				SomewhatSatisfied:    15,
				VerySatisfied:        10,
			},
			{
				Category:             "Ability to assume a\nleadership role in AS",
				VeryDissatisfied:     1,
				SomewhatDissatisfied: 3,
				Neither:              8,
				SomewhatSatisfied:    12,
				VerySatisfied:        3,
			},
		},
		Interventions: []InterventionRow{
			{Name: "Education of residents/faculty", WithPct: 76.47, WithoutPct: 50},
			{Name: "Antibiotic Approval", WithPct: 70.59, WithoutPct: 60},
			{Name: "Guideline Creation", WithPct: 58.82, WithoutPct: 60},
			{Name: "Audit and Feedback", WithPct: 58.82, WithoutPct: 50},
			{Name: "Handshake Rounds", WithPct: 52.94, WithoutPct: 50},
			{Name: "Antibiotic Allergy Assessment", WithPct: 35.29, WithoutPct: 30},
			{Name: "Antibiotic Timeout", WithPct: 17.65, WithoutPct: 0},
			{Name: "None of the above", WithPct: 5.88, WithoutPct: 10},
		},
		Barriers: []BarrierRow{
			{Name: "Lack of educator time", Count: 12},
			{Name: "Lack of materials", Count: 9},
			{Name: "None of the above", Count: 6},
			{Name: "Lack of AS projects", Count: 4},
			{Name: "Lack of time from fellow", Count: 5},
			{Name: "Lack of AS interventions", Count: 2},
		},
	}
}
