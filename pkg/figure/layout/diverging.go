package layout

import (
	"math"

	"github.com/asp-curriculum/surveyfig/pkg/errors"
)

// LabelThreshold is the minimum width, in percentage points, above which a
// section receives a centered numeric label. Sections at or below the
// threshold stay unlabeled so text never overflows a narrow bar.
const LabelThreshold = 5.0

// sumTolerance is the allowed deviation, in percentage points, of a
// distribution's sum from 100 in Validate.
const sumTolerance = 0.5

// Bucket indexes the five ordinal response buckets, ordered from most
// negative to most positive.
type Bucket int

const (
	VeryNegative Bucket = iota
	SomewhatNegative
	Neutral
	SomewhatPositive
	VeryPositive
)

// Distribution holds the five bucket percentages for one category, indexed
// by Bucket.
type Distribution [5]float64

// Sum returns the total of all five bucket percentages.
func (d Distribution) Sum() float64 {
	var s float64
	for _, v := range d {
		s += v
	}
	return s
}

// Validate checks that every bucket is non-negative and that the buckets
// sum to 100 percent of the category's respondents (within 0.5 pp).
// Diverging itself accepts any non-negative percentages; callers working
// from count-derived data apply Validate first.
func (d Distribution) Validate() error {
	for b, v := range d {
		if v < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "negative percentage %.2f in bucket %d", v, b)
		}
	}
	if s := d.Sum(); math.Abs(s-100) > sumTolerance {
		return errors.New(errors.ErrCodeInvalidInput, "bucket percentages sum to %.2f, want 100", s)
	}
	return nil
}

// Segment is one horizontal span along the shared percentage axis.
type Segment struct {
	Start float64 // left edge, in percentage points from the axis center
	Width float64
}

// End returns the right edge of the segment.
func (s Segment) End() float64 { return s.Start + s.Width }

// Center returns the horizontal midpoint of the segment.
func (s Segment) Center() float64 { return s.Start + s.Width/2 }

// Label is a numeric annotation for a bar section.
type Label struct {
	Value   float64 // percentage displayed
	Center  float64 // horizontal midpoint of the labeled span
	Visible bool    // false when the span is at or below LabelThreshold
}

// DivergingRow is the computed geometry for one category's diverging bar.
type DivergingRow struct {
	Segments [5]Segment // indexed by Bucket

	// Section labels: the combined negative total, the neutral bucket,
	// and the combined positive total.
	Negative Label
	Neutral  Label
	Positive Label
}

// Diverging lays out a five-bucket distribution on an axis centered at
// zero. The neutral bucket straddles zero; negative buckets extend left
// of -neutral/2 with the most negative furthest out, and positive buckets
// extend right of +neutral/2 with the most positive furthest out.
//
// The five segments tile [-(neutral/2 + negatives), neutral/2 + positives]
// exactly, and the neutral segment is always centered at zero regardless
// of its own width.
func Diverging(d Distribution) DivergingRow {
	neutralHalf := d[Neutral] / 2
	negativeTotal := d[VeryNegative] + d[SomewhatNegative]
	positiveTotal := d[SomewhatPositive] + d[VeryPositive]

	var row DivergingRow

	row.Segments[VeryNegative] = Segment{
		Start: -(neutralHalf + negativeTotal),
		Width: d[VeryNegative],
	}
	row.Segments[SomewhatNegative] = Segment{
		Start: row.Segments[VeryNegative].End(),
		Width: d[SomewhatNegative],
	}
	row.Segments[Neutral] = Segment{
		Start: -neutralHalf,
		Width: d[Neutral],
	}
	row.Segments[SomewhatPositive] = Segment{
		Start: neutralHalf,
		Width: d[SomewhatPositive],
	}
	row.Segments[VeryPositive] = Segment{
		Start: row.Segments[SomewhatPositive].End(),
		Width: d[VeryPositive],
	}

	row.Negative = Label{
		Value:   negativeTotal,
		Center:  -(neutralHalf + negativeTotal/2),
		Visible: negativeTotal > LabelThreshold,
	}
	row.Neutral = Label{
		Value:   d[Neutral],
		Center:  0,
		Visible: d[Neutral] > LabelThreshold,
	}
	row.Positive = Label{
		Value:   positiveTotal,
		Center:  neutralHalf + positiveTotal/2,
		Visible: positiveTotal > LabelThreshold,
	}

	return row
}
