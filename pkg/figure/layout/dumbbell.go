package layout

import (
	"math"
	"sort"
)

// AnnotationOffset is the vertical offset, in row units, of a gap
// annotation above its connector.
const AnnotationOffset = 0.35

// Paired holds the two percentages compared for one category.
type Paired struct {
	Label   string
	With    float64 // value with the intervention
	Without float64 // value without the intervention
}

// DumbbellRow is the computed geometry for one category in a dumbbell
// chart: a vertical position, two point markers, a connector, and a gap
// annotation.
type DumbbellRow struct {
	Paired

	Position int     // sequential row index, 0..n-1, largest gap first
	Gap      float64 // |With - Without|

	// Connector span along the percentage axis.
	ConnectorStart float64 // min(With, Without)
	ConnectorEnd   float64 // max(With, Without)

	// AnnotationX is the horizontal midpoint between the two values.
	// The annotation sits AnnotationOffset above Position.
	AnnotationX float64
}

// Dumbbell orders categories by descending gap and assigns each a row of
// dumbbell geometry. The sort is stable: categories with equal gaps keep
// their input order. The input slice is not modified.
func Dumbbell(pairs []Paired) []DumbbellRow {
	rows := make([]DumbbellRow, len(pairs))
	for i, p := range pairs {
		rows[i] = DumbbellRow{
			Paired:         p,
			Gap:            math.Abs(p.With - p.Without),
			ConnectorStart: math.Min(p.With, p.Without),
			ConnectorEnd:   math.Max(p.With, p.Without),
			AnnotationX:    (p.With + p.Without) / 2,
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Gap > rows[j].Gap
	})
	for i := range rows {
		rows[i].Position = i
	}
	return rows
}
