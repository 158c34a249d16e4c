package figure

import (
	"fmt"

	"github.com/asp-curriculum/surveyfig/pkg/figure/layout"
	"github.com/asp-curriculum/surveyfig/pkg/survey"
)

// InterventionDumbbell builds the dumbbell chart comparing fellow
// participation in ASP interventions with and without a formal curriculum,
// ordered by descending gap.
func InterventionDumbbell(d *survey.Dataset, th Theme) (*Scene, error) {
	s := &Scene{Name: "Figure2_ASP_Interventions_Dumbbell", Width: 1000, Height: 800}

	pairs := make([]layout.Paired, len(d.Interventions))
	for i, r := range d.Interventions {
		pairs[i] = layout.Paired{Label: r.Name, With: r.WithPct, Without: r.WithoutPct}
	}
	rows := layout.Dumbbell(pairs)

	const (
		plotLeft   = 270.0
		plotRight  = 970.0
		plotTop    = 110.0
		plotBottom = 700.0
	)
	ax := axis{Min: -5, Max: 85, P0: plotLeft, P1: plotRight}
	slot := (plotBottom - plotTop) / float64(max(len(rows), 1))

	s.add(Text{
		X: (plotLeft + plotRight) / 2, Y: 40, Anchor: AnchorMiddle, Bold: true,
		Size:    th.Fonts.Title,
		Content: "Impact of a Formal Curriculum on Fellow Participation",
	})
	s.add(Text{
		X: (plotLeft + plotRight) / 2, Y: 40 + th.Fonts.Title*1.4, Anchor: AnchorMiddle, Bold: true,
		Size:    th.Fonts.Title,
		Content: "in AS Interventions",
	})

	// Dashed gridlines behind the dumbbells.
	for v := 0.0; v <= 80; v += 20 {
		s.add(Line{
			X1: ax.pos(v), Y1: plotTop, X2: ax.pos(v), Y2: plotBottom,
			Color: th.Colors.Grid, Width: 1, Dashed: true,
		})
	}

	for _, r := range rows {
		// Row 0 (largest gap) at the bottom, matching the original axis.
		cy := plotBottom - (float64(r.Position)+0.5)*slot

		s.add(Line{
			X1: ax.pos(r.ConnectorStart), Y1: cy, X2: ax.pos(r.ConnectorEnd), Y2: cy,
			Color: th.Colors.Gray, Width: 2,
		})
		// Open endpoints under the colored dots.
		s.add(Marker{X: ax.pos(r.ConnectorStart), Y: cy, R: 5, Fill: "#FFFFFF", Stroke: th.Colors.Gray, StrokeWidth: 2})
		s.add(Marker{X: ax.pos(r.ConnectorEnd), Y: cy, R: 5, Fill: "#FFFFFF", Stroke: th.Colors.Gray, StrokeWidth: 2})
		s.add(Marker{X: ax.pos(r.With), Y: cy, R: 6, Fill: th.Colors.Positive})
		s.add(Marker{X: ax.pos(r.Without), Y: cy, R: 6, Fill: th.Colors.Negative})

		s.add(Text{
			X: ax.pos(r.AnnotationX), Y: cy - layout.AnnotationOffset*slot,
			Anchor: AnchorMiddle, Italic: true, Size: th.Fonts.Annotation,
			Content: fmt.Sprintf("Δ%.1f%%", r.Gap),
		})

		s.add(Text{
			X: plotLeft - 12, Y: cy + th.Fonts.Tick*0.35,
			Anchor: AnchorEnd, Size: th.Fonts.Tick, Content: r.Label,
		})
	}

	// X ticks and label.
	for v := 0.0; v <= 80; v += 20 {
		s.add(Line{X1: ax.pos(v), Y1: plotBottom, X2: ax.pos(v), Y2: plotBottom + 5, Color: "#000000", Width: 1})
		s.add(Text{
			X: ax.pos(v), Y: plotBottom + 8 + th.Fonts.Tick,
			Anchor: AnchorMiddle, Size: th.Fonts.Tick,
			Content: fmt.Sprintf("%.0f", v),
		})
	}
	s.add(Text{
		X: (plotLeft + plotRight) / 2, Y: plotBottom + 55,
		Anchor: AnchorMiddle, Bold: true, Size: th.Fonts.Label,
		Content: "Percentage of Fellows Participating (%)",
	})

	// Legend, upper left inside the plot.
	legendEntries := []struct {
		color, label string
	}{
		{th.Colors.Positive, "With Formal Curriculum"},
		{th.Colors.Negative, "Without Formal Curriculum"},
	}
	for i, e := range legendEntries {
		y := plotTop + 16 + float64(i)*18
		s.add(Marker{X: plotLeft + 16, Y: y, R: 6, Fill: e.color})
		s.add(Text{X: plotLeft + 30, Y: y + th.Fonts.Tick*0.35, Size: th.Fonts.Tick, Anchor: AnchorStart, Content: e.label})
	}

	return s, nil
}
