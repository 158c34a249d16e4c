package figure

import (
	"fmt"
	"strings"

	"github.com/asp-curriculum/surveyfig/pkg/figure/layout"
	"github.com/asp-curriculum/surveyfig/pkg/survey"
)

// LeadershipGap builds the two-panel composite: the career funnel on top
// and the satisfaction diverging bar chart below.
func LeadershipGap(d *survey.Dataset, th Theme) (*Scene, error) {
	s := &Scene{Name: "Figure1_Leadership_Gap", Width: 1200, Height: 800}

	if err := funnelPanel(s, d, th); err != nil {
		return nil, err
	}
	if err := satisfactionPanel(s, d, th); err != nil {
		return nil, err
	}
	return s, nil
}

// funnelPanel draws panel A in the top half of the scene. Positions are
// laid out on a 10x10 grid mapped onto the panel, mirroring the original
// composition.
func funnelPanel(s *Scene, d *survey.Dataset, th Theme) error {
	avgInterest, avgCareer, err := d.InterestCareerAverages()
	if err != nil {
		return err
	}
	gap := survey.GapMagnitude(avgInterest, avgCareer)

	const panelH = 400.0
	gx := func(x float64) float64 { return x / 10 * s.Width }
	gy := func(y float64) float64 { return panelH - y/10*panelH }

	s.add(Text{
		X: gx(5), Y: gy(9.5), Anchor: AnchorMiddle, Bold: true,
		Size:    th.Fonts.Title,
		Content: "A. The Career Funnel: Interest vs. Leadership Placement",
	})

	// Interest box
	s.add(Rect{
		X: gx(1), Y: gy(8), W: gx(8) - gx(0), H: gy(0) - gy(2.5),
		Fill: th.Colors.PositiveLighter, Stroke: th.Colors.Positive,
		StrokeWidth: 3, Corner: 14,
	})
	s.add(Text{
		X: gx(5), Y: gy(7), Anchor: AnchorMiddle, Bold: true,
		Size: th.Fonts.Headline, Color: th.Colors.Positive,
		Content: fmt.Sprintf("%.0f%%", avgInterest),
	})
	s.add(Text{
		X: gx(5), Y: gy(6.2), Anchor: AnchorMiddle, Size: th.Fonts.Subtitle,
		Content: "of fellows interested in AS",
	})
	s.add(Text{
		X: gx(5), Y: gy(5.7), Anchor: AnchorMiddle, Size: th.Fonts.Subtitle,
		Content: "at start of fellowship",
	})

	// Arrow from the interest box down to the career box.
	s.add(Line{
		X1: gx(5), Y1: gy(5.3), X2: gx(5), Y2: gy(3.85),
		Color: th.Colors.Gray, Width: 4,
	})
	s.add(Polygon{
		Points: []float64{gx(5) - 9, gy(3.85), gx(5) + 9, gy(3.85), gx(5), gy(3.7)},
		Fill:   th.Colors.Gray,
	})

	// Career box
	s.add(Rect{
		X: gx(2), Y: gy(3.5), W: gx(6) - gx(0), H: gy(0) - gy(2.5),
		Fill: th.Colors.NegativeLight, Stroke: th.Colors.Negative,
		StrokeWidth: 3, Corner: 14,
	})
	s.add(Text{
		X: gx(5), Y: gy(2.5), Anchor: AnchorMiddle, Bold: true,
		Size: th.Fonts.Headline, Color: th.Colors.Negative,
		Content: fmt.Sprintf("%.0f%%", avgCareer),
	})
	s.add(Text{
		X: gx(5), Y: gy(1.7), Anchor: AnchorMiddle, Size: th.Fonts.Subtitle,
		Content: "secured AS leadership",
	})
	s.add(Text{
		X: gx(5), Y: gy(1.2), Anchor: AnchorMiddle, Size: th.Fonts.Subtitle,
		Content: "positions upon graduation",
	})

	// Gap badge on the right, between the boxes.
	s.add(Rect{
		X: gx(9) - 55, Y: gy(4.95), W: 110, H: 70,
		Fill: "#FFFFFF", Stroke: th.Colors.Negative, StrokeWidth: 2, Corner: 10,
	})
	s.add(Text{
		X: gx(9), Y: gy(4.55), Anchor: AnchorMiddle, Bold: true,
		Size: 20, Color: th.Colors.Negative,
		Content: fmt.Sprintf("%.0f%%", gap),
	})
	s.add(Text{
		X: gx(9), Y: gy(4.0), Anchor: AnchorMiddle, Bold: true,
		Size: 20, Color: th.Colors.Negative,
		Content: "GAP",
	})
	return nil
}

// satisfactionPanel draws panel B, the diverging stacked-bar chart, in the
// bottom half of the scene.
func satisfactionPanel(s *Scene, d *survey.Dataset, th Theme) error {
	const (
		plotLeft   = 250.0
		plotRight  = 1160.0
		plotTop    = 470.0
		plotBottom = 710.0
	)
	ax := axis{Min: -60, Max: 100, P0: plotLeft, P1: plotRight}
	slot := (plotBottom - plotTop) / float64(len(d.Satisfaction))
	barH := slot * 0.6

	s.add(Text{
		X: (plotLeft + plotRight) / 2, Y: plotTop - 25, Anchor: AnchorMiddle, Bold: true,
		Size:    th.Fonts.Title,
		Content: "B. The Satisfaction Gap: Preparedness Across Competency Levels",
	})

	bucketColors := [5]string{
		th.Colors.Negative,      // very dissatisfied
		th.Colors.NegativeLight, // somewhat dissatisfied
		th.Colors.Neutral,       // neither
		th.Colors.PositiveLight, // somewhat satisfied
		th.Colors.Positive,      // very satisfied
	}

	for i, r := range d.Satisfaction {
		pcts, err := r.Percentages(d.SampleSize)
		if err != nil {
			return err
		}
		dist := layout.Distribution(pcts)
		// Count-derived buckets must cover the category's respondents.
		if err := dist.Validate(); err != nil {
			return err
		}
		row := layout.Diverging(dist)

		// First category at the bottom, matching the original axis.
		cy := plotBottom - (float64(i)+0.5)*slot

		for b, seg := range row.Segments {
			if seg.Width == 0 {
				continue
			}
			s.add(Rect{
				X: ax.pos(seg.Start), Y: cy - barH/2,
				W: ax.span(seg.Width), H: barH,
				Fill: bucketColors[b], Stroke: "#000000", StrokeWidth: 0.5,
			})
		}

		for _, lbl := range []layout.Label{row.Negative, row.Neutral, row.Positive} {
			if !lbl.Visible {
				continue
			}
			s.add(Text{
				X: ax.pos(lbl.Center), Y: cy + th.Fonts.Annotation*0.35,
				Anchor: AnchorMiddle, Bold: true, Size: th.Fonts.Annotation,
				Content: fmt.Sprintf("%.0f%%", lbl.Value),
			})
		}

		// Category label, line-wrapped as in the source data.
		lines := strings.Split(r.Category, "\n")
		lineH := th.Fonts.Tick * 1.3
		y0 := cy - lineH*float64(len(lines)-1)/2 + th.Fonts.Tick*0.35
		for j, line := range lines {
			s.add(Text{
				X: plotLeft - 12, Y: y0 + float64(j)*lineH,
				Anchor: AnchorEnd, Size: th.Fonts.Tick, Content: line,
			})
		}
	}

	// Zero axis line.
	s.add(Line{X1: ax.pos(0), Y1: plotTop, X2: ax.pos(0), Y2: plotBottom, Color: "#000000", Width: 2})

	// X ticks and label.
	for v := -60.0; v <= 100; v += 20 {
		s.add(Line{X1: ax.pos(v), Y1: plotBottom, X2: ax.pos(v), Y2: plotBottom + 5, Color: "#000000", Width: 1})
		s.add(Text{
			X: ax.pos(v), Y: plotBottom + 8 + th.Fonts.Tick,
			Anchor: AnchorMiddle, Size: th.Fonts.Tick,
			Content: fmt.Sprintf("%.0f", v),
		})
	}
	s.add(Text{
		X: (plotLeft + plotRight) / 2, Y: plotBottom + 50,
		Anchor: AnchorMiddle, Bold: true, Size: th.Fonts.Label,
		Content: "Percentage (%)",
	})

	legendEntries := []struct {
		color, label string
	}{
		{th.Colors.Negative, "Very Dissatisfied"},
		{th.Colors.NegativeLight, "Somewhat Dissatisfied"},
		{th.Colors.Neutral, "Neither"},
		{th.Colors.PositiveLight, "Somewhat Satisfied"},
		{th.Colors.Positive, "Very Satisfied"},
	}
	legendX := plotLeft + 10
	legendY := plotBottom - 14
	for i, e := range legendEntries {
		y := legendY - float64(len(legendEntries)-1-i)*16
		s.add(Rect{X: legendX, Y: y - 10, W: 12, H: 12, Fill: e.color, Stroke: "#000000", StrokeWidth: 0.5})
		s.add(Text{X: legendX + 18, Y: y, Size: th.Fonts.Annotation, Anchor: AnchorStart, Content: e.label})
	}
	return nil
}
