package figure

import (
	"fmt"
	"sort"

	"github.com/asp-curriculum/surveyfig/pkg/survey"
)

// Barriers builds the horizontal bar chart of reported barriers to AS
// education, largest barrier at the top, in the positive accent color.
func Barriers(d *survey.Dataset, th Theme) (*Scene, error) {
	return barriersScene(d, th, "Figure3_Barriers", th.Colors.Positive)
}

// BarriersRed is the alternate-color variant of Barriers, drawn in the
// negative accent color.
func BarriersRed(d *survey.Dataset, th Theme) (*Scene, error) {
	return barriersScene(d, th, "Figure3_Barriers_Red", th.Colors.Negative)
}

type barrierBar struct {
	name string
	pct  float64
}

func barriersScene(d *survey.Dataset, th Theme, name, barColor string) (*Scene, error) {
	s := &Scene{Name: name, Width: 1000, Height: 600}

	bars := make([]barrierBar, len(d.Barriers))
	for i, r := range d.Barriers {
		pct, err := r.Percent(d.SampleSize)
		if err != nil {
			return nil, err
		}
		bars[i] = barrierBar{name: r.Name, pct: pct}
	}
	// Ascending by percentage; with the first row at the bottom this puts
	// the largest barrier on top.
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].pct < bars[j].pct })

	const (
		plotLeft   = 250.0
		plotRight  = 930.0
		plotTop    = 110.0
		plotBottom = 500.0
	)
	ax := axis{Min: 0, Max: 55, P0: plotLeft, P1: plotRight}
	slot := (plotBottom - plotTop) / float64(max(len(bars), 1))
	barH := slot * 0.7

	s.add(Text{
		X: (plotLeft + plotRight) / 2, Y: 45, Anchor: AnchorMiddle, Bold: true,
		Size:    th.Fonts.Title,
		Content: "Limited Educator Time is the Primary Barrier",
	})
	s.add(Text{
		X: (plotLeft + plotRight) / 2, Y: 45 + th.Fonts.Title*1.4, Anchor: AnchorMiddle, Bold: true,
		Size:    th.Fonts.Title,
		Content: "to AS Education",
	})

	for v := 0.0; v <= 50; v += 10 {
		s.add(Line{
			X1: ax.pos(v), Y1: plotTop, X2: ax.pos(v), Y2: plotBottom,
			Color: th.Colors.Grid, Width: 1, Dashed: true,
		})
	}

	for i, b := range bars {
		cy := plotBottom - (float64(i)+0.5)*slot

		s.add(Rect{
			X: ax.pos(0), Y: cy - barH/2, W: ax.span(b.pct), H: barH,
			Fill: barColor, Stroke: "#000000", StrokeWidth: 1.2,
		})
		s.add(Text{
			X: ax.pos(b.pct) + ax.span(1.5), Y: cy + th.Fonts.Tick*0.35,
			Anchor: AnchorStart, Bold: true, Size: th.Fonts.Tick,
			Content: fmt.Sprintf("%.1f%%", b.pct),
		})
		s.add(Text{
			X: plotLeft - 12, Y: cy + th.Fonts.Tick*0.35,
			Anchor: AnchorEnd, Size: th.Fonts.Tick, Content: b.name,
		})
	}

	for v := 0.0; v <= 50; v += 10 {
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
		Content: "Percentage of Programs Reporting Barrier (%)",
	})

	return s, nil
}
