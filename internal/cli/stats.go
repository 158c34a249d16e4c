package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/asp-curriculum/surveyfig/pkg/figure/layout"
	"github.com/asp-curriculum/surveyfig/pkg/survey"
)

// newStatsCmd creates the stats command, which prints the aggregates the
// figures are built from without rendering anything. Useful for checking
// the numbers that will appear in the manuscript.
func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [dataset.xlsx]",
		Short: "Print the computed survey aggregates",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := survey.Default()
			if len(args) == 1 {
				var err error
				if d, err = survey.Load(args[0]); err != nil {
					return err
				}
			}
			return printStats(cmd.OutOrStdout(), d)
		},
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2C7BB6"))
	nameStyle   = lipgloss.NewStyle().Width(34)
	gapStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D7191C"))
)

func printStats(w io.Writer, d *survey.Dataset) error {
	avgInterest, avgCareer, err := d.InterestCareerAverages()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Career funnel (n=%d programs)", d.SampleSize)))
	fmt.Fprintf(w, "  %s %5.1f%%\n", nameStyle.Render("Interested in AS at start"), avgInterest)
	fmt.Fprintf(w, "  %s %5.1f%%\n", nameStyle.Render("Secured AS leadership position"), avgCareer)
	fmt.Fprintf(w, "  %s %s\n", nameStyle.Render("Gap"),
		gapStyle.Render(fmt.Sprintf("%5.1f%%", survey.GapMagnitude(avgInterest, avgCareer))))

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Satisfaction (dissatisfied / neither / satisfied, % of programs)"))
	for _, r := range d.Satisfaction {
		pcts, err := r.Percentages(d.SampleSize)
		if err != nil {
			return err
		}
		row := layout.Diverging(layout.Distribution(pcts))
		fmt.Fprintf(w, "  %s %5.1f / %5.1f / %5.1f\n",
			nameStyle.Render(flatten(r.Category)),
			row.Negative.Value, row.Neutral.Value, row.Positive.Value)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Interventions by curriculum gap (with vs without, %)"))
	pairs := make([]layout.Paired, len(d.Interventions))
	for i, r := range d.Interventions {
		pairs[i] = layout.Paired{Label: r.Name, With: r.WithPct, Without: r.WithoutPct}
	}
	for _, r := range layout.Dumbbell(pairs) {
		fmt.Fprintf(w, "  %s %5.1f vs %5.1f  %s\n",
			nameStyle.Render(r.Label), r.With, r.Without,
			gapStyle.Render(fmt.Sprintf("Δ%.1f", r.Gap)))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("Barriers (% of programs reporting)"))
	for _, r := range d.Barriers {
		pct, err := r.Percent(d.SampleSize)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s %5.1f%%\n", nameStyle.Render(r.Name), pct)
	}
	return nil
}

func flatten(category string) string {
	return strings.ReplaceAll(category, "\n", " ")
}
