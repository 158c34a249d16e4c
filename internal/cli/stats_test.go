package cli

import (
	"strings"
	"testing"

	"github.com/asp-curriculum/surveyfig/pkg/survey"
)

func TestPrintStats(t *testing.T) {
	var sb strings.Builder
	if err := printStats(&sb, survey.Default()); err != nil {
		t.Fatal(err)
	}
	out := sb.String()

	wants := []string{
		"Career funnel (n=27 programs)",
		"33.8%", // average interest
		"21.8%", // average leadership attainment
		"12.0%", // funnel gap
		"Satisfaction",
		"Interventions",
		"Education of residents/faculty", // largest curriculum gap first
		"Δ26.5",
		"Barriers",
		"Lack of educator time",
		"44.4%",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q", want)
		}
	}
}

func TestPrintStatsZeroSampleSize(t *testing.T) {
	d := survey.Default()
	d.SampleSize = 0
	var sb strings.Builder
	if err := printStats(&sb, d); err == nil {
		t.Error("expected error for zero sample size")
	}
}

func TestFlatten(t *testing.T) {
	if got := flatten("Duration of\ncurriculum"); got != "Duration of curriculum" {
		t.Errorf("flatten = %q", got)
	}
}
