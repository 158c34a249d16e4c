package figure

import (
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/asp-curriculum/surveyfig/pkg/errors"
)

// Colors is the figure color scheme. Positive hues mark desired outcomes,
// negative hues mark concerns and gaps.
type Colors struct {
	Positive        string `toml:"positive"`
	PositiveLight   string `toml:"positive_light"`
	PositiveLighter string `toml:"positive_lighter"`
	Negative        string `toml:"negative"`
	NegativeLight   string `toml:"negative_light"`
	Neutral         string `toml:"neutral"`
	Gray            string `toml:"gray"`
	Grid            string `toml:"grid"`
}

// Fonts holds the point sizes for each text role.
type Fonts struct {
	Title      float64 `toml:"title"`
	Subtitle   float64 `toml:"subtitle"`
	Label      float64 `toml:"label"`
	Tick       float64 `toml:"tick"`
	Annotation float64 `toml:"annotation"`
	Headline   float64 `toml:"headline"` // the large funnel percentages
}

// Theme is the full render configuration. It is passed explicitly into
// every figure builder and sink so renders are independently testable; no
// package-level mutable configuration exists.
type Theme struct {
	Colors     Colors  `toml:"colors"`
	Fonts      Fonts   `toml:"fonts"`
	FontFamily string  `toml:"font_family"`
	DPI        float64 `toml:"dpi"`
}

// DefaultTheme returns the publication color scheme and typography used
// for the manuscript figures.
func DefaultTheme() Theme {
	return Theme{
		Colors: Colors{
			Positive:        "#2C7BB6",
			PositiveLight:   "#ABD9E9",
			PositiveLighter: "#D1E5F0",
			Negative:        "#D7191C",
			NegativeLight:   "#FDAE61",
			Neutral:         "#FFFFBF",
			Gray:            "#666666",
			Grid:            "#CCCCCC",
		},
		Fonts: Fonts{
			Title:      14,
			Subtitle:   12,
			Label:      11,
			Tick:       10,
			Annotation: 9,
			Headline:   48,
		},
		FontFamily: "DejaVu Sans, sans-serif",
		DPI:        300,
	}
}

// LoadTheme reads a TOML theme file over the defaults, so a file may
// override any subset of fields. A missing or malformed file fails with
// INVALID_THEME.
func LoadTheme(path string) (Theme, error) {
	th := DefaultTheme()
	if _, err := toml.DecodeFile(path, &th); err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "load theme %s", path)
	}
	if err := th.Validate(); err != nil {
		return Theme{}, err
	}
	return th, nil
}

// Validate checks the theme fields a render depends on.
func (t Theme) Validate() error {
	colors := map[string]string{
		"positive":         t.Colors.Positive,
		"positive_light":   t.Colors.PositiveLight,
		"positive_lighter": t.Colors.PositiveLighter,
		"negative":         t.Colors.Negative,
		"negative_light":   t.Colors.NegativeLight,
		"neutral":          t.Colors.Neutral,
		"gray":             t.Colors.Gray,
		"grid":             t.Colors.Grid,
	}
	for name, c := range colors {
		if !strings.HasPrefix(c, "#") || (len(c) != 4 && len(c) != 7) {
			return errors.New(errors.ErrCodeInvalidTheme, "color %s: %q is not a hex color", name, c)
		}
	}
	if t.DPI <= 0 {
		return errors.New(errors.ErrCodeInvalidTheme, "dpi must be positive, got %v", t.DPI)
	}
	return nil
}
