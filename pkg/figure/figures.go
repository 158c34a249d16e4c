package figure

import (
	"github.com/asp-curriculum/surveyfig/pkg/errors"
	"github.com/asp-curriculum/surveyfig/pkg/survey"
)

// BuildFunc constructs one figure scene from a dataset and theme.
type BuildFunc func(*survey.Dataset, Theme) (*Scene, error)

// Builder pairs an artifact name with its scene constructor.
type Builder struct {
	Name  string
	Build BuildFunc
}

// All returns the four figure builders in generation order.
func All() []Builder {
	return []Builder{
		{Name: "Figure1_Leadership_Gap", Build: LeadershipGap},
		{Name: "Figure2_ASP_Interventions_Dumbbell", Build: InterventionDumbbell},
		{Name: "Figure3_Barriers", Build: Barriers},
		{Name: "Figure3_Barriers_Red", Build: BarriersRed},
	}
}

// ByName resolves a builder by artifact name. Unknown names fail with
// INVALID_FIGURE.
func ByName(name string) (Builder, error) {
	for _, b := range All() {
		if b.Name == name {
			return b, nil
		}
	}
	return Builder{}, errors.New(errors.ErrCodeInvalidFigure, "unknown figure: %s", name)
}
