// Package figure builds the four survey figures as scenes of drawing
// primitives.
//
// A [Scene] is a flat list of rectangles, lines, markers, polygons, and
// text in abstract point units with the origin at the top left. Builders
// are pure: they derive every primitive from a survey dataset and a
// [Theme], so the geometry can be asserted in tests without touching a
// rendering backend. Export lives in the sink subpackage.
//
// The four figures, in generation order:
//
//	Figure1_Leadership_Gap              career funnel + satisfaction diverging bars
//	Figure2_ASP_Interventions_Dumbbell  curriculum impact dumbbell chart
//	Figure3_Barriers                    barriers horizontal bar chart
//	Figure3_Barriers_Red                same chart in the negative accent color
package figure
