// Package layout computes the geometry of diverging stacked-bar rows and
// dumbbell comparison rows along a shared percentage axis.
//
// Both entry points are pure: they derive segment extents and orderings
// from their inputs alone, never mutate them, and hold no state between
// calls. Rendering (colors, fonts, file export) lives elsewhere; this
// package only answers "where does each visual element go".
//
// # Diverging rows
//
// [Diverging] places a five-bucket ordinal distribution on an axis centered
// at zero: the neutral bucket straddles zero, negative buckets extend left,
// positive buckets extend right. Segments tile the axis with no gaps or
// overlaps.
//
// # Dumbbell rows
//
// [Dumbbell] assigns each before/after pair a vertical position ordered by
// descending gap, with a connector spanning the two values.
package layout
