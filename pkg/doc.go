// Package pkg provides the core libraries for surveyfig figure generation.
//
// # Overview
//
// Surveyfig turns a small antimicrobial stewardship (AS) fellowship survey
// into a fixed set of publication figures. The pkg directory is organized
// into four main areas:
//
//  1. [survey] - Dataset model, workbook loading, descriptive aggregates
//  2. [figure/layout] - Pure chart geometry (diverging bars, dumbbells)
//  3. [figure] - Scene construction for the four figures
//  4. [figure/sink] - Output formats (SVG, PDF, PNG)
//
// # Architecture
//
// The typical data flow through surveyfig:
//
//	Workbook / built-in dataset
//	         ↓
//	    [survey] package (counts → percentages, weighted averages)
//	         ↓
//	    [figure/layout] package (data-space geometry)
//	         ↓
//	    [figure] package (scenes of drawing primitives)
//	         ↓
//	    SVG/PDF/PNG output
//
// # Quick Start
//
// Build a figure and render it to SVG:
//
//	import (
//	    "github.com/asp-curriculum/surveyfig/pkg/figure"
//	    "github.com/asp-curriculum/surveyfig/pkg/figure/sink"
//	    "github.com/asp-curriculum/surveyfig/pkg/survey"
//	)
//
//	d := survey.Default()
//	th := figure.DefaultTheme()
//	scene, _ := figure.Barriers(d, th)
//	svg := sink.RenderSVG(scene, th)
//
// # Main Packages
//
// [survey] - Typed survey tables (interest funnel, satisfaction scales,
// interventions, barriers) with an excelize-based workbook loader and the
// pure aggregate operations the figures are built from.
//
// [figure/layout] - The layout engine: diverging stacked-bar geometry with
// the neutral bucket centered on zero, and dumbbell geometry sorted by gap
// magnitude. No I/O, no drawing, just coordinates.
//
// [figure] - The four figure builders plus the scene model (rectangles,
// lines, markers, polygons, text) and the TOML-configurable theme.
//
// [figure/sink] - Format-specific renderers. SVG is written directly, PDF
// via gofpdf, PNG by shelling out to rsvg-convert.
//
// [errors] - Coded errors shared by every package, so the CLI can map
// failures to user-facing messages.
//
// [buildinfo] - Version metadata injected at build time via ldflags.
//
// [survey]: https://pkg.go.dev/github.com/asp-curriculum/surveyfig/pkg/survey
// [figure]: https://pkg.go.dev/github.com/asp-curriculum/surveyfig/pkg/figure
// [figure/layout]: https://pkg.go.dev/github.com/asp-curriculum/surveyfig/pkg/figure/layout
// [figure/sink]: https://pkg.go.dev/github.com/asp-curriculum/surveyfig/pkg/figure/sink
// [errors]: https://pkg.go.dev/github.com/asp-curriculum/surveyfig/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/asp-curriculum/surveyfig/pkg/buildinfo
package pkg
