package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asp-curriculum/surveyfig/pkg/errors"
	"github.com/asp-curriculum/surveyfig/pkg/figure"
	"github.com/asp-curriculum/surveyfig/pkg/figure/sink"
	"github.com/asp-curriculum/surveyfig/pkg/survey"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	outputDir string   // directory for the generated files
	formats   []string // output formats: "pdf", "svg", "png"
	figures   []string // figure subset; empty means all four
	themePath string   // optional TOML theme overriding the defaults
}

// newRenderCmd creates the render command, the one-shot figure generation.
//
// With no arguments it renders all four figures from the built-in dataset
// as PDF into the current directory, mirroring the original manuscript
// workflow. An optional workbook argument loads the dataset from disk
// instead.
func newRenderCmd() *cobra.Command {
	var formatsStr, figuresStr string
	opts := renderOpts{outputDir: "."}

	cmd := &cobra.Command{
		Use:   "render [dataset.xlsx]",
		Short: "Generate the survey figures",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = splitList(formatsStr, []string{"pdf"})
			opts.figures = splitList(figuresStr, nil)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			dataset := ""
			if len(args) == 1 {
				dataset = args[0]
			}
			return runRender(cmd.Context(), dataset, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", opts.outputDir, "directory for generated figures")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): pdf (default), svg, png (comma-separated)")
	cmd.Flags().StringVar(&figuresStr, "figure", "", "figure name(s) to generate (comma-separated, default all)")
	cmd.Flags().StringVar(&opts.themePath, "theme", "", "TOML theme file overriding the default colors and fonts")

	return cmd
}

// splitList parses a comma-separated flag value, falling back to def when
// the flag is empty.
func splitList(s string, def []string) []string {
	if s == "" {
		return def
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// validateFormats checks that all requested formats are supported.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !sink.ValidFormat(f) {
			return errors.New(errors.ErrCodeInvalidFormat,
				"invalid format: %s (must be 'pdf', 'svg', or 'png')", f)
		}
	}
	return nil
}

// selectBuilders resolves the requested figure subset, preserving the
// fixed generation order. An empty selection means all four figures.
func selectBuilders(names []string) ([]figure.Builder, error) {
	if len(names) == 0 {
		return figure.All(), nil
	}
	builders := make([]figure.Builder, 0, len(names))
	for _, name := range names {
		b, err := figure.ByName(name)
		if err != nil {
			return nil, err
		}
		builders = append(builders, b)
	}
	return builders, nil
}

// runRender loads the dataset and theme, then builds and exports each
// requested figure in order. The first failure aborts the remaining
// sequence; files already written stay in place.
func runRender(ctx context.Context, dataset string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	th := figure.DefaultTheme()
	if opts.themePath != "" {
		var err error
		if th, err = figure.LoadTheme(opts.themePath); err != nil {
			return err
		}
		logger.Debugf("Loaded theme %s", opts.themePath)
	}

	builders, err := selectBuilders(opts.figures)
	if err != nil {
		return err
	}

	var d *survey.Dataset
	if dataset == "" {
		d = survey.Default()
		logger.Info("Using built-in survey dataset")
	} else {
		if d, err = survey.Load(dataset); err != nil {
			return err
		}
		logger.Infof("Loaded %s: %d interest ranges, %d satisfaction categories, %d interventions, %d barriers",
			dataset, len(d.Interest), len(d.Satisfaction), len(d.Interventions), len(d.Barriers))
	}
	logger.Debugf("Sample size: %d programs", d.SampleSize)

	total := newProgress(logger)
	for _, b := range builders {
		if err := renderFigure(ctx, b, d, th, opts); err != nil {
			return fmt.Errorf("%s: %w", b.Name, err)
		}
	}
	total.done(fmt.Sprintf("Generated %d figure(s)", len(builders)))
	return nil
}

// renderFigure builds one scene and exports it in every requested format.
func renderFigure(ctx context.Context, b figure.Builder, d *survey.Dataset, th figure.Theme, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	scene, err := b.Build(d, th)
	if err != nil {
		return err
	}
	logger.Debugf("Built %s: %d primitives", b.Name, len(scene.Prims))

	for _, format := range opts.formats {
		p := newProgress(logger)
		data, err := sink.Render(scene, th, format)
		if err != nil {
			return err
		}
		path := filepath.Join(opts.outputDir, b.Name+"."+format)
		if err := sink.Export(path, data); err != nil {
			return err
		}
		p.done("Generated " + path)
	}
	return nil
}
