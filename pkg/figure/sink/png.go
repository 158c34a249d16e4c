package sink

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/asp-curriculum/surveyfig/pkg/errors"
	"github.com/asp-curriculum/surveyfig/pkg/figure"
)

// svgBaseDPI is the CSS pixel density SVG user units are defined against.
const svgBaseDPI = 96.0

// RenderPNG renders a scene as PNG by rasterizing its SVG form through
// rsvg-convert, scaled so the output matches the theme DPI.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(s *figure.Scene, th figure.Theme) ([]byte, error) {
	svg := RenderSVG(s, th)
	return rsvgConvert(svg, "png", "-z", fmt.Sprintf("%.2f", th.DPI/svgBaseDPI))
}

// rsvgConvert shells out to rsvg-convert for format conversion.
func rsvgConvert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, errors.New(errors.ErrCodeExport,
			"%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.Command("rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeExport, err, "rsvg-convert: %s", errBuf.String())
	}
	return out.Bytes(), nil
}
