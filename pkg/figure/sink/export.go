package sink

import (
	"os"

	"github.com/asp-curriculum/surveyfig/pkg/errors"
	"github.com/asp-curriculum/surveyfig/pkg/figure"
)

// Formats lists the supported output formats in default order.
var Formats = []string{"pdf", "svg", "png"}

// ValidFormat reports whether format names a supported output format.
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Render renders a scene to the named format.
func Render(s *figure.Scene, th figure.Theme, format string) ([]byte, error) {
	switch format {
	case "svg":
		return RenderSVG(s, th), nil
	case "pdf":
		return RenderPDF(s, th)
	case "png":
		return RenderPNG(s, th)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %s (must be 'pdf', 'svg', or 'png')", format)
	}
}

// Export writes rendered bytes to path. The file is written whole and
// closed on every exit path; a failure carries the EXPORT code.
func Export(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeExport, err, "create %s", path)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeExport, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeExport, err, "close %s", path)
	}
	return nil
}
