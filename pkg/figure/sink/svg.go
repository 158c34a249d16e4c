package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/asp-curriculum/surveyfig/pkg/figure"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// RenderSVG renders a scene as standalone SVG markup. Primitives are
// emitted in paint order; text is kept as text rather than outlined.
func RenderSVG(s *figure.Scene, th figure.Theme) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.Width, s.Height, s.Width, s.Height)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="#FFFFFF"/>`+"\n", s.Width, s.Height)

	for _, p := range s.Prims {
		switch p := p.(type) {
		case figure.Rect:
			renderRect(&buf, p)
		case figure.Line:
			renderLine(&buf, p)
		case figure.Marker:
			renderMarker(&buf, p)
		case figure.Polygon:
			renderPolygon(&buf, p)
		case figure.Text:
			renderText(&buf, p, th)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderRect(buf *bytes.Buffer, r figure.Rect) {
	fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"`, r.X, r.Y, r.W, r.H)
	if r.Corner > 0 {
		fmt.Fprintf(buf, ` rx="%.1f"`, r.Corner)
	}
	fmt.Fprintf(buf, ` fill="%s"`, fillOrNone(r.Fill))
	if r.Stroke != "" {
		fmt.Fprintf(buf, ` stroke="%s" stroke-width="%.2f"`, r.Stroke, r.StrokeWidth)
	}
	buf.WriteString("/>\n")
}

func renderLine(buf *bytes.Buffer, l figure.Line) {
	fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"`,
		l.X1, l.Y1, l.X2, l.Y2, l.Color, l.Width)
	if l.Dashed {
		buf.WriteString(` stroke-dasharray="6,4"`)
	}
	buf.WriteString("/>\n")
}

func renderMarker(buf *bytes.Buffer, m figure.Marker) {
	fmt.Fprintf(buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"`, m.X, m.Y, m.R, fillOrNone(m.Fill))
	if m.Stroke != "" {
		fmt.Fprintf(buf, ` stroke="%s" stroke-width="%.2f"`, m.Stroke, m.StrokeWidth)
	}
	buf.WriteString("/>\n")
}

func renderPolygon(buf *bytes.Buffer, p figure.Polygon) {
	buf.WriteString(`  <polygon points="`)
	for i := 0; i+1 < len(p.Points); i += 2 {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%.2f,%.2f", p.Points[i], p.Points[i+1])
	}
	fmt.Fprintf(buf, `" fill="%s"/>`+"\n", fillOrNone(p.Fill))
}

func renderText(buf *bytes.Buffer, t figure.Text, th figure.Theme) {
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.1f"`,
		t.X, t.Y, th.FontFamily, t.Size)
	if anchor := t.Anchor; anchor != "" && anchor != figure.AnchorStart {
		fmt.Fprintf(buf, ` text-anchor="%s"`, anchor)
	}
	if t.Bold {
		buf.WriteString(` font-weight="bold"`)
	}
	if t.Italic {
		buf.WriteString(` font-style="italic"`)
	}
	if t.Color != "" {
		fmt.Fprintf(buf, ` fill="%s"`, t.Color)
	}
	fmt.Fprintf(buf, ">%s</text>\n", xmlEscaper.Replace(t.Content))
}

func fillOrNone(c string) string {
	if c == "" {
		return "none"
	}
	return c
}
