package sink

import (
	"bytes"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/asp-curriculum/surveyfig/pkg/errors"
	"github.com/asp-curriculum/surveyfig/pkg/figure"
)

// RenderPDF renders a scene as a single-page vector PDF. Scene units map
// 1:1 to PDF points. Text is written with the embedded Helvetica core
// font so it stays selectable and editable.
func RenderPDF(s *figure.Scene, th figure.Theme) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: s.Width, Ht: s.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, p := range s.Prims {
		switch p := p.(type) {
		case figure.Rect:
			pdfRect(pdf, p)
		case figure.Line:
			pdfLine(pdf, p)
		case figure.Marker:
			pdfMarker(pdf, p)
		case figure.Polygon:
			pdfPolygon(pdf, p)
		case figure.Text:
			pdfText(pdf, p, tr)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeExport, err, "render PDF %s", s.Name)
	}
	return buf.Bytes(), nil
}

func pdfRect(pdf *gofpdf.Fpdf, r figure.Rect) {
	style := setShapeColors(pdf, r.Fill, r.Stroke, r.StrokeWidth)
	if style == "" {
		return
	}
	if r.Corner > 0 {
		pdf.RoundedRect(r.X, r.Y, r.W, r.H, r.Corner, "1234", style)
		return
	}
	pdf.Rect(r.X, r.Y, r.W, r.H, style)
}

func pdfLine(pdf *gofpdf.Fpdf, l figure.Line) {
	red, g, b := hexToRGB(l.Color)
	pdf.SetDrawColor(red, g, b)
	pdf.SetLineWidth(l.Width)
	if l.Dashed {
		pdf.SetDashPattern([]float64{4, 3}, 0)
		defer pdf.SetDashPattern([]float64{}, 0)
	}
	pdf.Line(l.X1, l.Y1, l.X2, l.Y2)
}

func pdfMarker(pdf *gofpdf.Fpdf, m figure.Marker) {
	style := setShapeColors(pdf, m.Fill, m.Stroke, m.StrokeWidth)
	if style == "" {
		return
	}
	pdf.Circle(m.X, m.Y, m.R, style)
}

func pdfPolygon(pdf *gofpdf.Fpdf, p figure.Polygon) {
	pts := make([]gofpdf.PointType, 0, len(p.Points)/2)
	for i := 0; i+1 < len(p.Points); i += 2 {
		pts = append(pts, gofpdf.PointType{X: p.Points[i], Y: p.Points[i+1]})
	}
	red, g, b := hexToRGB(p.Fill)
	pdf.SetFillColor(red, g, b)
	pdf.Polygon(pts, "F")
}

func pdfText(pdf *gofpdf.Fpdf, t figure.Text, tr func(string) string) {
	style := ""
	if t.Bold {
		style += "B"
	}
	if t.Italic {
		style += "I"
	}
	pdf.SetFont("Helvetica", style, t.Size)

	red, g, b := 0, 0, 0
	if t.Color != "" {
		red, g, b = hexToRGB(t.Color)
	}
	pdf.SetTextColor(red, g, b)

	content := tr(t.Content)
	x := t.X
	switch t.Anchor {
	case figure.AnchorMiddle:
		x -= pdf.GetStringWidth(content) / 2
	case figure.AnchorEnd:
		x -= pdf.GetStringWidth(content)
	}
	pdf.Text(x, t.Y, content)
}

// setShapeColors configures fill/stroke state and returns the gofpdf
// draw style string, or "" when the shape has neither fill nor stroke.
func setShapeColors(pdf *gofpdf.Fpdf, fill, stroke string, strokeWidth float64) string {
	style := ""
	if fill != "" {
		r, g, b := hexToRGB(fill)
		pdf.SetFillColor(r, g, b)
		style += "F"
	}
	if stroke != "" {
		r, g, b := hexToRGB(stroke)
		pdf.SetDrawColor(r, g, b)
		pdf.SetLineWidth(strokeWidth)
		style += "D"
	}
	return style
}

// hexToRGB parses #RGB or #RRGGBB into 8-bit components. Invalid input
// yields black, matching how browsers treat unparseable colors.
func hexToRGB(c string) (int, int, int) {
	if len(c) == 4 && c[0] == '#' {
		c = "#" + string(c[1]) + string(c[1]) + string(c[2]) + string(c[2]) + string(c[3]) + string(c[3])
	}
	if len(c) != 7 || c[0] != '#' {
		return 0, 0, 0
	}
	r, err1 := strconv.ParseUint(c[1:3], 16, 8)
	g, err2 := strconv.ParseUint(c[3:5], 16, 8)
	b, err3 := strconv.ParseUint(c[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0
	}
	return int(r), int(g), int(b)
}
