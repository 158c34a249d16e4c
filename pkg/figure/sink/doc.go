// Package sink renders figure scenes to output documents.
//
// Three formats are supported:
//   - SVG: hand-emitted vector markup; text stays text so figures remain
//     editable in vector tools
//   - PDF: native vector output via gofpdf with embedded core fonts
//   - PNG: rasterized from the SVG through rsvg-convert at the theme DPI
//
// [Render] dispatches on format; [Export] writes the resulting bytes to a
// file. Failures writing an artifact carry the EXPORT error code.
package sink
