package figure

// Anchor controls horizontal text alignment relative to the text position.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Prim is a drawing primitive. The concrete types are Rect, Line, Marker,
// Polygon, and Text.
type Prim interface{ prim() }

// Rect is an axis-aligned rectangle. X/Y is the top-left corner.
type Rect struct {
	X, Y, W, H  float64
	Fill        string  // fill color, empty for none
	Stroke      string  // stroke color, empty for none
	StrokeWidth float64 // ignored when Stroke is empty
	Corner      float64 // corner radius, 0 for square corners
}

// Line is a straight stroke between two points.
type Line struct {
	X1, Y1, X2, Y2 float64
	Color          string
	Width          float64
	Dashed         bool
}

// Marker is a filled circle, optionally stroked.
type Marker struct {
	X, Y, R     float64
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// Polygon is a filled closed shape. Points holds x,y pairs.
type Polygon struct {
	Points []float64
	Fill   string
}

// Text is a single line of text. Y is the baseline.
type Text struct {
	X, Y    float64
	Content string
	Size    float64
	Color   string
	Bold    bool
	Italic  bool
	Anchor  Anchor
}

func (Rect) prim()    {}
func (Line) prim()    {}
func (Marker) prim()  {}
func (Polygon) prim() {}
func (Text) prim()    {}

// Scene is one complete figure: a fixed canvas plus its primitives in
// paint order.
type Scene struct {
	Name          string // artifact base name, e.g. "Figure3_Barriers"
	Width, Height float64
	Prims         []Prim
}

func (s *Scene) add(p ...Prim) {
	s.Prims = append(s.Prims, p...)
}

// axis linearly maps a data interval [Min, Max] onto a scene interval
// [P0, P1].
type axis struct {
	Min, Max float64
	P0, P1   float64
}

// pos returns the scene coordinate of data value v.
func (a axis) pos(v float64) float64 {
	return a.P0 + (v-a.Min)/(a.Max-a.Min)*(a.P1-a.P0)
}

// span returns the scene length of a data interval of size w.
func (a axis) span(w float64) float64 {
	return w / (a.Max - a.Min) * (a.P1 - a.P0)
}
