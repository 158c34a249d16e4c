package sink

import (
	"bytes"
	"testing"

	"github.com/asp-curriculum/surveyfig/pkg/figure"
	"github.com/asp-curriculum/surveyfig/pkg/survey"
)

func TestRenderPDF(t *testing.T) {
	out, err := RenderPDF(testScene(), figure.DefaultTheme())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("output does not start with %%PDF-, got %q", out[:min(len(out), 8)])
	}
}

func TestRenderPDFFullFigures(t *testing.T) {
	d := survey.Default()
	th := figure.DefaultTheme()
	for _, b := range figure.All() {
		scene, err := b.Build(d, th)
		if err != nil {
			t.Fatalf("%s: %v", b.Name, err)
		}
		out, err := RenderPDF(scene, th)
		if err != nil {
			t.Fatalf("%s: %v", b.Name, err)
		}
		if !bytes.HasPrefix(out, []byte("%PDF-")) {
			t.Errorf("%s: not a PDF", b.Name)
		}
	}
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b int
	}{
		{"#2C7BB6", 0x2C, 0x7B, 0xB6},
		{"#D7191C", 0xD7, 0x19, 0x1C},
		{"#FFFFFF", 255, 255, 255},
		{"#fff", 255, 255, 255},
		{"#abc", 0xAA, 0xBB, 0xCC},
		{"", 0, 0, 0},
		{"blue", 0, 0, 0},
		{"#GGGGGG", 0, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := hexToRGB(tt.in)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("hexToRGB(%q) = (%d,%d,%d), want (%d,%d,%d)",
				tt.in, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
