package svgicon

import (
	"math"
	"strings"
	"testing"
)

const schematicSample = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="200" height="100" viewBox="0 0 200 100">
<title>sample</title>
<desc>a resistor and a dot</desc>
<rect x="0" y="0" width="200" height="100" fill="white"/>
<g stroke="#000000" stroke-width="2" fill="none" stroke-linecap="round" stroke-linejoin="round">
<path d="M10,50 L40,50 l5,-8 l10,16 l10,-16 l10,16 l5,-8 L190,50"/>
<line x1="10" y1="10" x2="10" y2="90" stroke-dasharray="4 2"/>
<polyline points="20,20 30,30 40,20"/>
<polygon points="60,20 70,30 80,20"/>
<ellipse cx="150" cy="30" rx="10" ry="5"/>
</g>
<circle cx="100" cy="50" r="3" fill="black" stroke="none"/>
<text x="100" y="30" font-size="14" text-anchor="middle" fill="black">R1</text>
<text x="100" y="90" style="font-size:11px;fill:rgb(255,0,0)">10k</text>
</svg>`

func parseIcon(t *testing.T, src string, mode ErrorMode) *SvgIcon {
	icon, errSvg := ReadIconStream(strings.NewReader(src), mode)
	if errSvg != nil {
		t.Fatal(errSvg)
	}
	return icon
}

func TestSchematicSample(t *testing.T) {
	icon := parseIcon(t, schematicSample, StrictErrorMode)
	if icon.ViewBox != (Bounds{0, 0, 200, 100}) {
		t.Errorf("unexpected view box %v", icon.ViewBox)
	}
	if len(icon.Titles) != 1 || icon.Titles[0] != "sample" {
		t.Errorf("unexpected titles %v", icon.Titles)
	}
	if len(icon.Descriptions) != 1 {
		t.Errorf("unexpected descriptions %v", icon.Descriptions)
	}
	// rect, path, line, polyline, polygon, ellipse, circle, 2 texts
	if len(icon.SVGPaths) != 9 {
		t.Fatalf("expected 9 paths, got %d", len(icon.SVGPaths))
	}
	if got := strings.Join(icon.Texts, ","); got != "R1,10k" {
		t.Errorf("unexpected texts %s", got)
	}

	resistor := icon.SVGPaths[1].Style
	if resistor.FillerColor != nil {
		t.Error("fill none should disable filling")
	}
	if resistor.LinerColor != NewPlainColor(0, 0, 0, 0xff) {
		t.Errorf("unexpected stroke %v", resistor.LinerColor)
	}
	if resistor.LineWidth != 2 || resistor.Join.TrailLineCap != RoundCap || resistor.Join.LineJoin != Round {
		t.Errorf("unexpected stroke style %v", resistor)
	}
	if dash := icon.SVGPaths[2].Style.Dash.Dash; len(dash) != 2 || dash[0] != 4 {
		t.Errorf("unexpected dash %v", dash)
	}

	label := icon.SVGPaths[7].Style
	if label.LinerColor != nil || label.FontSize != 14 {
		t.Errorf("unexpected text style %v", label)
	}
	red := icon.SVGPaths[8].Style
	if red.FillerColor != NewPlainColor(0xff, 0, 0, 0xff) || red.FontSize != 11 {
		t.Errorf("unexpected styled text %v", red)
	}
}

func TestTransform(t *testing.T) {
	icon := parseIcon(t, `<svg viewBox="0 0 10 10"><g transform="translate(5,5) scale(2)"><rect width="1" height="1"/></g></svg>`, StrictErrorMode)
	if e := icon.Extent(); e != (Bounds{5, 5, 2, 2}) {
		t.Errorf("unexpected extent %v", e)
	}
}

func TestErrorModes(t *testing.T) {
	const src = `<svg viewBox="0 0 10 10"><foo/><rect width="1" height="1"/></svg>`
	if _, err := ReadIconStream(strings.NewReader(src), StrictErrorMode); err == nil {
		t.Error("expected error for unknown element")
	}
	icon := parseIcon(t, src, IgnoreErrorMode)
	if len(icon.SVGPaths) != 1 {
		t.Errorf("expected 1 path, got %d", len(icon.SVGPaths))
	}
	if _, err := ReadIconStream(strings.NewReader(""), IgnoreErrorMode); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestInvalidValues(t *testing.T) {
	for _, src := range []string{
		`<svg><path d="M0,0 L1"/></svg>`,
		`<svg><rect width="a" height="1"/></svg>`,
		`<svg><rect width="1" height="1" fill="notacolor"/></svg>`,
		`<svg><g transform="rotate(1,2)"/></svg>`,
		`<svg viewBox="0 0 1"/>`,
	} {
		if _, err := ReadIconStream(strings.NewReader(src), IgnoreErrorMode); err == nil {
			t.Errorf("expected error for %s", src)
		}
	}
}

func TestColors(t *testing.T) {
	for v, want := range map[string]Pattern{
		"#ff0000":         NewPlainColor(0xff, 0, 0, 0xff),
		"#0F0":            NewPlainColor(0, 0xff, 0, 0xff),
		"rgb(0,0,255)":    NewPlainColor(0, 0, 0xff, 0xff),
		"rgba(0,0,0,0.5)": NewPlainColor(0, 0, 0, 0x80),
		"Navy":            NewPlainColor(0, 0, 0x80, 0xff),
		"none":            nil,
	} {
		got, err := ParseColor(v)
		if err != nil {
			t.Fatalf("parsing %s: %s", v, err)
		}
		if got != want {
			t.Errorf("ParseColor(%s) = %v, want %v", v, got, want)
		}
	}
	if s := ColorString(NewPlainColor(0xff, 0, 0, 0xff)); s != "#ff0000" {
		t.Errorf("unexpected color string %s", s)
	}
}

func TestTransformFunctions(t *testing.T) {
	for src, want := range map[string]Bounds{
		`rotate(90)`:          {-1, 0, 1, 1},
		`rotate(180, 1, 1)`:   {1, 1, 1, 1},
		`translate(3)`:        {3, 0, 1, 1},
		`scale(2, 3)`:         {0, 0, 2, 3},
		`matrix(1 0 0 1 2 2)`: {2, 2, 1, 1},
	} {
		icon := parseIcon(t, `<svg viewBox="0 0 10 10"><rect width="1" height="1" transform="`+src+`"/></svg>`, StrictErrorMode)
		got := icon.Extent()
		if math.Abs(got.X-want.X) > 1e-2 || math.Abs(got.Y-want.Y) > 1e-2 ||
			math.Abs(got.W-want.W) > 1e-2 || math.Abs(got.H-want.H) > 1e-2 {
			t.Errorf("%s: expected %v, got %v", src, want, got)
		}
	}
	for _, src := range []string{`skewx(1, 2)`, `shear(1)`, `translate`} {
		if _, err := ReadIconStream(strings.NewReader(`<svg><g transform="`+src+`"/></svg>`), IgnoreErrorMode); err == nil {
			t.Errorf("expected error for %s", src)
		}
	}
}
