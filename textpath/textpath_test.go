package textpath

import (
	"math"
	"testing"
)

func TestMeasure(t *testing.T) {
	if w := Measure("", 14); w != 0 {
		t.Errorf("empty text should have no width, got %f", w)
	}
	short, long := Measure("R1", 14), Measure("R1 220Ω", 14)
	if short <= 0 || long <= short {
		t.Errorf("unexpected widths %f %f", short, long)
	}
	// advance scales linearly with the size
	if d := math.Abs(Measure("GND", 28) - 2*Measure("GND", 14)); d > 0.5 {
		t.Errorf("measure is not proportional to size (delta %f)", d)
	}
}

func TestOutlineAnchor(t *testing.T) {
	for _, anchor := range []Anchor{Start, Middle, End} {
		p, err := Outline("Vin", 100, 50, 14, anchor)
		if err != nil {
			t.Fatal(err)
		}
		if len(p) == 0 {
			t.Fatal("empty outline")
		}
		b := p.Bounds()
		minX, maxX := float64(b.Min.X)/64, float64(b.Max.X)/64
		switch anchor {
		case Start:
			if minX < 99 {
				t.Errorf("start anchored text begins at %f", minX)
			}
		case Middle:
			if minX > 100 || maxX < 100 {
				t.Errorf("middle anchored text spans [%f, %f]", minX, maxX)
			}
		case End:
			if maxX > 101 {
				t.Errorf("end anchored text ends at %f", maxX)
			}
		}
		// glyphs sit on the baseline, above it in a y-down system
		if float64(b.Min.Y)/64 >= 50 {
			t.Errorf("glyphs should extend above the baseline: %v", b)
		}
	}
}

func TestParseAnchor(t *testing.T) {
	for s, want := range map[string]Anchor{"start": Start, "middle": Middle, "end": End, "": Start} {
		if got := ParseAnchor(s); got != want {
			t.Errorf("ParseAnchor(%q) = %s, want %s", s, got, want)
		}
	}
}

func TestMetrics(t *testing.T) {
	a, d := Metrics(14)
	if a <= 0 || d <= 0 || a+d > 2*14 {
		t.Errorf("unexpected metrics %f %f", a, d)
	}
}
