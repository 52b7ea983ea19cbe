package svgpath

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestCompileCommands(t *testing.T) {
	for _, d := range []string{
		"M0,0 L10,10 Z",
		"m1 1 l2 2 h3 v-4 z",
		"M0 0 C1 1 2 2 3 3 S5 5 6 6",
		"M0 0 Q1 1 2 0 T4 0",
		"M10,10 a5,5 0 1 0 10,0",
		"M0,0 A5,5 0 0110,0",
		"M.5-.5L1e1,2E-1",
		"M0 0 1 1 2 2",
	} {
		p, err := Compile(d)
		if err != nil {
			t.Fatalf("compiling %q: %s", d, err)
		}
		if len(p) == 0 {
			t.Errorf("empty path for %q", d)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	for _, d := range []string{
		"L0,0",
		"M0",
		"M0,0 L1",
		"M0,0 C1,1 2,2",
		"M0,0 Z 3",
		"M0,0 X1,1",
	} {
		if _, err := Compile(d); err == nil {
			t.Errorf("expected error for %q", d)
		}
	}
}

func TestCompileRelative(t *testing.T) {
	p, err := Compile("m10 10 l5 0 v5 h-5 z")
	if err != nil {
		t.Fatal(err)
	}
	want := Path{
		MoveTo(toFixedP(10, 10)),
		LineTo(toFixedP(15, 10)),
		LineTo(toFixedP(15, 15)),
		LineTo(toFixedP(10, 15)),
		Close{},
	}
	if p.String() != want.String() {
		t.Fatalf("expected %s, got %s", want, p)
	}
}

func TestSmoothReflection(t *testing.T) {
	p, err := Compile("M0 0 C0 1 1 1 1 0 S2 -1 2 0")
	if err != nil {
		t.Fatal(err)
	}
	second, ok := p[2].(CubicTo)
	if !ok {
		t.Fatalf("expected cubic, got %T", p[2])
	}
	if second[0] != toFixedP(1, -1) {
		t.Errorf("unexpected reflected control point %v", second[0])
	}
}

func TestArcEndsOnTarget(t *testing.T) {
	p, err := Compile("M0 0 A10 10 0 0 1 20 0")
	if err != nil {
		t.Fatal(err)
	}
	last, ok := p[len(p)-1].(CubicTo)
	if !ok {
		t.Fatalf("expected cubic, got %T", p[len(p)-1])
	}
	if last[2] != toFixedP(20, 0) {
		t.Errorf("arc ends at %v", last[2])
	}
	// sweep 1 goes through negative y in a y-down system
	if b := p.Bounds(); b.Min.Y > -fixed.I(9) {
		t.Errorf("unexpected arc bounds %v", b)
	}
}

func TestParseNumbers(t *testing.T) {
	got, err := ParseNumbers("1,2 3-4.5.5e1")
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, 2, 3, -4.5, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
		}
	}
}

func TestMatrix(t *testing.T) {
	m := Identity.Translate(10, 0).Scale(2, 2)
	x, y := m.Transform(1, 1)
	if x != 12 || y != 2 {
		t.Errorf("unexpected transform (%f, %f)", x, y)
	}
	x, y = m.Invert().Transform(x, y)
	if x != 1 || y != 1 {
		t.Errorf("unexpected inverse (%f, %f)", x, y)
	}
}

func TestShapes(t *testing.T) {
	var p Path
	p.AddRect(0, 0, 10, 5, 0)
	if b := p.Bounds(); b.Max != toFixedP(10, 5) || b.Min != toFixedP(0, 0) {
		t.Errorf("unexpected rect bounds %v", b)
	}
	p.Clear()
	p.AddEllipse(5, 5, 2, 3)
	if b := p.Bounds(); b.Max != toFixedP(7, 8) || b.Min != toFixedP(3, 2) {
		t.Errorf("unexpected ellipse bounds %v", b)
	}
	p.Clear()
	p.AddRoundRect(0, 0, 10, 10, 2, 2, 0)
	if _, ok := p[len(p)-1].(Close); !ok {
		t.Error("round rect should be closed")
	}
}

func TestTightBounds(t *testing.T) {
	p, err := Compile("M0 0 Q5 10 10 0")
	if err != nil {
		t.Fatal(err)
	}
	if b := p.Bounds(); b.Max.Y != fixed.I(10) {
		t.Errorf("control polygon should reach 10, got %v", b)
	}
	b := p.TightBounds()
	if b.Max.Y != fixed.I(5) || b.Min.X != 0 || b.Max.X != fixed.I(10) {
		t.Errorf("unexpected tight bounds %v", b)
	}
	if (Path{}).TightBounds() != (fixed.Rectangle26_6{}) {
		t.Error("empty path should have empty bounds")
	}
}
