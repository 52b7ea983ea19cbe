package svgicon

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestStrokeOptions(t *testing.T) {
	st := DefaultStyle
	st.LineWidth = 2
	st.Dash = DashOptions{Dash: []float64{4, 2}, DashOffset: 1}
	st.Join.TrailLineCap = RoundCap

	opts := st.strokeOptions(scaleFactor(Identity.Scale(3, 3)))
	if opts.LineWidth != fixed.Int26_6(6*64) {
		t.Errorf("unexpected line width %v", opts.LineWidth)
	}
	if d := opts.Dash; len(d.Dash) != 2 || d.Dash[0] != 12 || d.Dash[1] != 6 || d.DashOffset != 3 {
		t.Errorf("unexpected dash %v", d)
	}
	if st.Dash.Dash[0] != 4 {
		t.Error("style dash modified")
	}
	if opts.Join.LeadLineCap != RoundCap || opts.Join.LineGap != FlatGap {
		t.Errorf("unexpected join %v", opts.Join)
	}

	st.Join.TrailLineCap = NilCap
	st.Join.LeadLineCap = SquareCap
	opts = st.strokeOptions(1)
	if opts.Join.TrailLineCap != ButtCap || opts.Join.LeadLineCap != SquareCap {
		t.Errorf("unexpected caps %v", opts.Join)
	}
}

type countingDriver struct {
	fills, strokes int
}

func (d *countingDriver) SetupDrawers(willFill, willStroke bool) (Filler, Stroker) {
	if willFill {
		d.fills++
	}
	if willStroke {
		d.strokes++
	}
	return nil, nil
}

func TestDrawSetup(t *testing.T) {
	icon := parseIcon(t, schematicSample, StrictErrorMode)
	var d countingDriver
	icon.Draw(&d, 1)
	// the white background, the dot and the two texts are filled
	if d.fills != 4 {
		t.Errorf("expected 4 filled paths, got %d", d.fills)
	}
	// only the five group members are stroked
	if d.strokes != 5 {
		t.Errorf("expected 5 stroked paths, got %d", d.strokes)
	}
}
