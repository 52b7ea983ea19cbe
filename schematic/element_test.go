package schematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcoan/airsoft-suitcase/textpath"
)

func TestLeads(t *testing.T) {
	t.Parallel()

	d := New()
	long := d.Add(Resistor())
	assert.Len(t, long.shape.lines, 3, "two leads and the zigzag")

	short := d.Add(Resistor().Right(0.5))
	require.Len(t, short.shape.lines, 1, "no lead")
	// the body is centered on the element
	b := short.shape.geometry()
	assert.InDelta(t, 3.25-0.5, b.XMin, delta)
	assert.InDelta(t, 3.25+0.5, b.XMax, delta)

	line := d.Add(Line())
	assert.Len(t, line.shape.lines, 1)
	assert.Equal(t, [][]Point{{line.Start(), line.End()}}, line.Conductors())
	assert.Nil(t, long.Conductors())
}

func TestDots(t *testing.T) {
	t.Parallel()

	d := New()
	l := d.Add(Line().Dot().IDot())
	require.Len(t, l.shape.circles, 2)
	assert.Equal(t, fgFill, l.shape.circles[0].fill)
	assertPoint(t, l.End(), l.shape.circles[0].center)
	assert.Equal(t, bgFill, l.shape.circles[1].fill)
	assertPoint(t, l.Start(), l.shape.circles[1].center)
}

func TestLabelsStayUpright(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		elem   *Element
		loc    Loc
		anchor textpath.Anchor
		valign vAlign
		check  func(e *Element, pos Point) bool
	}{
		{"right top", Resistor().Right(), Top, textpath.Middle, vBottom,
			func(e *Element, p Point) bool { return p.Y > e.Start().Y }},
		{"left top", Resistor().Left(), Top, textpath.Middle, vBottom,
			func(e *Element, p Point) bool { return p.Y > e.Start().Y }},
		{"left bottom", Resistor().Left(), Bottom, textpath.Middle, vTop,
			func(e *Element, p Point) bool { return p.Y < e.Start().Y }},
		{"up top", Resistor().Up(), Top, textpath.End, vCenter,
			func(e *Element, p Point) bool { return p.X < e.Start().X }},
		{"down top", Resistor().Down(), Top, textpath.End, vCenter,
			func(e *Element, p Point) bool { return p.X < e.Start().X }},
		{"left left", Line().Left(), Left, textpath.End, vCenter,
			func(e *Element, p Point) bool { return p.X < e.End().X }},
		{"right left", Line().Right(), Left, textpath.End, vCenter,
			func(e *Element, p Point) bool { return p.X < e.Start().X }},
		{"up left", Line().Up(), Left, textpath.Middle, vTop,
			func(e *Element, p Point) bool { return p.Y < e.Start().Y }},
		{"flipped", Capacitor().Right().Flip(), Top, textpath.Middle, vBottom,
			func(e *Element, p Point) bool { return p.Y > e.Start().Y }},
		{"center", RBox(), Center, textpath.Middle, vCenter,
			func(e *Element, p Point) bool { return p.Near(e.Center(), delta) }},
	} {
		d := New()
		e := d.Add(tc.elem.Label("x", tc.loc))
		require.NoError(t, d.Err(), tc.name)
		require.Len(t, e.shape.texts, 1, tc.name)
		txt := e.shape.texts[0]
		anchor, valign := txt.align()
		assert.Equal(t, tc.anchor, anchor, tc.name)
		assert.Equal(t, tc.valign, valign, tc.name)
		assert.True(t, tc.check(e, txt.pos), tc.name)
	}
}

func TestLabelOptions(t *testing.T) {
	t.Parallel()

	d := New()
	e := d.Add(Line().Label("a\nb", Bottom, FontSize(10), LabelOffset(0.5)))
	txt := e.shape.texts[0]
	assert.Equal(t, 10., txt.fontSize(14))
	assert.InDelta(t, -0.5, txt.pos.Y, delta)
	assert.Equal(t, []string{"a", "b"}, txt.lines())
	assert.Equal(t, []string{"a\nb"}, e.Labels())

	l := txt.layout(14)
	require.Len(t, l.baselines, 2)
	assert.Greater(t, l.baselines[0], l.baselines[1], "lines go down")
	assert.Less(t, l.baselines[0], 0., "hanging below the anchor")
}

func TestHeaderAnchor(t *testing.T) {
	t.Parallel()

	d := New()
	target := Pt(4, 1)
	jp := d.Add(Header(HeaderSpec{Rows: 10, ShowNumbers: true, PinsRight: []string{"D8", "D9"}}).
		Flip().At(target).Anchor("pin6").Label("JP4", FontSize(10)))
	require.NoError(t, d.Err())

	assertPoint(t, target, jp.Pin("pin6"))
	// flipped: pin 1 at the bottom
	assertPoint(t, target.Offset(0, 0.6), jp.Pin("pin7"))
	assertPoint(t, target.Offset(0, -3), jp.Pin("pin1"))
	assert.Len(t, jp.Terminals(), 10)
	assert.Equal(t, "pin1", jp.Terminals()[0].Name)

	// the header label is above the box
	var labelPos Point
	for _, txt := range jp.shape.texts {
		if txt.text == "JP4" {
			labelPos = txt.pos
		}
	}
	assert.Greater(t, labelPos.Y, jp.Pin("pin10").Y)
}

func TestIcPins(t *testing.T) {
	t.Parallel()

	d := New()
	q := d.Add(Ic(5,
		IcPin{Name: "PB5", Pin: "19", Side: "r", Slot: "22/22"},
		IcPin{Name: "GND", Pin: "8", Side: "l", Slot: "10/22"},
		IcPin{Name: "RESET", Pin: "1", Side: "l", Slot: "22/22", Invert: true},
	).Label("ATMEGA328", Bottom))
	require.NoError(t, d.Err())

	assertPoint(t, Pt(5.5, 0.5+21*0.6), q.Pin("PB5"))
	assertPoint(t, Pt(5.5, 0.5+21*0.6), q.Pin("pin19"))
	assertPoint(t, Pt(-0.5, 0.5+9*0.6), q.Pin("GND"))
	assert.Len(t, q.shape.circles, 1, "inversion bubble")

	names := []string{}
	for _, term := range q.Terminals() {
		names = append(names, term.Name)
	}
	assert.Equal(t, []string{"PB5", "GND", "RESET"}, names)

	// auto slots
	u := d.Add(Ic(2, IcPin{Name: "A", Side: "L"}, IcPin{Name: "B", Side: "L"}).At(Pt(20, 0)))
	assert.InDelta(t, u.Pin("A").Y+0.6, u.Pin("B").Y, delta)

	for _, slot := range []string{"0/3", "a/b", "3", "4/3"} {
		_, _, err := parseSlot(slot)
		assert.ErrorIs(t, err, ErrMalformedSlot, slot)
	}
	k, n, err := parseSlot("17/22")
	require.NoError(t, err)
	assert.Equal(t, [2]int{17, 22}, [2]int{k, n})
}

func TestWires(t *testing.T) {
	t.Parallel()

	d := New()
	w := d.Add(Wire("|-").At(Pt(0, 0)).To(Pt(2, 3)))
	assert.Equal(t, [][]Point{{Pt(0, 0), Pt(0, 3), Pt(2, 3)}}, w.Conductors())
	assertPoint(t, Pt(2, 3), d.Here())

	c := d.Add(Wire("c", -1).At(Pt(0, 0)).To(Pt(2, 3)))
	assert.Equal(t, [][]Point{{Pt(0, 0), Pt(-1, 0), Pt(-1, 3), Pt(2, 3)}}, c.Conductors())

	z := d.Add(Wire("z").At(Pt(0, 0)).To(Pt(2, 3)))
	assert.Equal(t, [][]Point{{Pt(0, 0), Pt(1, 0), Pt(1, 3), Pt(2, 3)}}, z.Conductors())
	require.NoError(t, d.Err())
}

func TestOrthoLines(t *testing.T) {
	t.Parallel()

	d := New()
	o := d.Add(OrthoLines(3).At(Pt(0, 0)).To(Pt(4, 2)))
	require.NoError(t, d.Err())
	lines := o.Conductors()
	require.Len(t, lines, 3)
	for i, l := range lines {
		assertPoint(t, Pt(0, -0.6*float64(i)), l[0])
		assertPoint(t, Pt(4, 2-0.6*float64(i)), l[len(l)-1])
	}
	// rising: lower lines jog further right, so that they never cross
	assert.Less(t, lines[0][1].X, lines[1][1].X)
	assert.Less(t, lines[1][1].X, lines[2][1].X)
	assertPoint(t, lines[2][0], o.Pin("start3"))

	flat := d.Add(OrthoLines(2).At(Pt(0, 10)).To(Pt(4, 10)))
	assert.Len(t, flat.Conductors()[1], 2)
}

func TestReverse(t *testing.T) {
	t.Parallel()

	d := New()
	led := d.Add(LED().Right(1))
	rev := d.Add(LED().Right(1).Reverse())
	// the triangle base is at the start, or at the end once reversed
	base := led.shape.lines[2].points[0]
	revBase := rev.shape.lines[2].points[0]
	assert.InDelta(t, led.Start().X+0.275, base.X, delta)
	assert.InDelta(t, rev.End().X-0.275, revBase.X, delta)
	assertPoint(t, Pt(1, 0), rev.Start())
}
