package schematic

import (
	"math"
	"strings"

	"github.com/rcoan/airsoft-suitcase/svgpath"
	"github.com/rcoan/airsoft-suitcase/textpath"
)

// fillMode selects how closed shapes and circles are painted.
type fillMode uint8

const (
	noFill fillMode = iota
	fgFill          // drawing color
	bgFill          // white, hiding what is below
)

type polyline struct {
	points []Point
	closed bool
	fill   fillMode
}

type circle struct {
	center Point
	radius float64
	fill   fillMode
}

// text is a label anchored at pos. dir points away from the
// labelled geometry, and decides the alignment once transformed:
// a text to the right of its anchor starts there, a text above it
// sits on it, and so on. A zero dir centers the text.
type text struct {
	text string
	pos  Point
	dir  Point
	size float64 // in points, 0 means the drawing font size
	rel  float64 // fraction of the drawing font size, when size is 0
}

// shape groups the primitives of an element.
type shape struct {
	lines   []polyline
	circles []circle
	texts   []text
}

func (s *shape) line(points ...Point) {
	s.lines = append(s.lines, polyline{points: points})
}

func (s *shape) polygon(fill fillMode, points ...Point) {
	s.lines = append(s.lines, polyline{points: points, closed: true, fill: fill})
}

func (s *shape) rect(x0, y0, x1, y1 float64, fill fillMode) {
	s.polygon(fill, Pt(x0, y0), Pt(x1, y0), Pt(x1, y1), Pt(x0, y1))
}

func (s *shape) circle(c Point, r float64, fill fillMode) {
	s.circles = append(s.circles, circle{center: c, radius: r, fill: fill})
}

func (s *shape) label(t string, pos, dir Point, rel float64) {
	s.texts = append(s.texts, text{text: t, pos: pos, dir: dir, rel: rel})
}

func (s *shape) append(o shape) {
	s.lines = append(s.lines, o.lines...)
	s.circles = append(s.circles, o.circles...)
	s.texts = append(s.texts, o.texts...)
}

// apply returns a copy of s with every point transformed by f.
// Directions go through dirF.
func (s shape) apply(f, dirF func(Point) Point, radius float64) shape {
	var out shape
	for _, l := range s.lines {
		pts := make([]Point, len(l.points))
		for i, p := range l.points {
			pts[i] = f(p)
		}
		out.lines = append(out.lines, polyline{points: pts, closed: l.closed, fill: l.fill})
	}
	for _, c := range s.circles {
		out.circles = append(out.circles, circle{center: f(c.center), radius: c.radius * radius, fill: c.fill})
	}
	for _, t := range s.texts {
		t.pos, t.dir = f(t.pos), dirF(t.dir)
		out.texts = append(out.texts, t)
	}
	return out
}

// transform maps s through m. Circles stay round, with their radius
// scaled by the mean scaling of m.
func (s shape) transform(m svgpath.Matrix2D) shape {
	lin := linear(m)
	scale := math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
	return s.apply(
		func(p Point) Point { return p.transform(m) },
		func(p Point) Point { return unit(p.transform(lin)) },
		scale)
}

func (s shape) translate(dx, dy float64) shape {
	return s.apply(
		func(p Point) Point { return p.Offset(dx, dy) },
		func(p Point) Point { return p },
		1)
}

// mirrorX mirrors s around the vertical line x = length/2.
func (s shape) mirrorX(length float64) shape {
	return s.apply(
		func(p Point) Point { return Pt(length-p.X, p.Y) },
		func(p Point) Point { return Pt(-p.X, p.Y) },
		1)
}

// geometry returns the extent of the lines and circles, ignoring texts.
func (s shape) geometry() BBox {
	b := emptyBBox()
	for _, l := range s.lines {
		for _, p := range l.points {
			b = b.addPoint(p)
		}
	}
	for _, c := range s.circles {
		b = b.addPoint(c.center.Offset(-c.radius, -c.radius))
		b = b.addPoint(c.center.Offset(c.radius, c.radius))
	}
	return b
}

func unit(p Point) Point {
	n := math.Hypot(p.X, p.Y)
	if n == 0 {
		return p
	}
	return Pt(snap(p.X/n), snap(p.Y/n))
}

type vAlign uint8

const (
	vCenter vAlign = iota
	vTop           // the anchor is at the top of the text
	vBottom        // the anchor is at the bottom of the text
)

// align derives the alignment of a text from its direction.
func (t text) align() (textpath.Anchor, vAlign) {
	switch {
	case t.dir.X == 0 && t.dir.Y == 0:
		return textpath.Middle, vCenter
	case math.Abs(t.dir.X) >= math.Abs(t.dir.Y):
		if t.dir.X > 0 {
			return textpath.Start, vCenter
		}
		return textpath.End, vCenter
	case t.dir.Y > 0:
		return textpath.Middle, vBottom
	default:
		return textpath.Middle, vTop
	}
}

func (t text) lines() []string { return strings.Split(t.text, "\n") }

// fontSize resolves the text size against the drawing font size.
func (t text) fontSize(base float64) float64 {
	if t.size > 0 {
		return t.size
	}
	if t.rel > 0 {
		return base * t.rel
	}
	return base
}

// textLayout is the position of each line of a text, in points
// relative to the text anchor, with the y axis pointing up.
type textLayout struct {
	size      float64
	anchor    textpath.Anchor
	width     float64 // of the longest line
	top       float64
	height    float64
	baselines []float64
}

func (t text) layout(base float64) textLayout {
	size := t.fontSize(base)
	anchor, valign := t.align()
	ascent, descent := textpath.Metrics(size)
	lineHeight := ascent + descent
	lines := t.lines()
	out := textLayout{size: size, anchor: anchor, height: lineHeight * float64(len(lines))}
	for _, line := range lines {
		out.width = math.Max(out.width, textpath.Measure(line, size))
	}
	switch valign {
	case vTop:
		out.top = 0
	case vBottom:
		out.top = out.height
	default:
		out.top = out.height / 2
	}
	for i := range lines {
		out.baselines = append(out.baselines, out.top-ascent-float64(i)*lineHeight)
	}
	return out
}

// box returns the extent of the text in drawing units.
func (t text) box(base, pointsPerUnit float64) BBox {
	l := t.layout(base)
	w, h, top := l.width/pointsPerUnit, l.height/pointsPerUnit, l.top/pointsPerUnit
	x0 := t.pos.X
	switch l.anchor {
	case textpath.Middle:
		x0 -= w / 2
	case textpath.End:
		x0 -= w
	}
	return BBox{x0, t.pos.Y + top - h, x0 + w, t.pos.Y + top}
}
