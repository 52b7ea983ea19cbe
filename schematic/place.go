package schematic

import (
	"fmt"
	"math"

	"github.com/rcoan/airsoft-suitcase/svgpath"
)

const (
	tolerance = 1e-9
	dotRadius = 0.075
)

// place computes the world geometry of e, starting from the state
// of d, and moves the cursor of d.
func (e *Element) place(d *Drawing) error {
	if e.err != nil {
		return e.err
	}
	start := d.here
	if e.at != nil {
		start = *e.at
	}
	var err error
	switch e.cat {
	case twoTerminal:
		err = e.placeTwoTerminal(d, start)
	case oneTerminal, block:
		err = e.placeBlock(start)
	case routed:
		err = e.placeRouted(start)
	}
	if err != nil {
		return err
	}

	if e.dot {
		e.shape.circle(e.end, dotRadius, fgFill)
	}
	if e.idot {
		e.shape.circle(e.start, dotRadius, bgFill)
	}
	e.placed = true

	if !e.hold {
		d.here = e.end
		if e.cat == twoTerminal {
			d.theta = e.dir
		}
	}
	return nil
}

// target resolves To, ToX and ToY against start.
func (e *Element) target(start Point) (Point, bool) {
	switch {
	case e.to != nil:
		return *e.to, true
	case e.toX != nil:
		return Pt(e.toX.X, start.Y), true
	case e.toY != nil:
		return Pt(start.X, e.toY.Y), true
	}
	return Point{}, false
}

// matrix maps local coordinates to the drawing, for an element
// pointing to dir and starting at origin.
func (e *Element) matrix(dir float64, origin Point) svgpath.Matrix2D {
	m := svgpath.Identity.Translate(origin.X, origin.Y).Mult(rotation(dir)).Scale(e.scale, e.scale)
	if e.flip {
		m = m.Scale(1, -1)
	}
	if e.reverse && e.cat == block {
		m = m.Scale(-1, 1)
	}
	return m
}

// align moves start so that the requested anchor lands on it.
func (e *Element) align(start Point, dir float64, anchors map[string]Point) (Point, error) {
	if e.anchor == "" {
		return start, nil
	}
	a, ok := anchors[e.anchor]
	if !ok {
		return start, fmt.Errorf("%s: %w %q", e.kind, ErrUnknownAnchor, e.anchor)
	}
	return start.Sub(a.transform(linear(e.matrix(dir, Point{})))), nil
}

func (e *Element) placeTwoTerminal(d *Drawing, start Point) error {
	dir := d.theta
	if e.hasTheta {
		dir = e.theta
	}
	length := d.cfg.Unit
	if e.length > 0 {
		length = e.length
	}
	if target, ok := e.target(start); ok {
		delta := target.Sub(start)
		dist := math.Hypot(delta.X, delta.Y)
		if dist < tolerance {
			return fmt.Errorf("%s: %w", e.kind, ErrZeroLength)
		}
		dir = math.Atan2(delta.Y, delta.X) * 180 / math.Pi
		length = dist / e.scale
	}
	dir = normDeg(dir)

	local := map[string]Point{
		"start":  {},
		"end":    Pt(length, 0),
		"center": Pt(length/2, 0),
	}
	start, err := e.align(start, dir, local)
	if err != nil {
		return err
	}

	var s shape
	if e.bodyLen == 0 {
		s.line(Pt(0, 0), Pt(length, 0))
	} else {
		lead := (length - e.bodyLen) / 2
		if lead > 0 {
			s.line(Pt(0, 0), Pt(lead, 0))
			s.line(Pt(lead+e.bodyLen, 0), Pt(length, 0))
		}
		body := e.body
		if e.reverse {
			body = body.mirrorX(e.bodyLen)
		}
		s.append(body.translate(lead, 0))
	}

	m := e.matrix(dir, start)
	e.dir = dir
	e.setAnchors(local, m)
	e.start, e.end, e.center = e.anchors["start"], e.anchors["end"], e.anchors["center"]
	e.shape = s.transform(m)
	e.addLabels(m, s.geometry(), Pt(length/2, 0))
	if e.kind == KindLine {
		e.conductors = [][]Point{{e.start, e.end}}
	}
	return nil
}

func (e *Element) placeBlock(start Point) error {
	dir := 0.
	if e.cat == block && e.hasTheta {
		dir = normDeg(e.theta)
	}
	start, err := e.align(start, dir, e.localAnchors)
	if err != nil {
		return err
	}
	m := e.matrix(dir, start)
	e.dir = dir
	e.setAnchors(e.localAnchors, m)
	e.start, e.end = start, start

	geom := e.local.geometry()
	center := Point{}
	if e.cat == block {
		center = geom.Center()
	}
	e.center = center.transform(m)
	e.anchors["center"] = e.center
	e.shape = e.local.transform(m)
	e.addLabels(m, geom, center)
	if e.kind == KindDot {
		e.conductors = [][]Point{{e.start}}
	}
	return nil
}

func (e *Element) placeRouted(start Point) error {
	end, ok := e.target(start)
	if !ok {
		return fmt.Errorf("%s: %w", e.kind, ErrMissingTarget)
	}
	if end.Dist(start) < tolerance {
		return fmt.Errorf("%s: %w", e.kind, ErrZeroLength)
	}
	if e.anchor != "" && e.anchor != "start" {
		return fmt.Errorf("%s: %w %q", e.kind, ErrUnknownAnchor, e.anchor)
	}

	var err error
	if e.kind == KindOrthoLines {
		e.conductors = orthoLines(start, end, e.orthoN)
	} else {
		var pts []Point
		pts, err = wirePoints(e.wireShape, start, end, e.wireK)
		e.conductors = [][]Point{pts}
	}
	if err != nil {
		return err
	}

	var s shape
	for _, pts := range e.conductors {
		s.line(pts...)
	}
	e.dir = normDeg(math.Atan2(end.Y-start.Y, end.X-start.X) * 180 / math.Pi)
	e.start, e.end, e.center = start, end, Pt((start.X+end.X)/2, (start.Y+end.Y)/2)
	e.anchors = map[string]Point{"start": start, "end": end, "center": e.center}
	for i, pts := range e.conductors {
		if len(e.conductors) > 1 {
			e.anchors[fmt.Sprintf("start%d", i+1)] = pts[0]
			e.anchors[fmt.Sprintf("end%d", i+1)] = pts[len(pts)-1]
		}
	}
	e.shape = s
	e.addLabels(svgpath.Identity, s.geometry(), e.center)
	return nil
}

func (e *Element) setAnchors(local map[string]Point, m svgpath.Matrix2D) {
	e.anchors = make(map[string]Point, len(local)+1)
	for name, p := range local {
		e.anchors[name] = p.transform(m)
	}
}

// labelSide returns the anchor point and outward direction, in local
// coordinates, of the side of geom which is seen at loc once
// transformed by m.
func labelSide(loc Loc, m svgpath.Matrix2D, geom BBox, center Point) (Point, Point) {
	lin := linear(m)
	pick := func(a, b [2]Point, score func(Point) float64) [2]Point {
		if score(unit(a[1].transform(lin))) >= score(unit(b[1].transform(lin))) {
			return a
		}
		return b
	}
	upness := func(p Point) float64 { return p.Y - 0.5*p.X }
	rightness := func(p Point) float64 { return p.X + 0.5*p.Y }
	top := [2]Point{Pt(center.X, geom.YMax), Pt(0, 1)}
	bottom := [2]Point{Pt(center.X, geom.YMin), Pt(0, -1)}
	left := [2]Point{Pt(geom.XMin, center.Y), Pt(-1, 0)}
	right := [2]Point{Pt(geom.XMax, center.Y), Pt(1, 0)}

	var side [2]Point
	switch loc {
	case Top:
		side = pick(top, bottom, upness)
	case Bottom:
		side = pick(top, bottom, func(p Point) float64 { return -upness(p) })
	case Left:
		side = pick(left, right, func(p Point) float64 { return -rightness(p) })
	case Right:
		side = pick(left, right, rightness)
	default:
		side = [2]Point{center, {}}
	}
	return side[0], side[1]
}

// addLabels positions the labels around the local geometry, upright
// whatever the element orientation.
func (e *Element) addLabels(m svgpath.Matrix2D, geom BBox, center Point) {
	if geom.IsEmpty() {
		geom = BBox{center.X, center.Y, center.X, center.Y}
	}
	lin := linear(m)
	for _, lb := range e.labels {
		p, dir := labelSide(lb.loc, m, geom, center)
		worldDir := unit(dir.transform(lin))
		pos := p.transform(m).Add(worldDir.Scale(lb.offset))
		e.shape.texts = append(e.shape.texts, text{text: lb.text, pos: pos, dir: worldDir, size: lb.size})
	}
}

// wirePoints returns the corners of a wire of the given shape,
// from start to end.
func wirePoints(shape string, start, end Point, k float64) ([]Point, error) {
	switch shape {
	case "", "-":
		return []Point{start, end}, nil
	case "|-":
		return []Point{start, Pt(start.X, end.Y), end}, nil
	case "-|":
		return []Point{start, Pt(end.X, start.Y), end}, nil
	case "z":
		mid := start.X + (end.X-start.X)*k
		return []Point{start, Pt(mid, start.Y), Pt(mid, end.Y), end}, nil
	case "N":
		mid := start.Y + (end.Y-start.Y)*k
		return []Point{start, Pt(start.X, mid), Pt(end.X, mid), end}, nil
	case "c":
		x := start.X + k
		return []Point{start, Pt(x, start.Y), Pt(x, end.Y), end}, nil
	case "n":
		y := start.Y + k
		return []Point{start, Pt(start.X, y), Pt(end.X, y), end}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrWireShape, shape)
}

const orthoSpacing = 0.6

// orthoLines returns n parallel lines, stacked downward from start and
// end, each with a vertical jog placed so that the lines never cross.
func orthoLines(start, end Point, n int) [][]Point {
	dx, dy := end.X-start.X, end.Y-start.Y
	out := make([][]Point, n)
	for i := range out {
		s, e := start.Offset(0, -float64(i)*orthoSpacing), end.Offset(0, -float64(i)*orthoSpacing)
		if math.Abs(dy) < tolerance {
			out[i] = []Point{s, e}
			continue
		}
		t := 0.5
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		// lower lines turn later when rising, earlier when falling
		if dy < 0 {
			t = 1 - t
		}
		x := start.X + dx*(0.25+0.5*t)
		out[i] = []Point{s, Pt(x, s.Y), Pt(x, e.Y), e}
	}
	return out
}
