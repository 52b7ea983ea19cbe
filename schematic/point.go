package schematic

import (
	"math"

	"github.com/rcoan/airsoft-suitcase/svgpath"
)

// Point is a position in drawing units, with the y axis pointing up.
type Point struct {
	X, Y float64
}

// Pt is a shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{x, y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f} }

// Offset returns p moved by dx, dy.
func (p Point) Offset(dx, dy float64) Point { return Point{p.X + dx, p.Y + dy} }

// Rotate rotates p by deg degrees, counter clockwise, around the origin.
func (p Point) Rotate(deg float64) Point {
	return p.transform(rotation(deg))
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Near reports whether p and q are closer than tol.
func (p Point) Near(q Point, tol float64) bool { return p.Dist(q) <= tol }

func (p Point) transform(m svgpath.Matrix2D) Point {
	x, y := m.Transform(p.X, p.Y)
	return Point{x, y}
}

// rotation returns the matrix rotating by deg degrees. Right angles
// are exact, so that horizontal and vertical lines stay aligned.
func rotation(deg float64) svgpath.Matrix2D {
	rad := deg * math.Pi / 180
	s, c := snap(math.Sin(rad)), snap(math.Cos(rad))
	return svgpath.Matrix2D{A: c, B: s, C: -s, D: c}
}

func snap(v float64) float64 {
	for _, r := range [...]float64{-1, 0, 1} {
		if math.Abs(v-r) < 1e-12 {
			return r
		}
	}
	return v
}

// normDeg maps deg to [0, 360), rounding away the noise of
// angles computed with atan.
func normDeg(deg float64) float64 {
	if r := math.Round(deg); math.Abs(deg-r) < 1e-9 {
		deg = r
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// linear drops the translation part of m.
func linear(m svgpath.Matrix2D) svgpath.Matrix2D {
	m.E, m.F = 0, 0
	return m
}

// BBox is an axis aligned box in drawing units.
type BBox struct {
	XMin, YMin, XMax, YMax float64
}

func emptyBBox() BBox {
	return BBox{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
}

// IsEmpty reports whether the box contains no point.
func (b BBox) IsEmpty() bool { return b.XMin > b.XMax || b.YMin > b.YMax }

func (b BBox) Width() float64  { return b.XMax - b.XMin }
func (b BBox) Height() float64 { return b.YMax - b.YMin }

// Center returns the middle of the box.
func (b BBox) Center() Point { return Point{(b.XMin + b.XMax) / 2, (b.YMin + b.YMax) / 2} }

func (b BBox) addPoint(p Point) BBox {
	return BBox{
		math.Min(b.XMin, p.X), math.Min(b.YMin, p.Y),
		math.Max(b.XMax, p.X), math.Max(b.YMax, p.Y),
	}
}

// Union returns the smallest box containing b and o.
func (b BBox) Union(o BBox) BBox {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return BBox{
		math.Min(b.XMin, o.XMin), math.Min(b.YMin, o.YMin),
		math.Max(b.XMax, o.XMax), math.Max(b.YMax, o.YMax),
	}
}
