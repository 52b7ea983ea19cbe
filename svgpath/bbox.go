package svgpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// compute the exact bounding box of a path, using the extrema
// of each segment instead of its control points

func fromFixed(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

type line [2]fixed.Point26_6

func (l line) criticalPoints() (tX, tY []float64) {
	return nil, nil
}

func (l line) evaluateCurve(t float64) (x, y float64) {
	p0x, p0y := fromFixed(l[0])
	p1x, p1y := fromFixed(l[1])
	return bezierLine(p0x, p1x, t), bezierLine(p0y, p1y, t)
}

func bezierLine(p0, p1, t float64) float64 {
	return (p1-p0)*t + p0
}

type quadBezier [3]fixed.Point26_6

// quadratic polinomial
// x = At^2 + Bt + C
// where
// A = p0 + p2 - 2p1
// B = 2(p1 - p0)
// C = p0
func bezierQuad(p0, p1, p2, t float64) float64 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

// derivative as at + b where a,b :
func quadraticDerivative(p0, p1, p2 float64) (a, b float64) {
	return 2 * (p2 - p1 - (p1 - p0)), 2 * (p1 - p0)
}

// handle the case where a = 0
func linearRoots(a, b float64) []float64 {
	if a == 0 {
		return nil
	}
	return []float64{-b / a}
}

func (cu quadBezier) criticalPoints() (tX, tY []float64) {
	p0x, p0y := fromFixed(cu[0])
	p1x, p1y := fromFixed(cu[1])
	p2x, p2y := fromFixed(cu[2])

	aX, bX := quadraticDerivative(p0x, p1x, p2x)
	aY, bY := quadraticDerivative(p0y, p1y, p2y)

	return linearRoots(aX, bX), linearRoots(aY, bY)
}

func (cu quadBezier) evaluateCurve(t float64) (x, y float64) {
	p0x, p0y := fromFixed(cu[0])
	p1x, p1y := fromFixed(cu[1])
	p2x, p2y := fromFixed(cu[2])
	return bezierQuad(p0x, p1x, p2x, t), bezierQuad(p0y, p1y, p2y, t)
}

type cubicBezier [4]fixed.Point26_6

func (cu cubicBezier) criticalPoints() (tX, tY []float64) {
	p1x, p1y := fromFixed(cu[0])
	c1x, c1y := fromFixed(cu[1])
	c2x, c2y := fromFixed(cu[2])
	p2x, p2y := fromFixed(cu[3])

	aX, bX, cX := cubicDerivative(p1x, c1x, c2x, p2x)
	aY, bY, cY := cubicDerivative(p1y, c1y, c2y, p2y)

	return quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)
}

func (cu cubicBezier) evaluateCurve(t float64) (x, y float64) {
	p0x, p0y := fromFixed(cu[0])
	p1x, p1y := fromFixed(cu[1])
	p2x, p2y := fromFixed(cu[2])
	p3x, p3y := fromFixed(cu[3])
	return bezierSpline(p0x, p1x, p2x, p3x, t), bezierSpline(p0y, p1y, p2y, p3y, t)
}

// cubic polinomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

// X' = (3*p3-9*p2+9*p1-3*p0)t^2 + (6*p2-12*p1+6*p0)t + (3*p1-3*p0)
// taken as aX^2 + bX + c  a,b and c are:
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func solve(a, b, c float64, positive bool) float64 {
	sign := 1.
	if !positive {
		sign = -1.
	}
	return (-b + math.Sqrt(b*b-4*a*c)*sign) / (2 * a)
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		// bX + c, a simple line
		return linearRoots(b, c)
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	if d == 0 {
		return []float64{solve(a, b, c, true)}
	}
	return []float64{solve(a, b, c, true), solve(a, b, c, false)}
}

type bezier interface {
	// compute the t zeroing the derivative
	criticalPoints() (tX, tY []float64)
	// compute the point a time t
	evaluateCurve(t float64) (x, y float64)
}

// curveExtent adds the extrema of curve to the running extent
func curveExtent(curve bezier, minX, minY, maxX, maxY *float64) {
	resX, resY := curve.criticalPoints()
	// add begin and end point
	for _, t := range append(append(resX, 0, 1), resY...) {
		// filter invalid value
		if !(0 <= t && t <= 1) {
			continue
		}
		x, y := curve.evaluateCurve(t)
		*minX = math.Min(x, *minX)
		*minY = math.Min(y, *minY)
		*maxX = math.Max(x, *maxX)
		*maxY = math.Max(y, *maxY)
	}
}

// TightBounds returns the exact extent of the path, which
// may be smaller than Bounds for curves.
// An empty path returns a zero rectangle.
func (p Path) TightBounds() fixed.Rectangle26_6 {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	var current, start fixed.Point26_6
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			current, start = fixed.Point26_6(op), fixed.Point26_6(op)
			curveExtent(line{current, current}, &minX, &minY, &maxX, &maxY)
		case LineTo:
			curveExtent(line{current, fixed.Point26_6(op)}, &minX, &minY, &maxX, &maxY)
			current = fixed.Point26_6(op)
		case QuadTo:
			curveExtent(quadBezier{current, op[0], op[1]}, &minX, &minY, &maxX, &maxY)
			current = op[1]
		case CubicTo:
			curveExtent(cubicBezier{current, op[0], op[1], op[2]}, &minX, &minY, &maxX, &maxY)
			current = op[2]
		case Close:
			current = start
		}
	}
	if math.IsInf(minX, 1) {
		return fixed.Rectangle26_6{}
	}
	return fixed.Rectangle26_6{Min: toFixedP(minX, minY), Max: toFixedP(maxX, maxY)}
}
