package svgicon

import (
	"image/color"
	"math"

	"golang.org/x/image/math/fixed"
)

// Drawer receives a path already mapped to device space, one segment
// at a time. It knows nothing about SVG.
type Drawer interface {
	// Clear drops the path accumulated so far.
	Clear()
	Start(a fixed.Point26_6)
	Line(b fixed.Point26_6)
	QuadBezier(b, c fixed.Point26_6)
	CubeBezier(b, c, d fixed.Point26_6)
	// Stop ends the current subpath, closing it back to its start
	// when closeLoop is set.
	Stop(closeLoop bool)
	SetColor(color Pattern, opacity float64)
	// Draw paints the accumulated path.
	Draw()
}

// Filler paints path interiors.
type Filler interface {
	Drawer
	SetWinding(useNonZeroWinding bool)
}

// Stroker paints path outlines.
type Stroker interface {
	Drawer
	SetStrokeOptions(options StrokeOptions)
}

// Driver is an output backend: raster image, PDF page, ...
type Driver interface {
	// SetupDrawers is called once per path. A drawer is nil when the
	// matching will flag is false. The path is sent to the Filler
	// before the Stroker.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)
}

// Pattern is the paint of a path. Only plain colors
// are supported.
type Pattern interface {
	isPattern()
}

// PlainColor is a uniform paint.
type PlainColor struct {
	color.NRGBA
}

func (PlainColor) isPattern() {}

// NewPlainColor returns a PlainColor from its components.
func NewPlainColor(r, g, b, a uint8) PlainColor {
	return PlainColor{color.NRGBA{R: r, G: g, B: b, A: a}}
}

// DashOptions is the dash pattern of a stroke, in device units.
// An empty Dash draws a solid line.
type DashOptions struct {
	Dash       []float64
	DashOffset float64
}

// JoinMode is the shape drawn where two stroke segments meet.
type JoinMode uint8

const (
	Arc JoinMode = iota
	Round
	Bevel
	Miter
	MiterClip
	ArcClip // rasterx extension
)

// CapMode is the shape drawn at open stroke ends.
type CapMode uint8

const (
	NilCap CapMode = iota
	ButtCap
	SquareCap
	RoundCap
	CubicCap     // rasterx extension
	QuadraticCap // rasterx extension
)

// GapMode fills the outer side of a join past the miter limit.
// It is a rasterx extension, ignored by the PDF backend.
type GapMode uint8

const (
	NilGap GapMode = iota
	FlatGap
	RoundGap
	CubicGap
	QuadraticGap
)

type JoinOptions struct {
	MiterLimit   fixed.Int26_6
	LineJoin     JoinMode
	TrailLineCap CapMode

	// LeadLineCap defaults to TrailLineCap
	LeadLineCap CapMode
	LineGap     GapMode
}

type StrokeOptions struct {
	LineWidth fixed.Int26_6
	Join      JoinOptions
	Dash      DashOptions
}

// Draw sends every path of the icon to d, mapped by s.Transform.
// opacity multiplies the opacities of the paths.
func (s *SvgIcon) Draw(d Driver, opacity float64) {
	for i := range s.SVGPaths {
		s.SVGPaths[i].draw(d, opacity, s.Transform)
	}
}

func (svgp *SvgPath) draw(d Driver, opacity float64, t Matrix2D) {
	st := &svgp.Style
	m := t.Mult(st.transform)

	filler, stroker := d.SetupDrawers(st.FillerColor != nil, st.LinerColor != nil)
	if filler != nil {
		filler.Clear()
		filler.SetWinding(st.UseNonZeroWinding)
		svgp.Path.AddTo(filler, m)
		filler.SetColor(st.FillerColor, st.FillOpacity*opacity)
		filler.Draw()
		filler.SetWinding(true)
	}
	if stroker != nil {
		stroker.Clear()
		stroker.SetStrokeOptions(st.strokeOptions(scaleFactor(m)))
		svgp.Path.AddTo(stroker, m)
		stroker.SetColor(st.LinerColor, st.LineOpacity*opacity)
		stroker.Draw()
	}
}

// strokeOptions resolves the unset modes against DefaultStyle and maps
// the lengths to device units.
func (st *PathStyle) strokeOptions(scale float64) StrokeOptions {
	join := st.Join
	if join.LineGap == NilGap {
		join.LineGap = DefaultStyle.Join.LineGap
	}
	if join.TrailLineCap == NilCap {
		join.TrailLineCap = DefaultStyle.Join.TrailLineCap
	}
	if join.LeadLineCap == NilCap {
		join.LeadLineCap = join.TrailLineCap
	}

	dash := st.Dash
	if len(dash.Dash) > 0 && scale != 1 {
		scaled := make([]float64, len(dash.Dash))
		for i, v := range dash.Dash {
			scaled[i] = v * scale
		}
		dash = DashOptions{Dash: scaled, DashOffset: dash.DashOffset * scale}
	}
	return StrokeOptions{
		LineWidth: fToFixed(st.LineWidth * scale),
		Join:      join,
		Dash:      dash,
	}
}

// scaleFactor is the mean scaling of m.
func scaleFactor(m Matrix2D) float64 {
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}
