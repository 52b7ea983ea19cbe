// Implements a PDF backend to render SVG images,
// by wrapping github.com/benoitkugler/pdf.
package svgpdf

import (
	"errors"
	"io"

	"github.com/benoitkugler/pdf/contentstream"
	"github.com/benoitkugler/pdf/model"
	"golang.org/x/image/math/fixed"

	"github.com/rcoan/airsoft-suitcase/svgicon"
	"github.com/rcoan/airsoft-suitcase/svgpath"
)

// assert interface conformance
var (
	_ svgicon.Driver  = Renderer{}
	_ svgicon.Filler  = (*filler)(nil)
	_ svgicon.Stroker = (*stroker)(nil)
)

var errEmptyViewBox = errors.New("svgpdf: empty view box")

type Renderer struct {
	pdf                 *contentstream.Appearance
	fillOpacityStates   map[float64]*model.GraphicState
	strokeOpacityStates map[float64]*model.GraphicState
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	pdf  *contentstream.Appearance
	path svgpath.Path
}

// implements the filling operation
type filler struct {
	pather
	useNonZeroWinding bool
	fillOpacityStates map[float64]*model.GraphicState
}

// implements the stroking operation. The path is always
// written again, since filling consumes it.
type stroker struct {
	pather
	strokeOpacityStates map[float64]*model.GraphicState
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(cs *contentstream.Appearance) Renderer {
	return Renderer{pdf: cs,
		fillOpacityStates:   make(map[float64]*model.GraphicState),
		strokeOpacityStates: make(map[float64]*model.GraphicState),
	}
}

// newPage draws the icon on a page the size of its view box,
// one user unit being one PDF point.
func newPage(icon *svgicon.SvgIcon) (*model.PageObject, error) {
	vb := icon.ViewBox
	if vb.W <= 0 || vb.H <= 0 {
		return nil, errEmptyViewBox
	}
	pdf := contentstream.NewAppearance(vb.W, vb.H)
	renderer := NewRenderer(&pdf)
	// SVG has the y axis pointing down
	pdf.Ops(
		contentstream.OpSave{},
		contentstream.OpConcat{Matrix: model.Matrix{1, 0, 0, -1, 0, vb.H}},
	)
	icon.Transform = svgicon.Identity.Translate(-vb.X, -vb.Y)
	icon.Draw(renderer, 1.0)
	pdf.Ops(contentstream.OpRestore{})
	var page model.PageObject
	pdf.ApplyToPageObject(&page, true)
	return &page, nil
}

// RenderSVGIconToPDF renders the icon into the given file,
// as a single page document.
func RenderSVGIconToPDF(icon *svgicon.SvgIcon, pdfName string) error {
	page, err := newPage(icon)
	if err != nil {
		return err
	}
	var doc model.Document
	doc.Catalog.Pages.Kids = append(doc.Catalog.Pages.Kids, page)
	return doc.WriteFile(pdfName, nil)
}

// WritePDF parses the SVG read from svg and writes a single
// page PDF document to w.
func WritePDF(w io.Writer, svg io.Reader) error {
	parsedIcon, err := svgicon.ReadIconStream(svg, svgicon.WarnErrorMode)
	if err != nil {
		return err
	}
	page, err := newPage(parsedIcon)
	if err != nil {
		return err
	}
	var doc model.Document
	doc.Catalog.Pages.Kids = append(doc.Catalog.Pages.Kids, page)
	return doc.Write(w, nil)
}

func (r Renderer) SetupDrawers(willFill, willStroke bool) (f svgicon.Filler, s svgicon.Stroker) {
	if willFill {
		f = &filler{pather: pather{pdf: r.pdf}, fillOpacityStates: r.fillOpacityStates}
	}
	if willStroke {
		s = &stroker{pather: pather{pdf: r.pdf}, strokeOpacityStates: r.strokeOpacityStates}
	}
	return f, s
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p *pather) Clear() { p.path.Clear() }

func (p *pather) Start(a fixed.Point26_6) { p.path.Start(a) }

func (p *pather) Line(b fixed.Point26_6) { p.path.Line(b) }

func (p *pather) QuadBezier(b, c fixed.Point26_6) { p.path.QuadBezier(b, c) }

func (p *pather) CubeBezier(b, c, d fixed.Point26_6) { p.path.CubeBezier(b, c, d) }

func (p *pather) Stop(closeLoop bool) { p.path.Stop(closeLoop) }

// writePath emits the accumulated path. It must be called right
// before the painting operator, since no other operator is allowed
// between path construction and painting.
func (p *pather) writePath() {
	var current fixed.Point26_6
	for _, op := range p.path {
		switch op := op.(type) {
		case svgpath.MoveTo:
			x, y := fixedTof(fixed.Point26_6(op))
			p.pdf.Ops(contentstream.OpMoveTo{X: x, Y: y})
			current = fixed.Point26_6(op)
		case svgpath.LineTo:
			x, y := fixedTof(fixed.Point26_6(op))
			p.pdf.Ops(contentstream.OpLineTo{X: x, Y: y})
			current = fixed.Point26_6(op)
		case svgpath.QuadTo:
			// written as the equivalent cubic curve
			x0, y0 := fixedTof(current)
			bx, by := fixedTof(op[0])
			x, y := fixedTof(op[1])
			p.pdf.Ops(contentstream.OpCubicTo{
				X1: x0 + 2*(bx-x0)/3, Y1: y0 + 2*(by-y0)/3,
				X2: x + 2*(bx-x)/3, Y2: y + 2*(by-y)/3,
				X3: x, Y3: y,
			})
			current = op[1]
		case svgpath.CubicTo:
			cx0, cy0 := fixedTof(op[0])
			cx1, cy1 := fixedTof(op[1])
			x, y := fixedTof(op[2])
			p.pdf.Ops(contentstream.OpCubicTo{X1: cx0, Y1: cy0, X2: cx1, Y2: cy1, X3: x, Y3: y})
			current = op[2]
		case svgpath.Close:
			p.pdf.Ops(contentstream.OpClosePath{})
		}
	}
	p.path.Clear()
}

func (f *filler) SetColor(color svgicon.Pattern, opacity float64) {
	c, ok := color.(svgicon.PlainColor)
	if !ok {
		return
	}
	f.pdf.SetColorFill(c.NRGBA)
	opacity *= float64(c.A) / 255.
	// cache the opacity states
	gs, ok := f.fillOpacityStates[opacity]
	if !ok {
		gs = &model.GraphicState{Ca: model.ObjFloat(opacity), BM: []model.Name{"Normal"}}
		f.fillOpacityStates[opacity] = gs
	}
	name := f.pdf.AddExtGState(gs)
	f.pdf.Ops(contentstream.OpSetExtGState{Dict: name})
}

func (f *filler) Draw() {
	f.writePath()
	if f.useNonZeroWinding {
		f.pdf.Ops(contentstream.OpFill{})
	} else {
		f.pdf.Ops(contentstream.OpEOFill{})
	}
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

func (s *stroker) SetStrokeOptions(options svgicon.StrokeOptions) {
	var capStyle, joinStyle uint8
	switch options.Join.TrailLineCap {
	case svgicon.ButtCap:
		capStyle = 0
	case svgicon.RoundCap:
		capStyle = 1
	case svgicon.SquareCap:
		capStyle = 2
	}
	switch options.Join.LineJoin {
	case svgicon.Miter, svgicon.MiterClip:
		joinStyle = 0
	case svgicon.Round, svgicon.Arc, svgicon.ArcClip:
		joinStyle = 1
	case svgicon.Bevel:
		joinStyle = 2
	}

	s.pdf.Ops(
		contentstream.OpSetDash{Dash: model.DashPattern{
			Array: options.Dash.Dash,
			Phase: options.Dash.DashOffset,
		}},
		contentstream.OpSetLineWidth{W: float64(options.LineWidth) / 64},
		contentstream.OpSetLineCap{Style: capStyle},
		contentstream.OpSetLineJoin{Style: joinStyle},
		contentstream.OpSetMiterLimit{Limit: float64(options.Join.MiterLimit) / 64},
	)
}

func (s *stroker) SetColor(color svgicon.Pattern, opacity float64) {
	c, ok := color.(svgicon.PlainColor)
	if !ok {
		return
	}
	s.pdf.SetColorStroke(c.NRGBA)
	opacity *= float64(c.A) / 255.
	// cache the opacity states
	gs, ok := s.strokeOpacityStates[opacity]
	if !ok {
		gs = &model.GraphicState{CA: model.ObjFloat(opacity), BM: []model.Name{"Normal"}}
		s.strokeOpacityStates[opacity] = gs
	}
	name := s.pdf.AddExtGState(gs)
	s.pdf.Ops(contentstream.OpSetExtGState{Dict: name})
}

func (s *stroker) Draw() {
	s.writePath()
	s.pdf.Ops(contentstream.OpStroke{})
}
