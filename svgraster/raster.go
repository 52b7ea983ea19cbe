// Implements a raster backend to render SVG images,
// by wrapping rasterx.
package svgraster

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/rasterx"

	"github.com/rcoan/airsoft-suitcase/svgicon"
)

var _ svgicon.Driver = (*Renderer)(nil) // assert interface conformance

var errEmptyViewBox = errors.New("svgraster: empty view box")

// Options controls the output image.
type Options struct {
	DPI        float64     // one user unit is 1/72 inch; 0 means 72
	Background color.Color // nil means transparent
}

func (o *Options) scale() float64 {
	if o == nil || o.DPI <= 0 {
		return 1
	}
	return o.DPI / 72
}

// Renderer paints paths using a rasterx Filler and Dasher
// sharing the same scanner.
type Renderer struct {
	filler filler
	dasher stroker
}

// NewRenderer returns a renderer with default values.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize quadratic and cubic bezier curves.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{
		filler: filler{rasterx.NewFiller(width, height, scanner)},
		dasher: stroker{rasterx.NewDasher(width, height, scanner)},
	}
}

// SetupDrawers implements svgicon.Driver
func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (svgicon.Filler, svgicon.Stroker) {
	var (
		f svgicon.Filler
		s svgicon.Stroker
	)
	if willFill {
		f = rd.filler
	}
	if willStroke {
		s = rd.dasher
	}
	return f, s
}

// RasterSVGIconToImage renders the icon into a new image,
// sized after the icon view box at the resolution given in opts.
// opts may be nil.
func RasterSVGIconToImage(icon *svgicon.SvgIcon, opts *Options) (*image.RGBA, error) {
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, errEmptyViewBox
	}
	scale := opts.scale()
	w, h := int(math.Ceil(icon.ViewBox.W*scale)), int(math.Ceil(icon.ViewBox.H*scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if opts != nil && opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	icon.Transform = svgicon.Identity.Scale(scale, scale).Translate(-icon.ViewBox.X, -icon.ViewBox.Y)
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	renderer := NewRenderer(w, h, scanner)
	icon.Draw(renderer, 1.0)
	return img, nil
}

// RasterSVGToImage parses the SVG read from r, and
// renders it as RasterSVGIconToImage does.
func RasterSVGToImage(r io.Reader, opts *Options) (*image.RGBA, error) {
	parsedIcon, err := svgicon.ReadIconStream(r, svgicon.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}
	return RasterSVGIconToImage(parsedIcon, opts)
}

// WritePNG renders the SVG read from svg and writes
// the PNG encoded image to w.
func WritePNG(w io.Writer, svg io.Reader, opts *Options) error {
	img, err := RasterSVGToImage(svg, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// resolve the paint color
func setColorFromPattern(color svgicon.Pattern, opacity float64, scanner rasterx.Scanner) {
	switch fillerColor := color.(type) {
	case svgicon.PlainColor:
		scanner.SetColor(rasterx.ApplyOpacity(fillerColor, opacity))
	}
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		svgicon.Round:     rasterx.Round,
		svgicon.Bevel:     rasterx.Bevel,
		svgicon.Miter:     rasterx.Miter,
		svgicon.MiterClip: rasterx.MiterClip,
		svgicon.Arc:       rasterx.Arc,
		svgicon.ArcClip:   rasterx.ArcClip,
	}

	capToFunc = [...]rasterx.CapFunc{
		svgicon.NilCap:       rasterx.ButtCap,
		svgicon.ButtCap:      rasterx.ButtCap,
		svgicon.SquareCap:    rasterx.SquareCap,
		svgicon.RoundCap:     rasterx.RoundCap,
		svgicon.CubicCap:     rasterx.CubicCap,
		svgicon.QuadraticCap: rasterx.QuadraticCap,
	}

	gapToFunc = [...]rasterx.GapFunc{
		svgicon.NilGap:       rasterx.FlatGap,
		svgicon.FlatGap:      rasterx.FlatGap,
		svgicon.RoundGap:     rasterx.RoundGap,
		svgicon.CubicGap:     rasterx.CubicGap,
		svgicon.QuadraticGap: rasterx.QuadraticGap,
	}
)

type filler struct {
	*rasterx.Filler
}

func (f filler) SetColor(color svgicon.Pattern, opacity float64) {
	setColorFromPattern(color, opacity, f.Filler.Scanner)
}

func (f filler) Draw() {
	f.Filler.Draw()
	f.Filler.Clear()
}

type stroker struct {
	*rasterx.Dasher
}

func (s stroker) SetColor(color svgicon.Pattern, opacity float64) {
	setColorFromPattern(color, opacity, s.Dasher.Scanner)
}

func (s stroker) SetStrokeOptions(options svgicon.StrokeOptions) {
	s.Dasher.SetStroke(
		options.LineWidth, options.Join.MiterLimit, capToFunc[options.Join.LeadLineCap],
		capToFunc[options.Join.TrailLineCap], gapToFunc[options.Join.LineGap],
		joinToJoin[options.Join.LineJoin], options.Dash.Dash, options.Dash.DashOffset,
	)
}

func (s stroker) Draw() {
	s.Dasher.Draw()
	s.Dasher.Clear()
}
