package schematic

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/image/math/fixed"

	"github.com/rcoan/airsoft-suitcase/svgicon"
	"github.com/rcoan/airsoft-suitcase/svgpath"
)

const background = "#ffffff"

// svgWriter maps drawing units to SVG user units (points), flipping
// the y axis.
type svgWriter struct {
	buf           bytes.Buffer
	pointsPerUnit float64
	xMin, yMax    float64
	color         string
	fontSize      float64
}

func (w *svgWriter) point(p Point) (float64, float64) {
	return (p.X - w.xMin) * w.pointsPerUnit, (w.yMax - p.Y) * w.pointsPerUnit
}

func (w *svgWriter) fixed(p Point) fixed.Point26_6 {
	x, y := w.point(p)
	return fixed.Point26_6{X: fixed.Int26_6(x*64 + 0.5), Y: fixed.Int26_6(y*64 + 0.5)}
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func (w *svgWriter) fill(f fillMode) string {
	switch f {
	case fgFill:
		return w.color
	case bgFill:
		return background
	}
	return "none"
}

func (w *svgWriter) polyline(l polyline) {
	if len(l.points) == 0 {
		return
	}
	var path svgpath.Path
	path.Start(w.fixed(l.points[0]))
	for _, p := range l.points[1:] {
		path.Line(w.fixed(p))
	}
	path.Stop(l.closed)
	fmt.Fprintf(&w.buf, "<path d=\"%s\"", path.ToSVGPath())
	if l.fill != noFill {
		fmt.Fprintf(&w.buf, " fill=\"%s\"", w.fill(l.fill))
	}
	w.buf.WriteString("/>\n")
}

func (w *svgWriter) circle(c circle) {
	x, y := w.point(c.center)
	fmt.Fprintf(&w.buf, "<circle cx=\"%s\" cy=\"%s\" r=\"%s\"", num(x), num(y), num(c.radius*w.pointsPerUnit))
	if c.fill != noFill {
		fmt.Fprintf(&w.buf, " fill=\"%s\"", w.fill(c.fill))
	}
	w.buf.WriteString("/>\n")
}

// text writes one element per line, positioned on its baseline.
func (w *svgWriter) text(t text) {
	l := t.layout(w.fontSize)
	x, y := w.point(t.pos)
	for i, line := range t.lines() {
		if line == "" {
			continue
		}
		fmt.Fprintf(&w.buf, "<text x=\"%s\" y=\"%s\" font-size=\"%s\" text-anchor=\"%s\">",
			num(x), num(y-l.baselines[i]), num(l.size), l.anchor)
		xml.EscapeText(&w.buf, []byte(line))
		w.buf.WriteString("</text>\n")
	}
}

// SVG returns the drawing as an SVG document.
func (d *Drawing) SVG() ([]byte, error) {
	if d.err != nil {
		return nil, d.err
	}
	color, err := svgicon.ParseColor(d.cfg.Color)
	if err != nil {
		return nil, fmt.Errorf("schematic: %w", err)
	}

	b := d.Bounds()
	margin := d.cfg.Margin
	w := &svgWriter{
		pointsPerUnit: d.cfg.pointsPerUnit(),
		xMin:          b.XMin - margin,
		yMax:          b.YMax + margin,
		color:         svgicon.ColorString(color),
		fontSize:      d.cfg.FontSize,
	}
	width := (b.Width() + 2*margin) * w.pointsPerUnit
	height := (b.Height() + 2*margin) * w.pointsPerUnit

	w.buf.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&w.buf, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%s\" height=\"%s\" viewBox=\"0 0 %s %s\">\n",
		num(width), num(height), num(width), num(height))
	fmt.Fprintf(&w.buf, "<g stroke=\"%s\" stroke-width=\"%s\" fill=\"none\" stroke-linecap=\"round\" stroke-linejoin=\"round\">\n",
		w.color, num(d.cfg.LineWidth))
	for _, e := range d.elements {
		for _, l := range e.shape.lines {
			w.polyline(l)
		}
		for _, c := range e.shape.circles {
			w.circle(c)
		}
	}
	w.buf.WriteString("</g>\n")
	fmt.Fprintf(&w.buf, "<g fill=\"%s\" stroke=\"none\" font-family=\"sans-serif\">\n", w.color)
	for _, e := range d.elements {
		for _, t := range e.shape.texts {
			w.text(t)
		}
	}
	w.buf.WriteString("</g>\n</svg>\n")
	return w.buf.Bytes(), nil
}

// WriteSVG writes the drawing as an SVG document to out.
func (d *Drawing) WriteSVG(out io.Writer) error {
	b, err := d.SVG()
	if err != nil {
		return err
	}
	_, err = out.Write(b)
	return err
}
