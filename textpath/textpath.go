// Package textpath converts text to glyph outlines, so that
// labels can be painted as regular filled paths by any driver,
// without relying on font support in the output format.
// The embedded Go Regular font is used.
package textpath

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/rcoan/airsoft-suitcase/svgpath"
)

// Anchor is the horizontal alignment of a text relative to its position,
// as the SVG text-anchor attribute.
type Anchor uint8

const (
	Start Anchor = iota
	Middle
	End
)

// ParseAnchor maps the SVG keywords to an Anchor.
// Unknown values default to Start.
func ParseAnchor(s string) Anchor {
	switch s {
	case "middle":
		return Middle
	case "end":
		return End
	default:
		return Start
	}
}

func (a Anchor) String() string {
	switch a {
	case Middle:
		return "middle"
	case End:
		return "end"
	default:
		return "start"
	}
}

var (
	regular    *sfnt.Font
	regularErr error
	parseOnce  sync.Once
)

// face returns the parsed embedded font. The returned font is safe
// for concurrent use, as long as each goroutine uses its own Buffer.
func face() (*sfnt.Font, error) {
	parseOnce.Do(func() {
		regular, regularErr = sfnt.Parse(goregular.TTF)
	})
	return regular, regularErr
}

func ppem(size float64) fixed.Int26_6 { return fixed.Int26_6(size * 64) }

// Measure returns the advance width of text rendered at size,
// in the same unit as size. Kerning pairs are accounted for.
func Measure(text string, size float64) float64 {
	f, err := face()
	if err != nil {
		return 0
	}
	var (
		buf     sfnt.Buffer
		advance fixed.Int26_6
		prev    sfnt.GlyphIndex
		hasPrev bool
	)
	for _, r := range text {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil {
			continue
		}
		if hasPrev {
			if k, err := f.Kern(&buf, prev, idx, ppem(size), font.HintingNone); err == nil {
				advance += k
			}
		}
		a, err := f.GlyphAdvance(&buf, idx, ppem(size), font.HintingNone)
		if err == nil {
			advance += a
		}
		prev, hasPrev = idx, true
	}
	return float64(advance) / 64
}

// Metrics returns the ascent and descent (both positive) of the
// font at size.
func Metrics(size float64) (ascent, descent float64) {
	f, err := face()
	if err != nil {
		return size * 0.8, size * 0.2
	}
	var buf sfnt.Buffer
	m, err := f.Metrics(&buf, ppem(size), font.HintingNone)
	if err != nil {
		return size * 0.8, size * 0.2
	}
	return float64(m.Ascent) / 64, float64(m.Descent) / 64
}

// Outline returns the glyph outlines of text, with its baseline
// starting at (x, y) in a y-down coordinate system, shifted according
// to anchor. The outlines must be filled with the non-zero winding rule.
func Outline(text string, x, y, size float64, anchor Anchor) (svgpath.Path, error) {
	f, err := face()
	if err != nil {
		return nil, err
	}
	switch anchor {
	case Middle:
		x -= Measure(text, size) / 2
	case End:
		x -= Measure(text, size)
	}

	var (
		buf     sfnt.Buffer
		out     svgpath.Path
		origin  = fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
		prev    sfnt.GlyphIndex
		hasPrev bool
	)
	for _, r := range text {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return nil, err
		}
		if hasPrev {
			if k, err := f.Kern(&buf, prev, idx, ppem(size), font.HintingNone); err == nil {
				origin.X += k
			}
		}
		segments, err := f.LoadGlyph(&buf, idx, ppem(size), nil)
		if err != nil {
			return nil, err
		}
		started := false
		for _, seg := range segments {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				if started {
					out.Stop(true)
				}
				out.Start(seg.Args[0].Add(origin))
				started = true
			case sfnt.SegmentOpLineTo:
				out.Line(seg.Args[0].Add(origin))
			case sfnt.SegmentOpQuadTo:
				out.QuadBezier(seg.Args[0].Add(origin), seg.Args[1].Add(origin))
			case sfnt.SegmentOpCubeTo:
				out.CubeBezier(seg.Args[0].Add(origin), seg.Args[1].Add(origin), seg.Args[2].Add(origin))
			}
		}
		if started {
			out.Stop(true)
		}
		a, err := f.GlyphAdvance(&buf, idx, ppem(size), font.HintingNone)
		if err != nil {
			return nil, err
		}
		origin.X += a
		prev, hasPrev = idx, true
	}
	return out, nil
}
