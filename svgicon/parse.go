package svgicon

import (
	"encoding/xml"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/math/fixed"

	"github.com/rcoan/airsoft-suitcase/svgpath"
	"github.com/rcoan/airsoft-suitcase/textpath"
)

// ErrorMode selects what the parser does with elements it cannot draw.
type ErrorMode uint8

const (
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs the skipped elements.
	WarnErrorMode
	// StrictErrorMode fails on the first unsupported element.
	StrictErrorMode
)

var errParamMismatch = errors.New("param mismatch")

// iconCursor is the parser state.
type iconCursor struct {
	path                    Path
	points                  []float64
	icon                    *SvgIcon
	styleStack              []PathStyle
	text                    *textState
	inTitleText, inDescText bool
	errorMode               ErrorMode
}

func (c *iconCursor) style() PathStyle { return c.styleStack[len(c.styleStack)-1] }

func fToFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64)
}

// parseFloat accepts an optional px unit.
func parseFloat(s string, bitSize int) (float64, error) {
	return strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "px"), bitSize)
}

// getPoints replaces c.points by the numbers of a coordinate list.
func (c *iconCursor) getPoints(dataPoints string) error {
	points, err := svgpath.ParseNumbers(dataPoints)
	if err != nil {
		return err
	}
	c.points = append(c.points[:0], points...)
	return nil
}

func deg(a float64) float64 { return a * math.Pi / 180 }

// transformFuncs apply one transform function, indexed by name then by
// argument count.
var transformFuncs = map[string]map[int]func(m Matrix2D, v []float64) Matrix2D{
	"rotate": {
		1: func(m Matrix2D, v []float64) Matrix2D { return m.Rotate(deg(v[0])) },
		3: func(m Matrix2D, v []float64) Matrix2D {
			return m.Translate(v[1], v[2]).Rotate(deg(v[0])).Translate(-v[1], -v[2])
		},
	},
	"translate": {
		1: func(m Matrix2D, v []float64) Matrix2D { return m.Translate(v[0], 0) },
		2: func(m Matrix2D, v []float64) Matrix2D { return m.Translate(v[0], v[1]) },
	},
	"scale": {
		1: func(m Matrix2D, v []float64) Matrix2D { return m.Scale(v[0], v[0]) },
		2: func(m Matrix2D, v []float64) Matrix2D { return m.Scale(v[0], v[1]) },
	},
	"skewx": {
		1: func(m Matrix2D, v []float64) Matrix2D { return m.SkewX(deg(v[0])) },
	},
	"skewy": {
		1: func(m Matrix2D, v []float64) Matrix2D { return m.SkewY(deg(v[0])) },
	},
	"matrix": {
		6: func(m Matrix2D, v []float64) Matrix2D {
			return m.Mult(Matrix2D{A: v[0], B: v[1], C: v[2], D: v[3], E: v[4], F: v[5]})
		},
	},
}

// parseTransform composes the transform list v with the current
// transform.
func (c *iconCursor) parseTransform(v string) (Matrix2D, error) {
	m := c.style().transform
	for _, t := range strings.Split(v, ")") {
		if t = strings.TrimSpace(t); t == "" {
			continue
		}
		name, args, ok := strings.Cut(t, "(")
		if !ok || args == "" {
			return m, errParamMismatch
		}
		if err := c.getPoints(args); err != nil {
			return m, err
		}
		apply := transformFuncs[strings.ToLower(strings.TrimSpace(name))][len(c.points)]
		if apply == nil {
			return m, errParamMismatch
		}
		m = apply(m, c.points)
	}
	return m, nil
}

var (
	lineCaps = map[string]CapMode{
		"butt":   ButtCap,
		"round":  RoundCap,
		"square": SquareCap,
	}
	lineJoins = map[string]JoinMode{
		"miter":      Miter,
		"miter-clip": MiterClip,
		"arc-clip":   ArcClip,
		"round":      Round,
		"arc":        Arc,
		"bevel":      Bevel,
	}
)

// readStyleAttr applies the presentation attribute k to st.
// Unknown attributes and keywords are ignored.
func (c *iconCursor) readStyleAttr(st *PathStyle, k, v string) error {
	var err error
	switch k {
	case "fill":
		st.FillerColor, err = parseSVGColor(v)
	case "stroke":
		st.LinerColor, err = parseSVGColor(v)
	case "fill-rule":
		st.UseNonZeroWinding = v != "evenodd"
	case "stroke-linecap":
		if mode, ok := lineCaps[v]; ok {
			st.Join.TrailLineCap = mode
		}
	case "stroke-linejoin":
		if mode, ok := lineJoins[v]; ok {
			st.Join.LineJoin = mode
		}
	case "stroke-miterlimit":
		var limit float64
		limit, err = parseFloat(v, 64)
		st.Join.MiterLimit = fToFixed(limit)
	case "stroke-width":
		st.LineWidth, err = parseFloat(v, 64)
	case "stroke-dashoffset":
		st.Dash.DashOffset, err = parseFloat(v, 64)
	case "stroke-dasharray":
		st.Dash.Dash, err = parseDashArray(v)
	case "opacity", "stroke-opacity", "fill-opacity":
		var op float64
		if op, err = parseFloat(v, 64); err != nil {
			return err
		}
		if k != "stroke-opacity" {
			st.FillOpacity *= op
		}
		if k != "fill-opacity" {
			st.LineOpacity *= op
		}
	case "font-size":
		st.FontSize, err = parseFloat(v, 64)
	case "text-anchor":
		st.TextAnchor = textpath.ParseAnchor(v)
	case "transform":
		st.transform, err = c.parseTransform(v)
	}
	return err
}

// parseDashArray returns nil for "none".
func parseDashArray(v string) ([]float64, error) {
	if v == "none" {
		return nil, nil
	}
	fields := strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]float64, len(fields))
	for i, f := range fields {
		d, err := parseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// pushStyle pushes a copy of the current style updated by attrs, from
// both the style attribute and the presentation attributes.
func (c *iconCursor) pushStyle(attrs []xml.Attr) error {
	st := c.style()
	for _, attr := range attrs {
		pairs := []string{attr.Name.Local + ":" + attr.Value}
		if strings.EqualFold(attr.Name.Local, "style") {
			pairs = strings.Split(attr.Value, ";")
		}
		for _, pair := range pairs {
			k, v, ok := strings.Cut(pair, ":")
			if !ok {
				continue
			}
			if err := c.readStyleAttr(&st, strings.ToLower(strings.TrimSpace(k)), strings.TrimSpace(v)); err != nil {
				return err
			}
		}
	}
	c.styleStack = append(c.styleStack, st)
	return nil
}

func (c *iconCursor) readStartElement(se xml.StartElement) error {
	read, ok := elementReaders[se.Name.Local]
	if !ok {
		switch c.errorMode {
		case StrictErrorMode:
			return fmt.Errorf("unsupported svg element %s", se.Name.Local)
		case WarnErrorMode:
			log.Printf("skipping unsupported svg element %s", se.Name.Local)
		}
		return nil
	}
	err := read(c, se.Attr)
	c.flushPath()
	return err
}

// flushPath moves the path of the current element, if any, to the icon.
func (c *iconCursor) flushPath() {
	if len(c.path) == 0 {
		return
	}
	c.icon.SVGPaths = append(c.icon.SVGPaths, SvgPath{Path: append(Path{}, c.path...), Style: c.style()})
	c.path = c.path[:0]
}

// flushText converts the accumulated text content into glyph outlines.
// Texts are filled only.
func (c *iconCursor) flushText() error {
	ts := c.text
	c.text = nil
	if ts == nil {
		return nil
	}
	content := strings.TrimSpace(ts.content.String())
	if content == "" {
		return nil
	}
	c.icon.Texts = append(c.icon.Texts, content)
	style := c.style()
	outline, err := textpath.Outline(content, ts.x, ts.y, style.FontSize, style.TextAnchor)
	if err != nil {
		return err
	}
	if len(outline) == 0 || style.FillerColor == nil {
		return nil
	}
	style.LinerColor = nil
	style.UseNonZeroWinding = true
	c.icon.SVGPaths = append(c.icon.SVGPaths, SvgPath{Path: outline, Style: style})
	return nil
}
