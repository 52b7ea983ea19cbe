// Provides parsing and rendering of SVG images.
// SVG files are parsed into an abstract representation,
// which can then be consumed by painting drivers.
// See for example svgraster or svgpdf.
package svgicon

import (
	"encoding/xml"
	"errors"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/rcoan/airsoft-suitcase/svgpath"
	"github.com/rcoan/airsoft-suitcase/textpath"
)

type (
	Path     = svgpath.Path
	Matrix2D = svgpath.Matrix2D
)

// Identity is the identity transform
var Identity = svgpath.Identity

// PathStyle holds the state of the SVG style
type PathStyle struct {
	FillOpacity, LineOpacity float64
	LineWidth                float64
	UseNonZeroWinding        bool

	Join                    JoinOptions
	Dash                    DashOptions
	FillerColor, LinerColor Pattern // nil disables painting

	FontSize   float64
	TextAnchor textpath.Anchor

	transform Matrix2D // current transform
}

// SvgPath binds a style to a path
type SvgPath struct {
	Path  Path
	Style PathStyle
}

// Bounds defines a bounding box, such as a viewport
// or a path extent.
type Bounds struct{ X, Y, W, H float64 }

// SvgIcon holds data from parsed SVGs.
// See the `Draw` methods to use it.
type SvgIcon struct {
	ViewBox      Bounds
	Titles       []string // Title elements collect here
	Descriptions []string // Description elements collect here
	Texts        []string // Text contents, in document order
	SVGPaths     []SvgPath
	Transform    Matrix2D

	Width, Height string // top level width and height attributes
}

// DefaultStyle sets the default PathStyle to fill black, winding rule,
// full opacity, no stroke, ButtCap line end and Bevel line connect.
var DefaultStyle = PathStyle{
	FillOpacity:       1.0,
	LineOpacity:       1.0,
	LineWidth:         1.0,
	UseNonZeroWinding: true,
	Join: JoinOptions{
		MiterLimit:   fToFixed(4.),
		LineJoin:     Bevel,
		TrailLineCap: ButtCap,
		LineGap:      FlatGap,
	},
	FillerColor: NewPlainColor(0x00, 0x00, 0x00, 0xff),
	FontSize:    16,
	transform:   Identity,
}

// ReadIconStream reads the Icon from the given io.Reader
// This only supports a sub-set of SVG, but
// is enough to draw schematics. errMode determines if the icon ignores, errors out, or logs a warning
// if it does not handle an element found in the icon file.
func ReadIconStream(stream io.Reader, errMode ErrorMode) (*SvgIcon, error) {
	icon := &SvgIcon{Transform: Identity}
	cursor := &iconCursor{styleStack: []PathStyle{DefaultStyle}, icon: icon}
	cursor.errorMode = errMode
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("invalid svg xml icon")
				}
				break
			}
			return icon, err
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			// Reads all recognized style attributes from the start element
			// and places it on top of the styleStack
			err = cursor.pushStyle(se.Attr)
			if err != nil {
				return icon, err
			}
			err = cursor.readStartElement(se)
			if err != nil {
				return icon, err
			}
		case xml.EndElement:
			switch se.Name.Local {
			case "title":
				cursor.inTitleText = false
			case "desc":
				cursor.inDescText = false
			case "text":
				// the text style is still on top of the stack
				if err = cursor.flushText(); err != nil {
					return icon, err
				}
			}
			// pop style
			cursor.styleStack = cursor.styleStack[:len(cursor.styleStack)-1]
		case xml.CharData:
			if cursor.inTitleText {
				icon.Titles[len(icon.Titles)-1] += string(se)
			}
			if cursor.inDescText {
				icon.Descriptions[len(icon.Descriptions)-1] += string(se)
			}
			if cursor.text != nil {
				cursor.text.content.Write(se)
			}
		}
	}
	return icon, nil
}

// ReadIcon reads the Icon from the named file
// This only supports a sub-set of SVG, but
// is enough to draw schematics. errMode determines if the icon ignores, errors out, or logs a warning
// if it does not handle an element found in the icon file.
func ReadIcon(iconFile string, errMode ErrorMode) (*SvgIcon, error) {
	fin, errf := os.Open(iconFile)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadIconStream(fin, errMode)
}

// SetTarget sets the Transform matrix to draw within the bounds of the rectangle arguments
func (s *SvgIcon) SetTarget(x, y, w, h float64) {
	scaleW := w / s.ViewBox.W
	scaleH := h / s.ViewBox.H
	s.Transform = Identity.Translate(x, y).Scale(scaleW, scaleH).Translate(-s.ViewBox.X, -s.ViewBox.Y)
}

// Extent returns the union of the extents of every path,
// in user space (before the icon Transform).
// Stroke widths are not taken into account.
func (s *SvgIcon) Extent() Bounds {
	var (
		minX, minY, maxX, maxY float64
		first                  = true
	)
	for _, svgp := range s.SVGPaths {
		if len(svgp.Path) == 0 {
			continue
		}
		b := svgp.Path.TightBounds()
		x0, y0 := float64(b.Min.X)/64, float64(b.Min.Y)/64
		x1, y1 := float64(b.Max.X)/64, float64(b.Max.Y)/64
		for _, corner := range [4][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}} {
			x, y := svgp.Style.transform.Transform(corner[0], corner[1])
			if first {
				minX, minY, maxX, maxY = x, y, x, y
				first = false
				continue
			}
			minX, minY = math.Min(minX, x), math.Min(minY, y)
			maxX, maxY = math.Max(maxX, x), math.Max(maxY, y)
		}
	}
	return Bounds{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// textState accumulates the content of a text element
type textState struct {
	x, y    float64
	content strings.Builder
}
