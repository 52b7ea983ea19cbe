package svgicon

import (
	"encoding/xml"
	"errors"

	"golang.org/x/image/math/fixed"

	"github.com/rcoan/airsoft-suitcase/svgpath"
)

// elementReader adds the geometry of one element to the cursor path.
type elementReader func(c *iconCursor, attrs []xml.Attr) error

var elementReaders = map[string]elementReader{
	"svg":      readSVG,
	"g":        func(*iconCursor, []xml.Attr) error { return nil },
	"line":     readLine,
	"rect":     readRect,
	"circle":   readEllipse,
	"ellipse":  readEllipse,
	"polyline": readPolyline,
	"polygon":  readPolygon,
	"path":     readPath,
	"text":     readText,
	"desc":     readDesc,
	"title":    readTitle,
}

func toFixedP(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fToFixed(x), Y: fToFixed(y)}
}

// numericAttrs parses the attributes listed in dst, leaving the
// missing ones untouched.
func numericAttrs(attrs []xml.Attr, dst map[string]*float64) error {
	for _, attr := range attrs {
		ptr, ok := dst[attr.Name.Local]
		if !ok {
			continue
		}
		v, err := parseFloat(attr.Value, 64)
		if err != nil {
			return err
		}
		*ptr = v
	}
	return nil
}

func readSVG(c *iconCursor, attrs []xml.Attr) error {
	var vb Bounds
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			if err := c.getPoints(attr.Value); err != nil {
				return err
			}
			if len(c.points) != 4 {
				return errParamMismatch
			}
			vb = Bounds{X: c.points[0], Y: c.points[1], W: c.points[2], H: c.points[3]}
		case "width":
			c.icon.Width = attr.Value
		case "height":
			c.icon.Height = attr.Value
		}
	}
	// without view box, the size attributes give the user space
	var width, height float64
	if err := numericAttrs(attrs, map[string]*float64{"width": &width, "height": &height}); err != nil {
		return err
	}
	if vb.W == 0 {
		vb.W = width
	}
	if vb.H == 0 {
		vb.H = height
	}
	c.icon.ViewBox = vb
	return nil
}

func readRect(c *iconCursor, attrs []xml.Attr) error {
	var x, y, w, h, rx, ry float64
	err := numericAttrs(attrs, map[string]*float64{
		"x": &x, "y": &y, "width": &w, "height": &h, "rx": &rx, "ry": &ry,
	})
	if err != nil || w == 0 || h == 0 {
		return err
	}
	if rx == 0 {
		rx = ry
	} else if ry == 0 {
		ry = rx
	}
	c.path.AddRoundRect(x, y, x+w, y+h, rx, ry, 0)
	return nil
}

// readEllipse handles circle (r) and ellipse (rx, ry).
func readEllipse(c *iconCursor, attrs []xml.Attr) error {
	var cx, cy, r, rx, ry float64
	err := numericAttrs(attrs, map[string]*float64{
		"cx": &cx, "cy": &cy, "r": &r, "rx": &rx, "ry": &ry,
	})
	if err != nil {
		return err
	}
	if r != 0 {
		rx, ry = r, r
	}
	if rx == 0 || ry == 0 {
		return nil
	}
	c.path.AddEllipse(cx, cy, rx, ry)
	return nil
}

func readLine(c *iconCursor, attrs []xml.Attr) error {
	var x1, y1, x2, y2 float64
	err := numericAttrs(attrs, map[string]*float64{
		"x1": &x1, "y1": &y1, "x2": &x2, "y2": &y2,
	})
	if err != nil {
		return err
	}
	c.path.Start(toFixedP(x1, y1))
	c.path.Line(toFixedP(x2, y2))
	return nil
}

// readVertices loads the points attribute into c.points.
func (c *iconCursor) readVertices(attrs []xml.Attr) error {
	c.points = c.points[:0]
	for _, attr := range attrs {
		if attr.Name.Local != "points" {
			continue
		}
		if err := c.getPoints(attr.Value); err != nil {
			return err
		}
		if len(c.points)%2 != 0 {
			return errors.New("odd number of coordinates in points")
		}
	}
	return nil
}

func readPolyline(c *iconCursor, attrs []xml.Attr) error {
	if err := c.readVertices(attrs); err != nil {
		return err
	}
	pts := c.points
	if len(pts) < 4 {
		return nil
	}
	c.path.Start(toFixedP(pts[0], pts[1]))
	for i := 2; i+1 < len(pts); i += 2 {
		c.path.Line(toFixedP(pts[i], pts[i+1]))
	}
	return nil
}

func readPolygon(c *iconCursor, attrs []xml.Attr) error {
	if err := readPolyline(c, attrs); err != nil {
		return err
	}
	if len(c.points) >= 4 {
		c.path.Stop(true)
	}
	return nil
}

func readPath(c *iconCursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		if attr.Name.Local != "d" {
			continue
		}
		p, err := svgpath.Compile(attr.Value)
		if err != nil {
			return err
		}
		c.path = append(c.path, p...)
	}
	return nil
}

// readText only records the anchor point: the glyphs are outlined by
// flushText once the content is known.
func readText(c *iconCursor, attrs []xml.Attr) error {
	ts := &textState{}
	if err := numericAttrs(attrs, map[string]*float64{"x": &ts.x, "y": &ts.y}); err != nil {
		return err
	}
	c.text = ts
	return nil
}

func readDesc(c *iconCursor, _ []xml.Attr) error {
	c.inDescText = true
	c.icon.Descriptions = append(c.icon.Descriptions, "")
	return nil
}

func readTitle(c *iconCursor, _ []xml.Attr) error {
	c.inTitleText = true
	c.icon.Titles = append(c.icon.Titles, "")
	return nil
}
