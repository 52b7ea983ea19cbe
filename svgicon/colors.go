package svgicon

import (
	"fmt"
	"strings"

	"gopkg.in/go-playground/colors.v1"
)

// basicColors holds the SVG basic color keywords.
var basicColors = map[string]PlainColor{
	"black":   NewPlainColor(0x00, 0x00, 0x00, 0xff),
	"silver":  NewPlainColor(0xc0, 0xc0, 0xc0, 0xff),
	"gray":    NewPlainColor(0x80, 0x80, 0x80, 0xff),
	"grey":    NewPlainColor(0x80, 0x80, 0x80, 0xff),
	"white":   NewPlainColor(0xff, 0xff, 0xff, 0xff),
	"maroon":  NewPlainColor(0x80, 0x00, 0x00, 0xff),
	"red":     NewPlainColor(0xff, 0x00, 0x00, 0xff),
	"purple":  NewPlainColor(0x80, 0x00, 0x80, 0xff),
	"fuchsia": NewPlainColor(0xff, 0x00, 0xff, 0xff),
	"green":   NewPlainColor(0x00, 0x80, 0x00, 0xff),
	"lime":    NewPlainColor(0x00, 0xff, 0x00, 0xff),
	"olive":   NewPlainColor(0x80, 0x80, 0x00, 0xff),
	"yellow":  NewPlainColor(0xff, 0xff, 0x00, 0xff),
	"navy":    NewPlainColor(0x00, 0x00, 0x80, 0xff),
	"blue":    NewPlainColor(0x00, 0x00, 0xff, 0xff),
	"teal":    NewPlainColor(0x00, 0x80, 0x80, 0xff),
	"aqua":    NewPlainColor(0x00, 0xff, 0xff, 0xff),
	"orange":  NewPlainColor(0xff, 0xa5, 0x00, 0xff),
}

// parseSVGColor parses a color attribute. "none" returns
// a nil Pattern, which disables painting.
func parseSVGColor(v string) (Pattern, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case "none", "transparent":
		return nil, nil
	case "", "currentcolor":
		return basicColors["black"], nil
	}
	if c, ok := basicColors[v]; ok {
		return c, nil
	}
	col, err := colors.Parse(v)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", v, err)
	}
	rgba := col.ToRGBA()
	return NewPlainColor(rgba.R, rgba.G, rgba.B, uint8(rgba.A*0xff+0.5)), nil
}

// ColorString formats a plain color as an hexadecimal SVG color.
func ColorString(p Pattern) string {
	pc, ok := p.(PlainColor)
	if !ok {
		return "none"
	}
	c, err := colors.RGB(pc.R, pc.G, pc.B)
	if err != nil {
		return "none"
	}
	return c.ToHEX().String()
}

// ParseColor parses a SVG color value.
func ParseColor(v string) (Pattern, error) { return parseSVGColor(v) }
