package svgpath

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

var (
	errParamMismatch  = errors.New("svgpath: param mismatch")
	errCommandUnknown = errors.New("svgpath: unknown command")
	errMissingMove    = errors.New("svgpath: path must start with a move command")
)

// pathCursor is used to compile the d attribute of a path element
type pathCursor struct {
	path             Path
	placeX, placeY   float64 // current point
	startX, startY   float64 // start of the current sub-path
	cntlPtX, cntlPtY float64 // last control point, for the smooth variants
	lastKey          byte
	inPath           bool
}

// Compile parses SVG path data, such as "M0,0 L10,10 Z".
// Absolute and relative M, L, H, V, C, S, Q, T, A and Z commands are supported.
func Compile(d string) (Path, error) {
	var c pathCursor
	if err := c.compile(d); err != nil {
		return nil, err
	}
	return c.path, nil
}

// ParseNumbers splits a list of numbers separated by commas,
// spaces or sign changes, as found in SVG attributes.
func ParseNumbers(s string) ([]float64, error) {
	var out []float64
	for i := 0; i < len(s); {
		r := rune(s[i])
		if r == ',' || unicode.IsSpace(r) {
			i++
			continue
		}
		n, next, err := scanNumber(s, i)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
		i = next
	}
	return out, nil
}

// scanNumber reads the float starting at s[i] and returns the index after it.
func scanNumber(s string, i int) (float64, int, error) {
	start := i
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	seenDot, seenDigit := false, false
scan:
	for i < len(s) {
		ch := s[i]
		switch {
		case ch >= '0' && ch <= '9':
			seenDigit = true
		case ch == '.' && !seenDot:
			seenDot = true
		case (ch == 'e' || ch == 'E') && seenDigit:
			// exponent, with an optional sign
			if i+1 < len(s) && (s[i+1] == '-' || s[i+1] == '+') {
				i++
			}
			i++
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				i++
			}
			f, err := strconv.ParseFloat(s[start:i], 64)
			return f, i, err
		default:
			break scan
		}
		i++
	}
	if !seenDigit {
		return 0, i, fmt.Errorf("svgpath: invalid number at %q", s[start:])
	}
	f, err := strconv.ParseFloat(s[start:i], 64)
	return f, i, err
}

func isCommand(ch byte) bool {
	switch ch {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's',
		'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func (c *pathCursor) compile(d string) error {
	c.path = c.path[:0]
	var (
		key  byte
		args []float64
		err  error
	)
	flush := func() error {
		if key == 0 {
			return nil
		}
		return c.addSeg(key, args)
	}
	i := 0
	for i < len(d) {
		ch := d[i]
		switch {
		case isCommand(ch):
			if err = flush(); err != nil {
				return err
			}
			key, args = ch, args[:0]
			i++
		case ch == ',' || unicode.IsSpace(rune(ch)):
			i++
		case (ch == '0' || ch == '1') && (key == 'A' || key == 'a') && (len(args)%7 == 3 || len(args)%7 == 4):
			// arc flags may be written without separators
			args = append(args, float64(ch-'0'))
			i++
		default:
			if key == 0 {
				return errMissingMove
			}
			var n float64
			n, i, err = scanNumber(d, i)
			if err != nil {
				return err
			}
			args = append(args, n)
		}
	}
	if err = flush(); err != nil {
		return err
	}
	if c.inPath {
		c.path.Stop(false)
	}
	return nil
}

func (c *pathCursor) valsToAbs(args []float64) {
	for i := 0; i < len(args)-1; i += 2 {
		args[i] += c.placeX
		args[i+1] += c.placeY
	}
}

// reflectControl returns the reflection of the last control point
// if the previous command matches one of keys.
func (c *pathCursor) reflectControl(keys string) (float64, float64) {
	for i := 0; i < len(keys); i++ {
		if c.lastKey == keys[i] {
			return 2*c.placeX - c.cntlPtX, 2*c.placeY - c.cntlPtY
		}
	}
	return c.placeX, c.placeY
}

func (c *pathCursor) addSeg(key byte, args []float64) error {
	lower := unicode.IsLower(rune(key))
	upper := byte(unicode.ToUpper(rune(key)))
	if !c.inPath && upper != 'M' {
		return errMissingMove
	}
	chunk := func(n int) error {
		if n == 0 {
			if len(args) != 0 {
				return errParamMismatch
			}
			return nil
		}
		if len(args) == 0 || len(args)%n != 0 {
			return errParamMismatch
		}
		return nil
	}
	switch upper {
	case 'Z':
		if err := chunk(0); err != nil {
			return err
		}
		c.path.Stop(true)
		c.placeX, c.placeY = c.startX, c.startY
	case 'M':
		if err := chunk(2); err != nil {
			return err
		}
		for i := 0; i < len(args); i += 2 {
			x, y := args[i], args[i+1]
			if lower {
				x += c.placeX
				y += c.placeY
			}
			if i == 0 {
				if c.inPath {
					c.path.Stop(false)
				}
				c.path.Start(toFixedP(x, y))
				c.startX, c.startY = x, y
				c.inPath = true
			} else { // subsequent pairs are implicit line-to
				c.path.Line(toFixedP(x, y))
			}
			c.placeX, c.placeY = x, y
		}
	case 'L':
		if err := chunk(2); err != nil {
			return err
		}
		for i := 0; i < len(args); i += 2 {
			x, y := args[i], args[i+1]
			if lower {
				x += c.placeX
				y += c.placeY
			}
			c.path.Line(toFixedP(x, y))
			c.placeX, c.placeY = x, y
		}
	case 'H':
		if err := chunk(1); err != nil {
			return err
		}
		for _, x := range args {
			if lower {
				x += c.placeX
			}
			c.path.Line(toFixedP(x, c.placeY))
			c.placeX = x
		}
	case 'V':
		if err := chunk(1); err != nil {
			return err
		}
		for _, y := range args {
			if lower {
				y += c.placeY
			}
			c.path.Line(toFixedP(c.placeX, y))
			c.placeY = y
		}
	case 'C':
		if err := chunk(6); err != nil {
			return err
		}
		for i := 0; i < len(args); i += 6 {
			seg := args[i : i+6]
			if lower {
				c.valsToAbs(seg)
			}
			c.path.CubeBezier(toFixedP(seg[0], seg[1]), toFixedP(seg[2], seg[3]), toFixedP(seg[4], seg[5]))
			c.cntlPtX, c.cntlPtY = seg[2], seg[3]
			c.placeX, c.placeY = seg[4], seg[5]
			c.lastKey = 'C'
		}
		return nil
	case 'S':
		if err := chunk(4); err != nil {
			return err
		}
		for i := 0; i < len(args); i += 4 {
			seg := args[i : i+4]
			if lower {
				c.valsToAbs(seg)
			}
			x1, y1 := c.reflectControl("CS")
			c.path.CubeBezier(toFixedP(x1, y1), toFixedP(seg[0], seg[1]), toFixedP(seg[2], seg[3]))
			c.cntlPtX, c.cntlPtY = seg[0], seg[1]
			c.placeX, c.placeY = seg[2], seg[3]
			c.lastKey = 'S'
		}
		return nil
	case 'Q':
		if err := chunk(4); err != nil {
			return err
		}
		for i := 0; i < len(args); i += 4 {
			seg := args[i : i+4]
			if lower {
				c.valsToAbs(seg)
			}
			c.path.QuadBezier(toFixedP(seg[0], seg[1]), toFixedP(seg[2], seg[3]))
			c.cntlPtX, c.cntlPtY = seg[0], seg[1]
			c.placeX, c.placeY = seg[2], seg[3]
			c.lastKey = 'Q'
		}
		return nil
	case 'T':
		if err := chunk(2); err != nil {
			return err
		}
		for i := 0; i < len(args); i += 2 {
			seg := args[i : i+2]
			if lower {
				c.valsToAbs(seg)
			}
			x1, y1 := c.reflectControl("QT")
			c.path.QuadBezier(toFixedP(x1, y1), toFixedP(seg[0], seg[1]))
			c.cntlPtX, c.cntlPtY = x1, y1
			c.placeX, c.placeY = seg[0], seg[1]
			c.lastKey = 'T'
		}
		return nil
	case 'A':
		if err := chunk(7); err != nil {
			return err
		}
		for i := 0; i < len(args); i += 7 {
			seg := append([]float64(nil), args[i:i+7]...)
			if lower {
				seg[5] += c.placeX
				seg[6] += c.placeY
			}
			c.placeX, c.placeY = c.path.AddArc(seg, c.placeX, c.placeY)
		}
	default:
		return errCommandUnknown
	}
	c.lastKey = upper
	return nil
}
