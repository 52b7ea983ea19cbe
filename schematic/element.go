package schematic

import (
	"fmt"
	"sort"
)

// Kind identifies the symbol drawn by an element.
type Kind string

const (
	KindLine       Kind = "Line"
	KindDot        Kind = "Dot"
	KindRBox       Kind = "RBox"
	KindResistor   Kind = "Resistor"
	KindCapacitor  Kind = "Capacitor"
	KindLED        Kind = "LED"
	KindSourceV    Kind = "SourceV"
	KindSpeaker    Kind = "Speaker"
	KindCrystal    Kind = "Crystal"
	KindButton     Kind = "Button"
	KindGround     Kind = "Ground"
	KindVdd        Kind = "Vdd"
	KindHeader     Kind = "Header"
	KindIc         Kind = "Ic"
	KindOrthoLines Kind = "OrthoLines"
	KindWire       Kind = "Wire"
)

// IsConductor reports whether elements of this kind only carry
// connections, instead of being components.
func (k Kind) IsConductor() bool {
	switch k {
	case KindLine, KindDot, KindOrthoLines, KindWire:
		return true
	}
	return false
}

// prefix is used to name elements without an explicit ID.
func (k Kind) prefix() string {
	switch k {
	case KindLine, KindOrthoLines, KindWire:
		return "W"
	case KindDot:
		return "DOT"
	case KindRBox, KindResistor:
		return "R"
	case KindCapacitor:
		return "C"
	case KindLED:
		return "D"
	case KindSourceV:
		return "V"
	case KindSpeaker:
		return "LS"
	case KindCrystal:
		return "Y"
	case KindButton:
		return "SW"
	case KindGround:
		return "GND"
	case KindVdd:
		return "VDD"
	case KindHeader:
		return "J"
	case KindIc:
		return "U"
	}
	return "X"
}

// category drives the placement of an element.
type category uint8

const (
	twoTerminal category = iota // body between two leads, along the drawing direction
	oneTerminal                 // fixed orientation symbol hanging from a point
	block                       // multi pin symbol, oriented only on request
	routed                      // conductors joining a start to a target point
)

// Loc is the side of an element a label is attached to.
// Sides are taken as seen on the output: Left is the visually left
// end of a horizontal element, and the bottom end of a vertical one.
type Loc uint8

const (
	Top Loc = iota
	Bottom
	Left
	Right
	Center
)

func (l Loc) String() string {
	switch l {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	case Center:
		return "center"
	}
	return fmt.Sprintf("<loc %d>", uint8(l))
}

// LabelOption customizes a label.
type LabelOption interface {
	applyLabel(*label)
}

// FontSize overrides the drawing font size, in points.
type FontSize float64

// LabelOffset is the distance between a label and its element,
// in drawing units.
type LabelOffset float64

func (l Loc) applyLabel(lb *label)         { lb.loc = l }
func (f FontSize) applyLabel(lb *label)    { lb.size = float64(f) }
func (o LabelOffset) applyLabel(lb *label) { lb.offset = float64(o) }

const defaultLabelOffset = 0.1

type label struct {
	text   string
	loc    Loc
	size   float64
	offset float64
}

// Terminal is an electrical connection point of a placed element.
type Terminal struct {
	Name string
	At   Point
}

// Element is both the description of a symbol, built with chained
// calls, and the placed result once added to a Drawing.
type Element struct {
	kind Kind
	cat  category
	name string
	err  error // construction error, reported when added

	// two terminal body, from x = 0 to x = bodyLen, centered on y = 0
	body    shape
	bodyLen float64

	// one terminal and block geometry, with their named anchors
	local        shape
	localAnchors map[string]Point
	terminals    []string

	// routed conductors
	wireShape string
	wireK     float64
	orthoN    int

	// settings
	theta    float64
	hasTheta bool
	length   float64
	at       *Point
	to       *Point
	toX, toY *Point
	anchor   string
	labels   []label
	hold     bool
	dot      bool
	idot     bool
	flip     bool
	reverse  bool
	scale    float64

	// placement
	d          *Drawing
	placed     bool
	dir        float64
	start, end Point
	center     Point
	anchors    map[string]Point
	shape      shape
	conductors [][]Point
}

func newElement(kind Kind, cat category) *Element {
	return &Element{kind: kind, cat: cat, scale: 1}
}

func (e *Element) direction(deg float64, length []float64) *Element {
	e.theta, e.hasTheta = deg, true
	if len(length) > 0 {
		e.length = length[0]
	}
	return e
}

// Up points the element up, with an optional length.
func (e *Element) Up(length ...float64) *Element { return e.direction(90, length) }

// Down points the element down, with an optional length.
func (e *Element) Down(length ...float64) *Element { return e.direction(270, length) }

// Left points the element to the left, with an optional length.
func (e *Element) Left(length ...float64) *Element { return e.direction(180, length) }

// Right points the element to the right, with an optional length.
func (e *Element) Right(length ...float64) *Element { return e.direction(0, length) }

// Theta sets the direction of the element, in degrees counter clockwise
// from the x axis.
func (e *Element) Theta(deg float64) *Element { return e.direction(deg, nil) }

// At starts the element at p instead of the drawing cursor.
func (e *Element) At(p Point) *Element {
	e.at = &p
	return e
}

// To makes the element end at p, overriding its direction and length.
func (e *Element) To(p Point) *Element {
	e.to = &p
	return e
}

// ToX makes the element horizontal, ending at the abscissa of p.
func (e *Element) ToX(p Point) *Element {
	e.toX = &p
	return e
}

// ToY makes the element vertical, ending at the ordinate of p.
func (e *Element) ToY(p Point) *Element {
	e.toY = &p
	return e
}

// Anchor places the named anchor of the element, instead of its start,
// at the placement point.
func (e *Element) Anchor(name string) *Element {
	e.anchor = name
	return e
}

// Label attaches a text to the element, by default on top of it.
// Lines are separated by '\n'.
func (e *Element) Label(text string, opts ...LabelOption) *Element {
	lb := label{text: text, loc: Top, offset: defaultLabelOffset}
	for _, opt := range opts {
		opt.applyLabel(&lb)
	}
	e.labels = append(e.labels, lb)
	return e
}

// Hold keeps the drawing cursor where it was before the element.
func (e *Element) Hold() *Element {
	e.hold = true
	return e
}

// Dot adds a connection dot at the end of the element.
func (e *Element) Dot() *Element {
	e.dot = true
	return e
}

// IDot adds an open dot at the start of the element.
func (e *Element) IDot() *Element {
	e.idot = true
	return e
}

// Flip mirrors the element across its axis.
func (e *Element) Flip() *Element {
	e.flip = !e.flip
	return e
}

// Reverse draws the element body from its end to its start.
func (e *Element) Reverse() *Element {
	e.reverse = !e.reverse
	return e
}

// Scale resizes the element by f.
func (e *Element) Scale(f float64) *Element {
	if f > 0 {
		e.scale = f
	}
	return e
}

// ID names the element. Unnamed elements get a name from their kind
// when added, such as R1 or U2.
func (e *Element) ID(name string) *Element {
	e.name = name
	return e
}

// Kind returns the symbol drawn by the element.
func (e *Element) Kind() Kind { return e.kind }

// Name returns the element name, valid once added.
func (e *Element) Name() string { return e.name }

// Placed reports whether the element has been added to a drawing without error.
func (e *Element) Placed() bool { return e.placed }

// Start returns the start point of a placed element.
func (e *Element) Start() Point { return e.start }

// End returns the end point of a placed element.
func (e *Element) End() Point { return e.end }

// Center returns the middle of a two terminal element, the connection
// point of a one terminal symbol, or the center of a block.
func (e *Element) Center() Point { return e.center }

// Direction returns the direction of a placed element, in degrees.
func (e *Element) Direction() float64 { return e.dir }

// Pin returns the position of the named anchor. An unknown name
// records an error on the drawing holding the element.
func (e *Element) Pin(name string) Point {
	p, ok := e.anchors[name]
	if !ok && e.d != nil {
		e.d.fail(fmt.Errorf("%s %s: %w %q", e.kind, e.name, ErrUnknownAnchor, name))
	}
	return p
}

// Anchors returns the names of the element anchors, sorted.
func (e *Element) Anchors() []string {
	out := make([]string, 0, len(e.anchors))
	for name := range e.anchors {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Terminals returns the connection points of a placed element, in
// their definition order.
func (e *Element) Terminals() []Terminal {
	out := make([]Terminal, 0, len(e.terminals))
	for _, name := range e.terminals {
		out = append(out, Terminal{Name: name, At: e.anchors[name]})
	}
	return out
}

// Conductors returns the polylines carrying connections for
// conductor elements, and nil for components.
func (e *Element) Conductors() [][]Point { return e.conductors }

// Labels returns the texts attached with Label.
func (e *Element) Labels() []string {
	out := make([]string, len(e.labels))
	for i, l := range e.labels {
		out[i] = l.text
	}
	return out
}

// Bounds returns the extent of the placed element, labels included.
func (e *Element) Bounds() BBox {
	b := e.shape.geometry()
	if e.d == nil {
		return b
	}
	for _, t := range e.shape.texts {
		b = b.Union(t.box(e.d.cfg.FontSize, e.d.cfg.pointsPerUnit()))
	}
	return b
}

func (e *Element) String() string {
	return fmt.Sprintf("%s %s", e.kind, e.name)
}
