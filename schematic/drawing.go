// Package schematic draws electronic schematics by chaining element
// placements: each element starts where the previous one ended,
// unless told otherwise, and the result is written as SVG.
//
// A typical use is
//
//	d := schematic.New()
//	bat := d.Add(schematic.SourceV().Up().Label("9V"))
//	d.Add(schematic.Line().Right(d.Unit()))
//	d.Add(schematic.Resistor().Down().Label("1k"))
//	d.Add(schematic.Line().To(bat.Start()))
//	err := d.WriteSVG(f)
//
// Errors, such as an unknown anchor name, are recorded on the drawing:
// the following additions are ignored and the first error is returned
// by Err and WriteSVG.
package schematic

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrUnknownAnchor = errors.New("schematic: unknown anchor")
	ErrZeroLength    = errors.New("schematic: element ends at its start")
	ErrEmptyStack    = errors.New("schematic: pop without push")
	ErrMissingTarget = errors.New("schematic: element needs a target point")
	ErrMalformedSlot = errors.New("schematic: malformed pin slot")
	ErrWireShape     = errors.New("schematic: unknown wire shape")
	ErrPlaced        = errors.New("schematic: element already placed")
	ErrDuplicateID   = errors.New("schematic: duplicate element id")
)

type cursor struct {
	here  Point
	theta float64
}

// Drawing is a schematic being built. It is not safe for concurrent use.
type Drawing struct {
	cfg      Config
	here     Point
	theta    float64
	stack    []cursor
	elements []*Element
	names    map[string]bool
	counts   map[string]int
	err      error
}

// New returns an empty drawing with the default configuration,
// its cursor at the origin and pointing right.
func New() *Drawing { return NewWithConfig(Config{}) }

// NewWithConfig is like New, with the non zero fields of cfg
// overriding the defaults.
func NewWithConfig(cfg Config) *Drawing {
	return &Drawing{
		cfg:    DefaultConfig().merge(cfg),
		names:  make(map[string]bool),
		counts: make(map[string]int),
	}
}

// Configure applies the non zero fields of cfg.
func (d *Drawing) Configure(cfg Config) { d.cfg = d.cfg.merge(cfg) }

// Config returns the current configuration.
func (d *Drawing) Config() Config { return d.cfg }

// Unit returns the default element length.
func (d *Drawing) Unit() float64 { return d.cfg.Unit }

// Here returns the cursor position.
func (d *Drawing) Here() Point { return d.here }

// Theta returns the cursor direction, in degrees.
func (d *Drawing) Theta() float64 { return d.theta }

// Push saves the cursor position and direction.
func (d *Drawing) Push() {
	d.stack = append(d.stack, cursor{d.here, d.theta})
}

// Pop restores the cursor saved by the last Push.
func (d *Drawing) Pop() {
	if len(d.stack) == 0 {
		d.fail(ErrEmptyStack)
		return
	}
	c := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	d.here, d.theta = c.here, c.theta
}

// Err returns the first error met while building the drawing.
func (d *Drawing) Err() error { return d.err }

func (d *Drawing) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

// Elements returns the placed elements, in placement order.
func (d *Drawing) Elements() []*Element {
	return append([]*Element(nil), d.elements...)
}

// Element returns the placed element with the given name, or nil.
func (d *Drawing) Element(name string) *Element {
	for _, e := range d.elements {
		if e.name == name {
			return e
		}
	}
	return nil
}

// Add places e and returns it, so that its anchors may be used by
// the following elements. Once the drawing holds an error, Add does
// nothing.
func (d *Drawing) Add(e *Element) *Element {
	if d.err != nil {
		return e
	}
	if e.placed {
		d.fail(fmt.Errorf("%s %s: %w", e.kind, e.name, ErrPlaced))
		return e
	}
	e.d = d
	if e.name == "" {
		e.name = d.nextName(e.kind.prefix())
	} else if d.names[e.name] {
		d.fail(fmt.Errorf("%s %s: %w", e.kind, e.name, ErrDuplicateID))
		return e
	}
	if err := e.place(d); err != nil {
		d.fail(fmt.Errorf("element %s: %w", e.name, err))
		return e
	}
	d.names[e.name] = true
	d.elements = append(d.elements, e)
	return e
}

func (d *Drawing) nextName(prefix string) string {
	for {
		d.counts[prefix]++
		name := prefix + strconv.Itoa(d.counts[prefix])
		if !d.names[name] {
			return name
		}
	}
}

// Bounds returns the extent of the drawing, labels included.
func (d *Drawing) Bounds() BBox {
	b := emptyBBox()
	for _, e := range d.elements {
		b = b.Union(e.Bounds())
	}
	if b.IsEmpty() {
		return BBox{}
	}
	return b
}
