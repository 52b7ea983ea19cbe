package schematic

import "fmt"

// Element constructors. Two terminal bodies are drawn along the x
// axis from 0 to their length, and stretched to the element length
// with leads.

const (
	resHeight = 0.25
	plateGap  = 0.18
)

func newTwoTerminal(kind Kind, bodyLen float64, body shape) *Element {
	e := newElement(kind, twoTerminal)
	e.bodyLen, e.body = bodyLen, body
	return e
}

func newOneTerminal(kind Kind, local shape) *Element {
	e := newElement(kind, oneTerminal)
	e.local = local
	e.localAnchors = map[string]Point{"start": {}}
	e.terminals = []string{"start"}
	return e
}

// Line is a plain connection.
func Line() *Element { return twoTerminalWithPins(KindLine, 0, shape{}) }

// Resistor is a zigzag resistor.
func Resistor() *Element {
	var s shape
	s.line(
		Pt(0, 0), Pt(1./12, resHeight), Pt(3./12, -resHeight), Pt(5./12, resHeight),
		Pt(7./12, -resHeight), Pt(9./12, resHeight), Pt(11./12, -resHeight), Pt(1, 0),
	)
	return twoTerminalWithPins(KindResistor, 1, s)
}

// RBox is a box shaped resistor, also used for generic modules.
func RBox() *Element {
	var s shape
	s.rect(0, -resHeight, 1, resHeight, noFill)
	return twoTerminalWithPins(KindRBox, 1, s)
}

// Capacitor is a non polarized capacitor.
func Capacitor() *Element {
	var s shape
	s.line(Pt(0, 0.3), Pt(0, -0.3))
	s.line(Pt(plateGap, 0.3), Pt(plateGap, -0.3))
	return twoTerminalWithPins(KindCapacitor, plateGap, s)
}

// LED is a light emitting diode, conducting from start to end.
func LED() *Element {
	var s shape
	s.polygon(noFill, Pt(0, 0.25), Pt(0, -0.25), Pt(0.45, 0))
	s.line(Pt(0.45, 0.25), Pt(0.45, -0.25))
	for _, x := range [...]float64{0.15, 0.35} {
		tip := Pt(x+0.25, 0.65)
		s.line(Pt(x, 0.3), tip)
		s.polygon(fgFill, tip, tip.Offset(-0.11, -0.02), tip.Offset(-0.05, -0.1))
	}
	return twoTerminalWithPins(KindLED, 0.45, s)
}

// SourceV is a voltage source, its positive side at the end.
func SourceV() *Element {
	var s shape
	s.circle(Pt(0.5, 0), 0.5, noFill)
	s.line(Pt(0.62, 0), Pt(0.82, 0))
	s.line(Pt(0.72, -0.1), Pt(0.72, 0.1))
	s.line(Pt(0.28, -0.1), Pt(0.28, 0.1))
	return twoTerminalWithPins(KindSourceV, 1, s)
}

// Speaker is a loudspeaker or buzzer, wired through.
func Speaker() *Element {
	var s shape
	s.rect(0, -0.2, 0.3, 0.2, noFill)
	s.polygon(noFill, Pt(0.3, 0.2), Pt(0.6, 0.45), Pt(0.6, -0.45), Pt(0.3, -0.2))
	return twoTerminalWithPins(KindSpeaker, 0.6, s)
}

// Crystal is a quartz crystal.
func Crystal() *Element {
	var s shape
	s.line(Pt(0, 0.3), Pt(0, -0.3))
	s.rect(0.1, -0.2, 0.4, 0.2, noFill)
	s.line(Pt(0.5, 0.3), Pt(0.5, -0.3))
	return twoTerminalWithPins(KindCrystal, 0.5, s)
}

// Button is a normally open push button.
func Button() *Element {
	var s shape
	s.circle(Pt(0.075, 0), 0.075, bgFill)
	s.circle(Pt(0.925, 0), 0.075, bgFill)
	s.line(Pt(0, 0.3), Pt(1, 0.3))
	s.line(Pt(0.5, 0.3), Pt(0.5, 0.55))
	return twoTerminalWithPins(KindButton, 1, s)
}

func twoTerminalWithPins(kind Kind, bodyLen float64, body shape) *Element {
	e := newTwoTerminal(kind, bodyLen, body)
	e.terminals = []string{"start", "end"}
	return e
}

// Dot is a connection dot.
func Dot() *Element {
	var s shape
	s.circle(Point{}, dotRadius, fgFill)
	e := newOneTerminal(KindDot, s)
	e.terminals = nil
	return e
}

// Ground is a ground symbol hanging below its start.
func Ground() *Element {
	var s shape
	s.line(Pt(0, 0), Pt(0, -0.4))
	s.line(Pt(-0.4, -0.4), Pt(0.4, -0.4))
	s.line(Pt(-0.25, -0.55), Pt(0.25, -0.55))
	s.line(Pt(-0.1, -0.7), Pt(0.1, -0.7))
	return newOneTerminal(KindGround, s)
}

// Vdd is a supply symbol standing above its start.
func Vdd() *Element {
	var s shape
	s.line(Pt(0, 0), Pt(0, 0.5))
	s.line(Pt(-0.25, 0.5), Pt(0.25, 0.5))
	return newOneTerminal(KindVdd, s)
}

// Wire joins the start to the point given by To with a routed line.
// shape is one of "-" (straight), "|-" (vertical then horizontal),
// "-|", "z" and "N" (with a jog at k, a fraction of the way, 0.5 by
// default), "c" and "n" (going out horizontally, or vertically, by k
// units from the start, 0.5 by default).
func Wire(shape string, k ...float64) *Element {
	e := newElement(KindWire, routed)
	e.wireShape, e.wireK = shape, 0.5
	if len(k) > 0 {
		e.wireK = k[0]
	}
	e.terminals = []string{"start", "end"}
	return e
}

// OrthoLines draws n parallel lines from the start to the point given
// by To, stacked downward, as wanted for a bus between two pin rows.
func OrthoLines(n int) *Element {
	e := newElement(KindOrthoLines, routed)
	e.orthoN = n
	if n < 1 {
		e.err = fmt.Errorf("%s: invalid line count %d", KindOrthoLines, n)
	}
	return e
}
