package schematic

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	pinSpacing = 0.6
	icEdgePad  = 0.5
	icLeadLen  = 0.5
	bubble     = 0.1
)

// IcPin describes a pin of an integrated circuit.
type IcPin struct {
	Name   string // drawn inside the body, and used as anchor name
	Pin    string // pin number, drawn on the lead and usable as "pin<Pin>"
	Side   string // "L", "R", "T" or "B"
	Slot   string // "k/n": position k of n, counted upward on the left and right sides, left to right on the others
	Invert bool   // adds an inversion bubble
}

// anchor returns the main anchor name of the pin.
func (p IcPin) anchor() string {
	if p.Name != "" {
		return p.Name
	}
	return "pin" + p.Pin
}

// parseSlot parses a "k/n" slot.
func parseSlot(slot string) (k, n int, err error) {
	ks, ns, ok := strings.Cut(slot, "/")
	if ok {
		k, err = strconv.Atoi(strings.TrimSpace(ks))
		if err == nil {
			n, err = strconv.Atoi(strings.TrimSpace(ns))
		}
	}
	if !ok || err != nil || k < 1 || k > n {
		return 0, 0, fmt.Errorf("%w %q", ErrMalformedSlot, slot)
	}
	return k, n, nil
}

type placedPin struct {
	IcPin
	side string
	k    int
}

// Ic is an integrated circuit: a box of the given width with pins on
// its sides. Its start is the lower left corner of the box.
func Ic(width float64, pins ...IcPin) *Element {
	e := newElement(KindIc, block)
	e.localAnchors = map[string]Point{"start": {}}

	var placed []placedPin
	slots := map[string]int{} // per side
	for _, p := range pins {
		side := strings.ToUpper(p.Side)
		switch side {
		case "L", "R", "T", "B":
		default:
			e.err = fmt.Errorf("ic pin %s: unknown side %q", p.anchor(), p.Side)
			return e
		}
		pp := placedPin{IcPin: p, side: side}
		if p.Slot == "" {
			// pins without a slot follow the previous ones
			slots[side]++
			pp.k = slots[side]
		} else {
			k, n, err := parseSlot(p.Slot)
			if err != nil {
				e.err = fmt.Errorf("ic pin %s: %w", p.anchor(), err)
				return e
			}
			pp.k = k
			slots[side] = max(slots[side], n)
		}
		placed = append(placed, pp)
	}

	extent := func(n int) float64 { return float64(max(n, 1)-1)*pinSpacing + 2*icEdgePad }
	h := math.Max(extent(slots["L"]), extent(slots["R"]))
	w := math.Max(width, math.Max(extent(slots["T"]), extent(slots["B"])))

	s := &e.local
	s.rect(0, 0, w, h, noFill)
	for _, p := range placed {
		pos := icEdgePad + float64(p.k-1)*pinSpacing
		var edge, out Point
		switch p.side {
		case "L":
			edge, out = Pt(0, pos), Pt(-1, 0)
		case "R":
			edge, out = Pt(w, pos), Pt(1, 0)
		case "T":
			edge, out = Pt(pos, h), Pt(0, 1)
		case "B":
			edge, out = Pt(pos, 0), Pt(0, -1)
		}
		in := out.Scale(-1)
		tip := edge.Add(out.Scale(icLeadLen))
		leadStart := edge
		if p.Invert {
			s.circle(edge.Add(out.Scale(bubble)), bubble, noFill)
			leadStart = edge.Add(out.Scale(2 * bubble))
		}
		s.line(leadStart, tip)

		if p.Name != "" {
			s.label(p.Name, edge.Add(in.Scale(0.1)), in, 0.8)
		}
		if p.Pin != "" {
			// numbers sit on the upper or right side of the lead
			across := Pt(-out.Y, out.X)
			if across.Y < 0 || across.X < 0 {
				across = across.Scale(-1)
			}
			mid := edge.Add(out.Scale(icLeadLen / 2)).Add(across.Scale(0.05))
			s.label(p.Pin, mid, across, 0.6)
			e.localAnchors["pin"+p.Pin] = tip
		}
		e.localAnchors[p.anchor()] = tip
		e.terminals = append(e.terminals, p.anchor())
	}
	return e
}

// HeaderSpec describes a single column pin header.
type HeaderSpec struct {
	Rows        int
	ShowNumbers bool
	PinsRight   []string // names drawn right of the pins, from pin 1
	PinsLeft    []string // names drawn left of the pins, from pin 1
}

// Header is a pin header. Pin 1 is at the top and its anchors pin1,
// pin2... are on the left edge. Flip puts pin 1 at the bottom.
func Header(spec HeaderSpec) *Element {
	e := newElement(KindHeader, block)
	e.localAnchors = map[string]Point{"start": {}}
	if spec.Rows < 1 {
		e.err = fmt.Errorf("%s: invalid row count %d", KindHeader, spec.Rows)
		return e
	}
	const width, square = pinSpacing, 0.1
	bottom := -float64(spec.Rows-1)*pinSpacing - pinSpacing/2
	s := &e.local
	s.rect(0, bottom, width, pinSpacing/2, noFill)
	for i := 0; i < spec.Rows; i++ {
		y := -float64(i) * pinSpacing
		name := fmt.Sprintf("pin%d", i+1)
		s.rect(width/2-square, y-square, width/2+square, y+square, bgFill)
		if spec.ShowNumbers {
			s.label(strconv.Itoa(i+1), Pt(-0.1, y+0.12), Pt(-1, 0), 0.6)
		}
		if i < len(spec.PinsRight) && spec.PinsRight[i] != "" {
			s.label(spec.PinsRight[i], Pt(width+0.1, y), Pt(1, 0), 0.7)
		}
		if i < len(spec.PinsLeft) && spec.PinsLeft[i] != "" {
			s.label(spec.PinsLeft[i], Pt(-0.1, y), Pt(-1, 0), 0.7)
		}
		e.localAnchors[name] = Pt(0, y)
		e.terminals = append(e.terminals, name)
	}
	return e
}
