// Package netlist recovers the electrical connectivity of a schematic
// drawing: component terminals joined by lines, wires and dots are
// grouped into nets.
//
// Two points are connected when they coincide, when they are joined by
// a conductor, or when one lies on a conductor segment (a T junction).
// Lines crossing without a shared point are not connected.
package netlist

import (
	"fmt"
	"sort"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/rcoan/airsoft-suitcase/schematic"
)

// Tolerance is the distance, in drawing units, under which two points
// are considered the same.
const Tolerance = 1e-3

// Net is a set of terminals at the same potential.
type Net struct {
	Name string
	// Terminals are named <element>.<terminal>, sorted.
	Terminals []string
	// Labels are the texts of the labelled conductors on the net.
	Labels []string
}

// Netlist is the connectivity of a drawing.
type Netlist struct {
	Nets []Net

	kinds map[string]schematic.Kind // component name -> kind
}

// Components returns the names of the elements carrying terminals, sorted.
func (nl *Netlist) Components() []string {
	out := make([]string, 0, len(nl.kinds))
	for name := range nl.kinds {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// NetOf returns the net holding the given terminal, such as "R1.start".
func (nl *Netlist) NetOf(terminal string) (Net, bool) {
	for _, n := range nl.Nets {
		i := sort.SearchStrings(n.Terminals, terminal)
		if i < len(n.Terminals) && n.Terminals[i] == terminal {
			return n, true
		}
	}
	return Net{}, false
}

// vertex attribute holding the terminal name
const terminalAttr = "terminal"

// extractor merges the points of a drawing and builds the
// connectivity graph.
type extractor struct {
	g      graph.Graph[string, string]
	points []schematic.Point // canonical points, indexed by vertex key
	labels map[string][]string
}

func newExtractor() *extractor {
	return &extractor{
		g:      graph.New(graph.StringHash),
		labels: make(map[string][]string),
	}
}

// point returns the vertex of the canonical point near p, creating it
// if needed.
func (ex *extractor) point(p schematic.Point) (string, error) {
	for i, q := range ex.points {
		if q.Near(p, Tolerance) {
			return pointKey(i), nil
		}
	}
	ex.points = append(ex.points, p)
	key := pointKey(len(ex.points) - 1)
	if err := ex.g.AddVertex(key); err != nil {
		return "", errors.Wrapf(err, "unable to add point %v", p)
	}
	return key, nil
}

func pointKey(i int) string { return fmt.Sprintf("@%d", i) }

func (ex *extractor) link(a, b string) error {
	if a == b {
		return nil
	}
	err := ex.g.AddEdge(a, b)
	if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return errors.Wrapf(err, "unable to link %s and %s", a, b)
	}
	return nil
}

// Extract computes the nets of d. d must have been built without error.
func Extract(d *schematic.Drawing) (*Netlist, error) {
	if err := d.Err(); err != nil {
		return nil, errors.Wrap(err, "invalid drawing")
	}

	ex := newExtractor()
	nl := &Netlist{kinds: make(map[string]schematic.Kind)}

	var segments [][2]schematic.Point
	for _, e := range d.Elements() {
		if !e.Kind().IsConductor() {
			continue
		}
		lines := e.Conductors()
		for _, line := range lines {
			prev := ""
			for i, p := range line {
				key, err := ex.point(p)
				if err != nil {
					return nil, err
				}
				if i > 0 {
					if err := ex.link(prev, key); err != nil {
						return nil, err
					}
					segments = append(segments, [2]schematic.Point{line[i-1], p})
				}
				prev = key
			}
		}
		if labels := e.Labels(); len(labels) != 0 && len(lines) != 0 && len(lines[0]) != 0 {
			key, err := ex.point(lines[0][0])
			if err != nil {
				return nil, err
			}
			ex.labels[key] = append(ex.labels[key], labels...)
		}
	}

	for _, e := range d.Elements() {
		if e.Kind().IsConductor() {
			continue
		}
		nl.kinds[e.Name()] = e.Kind()
		for _, t := range e.Terminals() {
			name := e.Name() + "." + t.Name
			err := ex.g.AddVertex(name, graph.VertexAttribute(terminalAttr, name))
			if err != nil {
				return nil, errors.Wrapf(err, "unable to add terminal %s", name)
			}
			key, err := ex.point(t.At)
			if err != nil {
				return nil, err
			}
			if err := ex.link(name, key); err != nil {
				return nil, err
			}
		}
	}

	// T junctions: points lying inside a conductor segment
	for _, s := range segments {
		a, err := ex.point(s[0])
		if err != nil {
			return nil, err
		}
		for i, p := range ex.points {
			if onSegment(p, s[0], s[1]) {
				if err := ex.link(a, pointKey(i)); err != nil {
					return nil, err
				}
			}
		}
	}

	nets, err := ex.nets()
	if err != nil {
		return nil, err
	}
	nl.Nets = nets
	return nl, nil
}

// onSegment reports whether p lies on [a, b], within Tolerance.
func onSegment(p, a, b schematic.Point) bool {
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 == 0 {
		return p.Near(a, Tolerance)
	}
	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / l2
	if t < 0 || t > 1 {
		return p.Near(a, Tolerance) || p.Near(b, Tolerance)
	}
	return p.Near(a.Add(ab.Scale(t)), Tolerance)
}

// nets walks the connected components of the graph.
func (ex *extractor) nets() ([]Net, error) {
	adjacency, err := ex.g.AdjacencyMap()
	if err != nil {
		return nil, errors.Wrap(err, "unable to get adjacency map")
	}
	keys := make([]string, 0, len(adjacency))
	for k := range adjacency {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	visited := make(map[string]bool, len(keys))
	var out []Net
	for _, start := range keys {
		if visited[start] {
			continue
		}
		var net Net
		err := graph.BFS(ex.g, start, func(k string) bool {
			visited[k] = true
			_, props, err := ex.g.VertexWithProperties(k)
			if err == nil && props.Attributes[terminalAttr] != "" {
				net.Terminals = append(net.Terminals, k)
			}
			net.Labels = append(net.Labels, ex.labels[k]...)
			return false
		})
		if err != nil {
			return nil, errors.Wrapf(err, "unable to walk from %s", start)
		}
		if len(net.Terminals) == 0 {
			continue
		}
		sort.Strings(net.Terminals)
		sort.Strings(net.Labels)
		out = append(out, net)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Terminals[0] < out[j].Terminals[0] })
	for i := range out {
		out[i].Name = fmt.Sprintf("N%d", i+1)
	}
	return out, nil
}
