package netlist

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
)

const dotTemplate = `strict {{.GraphType}} {
{{- range $k, $v := .Attributes}}
	{{$k}}="{{$v}}";
{{- end}}
{{- range $s := .Statements}}
	"{{.Source}}"{{if .Target}} {{$.EdgeOperator}} "{{.Target}}"{{end}} [ {{range $k, $v := .Attributes}}{{$k}}="{{$v}}" {{end}}];
{{- end}}
}
`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source     string
	Target     string
	Attributes map[string]string
}

// Graph returns the component graph: one vertex per component, and an
// edge between two components sharing at least one net. Edges carry
// the shared net names in their "label" attribute.
func (nl *Netlist) Graph() (graph.Graph[string, string], error) {
	g := graph.New(graph.StringHash)
	for _, name := range nl.Components() {
		err := g.AddVertex(name,
			graph.VertexAttribute("label", fmt.Sprintf("%s\\n%s", name, nl.kinds[name])),
			graph.VertexAttribute("shape", "box"))
		if err != nil {
			return nil, errors.Wrapf(err, "unable to add component %s", name)
		}
	}

	shared := make(map[[2]string][]string)
	for _, net := range nl.Nets {
		comps := net.components()
		for i, a := range comps {
			for _, b := range comps[i+1:] {
				shared[[2]string{a, b}] = append(shared[[2]string{a, b}], net.Name)
			}
		}
	}
	for pair, nets := range shared {
		err := g.AddEdge(pair[0], pair[1], graph.EdgeAttribute("label", strings.Join(nets, ",")))
		if err != nil {
			return nil, errors.Wrapf(err, "unable to add edge from %s to %s", pair[0], pair[1])
		}
	}
	return g, nil
}

// components returns the distinct element names of the net terminals, sorted.
func (n Net) components() []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range n.Terminals {
		name := t[:strings.LastIndexByte(t, '.')]
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// WriteDOT writes the component graph in the Graphviz DOT language.
func (nl *Netlist) WriteDOT(w io.Writer) error {
	g, err := nl.Graph()
	if err != nil {
		return err
	}
	desc, err := generateDOT(g, "netlist")
	if err != nil {
		return errors.Wrap(err, "unable to generate DOT description")
	}
	return renderDOT(w, desc)
}

func generateDOT(g graph.Graph[string, string], name string) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   map[string]string{"label": name, "rankdir": "LR"},
		EdgeOperator: "--",
	}

	adjacencyMap, err := g.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}
	vertices := make([]string, 0, len(adjacencyMap))
	for v := range adjacencyMap {
		vertices = append(vertices, v)
	}
	sort.Strings(vertices)

	for _, vertex := range vertices {
		_, props, err := g.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}
		desc.Statements = append(desc.Statements, statement{Source: vertex, Attributes: props.Attributes})
	}
	for _, vertex := range vertices {
		targets := make([]string, 0, len(adjacencyMap[vertex]))
		for t := range adjacencyMap[vertex] {
			// undirected edges are listed twice
			if vertex < t {
				targets = append(targets, t)
			}
		}
		sort.Strings(targets)
		for _, t := range targets {
			edge := adjacencyMap[vertex][t]
			desc.Statements = append(desc.Statements, statement{
				Source:     vertex,
				Target:     t,
				Attributes: edge.Properties.Attributes,
			})
		}
	}
	return desc, nil
}

func renderDOT(w io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "unable to parse template")
	}
	if err := tpl.Execute(w, desc); err != nil {
		return errors.Wrap(err, "unable to execute template")
	}
	return nil
}
