// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Dec 12th 2025
// Project: DirectLiNGAM Causal Discovery with Kernel Independence Measures
// Class: 02-613 at Caregie Mellon University

package lingam

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

// Edge is one nonzero causal effect, From -> To with coefficient Weight.
type Edge struct {
	From      int
	To        int
	FromLabel string
	ToLabel   string
	Weight    float64
}

// AdjacencyMatrix re-expresses Coefficients in original variable index space:
// entry (i,j) is the effect of variable j on variable i.
func (res *Result) AdjacencyMatrix() *mat.Dense {
	n := len(res.Order)
	B := mat.NewDense(n, n, nil)
	for row := 0; row < n; row++ {
		for col := 0; col < row; col++ {
			B.Set(res.Order[row], res.Order[col], res.Coefficients.At(row, col))
		}
	}
	return B
}

// Edges lists an edge Order[j] -> Order[i] for every nonzero Coefficients[i][j],
// walking the matrix row by row. labels may be nil, in which case variables are
// called x0, x1, ...
func (res *Result) Edges(labels []string) ([]Edge, error) {
	labels, err := res.labels(labels)
	if err != nil {
		return nil, err
	}

	var edges []Edge
	n := len(res.Order)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			w := res.Coefficients.At(i, j)
			if w == 0 {
				continue
			}
			from, to := res.Order[j], res.Order[i]
			edges = append(edges, Edge{
				From:      from,
				To:        to,
				FromLabel: labels[from],
				ToLabel:   labels[to],
				Weight:    w,
			})
		}
	}
	return edges, nil
}

// Graph builds the causal graph as a weighted directed gonum graph whose node
// IDs are the original variable indices.
func (res *Result) Graph(labels []string) (*simple.WeightedDirectedGraph, error) {
	edges, err := res.Edges(labels)
	if err != nil {
		return nil, err
	}
	labels, _ = res.labels(labels)

	g := simple.NewWeightedDirectedGraph(0, 0)
	nodes := make([]variableNode, len(labels))
	for i, l := range labels {
		nodes[i] = variableNode{id: int64(i), label: l}
		g.AddNode(nodes[i])
	}
	for _, e := range edges {
		g.SetWeightedEdge(effectEdge{from: nodes[e.From], to: nodes[e.To], weight: e.Weight})
	}
	return g, nil
}

// MarshalDOT renders the causal graph in graphviz DOT format, circles for
// variables and edges labelled with their coefficients.
func (res *Result) MarshalDOT(name string, labels []string) ([]byte, error) {
	g, err := res.Graph(labels)
	if err != nil {
		return nil, err
	}
	b, err := dot.Marshal(g, name, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("marshal DOT: %w", err)
	}
	return b, nil
}

func (res *Result) labels(labels []string) ([]string, error) {
	n := len(res.Order)
	if labels == nil {
		labels = make([]string, n)
		for i := range labels {
			labels[i] = "x" + strconv.Itoa(i)
		}
		return labels, nil
	}
	if len(labels) != n {
		return nil, invalidInput("got %d labels for %d variables", len(labels), n)
	}
	seen := make(map[string]bool, n)
	for _, l := range labels {
		if seen[l] {
			return nil, invalidInput("duplicate label %q", l)
		}
		seen[l] = true
	}
	return labels, nil
}

// variableNode is a graph node carrying its display label.
type variableNode struct {
	id    int64
	label string
}

func (n variableNode) ID() int64      { return n.id }
func (n variableNode) DOTID() string { return n.label }
func (n variableNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "shape", Value: "circle"}}
}

// effectEdge is a weighted edge labelled with its coefficient.
type effectEdge struct {
	from, to variableNode
	weight   float64
}

func (e effectEdge) From() graph.Node { return e.from }
func (e effectEdge) To() graph.Node   { return e.to }
func (e effectEdge) ReversedEdge() graph.Edge {
	return effectEdge{from: e.to, to: e.from, weight: e.weight}
}
func (e effectEdge) Weight() float64 { return e.weight }
func (e effectEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: strconv.FormatFloat(e.weight, 'g', 6, 64)}}
}
