// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Dec 12th 2025
// Project: DirectLiNGAM Causal Discovery with Kernel Independence Measures
// Class: 02-613 at Caregie Mellon University

package lingam

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/mat"
)

// sampleResult is the worked example K = [0,2,1] with
// B = [[0,0,0],[1,0,0],[2,3,0]]: 0 -> 2 (1), 0 -> 1 (2), 2 -> 1 (3)
func sampleResult() *Result {
	return &Result{
		Order: []int{0, 2, 1},
		Coefficients: mat.NewDense(3, 3, []float64{
			0, 0, 0,
			1, 0, 0,
			2, 3, 0,
		}),
	}
}

func TestResultEdges(t *testing.T) {
	edges, err := sampleResult().Edges([]string{"a", "b", "c"})
	require.NoError(t, err)

	want := []Edge{
		{From: 0, To: 2, FromLabel: "a", ToLabel: "c", Weight: 1},
		{From: 0, To: 1, FromLabel: "a", ToLabel: "b", Weight: 2},
		{From: 2, To: 1, FromLabel: "c", ToLabel: "b", Weight: 3},
	}
	assert.Equal(t, want, edges)

	// Zero coefficients produce no edge
	res := sampleResult()
	res.Coefficients.Set(2, 0, 0)
	edges, err = res.Edges(nil)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, "x0", edges[0].FromLabel)
}

func TestResultAdjacencyMatrix(t *testing.T) {
	B := sampleResult().AdjacencyMatrix()
	want := mat.NewDense(3, 3, []float64{
		0, 0, 0,
		2, 0, 3,
		1, 0, 0,
	})
	assert.True(t, mat.Equal(want, B), "got\n%v", mat.Formatted(B))
}

func TestResultGraphIsAcyclic(t *testing.T) {
	g, err := sampleResult().Graph(nil)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Nodes().Len())
	assert.True(t, g.HasEdgeFromTo(0, 2))
	assert.True(t, g.HasEdgeFromTo(2, 1))
	assert.False(t, g.HasEdgeFromTo(1, 0))

	w, ok := g.Weight(0, 1)
	require.True(t, ok)
	assert.Equal(t, 2.0, w)

	sorted, err := topo.Sort(g)
	require.NoError(t, err)
	ids := make([]int, len(sorted))
	for i, n := range sorted {
		ids[i] = int(n.ID())
	}
	assert.Equal(t, []int{0, 2, 1}, ids)
}

func TestResultGraphFromFit(t *testing.T) {
	res, err := FitSamples(exponentialChain(17, 4, 25), Options{Processes: 2})
	require.NoError(t, err)

	g, err := res.Graph(nil)
	require.NoError(t, err)
	_, err = topo.Sort(g)
	require.NoError(t, err, "discovered graph must be a DAG")
}

func TestResultMarshalDOT(t *testing.T) {
	b, err := sampleResult().MarshalDOT("causal", []string{"a", "b", "c"})
	require.NoError(t, err)

	dot := string(b)
	assert.Contains(t, dot, "digraph causal {")
	assert.Contains(t, dot, "shape=circle")
	assert.Contains(t, dot, "label=")
	assert.Equal(t, 3, strings.Count(dot, "->"))
}

func TestResultLabelErrors(t *testing.T) {
	res := sampleResult()

	_, err := res.Edges([]string{"a", "b"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = res.Graph([]string{"a", "a", "b"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = res.MarshalDOT("g", []string{"a"})
	require.ErrorIs(t, err, ErrInvalidInput)
}
