package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafo/core"
)

func TestClone_IsIndependent(t *testing.T) {
	g, err := core.NewGraph(4, core.WithMaxVertices(10))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))

	c := g.Clone()
	require.Equal(t, g.Edges(), c.Edges())
	require.Equal(t, 10, c.MaxVertices())
	require.Equal(t, 4, c.VertexCount())

	require.NoError(t, c.AddEdge(3, 4))
	require.Equal(t, 2, g.EdgeCount())
	require.Equal(t, 3, c.EdgeCount())

	nb, err := g.NeighborIDs(3)
	require.NoError(t, err)
	require.Equal(t, []int{2}, nb)
	nb, err = c.NeighborIDs(3)
	require.NoError(t, err)
	require.Equal(t, []int{2, 4}, nb)
}

func TestCloneEmpty_And_Clear(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 3))

	e := g.CloneEmpty()
	require.Equal(t, 3, e.VertexCount())
	require.Zero(t, e.EdgeCount())
	require.True(t, e.HasVertex(3))

	g.Clear()
	require.Zero(t, g.EdgeCount())
	d, err := g.Degree(1)
	require.NoError(t, err)
	require.Zero(t, d)

	require.NoError(t, g.AddEdge(2, 3), "graph stays usable after Clear")
	require.Equal(t, []core.Edge{{U: 2, V: 3}}, g.Edges())
}
