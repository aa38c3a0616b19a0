package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafo/bfs"
	"github.com/katalvlaran/grafo/core"
)

func TestFindPaths_MatchesSequential(t *testing.T) {
	g := mustGraph(t, 8,
		[2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{1, 5},
		[2]int{5, 4}, [2]int{6, 7},
	)

	var queries []bfs.Query
	for s := 1; s <= 8; s++ {
		for e := 1; e <= 8; e++ {
			queries = append(queries, bfs.Query{Start: s, End: e})
		}
	}

	for _, limit := range []int{0, 1, 3} {
		results, err := bfs.FindPaths(context.Background(), g, queries, bfs.WithConcurrency(limit))
		require.NoError(t, err)
		require.Len(t, results, len(queries))

		for i, q := range queries {
			want, err := bfs.FindPath(g, q.Start, q.End)
			require.NoError(t, err)
			require.Equal(t, want, results[i], "limit=%d query %d", limit, i)
		}
	}
}

func TestFindPaths_Errors(t *testing.T) {
	_, err := bfs.FindPaths(context.Background(), nil, nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := mustGraph(t, 3, [2]int{1, 2})

	_, err = bfs.FindPaths(context.Background(), g, nil, bfs.WithConcurrency(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.FindPaths(context.Background(), g, []bfs.Query{{Start: 1, End: 2}, {Start: 1, End: 9}})
	require.ErrorIs(t, err, core.ErrOutOfRange)
	require.Contains(t, err.Error(), "query 1")

	results, err := bfs.FindPaths(context.Background(), g, nil)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestFindPaths_CancelledContext(t *testing.T) {
	g := mustGraph(t, 3, [2]int{1, 2}, [2]int{2, 3})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.FindPaths(ctx, g, []bfs.Query{{Start: 1, End: 3}})
	require.ErrorIs(t, err, context.Canceled)
}
