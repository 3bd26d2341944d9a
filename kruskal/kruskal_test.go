package kruskal_test

import (
	"testing"

	"github.com/katalvlaran/msf/boruvka"
	"github.com/katalvlaran/msf/kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTriangle returns A—B (1), B—C (2), A—C (3) as 0—1, 1—2, 0—2.
func buildTriangle() []boruvka.Edge {
	return []boruvka.Edge{{From: 0, To: 1, Cost: 1}, {From: 1, To: 2, Cost: 2}, {From: 0, To: 2, Cost: 3}}
}

// TestForest_Triangle checks the classic triangle: MST = {0-1, 1-2}, weight 3.
func TestForest_Triangle(t *testing.T) {
	forest, total, err := kruskal.Forest(buildTriangle(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []boruvka.Edge{{From: 0, To: 1, Cost: 1}, {From: 1, To: 2, Cost: 2}}, forest)
}

// TestForest_StableTies verifies that equal costs keep input order.
func TestForest_StableTies(t *testing.T) {
	edges := []boruvka.Edge{{From: 0, To: 1, Cost: 5}, {From: 1, To: 2, Cost: 5}, {From: 0, To: 2, Cost: 5}}
	forest, total, err := kruskal.Forest(edges, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(10), total)
	assert.Equal(t, edges[:2], forest)
}

// TestForest_Disconnected returns one tree per component instead of an error.
func TestForest_Disconnected(t *testing.T) {
	edges := []boruvka.Edge{{From: 0, To: 1, Cost: 4}, {From: 2, To: 3, Cost: -2}, {From: 3, To: 2, Cost: 7}}
	forest, total, err := kruskal.Forest(edges, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, forest, 2)

	comp, err := kruskal.Components(edges, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, comp)
	assert.True(t, kruskal.IsForest(forest, 5))
}

// TestForest_Empty covers n = 0 and an isolated vertex.
func TestForest_Empty(t *testing.T) {
	forest, total, err := kruskal.Forest(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, forest)
	assert.Zero(t, total)

	forest, total, err = kruskal.Forest(nil, 1)
	require.NoError(t, err)
	assert.Empty(t, forest)
	assert.Zero(t, total)
}

// TestValidation shares boruvka's sentinels.
func TestValidation(t *testing.T) {
	_, _, err := kruskal.Forest(buildTriangle(), 2)
	assert.ErrorIs(t, err, boruvka.ErrInvalidInput)
	assert.ErrorIs(t, err, boruvka.ErrVertexOutOfRange)

	_, err = kruskal.Components(nil, -1)
	assert.ErrorIs(t, err, boruvka.ErrNegativeVertices)

	assert.False(t, kruskal.IsForest(buildTriangle(), 2))
}

// TestIsForest detects cycles, including self-loops and parallel edges.
func TestIsForest(t *testing.T) {
	assert.True(t, kruskal.IsForest(buildTriangle()[:2], 3))
	assert.False(t, kruskal.IsForest(buildTriangle(), 3))
	assert.False(t, kruskal.IsForest([]boruvka.Edge{{From: 1, To: 1}}, 2))
	assert.False(t, kruskal.IsForest([]boruvka.Edge{{From: 0, To: 1}, {From: 1, To: 0}}, 2))
	assert.True(t, kruskal.IsForest(nil, 0))
}
