package grid_test

import (
	"testing"

	"chunkatlas/internal/domain/grid"

	"github.com/stretchr/testify/require"
)

func TestClassifyRegions_IsolatedChunkIsEdge(t *testing.T) {
	idx := indexFromRows("o")
	require.NoError(t, grid.BuildDistanceField(idx, 5))

	require.Equal(t, 1, grid.ClassifyRegions(idx, 5))
	ch := idx[grid.Coord{}]
	require.Equal(t, 0, ch.ComponentID)
	require.True(t, ch.Edge)
}

func TestClassifyRegions_AllWithinHorizonMeansNoComponents(t *testing.T) {
	idx := indexFromRows("Soo")
	require.NoError(t, grid.BuildDistanceField(idx, 5))
	require.Equal(t, 0, grid.ClassifyRegions(idx, 5))
}

func TestClassifyRegions_PocketSurroundedByPresentChunksIsInterior(t *testing.T) {
	// Fully present 5x5 block, every chunk seeded except the center. At
	// horizon 1 the center falls outside the horizon but all four of its
	// neighbor coordinates exist, so its component never touches the edge.
	idx := indexFromRows(
		"SSSSS",
		"SSSSS",
		"SSoSS",
		"SSSSS",
		"SSSSS",
	)
	require.NoError(t, grid.BuildDistanceField(idx, 1))

	require.Equal(t, 1, grid.ClassifyRegions(idx, 1))
	center := idx[grid.Coord{X: 2, Y: 2}]
	require.Equal(t, 0, center.ComponentID)
	require.False(t, center.Edge)
}

func TestClassifyRegions_TailTouchingMissingNeighborIsEdge(t *testing.T) {
	idx := indexFromRows("Soooo")
	require.NoError(t, grid.BuildDistanceField(idx, 3))

	require.Equal(t, 1, grid.ClassifyRegions(idx, 3))
	for x := 3; x <= 4; x++ {
		ch := idx[grid.Coord{X: x}]
		require.Equal(t, 0, ch.ComponentID, "x=%d", x)
		require.True(t, ch.Edge, "x=%d", x)
	}
	// In-horizon chunks stay out of every component.
	require.Equal(t, grid.ComponentUnset, idx[grid.Coord{X: 0}].ComponentID)
}

func TestClassifyRegions_DisjointRegionsGetDistinctComponents(t *testing.T) {
	idx := indexFromRows(
		"o.o",
	)
	require.NoError(t, grid.BuildDistanceField(idx, 5))

	require.Equal(t, 2, grid.ClassifyRegions(idx, 5))
	a := idx[grid.Coord{X: 0}]
	b := idx[grid.Coord{X: 2}]
	require.NotEqual(t, a.ComponentID, b.ComponentID)
	require.True(t, a.Edge)
	require.True(t, b.Edge)
}

func TestClassifyRegions_EdgeNeighborWithinHorizonStillCountsAsPresent(t *testing.T) {
	// The tail chunk at x=2 borders an in-horizon chunk on one side and a
	// missing coordinate on the other; only the missing coordinate makes its
	// component an edge component.
	idx := indexFromRows(
		".o.",
		"oSo",
		".o.",
		".o.",
	)
	require.NoError(t, grid.BuildDistanceField(idx, 2))

	require.Equal(t, 1, grid.ClassifyRegions(idx, 2))
	tail := idx[grid.Coord{X: 1, Y: 3}]
	require.True(t, tail.Edge)
}
