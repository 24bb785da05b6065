package ccpm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceToMinimal_DiamondDropsRedundantPredecessor(t *testing.T) {
	// 0 -> 1, 0 -> 2, 1 -> 3, 2 -> 3: 3's full closure is {0,1,2} but 0 is
	// reachable through both 1 and 2, so the Hasse cover for 3 is just {1,2}.
	actID := []uint16{1, 2, 3, 4}
	e := newTestEngine(t, actID, []uint16{1, 1, 2, 3}, []uint16{2, 3, 4, 4})

	require.NoError(t, buildActPos(e))
	require.NoError(t, reduceToMinimal(e))

	assert.ElementsMatch(t, []uint16{0}, e.minDep.Row(1).Elems())
	assert.ElementsMatch(t, []uint16{0}, e.minDep.Row(2).Elems())
	assert.ElementsMatch(t, []uint16{1, 2}, e.minDep.Row(3).Elems())
	assert.Empty(t, e.minDep.Row(0).Elems())
}

func TestBuildActPos_SortsByClosureSize(t *testing.T) {
	actID := []uint16{1, 2, 3, 4}
	e := newTestEngine(t, actID, []uint16{1, 1, 2, 3}, []uint16{2, 3, 4, 4})

	require.NoError(t, buildActPos(e))

	sizes := make([]int, e.actPos.Len())
	for i, pos := range e.actPos.Elems() {
		sizes[i] = e.fullDep.Row(int(pos)).Len()
	}
	for i := 1; i < len(sizes); i++ {
		assert.LessOrEqual(t, sizes[i-1], sizes[i])
	}
}
