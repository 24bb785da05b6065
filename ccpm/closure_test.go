package ccpm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFullClosure_ExpandsTransitively(t *testing.T) {
	// 0 -> 1 -> 2 (0 is an immediate predecessor of 1, 1 of 2)
	dep := newTestDepTable(t, 4)
	require.NoError(t, populateDependencies(dep, []uint16{0, 1}, []uint16{1, 2}, 3))

	require.NoError(t, buildFullClosure(dep, 3))

	assert.True(t, dep.Has(1, 0))
	assert.True(t, dep.Has(2, 1))
	assert.True(t, dep.Has(2, 0), "2's closure must include 0 transitively")
	assert.False(t, dep.Has(0, 0))
	assert.False(t, dep.Has(1, 1))
}

func TestBuildFullClosure_DetectsCycle(t *testing.T) {
	dep := newTestDepTable(t, 4)
	require.NoError(t, populateDependencies(dep, []uint16{0, 1}, []uint16{1, 0}, 2))

	err := buildFullClosure(dep, 2)
	assert.ErrorIs(t, err, ErrLoop)
}

func TestBuildFullClosure_NoLinksIsNoOp(t *testing.T) {
	dep := newTestDepTable(t, 4)
	require.NoError(t, buildFullClosure(dep, 3))
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0, dep.Row(i).Len())
	}
}
