package ccpm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ccpm/ccpm"
)

func TestBuildFullMap_TransitivePredecessors(t *testing.T) {
	fm, err := ccpm.BuildFullMap(
		[]uint16{1, 2, 3},
		[]uint16{1, 2},
		[]uint16{2, 3},
	)
	require.NoError(t, err)

	assert.True(t, fm.IsPredecessor(1, 2))
	assert.True(t, fm.IsPredecessor(1, 3), "1 must be a transitive predecessor of 3")
	assert.True(t, fm.IsPredecessor(2, 3))
	assert.False(t, fm.IsPredecessor(3, 1))
	assert.False(t, fm.IsPredecessor(2, 1))

	assert.ElementsMatch(t, []uint16{1, 2}, fm.Predecessors(3))
	assert.Empty(t, fm.Predecessors(1))
}

func TestBuildFullMap_UnknownIDsAreFalseNotPanic(t *testing.T) {
	fm, err := ccpm.BuildFullMap([]uint16{1, 2}, nil, nil)
	require.NoError(t, err)

	assert.False(t, fm.IsPredecessor(1, 99))
	assert.False(t, fm.IsPredecessor(99, 1))
	assert.Nil(t, fm.Predecessors(99))
}

func TestBuildFullMap_DoesNotMutateCallerLinks(t *testing.T) {
	lnkSrc := []uint16{1}
	lnkDst := []uint16{2}

	_, err := ccpm.BuildFullMap([]uint16{1, 2}, lnkSrc, lnkDst)
	require.NoError(t, err)

	assert.Equal(t, []uint16{1}, lnkSrc, "BuildFullMap must not mutate caller-owned links")
	assert.Equal(t, []uint16{2}, lnkDst)
}

func TestBuildFullMap_RejectsCycle(t *testing.T) {
	_, err := ccpm.BuildFullMap([]uint16{1, 2}, []uint16{1, 2}, []uint16{2, 1})
	assert.ErrorIs(t, err, ccpm.ErrLoop)
}
