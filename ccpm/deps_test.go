package ccpm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ccpm/arena"
)

func newTestDepTable(t *testing.T, nMax int) *depTable {
	t.Helper()
	a := arena.New(arena.DefaultBudget(nMax))
	dt, err := newDepTable(a, nMax)
	require.NoError(t, err)
	return dt
}

func TestPopulateDependencies_BuildsImmediatePredecessors(t *testing.T) {
	dep := newTestDepTable(t, 4)
	lnkSrc := []uint16{0, 1}
	lnkDst := []uint16{1, 2}

	require.NoError(t, populateDependencies(dep, lnkSrc, lnkDst, 3))

	assert.True(t, dep.Has(1, 0))
	assert.True(t, dep.Has(2, 1))
	assert.False(t, dep.Has(2, 0))
	assert.Equal(t, []uint16{0}, dep.Row(1).Elems())
}

func TestPopulateDependencies_IgnoresDuplicateLink(t *testing.T) {
	dep := newTestDepTable(t, 4)
	lnkSrc := []uint16{0, 0}
	lnkDst := []uint16{1, 1}

	require.NoError(t, populateDependencies(dep, lnkSrc, lnkDst, 3))
	assert.Equal(t, 1, dep.Row(1).Len())
}

func TestPopulateDependencies_RejectsOutOfRange(t *testing.T) {
	dep := newTestDepTable(t, 4)
	err := populateDependencies(dep, []uint16{5}, []uint16{0}, 3)
	assert.ErrorIs(t, err, ErrInvalid)
}
