package ccpm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildThroughSplitters(t *testing.T, actID []uint16, lnkSrc, lnkDst []uint16) *engine {
	t.Helper()
	e := newTestEngine(t, actID, lnkSrc, lnkDst)
	require.NoError(t, buildActPos(e))
	require.NoError(t, reduceToMinimal(e))
	require.NoError(t, splitNestedSets(e))
	require.NoError(t, splitOverlappingSets(e))
	return e
}

func TestBuildNetwork_Chain(t *testing.T) {
	e := buildThroughSplitters(t, []uint16{1, 2, 3}, []uint16{1, 2}, []uint16{2, 3})
	require.NoError(t, buildNetwork(e))

	assert.Equal(t, uint16(1), e.actSrc[0])
	assert.Equal(t, uint16(2), e.actDst[0])
	assert.Equal(t, uint16(2), e.actSrc[1])
	assert.Equal(t, uint16(3), e.actDst[1])
	assert.Equal(t, uint16(3), e.actSrc[2])
	assert.Equal(t, uint16(4), e.actDst[2])
}

func TestBuildNetwork_IndependentActivitiesShareEndpoints(t *testing.T) {
	// Two wholly independent activities both start at event 1 and, absent
	// any successor to separate them, both end at the same later event —
	// exactly the condition the parallel-arc resolver exists to fix.
	e := buildThroughSplitters(t, []uint16{1, 2}, nil, nil)
	require.NoError(t, buildNetwork(e))

	assert.Equal(t, e.actSrc[0], e.actSrc[1])
	assert.Equal(t, e.actDst[0], e.actDst[1])
}
