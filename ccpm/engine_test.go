package ccpm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ccpm/arena"
	"github.com/katalvlaran/ccpm/ccpm/diag"
)

// newTestEngine builds a ready engine over actID with fullDep already
// populated and closed (immediate predecessors from lnkSrc/lnkDst, then
// transitive closure), positions normalized from activity ids. The caller
// owns no cleanup: the backing arena is never released in tests, since
// these engines are scoped to a single test function's stack.
func newTestEngine(t *testing.T, actID []uint16, lnkSrc, lnkDst []uint16) *engine {
	t.Helper()

	nAct := len(actID)
	nLnk := len(lnkSrc)
	nMax := nAct + max(nLnk, nAct)

	a := arena.New(arena.DefaultBudget(nMax))
	e, err := newEngine(a, diag.Disabled(), actID, nLnk)
	require.NoError(t, err)

	srcCopy := append([]uint16(nil), lnkSrc...)
	dstCopy := append([]uint16(nil), lnkDst...)
	require.NoError(t, normalizeLinks(actID, nAct, srcCopy, dstCopy))
	require.NoError(t, populateDependencies(e.fullDep, srcCopy, dstCopy, nAct))
	require.NoError(t, buildFullClosure(e.fullDep, nAct))

	return e
}
