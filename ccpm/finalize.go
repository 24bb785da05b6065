package ccpm

import (
	"fmt"

	"github.com/katalvlaran/ccpm/sortkey"
)

// finalizeNetwork renumbers events densely (an event equal to its own
// 1-based index survives; any other is a collapsed redirect and is marked
// FAKE), rewrites every surviving activity's endpoints through the result,
// sorts by activity id, and copies surviving arcs into fresh output slices
// that outlive the engine's arena.
//
// A surviving dummy arc's act_id is FAKE by design (the sentinel marking
// "this is a dummy", per invariant 4 and the worked Diamond scenario in the
// spec this engine implements) — only a FAKE act_src or act_dst marks an
// activity as deleted/collapsed and excludes it from output. Dropping every
// activity with act_id == FAKE, the way the reference finalizer's
// pre-existing skip condition reads literally, would silently discard every
// surviving dummy arc; this implementation keeps them, as the worked
// scenarios require.
//
// Complexity: Time O(numEvents + nCur log nCur), Memory O(n_real_out).
func finalizeNetwork(e *engine) (Result, error) {
	numEvents := e.events.Len()
	evt := uint16(1)
	for i := 0; i < numEvents; i++ {
		if e.events.At(i) != uint16(i+1) {
			e.events.Set(i, FakeID)
		} else {
			e.events.Set(i, evt)
			evt++
		}
	}

	for i := 0; i < e.nCur; i++ {
		if e.actSrc[i] == FakeID || e.actDst[i] == FakeID {
			continue
		}

		srcEvt := int(e.actSrc[i]) - 1
		dstEvt := int(e.actDst[i]) - 1
		if e.events.At(srcEvt) == FakeID || e.events.At(dstEvt) == FakeID {
			continue
		}

		e.actSrc[i] = e.events.At(srcEvt)
		e.actDst[i] = e.events.At(dstEvt)
	}

	n := e.actPos.Len()
	key := e.actPos.Elems()
	for _, pos := range key {
		e.sortVals[pos] = e.actID.At(int(pos))
	}
	if err := sortkey.Stable(e.sortTmp[:n], key, e.sortVals); err != nil {
		return Result{}, fmt.Errorf("ccpm: finalizeNetwork: %w", err)
	}

	result := Result{
		ActIDs: make([]uint16, 0, n),
		ActSrc: make([]uint16, 0, n),
		ActDst: make([]uint16, 0, n),
	}

	for _, pos := range key {
		idx := int(pos)
		src, dst := e.actSrc[idx], e.actDst[idx]
		if src == FakeID || dst == FakeID {
			continue
		}

		result.ActIDs = append(result.ActIDs, e.actID.At(idx))
		result.ActSrc = append(result.ActSrc, src)
		result.ActDst = append(result.ActDst, dst)
	}

	return result, nil
}
