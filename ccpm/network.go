package ccpm

import "fmt"

// appendNetworkDummy inserts a new dummy activity already wired with known
// source and destination events (network-builder dummies are fully resolved
// at the moment they are needed, unlike the nested/overlap splitters' dummies
// which only get a predecessor set and wait for the network builder to
// assign events). It also appends the new position to act_pos, mirroring
// the reference builder appending directly to its position list as it runs.
func (e *engine) appendNetworkDummy(srcEvt, dstEvt uint16) (int, error) {
	d := e.actID.Len()
	if d >= e.nMax {
		return 0, fmt.Errorf("ccpm: appendNetworkDummy: exceeded n_max=%d: %w", e.nMax, ErrInternal)
	}

	e.actID.Append(FakeID)
	e.actPos.Append(uint16(d))
	e.started[d] = true
	e.remDep[d] = 0
	e.actSrc[d] = srcEvt
	e.actDst[d] = dstEvt
	e.nCur++

	return d, nil
}

// buildNetwork performs the topological sweep that assigns every activity
// (real and dummy, as they stood after the nested/overlap splitters) a
// source and destination event. Activities with no remaining minimal
// predecessors start together at the current event; as each batch's
// predecessors are visited, only the first activity of a newly-started
// batch drives destination-event assignment for its own predecessors —
// every other batch member's predecessors were already resolved in an
// earlier round, by construction of the round-by-round sweep.
//
// Complexity: Time O(nCur^2), Memory O(1) beyond the working lists.
func buildNetwork(e *engine) error {
	nStart := e.nCur
	evt := uint16(1)

	e.chk.Clear()
	e.events.Clear()

	for i := 0; i < nStart; i++ {
		e.started[i] = false
		e.remDep[i] = uint16(e.minDep.Row(i).Len())
		e.actSrc[i] = 0
		e.actDst[i] = 0
	}

	for i := 0; i < nStart; i++ {
		if e.remDep[i] == 0 && !e.started[i] {
			e.started[i] = true
			e.actSrc[i] = evt
			e.chk.Append(uint16(i))
		}
	}

	e.events.Append(evt)
	evt++

	for idx := 0; idx < e.chk.Len(); idx++ {
		current := int(e.chk.At(idx))

		for j := 0; j < e.nCur; j++ {
			if e.minDep.Has(j, current) {
				e.remDep[j]--
			}
		}

		e.start.Clear()
		for j := 0; j < e.nCur; j++ {
			if e.remDep[j] == 0 && !e.started[j] {
				e.started[j] = true
				e.actSrc[j] = evt
				e.start.Append(uint16(j))
			}
		}

		if e.start.Len() > 0 {
			first := int(e.start.At(0))
			predRow := e.minDep.Row(first)
			for k := 0; k < predRow.Len(); k++ {
				p := int(predRow.At(k))
				if e.actDst[p] != 0 {
					if _, err := e.appendNetworkDummy(e.actDst[p], evt); err != nil {
						return err
					}
				} else {
					e.actDst[p] = evt
				}
			}

			e.events.Append(evt)
			evt++
		}

		for k := 0; k < e.start.Len(); k++ {
			e.chk.Append(e.start.At(k))
		}
	}

	for i := 0; i < e.nCur; i++ {
		if e.actDst[i] == 0 {
			e.actDst[i] = evt
		}
	}
	e.events.Append(evt)

	return nil
}
