package ccpm

// applyGlue rewrites every surviving activity's event endpoints through the
// events redirect table. events acts as a disjoint-set-like map: events[e]
// holds the canonical event number event e+1 now resolves to, so this is
// always idempotent to re-apply.
//
// Complexity: Time O(nCur), Memory O(1).
func applyGlue(e *engine) {
	for k := 0; k < e.nCur; k++ {
		if e.actSrc[k] == FakeID || e.actDst[k] == FakeID {
			continue
		}

		srcEvt := int(e.actSrc[k]) - 1
		dstEvt := int(e.actDst[k]) - 1
		e.actSrc[k] = e.events.At(srcEvt)
		e.actDst[k] = e.events.At(dstEvt)
	}
}

// populateEventTables rebuilds evt_deps/evt_dins/evt_real from the current
// act_src/act_dst assignments: for every dummy activity, its destination
// event records the dummy's source event as a dependency; any real activity
// ending at an event marks that event evt_real.
//
// Complexity: Time O(nCur), Memory O(1).
func populateEventTables(e *engine) {
	numEvents := e.events.Len()
	for i := 0; i < numEvents; i++ {
		e.evtDeps.ClearRow(i)
		e.evtDins.Row(i).Clear()
		e.evtReal[i] = false
	}

	for k := 0; k < e.nCur; k++ {
		srcEvt := int(e.actSrc[k]) - 1
		dstEvt := int(e.actDst[k]) - 1

		if e.actID.At(k) != FakeID {
			e.evtReal[dstEvt] = true
			continue
		}

		e.evtDins.Row(dstEvt).Append(uint16(k))
		e.evtDeps.Row(dstEvt).Append(uint16(srcEvt))
		e.evtDeps.SetHas(dstEvt, srcEvt, true)
	}
}

// glueStage1 merges events whose only inputs are dummies and which share an
// identical dummy-predecessor-event set, and collapses events with exactly
// one dummy input into that dummy's source event.
//
// Complexity: Time O(numEvents^2 * avg |evt_deps|), Memory O(1).
func glueStage1(e *engine) error {
	populateEventTables(e)
	numEvents := e.events.Len()

	for i := 0; i < numEvents; i++ {
		if e.evtReal[i] {
			continue
		}
		iDeps := e.evtDeps.Row(i)
		if iDeps.Len() < 2 {
			continue
		}

		for j := i + 1; j < numEvents; j++ {
			if e.evtReal[j] {
				continue
			}
			jDeps := e.evtDeps.Row(j)
			if jDeps.Len() < 2 || jDeps.Len() != iDeps.Len() {
				continue
			}

			matched := 0
			for k := 0; k < iDeps.Len(); k++ {
				if e.evtDeps.Has(j, int(iDeps.At(k))) {
					matched++
				}
			}
			if matched != iDeps.Len() {
				continue
			}

			e.events.Set(j, e.events.At(i))
			dins := e.evtDins.Row(j)
			for k := 0; k < dins.Len(); k++ {
				dummy := int(dins.At(k))
				e.actSrc[dummy] = FakeID
				e.actDst[dummy] = FakeID
			}
		}
	}

	for i := 0; i < numEvents; i++ {
		if e.evtReal[i] {
			continue
		}
		if e.evtDeps.Row(i).Len() == 1 {
			dummy := int(e.evtDins.Row(i).At(0))
			e.events.Set(i, e.actSrc[dummy])
			e.actSrc[dummy] = FakeID
			e.actDst[dummy] = FakeID
		}
	}

	applyGlue(e)

	return nil
}

// glueStage2 collapses every event whose only outgoing activity is a single
// dummy into that dummy's destination event.
//
// Complexity: Time O(nCur + numEvents), Memory O(1).
func glueStage2(e *engine) error {
	numEvents := e.events.Len()
	for i := 0; i < numEvents; i++ {
		e.evtDouts.Row(i).Clear()
		e.evtNout[i] = 0
	}

	for k := 0; k < e.nCur; k++ {
		if e.actSrc[k] == FakeID || e.actDst[k] == FakeID {
			continue
		}

		srcEvt := int(e.actSrc[k]) - 1
		e.evtNout[srcEvt]++
		if e.actID.At(k) == FakeID {
			e.evtDouts.Row(srcEvt).Append(uint16(k))
		}
	}

	for i := 0; i < numEvents; i++ {
		if e.evtNout[i] > 1 {
			continue
		}
		douts := e.evtDouts.Row(i)
		if douts.Len() == 0 {
			continue
		}

		dummy := int(douts.At(0))
		e.events.Set(i, e.actDst[dummy])
		e.actSrc[dummy] = FakeID
		e.actDst[dummy] = FakeID
	}

	applyGlue(e)

	return nil
}
