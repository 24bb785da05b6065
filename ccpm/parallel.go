package ccpm

import (
	"fmt"

	"github.com/katalvlaran/ccpm/sortkey"
)

// sortActPosByDstThenSrc stably sorts act_pos first by act_dst, then by
// act_src, so that activities sharing both endpoints end up adjacent: the
// second (dominant) pass breaks ties with the first pass's order, which is
// exactly what groups equal (src,dst) pairs together.
func sortActPosByDstThenSrc(e *engine) error {
	n := e.actPos.Len()
	if n == 0 {
		return nil
	}
	key := e.actPos.Elems()

	for _, pos := range key {
		e.sortVals[pos] = e.actDst[pos]
	}
	if err := sortkey.Stable(e.sortTmp[:n], key, e.sortVals); err != nil {
		return fmt.Errorf("ccpm: sortActPosByDstThenSrc: %w", err)
	}

	for _, pos := range key {
		e.sortVals[pos] = e.actSrc[pos]
	}
	if err := sortkey.Stable(e.sortTmp[:n], key, e.sortVals); err != nil {
		return fmt.Errorf("ccpm: sortActPosByDstThenSrc: %w", err)
	}

	return nil
}

// resolveParallelArcsPass runs one adjacency scan over act_pos (sorted by
// act_dst then act_src) and inserts a dummy for every adjacent pair of
// surviving activities that still share both endpoints, reusing e.started
// as the pass's "not yet resolved" marker (see engine.go: by this stage
// every live position already has started[i] == true). It reports whether
// it inserted at least one dummy.
//
// Complexity: Time O(n log n) for the sort plus O(n) for the scan, Memory O(1).
func resolveParallelArcsPass(e *engine) (bool, error) {
	if err := sortActPosByDstThenSrc(e); err != nil {
		return false, err
	}

	d := e.actPos.Len()
	if d == 0 {
		return false, nil
	}

	lastEvt := e.events.At(e.events.Len() - 1)
	inserted := false

	for i := 0; i < d; i++ {
		actI := int(e.actPos.At(i))
		if e.actSrc[actI] == FakeID || e.actDst[actI] == FakeID {
			continue
		}
		if !e.started[actI] {
			continue
		}

		for j := i + 1; j < d; j++ {
			actJ := int(e.actPos.At(j))
			if e.actSrc[actJ] == FakeID || e.actDst[actJ] == FakeID {
				continue
			}

			if e.actDst[actI] != e.actDst[actJ] || e.actSrc[actI] != e.actSrc[actJ] {
				continue
			}

			e.started[actJ] = false
			lastEvt++
			oldDst := e.actDst[actI]
			e.actDst[actJ] = lastEvt

			dummy := e.actID.Len()
			if dummy >= e.nMax {
				return false, fmt.Errorf("ccpm: resolveParallelArcsPass: exceeded n_max=%d: %w", e.nMax, ErrInternal)
			}
			e.actID.Append(FakeID)
			e.actPos.Append(uint16(dummy))
			e.actSrc[dummy] = lastEvt
			e.actDst[dummy] = oldDst
			e.started[dummy] = false
			e.nCur++

			e.events.Append(lastEvt)
			inserted = true
		}
	}

	return inserted, nil
}

// resolveParallelArcs iterates resolveParallelArcsPass to a fixed point: the
// source's single-pass adjacency scan does not detect parallel arcs created
// by dummies inserted within the same pass, so this wraps it in an outer
// loop that stops as soon as a full pass inserts nothing. Each pass strictly
// reduces the number of same-endpoint activity pairs, so this cannot loop
// more than nMax times.
//
// Complexity: Time O(nMax * n log n), Memory O(1).
func resolveParallelArcs(e *engine) error {
	for iter := 0; iter < e.nMax; iter++ {
		inserted, err := resolveParallelArcsPass(e)
		if err != nil {
			return err
		}
		if !inserted {
			return nil
		}
	}

	return fmt.Errorf("ccpm: resolveParallelArcs: did not converge within n_max=%d passes: %w", e.nMax, ErrInternal)
}
