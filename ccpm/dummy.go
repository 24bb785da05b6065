package ccpm

import "fmt"

// containsAll reports whether every element of s appears in row.
func containsAll(row intList, s []uint16) bool {
	for _, v := range s {
		if !row.Contains(v) {
			return false
		}
	}

	return true
}

// intersect writes the members common to a and b into e.minComDeps (cleared
// first) and returns it as a plain slice. The returned slice aliases
// e.minComDeps's storage and is invalidated by the next call.
func intersect(e *engine, a, b intList) []uint16 {
	e.minComDeps.Clear()
	for _, v := range a.Elems() {
		if b.Contains(v) {
			e.minComDeps.Append(v)
		}
	}

	return e.minComDeps.Elems()
}

// addDummy inserts a new dummy activity at position nCur with minimal
// predecessor set exactly S and full predecessor set the transitive closure
// of S (S itself plus every full predecessor of every member of S). It
// returns the new position. Callers must have already checked nCur < nMax.
//
// Complexity: Time O(|S| * avg full_dep size), Memory O(1).
func addDummy(e *engine, s []uint16) (int, error) {
	if e.nCur >= e.nMax {
		return 0, fmt.Errorf("ccpm: addDummy: exceeded n_max=%d: %w", e.nMax, ErrInternal)
	}

	d := e.actID.Len()
	e.actID.Append(FakeID)
	e.actPos.Append(uint16(d))
	e.nCur++

	minRow := e.minDep.Row(d)
	for _, m := range s {
		e.minDep.SetHas(d, int(m), true)
		minRow.Append(m)
	}

	fullRow := e.fullDep.Row(d)
	for _, m := range s {
		if !e.fullDep.Has(d, int(m)) {
			e.fullDep.SetHas(d, int(m), true)
			fullRow.Append(m)
		}
		predRow := e.fullDep.Row(int(m))
		for k := 0; k < predRow.Len(); k++ {
			p := predRow.At(k)
			if !e.fullDep.Has(d, int(p)) {
				e.fullDep.SetHas(d, int(p), true)
				fullRow.Append(p)
			}
		}
	}

	return d, nil
}

// rewriteContaining finds every activity in [0, nCur) whose minimal
// predecessor set is a strict superset of s (as it stood when this function
// was entered), inserts one dummy d for s, and rewrites each qualifying
// activity's min_dep/min_map and full_dep/full_map to depend on d instead
// of s's members directly.
//
// Complexity: Time O(nCur * |s|), Memory O(1) beyond the target list.
func rewriteContaining(e *engine, s []uint16) error {
	if len(s) == 0 {
		return nil
	}

	var targets []int
	for t := 0; t < e.nCur; t++ {
		row := e.minDep.Row(t)
		if row.Len() <= len(s) {
			continue
		}
		if containsAll(row, s) {
			targets = append(targets, t)
		}
	}
	if len(targets) == 0 {
		return nil
	}

	d, err := addDummy(e, s)
	if err != nil {
		return fmt.Errorf("ccpm: rewriteContaining: %w", err)
	}

	for _, t := range targets {
		for _, m := range s {
			e.minDep.SetHas(t, int(m), false)
		}
		e.minDep.SetHas(t, d, true)
		e.minDep.RebuildRowFromMap(t)

		if !e.fullDep.Has(t, d) {
			e.fullDep.SetHas(t, d, true)
			e.fullDep.Row(t).Append(uint16(d))
		}
	}

	return nil
}
