package ccpm

import (
	"fmt"

	"github.com/katalvlaran/ccpm/sortkey"
)

// buildActPos populates e.actPos with every activity position in [0, nAct),
// sorted ascending by the size of its full predecessor set, so that
// activities with fewer predecessors come first.
//
// The reference implementation's act_pos construction starts from position
// 1, silently omitting position 0 from the sort; downstream code then
// indexes act_pos up to length n_act-1, which only happens to avoid an
// out-of-bounds read because the omitted position is never revisited. This
// implementation includes all positions 0..nAct-1, matching the spec's
// plain-language description ("Sort act_pos so that activities with fewer
// predecessors come first") with no carve-out for position 0.
//
// Complexity: Time O(n log n), Memory O(n).
func buildActPos(e *engine) error {
	nAct := e.nAct

	e.actPos.Clear()
	for i := 0; i < nAct; i++ {
		e.actPos.Append(uint16(i))
		e.sortVals[i] = uint16(e.fullDep.Row(i).Len())
	}

	if nAct == 0 {
		return nil
	}

	key := e.actPos.Elems()
	if err := sortkey.Stable(e.sortTmp[:nAct], key, e.sortVals[:nAct]); err != nil {
		return fmt.Errorf("ccpm: buildActPos: %w", err)
	}

	return nil
}

// reduceToMinimal copies the full transitive closure into min_dep/min_map
// and then strips every predecessor that is itself reachable through
// another predecessor, leaving the Hasse (minimal) cover. act_pos must
// already hold activity positions ordered ascending by closure size
// (buildActPos); processing proceeds in reverse (largest closure first) so
// that every full_dep list consulted is still the untouched closure value.
//
// Complexity: Time O(sum n_dep[i]^2), Memory O(1) beyond min_dep.
func reduceToMinimal(e *engine) error {
	nAct := e.nAct
	e.minDep.CopyFrom(e.fullDep)

	key := e.actPos.Elems()
	for idx := nAct - 1; idx >= 0; idx-- {
		i := int(key[idx])
		row := e.fullDep.Row(i)
		n := row.Len()
		for jp := 0; jp < n; jp++ {
			j := int(row.At(jp))
			for kp := 0; kp < n; kp++ {
				if jp == kp {
					continue
				}
				k := int(row.At(kp))
				if e.fullDep.Has(k, j) {
					e.minDep.SetHas(i, j, false)
				}
			}
		}
	}

	for i := 0; i < nAct; i++ {
		e.minDep.RebuildRowFromMap(i)
	}

	return nil
}
