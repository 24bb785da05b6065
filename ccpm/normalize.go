package ccpm

import "fmt"

// lookupPos returns the activity position whose id equals want, or (0,
// false) if no such activity exists among the first nAct entries of actID.
//
// Complexity: Time O(n), Memory O(1).
func lookupPos(actID []uint16, nAct int, want uint16) (int, bool) {
	for i := 0; i < nAct; i++ {
		if actID[i] == want {
			return i, true
		}
	}

	return 0, false
}

// normalizeLinks rewrites lnkSrc/lnkDst in place from activity ids to dense
// positions in [0, nAct). Fails ErrInvalid if any endpoint id does not
// resolve to a known activity.
//
// Complexity: Time O(n_lnk * n_act), Memory O(1).
func normalizeLinks(actID []uint16, nAct int, lnkSrc, lnkDst []uint16) error {
	for k := range lnkSrc {
		pos, ok := lookupPos(actID, nAct, lnkSrc[k])
		if !ok {
			return fmt.Errorf("ccpm: normalizeLinks: link %d: unknown source activity id %d: %w", k, lnkSrc[k], ErrInvalid)
		}
		lnkSrc[k] = uint16(pos)

		pos, ok = lookupPos(actID, nAct, lnkDst[k])
		if !ok {
			return fmt.Errorf("ccpm: normalizeLinks: link %d: unknown destination activity id %d: %w", k, lnkDst[k], ErrInvalid)
		}
		lnkDst[k] = uint16(pos)
	}

	return nil
}
