package ccpm

// splitNestedSets scans pairs of activities whose minimal predecessor sets
// are both non-empty and in strict subset relation, and for every such pair
// factors the smaller set out through a shared dummy via rewriteContaining.
// The pass is bounded to the activities present when the stage started
// (nStart), so dummies this stage inserts are not themselves rescanned in
// the same pass — mirroring the overlap splitter's explicit n_last
// snapshot, applied here for the same termination reason.
//
// Complexity: Time O(nStart^2 * avg |min_dep|), Memory O(1).
func splitNestedSets(e *engine) error {
	nStart := e.nCur

	for i := 0; i < nStart; i++ {
		for j := i + 1; j < nStart; j++ {
			mi, mj := e.minDep.Row(i), e.minDep.Row(j)
			if mi.Len() == 0 || mj.Len() == 0 || mi.Len() == mj.Len() {
				continue
			}

			small, big := mi, mj
			if mi.Len() > mj.Len() {
				small, big = mj, mi
			}
			if !containsAll(big, small.Elems()) {
				continue
			}

			s := append([]uint16(nil), small.Elems()...)
			if err := rewriteContaining(e, s); err != nil {
				return err
			}
		}
	}

	return nil
}
