package ccpm

// splitOverlappingSets scans pairs of activities whose minimal predecessor
// sets share a non-empty common subset that is strictly smaller than both
// sets (neither contains the other — the nested case is splitNestedSets's
// job), and factors the common part out through a shared dummy. n_last is
// snapshotted as nStart before the scan so dummies inserted during this
// pass are never themselves rescanned; termination follows because every
// rewrite strictly reduces the sum of |min_dep[t]| over the activities it
// touches.
//
// Complexity: Time O(nStart^2 * avg |min_dep|), Memory O(1).
func splitOverlappingSets(e *engine) error {
	nStart := e.nCur

	for i := 0; i < nStart; i++ {
		for j := i + 1; j < nStart; j++ {
			mi, mj := e.minDep.Row(i), e.minDep.Row(j)
			if mi.Len() == 0 || mj.Len() == 0 {
				continue
			}

			common := intersect(e, mi, mj)
			if len(common) == 0 || len(common) >= mi.Len() || len(common) >= mj.Len() {
				continue
			}

			s := append([]uint16(nil), common...)
			if err := rewriteContaining(e, s); err != nil {
				return err
			}
		}
	}

	return nil
}
