package ccpm

import "fmt"

// buildFullClosure expands dep (populated with immediate predecessors only)
// into its transitive closure in place. Because newly appended members
// extend the very list being ranged over, a single pass over each row
// naturally fixes-points as that row saturates.
//
// Complexity: Time O(n^3) worst case, Memory O(1) beyond dep itself.
func buildFullClosure(dep *depTable, nAct int) error {
	for i := 0; i < nAct; i++ {
		row := dep.Row(i)
		for jIdx := 0; jIdx < row.Len(); jIdx++ {
			k := int(row.At(jIdx))
			kRow := dep.Row(k)
			for lIdx := 0; lIdx < kRow.Len(); lIdx++ {
				m := int(kRow.At(lIdx))
				if dep.Has(i, m) {
					continue
				}
				dep.SetHas(i, m, true)
				if i == m {
					return fmt.Errorf("ccpm: buildFullClosure: cycle through activity %d: %w", i, ErrLoop)
				}
				row.Append(uint16(m))
			}
		}
	}

	return nil
}
