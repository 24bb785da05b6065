package ccpm

import "fmt"

// validateActivityIDs rejects duplicate activity identifiers.
//
// Complexity: Time O(n^2), Memory O(1).
func validateActivityIDs(actID []uint16) error {
	for i := 0; i < len(actID); i++ {
		for j := i + 1; j < len(actID); j++ {
			if actID[i] == actID[j] {
				return fmt.Errorf("ccpm: validateActivityIDs: duplicate id %d at positions %d,%d: %w", actID[i], i, j, ErrInvalid)
			}
		}
	}

	return nil
}

// validateLinks rejects duplicate (src,dst) precedence pairs. Links are
// compared by the raw ids callers passed in, before normalization.
//
// Complexity: Time O(m^2), Memory O(1).
func validateLinks(lnkSrc, lnkDst []uint16) error {
	if len(lnkSrc) != len(lnkDst) {
		return fmt.Errorf("ccpm: validateLinks: lnkSrc/lnkDst length mismatch (%d != %d): %w", len(lnkSrc), len(lnkDst), ErrInvalid)
	}

	for i := 0; i < len(lnkSrc); i++ {
		for j := i + 1; j < len(lnkSrc); j++ {
			if lnkSrc[i] == lnkSrc[j] && lnkDst[i] == lnkDst[j] {
				return fmt.Errorf("ccpm: validateLinks: duplicate link (%d,%d) at positions %d,%d: %w", lnkSrc[i], lnkDst[i], i, j, ErrInvalid)
			}
		}
	}

	return nil
}
