package sortkey

// Stable reorders key in place so that val[key[0]] <= val[key[1]] <= ... <=
// val[key[n-1]], preserving the relative order of equal-valued entries. tmp
// is caller-owned scratch space of length >= len(key); it is clobbered.
//
// Stable returns ErrInvalidInput if key or val is nil, or if tmp is nil or
// shorter than key. An empty key slice is a no-op success, per spec.
//
// Complexity: Time O(n log n), Memory O(1) (in addition to key/tmp/val).
func Stable(tmp, key, val []uint16) error {
	if key == nil || val == nil {
		return ErrInvalidInput
	}
	n := len(key)
	if n == 0 {
		return nil
	}
	if tmp == nil || len(tmp) < n {
		return ErrInvalidInput
	}

	src := key
	dst := tmp[:n]

	// Bottom-up: merge runs of width 1, then 2, 4, ... until width >= n.
	// After each full pass over all runs, src and dst swap roles so the
	// next pass reads what was just written, without recursing.
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := lo + width
			if mid > n {
				mid = n
			}
			hi := lo + 2*width
			if hi > n {
				hi = n
			}
			mergeRun(dst[lo:hi], src[lo:mid], src[mid:hi], val)
		}
		src, dst = dst, src
	}

	// If the final sorted run landed in tmp rather than key, copy it back.
	if len(src) > 0 && &src[0] != &key[0] {
		copy(key, src)
	}
	return nil
}

// mergeRun merges two adjacent sorted runs (by val[...] order) into out,
// preferring left on ties so the merge is stable.
func mergeRun(out, left, right []uint16, val []uint16) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if val[left[i]] <= val[right[j]] {
			out[k] = left[i]
			i++
		} else {
			out[k] = right[j]
			j++
		}
		k++
	}
	for i < len(left) {
		out[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		out[k] = right[j]
		j++
		k++
	}
}
