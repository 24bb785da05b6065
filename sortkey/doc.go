// Package sortkey implements the stable key-permutation sort primitive the
// ccpm engine builds its multi-key passes on (parallel-arc detection sorts
// by destination then by source; finalization sorts by activity id).
//
// Stable reorders a key slice of positions so that val[key[0]] <= val[key[1]]
// <= ...; equal keys keep their relative order, which later stable passes
// over a different field rely on to compose a multi-key sort from single-key
// ones. The sort is an iterative, bottom-up merge sort: it processes runs of
// doubling width directly rather than recursing, alternating the role of the
// caller-supplied key and scratch buffers each pass.
//
// Complexity: Time O(n log n), Memory O(1) beyond the caller-supplied buffers.
package sortkey
