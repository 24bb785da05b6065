package ccpm

// FakeID is the sentinel marking a dummy activity's id, or a deleted
// activity endpoint / collapsed event. Input activity ids are not checked
// against it: a real activity whose id equals FakeID is treated as a dummy.
const FakeID uint16 = 0xFFFF

// intList is a fixed-capacity, list-in-array view over a []uint16 window:
// slot 0 holds the current length, slots 1..len hold the elements. Append,
// Len, At and Clear are all O(1); capacity is the window size minus one and
// is never checked at runtime (callers size windows from n_max, which is
// derived to always be large enough for every list the engine builds).
type intList struct {
	buf []uint16
}

// newIntList wraps buf as a list view. len(buf) must be at least 1 + the
// maximum number of elements ever appended.
func newIntList(buf []uint16) intList {
	return intList{buf: buf}
}

// Len returns the current number of elements.
func (l intList) Len() int {
	return int(l.buf[0])
}

// At returns the element at position i (0-based, i < Len()).
func (l intList) At(i int) uint16 {
	return l.buf[1+i]
}

// Set overwrites the element at position i (0-based, i < Len()).
func (l intList) Set(i int, v uint16) {
	l.buf[1+i] = v
}

// Clear resets the list to empty without touching capacity.
func (l intList) Clear() {
	l.buf[0] = 0
}

// Append adds v as the new last element and grows Len() by one.
func (l intList) Append(v uint16) {
	n := l.buf[0]
	l.buf[1+n] = v
	l.buf[0] = n + 1
}

// Elems returns the backing elements as a plain slice, aliasing the list's
// storage. Mutating the returned slice mutates the list's elements (not its
// length).
func (l intList) Elems() []uint16 {
	return l.buf[1 : 1+l.Len()]
}

// Contains reports whether v appears among the list's current elements.
func (l intList) Contains(v uint16) bool {
	for _, e := range l.Elems() {
		if e == v {
			return true
		}
	}
	return false
}
