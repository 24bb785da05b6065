package ccpm

import "github.com/katalvlaran/ccpm/arena"

// depTable holds one predecessor-set representation: a flat n_max*n_max
// array of list-in-array rows (row i = the dependency list for activity i,
// capacity n_max-1 elements since slot 0 of the row holds the length) plus
// a parallel n_max*n_max bitmap for O(1) membership tests. full_dep/full_map
// and min_dep/min_map in the spec are each one depTable.
type depTable struct {
	nMax int
	dep  []uint16
	mp   []bool
}

func newDepTable(a *arena.Arena, nMax int) (*depTable, error) {
	dep, err := a.AllocUint16(nMax * nMax)
	if err != nil {
		return nil, err
	}
	mp, err := a.AllocBool(nMax * nMax)
	if err != nil {
		return nil, err
	}
	return &depTable{nMax: nMax, dep: dep, mp: mp}, nil
}

// Row returns the list view of activity i's predecessor set.
func (t *depTable) Row(i int) intList {
	return newIntList(t.dep[i*t.nMax : (i+1)*t.nMax])
}

// Has reports whether j is a predecessor of i per this table's bitmap.
func (t *depTable) Has(i, j int) bool {
	return t.mp[i*t.nMax+j]
}

// SetHas sets or clears the (i,j) bit.
func (t *depTable) SetHas(i, j int, v bool) {
	t.mp[i*t.nMax+j] = v
}

// ClearRow empties activity i's list and its outgoing bitmap row.
func (t *depTable) ClearRow(i int) {
	t.Row(i).Clear()
	off := i * t.nMax
	for j := 0; j < t.nMax; j++ {
		t.mp[off+j] = false
	}
}

// RebuildRowFromMap repopulates activity i's list from its current bitmap
// row, in ascending member order.
func (t *depTable) RebuildRowFromMap(i int) {
	row := t.Row(i)
	row.Clear()
	off := i * t.nMax
	for j := 0; j < t.nMax; j++ {
		if t.mp[off+j] {
			row.Append(uint16(j))
		}
	}
}

// CopyFrom overwrites this table's contents with src's. Both must share nMax.
func (t *depTable) CopyFrom(src *depTable) {
	copy(t.dep, src.dep)
	copy(t.mp, src.mp)
}
