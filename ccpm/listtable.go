package ccpm

import "github.com/katalvlaran/ccpm/arena"

// listTable is a flat nRows*rowWidth array of list-in-array rows with no
// companion bitmap; used where only membership-free enumeration is needed
// (an event's dummy inputs/outputs), unlike depTable which also needs O(1)
// membership tests.
type listTable struct {
	rowWidth int
	buf      []uint16
}

func newListTable(a *arena.Arena, nRows, rowWidth int) (*listTable, error) {
	buf, err := a.AllocUint16(nRows * rowWidth)
	if err != nil {
		return nil, err
	}
	return &listTable{rowWidth: rowWidth, buf: buf}, nil
}

// Row returns the list view for row i.
func (t *listTable) Row(i int) intList {
	return newIntList(t.buf[i*t.rowWidth : (i+1)*t.rowWidth])
}
