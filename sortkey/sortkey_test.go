package sortkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStable_EmptyIsOK(t *testing.T) {
	err := Stable(nil, []uint16{}, []uint16{})
	assert.NoError(t, err)
}

func TestStable_NilInputsFail(t *testing.T) {
	assert.ErrorIs(t, Stable(make([]uint16, 1), nil, []uint16{1}), ErrInvalidInput)
	assert.ErrorIs(t, Stable(make([]uint16, 1), []uint16{0}, nil), ErrInvalidInput)
	assert.ErrorIs(t, Stable(nil, []uint16{0}, []uint16{1}), ErrInvalidInput)
	assert.ErrorIs(t, Stable(make([]uint16, 0), []uint16{0}, []uint16{1}), ErrInvalidInput)
}

func TestStable_SortsByValue(t *testing.T) {
	val := []uint16{30, 10, 20, 10}
	key := []uint16{0, 1, 2, 3}
	tmp := make([]uint16, len(key))

	require.NoError(t, Stable(tmp, key, val))

	got := make([]uint16, len(key))
	for i, k := range key {
		got[i] = val[k]
	}
	assert.Equal(t, []uint16{10, 10, 20, 30}, got)
}

func TestStable_IsStableOnTies(t *testing.T) {
	// Two groups of equal value; within a group, original key order must survive.
	val := []uint16{1, 1, 1, 0, 0}
	key := []uint16{0, 1, 2, 3, 4}
	tmp := make([]uint16, len(key))

	require.NoError(t, Stable(tmp, key, val))

	// value-0 entries (3,4) must precede value-1 entries (0,1,2), each group in original order.
	assert.Equal(t, []uint16{3, 4, 0, 1, 2}, key)
}

func TestStable_SingleElement(t *testing.T) {
	key := []uint16{7}
	val := []uint16{99}
	tmp := make([]uint16, 1)
	require.NoError(t, Stable(tmp, key, val))
	assert.Equal(t, []uint16{7}, key)
}

func TestStable_LargeRandomish(t *testing.T) {
	n := 257 // odd, non-power-of-two, exercises uneven run splits
	val := make([]uint16, n)
	key := make([]uint16, n)
	for i := 0; i < n; i++ {
		val[i] = uint16((i * 37) % 101)
		key[i] = uint16(i)
	}
	tmp := make([]uint16, n)
	require.NoError(t, Stable(tmp, key, val))

	for i := 1; i < n; i++ {
		assert.LessOrEqual(t, val[key[i-1]], val[key[i]])
	}
}
