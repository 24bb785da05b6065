package arena

import "errors"

// ErrNilArena indicates an allocation was attempted on a nil *Arena.
// Release on a nil *Arena is a no-op and returns nothing.
var ErrNilArena = errors.New("arena: nil arena")

// ErrReleased indicates an allocation was attempted after Release was called.
var ErrReleased = errors.New("arena: arena already released")

// ErrNoMem indicates an allocation would exceed the arena's byte budget.
var ErrNoMem = errors.New("arena: budget exhausted")

// ErrBadSize indicates a negative or otherwise invalid allocation size was requested.
var ErrBadSize = errors.New("arena: invalid allocation size")
