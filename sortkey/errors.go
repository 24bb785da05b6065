package sortkey

import "errors"

// ErrInvalidInput indicates a nil key/val slice, or a scratch buffer shorter
// than the key slice being sorted.
var ErrInvalidInput = errors.New("sortkey: invalid input")
