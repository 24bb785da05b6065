// Package arena implements a scoped, LIFO memory arena for the ccpm engine.
//
// A single *Arena is created at engine entry, sized from the network's
// n_max upper bound, handed to every pipeline stage, and released on every
// exit path (success or error) via a deferred Release call. Allocations are
// tracked on an internal stack of descriptors; Release walks the stack in
// reverse order and drops each tracked slice, mirroring the reverse-order
// free discipline of a native stack allocator even though the Go runtime
// ultimately reclaims the backing arrays via the garbage collector.
//
// Arena enforces a byte budget derived from n_max so that pathologically
// large networks fail deterministically with ErrNoMem instead of growing
// the heap without bound.
package arena
