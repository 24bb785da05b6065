// Package ccpm converts a project network expressed in Activity-on-Node
// (AoN) form into an equivalent, minimal Activity-on-Arc (AoA) form.
//
// In AoN, each activity is a vertex and each arc is a precedence relation.
// In AoA, each activity is an arc between two events, and zero-duration
// "dummy" arcs are inserted wherever event identity alone cannot express a
// precedence. MakeAoA is the single entry point; it runs a fixed pipeline:
//
//	validate -> normalize -> extract deps -> transitive closure ->
//	transitive reduction -> nested-set split -> overlap split ->
//	network build -> event glue (stage 1) -> event glue (stage 2) ->
//	parallel-arc resolution -> finalize
//
// Every stage operates on dense uint16 arrays sized against n_max = n_act +
// max(n_lnk, n_act), allocated once from an arena.Arena at entry and
// released on every exit path. The engine is synchronous, single-threaded,
// and deterministic: two calls on the same input produce byte-identical
// output.
package ccpm
