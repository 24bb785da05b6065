// Package diag implements the single, configuration-selected diagnostic
// sink the ccpm engine routes progress traces and stage errors through.
//
// A Sink wraps a zerolog.Logger (the structured-logging backend this
// codebase standardizes on) with an enabled flag so the hot path can skip
// field construction entirely when diagnostics are off. Trace records a
// stage name and arbitrary structured fields; Error records a stage name
// and the failing error. Neither method has any other observable side
// effect: no global state, no implicit output beyond the writer passed to
// New.
package diag
