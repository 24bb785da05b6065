// errors.go - sentinel errors for the ccpm package.
//
// Error policy (matches the convention used throughout this codebase):
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Sentinels are never given formatted text at the definition site.
//   - Call sites wrap with fmt.Errorf("ccpm: Stage: %w", err) for context.
package ccpm

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ccpm/arena"
)

// ErrInvalid indicates malformed input: a nil slice, a duplicate activity
// id, a duplicate link, or a link endpoint that does not resolve to a known
// activity id.
var ErrInvalid = errors.New("ccpm: invalid input")

// ErrNoMem indicates the arena's byte budget was exhausted while allocating
// working tables for the network.
var ErrNoMem = errors.New("ccpm: out of memory")

// ErrLoop indicates the input precedence graph contains a cycle.
var ErrLoop = errors.New("ccpm: cycle detected")

// ErrInternal indicates an invariant the engine relies on was violated; this
// signals a bug in the engine rather than a problem with caller input.
var ErrInternal = errors.New("ccpm: internal invariant violated")

// ErrorKind classifies a MakeAoA failure for diagnostic rendering. It is not
// itself the error value callers should compare against: use errors.Is with
// the sentinels above.
type ErrorKind int

const (
	// KindOK indicates success; no sentinel error is associated with it.
	KindOK ErrorKind = iota
	// KindInvalid corresponds to ErrInvalid.
	KindInvalid
	// KindNoMem corresponds to ErrNoMem.
	KindNoMem
	// KindLoop corresponds to ErrLoop.
	KindLoop
	// KindInternal corresponds to ErrInternal.
	KindInternal
)

// String renders the ErrorKind for logs and diagnostics.
func (k ErrorKind) String() string {
	switch k {
	case KindOK:
		return "OK"
	case KindInvalid:
		return "E_INVAL"
	case KindNoMem:
		return "E_NOMEM"
	case KindLoop:
		return "E_LOOP"
	case KindInternal:
		return "E_UNK"
	default:
		return "E_UNKNOWN_KIND"
	}
}

// wrapAllocErr translates an arena allocation failure into a ccpm sentinel,
// preserving the original error in the chain so callers inspecting wrapped
// detail (via errors.Unwrap) still see the arena's own message.
func wrapAllocErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, arena.ErrNoMem) {
		return fmt.Errorf("ccpm: %s: %w: %w", op, ErrNoMem, err)
	}

	return fmt.Errorf("ccpm: %s: %w: %w", op, ErrInternal, err)
}

// KindOf classifies err against the package sentinels for diagnostic
// rendering. A nil error classifies as KindOK.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, ErrInvalid):
		return KindInvalid
	case errors.Is(err, ErrNoMem):
		return KindNoMem
	case errors.Is(err, ErrLoop):
		return KindLoop
	default:
		return KindInternal
	}
}
