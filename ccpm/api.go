package ccpm

import (
	"github.com/katalvlaran/ccpm/arena"
)

// Result is the Activity-on-Arc network MakeAoA produces: three parallel
// slices, one entry per surviving arc (real or dummy), sorted by ActIDs
// with FakeID breaking no ties (duplicate ids are rejected on input, and
// FakeID itself only ever marks dummies).
type Result struct {
	ActIDs []uint16 // original activity id, or FakeID for a dummy arc
	ActSrc []uint16 // source event, 1-based
	ActDst []uint16 // destination event, 1-based
}

// MakeAoA converts an Activity-on-Node network into its minimal
// Activity-on-Arc equivalent. actIDs is read-only. lnkSrc and lnkDst are
// mutated in place during link normalization (id -> position) and must be
// treated as consumed by the caller after this call returns, per the
// engine's sharing policy.
//
// On success every input precedence holds in the output via the event
// graph (possibly through dummy arcs), no two surviving real activities
// share both endpoints, and the event graph is acyclic. On failure, the
// returned Result is the zero value and must be ignored.
func MakeAoA(actIDs []uint16, lnkSrc, lnkDst []uint16, opts ...Option) (Result, error) {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateActivityIDs(actIDs); err != nil {
		o.diag.Error("validate", err)
		return Result{}, err
	}
	if err := validateLinks(lnkSrc, lnkDst); err != nil {
		o.diag.Error("validate", err)
		return Result{}, err
	}
	o.diag.Trace("validate", map[string]any{"n_act": len(actIDs), "n_lnk": len(lnkSrc)})

	nAct := len(actIDs)
	nLnk := len(lnkSrc)
	nMax := nAct + max(nLnk, nAct)

	a := arena.NewForNMax(nMax)
	defer a.Release()

	e, err := newEngine(a, o.diag, actIDs, nLnk)
	if err != nil {
		o.diag.Error("newEngine", err)
		return Result{}, err
	}

	if err := normalizeLinks(actIDs, nAct, lnkSrc, lnkDst); err != nil {
		o.diag.Error("normalize", err)
		return Result{}, err
	}
	o.diag.Trace("normalize", map[string]any{"n_max": nMax})

	if nAct == 0 {
		return Result{}, nil
	}

	if err := populateDependencies(e.fullDep, lnkSrc, lnkDst, nAct); err != nil {
		o.diag.Error("deps", err)
		return Result{}, err
	}
	o.diag.Trace("deps", nil)

	if err := buildFullClosure(e.fullDep, nAct); err != nil {
		o.diag.Error("closure", err)
		return Result{}, err
	}
	o.diag.Trace("closure", nil)

	if err := buildActPos(e); err != nil {
		o.diag.Error("reduce", err)
		return Result{}, err
	}
	if err := reduceToMinimal(e); err != nil {
		o.diag.Error("reduce", err)
		return Result{}, err
	}
	o.diag.Trace("reduce", nil)

	if err := splitNestedSets(e); err != nil {
		o.diag.Error("nested", err)
		return Result{}, err
	}
	o.diag.Trace("nested", map[string]any{"n_cur": e.nCur})

	if err := splitOverlappingSets(e); err != nil {
		o.diag.Error("overlap", err)
		return Result{}, err
	}
	o.diag.Trace("overlap", map[string]any{"n_cur": e.nCur})

	if err := buildNetwork(e); err != nil {
		o.diag.Error("network", err)
		return Result{}, err
	}
	o.diag.Trace("network", map[string]any{"n_cur": e.nCur, "n_events": e.events.Len()})

	if err := glueStage1(e); err != nil {
		o.diag.Error("glue1", err)
		return Result{}, err
	}
	o.diag.Trace("glue1", nil)

	if err := glueStage2(e); err != nil {
		o.diag.Error("glue2", err)
		return Result{}, err
	}
	o.diag.Trace("glue2", nil)

	if err := resolveParallelArcs(e); err != nil {
		o.diag.Error("parallel", err)
		return Result{}, err
	}
	o.diag.Trace("parallel", map[string]any{"n_cur": e.nCur})

	result, err := finalizeNetwork(e)
	if err != nil {
		o.diag.Error("finalize", err)
		return Result{}, err
	}
	o.diag.Trace("finalize", map[string]any{"n_real_out": len(result.ActIDs)})

	return result, nil
}
