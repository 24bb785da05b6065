package ccpm

import (
	"github.com/katalvlaran/ccpm/arena"
	"github.com/katalvlaran/ccpm/ccpm/diag"
)

// engine holds every working table the pipeline mutates across stages, all
// pre-sized against nMax and allocated from a single arena.Arena. It is the
// Go analogue of the reference engine's stack-allocated local buffers,
// expressed as a struct of named fields with per-stage methods rather than
// one monolithic function, mirroring this codebase's topoSorter-style
// stateful-struct convention.
type engine struct {
	arena *arena.Arena
	diag  *diag.Sink

	nAct int // number of real activities
	nLnk int // number of input links
	nMax int // upper bound on total arcs (activities, real + dummy)
	nCur int // current number of activities (grows as dummies are inserted)

	actID  intList  // activity id per position, FakeID for dummies
	actPos intList  // traversal / sort order over activity positions
	actSrc []uint16 // source event per position (0 = unassigned, FakeID = deleted)
	actDst []uint16 // destination event per position

	fullDep *depTable // transitive closure predecessor sets
	minDep  *depTable // Hasse (minimal) predecessor sets

	started []bool   // network builder: has position i been assigned a source event
	remDep  []uint16 // network builder: remaining unsatisfied minimal predecessors
	// started is reused by the parallel-arc resolver as its "not yet
	// resolved this pass" flag: by the time the network builder and glue
	// stages finish, every live position has started[i] == true, which is
	// exactly the resolver's required starting state.

	events intList // event compaction / redirect table
	chk    intList // network builder: FIFO of activities to process
	start  intList // network builder: scratch, activities starting this round

	minComDeps intList // nested/overlap splitters: common predecessor subset scratch
	tmpDeps    intList // full-closure-of-a-set scratch list
	tmpDepMap  []bool  // full-closure-of-a-set scratch bitmap

	evtDeps  *depTable  // per-event: source events of dummy inputs
	evtDins  *listTable // per-event: positions of dummy inputs
	evtReal  []bool     // per-event: has any real-activity input
	evtDouts *listTable // per-event: positions of dummy outputs
	evtNout  []uint16   // per-event: total output count

	sortTmp  []uint16 // sortkey.Stable scratch buffer
	sortVals []uint16 // sort key value buffer, reused across stages
}

// newEngine allocates every working table for a network of nAct activities
// and nLnk links, copies actID into the engine's own id list, and returns
// the ready-to-run engine. All allocation happens here, matching the
// reference engine's single-function allocation discipline.
func newEngine(a *arena.Arena, d *diag.Sink, actID []uint16, nLnk int) (*engine, error) {
	nAct := len(actID)
	nMax := nAct + max(nLnk, nAct)

	e := &engine{arena: a, diag: d, nAct: nAct, nLnk: nLnk, nMax: nMax, nCur: nAct}

	var err error
	alloc := func(n int) []uint16 {
		if err != nil {
			return nil
		}
		var buf []uint16
		buf, err = a.AllocUint16(n)
		return buf
	}
	allocBool := func(n int) []bool {
		if err != nil {
			return nil
		}
		var buf []bool
		buf, err = a.AllocBool(n)
		return buf
	}

	actIDBuf := alloc(nMax + 1)
	actPosBuf := alloc(nMax + 1)
	e.actSrc = alloc(nMax)
	e.actDst = alloc(nMax)
	e.started = allocBool(nMax)
	e.remDep = alloc(nMax)
	eventsBuf := alloc(nMax + 2)
	chkBuf := alloc(nMax + 1)
	startBuf := alloc(nMax + 1)
	minComDepsBuf := alloc(nMax + 1)
	tmpDepsBuf := alloc(nMax + 2)
	e.tmpDepMap = allocBool(nMax)
	e.evtReal = allocBool(nMax + 1)
	e.evtNout = alloc(nMax + 1)
	e.sortTmp = alloc(nMax)
	e.sortVals = alloc(nMax)
	if err != nil {
		return nil, wrapAllocErr("newEngine", err)
	}

	if e.fullDep, err = newDepTable(a, nMax); err != nil {
		return nil, wrapAllocErr("newEngine", err)
	}
	if e.minDep, err = newDepTable(a, nMax); err != nil {
		return nil, wrapAllocErr("newEngine", err)
	}
	if e.evtDeps, err = newDepTable(a, nMax+1); err != nil {
		return nil, wrapAllocErr("newEngine", err)
	}
	if e.evtDins, err = newListTable(a, nMax+1, nMax+1); err != nil {
		return nil, wrapAllocErr("newEngine", err)
	}
	if e.evtDouts, err = newListTable(a, nMax+1, nMax+1); err != nil {
		return nil, wrapAllocErr("newEngine", err)
	}

	e.actID = newIntList(actIDBuf)
	e.actPos = newIntList(actPosBuf)
	e.events = newIntList(eventsBuf)
	e.chk = newIntList(chkBuf)
	e.start = newIntList(startBuf)
	e.minComDeps = newIntList(minComDepsBuf)
	e.tmpDeps = newIntList(tmpDepsBuf)

	for _, id := range actID {
		e.actID.Append(id)
	}

	return e, nil
}
