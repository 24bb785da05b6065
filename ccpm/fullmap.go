package ccpm

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ccpm/arena"
	"github.com/katalvlaran/ccpm/ccpm/diag"
)

// FullMap is the transitive closure of an AoN precedence relation, queryable
// by activity id. It supplements the engine's internal full_dep/full_map
// (§4.5) as real, tested API — the reference implementation's
// ccpm_make_full_map was never implemented past a stub; this type is it.
type FullMap struct {
	nAct int
	ids  []uint16
	pred [][]uint16 // pred[i] = ascending-by-id predecessor ids of ids[i]
}

// BuildFullMap validates actIDs and links, computes the transitive closure
// of the precedence relation (running only the validate/normalize/extract
// /closure stages — no dummy insertion, no network building), and returns
// it as a queryable FullMap. actIDs and links are read-only; unlike MakeAoA
// this does not consume lnkSrc/lnkDst in place.
func BuildFullMap(actIDs, lnkSrc, lnkDst []uint16) (FullMap, error) {
	if err := validateActivityIDs(actIDs); err != nil {
		return FullMap{}, err
	}

	lnkSrcCopy := append([]uint16(nil), lnkSrc...)
	lnkDstCopy := append([]uint16(nil), lnkDst...)
	if err := validateLinks(lnkSrcCopy, lnkDstCopy); err != nil {
		return FullMap{}, err
	}

	nAct := len(actIDs)
	a := arena.NewForNMax(nAct + max(len(lnkSrcCopy), nAct))
	defer a.Release()

	e, err := newEngine(a, diag.Disabled(), actIDs, len(lnkSrcCopy))
	if err != nil {
		return FullMap{}, fmt.Errorf("ccpm: BuildFullMap: %w", err)
	}

	if err := normalizeLinks(actIDs, nAct, lnkSrcCopy, lnkDstCopy); err != nil {
		return FullMap{}, err
	}
	if err := populateDependencies(e.fullDep, lnkSrcCopy, lnkDstCopy, nAct); err != nil {
		return FullMap{}, err
	}
	if err := buildFullClosure(e.fullDep, nAct); err != nil {
		return FullMap{}, err
	}

	fm := FullMap{
		nAct: nAct,
		ids:  append([]uint16(nil), actIDs...),
		pred: make([][]uint16, nAct),
	}
	for i := 0; i < nAct; i++ {
		row := e.fullDep.Row(i).Elems()
		ids := make([]uint16, len(row))
		for k, pos := range row {
			ids[k] = actIDs[pos]
		}
		sort.Slice(ids, func(x, y int) bool { return ids[x] < ids[y] })
		fm.pred[i] = ids
	}

	return fm, nil
}

// IsPredecessor reports whether a is a (possibly transitive) predecessor of
// b. It returns false if either id is unknown.
func (fm FullMap) IsPredecessor(a, b uint16) bool {
	posB, ok := lookupPos(fm.ids, fm.nAct, b)
	if !ok {
		return false
	}

	for _, id := range fm.pred[posB] {
		if id == a {
			return true
		}
	}

	return false
}

// Predecessors returns a's full predecessor set as ids, ascending. It
// returns nil if a is unknown. The returned slice is a fresh copy.
func (fm FullMap) Predecessors(a uint16) []uint16 {
	pos, ok := lookupPos(fm.ids, fm.nAct, a)
	if !ok {
		return nil
	}

	out := make([]uint16, len(fm.pred[pos]))
	copy(out, fm.pred[pos])

	return out
}
