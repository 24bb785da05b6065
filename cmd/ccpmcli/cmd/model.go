package cmd

import "github.com/katalvlaran/ccpm/ccpm"

// network is the JSON shape of an Activity-on-Node input file: activity ids
// plus precedence links (from must finish before to may start).
type network struct {
	Activities []uint16 `json:"activities"`
	Links      []link   `json:"links"`
}

type link struct {
	From uint16 `json:"from"`
	To   uint16 `json:"to"`
}

// aoaNetwork is the JSON shape of a converted Activity-on-Arc output file:
// one arc per surviving activity, real or dummy.
type aoaNetwork struct {
	Arcs []arc `json:"arcs"`
}

type arc struct {
	ActID *uint16 `json:"act_id,omitempty"`
	Dummy bool    `json:"dummy,omitempty"`
	Src   uint16  `json:"src"`
	Dst   uint16  `json:"dst"`
}

func toAoANetwork(result ccpm.Result) aoaNetwork {
	out := aoaNetwork{Arcs: make([]arc, 0, len(result.ActIDs))}
	for i, id := range result.ActIDs {
		a := arc{Src: result.ActSrc[i], Dst: result.ActDst[i]}
		if id == ccpm.FakeID {
			a.Dummy = true
		} else {
			id := id
			a.ActID = &id
		}
		out.Arcs = append(out.Arcs, a)
	}
	return out
}

func (n network) linkSlices() (src, dst []uint16) {
	src = make([]uint16, len(n.Links))
	dst = make([]uint16, len(n.Links))
	for i, l := range n.Links {
		src[i] = l.From
		dst[i] = l.To
	}
	return src, dst
}
