package grammar

import (
	"encoding/binary"
	"sort"
)

// item is an LR(0) item: a production with a dot position in its RHS.
type item struct {
	prod int
	dot  int
}

type reduction struct {
	prod      int
	lookahead bitset
}

// lrState is one state of the LR(0) automaton, later annotated with the
// LALR(1) lookaheads of its completed items.
type lrState struct {
	kernel     []item // sorted by (prod, dot)
	trans      map[int]int
	reductions []reduction
}

// propagation records that lookaheads of one kernel item flow to another.
type propagation struct {
	fromState, fromItem int
	toState, toItem     int
}

func (g *Grammar) afterDot(it item) (int, bool) {
	rhs := g.productions[it.prod].RHS
	if it.dot >= len(rhs) {
		return 0, false
	}
	return rhs[it.dot], true
}

func sortItems(items []item) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].prod != items[j].prod {
			return items[i].prod < items[j].prod
		}
		return items[i].dot < items[j].dot
	})
}

func kernelKey(items []item) string {
	buf := make([]byte, 0, len(items)*8)
	for _, it := range items {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(it.prod))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(it.dot))
	}
	return string(buf)
}

func kernelIndex(kernel []item, it item) int {
	return sort.Search(len(kernel), func(i int) bool {
		k := kernel[i]
		return k.prod > it.prod || (k.prod == it.prod && k.dot >= it.dot)
	})
}

// closure0 returns the kernel followed by every item it predicts.
func (g *Grammar) closure0(kernel []item) []item {
	out := append([]item(nil), kernel...)
	expanded := make(map[int]bool)
	for i := 0; i < len(out); i++ {
		sym, ok := g.afterDot(out[i])
		if !ok || g.isTerminal(sym) || expanded[sym] {
			continue
		}
		expanded[sym] = true
		for _, pid := range g.Alternatives(sym) {
			out = append(out, item{prod: pid})
		}
	}
	return out
}

// buildStates constructs the canonical LR(0) collection. State 0 holds the
// augmented start item.
func buildStates(g *Grammar) []*lrState {
	states := []*lrState{{kernel: []item{{prod: 0}}}}
	index := map[string]int{kernelKey(states[0].kernel): 0}

	for i := 0; i < len(states); i++ {
		st := states[i]
		groups := make(map[int][]item)
		var syms []int
		for _, it := range g.closure0(st.kernel) {
			sym, ok := g.afterDot(it)
			if !ok {
				continue
			}
			if _, seen := groups[sym]; !seen {
				syms = append(syms, sym)
			}
			groups[sym] = append(groups[sym], item{prod: it.prod, dot: it.dot + 1})
		}
		sort.Ints(syms)

		st.trans = make(map[int]int, len(syms))
		for _, sym := range syms {
			kernel := groups[sym]
			sortItems(kernel)
			key := kernelKey(kernel)
			target, ok := index[key]
			if !ok {
				target = len(states)
				index[key] = target
				states = append(states, &lrState{kernel: kernel})
			}
			st.trans[sym] = target
		}
	}
	return states
}

// closure1 expands a kernel whose items carry symbolic lookaheads. For each
// resulting item it reports the terminals generated spontaneously inside
// the state and the kernel items whose own lookaheads propagate to it.
func (g *Grammar) closure1(kernel []item, f *firstSets) (items []item, spont, srcs []bitset) {
	nterm := g.NumTerminals()
	items = append(items, kernel...)
	pos := make(map[item]int, len(kernel))
	work := make([]int, 0, len(kernel))
	for j, it := range kernel {
		spont = append(spont, newBitset(nterm))
		src := newBitset(len(kernel))
		src.set(j)
		srcs = append(srcs, src)
		pos[it] = j
		work = append(work, j)
	}

	first := newBitset(nterm)
	for len(work) > 0 {
		k := work[len(work)-1]
		work = work[:len(work)-1]

		it := items[k]
		sym, ok := g.afterDot(it)
		if !ok || g.isTerminal(sym) {
			continue
		}
		rest := g.productions[it.prod].RHS[it.dot+1:]
		for i := range first {
			first[i] = 0
		}
		f.sequence(rest, first)
		nullable := f.nullableSeq(rest)

		for _, pid := range g.Alternatives(sym) {
			child := item{prod: pid}
			c, known := pos[child]
			if !known {
				c = len(items)
				items = append(items, child)
				spont = append(spont, newBitset(nterm))
				srcs = append(srcs, newBitset(len(kernel)))
				pos[child] = c
			}
			changed := spont[c].union(first)
			if nullable {
				if spont[c].union(spont[k]) {
					changed = true
				}
				if srcs[c].union(srcs[k]) {
					changed = true
				}
			}
			if changed || !known {
				work = append(work, c)
			}
		}
	}
	return items, spont, srcs
}

// computeLookaheads fills in the reductions of every state using the
// spontaneous-generation and propagation method.
func computeLookaheads(g *Grammar, states []*lrState) {
	f := g.firstSets()
	nterm := g.NumTerminals()

	la := make([][]bitset, len(states))
	for i, st := range states {
		la[i] = make([]bitset, len(st.kernel))
		for j := range st.kernel {
			la[i][j] = newBitset(nterm)
		}
	}
	end, _ := g.symbols.Lookup(EndMarker)
	la[0][0].set(end.ID)

	type pendingReduction struct {
		prod  int
		spont bitset
		srcs  bitset
	}
	pending := make([][]pendingReduction, len(states))
	var edges []propagation

	for si, st := range states {
		items, spont, srcs := g.closure1(st.kernel, f)
		for k, it := range items {
			sym, ok := g.afterDot(it)
			if !ok {
				pending[si] = append(pending[si], pendingReduction{prod: it.prod, spont: spont[k], srcs: srcs[k]})
				continue
			}
			dst := st.trans[sym]
			di := kernelIndex(states[dst].kernel, item{prod: it.prod, dot: it.dot + 1})
			la[dst][di].union(spont[k])
			srcs[k].each(func(j int) {
				edges = append(edges, propagation{fromState: si, fromItem: j, toState: dst, toItem: di})
			})
		}
	}

	for changed := true; changed; {
		changed = false
		for _, e := range edges {
			if la[e.toState][e.toItem].union(la[e.fromState][e.fromItem]) {
				changed = true
			}
		}
	}

	for si, st := range states {
		for _, p := range pending[si] {
			set := newBitset(nterm)
			set.union(p.spont)
			p.srcs.each(func(j int) { set.union(la[si][j]) })
			st.reductions = append(st.reductions, reduction{prod: p.prod, lookahead: set})
		}
	}
}
