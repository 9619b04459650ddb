package grammar

// firstSets holds NULLABLE and FIRST for every nonterminal, indexed by
// nonterminal index. FIRST sets range over terminal ids.
type firstSets struct {
	g        *Grammar
	nullable []bool
	first    []bitset
}

func computeFirst(g *Grammar) *firstSets {
	n := len(g.byLHS)
	f := &firstSets{
		g:        g,
		nullable: make([]bool, n),
		first:    make([]bitset, n),
	}
	for i := range f.first {
		f.first[i] = newBitset(g.NumTerminals())
	}

	for changed := true; changed; {
		changed = false
		for _, p := range g.productions {
			lhs := g.NonterminalIndex(p.LHS)
			if f.sequence(p.RHS, f.first[lhs]) {
				changed = true
			}
			if !f.nullable[lhs] && f.nullableSeq(p.RHS) {
				f.nullable[lhs] = true
				changed = true
			}
		}
	}
	return f
}

// sequence adds FIRST(seq) to dst and reports whether dst changed.
func (f *firstSets) sequence(seq []int, dst bitset) bool {
	changed := false
	for _, s := range seq {
		if f.g.isTerminal(s) {
			if !dst.has(s) {
				dst.set(s)
				changed = true
			}
			return changed
		}
		idx := f.g.NonterminalIndex(s)
		if dst.union(f.first[idx]) {
			changed = true
		}
		if !f.nullable[idx] {
			return changed
		}
	}
	return changed
}

// nullableSeq reports whether every symbol of seq derives the empty string.
func (f *firstSets) nullableSeq(seq []int) bool {
	for _, s := range seq {
		if f.g.isTerminal(s) || !f.nullable[f.g.NonterminalIndex(s)] {
			return false
		}
	}
	return true
}

// Nullable reports whether the nonterminal id derives the empty string.
func (g *Grammar) Nullable(id int) bool {
	return g.firstSets().nullable[g.NonterminalIndex(id)]
}

// First returns the terminals that can begin a derivation of the
// nonterminal id, in id order.
func (g *Grammar) First(id int) []Symbol {
	var out []Symbol
	g.firstSets().first[g.NonterminalIndex(id)].each(func(t int) {
		out = append(out, g.symbols.Symbol(t))
	})
	return out
}

func (g *Grammar) firstSets() *firstSets {
	g.firstOnce.Do(func() { g.first = computeFirst(g) })
	return g.first
}
