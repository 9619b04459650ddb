package grammar

import "fmt"

// ActionKind is the kind of a parse-table entry.
type ActionKind uint8

const (
	ActionError ActionKind = iota
	ActionShift
	ActionReduce
	ActionAccept
)

var actionKindNames = [...]string{
	ActionError:  "error",
	ActionShift:  "shift",
	ActionReduce: "reduce",
	ActionAccept: "accept",
}

func (k ActionKind) String() string {
	if int(k) < len(actionKindNames) {
		return actionKindNames[k]
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// Action is one ACTION entry. Target is the next state for a shift and the
// production id for a reduce.
type Action struct {
	Kind   ActionKind
	Target int
}

func (a Action) String() string {
	switch a.Kind {
	case ActionShift:
		return fmt.Sprintf("shift to state %d", a.Target)
	case ActionReduce:
		return fmt.Sprintf("reduce by production %d", a.Target)
	}
	return a.Kind.String()
}

// ConflictKind distinguishes the two LALR(1) conflict shapes.
type ConflictKind int

const (
	ShiftReduce ConflictKind = iota
	ReduceReduce
)

func (k ConflictKind) String() string {
	if k == ReduceReduce {
		return "reduce/reduce"
	}
	return "shift/reduce"
}

// Conflict records an ambiguous table entry and how it was settled.
// Shift/reduce conflicts keep the shift; reduce/reduce conflicts keep the
// production defined first.
type Conflict struct {
	Kind      ConflictKind
	State     int
	Lookahead Symbol
	Chosen    Action
	Discarded Action
}

func (c Conflict) String() string {
	return fmt.Sprintf("state %d: %s conflict on %s (%s, discarded %s)",
		c.State, c.Kind, c.Lookahead, c.Chosen, c.Discarded)
}

// Table is an LALR(1) ACTION/GOTO table for a Grammar.
//
// ACTION entries are packed into int32: 0 is an error, n > 0 shifts to
// state n-1, n < 0 reduces by production -n-1. Reducing production 0
// accepts.
type Table struct {
	g         *Grammar
	nterm     int
	actions   []int32
	gotos     []map[int]int
	conflicts []Conflict
}

// Build generates the LALR(1) table for g.
func Build(g *Grammar) *Table {
	states := buildStates(g)
	computeLookaheads(g, states)

	nterm := g.NumTerminals()
	t := &Table{
		g:       g,
		nterm:   nterm,
		actions: make([]int32, len(states)*nterm),
		gotos:   make([]map[int]int, len(states)),
	}
	for si, st := range states {
		row := t.actions[si*nterm : (si+1)*nterm]
		t.gotos[si] = make(map[int]int)
		for sym, dst := range st.trans {
			if g.isTerminal(sym) {
				row[sym] = int32(dst + 1)
			} else {
				t.gotos[si][sym] = dst
			}
		}
		for _, r := range st.reductions {
			prod := r.prod
			r.lookahead.each(func(term int) { t.addReduce(si, row, term, prod) })
		}
	}
	return t
}

func (t *Table) addReduce(state int, row []int32, term, prod int) {
	reduce := int32(-prod - 1)
	cur := row[term]
	switch {
	case cur == 0:
		row[term] = reduce
	case cur > 0:
		t.conflicts = append(t.conflicts, Conflict{
			Kind:      ShiftReduce,
			State:     state,
			Lookahead: t.g.symbols.Symbol(term),
			Chosen:    decodeAction(cur),
			Discarded: decodeAction(reduce),
		})
	default:
		chosen, discarded := cur, reduce
		if reduce > cur {
			// reduce > cur means prod is the lower production id.
			chosen, discarded = reduce, cur
			row[term] = reduce
		}
		t.conflicts = append(t.conflicts, Conflict{
			Kind:      ReduceReduce,
			State:     state,
			Lookahead: t.g.symbols.Symbol(term),
			Chosen:    decodeAction(chosen),
			Discarded: decodeAction(discarded),
		})
	}
}

func decodeAction(v int32) Action {
	switch {
	case v > 0:
		return Action{Kind: ActionShift, Target: int(v - 1)}
	case v == -1:
		return Action{Kind: ActionAccept}
	case v < 0:
		return Action{Kind: ActionReduce, Target: int(-v - 1)}
	}
	return Action{Kind: ActionError}
}

// Grammar returns the grammar the table was built from.
func (t *Table) Grammar() *Grammar { return t.g }

// NumStates returns the number of automaton states.
func (t *Table) NumStates() int { return len(t.gotos) }

// Conflicts returns every conflict resolved while building the table.
func (t *Table) Conflicts() []Conflict { return t.conflicts }

// Action returns the ACTION entry for a state and terminal id.
func (t *Table) Action(state, terminal int) Action {
	return decodeAction(t.actions[state*t.nterm+terminal])
}

// Goto returns the state entered after reducing to nonterminal in state.
func (t *Table) Goto(state, nonterminal int) (int, bool) {
	dst, ok := t.gotos[state][nonterminal]
	return dst, ok
}

// Expected returns the terminals with a non-error action in state.
func (t *Table) Expected(state int) []Symbol {
	var out []Symbol
	row := t.actions[state*t.nterm : (state+1)*t.nterm]
	for term, v := range row {
		if v != 0 {
			out = append(out, t.g.symbols.Symbol(term))
		}
	}
	return out
}
