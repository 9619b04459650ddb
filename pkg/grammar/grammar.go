package grammar

import (
	"fmt"
	"strings"
	"sync"
)

// EndMarker is the name of the terminal appended to every token stream.
const EndMarker = "$end"

// acceptName is the augmented start symbol wrapping the user start symbol.
const acceptName = "$accept"

// Symbol is a terminal or nonterminal of a Grammar.
type Symbol struct {
	ID       int
	Name     string // rule name, token class, or literal text without quotes
	Terminal bool
	Literal  bool // quoted in the grammar source; matched by exact token text
}

func (s Symbol) String() string {
	if s.Literal {
		return "'" + s.Name + "'"
	}
	return s.Name
}

// Production is one alternative of a rule. Production 0 is always the
// augmented rule $accept : Start.
type Production struct {
	ID   int
	LHS  int
	RHS  []int
	Line int // 1-based line of the alternative in the grammar source
}

// Grammar is an immutable context-free grammar.
type Grammar struct {
	Name string

	symbols     *SymbolTable
	productions []Production
	byLHS       [][]int // indexed by nonterminal index
	start       int
	accept      int

	firstOnce sync.Once
	first     *firstSets
}

// Symbols returns the grammar's symbol table.
func (g *Grammar) Symbols() *SymbolTable { return g.symbols }

// Productions returns every production, the augmented rule first.
func (g *Grammar) Productions() []Production { return g.productions }

// Production returns the production with the given id.
func (g *Grammar) Production(id int) Production { return g.productions[id] }

// Start returns the user start symbol.
func (g *Grammar) Start() Symbol { return g.symbols.Symbol(g.start) }

// NumTerminals returns the number of terminals, the end marker included.
// Terminal ids are 0..NumTerminals()-1.
func (g *Grammar) NumTerminals() int { return g.symbols.numTerminals }

// Terminals returns all terminals in id order.
func (g *Grammar) Terminals() []Symbol {
	return g.symbols.symbols[:g.symbols.numTerminals]
}

// Nonterminals returns the nonterminals in definition order, excluding the
// augmented start symbol.
func (g *Grammar) Nonterminals() []Symbol {
	return g.symbols.symbols[g.symbols.numTerminals:g.accept]
}

// NonterminalIndex maps a nonterminal id to its position in Nonterminals().
func (g *Grammar) NonterminalIndex(id int) int {
	return id - g.symbols.numTerminals
}

// Alternatives returns the ids of the productions whose left-hand side is lhs.
func (g *Grammar) Alternatives(lhs int) []int {
	return g.byLHS[g.NonterminalIndex(lhs)]
}

func (g *Grammar) isTerminal(id int) bool { return id < g.symbols.numTerminals }

// ProductionString renders a production as "LHS : a 'b' C".
func (g *Grammar) ProductionString(id int) string {
	p := g.productions[id]
	var sb strings.Builder
	sb.WriteString(g.symbols.Symbol(p.LHS).String())
	sb.WriteString(" :")
	for _, s := range p.RHS {
		sb.WriteByte(' ')
		sb.WriteString(g.symbols.Symbol(s).String())
	}
	return sb.String()
}

// String returns the grammar in its source notation, one rule per block.
func (g *Grammar) String() string {
	var sb strings.Builder
	for _, nt := range g.Nonterminals() {
		fmt.Fprintf(&sb, "%s\n", nt.Name)
		for i, pid := range g.Alternatives(nt.ID) {
			sep := "|"
			if i == 0 {
				sep = ":"
			}
			sb.WriteString("\t" + sep)
			for _, s := range g.productions[pid].RHS {
				sb.WriteString(" " + g.symbols.Symbol(s).String())
			}
			sb.WriteByte('\n')
		}
		sb.WriteString("\t;\n\n")
	}
	return sb.String()
}
