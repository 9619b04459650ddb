package grammar

import (
	"fmt"
	"sort"
	"strings"
)

// SymbolTable assigns dense ids to grammar symbols.
// Terminals occupy ids 0..NumTerminals()-1, nonterminals follow.
// Literal terminals are looked up by their text, everything else by name.
type SymbolTable struct {
	symbols      []Symbol
	names        map[string]int
	literals     map[string]int
	numTerminals int
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{
		names:    make(map[string]int),
		literals: make(map[string]int),
	}
}

// define adds a symbol, returning the existing id if it is already known.
// All terminals must be defined before the first nonterminal.
func (s *SymbolTable) define(name string, terminal, literal bool) int {
	index := s.names
	if literal {
		index = s.literals
	}
	if id, ok := index[name]; ok {
		return id
	}
	if terminal && s.numTerminals != len(s.symbols) {
		panic("grammar: terminal " + name + " defined after a nonterminal")
	}
	id := len(s.symbols)
	s.symbols = append(s.symbols, Symbol{ID: id, Name: name, Terminal: terminal, Literal: literal})
	index[name] = id
	if terminal {
		s.numTerminals++
	}
	return id
}

// Lookup finds a nonterminal or token class by name.
func (s *SymbolTable) Lookup(name string) (Symbol, bool) {
	id, ok := s.names[name]
	if !ok {
		return Symbol{}, false
	}
	return s.symbols[id], true
}

// LookupLiteral finds a quoted terminal by its exact text.
func (s *SymbolTable) LookupLiteral(text string) (Symbol, bool) {
	id, ok := s.literals[text]
	if !ok {
		return Symbol{}, false
	}
	return s.symbols[id], true
}

// Symbol returns the symbol with the given id.
func (s *SymbolTable) Symbol(id int) Symbol { return s.symbols[id] }

// Len returns the total number of symbols.
func (s *SymbolTable) Len() int { return len(s.symbols) }

// NumTerminals returns the number of terminal symbols.
func (s *SymbolTable) NumTerminals() int { return s.numTerminals }

// Literals returns the text of every quoted terminal, sorted.
func (s *SymbolTable) Literals() []string {
	out := make([]string, 0, len(s.literals))
	for text := range s.literals {
		out = append(out, text)
	}
	sort.Strings(out)
	return out
}

// Classes returns the names of the unquoted terminals except the end
// marker, sorted. These are the token classes a lexer must produce.
func (s *SymbolTable) Classes() []string {
	var out []string
	for _, sym := range s.symbols[:s.numTerminals] {
		if !sym.Literal && sym.Name != EndMarker {
			out = append(out, sym.Name)
		}
	}
	sort.Strings(out)
	return out
}

// String returns a deterministically ordered dump of the table.
func (s *SymbolTable) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Terminals (%d):\n", s.numTerminals)
	for _, sym := range s.symbols[:s.numTerminals] {
		fmt.Fprintf(&sb, "  %4d  %s\n", sym.ID, sym)
	}
	fmt.Fprintf(&sb, "Nonterminals (%d):\n", len(s.symbols)-s.numTerminals)
	for _, sym := range s.symbols[s.numTerminals:] {
		fmt.Fprintf(&sb, "  %4d  %s\n", sym.ID, sym)
	}
	return sb.String()
}
