package parsetree

import "fmt"

//go:generate go run ../../cmd/symgen -o symbol_gen.go

// Symbol identifies the grammar symbol a Node was built for. Every
// nonterminal of the instruction grammar has its own value; all tokens share
// SymTerminal and are told apart by their text.
type Symbol int

func (s Symbol) String() string {
	if s == SymTerminal {
		return "terminal"
	}
	if int(s) > 0 && int(s) < len(symbolNames) {
		return symbolNames[s]
	}
	return fmt.Sprintf("Symbol(%d)", int(s))
}

var symbolsByName = func() map[string]Symbol {
	m := make(map[string]Symbol, len(symbolNames))
	for i, name := range symbolNames {
		if i > 0 {
			m[name] = Symbol(i)
		}
	}
	return m
}()

// LookupSymbol returns the Symbol for a nonterminal name.
func LookupSymbol(name string) (Symbol, bool) {
	s, ok := symbolsByName[name]
	return s, ok
}

// Nonterminals returns every nonterminal Symbol in grammar order.
func Nonterminals() []Symbol {
	out := make([]Symbol, 0, len(symbolNames)-1)
	for i := 1; i < len(symbolNames); i++ {
		out = append(out, Symbol(i))
	}
	return out
}
