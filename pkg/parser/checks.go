package parser

import (
	"fmt"

	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/parsetree"
)

// A few productions take a generic name token where the syntax wants one
// fixed word: the x of <4 x i32> and [4 x i8], and the c prefix of a
// character array constant. The word is checked when the production reduces.
var wordChecks = map[parsetree.Symbol]struct {
	child int
	word  string
	what  string
}{
	parsetree.SymVectorType:     {2, "x", "vector type"},
	parsetree.SymArrayType:      {2, "x", "array type"},
	parsetree.SymCharArrayConst: {0, "c", "character array constant"},
}

func check(n *parsetree.Node) *ParseError {
	wc, ok := wordChecks[n.Kind]
	if !ok {
		return nil
	}
	got := n.Child(wc.child)
	if got == nil || got.Symbol == wc.word {
		return nil
	}
	return &ParseError{
		Line:    got.Line,
		Token:   got.Symbol,
		Message: fmt.Sprintf("%s needs %q here", wc.what, wc.word),
	}
}
