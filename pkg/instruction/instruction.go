// Package instruction answers questions about one parsed IR instruction:
// what kind it is, what it assigns to, and the parts of calls, stores and
// comparisons.
package instruction

import (
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/parser"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/parsetree"
)

// Instruction wraps the parse tree of one instruction line. Its methods do
// not modify the tree; asking a call question of a non-call instruction
// returns nil or false rather than failing.
type Instruction struct {
	root *parsetree.Node
	text string
}

// Parse parses text with the shared default parser.
func Parse(text string) (*Instruction, error) {
	root, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return &Instruction{root: root, text: text}, nil
}

// ParseWith parses text with p.
func ParseWith(p *parser.Parser, text string) (*Instruction, error) {
	root, err := p.Parse(text)
	if err != nil {
		return nil, err
	}
	return &Instruction{root: root, text: text}, nil
}

// FromTree wraps an already parsed tree rooted at Instruction.
func FromTree(root *parsetree.Node, text string) *Instruction {
	return &Instruction{root: root, text: text}
}

// Root returns the Instruction node.
func (in *Instruction) Root() *parsetree.Node { return in.root }

// Text returns the source line the tree was parsed from.
func (in *Instruction) Text() string { return in.text }

// Kind returns the first kind, in classification order, whose node occurs
// in the tree. It returns Unknown only when the grammar has an instruction
// form this package does not know about.
func (in *Instruction) Kind() Kind {
	for k := Kind(1); k < numKinds; k++ {
		if parsetree.FindKind(in.root, kindSymbols[k]) != nil {
			return k
		}
	}
	return Unknown
}

// Is reports whether the tree contains the node of kind k.
func (in *Instruction) Is(k Kind) bool {
	return parsetree.FindKind(in.root, k.Symbol()) != nil
}

// HasAssignmentTarget reports whether the instruction has the form
// %name = ...
func (in *Instruction) HasAssignmentTarget() bool {
	eq := in.root.Child(1)
	return eq != nil && eq.Terminal && eq.Symbol == "="
}

// AssignmentTarget returns the name assigned to, without its % sigil: "3"
// for %3 = alloca i32.
func (in *Instruction) AssignmentTarget() (string, bool) {
	if !in.HasAssignmentTarget() {
		return "", false
	}
	ident := in.root.Child(0)
	if !ident.Is(parsetree.SymLocalIdent) {
		return "", false
	}
	return stripSigil(ident.Child(0).Symbol), true
}

func stripSigil(name string) string {
	if len(name) > 0 && (name[0] == '%' || name[0] == '@') {
		return name[1:]
	}
	return name
}

// CallReturnType returns the Type subtree for the value a call returns. For
// calls that spell out a function type, such as call i32 (i8*, ...) @f, it
// is the return type inside it rather than the whole function type.
func (in *Instruction) CallReturnType() *parsetree.Node {
	c, ok := in.Call()
	if !ok {
		return nil
	}
	return c.ReturnType()
}

// CallArguments returns the Arg nodes of a call, left to right. It returns
// nil for non-calls and for calls without arguments.
func (in *Instruction) CallArguments() []*parsetree.Node {
	c, ok := in.Call()
	if !ok {
		return nil
	}
	return c.argNodes()
}

// Call returns the named view of a call instruction.
func (in *Instruction) Call() (*CallSite, bool) {
	n := parsetree.FindKind(in.root, parsetree.SymCallInst)
	if n == nil {
		return nil, false
	}
	return newCallSite(n), true
}

// Store returns the named view of a store instruction.
func (in *Instruction) Store() (*StoreOp, bool) {
	n := parsetree.FindKind(in.root, parsetree.SymStoreInst)
	if n == nil {
		return nil, false
	}
	return newStoreOp(n), true
}

// Compare returns the named view of an icmp or fcmp instruction.
func (in *Instruction) Compare() (*Comparison, bool) {
	if n := parsetree.FindKind(in.root, parsetree.SymICmpInst); n != nil {
		return newComparison(n), true
	}
	if n := parsetree.FindKind(in.root, parsetree.SymFCmpInst); n != nil {
		return newComparison(n), true
	}
	return nil, false
}
