package instruction

import (
	"slices"

	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/parsetree"
)

// CallSite names the parts of
//
//	OptTail 'call' FastMathFlags OptCallingConv ReturnAttrs Type Value
//	'(' Args ')' FuncAttrs OperandBundles OptCommaSepMetadataAttachmentList
type CallSite struct {
	Node           *parsetree.Node
	Tail           *parsetree.Node
	FastMath       *parsetree.Node
	CallingConv    *parsetree.Node
	ReturnAttrs    *parsetree.Node
	Type           *parsetree.Node // return type, or the whole function type when spelled out
	Callee         *parsetree.Node
	Args           *parsetree.Node
	FuncAttrs      *parsetree.Node
	OperandBundles *parsetree.Node
	Metadata       *parsetree.Node
}

func newCallSite(n *parsetree.Node) *CallSite {
	return &CallSite{
		Node:           n,
		Tail:           n.Child(0),
		FastMath:       n.Child(2),
		CallingConv:    n.Child(3),
		ReturnAttrs:    n.Child(4),
		Type:           n.Child(5),
		Callee:         n.Child(6),
		Args:           n.Child(8),
		FuncAttrs:      n.Child(10),
		OperandBundles: n.Child(11),
		Metadata:       n.Child(12),
	}
}

// ReturnType returns the Type of the value the call yields.
func (c *CallSite) ReturnType() *parsetree.Node {
	if fn := c.Type.Child(0); fn.Is(parsetree.SymFuncType) {
		return fn.Child(0)
	}
	return c.Type
}

// CalleeName returns the called global or local without its sigil, or the
// callee's text when it is some other value.
func (c *CallSite) CalleeName() string {
	id := c.Callee.Child(0)
	if id.Is(parsetree.SymConstant) {
		id = id.Child(0)
	}
	if id.Is(parsetree.SymGlobalIdent) || id.Is(parsetree.SymLocalIdent) {
		return stripSigil(id.Child(0).Symbol)
	}
	return parsetree.Text(c.Callee)
}

// Variadic reports whether the argument list ends in "...".
func (c *CallSite) Variadic() bool {
	return parsetree.FindImmediateChild(c.Args, "...") != nil
}

// Tailness returns "tail", "musttail", "notail" or "".
func (c *CallSite) Tailness() string {
	if t := c.Tail.Child(0); t.Terminal {
		return t.Symbol
	}
	return ""
}

// argNodes walks the left-recursive ArgList down its first children, taking
// the Arg on the right at each level, then restores source order.
func (c *CallSite) argNodes() []*parsetree.Node {
	list := parsetree.FindImmediateKind(c.Args, parsetree.SymArgList)
	if list == nil {
		return nil
	}
	var args []*parsetree.Node
	for len(list.Children) > 1 {
		args = append(args, list.Children[2])
		list = list.Children[0]
	}
	args = append(args, list.Children[0])
	slices.Reverse(args)
	return args
}

// Arguments returns the named view of each argument, left to right.
func (c *CallSite) Arguments() []Argument {
	nodes := c.argNodes()
	out := make([]Argument, len(nodes))
	for i, n := range nodes {
		out[i] = newArgument(n)
	}
	return out
}

// Argument names the parts of Arg: ConcreteType ParamAttrs Value, or
// MetadataType Metadata for metadata operands.
type Argument struct {
	Node  *parsetree.Node
	Type  *parsetree.Node
	Attrs *parsetree.Node // nil for metadata operands
	Value *parsetree.Node // Value, or Metadata for metadata operands
}

func newArgument(n *parsetree.Node) Argument {
	if len(n.Children) == 2 {
		return Argument{Node: n, Type: n.Child(0), Value: n.Child(1)}
	}
	return Argument{Node: n, Type: n.Child(0), Attrs: n.Child(1), Value: n.Child(2)}
}

// IsMetadata reports whether the argument is a metadata operand.
func (a Argument) IsMetadata() bool { return a.Attrs == nil }

// Identifier returns the local named by the argument's value, without %.
func (a Argument) Identifier() (string, bool) {
	id := parsetree.FindKind(a.Value, parsetree.SymLocalIdent)
	if id == nil {
		return "", false
	}
	return stripSigil(id.Child(0).Symbol), true
}

// IsConstant reports whether the argument's value is a constant.
func (a Argument) IsConstant() bool {
	return parsetree.FindKind(a.Value, parsetree.SymConstant) != nil
}

// StoreOp names the parts of the store forms, atomic or not.
type StoreOp struct {
	Node      *parsetree.Node
	Atomic    bool
	Volatile  bool
	ValueType *parsetree.Node
	Value     *parsetree.Node
	PtrType   *parsetree.Node
	Address   *parsetree.Node
	Ordering  *parsetree.Node // AtomicOrdering; nil unless atomic
	Alignment *parsetree.Node // nil when not given
}

func newStoreOp(n *parsetree.Node) *StoreOp {
	s := &StoreOp{Node: n}
	var types, values []*parsetree.Node
	for _, c := range n.Children {
		switch {
		case c.Terminal && c.Symbol == "atomic":
			s.Atomic = true
		case c.Is(parsetree.SymOptVolatile):
			s.Volatile = !c.Child(0).Epsilon
		case c.Is(parsetree.SymType):
			types = append(types, c)
		case c.Is(parsetree.SymValue):
			values = append(values, c)
		case c.Is(parsetree.SymAtomicOrdering):
			s.Ordering = c
		case c.Is(parsetree.SymAlignment):
			s.Alignment = c
		}
	}
	s.ValueType, s.PtrType = types[0], types[1]
	s.Value, s.Address = values[0], values[1]
	return s
}

// Comparison names the parts of icmp and fcmp.
type Comparison struct {
	Node      *parsetree.Node
	Float     bool
	Predicate string
	Type      *parsetree.Node
	LHS, RHS  *parsetree.Node
}

func newComparison(n *parsetree.Node) *Comparison {
	cmp := &Comparison{Node: n, Float: n.Is(parsetree.SymFCmpInst)}
	var values []*parsetree.Node
	for _, c := range n.Children {
		switch {
		case c.Is(parsetree.SymIPred), c.Is(parsetree.SymFPred):
			cmp.Predicate = parsetree.CollapseToLeaf(c)
		case c.Is(parsetree.SymType):
			cmp.Type = c
		case c.Is(parsetree.SymValue):
			values = append(values, c)
		}
	}
	cmp.LHS, cmp.RHS = values[0], values[1]
	return cmp
}
