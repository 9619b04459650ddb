package parsetree

// Node is one element of a concrete parse tree.
//
// Children mirror the right-hand side of the production that built the node,
// terminals included, so callers may address them by position. Optional
// slots that matched nothing hold an epsilon node rather than being absent.
type Node struct {
	Kind     Symbol // SymTerminal for tokens
	Symbol   string // nonterminal name, or the token text for terminals
	Children []*Node
	Parent   *Node
	Serial   int // unique and increasing within one parse
	Terminal bool
	Epsilon  bool
	Line     int // line of the first token under the node; 0 when it covers none
}

// Child returns the i'th child, or nil when n is nil or has fewer children.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Is reports whether n is a non-nil node for the given nonterminal.
func (n *Node) Is(kind Symbol) bool { return n != nil && n.Kind == kind && !n.Terminal }

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return Serialize(n)
}

// Value is one entry on a parser's value stack: a subtree already built, or
// the text of a shifted token that has not been wrapped in a Node yet.
type Value struct {
	Node *Node
	Text string
	Line int
}

// Token returns a Value for a shifted token.
func Token(text string, line int) Value { return Value{Text: text, Line: line} }

// Builder creates the nodes of one parse and numbers them. Serials start at
// zero for every Builder, so concurrent parses each need their own.
type Builder struct {
	next int
}

// NewBuilder returns a Builder whose first serial is zero.
func NewBuilder() *Builder { return &Builder{} }

// Reset restarts serial numbering at zero.
func (b *Builder) Reset() { b.next = 0 }

// Count returns the number of nodes built since the last reset.
func (b *Builder) Count() int { return b.next }

func (b *Builder) serial() int {
	s := b.next
	b.next++
	return s
}

// Reduce builds the node for a production of kind whose right-hand side
// matched values. The new node takes the next serial before any of the
// tokens it wraps. An empty right-hand side yields an epsilon node.
func (b *Builder) Reduce(kind Symbol, values []Value) *Node {
	n := &Node{Kind: kind, Symbol: kind.String(), Serial: b.serial()}
	if len(values) == 0 {
		n.Epsilon = true
		return n
	}
	n.Children = make([]*Node, len(values))
	for i, v := range values {
		child := v.Node
		if child == nil {
			child = &Node{Kind: SymTerminal, Symbol: v.Text, Serial: b.serial(), Terminal: true, Line: v.Line}
		}
		child.Parent = n
		n.Children[i] = child
		if n.Line == 0 {
			n.Line = child.Line
		}
	}
	return n
}
