package parsetree

import (
	"strconv"
	"strings"
)

// Walk visits n and its descendants depth first, parents before children and
// children left to right. Returning false from fn prunes the node's subtree.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

func find(n *Node, match func(*Node) bool) *Node {
	if n == nil {
		return nil
	}
	if match(n) {
		return n
	}
	for _, c := range n.Children {
		if hit := find(c, match); hit != nil {
			return hit
		}
	}
	return nil
}

// Find returns the first node in pre-order whose Symbol is symbol, or nil.
// Terminals match on their text.
func Find(root *Node, symbol string) *Node {
	return find(root, func(n *Node) bool { return n.Symbol == symbol })
}

// FindKind returns the first nonterminal node of the given kind in pre-order,
// or nil.
func FindKind(root *Node, kind Symbol) *Node {
	return find(root, func(n *Node) bool { return n.Is(kind) })
}

// FindImmediateChild returns the first direct child of n whose Symbol is
// symbol, or nil.
func FindImmediateChild(n *Node, symbol string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Symbol == symbol {
			return c
		}
	}
	return nil
}

// FindImmediateKind is FindImmediateChild for a nonterminal kind.
func FindImmediateKind(n *Node, kind Symbol) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Is(kind) {
			return c
		}
	}
	return nil
}

// CollapseToLeaf follows first children down from n and returns the Symbol of
// the leaf it reaches, such as "i32" for Type -> FirstClassType ->
// ConcreteType -> IntType -> i32.
func CollapseToLeaf(n *Node) string {
	if n == nil {
		return ""
	}
	for len(n.Children) > 0 {
		n = n.Children[0]
	}
	return n.Symbol
}

// Serialize renders n as "(" Symbol child... ")" with no separators. Two trees
// have the same shape and symbols exactly when their serializations match.
func Serialize(n *Node) string {
	var sb strings.Builder
	serialize(&sb, n)
	return sb.String()
}

func serialize(sb *strings.Builder, n *Node) {
	sb.WriteByte('(')
	sb.WriteString(n.Symbol)
	for _, c := range n.Children {
		serialize(sb, c)
	}
	sb.WriteByte(')')
}

// Leaves returns the terminal text under n, left to right.
func Leaves(n *Node) []string {
	var out []string
	Walk(n, func(m *Node) bool {
		if m.Terminal {
			out = append(out, m.Symbol)
		}
		return true
	})
	return out
}

// Text joins the terminal text under n with single spaces.
func Text(n *Node) string { return strings.Join(Leaves(n), " ") }

// Count returns the number of nodes under n, n included.
func Count(n *Node) int {
	count := 0
	Walk(n, func(*Node) bool { count++; return true })
	return count
}

// Indented renders n one node per line, children indented two spaces under
// their parent and terminals quoted.
func Indented(n *Node) string {
	var sb strings.Builder
	indent(&sb, n, 0)
	return sb.String()
}

func indent(sb *strings.Builder, n *Node, depth int) {
	for range depth {
		sb.WriteString("  ")
	}
	if n.Terminal {
		sb.WriteString(strconv.Quote(n.Symbol))
	} else {
		sb.WriteString(n.Symbol)
	}
	sb.WriteByte('\n')
	for _, c := range n.Children {
		indent(sb, c, depth+1)
	}
}
