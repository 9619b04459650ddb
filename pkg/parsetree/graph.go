package parsetree

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Edge is one parent to child relation of an exported graph.
type Edge struct {
	From, To string
}

// Label returns the graph label of n: its symbol and serial, plus a terminal
// marker for tokens. The separator is a literal backslash-n, which DOT
// renders as a line break.
func Label(n *Node) string {
	var sb strings.Builder
	for _, r := range n.Symbol {
		switch r {
		case '%':
			sb.WriteString(`\%`)
		case '"':
			sb.WriteString(`\"`)
		default:
			sb.WriteRune(r)
		}
	}
	fmt.Fprintf(&sb, `\n(Node %d)`, n.Serial)
	if n.Terminal {
		sb.WriteString(`\n(terminal)`)
	}
	return sb.String()
}

// Edges lists every parent to child edge under root. Each child's edge comes
// right before the edges of its own subtree.
func Edges(root *Node) []Edge {
	var out []Edge
	var visit func(*Node)
	visit = func(n *Node) {
		from := Label(n)
		for _, c := range n.Children {
			out = append(out, Edge{From: from, To: Label(c)})
			visit(c)
		}
	}
	if root != nil {
		visit(root)
	}
	return out
}

// WriteDOT writes the tree under root as a Graphviz digraph.
func WriteDOT(w io.Writer, root *Node) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("digraph llvm_parse {\n")
	for _, e := range Edges(root) {
		fmt.Fprintf(bw, "\t\"%s\" -> \"%s\"\n", e.From, e.To)
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

// ExportDOT writes the tree under root to path. An existing file is left
// untouched and reported as an error wrapping fs.ErrExist unless replace is
// set.
func ExportDOT(path string, root *Node, replace bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if replace {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return err
	}
	if err := WriteDOT(f, root); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
