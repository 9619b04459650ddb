// Command symgen writes the Symbol constants of package parsetree from the
// built-in instruction grammar, one constant per nonterminal in grammar order.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"unicode"

	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/grammar"
)

func main() {
	out := flag.String("o", "symbol_gen.go", "output file")
	pkg := flag.String("pkg", "parsetree", "package name of the generated file")
	flag.Parse()

	g, err := grammar.Parse("llvm_instruction.grammar", grammar.InstructionSource())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	src, err := generate(*pkg, g)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generate(pkg string, g *grammar.Grammar) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by symgen from %s; DO NOT EDIT.\n\n", g.Name)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	buf.WriteString("// Nonterminal symbols of the instruction grammar, in grammar order.\n")
	buf.WriteString("const (\n")
	buf.WriteString("\tSymTerminal Symbol = iota // a token; Node.Symbol holds its text\n")
	nts := g.Nonterminals()
	seen := make(map[string]string, len(nts))
	for _, s := range nts {
		id := "Sym" + identifier(s.Name)
		if prev, dup := seen[id]; dup {
			return nil, fmt.Errorf("%s and %s both map to %s", prev, s.Name, id)
		}
		seen[id] = s.Name
		fmt.Fprintf(&buf, "\t%s\n", id)
	}
	buf.WriteString(")\n\n")
	buf.WriteString("var symbolNames = [...]string{\n\t\"\",\n")
	for _, s := range nts {
		fmt.Fprintf(&buf, "\t%q,\n", s.Name)
	}
	buf.WriteString("}\n")
	return format.Source(buf.Bytes())
}

// identifier turns a grammar name into an exported Go identifier:
// string_lit becomes StringLiteral, CallInst stays as it is.
func identifier(name string) string {
	if !strings.Contains(name, "_") && unicode.IsUpper(rune(name[0])) {
		return name
	}
	var sb strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "lit" {
			part = "literal"
		}
		if part == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	return sb.String()
}
