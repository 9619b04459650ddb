package instruction

import (
	"strings"

	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/parsetree"
)

// Summary is the flat description of an instruction used by reports.
type Summary struct {
	Text    string          `yaml:"text" json:"text"`
	Kind    string          `yaml:"kind" json:"kind"`
	Target  string          `yaml:"target,omitempty" json:"target,omitempty"`
	Nodes   int             `yaml:"nodes" json:"nodes"`
	Call    *CallSummary    `yaml:"call,omitempty" json:"call,omitempty"`
	Store   *StoreSummary   `yaml:"store,omitempty" json:"store,omitempty"`
	Compare *CompareSummary `yaml:"compare,omitempty" json:"compare,omitempty"`
}

type CallSummary struct {
	Callee     string       `yaml:"callee" json:"callee"`
	ReturnType string       `yaml:"return_type" json:"return_type"`
	Tail       string       `yaml:"tail,omitempty" json:"tail,omitempty"`
	Variadic   bool         `yaml:"variadic,omitempty" json:"variadic,omitempty"`
	Args       []ArgSummary `yaml:"args" json:"args"`
}

type ArgSummary struct {
	Serial     int    `yaml:"serial" json:"serial"`
	Type       string `yaml:"type" json:"type"`
	Identifier string `yaml:"identifier,omitempty" json:"identifier,omitempty"`
	Constant   bool   `yaml:"constant,omitempty" json:"constant,omitempty"`
	Text       string `yaml:"text" json:"text"`
}

type StoreSummary struct {
	Type     string `yaml:"type" json:"type"`
	Value    string `yaml:"value" json:"value"`
	Address  string `yaml:"address" json:"address"`
	Atomic   bool   `yaml:"atomic,omitempty" json:"atomic,omitempty"`
	Volatile bool   `yaml:"volatile,omitempty" json:"volatile,omitempty"`
}

type CompareSummary struct {
	Predicate string `yaml:"predicate" json:"predicate"`
	Type      string `yaml:"type" json:"type"`
	LHS       string `yaml:"lhs" json:"lhs"`
	RHS       string `yaml:"rhs" json:"rhs"`
}

// Summarize collects the answers to every question this package can ask of
// in into one value.
func (in *Instruction) Summarize() Summary {
	s := Summary{Text: in.text, Kind: in.Kind().String()}
	s.Target, _ = in.AssignmentTarget()
	s.Nodes = parsetree.Count(in.root)

	if c, ok := in.Call(); ok {
		cs := &CallSummary{
			Callee:     c.CalleeName(),
			ReturnType: typeText(c.ReturnType()),
			Tail:       c.Tailness(),
			Variadic:   c.Variadic(),
			Args:       []ArgSummary{},
		}
		for _, a := range c.Arguments() {
			as := ArgSummary{
				Serial:   a.Node.Serial,
				Type:     typeText(a.Type),
				Constant: a.IsConstant(),
				Text:     parsetree.Text(a.Value),
			}
			as.Identifier, _ = a.Identifier()
			cs.Args = append(cs.Args, as)
		}
		s.Call = cs
	}
	if st, ok := in.Store(); ok {
		s.Store = &StoreSummary{
			Type:     typeText(st.ValueType),
			Value:    parsetree.Text(st.Value),
			Address:  parsetree.Text(st.Address),
			Atomic:   st.Atomic,
			Volatile: st.Volatile,
		}
	}
	if cmp, ok := in.Compare(); ok {
		s.Compare = &CompareSummary{
			Predicate: cmp.Predicate,
			Type:      typeText(cmp.Type),
			LHS:       parsetree.Text(cmp.LHS),
			RHS:       parsetree.Text(cmp.RHS),
		}
	}
	return s
}

// typeText renders a type subtree the way it is usually written: "i8*"
// rather than "i8 *", and "{ i32, i1 }".
func typeText(n *parsetree.Node) string {
	var sb strings.Builder
	for _, leaf := range parsetree.Leaves(n) {
		switch {
		case sb.Len() == 0, leaf == "*", leaf == ",", leaf == ")", leaf == "]", leaf == ">":
		case strings.HasSuffix(sb.String(), "("), strings.HasSuffix(sb.String(), "["),
			strings.HasSuffix(sb.String(), "<"):
		default:
			sb.WriteByte(' ')
		}
		sb.WriteString(leaf)
	}
	return sb.String()
}
