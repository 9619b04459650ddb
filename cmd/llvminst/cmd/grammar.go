package cmd

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/grammar"
)

var (
	grammarSource bool
	grammarRule   string
	grammarState  int
)

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Show the instruction grammar and its parse table",
	Long: `Without flags, print the size of the grammar and its LALR(1) table.

  --source       print the grammar source
  --rule NAME    list the alternatives of one nonterminal with FIRST sets
  --state N      list the actions of one parse-table state`,
	Args: cobra.NoArgs,
	RunE: runGrammar,
}

func init() {
	grammarCmd.Flags().BoolVar(&grammarSource, "source", false, "print the grammar source")
	grammarCmd.Flags().StringVar(&grammarRule, "rule", "", "nonterminal to describe")
	grammarCmd.Flags().IntVar(&grammarState, "state", -1, "parse-table state to describe")
	rootCmd.AddCommand(grammarCmd)
}

func runGrammar(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if grammarSource {
		_, err := fmt.Fprint(out, grammar.InstructionSource())
		return err
	}

	tbl, err := grammar.Instruction()
	if err != nil {
		return err
	}
	g := tbl.Grammar()

	t := table.NewWriter()
	t.SetOutputMirror(out)
	switch {
	case grammarRule != "":
		sym, ok := g.Symbols().Lookup(grammarRule)
		if !ok || sym.Terminal || g.NonterminalIndex(sym.ID) >= len(g.Nonterminals()) {
			return fmt.Errorf("no nonterminal named %q", grammarRule)
		}
		t.SetTitle(fmt.Sprintf("%s  nullable=%v  first={%s}", sym.Name, g.Nullable(sym.ID), joinSymbols(g.First(sym.ID))))
		t.AppendHeader(table.Row{"Production", "Alternative"})
		for _, pid := range g.Alternatives(sym.ID) {
			t.AppendRow(table.Row{pid, g.ProductionString(pid)})
		}

	case grammarState >= 0:
		if grammarState >= tbl.NumStates() {
			return fmt.Errorf("state %d out of range; the table has %d states", grammarState, tbl.NumStates())
		}
		t.SetTitle(fmt.Sprintf("State %d", grammarState))
		t.AppendHeader(table.Row{"Lookahead", "Action"})
		for _, term := range g.Terminals() {
			act := tbl.Action(grammarState, term.ID)
			switch act.Kind {
			case grammar.ActionError:
				continue
			case grammar.ActionReduce:
				t.AppendRow(table.Row{term, fmt.Sprintf("reduce %s", g.ProductionString(act.Target))})
			default:
				t.AppendRow(table.Row{term, act})
			}
		}

	default:
		syms := g.Symbols()
		t.AppendHeader(table.Row{"Grammar", "Count"})
		t.AppendRows([]table.Row{
			{"nonterminals", len(g.Nonterminals())},
			{"productions", len(g.Productions())},
			{"literal terminals", len(syms.Literals())},
			{"token classes", len(syms.Classes())},
			{"LALR(1) states", tbl.NumStates()},
			{"conflicts", len(tbl.Conflicts())},
		})
		for _, c := range tbl.Conflicts() {
			t.AppendFooter(table.Row{"conflict", c.String()})
		}
	}
	t.Render()
	return nil
}

func joinSymbols(syms []grammar.Symbol) string {
	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = s.String()
	}
	return strings.Join(names, " ")
}
