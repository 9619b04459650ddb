package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <instruction>",
	Short: "Show the tokens of an instruction",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		toks, err := lexer.Lex(strings.Join(args, " "))
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Tokens (%d)\n", len(toks))
		for _, tok := range toks {
			fmt.Fprintln(out, " ", tok)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
