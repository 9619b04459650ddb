package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/instruction"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/parsetree"
)

var (
	parseFormat string
	parseInput  string
)

var parseCmd = &cobra.Command{
	Use:   "parse [instruction...]",
	Short: "Parse instructions and print their trees or summaries",
	Long: `Parse each argument as one instruction. With no arguments, parse each
non-blank line of --input (stdin by default).

Formats:
  tree     - the tree on one line, as (Symbol child...)
  indent   - the tree with one node per line
  summary  - kind, target, and call, store or comparison details as YAML`,
	Example: `  llvminst parse '%3 = alloca i32, align 4'
  llvminst parse --format summary '%r = call i32 @f(i32 1)'`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "tree", "output format: tree, indent or summary")
	parseCmd.Flags().StringVarP(&parseInput, "input", "i", "-", "file of instructions, one per line, when no arguments are given")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	switch parseFormat {
	case "tree", "indent", "summary":
	default:
		return fmt.Errorf("unknown format %q", parseFormat)
	}

	lines := args
	if len(lines) == 0 {
		in, err := openInput(parseInput)
		if err != nil {
			return err
		}
		defer in.Close()
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				lines = append(lines, line)
			}
		}
		if err := sc.Err(); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, line := range lines {
		in, err := instruction.ParseWith(psr, line)
		if err != nil {
			failed++
			printError(cmd.ErrOrStderr(), line, err)
			continue
		}
		if err := printInstruction(out, in); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d instructions did not parse", failed, len(lines))
	}
	return nil
}

func printInstruction(w io.Writer, in *instruction.Instruction) error {
	switch parseFormat {
	case "indent":
		_, err := fmt.Fprint(w, parsetree.Indented(in.Root()))
		return err
	case "summary":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode([]instruction.Summary{in.Summarize()}); err != nil {
			return err
		}
		return enc.Close()
	}
	_, err := fmt.Fprintln(w, parsetree.Serialize(in.Root()))
	return err
}
