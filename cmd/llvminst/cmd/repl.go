package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/logging"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/parser"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse instructions interactively",
	Long: `Start an interactive session. Type an instruction and press enter to see
its kind and operands.

Keys:
  Enter     - parse the line
  Tab       - switch between summary, tree and token views
  Up/Down   - browse earlier lines
  Esc       - quit`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	// Logging would draw over the alt screen.
	p, err := parser.New(parser.Options{Logger: logging.Discard(), MaxInputLength: cfg.Parser.MaxInputLength})
	if err != nil {
		return err
	}
	prog := tea.NewProgram(repl.New(p), tea.WithAltScreen())
	_, err = prog.Run()
	return err
}
