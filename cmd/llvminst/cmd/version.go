package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/grammar"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "llvminst v%s\n", Version)
		fmt.Fprintf(out, "  Git Commit: %s\n", GitCommit)
		fmt.Fprintf(out, "  Build Date: %s\n", BuildDate)
		fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		tbl, err := grammar.Instruction()
		if err != nil {
			return err
		}
		g := tbl.Grammar()
		fmt.Fprintf(out, "  Grammar:    %s, %d productions, %d states\n", g.Name, len(g.Productions()), tbl.NumStates())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
