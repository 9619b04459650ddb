package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/parsetree"
)

var (
	graphOut     string
	graphPNG     bool
	graphReplace bool
)

var graphCmd = &cobra.Command{
	Use:   "graph <instruction>...",
	Short: "Export parse trees as Graphviz DOT or PNG",
	Long: `Parse each argument and write its tree to a file. Without --output the
files are named parse_<n>.dot (or .png) in the configured graph directory,
numbered from 0 in argument order. Existing files are left alone unless
--replace is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGraph,
}

func init() {
	graphCmd.Flags().StringVarP(&graphOut, "output", "o", "", "output file; only with a single instruction")
	graphCmd.Flags().BoolVar(&graphPNG, "png", false, "render a PNG image instead of DOT")
	graphCmd.Flags().BoolVar(&graphReplace, "replace", false, "overwrite existing files")
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	if graphOut != "" && len(args) > 1 {
		return fmt.Errorf("--output needs exactly one instruction, got %d", len(args))
	}
	replace := graphReplace || cfg.Graph.Replace
	ext := ".dot"
	if graphPNG {
		ext = ".png"
	}

	for i, line := range args {
		root, err := psr.Parse(line)
		if err != nil {
			return fmt.Errorf("%s: %w", line, err)
		}
		path := graphOut
		if path == "" {
			path = filepath.Join(cfg.Graph.Dir, fmt.Sprintf("parse_%d%s", i, ext))
		}
		if graphPNG {
			err = writePNG(path, root, replace)
		} else {
			err = parsetree.ExportDOT(path, root, replace)
		}
		if err != nil {
			return err
		}
		logger.Info("wrote parse tree", "path", path, "nodes", parsetree.Count(root))
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

func writePNG(path string, root *parsetree.Node, replace bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if replace {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return err
	}
	if err := parsetree.RenderPNG(f, root); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
