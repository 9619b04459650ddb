// Package cmd holds the llvminst subcommands.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/config"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/logging"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/parser"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string

	cfg    config.Config
	logger *slog.Logger
	psr    *parser.Parser
)

var rootCmd = &cobra.Command{
	Use:   "llvminst",
	Short: "Parse single LLVM IR instructions",
	Long: `llvminst parses one line of LLVM IR at a time into a concrete parse tree
and answers questions about it: what kind of instruction it is, what it
assigns to, and what a call passes and returns.

Commands:
  parse    - parse instructions given as arguments or on stdin
  tokens   - show how a line is tokenized
  graph    - export the parse tree of a line as Graphviz DOT or PNG
  batch    - parse every instruction in .ll files
  runs     - list batch runs kept in the results database
  grammar  - show the instruction grammar and its parse table
  repl     - parse interactively`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the command line.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml or .yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "trace, debug, info, warn or error (overrides the config file)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "text or json (overrides the config file)")
}

// setup loads the configuration and builds the logger and parser every
// command shares.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := logging.ParseLevel(cfg.Log.Level)
	logger, err = logging.New(cmd.ErrOrStderr(), level, cfg.Log.Format)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	psr, err = parser.New(parser.Options{Logger: logger, MaxInputLength: cfg.Parser.MaxInputLength})
	return err
}

func printError(w io.Writer, msg string, err error) {
	fmt.Fprintf(w, "error: %s: %v\n", msg, err)
}

// openInput returns the named file, or stdin for "-" or no name.
func openInput(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}
