package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/batch"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/report"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/source"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/store"
)

var (
	batchFormat   string
	batchDetailed bool
	batchStore    string
	batchWorkers  int
	batchFailFast bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <file.ll|dir>...",
	Short: "Parse every instruction in textual IR modules",
	Long: `Extract the instructions from the function bodies of each .ll file
(directories are searched recursively), parse them in parallel and report
what was found. With a results database configured the run and every
result are also stored there.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "table", "report format: table or yaml")
	batchCmd.Flags().BoolVar(&batchDetailed, "detailed", false, "include every instruction summary in a yaml report")
	batchCmd.Flags().StringVar(&batchStore, "store", "", "results database (overrides the config file)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "parser goroutines (overrides the config file)")
	batchCmd.Flags().BoolVar(&batchFailFast, "fail-fast", false, "stop at the first instruction that does not parse")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	if batchFormat != "table" && batchFormat != "yaml" {
		return fmt.Errorf("unknown format %q", batchFormat)
	}
	if batchStore != "" {
		cfg.Store.Path = batchStore
	}
	if batchWorkers > 0 {
		cfg.Batch.Workers = batchWorkers
	}

	files, err := source.Files(args...)
	if err != nil {
		return err
	}
	var lines []source.Line
	for _, f := range files {
		ls, err := source.ExtractFile(f)
		if err != nil {
			return err
		}
		lines = append(lines, ls...)
	}
	logger.Info("extracted instructions", "files", len(files), "lines", len(lines))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	if cfg.Batch.Timeout.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Batch.Timeout.Duration)
		defer cancel()
	}

	builder := &report.Builder{Detailed: batchDetailed}
	sinks := batch.Tee{builder}
	var run *store.Run
	if cfg.Store.Path != "" {
		db, err := store.Open(cfg.Store.Path)
		if err != nil {
			return err
		}
		atexit.Register(func() { db.Close() })
		if run, err = db.BeginRun(ctx, files); err != nil {
			return err
		}
		sinks = append(sinks, run)
	}

	stats, runErr := batch.Run(ctx, lines, sinks, batch.Options{
		Parser:   psr,
		Workers:  cfg.Batch.Workers,
		FailFast: batchFailFast || cfg.Batch.FailFast,
		Logger:   logger,
	})

	runID := ""
	if run != nil {
		runID = run.ID()
		// ctx may be done already.
		if err := run.Finish(context.WithoutCancel(ctx), stats); err != nil {
			return err
		}
	}

	rep := builder.Report(runID, files, stats)
	out := cmd.OutOrStdout()
	if batchFormat == "yaml" {
		err = report.WriteYAML(out, rep)
	} else {
		err = report.WriteTable(out, rep)
	}
	if err != nil {
		return err
	}
	logger.Debug("parser tally", "tally", psr.Tally().String())
	return runErr
}
