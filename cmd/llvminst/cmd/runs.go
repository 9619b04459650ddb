package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/store"
)

var (
	runsLimit  int
	runsFailed bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [run-id]",
	Short: "List stored batch runs, or show the results of one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "most recent runs to list; 0 for all")
	runsCmd.Flags().BoolVar(&runsFailed, "failed", false, "with a run id, show only the lines that did not parse")
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	if cfg.Store.Path == "" {
		return errors.New("no results database configured; set store.path or LLVMINST_STORE_PATH")
	}
	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	if len(args) == 1 {
		results, err := db.Results(cmd.Context(), args[0], store.Filter{FailedOnly: runsFailed})
		if err != nil {
			return err
		}
		t.AppendHeader(table.Row{"Location", "Function", "Kind", "Instruction / Error"})
		for _, r := range results {
			loc := fmt.Sprintf("%s:%d", r.Line.File, r.Line.Number)
			if r.Summary == nil {
				t.AppendRow(table.Row{loc, r.Line.Function, "-", r.Error})
				continue
			}
			t.AppendRow(table.Row{loc, r.Line.Function, r.Summary.Kind, r.Line.Text})
		}
		t.Render()
		return nil
	}

	runs, err := db.Runs(cmd.Context(), runsLimit)
	if err != nil {
		return err
	}
	t.AppendHeader(table.Row{"Run", "Started", "Duration", "Lines", "Parsed", "Failed", "Skipped"})
	for _, r := range runs {
		took := "open"
		if !r.FinishedAt.IsZero() {
			took = r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond).String()
		}
		t.AppendRow(table.Row{r.ID, r.StartedAt.Local().Format(time.DateTime), took,
			r.Stats.Lines, r.Stats.Parsed, r.Stats.Failed, r.Stats.Skipped})
	}
	t.Render()
	return nil
}
