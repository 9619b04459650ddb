// Package report turns batch results into a YAML document or a text table.
package report

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/batch"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/instruction"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/source"
)

type KindCount struct {
	Kind  string `yaml:"kind"`
	Count int    `yaml:"count"`
}

type Failure struct {
	Line  source.Line `yaml:",inline"`
	Error string      `yaml:"error"`
}

// Report is the outcome of one batch run.
type Report struct {
	RunID        string                `yaml:"run_id,omitempty"`
	Sources      []string              `yaml:"sources"`
	Stats        batch.Stats           `yaml:"stats"`
	Kinds        []KindCount           `yaml:"kinds"`
	Failures     []Failure             `yaml:"failures,omitempty"`
	Instructions []instruction.Summary `yaml:"instructions,omitempty"`
}

// Builder accumulates a Report. It is a batch.Sink.
type Builder struct {
	// Detailed keeps the summary of every parsed line, not just the counts.
	Detailed bool

	kinds    map[string]int
	failures []Failure
	details  []instruction.Summary
	parsed   int
}

func (b *Builder) Record(_ context.Context, r batch.Result) error {
	if b.kinds == nil {
		b.kinds = make(map[string]int)
	}
	if !r.OK() {
		b.failures = append(b.failures, Failure{Line: r.Line, Error: r.Err.Error()})
		return nil
	}
	b.parsed++
	b.kinds[r.Summary.Kind]++
	if b.Detailed {
		b.details = append(b.details, *r.Summary)
	}
	return nil
}

// Report returns what has been recorded, with kinds ordered by count and
// then by name.
func (b *Builder) Report(runID string, sources []string, stats batch.Stats) *Report {
	rep := &Report{
		RunID:        runID,
		Sources:      sources,
		Stats:        stats,
		Kinds:        []KindCount{},
		Failures:     b.failures,
		Instructions: b.details,
	}
	for k, n := range b.kinds {
		rep.Kinds = append(rep.Kinds, KindCount{Kind: k, Count: n})
	}
	sort.Slice(rep.Kinds, func(i, j int) bool {
		if rep.Kinds[i].Count != rep.Kinds[j].Count {
			return rep.Kinds[i].Count > rep.Kinds[j].Count
		}
		return rep.Kinds[i].Kind < rep.Kinds[j].Kind
	})
	return rep
}

// WriteYAML writes rep as a YAML document.
func WriteYAML(w io.Writer, rep *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}

// ReadYAML reads a report written by WriteYAML.
func ReadYAML(r io.Reader) (*Report, error) {
	var rep Report
	if err := yaml.NewDecoder(r).Decode(&rep); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &rep, nil
}

// WriteTable writes the kind counts and failures of rep as text tables.
func WriteTable(w io.Writer, rep *Report) error {
	if _, err := fmt.Fprintln(w, rep.Stats); err != nil {
		return err
	}
	kinds := table.NewWriter()
	kinds.AppendHeader(table.Row{"Kind", "Count", "Share"})
	for _, kc := range rep.Kinds {
		share := 0.0
		if rep.Stats.Parsed > 0 {
			share = 100 * float64(kc.Count) / float64(rep.Stats.Parsed)
		}
		kinds.AppendRow(table.Row{kc.Kind, kc.Count, fmt.Sprintf("%.1f%%", share)})
	}
	kinds.AppendFooter(table.Row{"Total", rep.Stats.Parsed, ""})
	if _, err := fmt.Fprintln(w, kinds.Render()); err != nil {
		return err
	}
	if len(rep.Failures) == 0 {
		return nil
	}

	failures := table.NewWriter()
	failures.SetTitle("Failures")
	failures.AppendHeader(table.Row{"Location", "Function", "Error"})
	for _, f := range rep.Failures {
		failures.AppendRow(table.Row{fmt.Sprintf("%s:%d", f.Line.File, f.Line.Number), f.Line.Function, f.Error})
	}
	_, err := fmt.Fprintln(w, failures.Render())
	return err
}
