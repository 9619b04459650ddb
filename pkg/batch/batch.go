// Package batch parses many instruction lines on a bounded pool of workers
// and hands the outcomes to a Sink in input order.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/instruction"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/parser"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/source"
)

//go:generate mockgen -write_package_comment=false -package=$GOPACKAGE -destination=mock_sink_test.go github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/batch Sink

// Result is the outcome of parsing one line. Exactly one of Summary and Err
// is set.
type Result struct {
	Line    source.Line
	Summary *instruction.Summary
	Err     error
}

// OK reports whether the line parsed.
func (r Result) OK() bool { return r.Err == nil }

// Sink receives results one at a time from a single goroutine.
type Sink interface {
	Record(ctx context.Context, r Result) error
}

// Stats counts what a run did.
type Stats struct {
	Lines   int `yaml:"lines" json:"lines"`
	Parsed  int `yaml:"parsed" json:"parsed"`
	Failed  int `yaml:"failed" json:"failed"`
	Skipped int `yaml:"skipped" json:"skipped"` // not attempted because the run stopped
}

func (s Stats) String() string {
	return fmt.Sprintf("%d lines, %d parsed, %d failed, %d skipped", s.Lines, s.Parsed, s.Failed, s.Skipped)
}

// Options configures Run.
type Options struct {
	Parser   *parser.Parser // the shared default parser when nil
	Workers  int            // runtime.NumCPU() when zero
	FailFast bool           // stop at the first line that does not parse
	Logger   *slog.Logger
}

// ErrStopped is returned by Run when FailFast stopped it early.
var ErrStopped = errors.New("batch stopped at first parse failure")

// Run parses lines with opts.Workers goroutines, then records every attempted
// line with sink in input order. It returns when all lines are recorded, the
// context is done, or a Sink call fails. With FailFast every line before the
// first failing one is parsed and recorded, and every line after it is
// skipped, whatever the number of workers.
func Run(ctx context.Context, lines []source.Line, sink Sink, opts Options) (Stats, error) {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	logger := opts.Logger.With("component", "batch")

	parse := instruction.Parse
	if opts.Parser != nil {
		parse = func(text string) (*instruction.Instruction, error) { return instruction.ParseWith(opts.Parser, text) }
	}

	var (
		mu        sync.Mutex
		results   = make([]*Result, len(lines))
		firstFail atomic.Int64 // lowest failing index so far
	)
	firstFail.Store(int64(len(lines)))
	stopped := func(i int) bool { return opts.FailFast && int64(i) > firstFail.Load() }

	var g errgroup.Group
	g.SetLimit(opts.Workers)
	for i, line := range lines {
		if ctx.Err() != nil || stopped(i) {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil || stopped(i) {
				return nil
			}
			r := &Result{Line: line}
			in, err := parse(line.Text)
			if err != nil {
				r.Err = err
			} else {
				s := in.Summarize()
				r.Summary = &s
			}
			mu.Lock()
			results[i] = r
			mu.Unlock()
			if err != nil && opts.FailFast {
				for {
					cur := firstFail.Load()
					if int64(i) >= cur || firstFail.CompareAndSwap(cur, int64(i)) {
						break
					}
				}
			}
			return nil
		})
	}
	g.Wait()

	var runErr error
	if ff := int(firstFail.Load()); ff < len(lines) {
		clear(results[ff+1:])
		runErr = fmt.Errorf("%w: %s: %v", ErrStopped, lines[ff], results[ff].Err)
	} else {
		runErr = ctx.Err()
	}

	stats := Stats{Lines: len(lines)}
	for _, r := range results {
		if r == nil {
			stats.Skipped++
			continue
		}
		if r.OK() {
			stats.Parsed++
		} else {
			stats.Failed++
		}
		if err := sink.Record(ctx, *r); err != nil {
			return stats, fmt.Errorf("record %s: %w", r.Line, err)
		}
	}
	logger.Info("batch finished", "lines", stats.Lines, "parsed", stats.Parsed, "failed", stats.Failed, "skipped", stats.Skipped)
	return stats, runErr
}

// Collector is a Sink that keeps every result in memory.
type Collector struct {
	Results []Result
}

func (c *Collector) Record(_ context.Context, r Result) error {
	c.Results = append(c.Results, r)
	return nil
}

// Failures returns the results that did not parse.
func (c *Collector) Failures() []Result {
	var out []Result
	for _, r := range c.Results {
		if !r.OK() {
			out = append(out, r)
		}
	}
	return out
}

// Tee is a Sink that records to each of its sinks in turn and stops at the
// first error.
type Tee []Sink

func (t Tee) Record(ctx context.Context, r Result) error {
	for _, s := range t {
		if err := s.Record(ctx, r); err != nil {
			return err
		}
	}
	return nil
}
