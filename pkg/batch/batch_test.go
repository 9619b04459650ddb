package batch

import (
	"context"
	"errors"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/logging"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/parser"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/source"
)

func lineOf(n int, text string) source.Line {
	return source.Line{File: "t.ll", Number: n, Function: "f", Text: text}
}

var _ = Describe("Run", func() {
	var (
		mockCtrl *gomock.Controller
		sink     *MockSink
		opts     Options
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		sink = NewMockSink(mockCtrl)
		p, err := parser.New(parser.Options{Logger: logging.Discard()})
		Expect(err).NotTo(HaveOccurred())
		opts = Options{Parser: p, Workers: 4, Logger: logging.Discard()}
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("records every line of a module in input order", func() {
		lines, err := source.ExtractFile("../source/testdata/sum.ll")
		Expect(err).NotTo(HaveOccurred())

		var got []Result
		sink.EXPECT().Record(gomock.Any(), gomock.Any()).
			Times(len(lines)).
			DoAndReturn(func(_ context.Context, r Result) error {
				got = append(got, r)
				return nil
			})

		stats, err := Run(context.Background(), lines, sink, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(stats).To(Equal(Stats{Lines: 20, Parsed: 17, Failed: 3}))
		Expect(opts.Parser.Tally().Parses()).To(Equal(int64(20)))

		for i, r := range got {
			Expect(r.Line).To(Equal(lines[i]))
		}
		Expect(got[0].Summary.Kind).To(Equal("AllocaInst"))
		Expect(got[6].OK()).To(BeFalse())
		Expect(got[6].Line.Text).To(Equal("br label %4"))

		call := got[17].Summary
		Expect(call.Call.Callee).To(Equal("fprintf"))
		Expect(call.Call.Args).To(HaveLen(3))
	})

	It("stops at the first failure when asked", func() {
		opts.Workers = 1
		opts.FailFast = true
		lines := []source.Line{
			lineOf(1, "%1 = alloca i32, align 4"),
			lineOf(2, "ret void"),
			lineOf(3, "fence seq_cst"),
			lineOf(4, "fence seq_cst"),
		}
		first := sink.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
		sink.EXPECT().Record(gomock.Any(), gomock.Any()).
			After(first).
			DoAndReturn(func(_ context.Context, r Result) error {
				Expect(r.OK()).To(BeFalse())
				return nil
			})

		stats, err := Run(context.Background(), lines, sink, opts)
		Expect(errors.Is(err, ErrStopped)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("t.ll:2: ret void"))
		Expect(stats).To(Equal(Stats{Lines: 4, Parsed: 1, Failed: 1, Skipped: 2}))
	})

	It("records every line before the first failure with many workers", func() {
		opts.Workers = 8
		opts.FailFast = true
		lines := make([]source.Line, 400)
		for i := range lines {
			lines[i] = lineOf(i+1, "fence seq_cst")
		}
		lines[200] = lineOf(201, "ret void")
		lines[300] = lineOf(301, "ret void")

		for range 20 {
			c := &Collector{}
			stats, err := Run(context.Background(), lines, c, opts)
			Expect(errors.Is(err, ErrStopped)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("t.ll:201: ret void"))
			Expect(stats).To(Equal(Stats{Lines: 400, Parsed: 200, Failed: 1, Skipped: 199}))
			Expect(c.Results).To(HaveLen(201))
			for i, r := range c.Results[:200] {
				Expect(r.Line.Number).To(Equal(i + 1))
				Expect(r.OK()).To(BeTrue())
			}
			Expect(c.Results[200].OK()).To(BeFalse())
		}
	})

	It("returns the sink's error", func() {
		sink.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		_, err := Run(context.Background(), []source.Line{lineOf(1, "fence seq_cst"), lineOf(2, "fence acquire")}, sink, opts)
		Expect(err).To(MatchError(ContainSubstring("disk full")))
	})

	It("does nothing once the context is done", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		stats, err := Run(ctx, []source.Line{lineOf(1, "fence seq_cst")}, sink, opts)
		Expect(err).To(MatchError(context.Canceled))
		Expect(stats.Skipped).To(Equal(1))
	})
})

var _ = Describe("Sinks", func() {
	It("collects results and picks out failures", func() {
		c := &Collector{}
		ok := Result{Line: lineOf(1, "fence seq_cst")}
		bad := Result{Line: lineOf(2, "x"), Err: errors.New("no")}
		Expect(Tee{c}.Record(context.Background(), ok)).To(Succeed())
		Expect(Tee{c}.Record(context.Background(), bad)).To(Succeed())
		Expect(c.Results).To(HaveLen(2))
		Expect(c.Failures()).To(Equal([]Result{bad}))
	})

	It("stops a tee at the first failing sink", func() {
		ctrl := gomock.NewController(GinkgoT())
		failing := NewMockSink(ctrl)
		never := NewMockSink(ctrl)
		failing.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("closed"))

		err := Tee{failing, never}.Record(context.Background(), Result{})
		Expect(err).To(MatchError("closed"))
		ctrl.Finish()
	})

	It("formats stats", func() {
		Expect(Stats{Lines: 3, Parsed: 2, Failed: 1}.String()).To(Equal("3 lines, 2 parsed, 1 failed, 0 skipped"))
	})
})
