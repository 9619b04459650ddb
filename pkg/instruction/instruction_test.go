package instruction_test

import (
	"errors"
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/instruction"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/parser"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/parsetree"
)

func mustParse(text string) *instruction.Instruction {
	GinkgoHelper()
	in, err := instruction.Parse(text)
	Expect(err).NotTo(HaveOccurred())
	return in
}

// kindSamples reads testdata/kinds.tsv: one "Kind<TAB>instruction" per line.
func kindSamples() []TableEntry {
	data, err := os.ReadFile("testdata/kinds.tsv")
	if err != nil {
		panic(err)
	}
	var entries []TableEntry
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		kind, text, _ := strings.Cut(line, "\t")
		entries = append(entries, Entry(kind, text, kind))
	}
	return entries
}

var _ = Describe("Instruction", func() {
	DescribeTable("classifies every instruction form",
		func(text, want string) {
			in := mustParse(text)
			Expect(in.Kind().String()).To(Equal(want))

			k, ok := instruction.ParseKind(want)
			Expect(ok).To(BeTrue())
			Expect(in.Is(k)).To(BeTrue())
			Expect(in.HasAssignmentTarget()).To(Equal(k.ProducesValue()))
		},
		kindSamples(),
	)

	It("lists kinds in classification order", func() {
		kinds := instruction.Kinds()
		Expect(kinds).To(HaveLen(52))
		Expect(kinds[0]).To(Equal(instruction.Call))
		Expect(kinds[len(kinds)-1]).To(Equal(instruction.Fence))
		Expect(instruction.Unknown.String()).To(Equal("Unknown"))
		_, ok := instruction.ParseKind("Instruction")
		Expect(ok).To(BeFalse())
	})

	Describe("assignment targets", func() {
		It("strips the sigil from the target", func() {
			target, ok := mustParse("%3 = alloca i32, align 4").AssignmentTarget()
			Expect(ok).To(BeTrue())
			Expect(target).To(Equal("3"))
		})

		It("reports none for a store", func() {
			in := mustParse("store i32 %0, i32* %3, align 4")
			Expect(in.HasAssignmentTarget()).To(BeFalse())
			_, ok := in.AssignmentTarget()
			Expect(ok).To(BeFalse())
		})

		It("finds targets of comparisons and phis", func() {
			target, _ := mustParse("%8 = icmp slt i32 %6, 10").AssignmentTarget()
			Expect(target).To(Equal("8"))
			target, _ = mustParse("%14 = phi i32 [ %10, %9 ], [ %12, %11 ]").AssignmentTarget()
			Expect(target).To(Equal("14"))
		})
	})

	Describe("calls", func() {
		It("returns the arguments in source order", func() {
			in := mustParse("call i32 @f(i32 1, i32 2, i32 3)")
			args := in.CallArguments()
			Expect(args).To(HaveLen(3))
			for i, want := range []string{"1", "2", "3"} {
				Expect(args[i].Is(parsetree.SymArg)).To(BeTrue())
				Expect(parsetree.CollapseToLeaf(args[i].Child(2))).To(Equal(want))
			}
		})

		It("looks through a spelled-out function type for the return type", func() {
			in := mustParse("%call9 = call i32 (i8*, ...) @fprintf(i8* %p, i32 %n)")
			rt := in.CallReturnType()
			Expect(rt.Is(parsetree.SymType)).To(BeTrue())
			Expect(parsetree.CollapseToLeaf(rt)).To(Equal("i32"))
			Expect(in.CallArguments()).To(HaveLen(2))

			c, ok := in.Call()
			Expect(ok).To(BeTrue())
			Expect(c.Type.Child(0).Is(parsetree.SymFuncType)).To(BeTrue())
			Expect(c.CalleeName()).To(Equal("fprintf"))
			Expect(c.Variadic()).To(BeFalse())
		})

		It("names the parts of a tail call", func() {
			c, ok := mustParse("%r = tail call fastcc i32 @g(i32 %x) #2").Call()
			Expect(ok).To(BeTrue())
			Expect(c.Tailness()).To(Equal("tail"))
			Expect(parsetree.CollapseToLeaf(c.CallingConv)).To(Equal("fastcc"))
			Expect(parsetree.Text(c.FuncAttrs)).To(Equal("#2"))

			args := c.Arguments()
			Expect(args).To(HaveLen(1))
			id, ok := args[0].Identifier()
			Expect(ok).To(BeTrue())
			Expect(id).To(Equal("x"))
			Expect(args[0].IsConstant()).To(BeFalse())
			Expect(args[0].IsMetadata()).To(BeFalse())
		})

		It("handles indirect variadic calls", func() {
			c, _ := mustParse("%r = call i32 %fp(i32 1, ...)").Call()
			Expect(c.CalleeName()).To(Equal("fp"))
			Expect(c.Variadic()).To(BeTrue())
			Expect(c.Tailness()).To(BeEmpty())
			Expect(c.Arguments()[0].IsConstant()).To(BeTrue())
		})

		It("handles metadata operands", func() {
			in := mustParse("call void @llvm.dbg.declare(metadata i32* %1, metadata !12, metadata !DIExpression()), !dbg !14")
			Expect(in.HasAssignmentTarget()).To(BeFalse())
			c, _ := in.Call()
			args := c.Arguments()
			Expect(args).To(HaveLen(3))
			for _, a := range args {
				Expect(a.IsMetadata()).To(BeTrue())
			}
			id, ok := args[0].Identifier()
			Expect(ok).To(BeTrue())
			Expect(id).To(Equal("1"))
			Expect(parsetree.CollapseToLeaf(in.CallReturnType())).To(Equal("void"))
		})

		It("returns nil for calls without arguments", func() {
			in := mustParse("%r = call i32 @rand()")
			Expect(in.CallArguments()).To(BeNil())
			Expect(in.CallReturnType()).NotTo(BeNil())
		})

		It("answers call questions about other instructions with nothing", func() {
			in := mustParse("%3 = alloca i32, align 4")
			Expect(in.CallReturnType()).To(BeNil())
			Expect(in.CallArguments()).To(BeNil())
			_, ok := in.Call()
			Expect(ok).To(BeFalse())
			_, ok = in.Store()
			Expect(ok).To(BeFalse())
			_, ok = in.Compare()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("stores", func() {
		It("names value, address and alignment", func() {
			s, ok := mustParse("store volatile i32 %0, i32* %3, align 4").Store()
			Expect(ok).To(BeTrue())
			Expect(s.Volatile).To(BeTrue())
			Expect(s.Atomic).To(BeFalse())
			Expect(parsetree.Text(s.Value)).To(Equal("%0"))
			Expect(parsetree.Text(s.Address)).To(Equal("%3"))
			Expect(parsetree.Text(s.PtrType)).To(Equal("i32 *"))
			Expect(s.Alignment).NotTo(BeNil())
			Expect(s.Ordering).To(BeNil())
		})

		It("reads atomic stores", func() {
			s, _ := mustParse("store atomic i32 1, i32* %p seq_cst, align 4").Store()
			Expect(s.Atomic).To(BeTrue())
			Expect(s.Volatile).To(BeFalse())
			Expect(parsetree.CollapseToLeaf(s.Ordering)).To(Equal("seq_cst"))
		})
	})

	Describe("comparisons", func() {
		It("names the predicate and operands of icmp", func() {
			c, ok := mustParse("%8 = icmp slt i32 %6, 10").Compare()
			Expect(ok).To(BeTrue())
			Expect(c.Float).To(BeFalse())
			Expect(c.Predicate).To(Equal("slt"))
			Expect(parsetree.Text(c.LHS)).To(Equal("%6"))
			Expect(parsetree.Text(c.RHS)).To(Equal("10"))
		})

		It("reads fcmp", func() {
			c, _ := mustParse("%c = fcmp olt float %a, %b").Compare()
			Expect(c.Float).To(BeTrue())
			Expect(c.Predicate).To(Equal("olt"))
			Expect(parsetree.CollapseToLeaf(c.Type)).To(Equal("float"))
		})
	})

	Describe("summaries", func() {
		It("describes a call", func() {
			s := mustParse("%call9 = call i32 (i8*, ...) @fprintf(i8* %p, i32 %n)").Summarize()
			Expect(s.Kind).To(Equal("CallInst"))
			Expect(s.Target).To(Equal("call9"))
			Expect(s.Call).NotTo(BeNil())
			Expect(s.Call.Callee).To(Equal("fprintf"))
			Expect(s.Call.ReturnType).To(Equal("i32"))
			Expect(s.Call.Args).To(HaveLen(2))
			Expect(s.Call.Args[0].Type).To(Equal("i8*"))
			Expect(s.Call.Args[0].Identifier).To(Equal("p"))
			Expect(s.Call.Args[1].Serial).To(BeNumerically(">", s.Call.Args[0].Serial))
			Expect(s.Store).To(BeNil())
		})

		It("describes a store and a comparison", func() {
			s := mustParse("store i32 %0, i32* %3, align 4").Summarize()
			Expect(s.Target).To(BeEmpty())
			Expect(*s.Store).To(Equal(instruction.StoreSummary{Type: "i32", Value: "%0", Address: "%3"}))

			s = mustParse("%e = extractvalue { i32, i1 } %p, 0").Summarize()
			Expect(s.Kind).To(Equal("ExtractValueInst"))
			Expect(s.Nodes).To(BeNumerically(">", 10))

			s = mustParse("%c = icmp eq i32 %a, 0").Summarize()
			Expect(*s.Compare).To(Equal(instruction.CompareSummary{Predicate: "eq", Type: "i32", LHS: "%a", RHS: "0"}))
		})
	})

	It("reports unparseable text as a parse error", func() {
		_, err := instruction.Parse("frobnicate")
		var perr *parser.ParseError
		Expect(errors.As(err, &perr)).To(BeTrue())
		Expect(perr.Token).To(Equal("frobnicate"))
	})

	It("wraps trees built by a private parser", func() {
		p, err := parser.New(parser.Options{})
		Expect(err).NotTo(HaveOccurred())
		in, err := instruction.ParseWith(p, "fence seq_cst")
		Expect(err).NotTo(HaveOccurred())
		Expect(in.Kind()).To(Equal(instruction.Fence))
		Expect(in.Text()).To(Equal("fence seq_cst"))
		Expect(instruction.FromTree(in.Root(), in.Text()).Kind()).To(Equal(instruction.Fence))
	})
})
