package grammar

import (
	_ "embed"
	"sync"
)

//go:embed llvm_instruction.grammar
var instructionSource string

var (
	instructionOnce  sync.Once
	instructionTable *Table
	instructionErr   error
)

// InstructionSource returns the text of the built-in instruction grammar.
func InstructionSource() string { return instructionSource }

// Instruction returns the LALR(1) table for the built-in grammar of a single
// IR instruction. The table is built on first use and shared afterwards;
// it is read-only and safe for concurrent use.
func Instruction() (*Table, error) {
	instructionOnce.Do(func() {
		g, err := Parse("llvm_instruction.grammar", instructionSource)
		if err != nil {
			instructionErr = err
			return
		}
		instructionTable = Build(g)
	})
	return instructionTable, instructionErr
}
