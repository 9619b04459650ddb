// Command llvminst parses single LLVM IR instructions.
package main

import (
	"github.com/tebeka/atexit"

	"github.com/GitHubbillm/LLVM-Instruction-Parser/cmd/llvminst/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
