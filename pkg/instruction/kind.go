package instruction

import "github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/parsetree"

// Kind classifies a parsed instruction by its opcode.
type Kind int

const (
	Unknown Kind = iota

	// Value instructions, the common ones first.
	Call
	Alloca
	GetElementPtr
	ICmp
	Add
	FAdd
	Sub
	FSub
	Mul
	FMul
	UDiv
	SDiv
	FDiv
	URem
	SRem
	FRem
	Shl
	LShr
	AShr
	And
	Or
	Xor
	ExtractElement
	InsertElement
	ShuffleVector
	ExtractValue
	InsertValue
	Load
	Trunc
	ZExt
	SExt
	FPTrunc
	FPExt
	FPToUI
	FPToSI
	UIToFP
	SIToFP
	PtrToInt
	IntToPtr
	BitCast
	AddrSpaceCast
	FCmp
	Phi
	Select
	VAArg
	LandingPad
	CatchPad
	CleanupPad
	CmpXchg
	AtomicRMW

	// Instructions that produce no value.
	Store
	Fence

	numKinds
)

// kindSymbols maps each Kind to the node its production builds. Kind
// searches the tree for them in this order.
var kindSymbols = [numKinds]parsetree.Symbol{
	Call:           parsetree.SymCallInst,
	Alloca:         parsetree.SymAllocaInst,
	GetElementPtr:  parsetree.SymGetElementPtrInst,
	ICmp:           parsetree.SymICmpInst,
	Add:            parsetree.SymAddInst,
	FAdd:           parsetree.SymFAddInst,
	Sub:            parsetree.SymSubInst,
	FSub:           parsetree.SymFSubInst,
	Mul:            parsetree.SymMulInst,
	FMul:           parsetree.SymFMulInst,
	UDiv:           parsetree.SymUDivInst,
	SDiv:           parsetree.SymSDivInst,
	FDiv:           parsetree.SymFDivInst,
	URem:           parsetree.SymURemInst,
	SRem:           parsetree.SymSRemInst,
	FRem:           parsetree.SymFRemInst,
	Shl:            parsetree.SymShlInst,
	LShr:           parsetree.SymLShrInst,
	AShr:           parsetree.SymAShrInst,
	And:            parsetree.SymAndInst,
	Or:             parsetree.SymOrInst,
	Xor:            parsetree.SymXorInst,
	ExtractElement: parsetree.SymExtractElementInst,
	InsertElement:  parsetree.SymInsertElementInst,
	ShuffleVector:  parsetree.SymShuffleVectorInst,
	ExtractValue:   parsetree.SymExtractValueInst,
	InsertValue:    parsetree.SymInsertValueInst,
	Load:           parsetree.SymLoadInst,
	Trunc:          parsetree.SymTruncInst,
	ZExt:           parsetree.SymZExtInst,
	SExt:           parsetree.SymSExtInst,
	FPTrunc:        parsetree.SymFPTruncInst,
	FPExt:          parsetree.SymFPExtInst,
	FPToUI:         parsetree.SymFPToUIInst,
	FPToSI:         parsetree.SymFPToSIInst,
	UIToFP:         parsetree.SymUIToFPInst,
	SIToFP:         parsetree.SymSIToFPInst,
	PtrToInt:       parsetree.SymPtrToIntInst,
	IntToPtr:       parsetree.SymIntToPtrInst,
	BitCast:        parsetree.SymBitCastInst,
	AddrSpaceCast:  parsetree.SymAddrSpaceCastInst,
	FCmp:           parsetree.SymFCmpInst,
	Phi:            parsetree.SymPhiInst,
	Select:         parsetree.SymSelectInst,
	VAArg:          parsetree.SymVAArgInst,
	LandingPad:     parsetree.SymLandingPadInst,
	CatchPad:       parsetree.SymCatchPadInst,
	CleanupPad:     parsetree.SymCleanupPadInst,
	CmpXchg:        parsetree.SymCmpXchgInst,
	AtomicRMW:      parsetree.SymAtomicRMWInst,
	Store:          parsetree.SymStoreInst,
	Fence:          parsetree.SymFenceInst,
}

// Kinds returns every Kind except Unknown, in classification order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds-1)
	for k := Kind(1); k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

// Symbol returns the parse tree node kind of k.
func (k Kind) Symbol() parsetree.Symbol {
	if k <= Unknown || k >= numKinds {
		return parsetree.SymTerminal
	}
	return kindSymbols[k]
}

// String returns the node name, such as "CallInst", or "Unknown".
func (k Kind) String() string {
	if k <= Unknown || k >= numKinds {
		return "Unknown"
	}
	return kindSymbols[k].String()
}

// ProducesValue reports whether instructions of kind k yield a value and so
// may be assigned to a local.
func (k Kind) ProducesValue() bool { return k > Unknown && k < Store }

// ParseKind returns the Kind whose String is name.
func ParseKind(name string) (Kind, bool) {
	for k := Kind(1); k < numKinds; k++ {
		if kindSymbols[k].String() == name {
			return k, true
		}
	}
	return Unknown, false
}
