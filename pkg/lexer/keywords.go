package lexer

import "slices"

// reservedWords lists every keyword of the instruction grammar. A token that
// matches the name, label or metadata-name pattern and whose text appears
// here is a keyword rather than an identifier.
var reservedWords = []string{
	// Opcodes, types, attributes and modifiers.
	"...", "DISPFlagDefinition", "DISPFlagLocalToUnit", "FullDebug", "LineTablesOnly",
	"NoDebug", "acq_rel", "acquire", "add", "addrspace", "addrspacecast", "afn", "align",
	"alignstack", "alloca", "allocsize", "alwaysinline", "amdgpu_cs", "amdgpu_es",
	"amdgpu_gs", "amdgpu_hs", "amdgpu_kernel", "amdgpu_ls", "amdgpu_ps", "amdgpu_vs",
	"and", "anyregcc", "arcp", "argmemonly", "arm_aapcs_vfpcc", "arm_aapcscc",
	"arm_apcscc", "ashr", "asm", "atomic", "atomicrmw", "avr_intrcc", "avr_signalcc",
	"bitcast", "blockaddress", "builtin", "byval", "call", "catch", "catchpad", "cc",
	"ccc", "cleanup", "cleanuppad", "cmpxchg", "cold", "coldcc", "contract", "convergent",
	"cxx_fast_tlscc", "dereferenceable", "dereferenceable_or_null", "double", "eq",
	"exact", "extractelement", "extractvalue", "fadd", "false", "fast", "fastcc", "fcmp",
	"fdiv", "fence", "filter", "float", "fmul", "fp128", "fpext", "fptosi", "fptoui",
	"fptrunc", "frem", "fsub", "getelementptr", "ghccc", "half", "hhvm_ccc", "hhvmcc",
	"icmp", "immarg", "inaccessiblemem_or_argmemonly", "inaccessiblememonly", "inalloca",
	"inbounds", "inlinehint", "inrange", "inreg", "insertelement", "insertvalue",
	"intel_ocl_bicc", "inteldialect", "inttoptr", "jumptable", "label", "landingpad",
	"load", "lshr", "max", "metadata", "min", "minsize", "monotonic", "msp430_intrcc",
	"mul", "musttail", "naked", "nand", "ne", "nest", "ninf", "nnan", "noalias",
	"nobuiltin", "nocapture", "noduplicate", "nofree", "noimplicitfloat", "noinline",
	"none", "nonlazybind", "nonnull", "norecurse", "noredzone", "noreturn", "notail",
	"nounwind", "nsw", "nsz", "null", "nuw", "oeq", "oge", "ogt", "ole", "olt", "one",
	"optnone", "optsize", "or", "ord", "phi", "ppc_fp128", "preserve_allcc",
	"preserve_mostcc", "ptr", "ptrtoint", "ptx_device", "ptx_kernel", "readnone",
	"readonly", "reassoc", "release", "returned", "returns_twice", "safestack",
	"sanitize_address", "sanitize_hwaddress", "sanitize_memory", "sanitize_thread",
	"sdiv", "select", "seq_cst", "sext", "sge", "sgt", "shl", "shufflevector",
	"sideeffect", "signext", "sitofp", "sle", "slt", "speculatable", "spir_func",
	"spir_kernel", "srem", "sret", "ssp", "sspreq", "sspstrong", "store", "strictfp",
	"sub", "swiftcc", "swifterror", "swiftself", "syncscope", "tail", "to", "token",
	"true", "trunc", "udiv", "ueq", "uge", "ugt", "uitofp", "ule", "ult", "umax", "umin",
	"undef", "une", "uno", "unordered", "urem", "uwtable", "va_arg", "void", "volatile",
	"weak", "webkit_jscc", "win64cc", "within", "writeonly", "x86_64_sysvcc",
	"x86_fastcallcc", "x86_fp80", "x86_intrcc", "x86_mmx", "x86_regcallcc",
	"x86_stdcallcc", "x86_thiscallcc", "x86_vectorcallcc", "xchg", "xor", "zeroext",
	"zeroinitializer", "zext",

	// Field labels of the debug-info metadata nodes.
	"align:", "arg:", "attributes:", "baseType:", "cc:", "checksum:", "checksumkind:",
	"column:", "containingType:", "count:", "debugInfoForProfiling:", "declaration:",
	"directory:", "discriminator:", "dwarfAddressSpace:", "dwoid:", "elements:",
	"emissionKind:", "encoding:", "entity:", "enums:", "exportSymbols:", "expr:",
	"extraData:", "file:", "filename:", "flags:", "getter:", "globals:", "gnuPubnames:",
	"identifier:", "imports:", "inlinedAt:", "isDefinition:", "isLocal:", "isOptimized:",
	"isUnsigned:", "language:", "line:", "linkageName:", "lowerBound:", "macros:",
	"name:", "nameTableKind:", "nodes:", "offset:", "producer:", "retainedNodes:",
	"retainedTypes:", "runtimeLang:", "runtimeVersion:", "scope:", "scopeLine:",
	"setter:", "size:", "spFlags:", "splitDebugFilename:", "splitDebugInlining:", "tag:",
	"templateParams:", "thisAdjustment:", "thrownTypes:", "type:", "types:", "unit:",
	"value:", "var:", "variables:", "virtualIndex:", "virtuality:", "vtableHolder:",

	// Specialized metadata node names.
	"!DIBasicType", "!DICompileUnit", "!DICompositeType", "!DIDerivedType",
	"!DIEnumerator", "!DIExpression", "!DIFile", "!DIGlobalVariable",
	"!DIGlobalVariableExpression", "!DIImportedEntity", "!DILabel", "!DILexicalBlock",
	"!DILexicalBlockFile", "!DILocalVariable", "!DILocation", "!DIMacro", "!DIMacroFile",
	"!DINamespace", "!DIObjCProperty", "!DISubprogram", "!DISubrange",
	"!DISubroutineType", "!DITemplateTypeParameter", "!DITemplateValueParameter",
}

var keywords = func() map[string]bool {
	m := make(map[string]bool, len(reservedWords))
	for _, w := range reservedWords {
		m[w] = true
	}
	return m
}()

// IsKeyword reports whether text is a reserved word.
func IsKeyword(text string) bool { return keywords[text] }

// Keywords returns the reserved words in sorted order.
func Keywords() []string {
	out := slices.Clone(reservedWords)
	slices.Sort(out)
	return out
}
