package lexer

import "fmt"

// TokenType identifies the category of a lexed token.
//
// Except for EOF, Keyword, Punct, LabelIdent and ComdatName, the String form
// of a TokenType is the name of the token class in the instruction grammar.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	Keyword // reserved word; the lexeme is the grammar literal
	Punct   // one of , ! ( ) [ ] { } * < = > |

	// Identifiers
	GlobalIdent  // @name, @"quoted", @12
	LocalIdent   // %name, %"quoted", %12
	AttrGroupID  // #12
	MetadataID   // !12
	MetadataName // !name
	ComdatName   // $name, $"quoted"
	Name         // bare word that is not reserved
	LabelIdent   // word:

	// Literals
	Decimals     // 12, -12
	IntType      // i32
	SciLit       // 1.0e+00
	FracLit      // 1.5
	FloatHexLit  // 0x3FF0000000000000, 0xK...
	QuotedString // "..."

	// Debug-info enumerators
	DwarfTag         // DW_TAG_*
	DwarfAttEncoding // DW_ATE_*
	DIFlag           // DIFlag*
	DwarfLang        // DW_LANG_*
	DwarfCC          // DW_CC_*
	ChecksumKind     // CSK_*
	DwarfVirtuality  // DW_VIRTUALITY_*
	DwarfMacinfo     // DW_MACINFO_*
	DwarfOp          // DW_OP_*
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	EOF:              "EOF",
	Keyword:          "keyword",
	Punct:            "punct",
	GlobalIdent:      "global_ident",
	LocalIdent:       "local_ident",
	AttrGroupID:      "attr_group_id",
	MetadataID:       "metadata_id",
	MetadataName:     "metadata_name",
	ComdatName:       "comdat_name",
	Name:             "name",
	LabelIdent:       "label_ident",
	Decimals:         "decimals",
	IntType:          "int_type",
	SciLit:           "sci_lit",
	FracLit:          "frac_lit",
	FloatHexLit:      "float_hex_lit",
	QuotedString:     "quoted_string",
	DwarfTag:         "dwarf_tag",
	DwarfAttEncoding: "dwarf_att_encoding",
	DIFlag:           "di_flag",
	DwarfLang:        "dwarf_lang",
	DwarfCC:          "dwarf_cc",
	ChecksumKind:     "checksum_kind",
	DwarfVirtuality:  "dwarf_virtuality",
	DwarfMacinfo:     "dwarf_macinfo",
	DwarfOp:          "dwarf_op",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// IsLiteral reports whether tokens of this type are matched by the grammar
// through their exact text rather than through their class.
func (tt TokenType) IsLiteral() bool { return tt == Keyword || tt == Punct }

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Line   int    // 1-based source line
}

func (t Token) String() string {
	return fmt.Sprintf("%-18s %-24q line %d", t.Type, t.Lexeme, t.Line)
}
