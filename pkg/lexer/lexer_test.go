package lexer

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "Empty",
			input:    "",
			expected: []Token{{Type: EOF, Lexeme: "", Line: 1}},
		},
		{
			name:  "Alloca",
			input: "%3 = alloca i32, align 4",
			expected: []Token{
				{Type: LocalIdent, Lexeme: "%3", Line: 1},
				{Type: Punct, Lexeme: "=", Line: 1},
				{Type: Keyword, Lexeme: "alloca", Line: 1},
				{Type: IntType, Lexeme: "i32", Line: 1},
				{Type: Punct, Lexeme: ",", Line: 1},
				{Type: Keyword, Lexeme: "align", Line: 1},
				{Type: Decimals, Lexeme: "4", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Variadic call",
			input: "%call9 = call i32 (i8*, ...) @fprintf(i8* %p)",
			expected: []Token{
				{Type: LocalIdent, Lexeme: "%call9", Line: 1},
				{Type: Punct, Lexeme: "=", Line: 1},
				{Type: Keyword, Lexeme: "call", Line: 1},
				{Type: IntType, Lexeme: "i32", Line: 1},
				{Type: Punct, Lexeme: "(", Line: 1},
				{Type: IntType, Lexeme: "i8", Line: 1},
				{Type: Punct, Lexeme: "*", Line: 1},
				{Type: Punct, Lexeme: ",", Line: 1},
				{Type: Keyword, Lexeme: "...", Line: 1},
				{Type: Punct, Lexeme: ")", Line: 1},
				{Type: GlobalIdent, Lexeme: "@fprintf", Line: 1},
				{Type: Punct, Lexeme: "(", Line: 1},
				{Type: IntType, Lexeme: "i8", Line: 1},
				{Type: Punct, Lexeme: "*", Line: 1},
				{Type: LocalIdent, Lexeme: "%p", Line: 1},
				{Type: Punct, Lexeme: ")", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Metadata field labels",
			input: "!DILocation(line: 3, scope: !12)",
			expected: []Token{
				{Type: Keyword, Lexeme: "!DILocation", Line: 1},
				{Type: Punct, Lexeme: "(", Line: 1},
				{Type: Keyword, Lexeme: "line:", Line: 1},
				{Type: Decimals, Lexeme: "3", Line: 1},
				{Type: Punct, Lexeme: ",", Line: 1},
				{Type: Keyword, Lexeme: "scope:", Line: 1},
				{Type: MetadataID, Lexeme: "!12", Line: 1},
				{Type: Punct, Lexeme: ")", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Token classes",
			input: `@"quoted name" $comdat x86_fp80 0xK4000 -1.5e-3 2.5 -7 #13 !tbaa DW_TAG_member DIFlagPrototyped`,
			expected: []Token{
				{Type: GlobalIdent, Lexeme: `@"quoted name"`, Line: 1},
				{Type: ComdatName, Lexeme: "$comdat", Line: 1},
				{Type: Keyword, Lexeme: "x86_fp80", Line: 1},
				{Type: FloatHexLit, Lexeme: "0xK4000", Line: 1},
				{Type: SciLit, Lexeme: "-1.5e-3", Line: 1},
				{Type: FracLit, Lexeme: "2.5", Line: 1},
				{Type: Decimals, Lexeme: "-7", Line: 1},
				{Type: AttrGroupID, Lexeme: "#13", Line: 1},
				{Type: MetadataName, Lexeme: "!tbaa", Line: 1},
				{Type: DwarfTag, Lexeme: "DW_TAG_member", Line: 1},
				{Type: DIFlag, Lexeme: "DIFlagPrototyped", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Comment and newline",
			input: "add 1 ; trailing\n%y",
			expected: []Token{
				{Type: Keyword, Lexeme: "add", Line: 1},
				{Type: Decimals, Lexeme: "1", Line: 1},
				{Type: LocalIdent, Lexeme: "%y", Line: 2},
				{Type: EOF, Lexeme: "", Line: 2},
			},
		},
		{
			name:  "Comment at end of input",
			input: "fence ; no newline",
			expected: []Token{
				{Type: Keyword, Lexeme: "fence", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Bare words",
			input: "- ... x c",
			expected: []Token{
				{Type: Name, Lexeme: "-", Line: 1},
				{Type: Keyword, Lexeme: "...", Line: 1},
				{Type: Name, Lexeme: "x", Line: 1},
				{Type: Name, Lexeme: "c", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Labels",
			input: "entry:\nfoo.1:",
			expected: []Token{
				{Type: LabelIdent, Lexeme: "entry:", Line: 1},
				{Type: LabelIdent, Lexeme: "foo.1:", Line: 2},
				{Type: EOF, Lexeme: "", Line: 2},
			},
		},
		{
			name:  "Metadata name with digits",
			input: "!llvm.loop1",
			expected: []Token{
				{Type: MetadataName, Lexeme: "!llvm.loop1", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lex(tt.input)
			if err != nil {
				t.Fatalf("Lex(%q) unexpected error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Lex(%q)\n got  %v\n want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLexFirstPatternWins(t *testing.T) {
	// An integer type followed by letters is still an integer type token
	// and a name; longer matches from later patterns do not take over.
	tests := []struct {
		input string
		want  []TokenType
	}{
		{"i32x", []TokenType{IntType, Name, EOF}},
		{"1.5e", []TokenType{FracLit, Name, EOF}},
		{"0xfoo", []TokenType{FloatHexLit, Name, EOF}},
		{"$1", []TokenType{ComdatName, EOF}},
		{"%\"a b\"", []TokenType{LocalIdent, EOF}},
	}
	for _, tt := range tests {
		toks, err := Lex(tt.input)
		if err != nil {
			t.Fatalf("Lex(%q): %v", tt.input, err)
		}
		var got []TokenType
		for _, tok := range toks {
			got = append(got, tok.Type)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Lex(%q) types = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLexIllegalCharacters(t *testing.T) {
	toks, err := Lex("add ? i32 ~1")
	if err == nil {
		t.Fatal("expected an error for illegal characters")
	}

	var types []TokenType
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	want := []TokenType{Keyword, IntType, Decimals, EOF}
	if !reflect.DeepEqual(types, want) {
		t.Errorf("tokens after skipping = %v, want %v", types, want)
	}

	l := NewLexer("add ? i32 ~1")
	for l.Next().Type != EOF {
	}
	if got := len(l.Errors()); got != 2 {
		t.Fatalf("got %d errors, want 2", got)
	}
	var ice *IllegalCharError
	if !errors.As(l.Errors()[1], &ice) || ice.Char != '~' || ice.Line != 1 {
		t.Errorf("second error = %v", l.Errors()[1])
	}
	if !strings.Contains(err.Error(), "illegal character '?'") {
		t.Errorf("joined error = %q", err)
	}
}

func TestNextAfterEOF(t *testing.T) {
	l := NewLexer("ret")
	l.Next()
	for i := 0; i < 3; i++ {
		if tok := l.Next(); tok.Type != EOF {
			t.Fatalf("call %d after end: got %v", i, tok)
		}
	}
}

func TestKeywords(t *testing.T) {
	words := Keywords()
	if got := len(words); got != 330 {
		t.Errorf("len(Keywords()) = %d, want 330", got)
	}
	if !slices.IsSorted(words) {
		t.Error("Keywords() is not sorted")
	}
	words[0] = "changed"
	if Keywords()[0] == "changed" {
		t.Error("Keywords() shares its backing array")
	}
	for _, w := range []string{"alloca", "align:", "!DIExpression", "..."} {
		if !IsKeyword(w) {
			t.Errorf("IsKeyword(%q) = false", w)
		}
	}
	for _, w := range []string{"x", "c", "i32", "foo"} {
		if IsKeyword(w) {
			t.Errorf("IsKeyword(%q) = true", w)
		}
	}
}

func BenchmarkLex(b *testing.B) {
	src := `%call9 = call i32 (%struct._IO_FILE*, i8*, ...) @fprintf(%struct._IO_FILE* %9, i8* getelementptr inbounds ([19 x i8], [19 x i8]* @.str.1, i64 0, i64 0), i32 %yystate.1832) #14`
	for i := 0; i < b.N; i++ {
		Lex(src)
	}
}
