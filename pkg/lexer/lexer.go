package lexer

import (
	"errors"
	"fmt"
)

// IllegalCharError reports a character that starts no token. The lexer skips
// the character and carries on.
type IllegalCharError struct {
	Char rune
	Line int
}

func (e *IllegalCharError) Error() string {
	return fmt.Sprintf("illegal character %q on line %d", e.Char, e.Line)
}

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src  []rune
	pos  int // index of the next rune to consume
	line int // current 1-based source line
	errs []error
}

// NewLexer returns a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), line: 1}
}

// at returns the rune i positions past the current one, or 0 past the end.
func (l *Lexer) at(i int) rune {
	if l.pos+i >= len(l.src) {
		return 0
	}
	return l.src[l.pos+i]
}

func (l *Lexer) more(i int) bool { return l.pos+i < len(l.src) }

// take consumes n runes and returns them as a string.
func (l *Lexer) take(n int) string {
	start := l.pos
	for i := 0; i < n; i++ {
		if l.src[l.pos] == '\n' {
			l.line++
		}
		l.pos++
	}
	return string(l.src[start:l.pos])
}

func (l *Lexer) hasPrefix(p string) bool {
	i := 0
	for _, r := range p {
		if l.at(i) != r {
			return false
		}
		i++
	}
	return true
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isHex(c rune) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isLetter matches the characters allowed to start an unquoted name.
func isLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		c == '$' || c == '-' || c == '.' || c == '_'
}

func isWordChar(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || isDigit(c) || c == '_'
}

func isPunct(c rune) bool {
	switch c {
	case ',', '!', '(', ')', '[', ']', '{', '}', '*', '<', '=', '>', '|':
		return true
	}
	return false
}

// A matcher returns the number of runes its pattern matches at the current
// position, or 0 when it does not match.
type matcher struct {
	kind  TokenType
	match func(l *Lexer) int
}

// comment is a pseudo token type for ';' comments, which are dropped.
const comment TokenType = -1

// matchers are tried in order and the first one that matches wins, even when
// a later one would match more text.
var matchers = []matcher{
	{DwarfTag, enumerator("DW_TAG_")},
	{DwarfAttEncoding, enumerator("DW_ATE_")},
	{DIFlag, enumerator("DIFlag")},
	{DwarfLang, enumerator("DW_LANG_")},
	{DwarfCC, enumerator("DW_CC_")},
	{ChecksumKind, enumerator("CSK_")},
	{DwarfVirtuality, enumerator("DW_VIRTUALITY_")},
	{DwarfMacinfo, enumerator("DW_MACINFO_")},
	{DwarfOp, enumerator("DW_OP_")},
	{comment, matchComment},
	{SciLit, matchSci},
	{FracLit, (*Lexer).mantissa},
	{FloatHexLit, matchHex},
	{LabelIdent, matchLabel},
	{Decimals, matchDecimals},
	{IntType, matchIntType},
	{Name, matchName},
	{MetadataName, matchMetadataName},
	{QuotedString, matchQuoted},
}

func enumerator(prefix string) func(*Lexer) int {
	n := len([]rune(prefix))
	return func(l *Lexer) int {
		if !l.hasPrefix(prefix) {
			return 0
		}
		i := n
		for isWordChar(l.at(i)) {
			i++
		}
		return i
	}
}

// matchComment runs from ';' through the end of the line, newline included.
func matchComment(l *Lexer) int {
	if l.at(0) != ';' {
		return 0
	}
	n := 1
	for l.more(n) && l.at(n) != '\n' {
		n++
	}
	if l.more(n) {
		n++
	}
	return n
}

// mantissa matches [+-]?[0-9]+\.[0-9]*
func (l *Lexer) mantissa() int {
	n := 0
	if c := l.at(0); c == '+' || c == '-' {
		n++
	}
	start := n
	for isDigit(l.at(n)) {
		n++
	}
	if n == start || l.at(n) != '.' {
		return 0
	}
	n++
	for isDigit(l.at(n)) {
		n++
	}
	return n
}

func matchSci(l *Lexer) int {
	n := l.mantissa()
	if n == 0 {
		return 0
	}
	if c := l.at(n); c != 'e' && c != 'E' {
		return 0
	}
	n++
	if c := l.at(n); c == '+' || c == '-' {
		n++
	}
	start := n
	for isDigit(l.at(n)) {
		n++
	}
	if n == start {
		return 0
	}
	return n
}

// matchHex matches 0x[KLMH]?[0-9A-Fa-f]+
func matchHex(l *Lexer) int {
	if l.at(0) != '0' || l.at(1) != 'x' {
		return 0
	}
	n := 2
	switch l.at(n) {
	case 'K', 'L', 'M', 'H':
		n++
	}
	start := n
	for isHex(l.at(n)) {
		n++
	}
	if n == start {
		return 0
	}
	return n
}

func matchLabel(l *Lexer) int {
	n := 0
	for isLetter(l.at(n)) || isDigit(l.at(n)) {
		n++
	}
	if n == 0 || l.at(n) != ':' {
		return 0
	}
	return n + 1
}

func matchDecimals(l *Lexer) int {
	n := 0
	switch l.at(0) {
	case '@', '%', '#', '!', '-':
		if isDigit(l.at(1)) {
			n = 1
		}
	}
	start := n
	for isDigit(l.at(n)) {
		n++
	}
	if n == start {
		return 0
	}
	return n
}

func matchIntType(l *Lexer) int {
	if l.at(0) != 'i' || !isDigit(l.at(1)) {
		return 0
	}
	n := 2
	for isDigit(l.at(n)) {
		n++
	}
	return n
}

func matchName(l *Lexer) int {
	n := 0
	switch l.at(0) {
	case '@', '%', '$':
		if isLetter(l.at(1)) {
			n = 1
		}
	}
	if !isLetter(l.at(n)) {
		return 0
	}
	n++
	for isLetter(l.at(n)) || isDigit(l.at(n)) {
		n++
	}
	return n
}

func matchMetadataName(l *Lexer) int {
	escLetter := func(c rune) bool { return isLetter(c) || c == '\\' }
	if l.at(0) != '!' || !escLetter(l.at(1)) {
		return 0
	}
	n := 2
	for escLetter(l.at(n)) || isDigit(l.at(n)) {
		n++
	}
	return n
}

func matchQuoted(l *Lexer) int {
	n := 0
	switch l.at(0) {
	case '@', '%', '$':
		if l.at(1) == '"' {
			n = 1
		}
	}
	if l.at(n) != '"' {
		return 0
	}
	n++
	for l.more(n) && l.at(n) != '"' {
		n++
	}
	if !l.more(n) {
		return 0
	}
	return n + 1
}

// classify turns the raw match of a pattern into its final token type,
// resolving sigils and reserved words.
func classify(kind TokenType, text string) TokenType {
	switch kind {
	case LabelIdent, MetadataName:
		if IsKeyword(text) {
			return Keyword
		}
	case Decimals:
		switch text[0] {
		case '@':
			return GlobalIdent
		case '%':
			return LocalIdent
		case '#':
			return AttrGroupID
		case '!':
			return MetadataID
		}
	case Name, QuotedString:
		switch text[0] {
		case '@':
			return GlobalIdent
		case '%':
			return LocalIdent
		case '$':
			return ComdatName
		}
		if kind == Name && IsKeyword(text) {
			return Keyword
		}
	}
	return kind
}

// Next returns the next token. Once the input is exhausted it returns EOF
// tokens indefinitely.
func (l *Lexer) Next() Token {
	for l.more(0) {
		switch c := l.at(0); c {
		case ' ', '\t', '\r', '\n':
			l.take(1)
			continue
		}

		line := l.line
		matched := false
		for _, m := range matchers {
			n := m.match(l)
			if n == 0 {
				continue
			}
			text := l.take(n)
			if m.kind == comment {
				matched = true
				break
			}
			return Token{Type: classify(m.kind, text), Lexeme: text, Line: line}
		}
		if matched {
			continue
		}

		c := l.at(0)
		l.take(1)
		if isPunct(c) {
			return Token{Type: Punct, Lexeme: string(c), Line: line}
		}
		l.errs = append(l.errs, &IllegalCharError{Char: c, Line: line})
	}
	return Token{Type: EOF, Line: l.line}
}

// Errors returns the illegal characters skipped so far, in input order.
func (l *Lexer) Errors() []error { return l.errs }

// Lex tokenises src and returns all tokens including the final EOF token.
// Illegal characters do not stop the scan; they are skipped and reported
// together in the returned error, which unwraps to one *IllegalCharError
// per character.
func Lex(src string) ([]Token, error) {
	l := NewLexer(src)
	var tokens []Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, errors.Join(l.errs...)
		}
	}
}
