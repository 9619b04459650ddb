package grammar

import (
	"errors"
	"fmt"
	"unicode"
)

// Grammar source notation:
//
//	// comment
//	Rule
//		: Symbol 'literal' token_class
//		| Other
//		|
//		;
//
// An empty alternative derives the empty string.

type gtokenKind int

const (
	gtEOF gtokenKind = iota
	gtIdent
	gtLiteral
	gtColon
	gtPipe
	gtSemicolon
)

var gtokenNames = [...]string{
	gtEOF:       "end of file",
	gtIdent:     "identifier",
	gtLiteral:   "literal",
	gtColon:     "':'",
	gtPipe:      "'|'",
	gtSemicolon: "';'",
}

type gtoken struct {
	kind gtokenKind
	text string
	line int
}

type rawSymbol struct {
	name    string
	literal bool
}

type rawAlternative struct {
	symbols []rawSymbol
	line    int
}

type rawRule struct {
	lhs  string
	line int
	alts []rawAlternative
}

// reader scans and parses grammar source text.
type reader struct {
	name string
	src  []rune
	pos  int
	line int
	tok  gtoken
}

// Parse reads a grammar from src. The name is used in error messages.
// The first rule's left-hand side becomes the start symbol.
func Parse(name, src string) (*Grammar, error) {
	r := &reader{name: name, src: []rune(src), line: 1}
	rules, err := r.rules()
	if err != nil {
		return nil, err
	}
	return build(name, rules)
}

func (r *reader) errorf(line int, format string, args ...any) error {
	return fmt.Errorf("%s:%d: %s", r.name, line, fmt.Sprintf(format, args...))
}

func (r *reader) peek() rune {
	if r.pos >= len(r.src) {
		return 0
	}
	return r.src[r.pos]
}

func (r *reader) peek2() rune {
	if r.pos+1 >= len(r.src) {
		return 0
	}
	return r.src[r.pos+1]
}

func (r *reader) advance() rune {
	if r.pos >= len(r.src) {
		return 0
	}
	c := r.src[r.pos]
	r.pos++
	if c == '\n' {
		r.line++
	}
	return c
}

func isIdentStart(c rune) bool { return c == '_' || unicode.IsLetter(c) }
func isIdentPart(c rune) bool  { return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c) }

// next scans one token into r.tok.
func (r *reader) next() error {
	for r.pos < len(r.src) {
		c := r.peek()
		if unicode.IsSpace(c) {
			r.advance()
			continue
		}
		if c == '/' && r.peek2() == '/' {
			for r.pos < len(r.src) && r.peek() != '\n' {
				r.advance()
			}
			continue
		}
		break
	}
	line := r.line
	if r.pos >= len(r.src) {
		r.tok = gtoken{kind: gtEOF, line: line}
		return nil
	}

	c := r.peek()
	switch {
	case isIdentStart(c):
		start := r.pos
		for r.pos < len(r.src) && isIdentPart(r.peek()) {
			r.advance()
		}
		r.tok = gtoken{kind: gtIdent, text: string(r.src[start:r.pos]), line: line}
		return nil
	case c == '\'':
		r.advance()
		start := r.pos
		for r.pos < len(r.src) && r.peek() != '\'' {
			if r.peek() == '\n' {
				return r.errorf(line, "unterminated literal")
			}
			r.advance()
		}
		if r.pos >= len(r.src) {
			return r.errorf(line, "unterminated literal")
		}
		text := string(r.src[start:r.pos])
		r.advance()
		if text == "" {
			return r.errorf(line, "empty literal")
		}
		r.tok = gtoken{kind: gtLiteral, text: text, line: line}
		return nil
	}

	r.advance()
	switch c {
	case ':':
		r.tok = gtoken{kind: gtColon, text: ":", line: line}
	case '|':
		r.tok = gtoken{kind: gtPipe, text: "|", line: line}
	case ';':
		r.tok = gtoken{kind: gtSemicolon, text: ";", line: line}
	default:
		return r.errorf(line, "unexpected character %q", c)
	}
	return nil
}

func (r *reader) expect(kind gtokenKind) (gtoken, error) {
	if err := r.next(); err != nil {
		return gtoken{}, err
	}
	if r.tok.kind != kind {
		return gtoken{}, r.errorf(r.tok.line, "expected %s, found %s", gtokenNames[kind], r.describe())
	}
	return r.tok, nil
}

func (r *reader) describe() string {
	if r.tok.text == "" {
		return gtokenNames[r.tok.kind]
	}
	return fmt.Sprintf("%q", r.tok.text)
}

func (r *reader) rules() ([]rawRule, error) {
	var rules []rawRule
	for {
		if err := r.next(); err != nil {
			return nil, err
		}
		if r.tok.kind == gtEOF {
			break
		}
		if r.tok.kind != gtIdent {
			return nil, r.errorf(r.tok.line, "expected rule name, found %s", r.describe())
		}
		rule := rawRule{lhs: r.tok.text, line: r.tok.line}
		colon, err := r.expect(gtColon)
		if err != nil {
			return nil, err
		}

		alt := rawAlternative{line: colon.line}
		for done := false; !done; {
			if err := r.next(); err != nil {
				return nil, err
			}
			switch r.tok.kind {
			case gtIdent:
				alt.symbols = append(alt.symbols, rawSymbol{name: r.tok.text})
			case gtLiteral:
				alt.symbols = append(alt.symbols, rawSymbol{name: r.tok.text, literal: true})
			case gtPipe:
				rule.alts = append(rule.alts, alt)
				alt = rawAlternative{line: r.tok.line}
			case gtSemicolon:
				rule.alts = append(rule.alts, alt)
				done = true
			default:
				return nil, r.errorf(r.tok.line, "unterminated rule %s", rule.lhs)
			}
		}
		rules = append(rules, rule)
	}
	if len(rules) == 0 {
		return nil, errors.New(r.name + ": grammar has no rules")
	}
	return rules, nil
}

// build assigns symbol ids and numbers productions in source order.
func build(name string, rules []rawRule) (*Grammar, error) {
	defined := make(map[string]bool, len(rules))
	for _, rule := range rules {
		defined[rule.lhs] = true
	}

	st := newSymbolTable()
	st.define(EndMarker, true, false)
	for _, rule := range rules {
		for _, alt := range rule.alts {
			for _, s := range alt.symbols {
				if s.literal || !defined[s.name] {
					st.define(s.name, true, s.literal)
				}
			}
		}
	}
	for _, rule := range rules {
		st.define(rule.lhs, false, false)
	}
	accept := st.define(acceptName, false, false)

	g := &Grammar{
		Name:    name,
		symbols: st,
		byLHS:   make([][]int, accept-st.numTerminals+1),
		start:   st.names[rules[0].lhs],
		accept:  accept,
	}
	g.addProduction(accept, []int{g.start}, rules[0].line)
	for _, rule := range rules {
		lhs := st.names[rule.lhs]
		for _, alt := range rule.alts {
			rhs := make([]int, len(alt.symbols))
			for i, s := range alt.symbols {
				if s.literal {
					rhs[i] = st.literals[s.name]
				} else {
					rhs[i] = st.names[s.name]
				}
			}
			g.addProduction(lhs, rhs, alt.line)
		}
	}
	return g, nil
}

func (g *Grammar) addProduction(lhs int, rhs []int, line int) {
	id := len(g.productions)
	g.productions = append(g.productions, Production{ID: id, LHS: lhs, RHS: rhs, Line: line})
	idx := g.NonterminalIndex(lhs)
	g.byLHS[idx] = append(g.byLHS[idx], id)
}
