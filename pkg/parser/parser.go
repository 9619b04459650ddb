package parser

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/grammar"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/lexer"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/logging"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/parsetree"
)

// Options configures a Parser.
type Options struct {
	Logger         *slog.Logger
	Tally          *Tally // shared diagnostic counters; a private one when nil
	MaxInputLength int    // bytes; 0 means DefaultMaxInputLength
}

// DefaultMaxInputLength bounds a single instruction line.
const DefaultMaxInputLength = 1 << 20

// Parser turns one line of instruction text into a concrete parse tree.
// A Parser holds no per-parse state and is safe for concurrent use.
type Parser struct {
	table   *grammar.Table
	kinds   []parsetree.Symbol // by nonterminal index
	classes [lexer.DwarfOp + 1]int
	end     int
	logger  *slog.Logger
	tally   *Tally
	maxLen  int
}

// New returns a Parser for the built-in instruction grammar.
func New(opts Options) (*Parser, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Tally == nil {
		opts.Tally = &Tally{}
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}

	table, err := grammar.Instruction()
	if err != nil {
		return nil, fmt.Errorf("load grammar: %w", err)
	}
	p := &Parser{
		table:  table,
		logger: opts.Logger.With("component", "parser"),
		tally:  opts.Tally,
		maxLen: opts.MaxInputLength,
	}
	if err := p.bind(table.Grammar()); err != nil {
		return nil, err
	}
	return p, nil
}

// bind maps grammar symbols onto node kinds and token classes.
func (p *Parser) bind(g *grammar.Grammar) error {
	nts := g.Nonterminals()
	p.kinds = make([]parsetree.Symbol, len(nts))
	for _, s := range nts {
		kind, ok := parsetree.LookupSymbol(s.Name)
		if !ok {
			return fmt.Errorf("grammar nonterminal %s has no node kind", s.Name)
		}
		p.kinds[g.NonterminalIndex(s.ID)] = kind
	}

	for i := range p.classes {
		p.classes[i] = -1
		tt := lexer.TokenType(i)
		if tt == lexer.EOF || tt.IsLiteral() {
			continue
		}
		if s, ok := g.Symbols().Lookup(tt.String()); ok && s.Terminal {
			p.classes[i] = s.ID
		}
	}
	end, _ := g.Symbols().Lookup(grammar.EndMarker)
	p.end = end.ID
	return nil
}

// Tally returns the counters this Parser reports to.
func (p *Parser) Tally() *Tally { return p.tally }

// terminal returns the grammar terminal for tok, or -1 when the grammar has
// no use for it anywhere.
func (p *Parser) terminal(tok lexer.Token) int {
	switch {
	case tok.Type == lexer.EOF:
		return p.end
	case tok.Type.IsLiteral():
		if s, ok := p.table.Grammar().Symbols().LookupLiteral(tok.Lexeme); ok {
			return s.ID
		}
		return -1
	case int(tok.Type) >= 0 && int(tok.Type) < len(p.classes):
		return p.classes[tok.Type]
	}
	return -1
}

// Parse tokenizes and parses one instruction. Illegal characters are logged,
// counted and skipped; they do not fail the parse on their own. Any other
// failure returns a nil tree and a *ParseError.
func (p *Parser) Parse(src string) (*parsetree.Node, error) {
	p.tally.parses.Add(1)
	if len(src) > p.maxLen {
		p.tally.grammar.Add(1)
		return nil, &ErrInputTooLong{Length: len(src), Limit: p.maxLen}
	}

	lex := lexer.NewLexer(src)
	root, err := p.run(lex.Next)
	for _, lerr := range lex.Errors() {
		p.tally.lexical.Add(1)
		p.logger.Warn("skipped character", "error", lerr)
	}
	if err != nil {
		p.tally.grammar.Add(1)
		p.logger.Warn("parse failed", "input", src, "error", err)
		return nil, err
	}
	p.logger.Debug("parsed instruction", "input", src, "root", root.Symbol)
	return root, nil
}

// ParseTokens parses an already tokenized instruction. The sequence is read
// up to its first EOF token; a missing EOF is supplied.
func (p *Parser) ParseTokens(toks []lexer.Token) (*parsetree.Node, error) {
	p.tally.parses.Add(1)
	i := 0
	next := func() lexer.Token {
		if i >= len(toks) {
			line := 1
			if len(toks) > 0 {
				line = toks[len(toks)-1].Line
			}
			return lexer.Token{Type: lexer.EOF, Line: line}
		}
		tok := toks[i]
		i++
		return tok
	}
	root, err := p.run(next)
	if err != nil {
		p.tally.grammar.Add(1)
		p.logger.Warn("parse failed", "error", err)
		return nil, err
	}
	return root, nil
}

// run is the shift/reduce loop. Each parse gets its own Builder, so serials
// start at zero every time.
func (p *Parser) run(next func() lexer.Token) (*parsetree.Node, error) {
	g := p.table.Grammar()
	b := parsetree.NewBuilder()
	trace := p.logger.Enabled(context.Background(), logging.LevelTrace)

	states := []int{0}
	values := make([]parsetree.Value, 0, 32)
	tok := next()
	for {
		state := states[len(states)-1]
		var act grammar.Action
		if term := p.terminal(tok); term >= 0 {
			act = p.table.Action(state, term)
		}

		switch act.Kind {
		case grammar.ActionShift:
			if trace {
				p.logger.Log(context.Background(), logging.LevelTrace, "shift", "token", tok.Lexeme, "state", act.Target)
			}
			states = append(states, act.Target)
			values = append(values, parsetree.Token(tok.Lexeme, tok.Line))
			tok = next()

		case grammar.ActionReduce:
			prod := g.Production(act.Target)
			n := len(prod.RHS)
			node := b.Reduce(p.kinds[g.NonterminalIndex(prod.LHS)], values[len(values)-n:])
			if err := check(node); err != nil {
				return nil, err
			}
			if trace {
				p.logger.Log(context.Background(), logging.LevelTrace, "reduce", "production", g.ProductionString(prod.ID))
			}
			values = append(values[:len(values)-n], parsetree.Value{Node: node})
			states = states[:len(states)-n]
			to, ok := p.table.Goto(states[len(states)-1], prod.LHS)
			if !ok {
				return nil, fmt.Errorf("parser table has no goto from state %d on %s", states[len(states)-1], g.Symbols().Symbol(prod.LHS))
			}
			states = append(states, to)

		case grammar.ActionAccept:
			return values[len(values)-1].Node, nil

		default:
			return nil, p.syntaxError(tok, state)
		}
	}
}

func (p *Parser) syntaxError(tok lexer.Token, state int) *ParseError {
	e := &ParseError{Line: tok.Line, Token: tok.Lexeme}
	for _, s := range p.table.Expected(state) {
		e.Expected = append(e.Expected, s.String())
	}
	return e
}

var defaultParser = sync.OnceValues(func() (*Parser, error) { return New(Options{}) })

// Parse parses src with a shared Parser that logs through slog.Default.
func Parse(src string) (*parsetree.Node, error) {
	p, err := defaultParser()
	if err != nil {
		return nil, err
	}
	return p.Parse(src)
}
