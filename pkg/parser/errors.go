package parser

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// ParseError reports the token at which an instruction stopped parsing. The
// parse yields no tree; there is no recovery.
type ParseError struct {
	Line     int
	Token    string   // offending token text, empty at end of input
	Expected []string // terminals the parser could have accepted instead
	Message  string   // set when a token was rejected by a production check
}

func (e *ParseError) Error() string {
	near := fmt.Sprintf("at or before token %q", e.Token)
	if e.Token == "" {
		near = "at end of input"
	}
	msg := fmt.Sprintf("grammar error at about line %d %s", e.Line, near)
	if e.Message != "" {
		return msg + ": " + e.Message
	}
	if len(e.Expected) > 0 {
		shown := e.Expected
		if len(shown) > maxExpected {
			shown = shown[:maxExpected]
		}
		msg += "; expecting " + strings.Join(shown, ", ")
		if len(e.Expected) > maxExpected {
			msg += fmt.Sprintf(" or %d others", len(e.Expected)-maxExpected)
		}
	}
	return msg
}

const maxExpected = 8

// ErrInputTooLong is returned for input longer than Options.MaxInputLength.
type ErrInputTooLong struct {
	Length, Limit int
}

func (e *ErrInputTooLong) Error() string {
	return fmt.Sprintf("instruction is %d bytes long, limit is %d", e.Length, e.Limit)
}

// Tally counts diagnostics across parses. It is safe for concurrent use and
// is shared by every Parser it is given to.
type Tally struct {
	parses  atomic.Int64
	grammar atomic.Int64
	lexical atomic.Int64
}

// Parses returns the number of parses attempted.
func (t *Tally) Parses() int64 { return t.parses.Load() }

// GrammarErrors returns the number of parses that failed.
func (t *Tally) GrammarErrors() int64 { return t.grammar.Load() }

// LexicalErrors returns the number of illegal characters skipped.
func (t *Tally) LexicalErrors() int64 { return t.lexical.Load() }

func (t *Tally) String() string {
	return fmt.Sprintf("%d parses, %d grammar errors, %d lexical errors",
		t.Parses(), t.GrammarErrors(), t.LexicalErrors())
}
