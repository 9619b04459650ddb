package grammar

import (
	"strings"
	"testing"
)

func TestParseNumbersProductionsInSourceOrder(t *testing.T) {
	g, err := Parse("expr", exprGrammar)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	wantProductions := []string{
		"$accept : E",
		"E : E '+' T",
		"E : T",
		"T : T '*' F",
		"T : F",
		"F : '(' E ')'",
		"F : id",
	}
	if len(g.Productions()) != len(wantProductions) {
		t.Fatalf("got %d productions, want %d", len(g.Productions()), len(wantProductions))
	}
	for i, want := range wantProductions {
		if got := g.ProductionString(i); got != want {
			t.Errorf("production %d = %q, want %q", i, got, want)
		}
	}

	if g.Start().Name != "E" {
		t.Errorf("start = %s, want E", g.Start())
	}
	if g.NumTerminals() != 6 {
		t.Errorf("NumTerminals = %d, want 6", g.NumTerminals())
	}
	if got := g.Symbols().Classes(); len(got) != 1 || got[0] != "id" {
		t.Errorf("Classes = %v, want [id]", got)
	}
	var nts []string
	for _, s := range g.Nonterminals() {
		nts = append(nts, s.Name)
	}
	if strings.Join(nts, " ") != "E T F" {
		t.Errorf("Nonterminals = %v", nts)
	}
}

func TestParseEmptyAlternative(t *testing.T) {
	g, err := Parse("opt", "Opt\n\t: 'x'\n\t|\n\t;\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := len(g.Production(2).RHS); got != 0 {
		t.Errorf("second alternative has %d symbols, want 0", got)
	}
	if g.Production(2).Line != 3 {
		t.Errorf("second alternative line = %d, want 3", g.Production(2).Line)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"no rules", "// nothing here\n", "grammar has no rules"},
		{"missing colon", "A 'x' ;", "test:1: expected ':'"},
		{"unterminated rule", "A : 'x'", "test:1: unterminated rule A"},
		{"unterminated literal", "A : 'x ;\n", "test:1: unterminated literal"},
		{"empty literal", "A : '' ;", "test:1: empty literal"},
		{"stray character", "A : x ;\nB : y # ;", "test:2: unexpected character '#'"},
		{"reserved name", "$accept : x ;", "test:1: unexpected character '$'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("test", tt.src)
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestGrammarStringRoundTrips(t *testing.T) {
	g, err := Parse("expr", exprGrammar)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	again, err := Parse("again", g.String())
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if g.String() != again.String() {
		t.Errorf("String() is not stable:\n%s\nvs\n%s", g, again)
	}
}
