package grammar

import (
	"reflect"
	"testing"
)

func TestInstructionGrammar(t *testing.T) {
	table, err := Instruction()
	if err != nil {
		t.Fatalf("Instruction: %v", err)
	}
	g := table.Grammar()

	if g.Start().Name != "Instruction" {
		t.Errorf("start symbol = %s, want Instruction", g.Start())
	}
	if got := len(g.Nonterminals()); got != 349 {
		t.Errorf("nonterminals = %d, want 349", got)
	}
	if got := len(g.Productions()); got != 933 {
		t.Errorf("productions = %d, want 933", got)
	}
	if got := g.NumTerminals(); got != 365 {
		t.Errorf("terminals = %d, want 365", got)
	}
	if got := len(g.Symbols().Literals()); got != 343 {
		t.Errorf("literal terminals = %d, want 343", got)
	}
	if got := table.NumStates(); got != 1869 {
		t.Errorf("states = %d, want 1869", got)
	}
	if c := table.Conflicts(); len(c) != 0 {
		t.Errorf("unexpected conflicts: %v", c)
	}

	wantClasses := []string{
		"attr_group_id", "checksum_kind", "decimals", "di_flag",
		"dwarf_att_encoding", "dwarf_cc", "dwarf_lang", "dwarf_macinfo",
		"dwarf_op", "dwarf_tag", "dwarf_virtuality", "float_hex_lit",
		"frac_lit", "global_ident", "int_type", "local_ident",
		"metadata_id", "metadata_name", "name", "quoted_string", "sci_lit",
	}
	if got := g.Symbols().Classes(); !reflect.DeepEqual(got, wantClasses) {
		t.Errorf("token classes = %v\nwant %v", got, wantClasses)
	}

	for _, lit := range []string{"align:", "spFlags:", "...", "!DILocation", "ptr", "x86_fp80"} {
		if _, ok := g.Symbols().LookupLiteral(lit); !ok {
			t.Errorf("literal %q missing from grammar", lit)
		}
	}

	empty, ok := g.Symbols().Lookup("empty")
	if !ok || !g.Nullable(empty.ID) {
		t.Error("empty should be a nullable nonterminal")
	}
}

func TestInstructionTableIsShared(t *testing.T) {
	a, _ := Instruction()
	b, _ := Instruction()
	if a != b {
		t.Error("Instruction() built the table twice")
	}
}

func BenchmarkBuildInstructionTable(b *testing.B) {
	g, err := Parse("llvm_instruction.grammar", InstructionSource())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Build(g)
	}
}
