package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractFile(t *testing.T) {
	lines, err := ExtractFile("testdata/sum.ll")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 20 {
		for _, l := range lines {
			t.Log(l)
		}
		t.Fatalf("got %d lines, want 20", len(lines))
	}

	tests := []struct {
		index    int
		number   int
		function string
		text     string
	}{
		{0, 14, "sum", "%1 = alloca i32, align 4"},
		{6, 20, "sum", "br label %4"},
		{7, 23, "sum", "%5 = load i32, i32* %3, align 4"},
		{10, 27, "sum", "%10 = load i32, i32* %2, align 4"},
		{14, 31, "sum", "ret i32 %12"},
		{15, 37, "main", "%p = load %struct._IO_FILE*, %struct._IO_FILE** @stderr, align 8"},
		{18, 40, "main", "fence seq_cst"},
	}
	for _, tt := range tests {
		got := lines[tt.index]
		if got.Number != tt.number || got.Function != tt.function || got.Text != tt.text {
			t.Errorf("line %d = %+v, want %d %s %q", tt.index, got, tt.number, tt.function, tt.text)
		}
		if got.File != "testdata/sum.ll" {
			t.Errorf("File = %q", got.File)
		}
	}
}

func TestExtractUnclosed(t *testing.T) {
	src := "define void @f() {\n  fence seq_cst\n"
	lines, err := Extract(strings.NewReader(src), "f.ll")
	if err == nil || !strings.Contains(err.Error(), "@f is not closed") {
		t.Errorf("err = %v", err)
	}
	if len(lines) != 1 {
		t.Errorf("lines = %v", lines)
	}
}

func TestExtractTrailingComments(t *testing.T) {
	src := "define void @f(i8* %s) {\n" +
		"  store i32 0, i32* %p, align 4 ; zero it\n" +
		"  %c = call i32 @puts(i8* getelementptr ([3 x i8], [3 x i8]* @\";x\", i64 0, i64 0)) ; print\n" +
		"  fence seq_cst;\n" +
		"}\n"
	lines, err := Extract(strings.NewReader(src), "f.ll")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"store i32 0, i32* %p, align 4",
		`%c = call i32 @puts(i8* getelementptr ([3 x i8], [3 x i8]* @";x", i64 0, i64 0))`,
		"fence seq_cst",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i, l := range lines {
		if l.Text != want[i] {
			t.Errorf("line %d = %q, want %q", i, l.Text, want[i])
		}
	}
}

func TestIsLabel(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"entry:", true},
		{"4:                ; preds = %9", true},
		{`"odd.name":`, true},
		{"for.body.lr.ph:", true},
		{"%1 = alloca i32", false},
		{"store i32 0, i32* %2", false},
		{`%s = select i1 %c, i8* getelementptr (i8, i8* @a, i64 1), i8* @b ; x:y`, false},
	}
	for _, tt := range tests {
		if got := isLabel(tt.line); got != tt.want {
			t.Errorf("isLabel(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestFunctionName(t *testing.T) {
	tests := map[string]string{
		"define i32 @main() #0 {":                   "main",
		"define internal void @\"odd name\"(i8*) {": `"odd name"`,
		"define void @f.g.1(i32 %x) {":              "f.g.1",
		"define nothing {":                          "",
	}
	for in, want := range tests {
		if got := functionName(in); got != want {
			t.Errorf("functionName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.ll", "sub/b.ll", "notes.txt"} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	files, err := Files(dir, filepath.Join(dir, "notes.txt"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(dir, "a.ll"), filepath.Join(dir, "sub", "b.ll"), filepath.Join(dir, "notes.txt")}
	if strings.Join(files, "|") != strings.Join(want, "|") {
		t.Errorf("Files = %v, want %v", files, want)
	}
	if _, err := Files(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected an error for a missing path")
	}
}
