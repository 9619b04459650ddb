// Package source pulls instruction lines out of textual IR modules (.ll
// files) so they can be parsed one at a time.
package source

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Line is one instruction taken from a function body.
type Line struct {
	File     string `yaml:"file" json:"file"`
	Number   int    `yaml:"line" json:"line"` // 1-based line in File
	Function string `yaml:"function" json:"function"`
	Text     string `yaml:"text" json:"text"`
}

func (l Line) String() string {
	return fmt.Sprintf("%s:%d: %s", l.File, l.Number, l.Text)
}

// maxLine bounds a single source line; initializers of large constant
// arrays can run to hundreds of kilobytes.
const maxLine = 4 << 20

// Extract returns the instructions inside the function definitions of the
// module read from r, in file order. Block labels, blank lines and whole-line
// comments are skipped and trailing comments are cut. Declarations, globals
// and metadata outside function bodies are ignored. name is recorded in each
// Line.File.
func Extract(r io.Reader, name string) ([]Line, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		out      []Line
		function string
		inBody   bool
		number   int
	)
	for sc.Scan() {
		number++
		raw := sc.Text()
		trimmed := strings.TrimSpace(raw)

		if !inBody {
			if strings.HasPrefix(trimmed, "define ") && strings.HasSuffix(stripComment(trimmed), "{") {
				function = functionName(trimmed)
				inBody = true
			}
			continue
		}

		switch {
		case trimmed == "}":
			inBody = false
			function = ""
		case trimmed == "", strings.HasPrefix(trimmed, ";"), isLabel(trimmed):
		default:
			out = append(out, Line{File: name, Number: number, Function: function, Text: stripComment(trimmed)})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s:%d: %w", name, number, err)
	}
	if inBody {
		return out, fmt.Errorf("%s: function @%s is not closed", name, function)
	}
	return out, nil
}

// ExtractFile is Extract on the file at path.
func ExtractFile(path string) ([]Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Extract(f, path)
}

// Files returns the .ll files named by paths. Directories are searched
// recursively; files are returned as given, whatever their extension.
func Files(paths ...string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && filepath.Ext(path) == ".ll" {
				out = append(out, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// functionName returns the name of the function a define line introduces,
// without its @ sigil. Quoted names keep their quotes.
func functionName(define string) string {
	at := strings.IndexByte(define, '@')
	if at < 0 {
		return ""
	}
	rest := define[at+1:]
	if strings.HasPrefix(rest, `"`) {
		if end := strings.IndexByte(rest[1:], '"'); end >= 0 {
			return rest[:end+2]
		}
	}
	if end := strings.IndexByte(rest, '('); end >= 0 {
		return rest[:end]
	}
	return rest
}

// isLabel reports whether line is a basic block label such as "entry:" or
// "5:   ; preds = %2".
func isLabel(line string) bool {
	colon := strings.IndexByte(line, ':')
	if colon <= 0 {
		return false
	}
	if rest := strings.TrimSpace(line[colon+1:]); rest != "" && !strings.HasPrefix(rest, ";") {
		return false
	}
	label := strings.Trim(line[:colon], `"`)
	for _, r := range label {
		if !isLabelRune(r) {
			return false
		}
	}
	return true
}

func isLabelRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' ||
		r == '$' || r == '-' || r == '.' || r == '_'
}

// stripComment drops a trailing ; comment that is not inside a string.
func stripComment(line string) string {
	quoted := false
	for i, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
		case r == ';' && !quoted:
			return strings.TrimSpace(line[:i])
		}
	}
	return line
}
