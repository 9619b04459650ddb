// Package repl is an interactive terminal front end for the parser: type an
// instruction, press enter, and see its kind, tree or tokens.
package repl

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/instruction"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/lexer"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/parser"
	"github.com/GitHubbillm/LLVM-Instruction-Parser/pkg/parsetree"
)

// View selects how the latest instruction is shown.
type View int

const (
	ViewSummary View = iota
	ViewTree
	ViewTokens
	numViews
)

var viewNames = [...]string{"summary", "tree", "tokens"}

func (v View) String() string { return viewNames[v] }

type entry struct {
	text string
	in   *instruction.Instruction
	err  error
}

// Model is the bubbletea model of the REPL.
type Model struct {
	input   textinput.Model
	parser  *parser.Parser
	history []entry
	recall  int // index into history while browsing with up/down
	view    View
}

// New returns a Model that parses with p.
func New(p *parser.Parser) Model {
	ti := textinput.New()
	ti.Placeholder = "%3 = alloca i32, align 4"
	ti.Prompt = "> "
	ti.CharLimit = 4096
	ti.Width = 80
	ti.Focus()
	return Model{input: ti, parser: p}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.submit()
			return m, nil
		case tea.KeyTab:
			m.view = (m.view + 1) % numViews
			return m, nil
		case tea.KeyUp:
			if m.recall > 0 {
				m.recall--
				m.input.SetValue(m.history[m.recall].text)
				m.input.CursorEnd()
			}
			return m, nil
		case tea.KeyDown:
			if m.recall < len(m.history)-1 {
				m.recall++
				m.input.SetValue(m.history[m.recall].text)
			} else {
				m.recall = len(m.history)
				m.input.SetValue("")
			}
			m.input.CursorEnd()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-4, 20)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return
	}
	in, err := instruction.ParseWith(m.parser, text)
	m.history = append(m.history, entry{text: text, in: in, err: err})
	m.recall = len(m.history)
	m.input.SetValue("")
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("llvminst"))
	s.WriteString(mutedStyle.Render(fmt.Sprintf("  %s view  |  %s", m.view, m.parser.Tally())))
	s.WriteString("\n\n")

	if n := len(m.history); n > 0 {
		s.WriteString(boxStyle.Render(m.render(m.history[n-1])))
		s.WriteString("\n")
	}
	s.WriteString(m.input.View())
	s.WriteString("\n\n")
	s.WriteString(mutedStyle.Render("enter parse  tab switch view  up/down history  esc quit"))
	return s.String()
}

func (m Model) render(e entry) string {
	if m.view == ViewTokens {
		return renderTokens(e.text)
	}
	if e.err != nil {
		return lipgloss.JoinVertical(lipgloss.Left, e.text, errorStyle.Render(e.err.Error()))
	}
	if m.view == ViewTree {
		return strings.TrimRight(parsetree.Indented(e.in.Root()), "\n")
	}
	return renderSummary(e.in.Summarize())
}

func renderSummary(s instruction.Summary) string {
	lines := []string{kindStyle.Render(s.Kind) + "  " + s.Text}
	if s.Target != "" {
		lines = append(lines, "assigns to  %"+s.Target)
	}
	if c := s.Call; c != nil {
		lines = append(lines, fmt.Sprintf("calls       %s returning %s", c.Callee, c.ReturnType))
		for i, a := range c.Args {
			lines = append(lines, fmt.Sprintf("  arg %d     %s %s", i, a.Type, a.Text))
		}
	}
	if st := s.Store; st != nil {
		lines = append(lines, fmt.Sprintf("stores      %s %s to %s", st.Type, st.Value, st.Address))
	}
	if c := s.Compare; c != nil {
		lines = append(lines, fmt.Sprintf("compares    %s %s %s, %s", c.Predicate, c.Type, c.LHS, c.RHS))
	}
	lines = append(lines, mutedStyle.Render(fmt.Sprintf("%d nodes", s.Nodes)))
	return strings.Join(lines, "\n")
}

func renderTokens(text string) string {
	toks, err := lexer.Lex(text)
	lines := make([]string, 0, len(toks)+1)
	for _, tok := range toks {
		lines = append(lines, tok.String())
	}
	if err != nil {
		lines = append(lines, errorStyle.Render(err.Error()))
	}
	return strings.Join(lines, "\n")
}
