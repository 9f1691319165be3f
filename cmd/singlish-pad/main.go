// Command singlish-pad is a full-screen scratchpad for composing Sinhala
// text. Tab flips between Sinhala and Latin input, enter starts a new line,
// esc quits.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"singlish"
	"singlish/internal/config"
	"singlish/internal/ime"
	"singlish/internal/logger"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle  = lipgloss.NewStyle().Faint(true)
	preeditStyle = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("220"))
	modeStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
)

func main() {
	logger.Init()

	cfg, err := config.Resolve("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "singlish-pad: %v\n", err)
		os.Exit(1)
	}

	conv, err := singlish.NewConverter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "singlish-pad: %v\n", err)
		os.Exit(1)
	}

	m := newModel(conv, cfg)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "singlish-pad: %v\n", err)
		os.Exit(1)
	}
}

// lineSink collects the engine's output for the line being composed. It is a
// pointer shared across model copies, so commits survive bubbletea's
// value-semantics updates.
type lineSink struct {
	committed []rune
	preedit   string
}

func (s *lineSink) CommitText(text string) { s.committed = append(s.committed, []rune(text)...) }
func (s *lineSink) ShowPreedit(text string) { s.preedit = text }

func (s *lineSink) erase() {
	if len(s.committed) > 0 {
		s.committed = s.committed[:len(s.committed)-1]
	}
}

func (s *lineSink) reset() {
	s.committed = s.committed[:0]
	s.preedit = ""
}

type model struct {
	eng     *ime.Engine
	sink    *lineSink
	lines   []string
	preview bool
}

func newModel(conv *singlish.Converter, cfg config.Config) model {
	sink := &lineSink{}
	return model{
		eng:     ime.NewEngine(conv, ime.ParseMode(cfg.DefaultMode), sink),
		sink:    sink,
		preview: cfg.Preview,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyTab:
		m.eng.Toggle()
	case tea.KeyEnter:
		m.eng.Flush()
		m.lines = append(m.lines, string(m.sink.committed))
		m.sink.reset()
	case tea.KeyBackspace:
		if !m.eng.HandleBackspace() {
			m.sink.erase()
		}
	case tea.KeySpace:
		m.eng.HandleRune(' ')
	case tea.KeyRunes:
		for _, r := range keyMsg.Runes {
			m.eng.HandleRune(r)
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("singlish pad"))
	b.WriteString("\n\n")

	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(string(m.sink.committed))
	if m.preview && m.sink.preedit != "" {
		b.WriteString(preeditStyle.Render(m.sink.preedit))
	}
	b.WriteString("\n\n")

	status := fmt.Sprintf("mode %s", modeStyle.Render(m.eng.Mode().String()))
	if raw := m.eng.Buffer(); raw != "" {
		status += statusStyle.Render(fmt.Sprintf("  typing %q", raw))
	}
	b.WriteString(statusStyle.Render("tab: switch mode  enter: new line  esc: quit"))
	b.WriteString("\n")
	b.WriteString(status)

	return b.String()
}
