package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/timex/civil"
)

// ExplorerConfig holds configuration for the explorer.
type ExplorerConfig struct {
	Reference civil.DateTime
	Initial   string
	// Recent seeds the recall list, newest first.
	Recent []string
	// OnKeep is called when the user presses enter on a valid expression.
	OnKeep func(Analysis) error
}

// ExplorerModel is the bubbletea model for the explorer.
type ExplorerModel struct {
	ref    civil.DateTime
	input  []rune
	cursor int

	analysis Analysis
	relative bool

	recent []string
	recall int // -1 when not recalling
	onKeep func(Analysis) error

	width   int
	height  int
	message string
	err     error
}

// NewExplorerModel creates a new explorer model.
func NewExplorerModel(cfg ExplorerConfig) *ExplorerModel {
	m := &ExplorerModel{
		ref:      cfg.Reference,
		recent:   cfg.Recent,
		recall:   -1,
		onKeep:   cfg.OnKeep,
		relative: true,
	}
	m.setInput(cfg.Initial)
	return m
}

// Input returns the current input text.
func (m *ExplorerModel) Input() string {
	return string(m.input)
}

// Analysis returns the analysis of the current input.
func (m *ExplorerModel) Analysis() Analysis {
	return m.analysis
}

// Init initializes the model.
func (m *ExplorerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m *ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m *ExplorerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyEnter:
		m.keep()

	case tea.KeyTab:
		m.relative = !m.relative

	case tea.KeyUp:
		if m.recall+1 < len(m.recent) {
			m.recall++
			m.setInput(m.recent[m.recall])
		}

	case tea.KeyDown:
		switch {
		case m.recall > 0:
			m.recall--
			m.setInput(m.recent[m.recall])
		case m.recall == 0:
			m.recall = -1
			m.setInput("")
		}

	case tea.KeyLeft:
		if m.cursor > 0 {
			m.cursor--
		}

	case tea.KeyRight:
		if m.cursor < len(m.input) {
			m.cursor++
		}

	case tea.KeyHome, tea.KeyCtrlA:
		m.cursor = 0

	case tea.KeyEnd, tea.KeyCtrlE:
		m.cursor = len(m.input)

	case tea.KeyCtrlU:
		m.setInput("")

	case tea.KeyBackspace:
		if m.cursor > 0 {
			m.input = append(m.input[:m.cursor-1], m.input[m.cursor:]...)
			m.cursor--
			m.refresh()
		}

	case tea.KeyDelete:
		if m.cursor < len(m.input) {
			m.input = append(m.input[:m.cursor], m.input[m.cursor+1:]...)
			m.refresh()
		}

	case tea.KeySpace:
		m.insert([]rune{' '})

	case tea.KeyRunes:
		m.insert(msg.Runes)
	}

	return m, nil
}

func (m *ExplorerModel) insert(rs []rune) {
	tail := append([]rune{}, m.input[m.cursor:]...)
	m.input = append(append(m.input[:m.cursor], rs...), tail...)
	m.cursor += len(rs)
	m.refresh()
}

func (m *ExplorerModel) setInput(s string) {
	m.input = []rune(s)
	m.cursor = len(m.input)
	m.refresh()
}

func (m *ExplorerModel) refresh() {
	m.analysis = Analyze(strings.TrimSpace(string(m.input)), m.ref)
}

// keep records the current expression at the front of the recall list.
func (m *ExplorerModel) keep() {
	if m.analysis.Parsed == nil || !m.analysis.Parsed.Valid {
		m.message = "Nothing to keep"
		return
	}
	canonical := m.analysis.Parsed.Canonical
	recent := []string{canonical}
	for _, r := range m.recent {
		if r != canonical {
			recent = append(recent, r)
		}
	}
	m.recent = recent
	m.recall = -1

	if m.onKeep != nil {
		if err := m.onKeep(m.analysis); err != nil {
			m.err = err
			return
		}
	}
	m.err = nil
	m.message = "Kept " + canonical
}

// View renders the explorer.
func (m *ExplorerModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	title := StyleTitle.Render("TIMEX Explorer")
	refStr := StyleSubtitle.Render("reference " + m.ref.String())
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", refStr))

	sections = append(sections, StyleInputBox.Width(m.width-4).Render(m.renderInput()))

	if m.err != nil {
		sections = append(sections, StyleError.Render("Error: "+m.err.Error()))
	}
	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	comp := &AnalysisComponent{Analysis: m.analysis, Width: m.width, Relative: m.relative}
	sections = append(sections, comp.View())

	if len(m.recent) > 0 {
		n := min(len(m.recent), 5)
		sections = append(sections, StyleSubtitle.Render("recent: "+strings.Join(m.recent[:n], "  ")))
	}

	sections = append(sections, HelpBar())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *ExplorerModel) renderInput() string {
	before := string(m.input[:m.cursor])
	at, after := " ", ""
	if m.cursor < len(m.input) {
		at = string(m.input[m.cursor])
		after = string(m.input[m.cursor+1:])
	}
	return "› " + before + StyleCursor.Render(at) + after
}

// Run starts the explorer.
func Run(cfg ExplorerConfig) error {
	p := tea.NewProgram(NewExplorerModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
