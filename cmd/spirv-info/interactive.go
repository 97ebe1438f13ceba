package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AlexxNica/rspirv/binary"
	"github.com/AlexxNica/rspirv/ir"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opcodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	operandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// listHeight is the number of instruction rows shown at once.
const listHeight = 20

type browseModel struct {
	err       error
	filename  string
	module    *ir.Module
	rows      []int // indices into module.Instructions after filtering
	selected  int
	top       int
	filter    textinput.Model
	filtering bool
}

func newBrowseModel(filename string, data []byte) *browseModel {
	m := &browseModel{filename: filename}
	m.filter = textinput.New()
	m.filter.Prompt = "filter: "
	m.filter.Placeholder = "opcode name"
	m.filter.Width = 30

	module, err := binary.Load(data)
	if err != nil {
		m.err = err
		return m
	}
	m.module = module
	m.applyFilter("")
	return m
}

func (m *browseModel) applyFilter(query string) {
	m.rows = m.rows[:0]
	query = strings.ToLower(query)
	for i := range m.module.Instructions {
		name := opcodeName(m.module.Instructions[i].Opcode)
		if query == "" || strings.Contains(strings.ToLower(name), query) {
			m.rows = append(m.rows, i)
		}
	}
	m.selected = 0
	m.top = 0
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.filtering {
		switch key.String() {
		case "enter":
			m.filtering = false
			m.filter.Blur()
			m.applyFilter(m.filter.Value())
		case "esc":
			m.filtering = false
			m.filter.Blur()
		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "pgup":
		m.move(-listHeight)
	case "pgdown":
		m.move(listHeight)
	case "g":
		m.selected = 0
		m.top = 0
	case "G":
		m.move(len(m.rows))

	case "/":
		m.filtering = true
		m.filter.SetValue("")
		m.filter.Focus()
	case "esc":
		m.filter.SetValue("")
		m.applyFilter("")
	}
	return m, nil
}

func (m *browseModel) move(delta int) {
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= len(m.rows) {
		m.selected = len(m.rows) - 1
	}
	if m.selected < m.top {
		m.top = m.selected
	}
	if m.selected >= m.top+listHeight {
		m.top = m.selected - listHeight + 1
	}
}

func (m *browseModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("SPIR-V Browser"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	h := m.module.Header
	b.WriteString(fmt.Sprintf("  v%d.%d  bound %d\n\n",
		h.MajorVersion(), h.MinorVersion(), h.Bound))

	if m.filtering {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	end := m.top + listHeight
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for row := m.top; row < end; row++ {
		inst := &m.module.Instructions[m.rows[row]]
		line := m.formatInstruction(m.rows[row], inst)
		if row == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	if len(m.rows) == 0 {
		b.WriteString(helpStyle.Render("  no instructions match\n"))
	}

	if m.selected < len(m.rows) {
		b.WriteString("\n")
		b.WriteString(m.formatDetail(&m.module.Instructions[m.rows[m.selected]]))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move • / filter • esc clear • q quit"))
	return b.String()
}

func (m *browseModel) formatInstruction(index int, inst *ir.Instruction) string {
	var parts []string
	if inst.ResultID != 0 {
		parts = append(parts, fmt.Sprintf("%%%d =", inst.ResultID))
	}
	parts = append(parts, opcodeStyle.Render(opcodeName(inst.Opcode)))
	for _, op := range inst.Operands {
		parts = append(parts, operandStyle.Render(op.String()))
	}
	return fmt.Sprintf("#%-4d %s", index+1, strings.Join(parts, " "))
}

func (m *browseModel) formatDetail(inst *ir.Instruction) string {
	var b strings.Builder
	b.WriteString(opcodeStyle.Render(opcodeName(inst.Opcode)))
	b.WriteString("\n")
	if inst.ResultType != 0 {
		fmt.Fprintf(&b, "  result type  %%%d\n", inst.ResultType)
	}
	if inst.ResultID != 0 {
		fmt.Fprintf(&b, "  result id    %%%d\n", inst.ResultID)
	}
	for i, op := range inst.Operands {
		fmt.Fprintf(&b, "  operand %-2d   %s  %s\n",
			i, op.Kind, operandStyle.Render(op.String()))
	}
	return b.String()
}

func runInteractive(filename string, data []byte) error {
	p := tea.NewProgram(newBrowseModel(filename, data), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
