package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type paramInfo struct {
	name        string
	placeholder string
}

type opInfo struct {
	name   string
	params []paramInfo
	run    func(args []string) (string, error)
}

var ops = []opInfo{
	{
		name: "encode",
		params: []paramInfo{
			{"page", "1252"},
			{"text", "text to encode"},
		},
		run: func(args []string) (string, error) {
			page, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return "", fmt.Errorf("parse code page: %w", err)
			}
			return encodePage(uint32(page), args[1])
		},
	},
	{
		name: "decode",
		params: []paramInfo{
			{"page", "1252"},
			{"bytes", "hex bytes"},
		},
		run: func(args []string) (string, error) {
			page, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return "", fmt.Errorf("parse code page: %w", err)
			}
			return decodePage(uint32(page), args[1])
		},
	},
	{
		name: "normalize",
		params: []paramInfo{
			{"form", "nfc | nfd | nfkc | nfkd"},
			{"text", "text to normalize"},
		},
		run: func(args []string) (string, error) {
			return normalizeText(args[0], args[1])
		},
	},
	{
		name: "idn",
		params: []paramInfo{
			{"mode", "toascii | tounicode | nameprep"},
			{"name", "domain name"},
		},
		run: func(args []string) (string, error) {
			return idnConvert(args[0], 0, args[1])
		},
	},
	{
		name: "locale",
		params: []paramInfo{
			{"query", "name or 0xID"},
		},
		run: func(args []string) (string, error) {
			return localeLookup(args[0])
		},
	},
}

type modelState int

const (
	stateSelectOp modelState = iota
	stateInputArgs
	stateShowResult
)

type interactiveModel struct {
	err      error
	result   string
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
}

type callResultMsg struct {
	err    error
	result string
}

func newInteractiveModel() *interactiveModel {
	return &interactiveModel{state: stateSelectOp}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputArgs {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectOp && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectOp && m.selected < len(ops)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectOp:
				m.prepareInputs()
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.runOp

			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectOp
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}
		}

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	op := ops[m.selected]
	m.inputs = make([]textinput.Model, len(op.params))
	for i, p := range op.params {
		ti := textinput.New()
		ti.Placeholder = p.placeholder
		ti.Prompt = p.name + ": "
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) runOp() tea.Msg {
	op := ops[m.selected]
	args := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		args[i] = input.Value()
	}
	result, err := op.run(args)
	if err != nil {
		return callResultMsg{err: err}
	}
	return callResultMsg{result: result}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("NLS Converter"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectOp:
		b.WriteString("Select an operation:\n\n")
		for i, op := range ops {
			line := op.name
			var hints []string
			for _, p := range op.params {
				hints = append(hints, p.name)
			}
			line += " (" + strings.Join(hints, ", ") + ")"
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputArgs:
		op := ops[m.selected]
		b.WriteString(fmt.Sprintf("Running %s\n\n", opStyle.Render(op.name)))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(hintStyle.Render(op.params[i].placeholder))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter run • esc back"))

	case stateShowResult:
		op := ops[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", opStyle.Render(op.name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal")
	}
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
