package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/TrustedPlus/trusted-curl/curl"
	"github.com/TrustedPlus/trusted-curl/easy"
	"github.com/TrustedPlus/trusted-curl/engine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
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

type interactiveModel struct {
	err      error
	handle   *easy.Easy
	loopback *engine.Handle
	result   string
	ops      []opInfo
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
}

type opInfo struct {
	name   string
	desc   string
	params []paramInfo
	call   func(m *interactiveModel, args []string) (string, error)
}

type paramInfo struct {
	name    string
	typeStr string
}

type modelState int

const (
	stateSelectOp modelState = iota
	stateInputArgs
	stateShowResult
)

func newInteractiveModel() *interactiveModel {
	return &interactiveModel{state: stateSelectOp, ops: operations()}
}

func operations() []opInfo {
	return []opInfo{
		{
			name: "setopt",
			desc: "install a configuration option",
			params: []paramInfo{
				{name: "option", typeStr: "symbolic name"},
				{name: "value", typeStr: "string/number"},
			},
			call: func(m *interactiveModel, args []string) (string, error) {
				code, err := m.handle.SetOpt(args[0], parseValue(args[1]))
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("%s (%d)", easy.StrError(code), code), nil
			},
		},
		{
			name: "getinfo",
			desc: "retrieve an introspection value",
			params: []paramInfo{
				{name: "info", typeStr: "symbolic name"},
			},
			call: func(m *interactiveModel, args []string) (string, error) {
				res, err := m.handle.GetInfo(args[0])
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("code=%d value=%v", res.Code, res.Value), nil
			},
		},
		{
			name: "perform",
			desc: "run the scripted transfer",
			call: func(m *interactiveModel, args []string) (string, error) {
				var body strings.Builder
				m.handle.OnData = func(cbArgs ...any) (any, error) {
					data := cbArgs[0].([]byte)
					body.Write(data)
					return len(data), nil
				}
				code, err := m.handle.Perform()
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("%s (%d)\nbody: %s", easy.StrError(code), code, body.String()), nil
			},
		},
		{
			name: "send",
			desc: "one non-blocking raw write",
			params: []paramInfo{
				{name: "data", typeStr: "string"},
			},
			call: func(m *interactiveModel, args []string) (string, error) {
				n, code, err := m.handle.Send([]byte(args[0]))
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("sent=%d code=%d", n, code), nil
			},
		},
		{
			name: "recv",
			desc: "one non-blocking raw read",
			call: func(m *interactiveModel, args []string) (string, error) {
				buf := make([]byte, 4096)
				n, code, err := m.handle.Recv(buf)
				if err != nil {
					return "", err
				}
				if code == curl.ErrAgain {
					return "would block (no data queued)", nil
				}
				return fmt.Sprintf("recv=%q code=%d", buf[:n], code), nil
			},
		},
		{
			name: "strerror",
			desc: "look up a status code message",
			params: []paramInfo{
				{name: "code", typeStr: "number"},
			},
			call: func(m *interactiveModel, args []string) (string, error) {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return "", err
				}
				return easy.StrError(curl.Code(n)), nil
			},
		},
	}
}

// parseValue keeps numbers numeric so integer options coerce cleanly.
func parseValue(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return s
}

type callResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	lb := engine.NewLoopback()
	h, err := easy.New(lb)
	if err != nil {
		m.err = err
		return nil
	}
	m.handle = h
	m.loopback = h.EngineHandle().(*engine.Handle)
	m.loopback.SetScript(engine.Script{
		Headers: []string{"HTTP/1.1 200 OK\r\n"},
		Body:    [][]byte{[]byte("hello from the loopback engine\n")},
	})
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateInputArgs && msg.String() == "q" {
				break
			}
			if m.handle != nil && m.handle.IsOpen() {
				_ = m.handle.Close()
			}
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectOp && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectOp && m.selected < len(m.ops)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectOp:
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.callOperation
				}
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.callOperation

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
	op := m.ops[m.selected]
	m.inputs = make([]textinput.Model, len(op.params))
	for i, p := range op.params {
		ti := textinput.New()
		ti.Placeholder = p.typeStr
		ti.Prompt = p.name + ": "
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) callOperation() tea.Msg {
	if m.handle == nil || !m.handle.IsOpen() {
		return callResultMsg{err: fmt.Errorf("handle is not open")}
	}

	op := m.ops[m.selected]
	args := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		args[i] = input.Value()
	}

	result, err := op.call(m, args)
	if err != nil {
		return callResultMsg{err: err}
	}
	return callResultMsg{result: result}
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Easy Handle Console"))
	b.WriteString(" loopback engine\n\n")

	switch m.state {
	case stateSelectOp:
		b.WriteString("Select an operation:\n\n")
		for i, op := range m.ops {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + m.formatOp(op)))
			} else {
				b.WriteString(cursor + m.formatOp(op))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter call • q quit"))

	case stateInputArgs:
		op := m.ops[m.selected]
		b.WriteString(fmt.Sprintf("Calling %s\n\n", opStyle.Render(op.name)))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(typeStyle.Render(op.params[i].typeStr))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter call • esc back"))

	case stateShowResult:
		op := m.ops[m.selected]
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

func (m *interactiveModel) formatOp(op opInfo) string {
	var params []string
	for _, p := range op.params {
		params = append(params, p.name+": "+typeStyle.Render(p.typeStr))
	}
	return opStyle.Render(op.name) + "(" + strings.Join(params, ", ") + ")  " +
		helpStyle.Render(op.desc)
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
