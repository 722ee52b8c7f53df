package cli

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/ifcgraph/pkg/ifc"
)

// Prompt texts.
const (
	filePrompt = "Select an IFC file"
	tagPrompt  = "Enter the starting tag number (e.g., 24)"
	savePrompt = "Save graph as"
)

// prompter asks the user for the inputs of one interactive session.
// Each method reports ok=false when the user cancelled.
type prompter interface {
	PickFile(ctx context.Context, dir string) (path string, ok bool, err error)
	AskTag(ctx context.Context) (tag string, ok bool, err error)
	AskSavePath(ctx context.Context, suggested string) (path string, ok bool, err error)
}

// teaPrompter runs each prompt as its own bubbletea program on one terminal.
type teaPrompter struct {
	in  io.Reader
	out io.Writer
}

func newTeaPrompter(in io.Reader, out io.Writer) prompter {
	return &teaPrompter{in: in, out: out}
}

func (p *teaPrompter) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	prog := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	return prog.Run()
}

func (p *teaPrompter) PickFile(ctx context.Context, dir string) (string, bool, error) {
	final, err := p.run(ctx, newFilePickerModel(dir))
	if err != nil {
		return "", false, err
	}
	m := final.(filePickerModel)
	return m.path, m.chosen, nil
}

func (p *teaPrompter) AskTag(ctx context.Context) (string, bool, error) {
	return p.ask(ctx, newTextPromptModel(tagPrompt, "24", ""))
}

func (p *teaPrompter) AskSavePath(ctx context.Context, suggested string) (string, bool, error) {
	return p.ask(ctx, newTextPromptModel(savePrompt, "", suggested))
}

func (p *teaPrompter) ask(ctx context.Context, m textPromptModel) (string, bool, error) {
	final, err := p.run(ctx, m)
	if err != nil {
		return "", false, err
	}
	tm := final.(textPromptModel)
	return tm.value, tm.submitted, nil
}

// =============================================================================
// File picker
// =============================================================================

// filePickerModel wraps the bubbles file picker. Files that are not .ifc are
// shown but still selectable, so the caller can report the bad choice.
type filePickerModel struct {
	picker filepicker.Model
	path   string
	chosen bool
}

func newFilePickerModel(dir string) filePickerModel {
	fp := filepicker.New()
	fp.AllowedTypes = []string{ifc.Extension}
	fp.CurrentDirectory = dir
	fp.ShowPermissions = false
	fp.Height = 12
	return filePickerModel{picker: fp}
}

func (m filePickerModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m filePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, promptKeys.Quit) {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.path, m.chosen = path, true
		return m, tea.Quit
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.path, m.chosen = path, true
		return m, tea.Quit
	}
	return m, cmd
}

func (m filePickerModel) View() string {
	if m.chosen {
		return ""
	}
	var b strings.Builder
	b.WriteString(StyleTitle.Render(filePrompt))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(m.picker.CurrentDirectory))
	b.WriteString("\n\n")
	b.WriteString(m.picker.View())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  ⏎ select  ← back  q quit"))
	return b.String()
}

// =============================================================================
// Text prompt
// =============================================================================

type promptKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

var promptKeys = promptKeyMap{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("⏎", "submit")),
	Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// textPromptModel asks for a single line of text.
type textPromptModel struct {
	title     string
	input     textinput.Model
	value     string
	submitted bool
	done      bool
}

func newTextPromptModel(title, placeholder, value string) textPromptModel {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 4096
	in.Width = 60
	in.SetValue(value)
	in.CursorEnd()
	in.Focus()
	return textPromptModel{title: title, input: in}
}

func (m textPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, promptKeys.Submit):
			m.value = strings.TrimSpace(m.input.Value())
			m.submitted, m.done = true, true
			return m, tea.Quit
		case key.Matches(msg, promptKeys.Cancel):
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textPromptModel) View() string {
	if m.done {
		return ""
	}
	return StyleTitle.Render(m.title) + "\n\n" +
		m.input.View() + "\n\n" +
		StyleDim.Render("⏎ submit  esc cancel")
}
