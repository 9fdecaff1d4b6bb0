// Package tui provides the interactive scan editor.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/user/nmapcraft/internal/command"
	"github.com/user/nmapcraft/internal/flags"
	"github.com/user/nmapcraft/internal/model"
	"github.com/user/nmapcraft/internal/util"
)

// App is the main TUI application.
type App struct {
	config *util.Config
	scan   *model.Scan
}

// NewApp creates a new TUI application editing a copy of scan. A nil scan
// starts from the defaults.
func NewApp(cfg *util.Config, scan *model.Scan) *App {
	if scan == nil {
		scan = model.New()
	}
	return &App{
		config: cfg,
		scan:   scan.Clone(),
	}
}

// Run starts the TUI and returns the scan as it was when the user quit.
func (a *App) Run() (*model.Scan, error) {
	p := tea.NewProgram(newModel(a.config, a.scan), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	return final.(editor).scan, nil
}

type mode int

const (
	modeBrowse mode = iota
	modeEdit
	modeImport
)

// editor is the bubbletea model.
type editor struct {
	config *util.Config
	scan   *model.Scan
	cursor flags.FieldID

	mode      mode
	input     textinput.Model
	keys      keyMap
	help      help.Model
	presetIdx int

	status string
	err    error
	width  int
	height int
}

func newModel(cfg *util.Config, scan *model.Scan) editor {
	ti := textinput.New()
	ti.CharLimit = 4096
	ti.Prompt = "› "

	h := help.New()
	h.ShowAll = cfg.TUI.ShowHelp

	return editor{
		config: cfg,
		scan:   scan,
		cursor: flags.First(),
		input:  ti,
		keys:   defaultKeyMap(),
		help:   h,
		width:  80,
		height: 24,
	}
}

// Init initializes the model.
func (m editor) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 6
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c"))) {
			return m, tea.Quit
		}
		switch m.mode {
		case modeEdit:
			return m.updateEdit(msg)
		case modeImport:
			return m.updateImport(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m editor) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status, m.err = "", nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.cursor = flags.Next(m.cursor)

	case key.Matches(msg, m.keys.Prev):
		m.cursor = flags.Prev(m.cursor)

	case key.Matches(msg, m.keys.NextSection):
		m.cursor = m.jumpSection(1)

	case key.Matches(msg, m.keys.PrevSection):
		m.cursor = m.jumpSection(-1)

	case key.Matches(msg, m.keys.Toggle):
		if f, ok := m.accessor().(*flags.BoolField); ok {
			f.Toggle()
		}

	case key.Matches(msg, m.keys.ChoiceNext):
		m.cycleChoice(1)

	case key.Matches(msg, m.keys.ChoicePrev):
		m.cycleChoice(-1)

	case key.Matches(msg, m.keys.Edit):
		acc := m.accessor()
		if b, ok := acc.(*flags.BoolField); ok {
			b.Toggle()
			break
		}
		m.mode = modeEdit
		m.input.Placeholder = flags.Lookup(m.cursor).Help
		m.input.SetValue(flags.Format(acc))
		m.input.CursorEnd()
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Clear):
		clearField(m.accessor())

	case key.Matches(msg, m.keys.Import):
		m.mode = modeImport
		m.input.Placeholder = "nmap -sS -p 80,443 192.168.1.1"
		m.input.SetValue("")
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Preset):
		m.loadNextPreset()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m editor) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.leaveInput()
		return m, nil

	case key.Matches(msg, m.keys.Accept):
		f := flags.Lookup(m.cursor)
		if err := flags.Assign(m.accessor(), m.input.Value()); err != nil {
			m.err = fmt.Errorf("%s: %w", f.Label, err)
			return m, nil
		}
		util.Debug("set %s = %q", f.Name, m.input.Value())
		m.leaveInput()
		m.status = f.Label + " updated"
		return m, nil

	case key.Matches(msg, m.keys.Complete):
		if flags.Lookup(m.cursor).Kind == flags.KindOptionalPath {
			m.complete()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m editor) updateImport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.leaveInput()
		return m, nil

	case key.Matches(msg, m.keys.Accept):
		line := m.input.Value()
		m.leaveInput()
		scan, err := command.ParseProgram(m.config.Program, line)
		if err != nil {
			util.Warn("import failed: %v", err)
			m.err = fmt.Errorf("import failed: %w", err)
			return m, nil
		}
		m.scan = scan
		m.status = "Command imported"
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *editor) leaveInput() {
	m.mode = modeBrowse
	m.input.Blur()
	m.input.SetValue("")
	m.err = nil
}

func (m editor) accessor() flags.Accessor {
	return flags.Resolve(m.scan, m.cursor)
}

// jumpSection moves to the first field of the next or previous section.
func (m editor) jumpSection(dir int) flags.FieldID {
	sections := flags.Sections()
	cur := int(flags.Lookup(m.cursor).Section)
	next := sections[(cur+dir+len(sections))%len(sections)]
	return flags.InSection(next)[0]
}

func (m editor) cycleChoice(dir int) {
	f, ok := m.accessor().(*flags.ChoiceField)
	if !ok {
		return
	}
	n := f.Len()
	i, set := f.Get()
	switch {
	case !set && dir > 0:
		i = 0
	case !set:
		i = n - 1
	default:
		i = (i + dir + n) % n
	}
	_ = f.Set(i)
}

func (m *editor) loadNextPreset() {
	names := m.config.PresetNames()
	if len(names) == 0 {
		m.err = fmt.Errorf("no presets configured")
		return
	}
	name := names[m.presetIdx%len(names)]
	m.presetIdx++

	line, _ := m.config.Preset(name)
	scan, err := command.ParseProgram(m.config.Program, line)
	if err != nil {
		m.err = fmt.Errorf("preset %s: %w", name, err)
		return
	}
	m.scan = scan
	m.status = "Loaded preset " + name
}

func (m *editor) complete() {
	value, matches, err := completePath(m.input.Value(), m.config.Completion.MaxEntries, m.config.Completion.ShowHidden)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.input.SetValue(value)
	m.input.CursorEnd()
	switch len(matches) {
	case 0:
		m.status = "No matches"
	case 1:
		m.status = ""
	default:
		m.status = fmt.Sprintf("%d matches", len(matches))
	}
}

func clearField(acc flags.Accessor) {
	switch f := acc.(type) {
	case *flags.BoolField:
		f.Set(false)
	case *flags.IntField:
		f.Clear()
	case *flags.FloatField:
		f.Clear()
	case *flags.StringField:
		f.Clear()
	case *flags.PathField:
		f.Clear()
	case *flags.StringListField:
		f.Clear()
	case *flags.IntListField:
		f.Clear()
	case *flags.ChoiceField:
		f.Clear()
	}
}
