package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next        key.Binding
	Prev        key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	Toggle      key.Binding
	ChoiceNext  key.Binding
	ChoicePrev  key.Binding
	Edit        key.Binding
	Clear       key.Binding
	Import      key.Binding
	Preset      key.Binding
	Help        key.Binding
	Quit        key.Binding

	Accept   key.Binding
	Cancel   key.Binding
	Complete key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next")),
		Prev:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "prev")),
		NextSection: key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next section")),
		PrevSection: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev section")),
		Toggle:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		ChoiceNext:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next choice")),
		ChoicePrev:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev choice")),
		Edit:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Clear:       key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "clear")),
		Import:      key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import")),
		Preset:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preset")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Accept:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Complete: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete path")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Toggle, k.Edit, k.Import, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.NextSection, k.PrevSection},
		{k.Toggle, k.ChoiceNext, k.ChoicePrev, k.Edit, k.Clear},
		{k.Import, k.Preset, k.Help, k.Quit},
	}
}

// editKeys is the help shown while the text input is active.
type editKeys struct {
	keyMap
	path bool
}

func (k editKeys) ShortHelp() []key.Binding {
	if k.path {
		return []key.Binding{k.Accept, k.Cancel, k.Complete}
	}
	return []key.Binding{k.Accept, k.Cancel}
}

func (k editKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
