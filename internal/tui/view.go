package tui

import (
	"fmt"
	"strings"

	"github.com/user/nmapcraft/internal/command"
	"github.com/user/nmapcraft/internal/flags"
)

// View renders the UI.
func (m editor) View() string {
	var sb strings.Builder

	// Header
	sb.WriteString(HeaderStyle.Render("nmapcraft"))
	sb.WriteString("\n\n")

	// Live preview
	sb.WriteString(m.renderPreview())
	sb.WriteString("\n")

	// Fields of the current section
	sb.WriteString(m.renderSection())
	sb.WriteString("\n")

	// Input line
	switch m.mode {
	case modeEdit:
		sb.WriteString(SelectedStyle.Render("Edit "+flags.Lookup(m.cursor).Label) + "\n")
		sb.WriteString(m.input.View() + "\n")
	case modeImport:
		sb.WriteString(SelectedStyle.Render("Import command") + "\n")
		sb.WriteString(m.input.View() + "\n")
	}

	// Status
	if m.err != nil {
		sb.WriteString(RenderStatus(false, "", m.err.Error()) + "\n")
	} else if m.status != "" {
		sb.WriteString(RenderStatus(true, m.status, "") + "\n")
	}

	// Help
	if m.mode == modeBrowse {
		sb.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	} else {
		path := m.mode == modeEdit && flags.Lookup(m.cursor).Kind == flags.KindOptionalPath
		sb.WriteString(HelpStyle.Render(m.help.View(editKeys{keyMap: m.keys, path: path})))
	}

	return sb.String()
}

// Preview returns the command line for the scan being edited.
func (m editor) Preview() string {
	return command.BuildFor(m.config.Program, m.scan)
}

func (m editor) renderPreview() string {
	width := m.width - 4
	if width < 40 {
		width = 40
	}
	return PreviewStyle.Width(width).Render(m.Preview())
}

func (m editor) renderSection() string {
	width := m.width - 4
	if width < 40 {
		width = 40
	}

	cur := flags.Lookup(m.cursor)
	sections := flags.Sections()
	title := fmt.Sprintf("%s (%d/%d)", cur.Section, int(cur.Section)+1, len(sections))

	ids := flags.InSection(cur.Section)
	start, end := window(ids, m.cursor, m.listHeight())

	var rows []string
	if start > 0 {
		rows = append(rows, DimStyle.Render(fmt.Sprintf("  ↑ %d more", start)))
	}
	for _, id := range ids[start:end] {
		rows = append(rows, m.renderRow(id))
	}
	if end < len(ids) {
		rows = append(rows, DimStyle.Render(fmt.Sprintf("  ↓ %d more", len(ids)-end)))
	}

	return SectionStyle.Width(width).Render(
		SectionTitleStyle.Render(title) + "\n" + strings.Join(rows, "\n"))
}

func (m editor) renderRow(id flags.FieldID) string {
	f := flags.Lookup(id)
	acc := flags.Resolve(m.scan, id)

	marker := "  "
	label := LabelStyle.Render(f.Label)
	if id == m.cursor {
		marker = SelectedStyle.Render("> ")
		label = SelectedStyle.Inherit(LabelStyle).Render(f.Label)
	}

	flag := f.Flag
	if flag == "" {
		flag = "(positional)"
	}

	return marker + label + FlagStyle.Render(flag) + renderValue(acc)
}

func renderValue(acc flags.Accessor) string {
	switch f := acc.(type) {
	case *flags.BoolField:
		if f.Get() {
			return ValueStyle.Render("[x]")
		}
		return DimStyle.Render("[ ]")
	case *flags.ChoiceField:
		if !flags.IsSet(f) {
			if v := flags.Format(f); v != "" {
				return DimStyle.Render("‹ " + v + " ›")
			}
			return DimStyle.Render("‹ unset ›")
		}
		return ValueStyle.Render("‹ " + flags.Format(f) + " ›")
	}
	if !flags.IsSet(acc) {
		return DimStyle.Render("unset")
	}
	v := flags.Format(acc)
	if v == "" {
		v = `""`
	}
	return ValueStyle.Render(v)
}

// listHeight is the number of field rows that fit on screen.
func (m editor) listHeight() int {
	h := m.height - 16
	if h < 5 {
		h = 5
	}
	return h
}

// window returns the slice bounds of at most size ids that keep cursor visible.
func window(ids []flags.FieldID, cursor flags.FieldID, size int) (int, int) {
	if len(ids) <= size {
		return 0, len(ids)
	}
	pos := 0
	for i, id := range ids {
		if id == cursor {
			pos = i
			break
		}
	}
	start := pos - size/2
	if start < 0 {
		start = 0
	}
	end := start + size
	if end > len(ids) {
		end = len(ids)
		start = end - size
	}
	return start, end
}
