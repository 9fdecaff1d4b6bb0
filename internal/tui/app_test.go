package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/nmapcraft/internal/command"
	"github.com/user/nmapcraft/internal/flags"
	"github.com/user/nmapcraft/internal/model"
	"github.com/user/nmapcraft/internal/util"
)

func testEditor() editor {
	return newModel(util.DefaultConfig(), model.New())
}

func press(t *testing.T, m editor, msgs ...tea.KeyMsg) editor {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(editor)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	right = tea.KeyMsg{Type: tea.KeyRight}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
)

func TestNewAppCopiesScan(t *testing.T) {
	scan := model.New()
	app := NewApp(util.DefaultConfig(), scan)

	m := newModel(app.config, app.scan)
	m.cursor = flags.FieldFastMode
	m = press(t, m, space)

	assert.True(t, m.scan.Ports.FastMode)
	assert.False(t, scan.Ports.FastMode)

	assert.NotNil(t, NewApp(util.DefaultConfig(), nil).scan)
}

func TestNavigationWraps(t *testing.T) {
	m := testEditor()
	require.Equal(t, flags.First(), m.cursor)

	m = press(t, m, up)
	assert.Equal(t, flags.Enumerate()[len(flags.Enumerate())-1], m.cursor)

	m = press(t, m, down, down)
	assert.Equal(t, flags.Next(flags.First()), m.cursor)

	m = press(t, m, runes("]"))
	assert.Equal(t, flags.FieldListScan, m.cursor)

	m = press(t, m, runes("["), runes("["))
	assert.Equal(t, flags.InSection(flags.SectionMisc)[0], m.cursor)
}

func TestToggleBool(t *testing.T) {
	m := testEditor()
	m.cursor = flags.FieldFastMode

	m = press(t, m, space)
	assert.True(t, m.scan.Ports.FastMode)
	assert.Equal(t, "nmap -sS -F", m.Preview())

	m = press(t, m, enter)
	assert.False(t, m.scan.Ports.FastMode)
	assert.Equal(t, modeBrowse, m.mode)
}

func TestCycleChoice(t *testing.T) {
	m := testEditor()
	m.cursor = flags.FieldTimingTemplate

	m = press(t, m, right)
	require.NotNil(t, m.scan.Timing.Template)
	assert.Equal(t, model.Paranoid, *m.scan.Timing.Template)

	m = press(t, m, left)
	assert.Equal(t, model.Insane, *m.scan.Timing.Template)

	m = press(t, m, runes("x"))
	assert.Nil(t, m.scan.Timing.Template)

	m.cursor = flags.FieldTechnique
	m = press(t, m, right)
	assert.Equal(t, model.Technique(model.TechConnect), m.scan.Technique)
}

func TestEditField(t *testing.T) {
	m := testEditor()
	m.cursor = flags.FieldPorts

	m = press(t, m, enter)
	require.Equal(t, modeEdit, m.mode)
	assert.True(t, m.input.Focused())

	m = press(t, m, runes("22,80"), enter)
	assert.Equal(t, modeBrowse, m.mode)
	require.NotNil(t, m.scan.Ports.Ports)
	assert.Equal(t, "22,80", *m.scan.Ports.Ports)
	assert.Equal(t, "Ports updated", m.status)
	assert.Contains(t, m.View(), "-p 22,80")
}

func TestEditInvalidValue(t *testing.T) {
	m := testEditor()
	m.cursor = flags.FieldVersionIntensity

	m = press(t, m, enter, runes("12"), enter)
	assert.Equal(t, modeEdit, m.mode)
	require.Error(t, m.err)
	assert.Contains(t, m.err.Error(), "Version intensity")
	assert.Nil(t, m.scan.Service.Intensity)

	m = press(t, m, esc)
	assert.Equal(t, modeBrowse, m.mode)
	assert.NoError(t, m.err)
}

func TestImport(t *testing.T) {
	m := testEditor()

	m = press(t, m, runes("i"), runes("nmap -sU -p 53 10.0.0.1"), enter)
	assert.Equal(t, modeBrowse, m.mode)
	assert.NoError(t, m.err)
	assert.Equal(t, "Command imported", m.status)

	want, err := command.Parse("nmap -sU -p 53 10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, command.Build(want), m.Preview())
}

func TestImportFailureKeepsScan(t *testing.T) {
	m := testEditor()
	m.cursor = flags.FieldFastMode
	m = press(t, m, space)
	before := m.Preview()

	m = press(t, m, runes("i"), runes("nmap --bogus"), enter)
	require.Error(t, m.err)
	assert.ErrorIs(t, m.err, command.ErrInvalidFlag)
	assert.Equal(t, before, m.Preview())
	assert.Contains(t, m.View(), "import failed")
}

func TestLoadPresets(t *testing.T) {
	cfg := util.DefaultConfig()
	cfg.Presets = map[string]string{
		"a-first":  "nmap -F",
		"b-second": "nmap -sn",
	}
	m := newModel(cfg, model.New())

	m = press(t, m, runes("p"))
	assert.Equal(t, "Loaded preset a-first", m.status)
	assert.True(t, m.scan.Ports.FastMode)

	m = press(t, m, runes("p"))
	assert.Equal(t, "Loaded preset b-second", m.status)
	assert.False(t, m.scan.Ports.FastMode)
	assert.True(t, m.scan.HostDiscovery.PingScan)

	m = press(t, m, runes("p"))
	assert.Equal(t, "Loaded preset a-first", m.status)
}

func TestBadPresetKeepsScan(t *testing.T) {
	cfg := util.DefaultConfig()
	cfg.Presets = map[string]string{"broken": "nmap -T9"}
	m := newModel(cfg, model.New())

	m = press(t, m, runes("p"))
	require.Error(t, m.err)
	assert.Contains(t, m.err.Error(), "preset broken")
	assert.Equal(t, "nmap -sS", m.Preview())
}

func TestPathCompletion(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"hosts-a.txt", "hosts-b.txt", ".hidden", "single.lst"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nets"), 0755))

	base := dir + string(filepath.Separator)

	got, matches, err := completePath(base+"ho", 100, false)
	require.NoError(t, err)
	assert.Equal(t, base+"hosts-", got)
	assert.Equal(t, []string{"hosts-a.txt", "hosts-b.txt"}, matches)

	got, _, err = completePath(base+"si", 100, false)
	require.NoError(t, err)
	assert.Equal(t, base+"single.lst", got)

	got, _, err = completePath(base+"ne", 100, false)
	require.NoError(t, err)
	assert.Equal(t, base+"nets"+string(filepath.Separator), got)

	_, matches, err = completePath(base, 100, false)
	require.NoError(t, err)
	assert.NotContains(t, matches, ".hidden")

	_, matches, err = completePath(base, 100, true)
	require.NoError(t, err)
	assert.Contains(t, matches, ".hidden")

	got, matches, err = completePath(base+"zz", 100, false)
	require.NoError(t, err)
	assert.Equal(t, base+"zz", got)
	assert.Empty(t, matches)

	_, _, err = completePath(filepath.Join(dir, "missing", "x"), 100, false)
	assert.Error(t, err)
}

func TestTabCompletesPathField(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "targets.txt"), nil, 0644))

	m := testEditor()
	m.cursor = flags.FieldInputFile
	m = press(t, m, enter, runes(filepath.Join(dir, "tar")), tab)
	assert.Equal(t, filepath.Join(dir, "targets.txt"), m.input.Value())

	m = press(t, m, enter)
	require.NotNil(t, m.scan.Target.InputFile)
	assert.Equal(t, filepath.Join(dir, "targets.txt"), *m.scan.Target.InputFile)
}

func TestViewShowsSection(t *testing.T) {
	m := testEditor()
	m.cursor = flags.FieldTechnique

	out := m.View()
	assert.Contains(t, out, "nmapcraft")
	assert.Contains(t, out, "nmap -sS")
	assert.Contains(t, out, "Scan Technique (3/11)")
	assert.Contains(t, out, "Technique argument")
}

func TestWindow(t *testing.T) {
	ids := flags.InSection(flags.SectionOutput)
	start, end := window(ids, ids[0], 5)
	assert.Equal(t, 0, start)
	assert.Equal(t, 5, end)

	last := ids[len(ids)-1]
	start, end = window(ids, last, 5)
	assert.Equal(t, len(ids), end)
	assert.Equal(t, len(ids)-5, start)

	start, end = window(ids, ids[0], 100)
	assert.Equal(t, 0, start)
	assert.Equal(t, len(ids), end)
}
