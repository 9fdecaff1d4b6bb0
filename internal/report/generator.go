// Package report describes scans and the differences between them.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/user/nmapcraft/internal/command"
	"github.com/user/nmapcraft/internal/flags"
	"github.com/user/nmapcraft/internal/model"
)

// Description holds everything a scan report shows.
type Description struct {
	GeneratedAt time.Time
	Command     string
	Sections    []SectionReport
	SetCount    int
}

// SectionReport lists the set fields of one section.
type SectionReport struct {
	Name    string
	Entries []Entry
}

// Entry is one set field.
type Entry struct {
	Name  string
	Label string
	Flag  string
	Value string
}

// ChangeKind classifies a FieldChange.
type ChangeKind string

const (
	Added   ChangeKind = "added"
	Removed ChangeKind = "removed"
	Changed ChangeKind = "changed"
)

// FieldChange is one field that differs between two scans.
type FieldChange struct {
	Name    string
	Label   string
	Section string
	Kind    ChangeKind
	Old     string
	New     string
}

// Describe builds a description of s. Only fields that differ from their
// default are listed; sections with none are omitted.
func Describe(s *model.Scan) *Description {
	d := &Description{
		GeneratedAt: time.Now(),
		Command:     command.Build(s),
	}

	for _, sec := range flags.Sections() {
		var entries []Entry
		for _, id := range flags.InSection(sec) {
			acc := flags.Resolve(s, id)
			if !flags.IsSet(acc) {
				continue
			}
			f := flags.Lookup(id)
			entries = append(entries, Entry{
				Name:  f.Name,
				Label: f.Label,
				Flag:  f.Flag,
				Value: flags.Format(acc),
			})
		}
		if len(entries) == 0 {
			continue
		}
		d.Sections = append(d.Sections, SectionReport{Name: sec.String(), Entries: entries})
		d.SetCount += len(entries)
	}

	return d
}

// Diff lists the fields that differ between a and b in display order.
func Diff(a, b *model.Scan) []FieldChange {
	var changes []FieldChange

	for _, id := range flags.Enumerate() {
		oldAcc := flags.Resolve(a, id)
		newAcc := flags.Resolve(b, id)
		oldSet, newSet := flags.IsSet(oldAcc), flags.IsSet(newAcc)
		oldVal, newVal := flags.Format(oldAcc), flags.Format(newAcc)

		var kind ChangeKind
		switch {
		case !oldSet && !newSet:
			continue
		case !oldSet:
			kind = Added
		case !newSet:
			kind = Removed
		case oldVal != newVal:
			kind = Changed
		default:
			continue
		}

		f := flags.Lookup(id)
		changes = append(changes, FieldChange{
			Name:    f.Name,
			Label:   f.Label,
			Section: f.Section.String(),
			Kind:    kind,
			Old:     oldVal,
			New:     newVal,
		})
	}

	return changes
}

// FormatMarkdown renders a description as markdown.
func FormatMarkdown(d *Description) string {
	var sb strings.Builder

	sb.WriteString("# Scan Description\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", d.GeneratedAt.Format("2006-01-02 15:04:05")))
	sb.WriteString("```\n")
	sb.WriteString(d.Command)
	sb.WriteString("\n```\n\n")

	if d.SetCount == 0 {
		sb.WriteString("All options are at their defaults.\n")
		return sb.String()
	}

	for _, sec := range d.Sections {
		sb.WriteString(fmt.Sprintf("## %s\n\n", sec.Name))
		sb.WriteString("| Option | Flag | Value |\n")
		sb.WriteString("|--------|------|-------|\n")
		for _, e := range sec.Entries {
			sb.WriteString(fmt.Sprintf("| %s | `%s` | %s |\n", e.Label, flagText(e.Flag), cell(e.Value)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatDiff renders changes as markdown.
func FormatDiff(changes []FieldChange) string {
	if len(changes) == 0 {
		return "No differences.\n"
	}

	var sb strings.Builder
	sb.WriteString("| Section | Option | Change | Before | After |\n")
	sb.WriteString("|---------|--------|--------|--------|-------|\n")
	for _, c := range changes {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			c.Section, c.Label, c.Kind, cell(c.Old), cell(c.New)))
	}
	return sb.String()
}

// WriteMarkdownFile writes a description into dir and returns the file path.
func WriteMarkdownFile(d *Description, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	name := fmt.Sprintf("scan-%s.md", d.GeneratedAt.Format("20060102-150405"))
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(FormatMarkdown(d)), 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return path, nil
}

func flagText(flag string) string {
	if flag == "" {
		return "(positional)"
	}
	return flag
}

// cell escapes a value for a markdown table cell.
func cell(v string) string {
	if v == "" {
		return "-"
	}
	return strings.ReplaceAll(v, "|", `\|`)
}
