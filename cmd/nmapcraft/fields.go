package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/user/nmapcraft/internal/command"
	"github.com/user/nmapcraft/internal/flags"
	"github.com/user/nmapcraft/internal/tui"
)

var (
	fieldsSection string
	fieldsFlags   bool
)

func newFieldsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the editable fields",
		Long: `List every field build --set and the editor understand, grouped by section.

--section takes a section number (1-11) or a case-insensitive prefix of its name.`,
		Example: `  nmapcraft fields
  nmapcraft fields --section timing`,
		Args: cobra.NoArgs,
		RunE: runFields,
	}

	cmd.Flags().StringVarP(&fieldsSection, "section", "s", "", "Only list this section")
	cmd.Flags().BoolVar(&fieldsFlags, "flags", false, "List every nmap flag spelling the parser accepts")

	return cmd
}

func runFields(cmd *cobra.Command, args []string) error {
	if fieldsFlags {
		for _, f := range command.Flags() {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		return nil
	}

	sections := flags.Sections()
	if fieldsSection != "" {
		sec, err := findSection(fieldsSection)
		if err != nil {
			return err
		}
		sections = []flags.Section{sec}
	}

	nameStyle := lipgloss.NewStyle().Width(22)
	kindStyle := tui.DimStyle.Copy().Width(16)

	out := cmd.OutOrStdout()
	for i, sec := range sections {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, tui.SectionTitleStyle.Render(sec.String()))
		for _, id := range flags.InSection(sec) {
			f := flags.Lookup(id)
			flag := f.Flag
			if flag == "" {
				flag = "(positional)"
			}
			help := f.Help
			if len(f.Choices) > 0 {
				help += " [" + strings.Join(f.Choices, ", ") + "]"
			}
			fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top,
				"  ",
				nameStyle.Render(f.Name),
				tui.FlagStyle.Render(flag),
				kindStyle.Render(f.Kind.String()),
				help,
			))
		}
	}
	return nil
}

func findSection(s string) (flags.Section, error) {
	sections := flags.Sections()
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > len(sections) {
			return 0, fmt.Errorf("section %d out of range 1-%d", n, len(sections))
		}
		return sections[n-1], nil
	}
	for _, sec := range sections {
		if strings.HasPrefix(strings.ToLower(sec.String()), strings.ToLower(s)) {
			return sec, nil
		}
	}
	return 0, fmt.Errorf("unknown section %q", s)
}
