package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/user/nmapcraft/internal/command"
	"github.com/user/nmapcraft/internal/model"
	"github.com/user/nmapcraft/internal/report"
	"github.com/user/nmapcraft/internal/tui"
)

var parseFormat string

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse COMMAND",
		Short: "Parse a command and print its settings",
		Long: `Parse an nmap command line and print the resulting scan settings.

Formats:
  text   set options grouped by section (default)
  json   the full scan as JSON
  yaml   the full scan as YAML
  args   the rebuilt command, one argument per line
  shell  the rebuilt command quoted for a POSIX shell`,
		Example: `  nmapcraft parse "nmap -sS -p 80,443 192.168.1.1"
  nmapcraft parse --format json -- nmap -sU -T4 10.0.0.0/24`,
		Args: cobra.MinimumNArgs(1),
		RunE: runParse,
	}

	cmd.Flags().StringVarP(&parseFormat, "format", "f", "text",
		"Output format (text, json, yaml, args, shell)")

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	scan, err := parseInput(args)
	if err != nil {
		return err
	}
	return writeScan(cmd.OutOrStdout(), scan, parseFormat)
}

func writeScan(w io.Writer, scan *model.Scan, format string) error {
	switch format {
	case "text":
		fmt.Fprint(w, formatText(scan))
		return nil

	case "json":
		data, err := json.MarshalIndent(scan, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(scan); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()

	case "args":
		for _, arg := range append([]string{cfg.Program}, command.BuildArgs(scan)...) {
			fmt.Fprintln(w, arg)
		}
		return nil

	case "shell":
		fmt.Fprintln(w, shellquote.Join(append([]string{cfg.Program}, command.BuildArgs(scan)...)...))
		return nil
	}

	return fmt.Errorf("unknown format %q (want text, json, yaml, args or shell)", format)
}

// formatText renders the set options of scan for the terminal.
func formatText(scan *model.Scan) string {
	var sb strings.Builder
	d := report.Describe(scan)

	sb.WriteString(tui.PreviewStyle.Render(command.BuildFor(cfg.Program, scan)))
	sb.WriteString("\n")

	if len(scan.Target.Targets) == 0 && scan.Target.InputFile == nil && scan.Target.RandomTargets == nil {
		sb.WriteString(tui.WarningStyle.Render("No targets given"))
		sb.WriteString("\n")
	}

	if d.SetCount == 0 {
		sb.WriteString(tui.DimStyle.Render("All options are at their defaults."))
		sb.WriteString("\n")
		return sb.String()
	}

	for _, sec := range d.Sections {
		sb.WriteString("\n")
		sb.WriteString(tui.SectionTitleStyle.Render(sec.Name))
		sb.WriteString("\n")
		for _, e := range sec.Entries {
			flag := e.Flag
			if flag == "" {
				flag = "(positional)"
			}
			sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
				"  ",
				tui.LabelStyle.Render(e.Label),
				tui.FlagStyle.Render(flag),
				tui.ValueStyle.Render(e.Value),
			))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
