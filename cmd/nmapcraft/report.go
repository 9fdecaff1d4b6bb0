package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user/nmapcraft/internal/command"
	"github.com/user/nmapcraft/internal/report"
)

var (
	describeOutput string
	describeSave   bool
)

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe COMMAND",
		Short: "Describe a command as markdown",
		Long: `Describe every non-default option of an nmap command as a markdown report.

Examples:
  nmapcraft describe "nmap -A -T4 scanme.nmap.org"
  nmapcraft describe --save "nmap -sn 10.0.0.0/24"
  nmapcraft describe --output ./reports -- nmap -sU -p 53 10.0.0.1`,
		Args: cobra.MinimumNArgs(1),
		RunE: runDescribe,
	}

	cmd.Flags().StringVarP(&describeOutput, "output", "o", "",
		"Write the report into this directory")
	cmd.Flags().BoolVar(&describeSave, "save", false,
		"Write the report into the configured report directory")

	return cmd
}

func runDescribe(cmd *cobra.Command, args []string) error {
	scan, err := parseInput(args)
	if err != nil {
		return err
	}

	d := report.Describe(scan)
	d.Command = command.BuildFor(cfg.Program, scan)

	dir := describeOutput
	if dir == "" && describeSave {
		dir = cfg.ReportOutputDir
	}
	if dir == "" {
		fmt.Fprint(cmd.OutOrStdout(), report.FormatMarkdown(d))
		return nil
	}

	path, err := report.WriteMarkdownFile(d, dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report saved to: %s\n", path)
	fmt.Fprintf(cmd.OutOrStdout(), "  Options set: %d in %d sections\n", d.SetCount, len(d.Sections))
	return nil
}

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "diff COMMAND_A COMMAND_B",
		Short:   "Show the option differences between two commands",
		Example: `  nmapcraft diff "nmap -sS -T4 10.0.0.1" "nmap -sU -T4 -p 53 10.0.0.1"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseInput(args[:1])
			if err != nil {
				return err
			}
			b, err := parseInput(args[1:])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.FormatDiff(report.Diff(a, b)))
			return nil
		},
	}
}
