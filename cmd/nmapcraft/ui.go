package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/user/nmapcraft/internal/command"
	"github.com/user/nmapcraft/internal/model"
	"github.com/user/nmapcraft/internal/tui"
)

func newUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui [command]",
		Short: "Edit a scan interactively",
		Long: `Launch the interactive editor, optionally starting from an existing command.

The editor shows every option grouped by section with a live command preview.

Keys:
  j/k       move between options, [ and ] jump between sections
  space     toggle, left/right cycle choices
  enter     edit the value, x clears it
  i         import a command, p loads the next preset
  q         quit and print the final command`,
		Example: `  nmapcraft ui
  nmapcraft ui "nmap -sS -p 80,443 10.0.0.1"`,
		Args: cobra.ArbitraryArgs,
		RunE: runUI,
	}
}

func runUI(cmd *cobra.Command, args []string) error {
	scan := model.New()
	if len(args) > 0 {
		var err error
		if scan, err = parseInput(args); err != nil {
			return err
		}
	}

	if !interactive() {
		// Nothing to draw on; show what the editor would start with.
		fmt.Fprintln(cmd.OutOrStdout(), command.BuildFor(cfg.Program, scan))
		return nil
	}

	app := tui.NewApp(cfg, scan)
	final, err := app.Run()
	if err != nil {
		return fmt.Errorf("failed to run editor: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), command.BuildFor(cfg.Program, final))
	return nil
}

// interactive reports whether the editor has a terminal to draw on.
var interactive = func() bool {
	return isTerminal(os.Stdout) && isTerminal(os.Stdin)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
