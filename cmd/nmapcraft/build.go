package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/user/nmapcraft/internal/command"
	"github.com/user/nmapcraft/internal/flags"
	"github.com/user/nmapcraft/internal/model"
	"github.com/user/nmapcraft/internal/util"
)

var (
	buildFrom   string
	buildPreset string
	buildSet    []string
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a command from field assignments",
		Long: `Build an nmap command line.

Start from the defaults, an existing command (--from) or a configured preset
(--preset), then apply --set assignments in order. Field names are the ones
listed by "nmapcraft fields".`,
		Example: `  nmapcraft build --set ports=22,80 --set service-detection=true --set targets=10.0.0.1
  nmapcraft build --preset quick --set timing=T3
  nmapcraft build --from "nmap -sU 10.0.0.1" --set technique-arg=`,
		Args: cobra.NoArgs,
		RunE: runBuild,
	}

	cmd.Flags().StringVar(&buildFrom, "from", "", "Start from this command line")
	cmd.Flags().StringVar(&buildPreset, "preset", "", "Start from this preset")
	cmd.Flags().StringArrayVar(&buildSet, "set", nil, "Assign field=value (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("from", "preset")

	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	scan := model.New()

	line := buildFrom
	if buildPreset != "" {
		var err error
		if line, err = cfg.Preset(buildPreset); err != nil {
			return err
		}
	}
	if line != "" {
		var err error
		if scan, err = command.ParseProgram(cfg.Program, line); err != nil {
			return fmt.Errorf("failed to parse command: %w", err)
		}
	}

	for _, assignment := range buildSet {
		if err := assign(scan, assignment); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), command.BuildFor(cfg.Program, scan))
	return nil
}

// assign applies one field=value assignment.
func assign(scan *model.Scan, assignment string) error {
	name, value, ok := strings.Cut(assignment, "=")
	if !ok {
		return fmt.Errorf("invalid assignment %q: expected field=value", assignment)
	}
	id, ok := flags.ByName(strings.TrimSpace(name))
	if !ok {
		return fmt.Errorf("unknown field %q", name)
	}
	if err := flags.Assign(flags.Resolve(scan, id), value); err != nil {
		return fmt.Errorf("failed to set %s: %w", id, err)
	}
	util.Debug("set %s = %q", id, value)
	return nil
}
