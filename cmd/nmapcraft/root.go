package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/user/nmapcraft/internal/command"
	"github.com/user/nmapcraft/internal/model"
	"github.com/user/nmapcraft/internal/util"
)

const version = "1.0.0"

var (
	cfgFile string
	cfg     *util.Config
)

// newRootCmd builds the command tree. Every call returns fresh flag state.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nmapcraft",
		Short: "Build and edit nmap command lines",
		Long: `nmapcraft turns nmap command lines into structured scan settings and back.

It can:
- Build a command from presets and individual field assignments
- Parse an existing command and print it as text, JSON, YAML or argv
- Describe a command or compare two of them
- Edit a scan interactively with a live command preview

It never runs nmap itself.`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.nmapcraft/config.yaml)")
	root.PersistentFlags().String("log-level", "info",
		"log level (debug, info, warn, error)")

	viper.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))

	// Add subcommands
	root.AddCommand(newUICmd())
	root.AddCommand(newBuildCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newFieldsCmd())
	root.AddCommand(newDescribeCmd())
	root.AddCommand(newDiffCmd())
	root.AddCommand(versionCmd())

	// Add shell completion
	root.AddCommand(completionCmd())

	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func initConfig(cmd *cobra.Command, args []string) error {
	if cfgFile != "" && !util.FileExists(cfgFile) {
		return fmt.Errorf("config file %s does not exist", cfgFile)
	}

	var err error
	cfg, err = util.LoadConfig(viper.GetViper(), cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return err
	}

	// The editor owns the terminal, so it only logs to the file.
	util.InitLogger(cfg.LogLevel, cfg.LogFile, cmd.Name() == "ui")
	util.Debug("config loaded, program %q", cfg.Program)
	return nil
}

// parseInput turns command arguments into a scan. A single argument is a
// full command line; several are taken as an already split argv.
func parseInput(args []string) (*model.Scan, error) {
	var (
		scan *model.Scan
		err  error
	)
	if len(args) == 1 {
		scan, err = command.ParseProgram(cfg.Program, args[0])
	} else {
		scan, err = command.ParseArgs(cfg.Program, args)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse command: %w", err)
	}
	return scan, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nmapcraft version %s\n", version)
		},
	}
}

func completionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for nmapcraft.

To load completions:

Bash:
  $ source <(nmapcraft completion bash)

Zsh:
  $ source <(nmapcraft completion zsh)

Fish:
  $ nmapcraft completion fish | source

PowerShell:
  PS> nmapcraft completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
