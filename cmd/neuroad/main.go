package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neuroad/neuroad-cli/internal/commands"
)

var (
	// Version is set at build time via -ldflags "-X main.Version=X.Y.Z"
	Version = "0.0.0-dev"

	verbose   bool
	configDir string
	backend   string
)

var rootCmd = &cobra.Command{
	Use:   "neuroad",
	Short: "NeuroAd - AI ad creatives from your terminal",
	Long: `NeuroAd builds ad campaigns from your website with neuromarketing
strategies, then generates images, captions and videos for them.

Quick Start:
  neuroad                      Launch the interactive UI (default)
  neuroad login                Sign in (first time)
  neuroad new --plain          Create a project at the prompt

Commands:
  login / logout / whoami      Manage your session
  new                          Create a project (5-step wizard)
  projects list|show|delete|export
  generate images|video <id>   Generate ad content
  caption <id>                 Print the generated caption
  catalog strategies|platforms|tips
  lang [ar|en]                 Interface language
  theme [light|dark]           Color theme

Config: ~/.neuroad/config.yaml
Logs:   ~/.neuroad/logs/neuroad.log`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commands.Prepare(commands.Globals{
			Verbose:   verbose,
			ConfigDir: configDir,
			Backend:   backend,
		}, os.Stderr)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// When no subcommand is specified, launch the TUI
		return commands.RunTUIDefault()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Config directory (default ~/.neuroad)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Backend URL, overrides the config")

	rootCmd.AddCommand(commands.TUICmd)
	rootCmd.AddCommand(commands.LoginCmd)
	rootCmd.AddCommand(commands.LogoutCmd)
	rootCmd.AddCommand(commands.WhoamiCmd)
	rootCmd.AddCommand(commands.NewCmd)
	rootCmd.AddCommand(commands.ProjectsCmd)
	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CaptionCmd)
	rootCmd.AddCommand(commands.CatalogCmd)
	rootCmd.AddCommand(commands.LangCmd)
	rootCmd.AddCommand(commands.ThemeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
