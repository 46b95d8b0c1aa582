package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tuck-sh/tuck/internal/version"
	"github.com/tuck-sh/tuck/pkg/config"
	"github.com/tuck-sh/tuck/pkg/logging"
)

var (
	verbosity int
	profile   string

	rootCmd = &cobra.Command{
		Use:   "tuck",
		Short: "A structured dotfiles manager",
		Long: `tuck manages your configuration files in a structured repository
organized into Configs, Hooks and Secrets groups, with per-platform
group variants and encrypted secrets.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "Use the dotfiles_<profile> repository instead of dotfiles")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(secretsCmd)
}

// loadSettings captures the environment once per invocation; everything
// below the command layer receives this value explicitly.
func loadSettings() (config.Settings, error) {
	return config.FromEnvironment()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tuck version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
