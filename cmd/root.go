package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"envseek/internal/config"
	"envseek/pkg/logging"
)

var logLevelFlag string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "envseek",
	Short: "Resolve named values from .env files, the environment, or a prompt",
	Long: `envseek resolves a named configuration value by trying, in a
configurable order, up to three independent sources: the project's .env file,
the process environment, and an interactive terminal prompt.

Callers pick a source explicitly (--source file|system|input) or let the
default fallback chain run: .env first, then the environment, then a prompt.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid arguments, failed resolutions)
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		levelName := logLevelFlag
		// An explicit flag wins; otherwise the config file or
		// ENVSEEK_LOG_LEVEL decides. A broken config file is ignored here so
		// commands that never load config (version, self-update) still run.
		if !cmd.Flags().Changed("log-level") {
			if cfg, err := config.LoadConfig(); err == nil && cfg.LogLevel != "" {
				levelName = cfg.LogLevel
			}
		}
		level, err := logging.ParseLevel(levelName)
		if err != nil {
			return err
		}
		logging.Init(level, cmd.ErrOrStderr())
		return nil
	},
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(`{{printf "envseek version %s\n" .Version}}`)

	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "log level (debug, info, warn, error)")
}
