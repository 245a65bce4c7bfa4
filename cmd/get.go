package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"envseek/internal/config"
	"envseek/internal/resolver"
)

func newGetCmd() *cobra.Command {
	var (
		sourceFlag  string
		envFileFlag string
		copyFlag    bool
		quietFlag   bool
	)

	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Resolve a variable and print its value",
		Long: `Resolve NAME and print the value on stdout.

Without --source the full fallback chain runs: the .env file next to the
project's go.mod, then the process environment, then an interactive prompt.
With --source only that one backend is consulted; with --source input the
prompt always runs, even when the other backends hold the variable.`,
		Example: `  envseek get API_TOKEN
  envseek get API_TOKEN --source file --env-file ./deploy/.env
  envseek get API_TOKEN --copy --quiet`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selector, err := resolver.ParseSearchType(sourceFlag)
			if err != nil {
				return err
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			res := buildResolver(cmd, cfg, envFileFlag)
			value, err := res.Resolve(selector, args[0])
			if err != nil {
				return err
			}

			if copyFlag {
				if err := clipboard.WriteAll(value); err != nil {
					return fmt.Errorf("failed to copy value to clipboard: %w", err)
				}
			}
			if !quietFlag {
				fmt.Fprintln(cmd.OutOrStdout(), value)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&sourceFlag, "source", "s", "all", "source to consult (file, system, input or all)")
	cmd.Flags().StringVar(&envFileFlag, "env-file", "", "explicit .env file path (default: next to the nearest go.mod)")
	cmd.Flags().BoolVarP(&copyFlag, "copy", "c", false, "also copy the resolved value to the clipboard")
	cmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "do not print the value (useful with --copy)")

	return cmd
}

// buildResolver assembles a resolver from the loaded config and the command's
// flags. The command's streams feed the input backend so tests (and callers
// that redirect stdio) can drive the prompt.
func buildResolver(cmd *cobra.Command, cfg config.Config, envFileFlag string) *resolver.Resolver {
	fileBackend := resolver.NewFileBackend()
	switch {
	case envFileFlag != "":
		fileBackend = resolver.NewFileBackendAt(envFileFlag)
	case cfg.EnvFile != "":
		fileBackend = resolver.NewFileBackendAt(cfg.EnvFile)
	}
	fileBackend.Strict = cfg.StrictParse

	inputBackend := &resolver.InputBackend{
		In:  cmd.InOrStdin(),
		Out: cmd.ErrOrStderr(),
	}

	return resolver.New(
		resolver.WithFileBackend(fileBackend),
		resolver.WithInputBackend(inputBackend),
		resolver.WithOrder(cfg.SearchOrder()),
	)
}
