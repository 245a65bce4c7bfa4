package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"envseek/internal/config"
	"envseek/internal/resolver"
)

var (
	checkHitStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"})
	checkMissStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "246"})
	checkErrStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "204"})
)

func newCheckCmd() *cobra.Command {
	var envFileFlag string

	cmd := &cobra.Command{
		Use:   "check NAME",
		Short: "Show which sources hold a variable",
		Long: `Consult the file and system backends for NAME and report each one's
result without resolving. The input backend is never consulted, so check is
safe to run non-interactively.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			res := buildResolver(cmd, cfg, envFileFlag)
			name := args[0]

			// The prompt is deliberately absent: check must never block on
			// the operator.
			for _, selector := range []resolver.SearchType{resolver.File, resolver.System} {
				backend := res.Backend(selector)
				value, err := backend.Lookup(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
					runewidth.FillRight(backend.Name(), 8), checkStatus(value, err))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&envFileFlag, "env-file", "", "explicit .env file path (default: next to the nearest go.mod)")

	return cmd
}

func checkStatus(value string, err error) string {
	if err == nil {
		return checkHitStyle.Render(fmt.Sprintf("✓ %s", value))
	}
	var notFound *resolver.NotFoundError
	if errors.As(err, &notFound) {
		return checkMissStyle.Render("- not set")
	}
	return checkErrStyle.Render(fmt.Sprintf("✗ %v", err))
}
