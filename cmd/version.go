package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of envseek",
		Long:  `All software has versions. This is envseek's.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("envseek version %s\n", rootCmd.Version)
		},
	}
}
