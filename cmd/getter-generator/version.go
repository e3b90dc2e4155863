package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"getter-generator/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tool version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "getter-generator %s\n", version.Version)
	},
}
