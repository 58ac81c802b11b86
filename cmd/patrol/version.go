package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/patrol"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of patrol",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "patrol version %s\n", strings.TrimSpace(patrol.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
