package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of charmgen",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), componentName, version)
		},
	}
)

func init() {
	rootCmd.AddCommand(versionCmd)
}
