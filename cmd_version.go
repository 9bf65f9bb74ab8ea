package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"turtleworks/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), buildinfo.Long())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
