package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/recital"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of recital",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "recital version %s\n", recital.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
