package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/recital/internal/presentation/manifest"
	"github.com/aretw0/recital/pkg/program"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the actions and the lines they emit as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return manifest.Write(cmd.OutOrStdout(), program.Sequence())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
