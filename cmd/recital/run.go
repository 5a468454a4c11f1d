package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/recital/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Print the sequence and wait for input",
	Long:  `Runs every action in order to stdout, then reads a single unit of input from stdin and exits.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		return cli.RunSession(cmd.Context(), cli.RunOptions{
			Input:     cmd.InOrStdin(),
			Output:    cmd.OutOrStdout(),
			Debug:     debug,
			LogOutput: cmd.ErrOrStderr(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	// 'run' is the default when no command is provided.
	rootCmd.RunE = runCmd.RunE
}
