package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/recital/internal/presentation/graph"
	"github.com/aretw0/recital/pkg/program"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the action sequence visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) of the action sequence, ending in the input wait.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(program.Sequence(), nil))
		return err
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
