package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "A Kociemba two-phase Rubik's cube solver",
	Long: `Cube solves a 3x3x3 Rubik's cube with Kociemba's two-phase algorithm:
coordinate-level cube model, move tables, pruning tables built by parallel
BFS, and an IDA* search over the two phases.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}
