package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/kociemba"
	"github.com/spf13/cobra"
)

var kociembaCmd = &cobra.Command{
	Use:   "kociemba",
	Short: "Kociemba two-phase solver utilities",
	Long: `Commands for the coordinate-level two-phase solver: solving a
3x3x3 from a twist-sequence scramble with full search statistics,
applying a scramble to a sticker cube for display, and generating random
scrambles drawn from the full 18-twist set.`,
}

func buildEngine() (*kociemba.Twister, *kociemba.Tables, error) {
	ctx := context.Background()
	fmt.Println("Building move tables...")
	tw, err := kociemba.BuildTwister(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("building move tables: %w", err)
	}

	fmt.Println("Loading pruning tables (this builds them on first run)...")
	tables, err := kociemba.LoadTables(ctx, "kociemba.conf", tw)
	if err != nil {
		return nil, nil, fmt.Errorf("loading pruning tables: %w", err)
	}
	return tw, tables, nil
}

var kociembaSolveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a 3x3x3 with the two-phase solver and report search stats",
	Long: `Scramble is a space-separated sequence of twist names (L1, R2, U3,
...; see "cube kociemba scramble" for the notation), applied to a solved
cube before solving.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		maxLen, _ := cmd.Flags().GetInt("max-length")

		scramble, err := kociemba.ParseTwists(args[0])
		if err != nil {
			fmt.Printf("Error parsing scramble: %v\n", err)
			os.Exit(1)
		}

		tw, tables, err := buildEngine()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		kc := kociemba.SolvedCube().TwistedBy(scramble)

		solver := kociemba.NewTwoPhaseSolver(tw, tables)
		solution, err := solver.Solve(kc, maxLen)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		names := make([]string, len(solution))
		for i, t := range solution {
			names[i] = t.String()
		}

		fmt.Printf("Solution: %s\n", strings.Join(names, " "))
		fmt.Printf("Moves: %d\n", len(solution))

		stats := solver.Stats()
		fmt.Printf("Depth iterations: %d\n", stats.DepthIterations)
		fmt.Printf("Phase-1 probes: %d\n", stats.Phase1Probes)
		fmt.Printf("Phase-2 probes: %d\n", stats.Phase2Probes)
		fmt.Printf("Corner cuts: %d\n", stats.CornerCuts)
		fmt.Printf("Subset cuts: %d\n", stats.SubsetCuts)
		fmt.Printf("Empty-set cuts: %d\n", stats.EmptySetCuts)
	},
}

var kociembaTwistCmd = &cobra.Command{
	Use:   "twist [scramble]",
	Short: "Apply a twist sequence to a solved cube and display the stickers",
	Long: `Decodes the twist sequence onto a solved cube via the coordinate
engine, then writes the result back onto a sticker cube through the
bridge, the way a caller handing the solver a scrambled physical cube
would read its state in reverse.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble, err := kociemba.ParseTwists(args[0])
		if err != nil {
			fmt.Printf("Error parsing scramble: %v\n", err)
			os.Exit(1)
		}

		c := cube.NewCube(3)
		c.ApplyKociemba(kociemba.SolvedCube().TwistedBy(scramble))

		useColor, _ := cmd.Flags().GetBool("color")
		fmt.Print(c.StringWithColor(useColor))

		if c.IsSolved() {
			fmt.Println("Status: solved")
		} else {
			fmt.Println("Status: scrambled")
		}
	},
}

var kociembaScrambleCmd = &cobra.Command{
	Use:   "scramble [length]",
	Short: "Generate a random scramble drawn from the full 18-twist set",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		length := 25
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				fmt.Println("length must be a positive integer")
				os.Exit(1)
			}
			length = n
		}
		seed, _ := cmd.Flags().GetUint64("seed")

		gen := kociemba.NewRandomTwistGen(seed, kociemba.AllTwists())
		twists := gen.Twists(length)

		names := make([]string, len(twists))
		for i, t := range twists {
			names[i] = t.String()
		}
		fmt.Println(strings.Join(names, " "))
	},
}

func init() {
	kociembaSolveCmd.Flags().Int("max-length", 30, "Maximum solution length to search for")
	kociembaTwistCmd.Flags().BoolP("color", "c", false, "Use colored output")
	kociembaScrambleCmd.Flags().Uint64("seed", 1, "Seed for the random twist generator")

	kociembaCmd.AddCommand(kociembaSolveCmd)
	kociembaCmd.AddCommand(kociembaTwistCmd)
	kociembaCmd.AddCommand(kociembaScrambleCmd)
	rootCmd.AddCommand(kociembaCmd)
}
