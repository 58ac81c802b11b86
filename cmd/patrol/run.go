package main

import (
	"fmt"

	"github.com/aretw0/patrol"
	"github.com/aretw0/patrol/internal/cli"
	"github.com/spf13/cobra"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Print the visited-cell count and the loop count",
	Long:  `Reads the map (default files/test_input.txt) and prints "Part 1 Solution" and "Part 2 Solution".`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		part, _ := cmd.Flags().GetInt("part")
		if part < 0 || part > 2 {
			return fmt.Errorf("--part must be 0, 1 or 2, got %d", part)
		}

		opts := runOptions(cmd, args)
		opts.Part = patrol.Part(part)
		return cli.Execute(cmd.Context(), opts, cmd.OutOrStdout())
	},
}

// renderCmd draws the walked map before the solutions.
var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Draw the guard's path; with --loops also mark trapping placements",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loops, _ := cmd.Flags().GetBool("loops")

		opts := runOptions(cmd, args)
		opts.Render = true
		opts.Part = patrol.PartWalk
		if loops {
			opts.Part = patrol.PartAll
		}
		return cli.Execute(cmd.Context(), opts, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(renderCmd)

	solveCmd.Flags().Int("part", 0, "Part to solve: 1 (walk), 2 (obstruction search) or 0 (both)")
	renderCmd.Flags().Bool("loops", false, "Also run the obstruction search and mark looping cells with 'O'")

	// Make 'solve' the default if no command is provided
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.Flags().AddFlagSet(solveCmd.Flags())
	rootCmd.RunE = solveCmd.RunE
}
