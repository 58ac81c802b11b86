package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/patrol/internal/cli"
	"github.com/aretw0/patrol/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "patrol [file]",
	Short: "Patrol simulates a guard walking a grid",
	Long: `Patrol walks a guard across a map until it leaves, counting visited cells,
then tries every extra obstacle placement and counts those that trap the guard in a loop.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write Prometheus metrics to this file")
	rootCmd.PersistentFlags().Int("step-limit", 0, "Maximum steps per run (0 = rows*cols*4+1)")
	rootCmd.PersistentFlags().String("color", "", "Colour mode for render: auto, always, never")
}

// runOptions collects flags shared by every solving command.
// Only flags the user actually set override the config file.
func runOptions(cmd *cobra.Command, args []string) cli.RunOptions {
	opts := cli.RunOptions{InputPath: cli.DefaultInput}
	if len(args) > 0 {
		opts.InputPath = args[0]
	}
	opts.ConfigPath, _ = cmd.Flags().GetString("config")

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		opts.LogLevel = &v
	}
	if flags.Changed("metrics-file") {
		v, _ := flags.GetString("metrics-file")
		opts.MetricsFile = &v
	}
	if flags.Changed("step-limit") {
		v, _ := flags.GetInt("step-limit")
		opts.StepLimit = &v
	}
	if flags.Changed("color") {
		v, _ := flags.GetString("color")
		opts.Color = &v
	}
	return opts
}
