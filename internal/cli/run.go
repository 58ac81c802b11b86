package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/patrol"
	"github.com/aretw0/patrol/internal/config"
	"github.com/aretw0/patrol/internal/logging"
	"github.com/aretw0/patrol/internal/metrics"
	"github.com/aretw0/patrol/internal/presentation/tui"
)

// DefaultInput is the map read when no file is given.
const DefaultInput = "files/test_input.txt"

// RunOptions contains all the configuration for the solve and render commands.
// Pointer fields are flag overrides: nil means "use the config file".
type RunOptions struct {
	InputPath  string
	ConfigPath string
	Part       patrol.Part
	Render     bool

	LogLevel    *string
	StepLimit   *int
	MetricsFile *string
	Color       *string
}

// Execute loads configuration, solves the map and prints the answers to out.
func Execute(ctx context.Context, opts RunOptions, out io.Writer) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(level).With("input", opts.InputPath)

	recorder := metrics.NewRecorder()
	eng, err := patrol.New(
		patrol.WithLogger(logger),
		patrol.WithLifecycleHooks(withDebugHooks(logger, recorder.Hooks())),
		patrol.WithStepLimit(cfg.StepLimit),
	)
	if err != nil {
		return fmt.Errorf("error initializing patrol: %w", err)
	}

	path := opts.InputPath
	if path == "" {
		path = DefaultInput
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to read map: %w", err)
	}
	defer f.Close()

	report, err := eng.Solve(ctx, f, opts.Part)
	if err != nil {
		logger.Error("solve failed", "error", err)
		return err
	}

	if opts.Render && report.Walked != nil {
		profile := tui.ProfileFor(cfg.Color, asFile(out))
		fmt.Fprint(out, tui.NewRenderer(profile).Render(report.Walked, report.Start, report.LoopPositions))
	}
	printSolutions(out, opts.Part, report)

	if cfg.MetricsFile != "" {
		if err := recorder.WriteFile(cfg.MetricsFile); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		logger.Debug("metrics written", "path", cfg.MetricsFile)
	}
	return nil
}

func resolveConfig(opts RunOptions) (config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if opts.LogLevel != nil {
		cfg.LogLevel = *opts.LogLevel
	}
	if opts.StepLimit != nil {
		cfg.StepLimit = *opts.StepLimit
	}
	if opts.MetricsFile != nil {
		cfg.MetricsFile = *opts.MetricsFile
	}
	if opts.Color != nil {
		cfg.Color = *opts.Color
	}
	return cfg, cfg.Validate()
}

func printSolutions(out io.Writer, part patrol.Part, r *patrol.Report) {
	if part == patrol.PartAll || part == patrol.PartWalk {
		fmt.Fprintf(out, "Part 1 Solution: %d\n", r.Visited)
	}
	if part == patrol.PartAll || part == patrol.PartSearch {
		fmt.Fprintf(out, "Part 2 Solution: %d\n", r.Loops)
	}
}

func asFile(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}
