package patrol

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/patrol/internal/compiler"
	"github.com/aretw0/patrol/internal/logging"
	"github.com/aretw0/patrol/internal/runtime"
	"github.com/aretw0/patrol/pkg/domain"
)

// Part selects which questions Solve answers.
type Part int

const (
	PartAll    Part = 0 // Both parts
	PartWalk   Part = 1 // Visited-cell count only
	PartSearch Part = 2 // Loop count only
)

// Engine is the high-level entry point for the patrol library.
// It wraps the internal runtime and parser.
type Engine struct {
	runtime   *runtime.Engine
	parser    *compiler.Parser
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	stepLimit int
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStepLimit overrides the per-run iteration cap (default: rows*cols*4+1).
func WithStepLimit(n int) Option {
	return func(e *Engine) {
		e.stepLimit = n
	}
}

// New initializes a new patrol Engine.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{parser: compiler.NewParser()}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	rt, err := runtime.NewEngine(
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
		runtime.WithStepLimit(eng.stepLimit),
	)
	if err != nil {
		return nil, err
	}
	eng.runtime = rt
	return eng, nil
}

// Report is the answer to both questions about one map.
type Report struct {
	Start domain.Agent
	// Walked is a copy of the map after the primary walk (nil if it was skipped).
	Walked  *domain.Grid
	Visited int
	Steps   int

	Loops         int
	Candidates    int
	LoopPositions []domain.Position
}

// Solve parses the map from r and answers the requested part(s).
// The walk runs on a clone so the search always sees the pristine map.
func (e *Engine) Solve(ctx context.Context, r io.Reader, part Part) (*Report, error) {
	layout, err := e.parser.ParseReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid map: %w", err)
	}

	report := &Report{Start: layout.Start}

	if part == PartAll || part == PartWalk {
		walked := layout.Grid.Clone()
		res, err := e.runtime.Walk(ctx, walked, layout.Start)
		if err != nil {
			return nil, err
		}
		report.Walked = walked
		report.Visited = res.Visited
		report.Steps = res.Steps
	}

	if part == PartAll || part == PartSearch {
		res, err := e.runtime.Search(ctx, layout.Grid, layout.Start)
		if err != nil {
			return nil, err
		}
		report.Loops = res.Loops
		report.Candidates = res.Candidates
		report.LoopPositions = res.Positions
	}

	return report, nil
}

// Solve is a shortcut for New followed by Engine.Solve on both parts.
func Solve(ctx context.Context, r io.Reader, opts ...Option) (*Report, error) {
	eng, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return eng.Solve(ctx, r, PartAll)
}
