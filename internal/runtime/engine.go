package runtime

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/patrol/internal/logging"
	"github.com/aretw0/patrol/pkg/domain"
)

// Engine drives the guard through a grid.
// It holds no per-run state, so one Engine can serve any number of runs.
type Engine struct {
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
	stepLimit int
	machine   *runMachine
}

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithStepLimit caps the number of steps of a single run.
// Zero (the default) derives the cap from the grid size.
func WithStepLimit(n int) EngineOption {
	return func(e *Engine) {
		e.stepLimit = n
	}
}

// NewEngine creates a new engine.
func NewEngine(opts ...EngineOption) (*Engine, error) {
	machine, err := newRunMachine()
	if err != nil {
		return nil, fmt.Errorf("failed to build run machine: %w", err)
	}

	e := &Engine{
		logger:  logging.NewNop(),
		machine: machine,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Result is the outcome of a single run.
type Result struct {
	Status  domain.RunStatus
	Steps   int
	Visited int
	Final   domain.Agent
}

// limitFor returns the iteration cap for g. A correct transition function
// visits at most 4 states per cell, plus the final exiting step.
func (e *Engine) limitFor(g *domain.Grid) int {
	if e.stepLimit > 0 {
		return e.stepLimit
	}
	return g.Rows()*g.Cols()*4 + 1
}

// Walk runs the guard from start until it leaves g. It mutates g: every cell
// the guard enters is marked Visited. Pass a clone to keep the original.
func (e *Engine) Walk(ctx context.Context, g *domain.Grid, start domain.Agent) (*Result, error) {
	run := e.machine.start()
	defer run.stop()

	guard := start
	limit := e.limitFor(g)
	steps := 0

	for !run.status().Terminal() {
		if steps >= limit {
			return nil, fmt.Errorf("walk from %v after %d steps: %w", start, steps, domain.ErrStepLimit)
		}

		res, err := guard.Step(g)
		steps++
		if err != nil {
			return nil, fmt.Errorf("walk from %v: %w", start, err)
		}
		if res == domain.StepExited {
			run.finish(domain.StatusExited)
		}
	}

	result := &Result{
		Status:  run.status(),
		Steps:   steps,
		Visited: g.Count(domain.Visited),
		Final:   guard,
	}
	e.logger.Debug("walk finished", "start", start, "steps", steps, "visited", result.Visited)
	e.emitRunEnd(ctx, domain.ModeWalk, start, result, nil)
	return result, nil
}

// Trace runs the guard from start until it either leaves g or re-enters a
// (direction, position) pair it has already been in. The history is checked
// before every step, including steps that only turned.
func (e *Engine) Trace(ctx context.Context, g *domain.Grid, start domain.Agent) (*Result, error) {
	return e.trace(ctx, g, start, nil)
}

func (e *Engine) trace(ctx context.Context, g *domain.Grid, start domain.Agent, obstacle *domain.Position) (*Result, error) {
	run := e.machine.start()
	defer run.stop()

	guard := start
	limit := e.limitFor(g)
	seen := make(map[domain.Agent]struct{})
	steps := 0

	for !run.status().Terminal() {
		if _, ok := seen[guard]; ok {
			run.finish(domain.StatusLooping)
			break
		}
		if steps >= limit {
			return nil, fmt.Errorf("trace from %v after %d steps: %w", start, steps, domain.ErrStepLimit)
		}
		seen[guard] = struct{}{}

		res, err := guard.Step(g)
		steps++
		if err != nil {
			return nil, fmt.Errorf("trace from %v: %w", start, err)
		}
		if res == domain.StepExited {
			run.finish(domain.StatusExited)
		}
	}

	result := &Result{
		Status:  run.status(),
		Steps:   steps,
		Visited: g.Count(domain.Visited),
		Final:   guard,
	}
	e.emitRunEnd(ctx, domain.ModeTrace, start, result, obstacle)
	return result, nil
}

func (e *Engine) emitRunEnd(ctx context.Context, mode domain.RunMode, start domain.Agent, r *Result, obstacle *domain.Position) {
	if e.hooks.OnRunEnd == nil {
		return
	}
	e.hooks.OnRunEnd(ctx, &domain.RunEvent{
		Mode:     mode,
		Status:   r.Status,
		Steps:    r.Steps,
		Start:    start,
		Obstacle: obstacle,
	})
}
