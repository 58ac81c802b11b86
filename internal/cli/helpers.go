package cli

import (
	"context"
	"log/slog"

	"github.com/aretw0/patrol/pkg/domain"
)

// withDebugHooks chains a debug log line for every finished run in front of next.
func withDebugHooks(logger *slog.Logger, next domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRunEnd: func(ctx context.Context, e *domain.RunEvent) {
			if e.Obstacle != nil {
				logger.Debug("run_end", "mode", e.Mode, "status", e.Status, "steps", e.Steps, "obstacle", *e.Obstacle)
			} else {
				logger.Debug("run_end", "mode", e.Mode, "status", e.Status, "steps", e.Steps)
			}
			if next.OnRunEnd != nil {
				next.OnRunEnd(ctx, e)
			}
		},
		OnSearchEnd: func(ctx context.Context, e *domain.SearchEvent) {
			logger.Debug("search_end", "candidates", e.Candidates, "loops", e.Loops)
			if next.OnSearchEnd != nil {
				next.OnSearchEnd(ctx, e)
			}
		},
	}
}
