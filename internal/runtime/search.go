package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/patrol/pkg/domain"
)

// SearchResult is the outcome of an obstruction search.
type SearchResult struct {
	// Loops is the number of candidates that trap the guard.
	Loops int
	// Candidates is the number of placements tried.
	Candidates int
	// Positions lists the looping placements in row-major order.
	Positions []domain.Position
}

// Candidates returns every cell where one extra obstacle is tried: cells that
// are Empty in base, except the cell directly ahead of the start. The start
// cell is Visited in a parsed base grid and is therefore never a candidate.
func Candidates(base *domain.Grid, start domain.Agent) []domain.Position {
	ahead := start.Ahead()
	var out []domain.Position
	base.Each(func(pos domain.Position, cell domain.CellState) {
		if cell != domain.Empty || pos == ahead || pos == start.Position {
			return
		}
		out = append(out, pos)
	})
	return out
}

// Search tries every candidate obstacle placement on its own clone of base
// and counts those that make the guard loop. base is never modified.
// ctx is checked between candidates.
func (e *Engine) Search(ctx context.Context, base *domain.Grid, start domain.Agent) (*SearchResult, error) {
	candidates := Candidates(base, start)
	result := &SearchResult{Candidates: len(candidates)}

	for _, pos := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		g := base.Clone()
		if err := g.MarkObstacle(pos); err != nil {
			return nil, fmt.Errorf("candidate %v: %w", pos, err)
		}

		obstacle := pos
		res, err := e.trace(ctx, g, start, &obstacle)
		if err != nil {
			return nil, fmt.Errorf("candidate %v: %w", pos, err)
		}
		if res.Status == domain.StatusLooping {
			result.Loops++
			result.Positions = append(result.Positions, pos)
		}
	}

	e.logger.Info("obstruction search finished", "candidates", result.Candidates, "loops", result.Loops)
	if e.hooks.OnSearchEnd != nil {
		e.hooks.OnSearchEnd(ctx, &domain.SearchEvent{
			Candidates: result.Candidates,
			Loops:      result.Loops,
		})
	}
	return result, nil
}
