package dsl

import (
	"fmt"
	"strings"

	"github.com/aretw0/patrol/pkg/domain"
)

var markers = map[domain.Direction]byte{
	domain.North: '^',
	domain.East:  '>',
	domain.South: 'v',
	domain.West:  '<',
}

// Builder manages the map construction.
type Builder struct {
	rows      int
	cols      int
	obstacles []domain.Position
	guard     *domain.Agent
	errs      []error
}

// New creates a builder for a rows×cols map.
func New(rows, cols int) *Builder {
	b := &Builder{rows: rows, cols: cols}
	if rows < 1 || cols < 1 {
		b.errs = append(b.errs, fmt.Errorf("%dx%d: %w", rows, cols, domain.ErrEmptyGrid))
	}
	return b
}

// Obstacle places a blocker at (row, col).
func (b *Builder) Obstacle(row, col int) *Builder {
	b.obstacles = append(b.obstacles, domain.Position{Row: row, Col: col})
	return b
}

// Guard places the guard at (row, col) facing dir. Calling it twice is an error.
func (b *Builder) Guard(row, col int, dir domain.Direction) *Builder {
	if b.guard != nil {
		b.errs = append(b.errs, domain.ErrMultipleGuards)
		return b
	}
	a := domain.NewAgent(dir, domain.Position{Row: row, Col: col})
	b.guard = &a
	return b
}

// Build compiles the map into a grid and the guard's start state.
func (b *Builder) Build() (*domain.Grid, domain.Agent, error) {
	if len(b.errs) > 0 {
		return nil, domain.Agent{}, b.errs[0]
	}
	if b.guard == nil {
		return nil, domain.Agent{}, domain.ErrNoGuard
	}

	g := domain.NewGrid(b.rows, b.cols)
	for _, p := range b.obstacles {
		if p == b.guard.Position {
			return nil, domain.Agent{}, fmt.Errorf("obstacle on guard at %v: %w", p, domain.ErrCellNotEmpty)
		}
		if err := g.Set(p, domain.Obstacle); err != nil {
			return nil, domain.Agent{}, err
		}
	}
	if err := g.MarkVisited(b.guard.Position); err != nil {
		return nil, domain.Agent{}, fmt.Errorf("guard: %w", err)
	}
	return g, *b.guard, nil
}

// Text renders the map in the input format, one row per line.
func (b *Builder) Text() string {
	rows := make([][]byte, b.rows)
	for r := range rows {
		rows[r] = []byte(strings.Repeat(".", b.cols))
	}
	put := func(p domain.Position, ch byte) {
		if p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols {
			rows[p.Row][p.Col] = ch
		}
	}
	for _, p := range b.obstacles {
		put(p, '#')
	}
	if b.guard != nil {
		put(b.guard.Position, markers[b.guard.Direction])
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
