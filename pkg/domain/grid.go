package domain

import (
	"fmt"
	"strings"
)

// CellState is the content of a single grid location.
type CellState uint8

const (
	Empty CellState = iota
	Visited
	Obstacle
)

// Rune returns the character used to render the cell.
func (c CellState) Rune() rune {
	switch c {
	case Visited:
		return 'X'
	case Obstacle:
		return '#'
	default:
		return '.'
	}
}

func (c CellState) String() string {
	switch c {
	case Empty:
		return "empty"
	case Visited:
		return "visited"
	case Obstacle:
		return "obstacle"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// Grid is a fixed-size rectangular store of cell states.
// The shape never changes after construction; only cell contents do.
type Grid struct {
	rows  int
	cols  int
	cells []CellState
}

// NewGrid creates a rows×cols grid with every cell Empty.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]CellState, rows*cols),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Contains reports whether pos lies inside the grid.
func (g *Grid) Contains(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.rows && pos.Col >= 0 && pos.Col < g.cols
}

func (g *Grid) index(pos Position) int {
	return pos.Row*g.cols + pos.Col
}

// Get returns the state at pos. The boolean is false when pos is outside the
// grid; that is how a guard exit is detected, not a fault.
func (g *Grid) Get(pos Position) (CellState, bool) {
	if !g.Contains(pos) {
		return Empty, false
	}
	return g.cells[g.index(pos)], true
}

// Set writes state at pos without any precondition. It is meant for building
// a grid from input; simulation code uses MarkVisited and MarkObstacle.
func (g *Grid) Set(pos Position, state CellState) error {
	if !g.Contains(pos) {
		return fmt.Errorf("set %v: %w", pos, ErrOutOfBounds)
	}
	g.cells[g.index(pos)] = state
	return nil
}

// MarkVisited marks an Empty cell as Visited.
func (g *Grid) MarkVisited(pos Position) error {
	return g.mark(pos, Visited)
}

// MarkObstacle turns an Empty cell into an Obstacle.
func (g *Grid) MarkObstacle(pos Position) error {
	return g.mark(pos, Obstacle)
}

func (g *Grid) mark(pos Position, state CellState) error {
	if !g.Contains(pos) {
		return fmt.Errorf("mark %v %v: %w", pos, state, ErrOutOfBounds)
	}
	i := g.index(pos)
	if current := g.cells[i]; current != Empty {
		return fmt.Errorf("mark %v %v (is %v): %w", pos, state, current, ErrCellNotEmpty)
	}
	g.cells[i] = state
	return nil
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Count returns the number of cells in the given state.
func (g *Grid) Count(state CellState) int {
	n := 0
	for _, c := range g.cells {
		if c == state {
			n++
		}
	}
	return n
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(Position, CellState)) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			pos := Position{Row: r, Col: c}
			fn(pos, g.cells[g.index(pos)])
		}
	}
}

// String renders the grid one row per line using '.', 'X' and '#'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(g.cells[r*g.cols+c].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
