package compiler

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/patrol/pkg/domain"
)

// Parser converts the text form of a map into a Grid and the guard's start.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Layout is the parsed input: the base grid and where the guard starts.
// The start cell is already normalized and marked visited in Grid.
type Layout struct {
	Grid  *domain.Grid
	Start domain.Agent
}

var guardMarkers = map[rune]domain.Direction{
	'^': domain.North,
	'>': domain.East,
	'v': domain.South,
	'<': domain.West,
}

// ParseReader reads all of r and parses it.
func (p *Parser) ParseReader(r io.Reader) (*Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read map: %w", err)
	}
	return p.Parse(data)
}

// Parse decodes one grid row per line. Any error is fatal: no partial layout
// is returned.
func (p *Parser) Parse(data []byte) (*Layout, error) {
	lines := splitLines(string(data))
	if len(lines) == 0 {
		return nil, domain.ErrEmptyGrid
	}

	cols := len([]rune(lines[0]))
	if cols == 0 {
		return nil, domain.ErrEmptyGrid
	}

	grid := domain.NewGrid(len(lines), cols)
	var start *domain.Agent

	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", row, len(runes), cols, domain.ErrRaggedGrid)
		}

		for col, ch := range runes {
			pos := domain.Position{Row: row, Col: col}
			switch ch {
			case '.':
				// Grids start Empty.
			case '#':
				if err := grid.Set(pos, domain.Obstacle); err != nil {
					return nil, err
				}
			default:
				dir, ok := guardMarkers[ch]
				if !ok {
					return nil, &domain.ParseError{Row: row, Col: col, Char: ch}
				}
				if start != nil {
					return nil, fmt.Errorf("second marker at %v (first at %v): %w", pos, start.Position, domain.ErrMultipleGuards)
				}
				a := domain.NewAgent(dir, pos)
				start = &a
			}
		}
	}

	if start == nil {
		return nil, domain.ErrNoGuard
	}

	// The marker cell reads as Empty; the guard has stood on it, so it counts as visited.
	if err := grid.MarkVisited(start.Position); err != nil {
		return nil, fmt.Errorf("failed to normalize start cell: %w", err)
	}

	return &Layout{Grid: grid, Start: *start}, nil
}

// splitLines splits on '\n', strips a trailing '\r' and drops trailing blank lines.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
