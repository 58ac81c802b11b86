package domain

import "fmt"

// Direction is the heading of the guard.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Right returns the heading after a 90° clockwise turn.
func (d Direction) Right() Direction {
	return (d + 1) % 4
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Position is a (row, col) pair. It is signed so a neighbour of an edge cell
// can be represented before it is bounds-checked.
type Position struct {
	Row int
	Col int
}

// Next returns the neighbouring position one cell ahead in direction d.
func (p Position) Next(d Direction) Position {
	switch d {
	case North:
		return Position{Row: p.Row - 1, Col: p.Col}
	case South:
		return Position{Row: p.Row + 1, Col: p.Col}
	case East:
		return Position{Row: p.Row, Col: p.Col + 1}
	case West:
		return Position{Row: p.Row, Col: p.Col - 1}
	default:
		return p
	}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
