package domain

import "fmt"

// Agent is the guard. The (Direction, Position) pair is its whole state, so
// two Agents compare equal exactly when the guard is in the same situation.
type Agent struct {
	Direction Direction
	Position  Position
}

// NewAgent creates a guard at pos facing dir.
func NewAgent(dir Direction, pos Position) Agent {
	return Agent{Direction: dir, Position: pos}
}

// Turn rotates the guard 90° clockwise in place.
func (a *Agent) Turn() {
	a.Direction = a.Direction.Right()
}

// Ahead returns the position directly in front of the guard.
func (a Agent) Ahead() Position {
	return a.Position.Next(a.Direction)
}

// Step performs one transition against g: either one turn or one move, never
// both. Moving onto an Empty cell marks it Visited. The error is non-nil only
// if the grid rejects that mark, which means an invariant was broken.
func (a *Agent) Step(g *Grid) (StepResult, error) {
	next := a.Ahead()
	cell, ok := g.Get(next)
	if !ok {
		return StepExited, nil
	}

	switch cell {
	case Obstacle:
		a.Turn()
		return StepTurned, nil
	case Empty:
		a.Position = next
		if err := g.MarkVisited(next); err != nil {
			return StepAdvanced, fmt.Errorf("guard step: %w", err)
		}
		return StepAdvanced, nil
	default:
		a.Position = next
		return StepAdvanced, nil
	}
}

func (a Agent) String() string {
	return fmt.Sprintf("%v@%v", a.Direction, a.Position)
}
