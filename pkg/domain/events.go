package domain

import "context"

// RunEvent describes a finished simulation run.
type RunEvent struct {
	Mode   RunMode
	Status RunStatus
	Steps  int
	Start  Agent
	// Obstacle is the injected blocker for trace runs.
	Obstacle *Position
}

// SearchEvent describes a finished obstruction search.
type SearchEvent struct {
	Candidates int
	Loops      int
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnRunEnd    func(context.Context, *RunEvent)
	OnSearchEnd func(context.Context, *SearchEvent)
}
