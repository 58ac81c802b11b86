package domain

// StepResult is the outcome of a single Agent.Step call.
type StepResult string

const (
	StepAdvanced StepResult = "advanced" // Moved one cell forward
	StepTurned   StepResult = "turned"   // Blocked; turned clockwise in place
	StepExited   StepResult = "exited"   // The cell ahead is outside the grid
)

// RunStatus defines the lifecycle of one simulation run.
type RunStatus string

const (
	StatusRunning RunStatus = "running" // Stepping
	StatusExited  RunStatus = "exited"  // Guard left the grid
	StatusLooping RunStatus = "looping" // A (direction, position) pair repeated
)

// Terminal reports whether no further steps will be taken.
func (s RunStatus) Terminal() bool {
	return s == StatusExited || s == StatusLooping
}

// RunMode distinguishes the primary walk from an obstruction trace.
type RunMode string

const (
	ModeWalk  RunMode = "walk"
	ModeTrace RunMode = "trace"
)
