package runtime

import (
	"github.com/felixgeelhaar/statekit"

	"github.com/aretw0/patrol/pkg/domain"
)

// State IDs as StateID type for statekit.
const (
	stateRunning statekit.StateID = statekit.StateID(domain.StatusRunning)
	stateExited  statekit.StateID = statekit.StateID(domain.StatusExited)
	stateLooping statekit.StateID = statekit.StateID(domain.StatusLooping)
)

const (
	eventExit statekit.EventType = "EXIT"
	eventLoop statekit.EventType = "LOOP"
)

// runContext carries the outcome of one run through the state chart.
type runContext struct {
	Status domain.RunStatus
}

// runMachine is the built run statechart: running, then exited or looping.
// Both terminal states are final; no event leaves them.
type runMachine struct {
	config *statekit.MachineConfig[*runContext]
}

func newRunMachine() (*runMachine, error) {
	config, err := statekit.NewMachine[*runContext]("run").
		WithInitial(stateRunning).
		WithContext(&runContext{}).
		WithAction("settle", settle).
		State(stateRunning).
			On(eventExit).Target(stateExited).Do("settle").
			On(eventLoop).Target(stateLooping).Do("settle").
			Done().
		State(stateExited).
			Final().
			OnEntry("settle").
			Done().
		State(stateLooping).
			Final().
			OnEntry("settle").
			Done().
		Build()
	if err != nil {
		return nil, err
	}
	return &runMachine{config: config}, nil
}

// settle records the terminal status in the run context.
// Actions receive **runContext because the context type is a pointer.
func settle(ctx **runContext, event statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	switch event.Type {
	case eventExit:
		(*ctx).Status = domain.StatusExited
	case eventLoop:
		(*ctx).Status = domain.StatusLooping
	}
}

// run is one live interpreter over the run statechart.
type run struct {
	interp *statekit.Interpreter[*runContext]
	ctx    *runContext
}

func (m *runMachine) start() *run {
	rc := &runContext{Status: domain.StatusRunning}
	interp := statekit.NewInterpreter(m.config)
	interp.UpdateContext(func(c **runContext) {
		*c = rc
	})
	interp.Start()
	return &run{interp: interp, ctx: rc}
}

// finish moves the run into a terminal status. Unknown statuses are ignored.
func (r *run) finish(status domain.RunStatus) {
	switch status {
	case domain.StatusExited:
		r.interp.Send(statekit.Event{Type: eventExit})
	case domain.StatusLooping:
		r.interp.Send(statekit.Event{Type: eventLoop})
	}
}

func (r *run) status() domain.RunStatus {
	return domain.RunStatus(r.interp.State().Value)
}

func (r *run) stop() {
	r.interp.Stop()
}
