package crack

import (
	"context"
	"fmt"
	"sync"
)

// State is the orchestrator lifecycle: PENDING until Run is called,
// RUNNING while strategies execute, then DONE (every target resolved)
// or EXHAUSTED (all strategies finished with targets left). Both
// terminal states are normal outcomes, not errors.
type State int

const (
	Pending State = iota
	Running
	Done
	Exhausted
)

func (s State) String() string {
	switch s {
	case Pending:
		return "PENDING"
	case Running:
		return "RUNNING"
	case Done:
		return "DONE"
	case Exhausted:
		return "EXHAUSTED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Strategy names one generator configuration. Build runs only when the
// strategy's turn actually comes, so expensive setup (sorting and
// slicing large pools) is skipped entirely once the targets are
// resolved.
type Strategy struct {
	Name  string
	Build func() Generator
}

// cancelCheckEvery is how many candidates pass between context checks.
const cancelCheckEvery = 4096

// Orchestrator drives an ordered strategy list through one engine,
// stopping the instant the engine reports exhaustion.
type Orchestrator struct {
	engine *Engine

	// Workers > 1 drains each generator through that many parallel
	// workers; otherwise generation and testing run synchronously.
	Workers int

	// Progress, when set, is told when strategies start and finish.
	Progress func(msg string)

	mu      sync.Mutex
	state   State
	current string
}

// NewOrchestrator returns an orchestrator over engine in state PENDING.
func NewOrchestrator(engine *Engine) *Orchestrator {
	return &Orchestrator{engine: engine, state: Pending}
}

// State returns the current lifecycle state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Current names the strategy being drained, or "" between strategies.
func (o *Orchestrator) Current() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

func (o *Orchestrator) setCurrent(name string) {
	o.mu.Lock()
	o.current = name
	o.mu.Unlock()
}

// Run executes strategies in order until the targets are resolved or
// the list ends. A cache-resolved engine transitions straight to DONE
// without building a single generator. The returned error is non-nil
// only for cancellation; EXHAUSTED is reported through the state.
func (o *Orchestrator) Run(ctx context.Context, strategies []Strategy) (State, error) {
	if o.engine.Resolved() {
		o.setState(Done)
		return Done, nil
	}

	o.setState(Running)
	for _, strat := range strategies {
		// Checked per strategy, not just per candidate, so a resolved
		// run never pays a later strategy's setup cost.
		if o.engine.Resolved() {
			break
		}
		if err := ctx.Err(); err != nil {
			return o.State(), err
		}

		o.setCurrent(strat.Name)
		if o.Progress != nil {
			o.Progress(fmt.Sprintf("strategy %s: starting", strat.Name))
		}

		gen := strat.Build()
		var err error
		if o.Workers > 1 {
			err = drainParallel(ctx, o.engine, gen, o.Workers)
		} else {
			err = o.drain(ctx, gen)
		}
		o.setCurrent("")
		if err != nil {
			return o.State(), err
		}

		if o.Progress != nil {
			o.Progress(fmt.Sprintf("strategy %s: finished, %d targets left", strat.Name, o.engine.Remaining()))
		}
	}

	if o.engine.Resolved() {
		o.setState(Done)
	} else {
		o.setState(Exhausted)
	}
	return o.State(), nil
}

// drain feeds gen's sequence into the engine until the sequence ends,
// the engine exhausts, or ctx is cancelled.
func (o *Orchestrator) drain(ctx context.Context, gen Generator) error {
	for i := uint64(0); ; i++ {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		candidate, ok := gen.Next()
		if !ok {
			return nil
		}
		if _, exhausted := o.engine.Test(candidate); exhausted {
			return nil
		}
	}
}
