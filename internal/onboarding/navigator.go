package onboarding

import (
	"sync"

	"onboardctl/pkg/logging"
)

const navigatorSubsystem = "Navigator"

// Persisted keys.
const (
	StepKey     = "step"
	BackStepKey = "backStep"
)

// Store is the persistence port the navigator reads at construction and
// writes after every change.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// State is the navigation state. BackStep always equals BackStepFor(Step).
type State struct {
	Step     Step
	BackStep Step
}

// Navigator owns the wizard's navigation state. It is safe for concurrent use.
type Navigator struct {
	mu    sync.Mutex
	store Store
	state State
}

// New seeds a navigator from store. A missing or empty step starts the
// wizard at EntryStep. The back step is derived for the seeded step straight
// away and both keys are written back.
func New(store Store) *Navigator {
	n := &Navigator{store: store}

	step := EntryStep
	if v, ok := n.read(StepKey); ok && v != "" {
		step = Step(v)
	}
	var back Step
	if v, ok := n.read(BackStepKey); ok {
		back = Step(v)
	}
	n.state = State{Step: step, BackStep: back}

	if derived := BackStepFor(step); derived != back {
		logging.Debug(navigatorSubsystem, "stored back step %q re-derived as %q", back, derived)
	}
	n.apply(step)
	return n
}

// State returns a snapshot of the navigation state.
func (n *Navigator) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Step returns the current step.
func (n *Navigator) Step() Step {
	return n.State().Step
}

// BackStep returns the step reached by going back, or "" if there is none.
func (n *Navigator) BackStep() Step {
	return n.State().BackStep
}

// SetStep is the only way to change the navigation state. Unknown steps are
// accepted and render no content. It reports whether the state changed.
func (n *Navigator) SetStep(step Step) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if step == n.state.Step {
		return false
	}
	if !step.Known() {
		logging.Warn(navigatorSubsystem, "moving to unknown step %q", step)
	}
	logging.Debug(navigatorSubsystem, "step %q -> %q", n.state.Step, step)
	n.apply(step)
	return true
}

// Back moves to the back step. It returns the new step and false when the
// current step has nowhere to go back to.
func (n *Navigator) Back() (Step, bool) {
	back := n.BackStep()
	if back == "" {
		return n.Step(), false
	}
	n.SetStep(back)
	return back, true
}

// ObserveConnection applies the auto-advance rule for the given connection
// status and reports whether it moved the wizard.
func (n *Navigator) ObserveConnection(connected bool) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	next, ok := autoAdvance(n.state.Step, connected)
	if !ok {
		return false
	}
	logging.Info(navigatorSubsystem, "account connected, advancing to %s", next)
	n.apply(next)
	return true
}

// apply sets the step, derives the back step and persists both.
// Callers hold n.mu, except New.
func (n *Navigator) apply(step Step) {
	n.state = State{Step: step, BackStep: BackStepFor(step)}
	n.persist()
}

func (n *Navigator) persist() {
	if n.store == nil {
		return
	}
	if err := n.store.Set(StepKey, string(n.state.Step)); err != nil {
		logging.Warn(navigatorSubsystem, "failed to persist %s: %v", StepKey, err)
	}
	if err := n.store.Set(BackStepKey, string(n.state.BackStep)); err != nil {
		logging.Warn(navigatorSubsystem, "failed to persist %s: %v", BackStepKey, err)
	}
}

func (n *Navigator) read(key string) (string, bool) {
	if n.store == nil {
		return "", false
	}
	v, ok, err := n.store.Get(key)
	if err != nil {
		logging.Warn(navigatorSubsystem, "failed to read %s, using default: %v", key, err)
		return "", false
	}
	return v, ok
}
