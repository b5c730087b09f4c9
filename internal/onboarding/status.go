package onboarding

// Status describes the navigation state for the CLI and MCP surfaces.
type Status struct {
	Step      Step   `json:"step"`
	Label     string `json:"label"`
	Known     bool   `json:"known"`
	BackStep  Step   `json:"backStep"`
	Component string `json:"component,omitempty"`
	Decorated bool   `json:"decorated"`
	Decorator string `json:"decorator,omitempty"`
	NextStep  Step   `json:"nextStep,omitempty"`
}

// Status returns a description of the current state.
func (n *Navigator) Status() Status {
	st := n.State()
	return describe(st.Step, st.BackStep)
}

// Describe returns the status a navigator would report after moving to step.
func Describe(step Step) Status {
	return describe(step, BackStepFor(step))
}

func describe(step, back Step) Status {
	out := Status{
		Step:     step,
		Label:    step.Label(),
		Known:    step.Known(),
		BackStep: back,
	}
	if screen, ok := ScreenFor(step); ok {
		out.Component = screen.Component
		out.Decorated = screen.Decorated()
		if screen.Decorated() {
			out.Decorator = screen.Decorator.String()
			out.NextStep = screen.NextStep
		}
	}
	return out
}
