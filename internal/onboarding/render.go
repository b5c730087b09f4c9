package onboarding

// Header carries what the header needs: the back target, a title and the
// setter used by its back action.
type Header struct {
	Title    string
	Step     Step
	BackStep Step
	SetStep  func(Step) bool
}

// CanGoBack reports whether the header offers a back action.
func (h Header) CanGoBack() bool {
	return h.BackStep != ""
}

// Frame is one rendering of the wizard: the header is always present, the
// content only when the current step has a screen.
type Frame struct {
	Header  Header
	Content *Screen
	SetStep func(Step) bool
}

// SaveAction is the affordance appended to decorated screens.
type SaveAction struct {
	Decorator Decorator
	NextStep  Step
	SetStep   func(Step) bool
}

// Complete finishes the save by moving to the next step.
func (a SaveAction) Complete() bool {
	return a.SetStep(a.NextStep)
}

// Save returns the save action of the frame's screen, if it is decorated.
func (f Frame) Save() (SaveAction, bool) {
	if f.Content == nil || !f.Content.Decorated() {
		return SaveAction{}, false
	}
	return SaveAction{
		Decorator: f.Content.Decorator,
		NextStep:  f.Content.NextStep,
		SetStep:   f.SetStep,
	}, true
}

// Frame renders the current state under title.
func (n *Navigator) Frame(title string) Frame {
	st := n.State()
	f := Frame{
		Header: Header{
			Title:    title,
			Step:     st.Step,
			BackStep: st.BackStep,
			SetStep:  n.SetStep,
		},
		SetStep: n.SetStep,
	}
	if screen, ok := ScreenFor(st.Step); ok {
		f.Content = &screen
	}
	return f
}
