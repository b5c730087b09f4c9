package onboarding

// BackStepFor derives the back target of step. It is total: every value,
// known or not, maps to exactly one back step.
func BackStepFor(step Step) Step {
	switch step {
	case StepConnect, StepBusinessLocation:
		return ""
	case StepPaymentMethods:
		return StepBusinessLocation
	case StepPaymentComplete:
		return StepPaymentMethods
	default:
		return StepPaymentComplete
	}
}

// autoAdvance is the guarded connect transition. It only fires from the
// entry step, so applying it to its own result is a no-op.
func autoAdvance(step Step, connected bool) (Step, bool) {
	if step != EntryStep || !connected {
		return step, false
	}
	return StepBusinessLocation, true
}
