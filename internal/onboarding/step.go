package onboarding

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStep is returned by ParseStep for identifiers outside the wizard.
var ErrUnknownStep = errors.New("unknown onboarding step")

// Step identifies one screen of the onboarding wizard. Values read back from
// storage are kept verbatim, so a Step may hold an identifier that is not
// one of the known constants.
type Step string

const (
	StepConnect          Step = "connect-square"
	StepBusinessLocation Step = "business-location"
	StepPaymentMethods   Step = "payment-methods"
	StepPaymentComplete  Step = "payment-complete"
	StepCreditCard       Step = "credit-card"
	StepDigitalWallets   Step = "digital-wallets"
	StepGiftCard         Step = "gift-card"
	StepCashApp          Step = "cash-app"
	StepSyncSettings     Step = "sync-settings"
	StepAdvancedSettings Step = "advanced-settings"
	StepSandboxSettings  Step = "sandbox-settings"
)

// EntryStep is where a wizard without stored state starts.
const EntryStep = StepConnect

var allSteps = []Step{
	StepConnect,
	StepBusinessLocation,
	StepPaymentMethods,
	StepPaymentComplete,
	StepCreditCard,
	StepDigitalWallets,
	StepGiftCard,
	StepCashApp,
	StepSyncSettings,
	StepAdvancedSettings,
	StepSandboxSettings,
}

var stepLabels = map[Step]string{
	StepConnect:          "Connect Square",
	StepBusinessLocation: "Business Location",
	StepPaymentMethods:   "Payment Methods",
	StepPaymentComplete:  "Setup Complete",
	StepCreditCard:       "Credit Card",
	StepDigitalWallets:   "Digital Wallets",
	StepGiftCard:         "Gift Cards",
	StepCashApp:          "Cash App Pay",
	StepSyncSettings:     "Sync Settings",
	StepAdvancedSettings: "Advanced Settings",
	StepSandboxSettings:  "Sandbox Settings",
}

// Steps returns the known steps in wizard order.
func Steps() []Step {
	out := make([]Step, len(allSteps))
	copy(out, allSteps)
	return out
}

// ParseStep validates s against the known steps.
func ParseStep(s string) (Step, error) {
	step := Step(strings.TrimSpace(s))
	if !step.Known() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStep, s)
	}
	return step, nil
}

// Known reports whether s is one of the wizard's steps.
func (s Step) Known() bool {
	_, ok := stepLabels[s]
	return ok
}

// String implements fmt.Stringer.
func (s Step) String() string {
	return string(s)
}

// Label is the human-readable name shown in headers and menus.
func (s Step) Label() string {
	if label, ok := stepLabels[s]; ok {
		return label
	}
	return string(s)
}
