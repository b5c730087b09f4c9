package onboarding

// Decorator names the save action appended to a screen.
type Decorator int

const (
	// DecoratorNone leaves the screen as is.
	DecoratorNone Decorator = iota
	// DecoratorGatewaySave saves the payment-gateway settings.
	DecoratorGatewaySave
	// DecoratorSquareSave saves the Square plugin settings.
	DecoratorSquareSave
)

// String implements fmt.Stringer.
func (d Decorator) String() string {
	switch d {
	case DecoratorGatewaySave:
		return "gateway-save"
	case DecoratorSquareSave:
		return "square-save"
	default:
		return "none"
	}
}

// Screen describes what is rendered for a step.
type Screen struct {
	Step      Step
	Component string
	Decorator Decorator
	// NextStep is where a completed save leads. Empty for undecorated
	// screens, which pick their own targets.
	NextStep Step
}

// Decorated reports whether the screen carries a save action.
func (s Screen) Decorated() bool {
	return s.Decorator != DecoratorNone
}

func plain(step Step, component string) Screen {
	return Screen{Step: step, Component: component}
}

func withGatewaySave(step Step, component string) Screen {
	return Screen{Step: step, Component: component, Decorator: DecoratorGatewaySave, NextStep: StepPaymentComplete}
}

func withSquareSave(step Step, component string) Screen {
	return Screen{Step: step, Component: component, Decorator: DecoratorSquareSave, NextStep: StepPaymentComplete}
}

// screenTable is the single step -> screen dispatch table.
var screenTable = map[Step]Screen{
	StepConnect:          plain(StepConnect, "ConnectSetup"),
	StepBusinessLocation: plain(StepBusinessLocation, "BusinessLocation"),
	StepPaymentMethods:   plain(StepPaymentMethods, "PaymentMethods"),
	StepPaymentComplete:  plain(StepPaymentComplete, "PaymentComplete"),
	StepCreditCard:       withGatewaySave(StepCreditCard, "CreditCardSetup"),
	StepDigitalWallets:   withGatewaySave(StepDigitalWallets, "DigitalWalletsSetup"),
	StepGiftCard:         withGatewaySave(StepGiftCard, "GiftCardSetup"),
	StepCashApp:          withGatewaySave(StepCashApp, "CashAppSetup"),
	StepSyncSettings:     withSquareSave(StepSyncSettings, "ConfigureSync"),
	StepAdvancedSettings: withSquareSave(StepAdvancedSettings, "AdvancedSettings"),
	StepSandboxSettings:  withSquareSave(StepSandboxSettings, "SandboxSettings"),
}

// ScreenFor looks up the screen for step. Unknown steps have no screen.
func ScreenFor(step Step) (Screen, bool) {
	s, ok := screenTable[step]
	return s, ok
}

// PaymentMethodSteps are the setup screens reachable from payment-methods.
func PaymentMethodSteps() []Step {
	return []Step{StepCreditCard, StepDigitalWallets, StepGiftCard, StepCashApp}
}

// SettingsModuleSteps are the settings screens reachable from payment-complete.
func SettingsModuleSteps() []Step {
	return []Step{StepSyncSettings, StepAdvancedSettings, StepSandboxSettings}
}
