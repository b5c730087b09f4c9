package model

import (
	"onboardctl/internal/onboarding"
	"onboardctl/internal/settings"
)

// MenuItem is one choice on an undecorated screen. An item without a
// target finishes the wizard.
type MenuItem struct {
	Label  string
	Target onboarding.Step
}

// ToggleSpec is one boolean setting edited on a decorated screen.
type ToggleSpec struct {
	Label string
	Doc   settings.Document
	Key   string
}

// ScreenSpec is the terminal rendition of a step screen.
type ScreenSpec struct {
	Intro   string
	Menu    []MenuItem
	Toggles []ToggleSpec
}

// Items is the number of selectable rows on the screen.
func (s ScreenSpec) Items() int {
	return len(s.Menu) + len(s.Toggles)
}

func gatewayToggle(label, key string) ToggleSpec {
	return ToggleSpec{Label: label, Doc: settings.GatewayDocument, Key: key}
}

func squareToggle(label, key string) ToggleSpec {
	return ToggleSpec{Label: label, Doc: settings.SquareDocument, Key: key}
}

func stepItems(steps []onboarding.Step) []MenuItem {
	items := make([]MenuItem, 0, len(steps))
	for _, s := range steps {
		items = append(items, MenuItem{Label: s.Label(), Target: s})
	}
	return items
}

var screenSpecs = map[string]ScreenSpec{
	"ConnectSetup": {
		Intro: "Connect your Square account to start taking payments.\n" +
			"Open the connect page in your browser and authorize the plugin.\n" +
			"This screen moves on by itself once the account is connected.",
	},
	"BusinessLocation": {
		Intro: "Choose the Square business location that receives your online orders.",
		Menu: []MenuItem{
			{Label: "Continue to payment methods", Target: onboarding.StepPaymentMethods},
		},
	},
	"PaymentMethods": {
		Intro: "Pick a payment method to set up, or continue when you are done.",
		Menu: append(stepItems(onboarding.PaymentMethodSteps()),
			MenuItem{Label: "Continue", Target: onboarding.StepPaymentComplete}),
	},
	"PaymentComplete": {
		Intro: "Your payment methods are ready. Review the plugin settings or finish.",
		Menu: append(stepItems(onboarding.SettingsModuleSteps()),
			MenuItem{Label: "Finish"}),
	},
	"CreditCardSetup": {
		Intro: "Accept Visa, Mastercard, American Express and Discover.",
		Toggles: []ToggleSpec{
			gatewayToggle("Enable credit card payments", "enabled"),
			gatewayToggle("Charge immediately (no authorize-only)", "enable_paid_capture"),
		},
	},
	"DigitalWalletsSetup": {
		Intro: "Offer Apple Pay and Google Pay at checkout.",
		Toggles: []ToggleSpec{
			gatewayToggle("Enable digital wallets", "enable_digital_wallets"),
		},
	},
	"GiftCardSetup": {
		Intro: "Let shoppers redeem Square gift cards.",
		Toggles: []ToggleSpec{
			gatewayToggle("Enable gift cards", "enable_gift_cards"),
		},
	},
	"CashAppSetup": {
		Intro: "Accept Cash App Pay.",
		Toggles: []ToggleSpec{
			gatewayToggle("Enable Cash App Pay", "enable_cash_app_pay"),
		},
	},
	"ConfigureSync": {
		Intro: "Keep products and inventory in sync with Square.",
		Toggles: []ToggleSpec{
			squareToggle("Sync products and inventory", "enable_inventory_sync"),
		},
	},
	"AdvancedSettings": {
		Intro: "Advanced plugin behavior.",
		Toggles: []ToggleSpec{
			squareToggle("Enable debug logging", "debug_logging_enabled"),
			squareToggle("Send customer details to Square", "enable_customer_decline_messages"),
		},
	},
	"SandboxSettings": {
		Intro: "Test payments against the Square sandbox.",
		Toggles: []ToggleSpec{
			squareToggle("Enable sandbox mode", "enable_sandbox"),
		},
	},
}

// SpecFor returns the terminal rendition of screen.
func SpecFor(screen onboarding.Screen) ScreenSpec {
	return screenSpecs[screen.Component]
}
