// Package onboarding implements the navigator behind the merchant onboarding
// wizard of the Square payment-gateway plugin.
//
// The wizard walks a fixed set of steps (see Steps). A Navigator owns the
// current step and the step reached by going back, persists both through a
// Store after every change, and resolves the current step to a screen
// descriptor through a single declarative table.
//
// # Navigation state
//
// The back step is never set directly. It is derived from the current step
// every time the step changes:
//
//	connect-square, business-location -> ""
//	payment-methods                   -> business-location
//	payment-complete                  -> payment-methods
//	anything else                     -> payment-complete
//
// # Auto-advance
//
// While the wizard sits on the entry step, a connected merchant account moves
// it on to business-location. ObserveConnection applies that rule; its guard
// on the entry step makes repeated observations harmless.
//
// # Screens
//
// Payment-method setup screens and settings-module screens are decorated
// with a save action. Completing the save moves the wizard to
// payment-complete. A step that matches no screen renders only the header.
package onboarding
