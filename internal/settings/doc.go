// Package settings is the wizard's view of the payment-gateway plugin's
// settings.
//
// Two documents are involved: the Square plugin settings, which carry the
// is_connected flag the wizard's auto-advance depends on, and the
// payment-gateway settings edited by the payment-method screens. A Client
// reads and writes them over the plugin's REST API. A Cache is the shared
// store the screens read from; Prime fills it and may be called as often as
// needed.
package settings
