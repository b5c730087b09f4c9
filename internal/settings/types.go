package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotLoaded is returned when saving a document that was never fetched.
var ErrNotLoaded = errors.New("settings not loaded")

// Source is what the wizard needs from the settings collaborator.
type Source interface {
	// Prime fetches settings into the shared store.
	Prime(ctx context.Context) error
	// Loaded reports whether a prime has succeeded at least once.
	Loaded() bool
	// IsConnected reports the cached connection flag; false until loaded.
	IsConnected() bool
	SaveSquare(ctx context.Context) error
	SaveGateway(ctx context.Context) error
	// Toggle flips a boolean field of the square or gateway document.
	Toggle(doc Document, key string) (bool, error)
	// Flag reads a boolean field of the square or gateway document.
	Flag(doc Document, key string) bool
}

// Document selects one of the two settings documents.
type Document int

const (
	SquareDocument Document = iota
	GatewayDocument
)

// String implements fmt.Stringer.
func (d Document) String() string {
	if d == GatewayDocument {
		return "gateway"
	}
	return "square"
}

// SquareSettings is the Square plugin settings document. Fields the wizard
// does not interpret are kept in Raw and written back unchanged.
type SquareSettings struct {
	IsConnected bool
	Environment string
	LocationID  string
	Raw         map[string]any
}

// UnmarshalJSON decodes the document and keeps unknown fields.
func (s *SquareSettings) UnmarshalJSON(data []byte) error {
	raw := map[string]any{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Raw = raw
	s.IsConnected = truthy(raw["is_connected"])
	s.Environment, _ = raw["environment"].(string)
	s.LocationID, _ = raw["location_id"].(string)
	return nil
}

// MarshalJSON encodes Raw with the typed fields applied on top. The
// connection flag is read-only on the plugin side and never written.
func (s SquareSettings) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Raw)+2)
	for k, v := range s.Raw {
		out[k] = v
	}
	delete(out, "is_connected")
	if s.Environment != "" {
		out["environment"] = s.Environment
	}
	if s.LocationID != "" {
		out["location_id"] = s.LocationID
	}
	return json.Marshal(out)
}

// GatewaySettings is the payment-gateway settings document.
type GatewaySettings map[string]any

// Flag reads key as a boolean.
func (g GatewaySettings) Flag(key string) bool {
	return truthy(g[key])
}

// truthy interprets the loose booleans the plugin stores ("yes", "1", true).
func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch t {
		case "yes", "true", "1", "on":
			return true
		}
	case float64:
		return t != 0
	}
	return false
}

func flag(m map[string]any, key string) bool {
	return truthy(m[key])
}

func toggle(m map[string]any, key string) (map[string]any, bool) {
	if m == nil {
		m = map[string]any{}
	}
	next := !truthy(m[key])
	m[key] = next
	return m, next
}

func notLoaded(doc Document) error {
	return fmt.Errorf("%w: %s settings", ErrNotLoaded, doc)
}
