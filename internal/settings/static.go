package settings

import (
	"context"
	"sync"
)

// Static is an offline Source with a fixed connection flag. Saves only
// update memory.
type Static struct {
	connected bool

	mu      sync.Mutex
	square  map[string]any
	gateway map[string]any
	saves   int
}

// NewStatic creates a Static source.
func NewStatic(connected bool) *Static {
	return &Static{
		connected: connected,
		square:    map[string]any{},
		gateway:   map[string]any{},
	}
}

func (s *Static) Prime(context.Context) error { return nil }

func (s *Static) Loaded() bool { return true }

func (s *Static) IsConnected() bool { return s.connected }

func (s *Static) SaveSquare(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	return nil
}

func (s *Static) SaveGateway(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	return nil
}

func (s *Static) Toggle(doc Document, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var next bool
	if doc == GatewayDocument {
		s.gateway, next = toggle(s.gateway, key)
	} else {
		s.square, next = toggle(s.square, key)
	}
	return next, nil
}

func (s *Static) Flag(doc Document, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if doc == GatewayDocument {
		return flag(s.gateway, key)
	}
	return flag(s.square, key)
}

// Saves counts the saves performed so far.
func (s *Static) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

var (
	_ Source = (*Static)(nil)
	_ Source = (*Cache)(nil)
)
