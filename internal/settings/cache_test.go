package settings

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	connected  bool
	squareErr  error
	gatewayErr error
	delay      time.Duration

	squareCalls  int32
	gatewayCalls int32

	// gatewayEntered and gatewayHold, when set, let a test hold a gateway
	// fetch in flight.
	gatewayEntered chan struct{}
	gatewayHold    chan struct{}

	mu           sync.Mutex
	savedSquare  *SquareSettings
	savedGateway GatewaySettings
}

func (f *fakeFetcher) FetchSquare(ctx context.Context) (SquareSettings, error) {
	atomic.AddInt32(&f.squareCalls, 1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.squareErr != nil {
		return SquareSettings{}, f.squareErr
	}
	return SquareSettings{IsConnected: f.connected, Raw: map[string]any{"enable_sandbox": "no"}}, nil
}

func (f *fakeFetcher) FetchGateway(ctx context.Context) (GatewaySettings, error) {
	atomic.AddInt32(&f.gatewayCalls, 1)
	if f.gatewayEntered != nil {
		f.gatewayEntered <- struct{}{}
		<-f.gatewayHold
	}
	if f.gatewayErr != nil {
		return nil, f.gatewayErr
	}
	return GatewaySettings{"enabled": "yes"}, nil
}

func (f *fakeFetcher) SaveSquare(ctx context.Context, s SquareSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.savedSquare = &s
	return nil
}

func (f *fakeFetcher) SaveGateway(ctx context.Context, g GatewaySettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.savedGateway = g
	return nil
}

func TestCache_NotLoadedUntilPrimed(t *testing.T) {
	c := NewCache(&fakeFetcher{connected: true})

	assert.False(t, c.Loaded())
	assert.False(t, c.IsConnected())
	assert.ErrorIs(t, c.SaveSquare(context.Background()), ErrNotLoaded)
	assert.ErrorIs(t, c.SaveGateway(context.Background()), ErrNotLoaded)
	_, err := c.Toggle(GatewayDocument, "enabled")
	assert.ErrorIs(t, err, ErrNotLoaded)

	require.NoError(t, c.Prime(context.Background()))
	assert.True(t, c.Loaded())
	assert.True(t, c.IsConnected())
}

func TestCache_ConcurrentPrimesShareOneFetch(t *testing.T) {
	f := &fakeFetcher{connected: true, delay: 50 * time.Millisecond}
	c := NewCache(f)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, c.Prime(context.Background()))
		}()
	}
	wg.Wait()

	assert.Less(t, atomic.LoadInt32(&f.squareCalls), int32(8))
	assert.True(t, c.IsConnected())
}

func TestCache_FailedPrimeKeepsPreviousValue(t *testing.T) {
	f := &fakeFetcher{connected: true}
	c := NewCache(f)
	require.NoError(t, c.Prime(context.Background()))

	f.squareErr = errors.New("timeout")
	assert.Error(t, c.Prime(context.Background()))
	assert.True(t, c.IsConnected())
}

func TestCache_GatewayFailureStillLoadsSquare(t *testing.T) {
	f := &fakeFetcher{connected: true, gatewayErr: errors.New("forbidden")}
	c := NewCache(f)

	assert.Error(t, c.Prime(context.Background()))
	_, gwLoaded := c.Gateway()
	assert.False(t, gwLoaded)
}

func TestCache_ToggleAndSave(t *testing.T) {
	f := &fakeFetcher{}
	c := NewCache(f)
	require.NoError(t, c.Prime(context.Background()))

	assert.True(t, c.Flag(GatewayDocument, "enabled"))
	next, err := c.Toggle(GatewayDocument, "enabled")
	require.NoError(t, err)
	assert.False(t, next)
	require.NoError(t, c.SaveGateway(context.Background()))
	assert.Equal(t, false, f.savedGateway["enabled"])

	next, err = c.Toggle(SquareDocument, "enable_sandbox")
	require.NoError(t, err)
	assert.True(t, next)
	require.NoError(t, c.SaveSquare(context.Background()))
	require.NotNil(t, f.savedSquare)
	assert.Equal(t, true, f.savedSquare.Raw["enable_sandbox"])
}

func TestCache_ToggleDuringPrimeIsKept(t *testing.T) {
	ctx := context.Background()
	f := &fakeFetcher{}
	c := NewCache(f)
	require.NoError(t, c.Prime(ctx))

	f.gatewayEntered = make(chan struct{})
	f.gatewayHold = make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- c.Prime(ctx) }()
	<-f.gatewayEntered

	next, err := c.Toggle(GatewayDocument, "enabled")
	require.NoError(t, err)
	assert.False(t, next)
	close(f.gatewayHold)
	require.NoError(t, <-done)

	assert.False(t, c.Flag(GatewayDocument, "enabled"), "prime must not undo an unsaved toggle")
	require.NoError(t, c.SaveGateway(ctx))
	assert.Equal(t, false, f.savedGateway["enabled"])

	// Saved edits no longer override the server.
	f.gatewayEntered, f.gatewayHold = nil, nil
	require.NoError(t, c.Prime(ctx))
	assert.True(t, c.Flag(GatewayDocument, "enabled"))
}

func TestCache_SquareEditSurvivesPrime(t *testing.T) {
	ctx := context.Background()
	f := &fakeFetcher{}
	c := NewCache(f)
	require.NoError(t, c.Prime(ctx))

	_, err := c.Toggle(SquareDocument, "enable_sandbox")
	require.NoError(t, err)
	require.NoError(t, c.Prime(ctx))
	assert.True(t, c.Flag(SquareDocument, "enable_sandbox"))
}

func TestCache_SquareReturnsCopy(t *testing.T) {
	c := NewCache(&fakeFetcher{})
	require.NoError(t, c.Prime(context.Background()))

	s, ok := c.Square()
	require.True(t, ok)
	s.Raw["enable_sandbox"] = "yes"
	assert.False(t, c.Flag(SquareDocument, "enable_sandbox"))
}

func TestSquareSettings_MarshalOmitsConnectionFlag(t *testing.T) {
	data, err := json.Marshal(SquareSettings{IsConnected: true, LocationID: "L1", Raw: map[string]any{"is_connected": true}})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.NotContains(t, got, "is_connected")
	assert.Equal(t, "L1", got["location_id"])
}

func TestStatic(t *testing.T) {
	s := NewStatic(true)
	require.NoError(t, s.Prime(context.Background()))
	assert.True(t, s.Loaded())
	assert.True(t, s.IsConnected())

	on, err := s.Toggle(GatewayDocument, "enable_cash_app_pay")
	require.NoError(t, err)
	assert.True(t, on)
	assert.True(t, s.Flag(GatewayDocument, "enable_cash_app_pay"))
	assert.False(t, s.Flag(SquareDocument, "enable_cash_app_pay"))

	require.NoError(t, s.SaveGateway(context.Background()))
	require.NoError(t, s.SaveSquare(context.Background()))
	assert.Equal(t, 2, s.Saves())
}

func TestTruthy(t *testing.T) {
	for _, v := range []any{true, "yes", "1", "true", "on", float64(1)} {
		assert.True(t, truthy(v), "%v", v)
	}
	for _, v := range []any{false, "no", "", nil, float64(0), []any{}} {
		assert.False(t, truthy(v), "%v", v)
	}
}
