package onboarding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapStore is a Store backed by a plain map that records every write.
type mapStore struct {
	values map[string]string
	writes []string
	setErr error
	getErr error
}

func newMapStore(kv ...string) *mapStore {
	s := &mapStore{values: map[string]string{}}
	for i := 0; i+1 < len(kv); i += 2 {
		s.values[kv[i]] = kv[i+1]
	}
	return s
}

func (s *mapStore) Get(key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *mapStore) Set(key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	s.writes = append(s.writes, key+"="+value)
	return nil
}

func TestBackStepFor(t *testing.T) {
	tests := []struct {
		step Step
		want Step
	}{
		{StepConnect, ""},
		{StepBusinessLocation, ""},
		{StepPaymentMethods, StepBusinessLocation},
		{StepPaymentComplete, StepPaymentMethods},
		{StepCreditCard, StepPaymentComplete},
		{StepDigitalWallets, StepPaymentComplete},
		{StepGiftCard, StepPaymentComplete},
		{StepCashApp, StepPaymentComplete},
		{StepSyncSettings, StepPaymentComplete},
		{StepAdvancedSettings, StepPaymentComplete},
		{StepSandboxSettings, StepPaymentComplete},
		{Step("bogus-step"), StepPaymentComplete},
	}
	for _, tt := range tests {
		t.Run(string(tt.step), func(t *testing.T) {
			assert.Equal(t, tt.want, BackStepFor(tt.step))
		})
	}
}

func TestBackStepFor_CoversEveryStep(t *testing.T) {
	for _, step := range Steps() {
		back := BackStepFor(step)
		if back != "" {
			assert.True(t, back.Known(), "back step of %s must be a known step", step)
		}
	}
}

func TestNew_FreshStore(t *testing.T) {
	store := newMapStore()
	n := New(store)

	assert.Equal(t, State{Step: StepConnect, BackStep: ""}, n.State())
	assert.Equal(t, "connect-square", store.values[StepKey])
	v, ok := store.values[BackStepKey]
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestNew_EmptyStoredStepUsesEntry(t *testing.T) {
	n := New(newMapStore(StepKey, "", BackStepKey, ""))
	assert.Equal(t, EntryStep, n.Step())
}

func TestNew_SeedsFromStoreAndRederivesBackStep(t *testing.T) {
	store := newMapStore(StepKey, "gift-card", BackStepKey, "business-location")
	n := New(store)

	assert.Equal(t, StepGiftCard, n.Step())
	assert.Equal(t, StepPaymentComplete, n.BackStep())
	assert.Equal(t, "payment-complete", store.values[BackStepKey])
}

func TestNew_StoreReadFailureFallsBack(t *testing.T) {
	store := newMapStore(StepKey, "gift-card")
	store.getErr = errors.New("unreadable")
	n := New(store)

	assert.Equal(t, EntryStep, n.Step())
}

func TestNew_NilStore(t *testing.T) {
	n := New(nil)
	assert.Equal(t, EntryStep, n.Step())
	assert.True(t, n.SetStep(StepPaymentMethods))
}

func TestSetStep_PersistsBothKeys(t *testing.T) {
	store := newMapStore()
	n := New(store)
	store.writes = nil

	require.True(t, n.SetStep(StepPaymentMethods))

	assert.Equal(t, []string{"step=payment-methods", "backStep=business-location"}, store.writes)
	assert.Equal(t, State{Step: StepPaymentMethods, BackStep: StepBusinessLocation}, n.State())
}

func TestSetStep_SameStepIsNoop(t *testing.T) {
	store := newMapStore(StepKey, "payment-methods")
	n := New(store)
	store.writes = nil

	assert.False(t, n.SetStep(StepPaymentMethods))
	assert.Empty(t, store.writes)
}

func TestSetStep_WriteFailureKeepsState(t *testing.T) {
	store := newMapStore()
	n := New(store)
	store.setErr = errors.New("read-only")

	assert.True(t, n.SetStep(StepCashApp))
	assert.Equal(t, StepCashApp, n.Step())
	assert.Equal(t, StepPaymentComplete, n.BackStep())
}

func TestBackStepFollowsEveryTransition(t *testing.T) {
	n := New(newMapStore())
	path := []Step{
		StepBusinessLocation, StepPaymentMethods, StepCreditCard,
		StepPaymentComplete, StepSandboxSettings, StepConnect,
	}
	for _, step := range path {
		n.SetStep(step)
		assert.Equal(t, BackStepFor(step), n.BackStep(), "after moving to %s", step)
	}
}

func TestBack(t *testing.T) {
	n := New(newMapStore(StepKey, "credit-card"))

	step, ok := n.Back()
	require.True(t, ok)
	assert.Equal(t, StepPaymentComplete, step)

	step, ok = n.Back()
	require.True(t, ok)
	assert.Equal(t, StepPaymentMethods, step)

	step, ok = n.Back()
	require.True(t, ok)
	assert.Equal(t, StepBusinessLocation, step)

	step, ok = n.Back()
	assert.False(t, ok)
	assert.Equal(t, StepBusinessLocation, step)
}

func TestObserveConnection_AdvancesOnceAndStays(t *testing.T) {
	store := newMapStore()
	n := New(store)

	assert.True(t, n.ObserveConnection(true))
	assert.Equal(t, StepBusinessLocation, n.Step())
	assert.Equal(t, Step(""), n.BackStep())
	assert.Equal(t, "business-location", store.values[StepKey])

	for i := 0; i < 5; i++ {
		assert.False(t, n.ObserveConnection(true))
		assert.Equal(t, StepBusinessLocation, n.Step())
	}
}

func TestObserveConnection_NotConnectedStaysOnEntry(t *testing.T) {
	n := New(newMapStore())
	for i := 0; i < 5; i++ {
		assert.False(t, n.ObserveConnection(false))
		assert.Equal(t, EntryStep, n.Step())
	}
}

func TestObserveConnection_OnlyFromEntryStep(t *testing.T) {
	n := New(newMapStore(StepKey, "payment-complete"))
	assert.False(t, n.ObserveConnection(true))
	assert.Equal(t, StepPaymentComplete, n.Step())
}

func TestObserveConnection_AfterBackToConnect(t *testing.T) {
	n := New(newMapStore(StepKey, "payment-methods"))
	n.SetStep(StepConnect)

	assert.True(t, n.ObserveConnection(true))
	assert.Equal(t, StepBusinessLocation, n.Step())
}

func TestParseStep(t *testing.T) {
	step, err := ParseStep(" gift-card ")
	require.NoError(t, err)
	assert.Equal(t, StepGiftCard, step)

	_, err = ParseStep("bogus-step")
	assert.ErrorIs(t, err, ErrUnknownStep)
}

func TestStepLabel(t *testing.T) {
	assert.Equal(t, "Cash App Pay", StepCashApp.Label())
	assert.Equal(t, "bogus-step", Step("bogus-step").Label())
	assert.Len(t, Steps(), 11)
}
