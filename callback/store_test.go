package callback_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-oauth-client/callback"
	"github.com/jrsteele09/go-oauth-client/internal/errors"
	"github.com/stretchr/testify/require"
)

const (
	testRedirectURI = "http://localhost:8080/callback"
	testScope       = "openid profile"
)

// TestStore_BeginTake tests the one-time claim of a pending flow
func TestStore_BeginTake(t *testing.T) {
	store := callback.NewStore()
	state := callback.NewState()

	require.NoError(t, store.Begin(callback.Flow{
		State:       state,
		RedirectURI: testRedirectURI,
		Scope:       testScope,
	}))
	require.Equal(t, 1, store.Pending())

	flow, err := store.Take(state)
	require.NoError(t, err)
	require.Equal(t, state, flow.State)
	require.Equal(t, testRedirectURI, flow.RedirectURI)
	require.Equal(t, testScope, flow.Scope)
	require.False(t, flow.CreatedAt.IsZero())
	require.Equal(t, 0, store.Pending())

	// A state can only be claimed once
	_, err = store.Take(state)
	require.ErrorIs(t, err, errors.ErrFlowNotFound)
}

// TestStore_TakeExpired tests that stale flows cannot be claimed
func TestStore_TakeExpired(t *testing.T) {
	currentTime := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	store := callback.NewStore(callback.WithNowTime(func() time.Time { return currentTime }))

	state := callback.NewState()
	require.NoError(t, store.Begin(callback.Flow{State: state}))

	currentTime = currentTime.Add(16 * time.Minute)

	_, err := store.Take(state)
	require.ErrorIs(t, err, errors.ErrFlowExpired)

	// Expired claims still consume the flow
	_, err = store.Take(state)
	require.ErrorIs(t, err, errors.ErrFlowNotFound)
}

// TestStore_FlowTimeout tests the configurable claim window
func TestStore_FlowTimeout(t *testing.T) {
	currentTime := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	store := callback.NewStore(
		callback.WithNowTime(func() time.Time { return currentTime }),
		callback.WithFlowTimeout(time.Hour),
	)

	state := callback.NewState()
	require.NoError(t, store.Begin(callback.Flow{State: state}))

	currentTime = currentTime.Add(45 * time.Minute)

	_, err := store.Take(state)
	require.NoError(t, err)
}

// TestStore_MissingState tests rejection of empty state parameters
func TestStore_MissingState(t *testing.T) {
	store := callback.NewStore()

	err := store.Begin(callback.Flow{State: "  "})
	require.ErrorIs(t, err, errors.ErrMissingState)

	_, err = store.Take("")
	require.ErrorIs(t, err, errors.ErrMissingState)
}

// TestStore_UnknownState tests claiming a state that was never registered
func TestStore_UnknownState(t *testing.T) {
	store := callback.NewStore()

	_, err := store.Take(callback.NewState())
	require.ErrorIs(t, err, errors.ErrFlowNotFound)
}

// TestStore_Purge tests dropping stale flows in bulk
func TestStore_Purge(t *testing.T) {
	currentTime := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	store := callback.NewStore(callback.WithNowTime(func() time.Time { return currentTime }))

	staleState := callback.NewState()
	require.NoError(t, store.Begin(callback.Flow{State: staleState}))

	currentTime = currentTime.Add(20 * time.Minute)
	freshState := callback.NewState()
	require.NoError(t, store.Begin(callback.Flow{State: freshState}))

	store.Purge()
	require.Equal(t, 1, store.Pending())

	_, err := store.Take(freshState)
	require.NoError(t, err)
}
