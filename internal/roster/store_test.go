package roster_test

import (
	"fmt"
	"sync"
	"testing"

	"activities-service/internal/roster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStore() *roster.Store {
	return roster.NewStore(map[string]roster.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Math Club": {
			Description:     "Solve challenging problems",
			Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 10,
			Participants:    []string{"james@mergington.edu"},
		},
	})
}

func TestStore_ListIsSnapshot(t *testing.T) {
	store := seedStore()

	out := store.List()
	require.Len(t, out, 2)

	// mutating the snapshot must not leak into the store
	chess := out["Chess Club"]
	chess.Participants[0] = "tampered@mergington.edu"

	again, err := store.Get("Chess Club")
	require.NoError(t, err)
	assert.Equal(t, "michael@mergington.edu", again.Participants[0])
}

func TestStore_SignupAppends(t *testing.T) {
	store := seedStore()

	err := store.Signup("Chess Club", "new@mergington.edu")
	require.NoError(t, err)

	a, err := store.Get("Chess Club")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"michael@mergington.edu",
		"daniel@mergington.edu",
		"new@mergington.edu",
	}, a.Participants, "insertion order preserved")
}

func TestStore_SignupDuplicateIsNoOp(t *testing.T) {
	store := seedStore()

	err := store.Signup("Chess Club", "michael@mergington.edu")
	assert.ErrorIs(t, err, roster.ErrAlreadyEnrolled)

	a, err := store.Get("Chess Club")
	require.NoError(t, err)
	assert.Len(t, a.Participants, 2, "failed signup must not mutate the list")
}

func TestStore_SignupUnknownActivity(t *testing.T) {
	store := seedStore()

	err := store.Signup("Knitting Circle", "new@mergington.edu")
	assert.ErrorIs(t, err, roster.ErrActivityNotFound)
}

func TestStore_SignupIgnoresCapacity(t *testing.T) {
	store := roster.NewStore(map[string]roster.Activity{
		"Tiny Club": {MaxParticipants: 1, Participants: []string{"a@mergington.edu"}},
	})

	// MaxParticipants is advertised only; overflow is allowed.
	require.NoError(t, store.Signup("Tiny Club", "b@mergington.edu"))
	require.NoError(t, store.Signup("Tiny Club", "c@mergington.edu"))

	a, err := store.Get("Tiny Club")
	require.NoError(t, err)
	assert.Len(t, a.Participants, 3)
}

func TestStore_UnregisterRemovesByValue(t *testing.T) {
	store := seedStore()

	err := store.Unregister("Chess Club", "michael@mergington.edu")
	require.NoError(t, err)

	a, err := store.Get("Chess Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"daniel@mergington.edu"}, a.Participants)

	err = store.Unregister("Chess Club", "michael@mergington.edu")
	assert.ErrorIs(t, err, roster.ErrNotEnrolled)
}

func TestStore_UnregisterUnknownActivity(t *testing.T) {
	store := seedStore()

	err := store.Unregister("Knitting Circle", "michael@mergington.edu")
	assert.ErrorIs(t, err, roster.ErrActivityNotFound)
}

func TestStore_SignupUnregisterRoundTrip(t *testing.T) {
	store := seedStore()

	before, err := store.Get("Chess Club")
	require.NoError(t, err)

	require.NoError(t, store.Signup("Chess Club", "new@mergington.edu"))
	require.NoError(t, store.Unregister("Chess Club", "new@mergington.edu"))

	after, err := store.Get("Chess Club")
	require.NoError(t, err)
	assert.Equal(t, before.Participants, after.Participants,
		"round trip must leave the list identical, same order")
}

func TestStore_ConcurrentSignups(t *testing.T) {
	store := roster.NewStore(map[string]roster.Activity{
		"Big Club": {MaxParticipants: 200},
	})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_ = store.Signup("Big Club", fmt.Sprintf("s%d@mergington.edu", idx))
		}(i)
	}
	wg.Wait()

	a, err := store.Get("Big Club")
	require.NoError(t, err)
	assert.Len(t, a.Participants, 100, "no lost updates under concurrent signup")
}
