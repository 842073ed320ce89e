package roster

import (
	"errors"
	"sync"
)

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadyEnrolled  = errors.New("student is already signed up")
	ErrNotEnrolled      = errors.New("student is not signed up for this activity")
)

// Store holds the full activity catalog in memory. The set of
// activities is fixed at construction; only participant lists mutate.
type Store struct {
	mu         sync.RWMutex
	activities map[string]Activity
}

// NewStore copies the seed catalog so the caller's map stays untouched.
func NewStore(seed map[string]Activity) *Store {
	activities := make(map[string]Activity, len(seed))
	for name, a := range seed {
		activities[name] = a.clone()
	}
	return &Store{activities: activities}
}

// List returns a snapshot of every activity. Mutating the result does
// not affect the store.
func (s *Store) List() map[string]Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Activity, len(s.activities))
	for name, a := range s.activities {
		out[name] = a.clone()
	}
	return out
}

// Get returns a snapshot of one activity.
func (s *Store) Get(name string) (Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[name]
	if !ok {
		return Activity{}, ErrActivityNotFound
	}
	return a.clone(), nil
}

// Signup appends email to the activity's participant list.
// Capacity is deliberately not checked against MaxParticipants.
func (s *Store) Signup(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return ErrActivityNotFound
	}

	for _, p := range a.Participants {
		if p == email {
			return ErrAlreadyEnrolled
		}
	}

	a.Participants = append(a.Participants, email)
	s.activities[name] = a
	return nil
}

// Unregister removes email from the activity's participant list,
// preserving the order of the remaining participants.
func (s *Store) Unregister(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return ErrActivityNotFound
	}

	for i, p := range a.Participants {
		if p == email {
			a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
			s.activities[name] = a
			return nil
		}
	}

	return ErrNotEnrolled
}
