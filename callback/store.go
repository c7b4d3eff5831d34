package callback

import (
	"crypto/subtle"
	"strings"
	"sync"
	"time"

	"github.com/jrsteele09/go-oauth-client/internal/errors"
)

const defaultFlowTimeout = 15 * time.Minute

// Flow records one pending authorization attempt: created when the
// authorization URL is built, claimed when the redirect arrives.
type Flow struct {
	State       string    // State parameter sent on the authorization request
	RedirectURI string    // Redirect URI the code must come back on
	Scope       string    // Scopes requested for this attempt
	CreatedAt   time.Time // When the attempt started
}

// Store keeps pending flows in memory, keyed by hashed state.
// Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	flows   map[string]Flow
	timeout time.Duration
	nowTime func() time.Time
}

// StoreOption defines a function type to modify the Store instance.
type StoreOption func(*Store)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) StoreOption {
	return func(s *Store) {
		s.nowTime = nowFunc
	}
}

// WithFlowTimeout sets how long a pending flow stays claimable.
func WithFlowTimeout(timeout time.Duration) StoreOption {
	return func(s *Store) {
		s.timeout = timeout
	}
}

// NewStore initializes an empty flow store.
func NewStore(options ...StoreOption) *Store {
	store := &Store{
		flows:   map[string]Flow{},
		timeout: defaultFlowTimeout,
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(store)
	}
	return store
}

// Begin registers a pending flow under its state parameter. CreatedAt is
// stamped if the caller left it zero.
func (s *Store) Begin(flow Flow) error {
	if strings.TrimSpace(flow.State) == "" {
		return errors.ErrMissingState
	}
	if flow.CreatedAt.IsZero() {
		flow.CreatedAt = s.nowTime()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.flows[stateHash(flow.State)] = flow
	return nil
}

// Take claims the pending flow for a state parameter. A flow can be taken
// once; unknown, mismatched or expired states fail.
func (s *Store) Take(state string) (Flow, error) {
	if strings.TrimSpace(state) == "" {
		return Flow{}, errors.ErrMissingState
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := stateHash(state)
	flow, ok := s.flows[key]
	if !ok {
		return Flow{}, errors.ErrFlowNotFound
	}
	delete(s.flows, key)

	if subtle.ConstantTimeCompare([]byte(flow.State), []byte(state)) != 1 {
		return Flow{}, errors.ErrStateMismatch
	}
	if s.nowTime().Sub(flow.CreatedAt) > s.timeout {
		return Flow{}, errors.ErrFlowExpired
	}
	return flow, nil
}

// Purge drops every pending flow older than the timeout.
func (s *Store) Purge() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.nowTime().Add(-s.timeout)
	for key, flow := range s.flows {
		if flow.CreatedAt.Before(cutoff) {
			delete(s.flows, key)
		}
	}
}

// Pending returns the number of flows waiting for a redirect.
func (s *Store) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.flows)
}
