package state

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultAlertTimeout is how long an alert stays before REMOVE_ALERT fires.
const DefaultAlertTimeout = 5000 * time.Millisecond

// Store owns the client state. It is safe for concurrent use.
type Store struct {
	mu           sync.Mutex
	state        State
	alertTimeout time.Duration
	timers       map[uuid.UUID]*time.Timer
	listeners    map[int]func(State)
	nextListener int
	closed       bool
}

// Option configures a Store.
type Option func(*Store)

// WithAlertTimeout overrides DefaultAlertTimeout.
func WithAlertTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.alertTimeout = d
		}
	}
}

// NewStore creates a store holding initial.
func NewStore(initial State, opts ...Option) *Store {
	s := &Store{
		state:        initial,
		alertTimeout: DefaultAlertTimeout,
		timers:       make(map[uuid.UUID]*time.Timer),
		listeners:    make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch reduces a into the state and notifies subscribers.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := s.state
	listeners := make([]func(State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
	return next
}

// Subscribe registers fn to run after every dispatch. The returned function
// removes it.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// SetAlert shows an alert and schedules its removal. It returns the alert id.
func (s *Store) SetAlert(msg, alertType string) uuid.UUID {
	id := uuid.New()
	s.Dispatch(Action{Type: SetAlertAction, Payload: Alert{ID: id, Msg: msg, AlertType: alertType}})

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return id
	}
	s.timers[id] = time.AfterFunc(s.alertTimeout, func() { s.expireAlert(id) })
	return id
}

func (s *Store) expireAlert(id uuid.UUID) {
	s.mu.Lock()
	_, pending := s.timers[id]
	delete(s.timers, id)
	closed := s.closed
	s.mu.Unlock()

	if pending && !closed {
		s.Dispatch(Action{Type: RemoveAlertAction, Payload: id})
	}
}

// PendingAlerts reports how many alert removals are scheduled.
func (s *Store) PendingAlerts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Close cancels every pending alert timer. Dispatch keeps working.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}
