package template

import "sync"

// CounterStore manages the global and named counters behind {counter}
// tokens. It is an explicitly owned object rather than package state, so
// callers decide its lifetime and can persist it between runs.
// It is thread-safe via an internal mutex.
type CounterStore struct {
	mu     sync.Mutex
	global int64
	named  map[string]int64
}

// CounterSnapshot is a serializable copy of counter state.
type CounterSnapshot struct {
	Global int64            `yaml:"global" json:"global"`
	Named  map[string]int64 `yaml:"named,omitempty" json:"named,omitempty"`
}

// NewCounterStore creates a counter store with the global counter at 1
// and no named counters.
func NewCounterStore() *CounterStore {
	return &CounterStore{
		global: 1,
		named:  make(map[string]int64),
	}
}

// NextGlobal returns the current global counter value and then
// increments it.
func (s *CounterStore) NextGlobal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	val := s.global
	s.global++
	return val
}

// Next returns the current value of a named counter and then increments
// it. A counter starts at 1 on first use.
func (s *CounterStore) Next(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.named[name]; !exists {
		s.named[name] = 1
	}
	val := s.named[name]
	s.named[name]++
	return val
}

// Reset puts the global counter back to 1 and drops all named counters.
func (s *CounterStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.global = 1
	s.named = make(map[string]int64)
}

// Snapshot returns a copy of the current counter state.
func (s *CounterStore) Snapshot() CounterSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	named := make(map[string]int64, len(s.named))
	for k, v := range s.named {
		named[k] = v
	}
	return CounterSnapshot{Global: s.global, Named: named}
}

// Restore replaces the counter state with a snapshot. A zero or negative
// global value is normalized to 1 so a fresh or corrupted snapshot never
// stalls the sequence.
func (s *CounterStore) Restore(snap CounterSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.global = snap.Global
	if s.global < 1 {
		s.global = 1
	}
	s.named = make(map[string]int64, len(snap.Named))
	for k, v := range snap.Named {
		s.named[k] = v
	}
}
