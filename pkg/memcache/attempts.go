// pkg/memcache/attempts.go
package mem

import (
	"sync"
	"time"
)

// AttemptStore counts authentication attempts per client origin inside a
// sliding window. Entries expire by time; nothing clears them explicitly.
type AttemptStore interface {
	// Allow records an attempt for key and reports whether it still fits
	// inside the window budget. A rejected attempt is not recorded.
	Allow(key string) bool

	// Remaining returns how many attempts are left for key right now.
	Remaining(key string) int
}

type attemptStore struct {
	mu          sync.Mutex
	window      time.Duration
	maxAttempts int
	attempts    map[string][]time.Time
}

func NewAttemptStore(window time.Duration, maxAttempts int) AttemptStore {
	return &attemptStore{
		window:      window,
		maxAttempts: maxAttempts,
		attempts:    make(map[string][]time.Time),
	}
}

func (s *attemptStore) Allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	kept := s.prune(key, now)
	if len(kept) >= s.maxAttempts {
		return false
	}
	s.attempts[key] = append(kept, now)
	return true
}

func (s *attemptStore) Remaining(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	left := s.maxAttempts - len(s.prune(key, time.Now()))
	if left < 0 {
		return 0
	}
	return left
}

// prune drops attempts that slid out of the window. Caller holds the lock.
func (s *attemptStore) prune(key string, now time.Time) []time.Time {
	cutoff := now.Add(-s.window)
	kept := s.attempts[key][:0]
	for _, t := range s.attempts[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		delete(s.attempts, key) // cleanup idle origins
		return nil
	}
	s.attempts[key] = kept
	return kept
}
