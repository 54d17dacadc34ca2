package testing

import (
	"sync"
	"time"
)

// RecordingSleeper replaces the latency policy's wall-clock sleep.
//
// Sleep returns immediately and remembers the requested delay, so latency tests
// assert on timing without waiting for it.
type RecordingSleeper struct {
	mu     sync.Mutex
	delays []time.Duration
}

// NewRecordingSleeper creates an empty recording sleeper.
//
// Example:
//
//	sleeper := workertest.NewRecordingSleeper()
//	pol := policy.NewLatency(policy.WithSleeper(sleeper.Sleep))
func NewRecordingSleeper() *RecordingSleeper {
	return &RecordingSleeper{}
}

// Sleep records d and returns immediately.
func (s *RecordingSleeper) Sleep(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.delays = append(s.delays, d)
}

// Delays returns the recorded delays in call order.
func (s *RecordingSleeper) Delays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]time.Duration, len(s.delays))
	copy(out, s.delays)

	return out
}

// Total returns the sum of all recorded delays.
func (s *RecordingSleeper) Total() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total time.Duration
	for _, d := range s.delays {
		total += d
	}

	return total
}
