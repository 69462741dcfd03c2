package testutil

import (
	"sync"
	"time"
)

// FakeScheduler records AfterFunc calls and runs them only when told to.
type FakeScheduler struct {
	mu      sync.Mutex
	pending []*fakeTimer
	armed   int
}

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

// NewFakeScheduler creates an empty scheduler.
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{}
}

// AfterFunc arms a timer and returns its stop function.
func (s *FakeScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &fakeTimer{delay: d, fn: f}
	s.pending = append(s.pending, t)
	s.armed++

	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		if t.stopped || t.fired {
			return false
		}
		t.stopped = true
		return true
	}
}

// Armed returns how many timers were ever armed.
func (s *FakeScheduler) Armed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.armed
}

// Live returns how many timers are armed and neither stopped nor fired.
func (s *FakeScheduler) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.pending {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// LastDelay returns the delay of the most recently armed timer.
func (s *FakeScheduler) LastDelay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return 0
	}
	return s.pending[len(s.pending)-1].delay
}

// FireAll runs every live timer in arming order and returns how many ran.
func (s *FakeScheduler) FireAll() int {
	s.mu.Lock()
	var due []*fakeTimer
	for _, t := range s.pending {
		if !t.stopped && !t.fired {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
	return len(due)
}

// FireStale runs timers that were stopped, simulating a callback that was
// already in flight when Stop was called.
func (s *FakeScheduler) FireStale() int {
	s.mu.Lock()
	var stale []*fakeTimer
	for _, t := range s.pending {
		if t.stopped && !t.fired {
			t.fired = true
			stale = append(stale, t)
		}
	}
	s.mu.Unlock()

	for _, t := range stale {
		t.fn()
	}
	return len(stale)
}
