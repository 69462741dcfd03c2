package session

import "time"

// DefaultDebounce is the quiet period before a regeneration runs.
const DefaultDebounce = 300 * time.Millisecond

// Scheduler arms one-shot callbacks. The returned function cancels the
// callback and reports whether it was still pending.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

type clockScheduler struct{}

func (clockScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// State is the orchestrator's debounce state.
type State int

const (
	StateIdle State = iota
	StatePending
)

func (s State) String() string {
	if s == StatePending {
		return "pending"
	}
	return "idle"
}
