package testutil

import (
	"testing"
	"time"
)

// Drain reads values from ch until it closes or goes quiet for timeout.
func Drain[T any](t *testing.T, ch <-chan T, timeout time.Duration) []T {
	t.Helper()

	var out []T
	for {
		select {
		case v, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, v)
		case <-time.After(timeout):
			return out
		}
	}
}

// Receive waits for a single value from ch.
func Receive[T any](t *testing.T, ch <-chan T, timeout time.Duration) T {
	t.Helper()

	select {
	case v, ok := <-ch:
		if !ok {
			t.Fatal("channel closed")
		}
		return v
	case <-time.After(timeout):
		t.Fatal("timeout waiting for value")
	}

	var zero T
	return zero
}

// AssertNoValue fails if ch yields a value within timeout.
func AssertNoValue[T any](t *testing.T, ch <-chan T, timeout time.Duration) {
	t.Helper()

	select {
	case v, ok := <-ch:
		if ok {
			t.Fatalf("unexpected value: %v", v)
		}
	case <-time.After(timeout):
	}
}
