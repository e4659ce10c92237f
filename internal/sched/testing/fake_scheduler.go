// Package testing provides a virtual-time scheduler for tests.
package testing

import (
	"sort"
	"time"

	"github.com/rileyhilliard/apex/internal/sched"
)

// FakeTimer is a timer on a FakeScheduler.
type FakeTimer struct {
	s       *FakeScheduler
	due     time.Duration
	seq     int
	f       func()
	fired   bool
	stopped bool
}

// Stop cancels the timer. Stopping a fired or stopped timer is a no-op.
func (t *FakeTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	t.s.remove(t)
	return true
}

// Due returns the virtual time at which the timer fires.
func (t *FakeTimer) Due() time.Duration {
	return t.due
}

// FakeScheduler runs callbacks synchronously as virtual time is advanced.
// It implements sched.Runner. It is not safe for concurrent use; drive it
// from the test goroutine only.
type FakeScheduler struct {
	now     time.Duration
	seq     int
	pending []*FakeTimer
	closed  bool

	// Fired counts callbacks that have run.
	Fired int
}

var _ sched.Runner = (*FakeScheduler)(nil)

// NewFakeScheduler creates a scheduler at virtual time zero.
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{}
}

// AfterFunc schedules f at Now()+d. Timers due at the same instant fire in
// the order they were scheduled.
func (s *FakeScheduler) AfterFunc(d time.Duration, f func()) sched.Timer {
	s.seq++
	t := &FakeTimer{s: s, due: s.now + d, seq: s.seq, f: f}
	if s.closed {
		t.stopped = true
		return t
	}
	s.pending = append(s.pending, t)
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].due != s.pending[j].due {
			return s.pending[i].due < s.pending[j].due
		}
		return s.pending[i].seq < s.pending[j].seq
	})
	return t
}

// Do runs f immediately.
func (s *FakeScheduler) Do(f func()) error {
	if s.closed {
		return sched.ErrClosed
	}
	f()
	return nil
}

// Close stops every pending timer.
func (s *FakeScheduler) Close() {
	s.closed = true
	for _, t := range s.pending {
		t.stopped = true
	}
	s.pending = nil
}

// Closed reports whether Close was called.
func (s *FakeScheduler) Closed() bool {
	return s.closed
}

// Now returns the elapsed virtual time.
func (s *FakeScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of timers waiting to fire.
func (s *FakeScheduler) Pending() int {
	return len(s.pending)
}

// NextDue returns when the next timer fires.
func (s *FakeScheduler) NextDue() (time.Duration, bool) {
	if len(s.pending) == 0 {
		return 0, false
	}
	return s.pending[0].due, true
}

// Step advances to the next timer and fires it. It returns false when
// nothing is pending.
func (s *FakeScheduler) Step() bool {
	if len(s.pending) == 0 {
		return false
	}
	t := s.pending[0]
	s.pending = s.pending[1:]
	s.now = t.due
	t.fired = true
	s.Fired++
	t.f()
	return true
}

// Advance moves virtual time forward by d, firing every timer that comes
// due on the way, including timers scheduled by those callbacks.
// It returns the number of callbacks run.
func (s *FakeScheduler) Advance(d time.Duration) int {
	target := s.now + d
	n := 0
	for len(s.pending) > 0 && s.pending[0].due <= target {
		s.Step()
		n++
	}
	s.now = target
	return n
}

func (s *FakeScheduler) remove(t *FakeTimer) {
	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}
