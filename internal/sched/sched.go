// Package sched runs fire-once timers on a single goroutine.
//
// Every callback scheduled on a Loop, and every function passed to Do, runs
// on the loop's goroutine one at a time. State owned by those callbacks needs
// no locking as long as it is only touched from the loop.
//
// Cancelling a Timer is final: once Stop returns, the callback will not run,
// even if the underlying clock already fired and the callback is queued.
package sched

import (
	"errors"
	"sync"
	"time"
)

// ErrClosed is returned by Do after the loop has been closed.
var ErrClosed = errors.New("sched: loop closed")

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call prevented the
	// callback from running; stopping a fired or stopped timer is a no-op.
	Stop() bool
}

// Scheduler schedules fire-once callbacks.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Runner is a Scheduler that also executes work on its own goroutine and can
// be shut down.
type Runner interface {
	Scheduler
	// Do runs f on the scheduler goroutine and waits for it to return.
	Do(f func()) error
	// Close cancels every pending timer and releases the goroutine.
	Close()
}

// Timer states
const (
	timerPending = iota
	timerFired
	timerStopped
)

// queueSize bounds how many fired callbacks can wait for the loop.
const queueSize = 64

// Loop is the production Runner backed by the wall clock.
type Loop struct {
	tasks chan func()
	quit  chan struct{}
	done  chan struct{}

	mu      sync.Mutex
	closed  bool
	pending map[*loopTimer]struct{}
}

// NewLoop starts a loop goroutine. Call Close to stop it.
func NewLoop() *Loop {
	l := &Loop{
		tasks:   make(chan func(), queueSize),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
		pending: make(map[*loopTimer]struct{}),
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	defer close(l.done)
	for {
		select {
		case f := <-l.tasks:
			f()
		case <-l.quit:
			return
		}
	}
}

// AfterFunc schedules f to run on the loop after d.
// On a closed loop it returns an already stopped timer.
func (l *Loop) AfterFunc(d time.Duration, f func()) Timer {
	lt := &loopTimer{loop: l, f: f}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		lt.state = timerStopped
		return lt
	}

	l.pending[lt] = struct{}{}
	lt.t = time.AfterFunc(d, lt.enqueue)
	return lt
}

// Do runs f on the loop goroutine and blocks until it returns.
// It must not be called from a loop callback.
func (l *Loop) Do(f func()) error {
	l.mu.Lock()
	closed := l.closed
	l.mu.Unlock()
	if closed {
		return ErrClosed
	}

	finished := make(chan struct{})
	task := func() {
		defer close(finished)
		f()
	}

	select {
	case l.tasks <- task:
	case <-l.quit:
		return ErrClosed
	}

	select {
	case <-finished:
		return nil
	case <-l.done:
		select {
		case <-finished:
			return nil
		default:
			return ErrClosed
		}
	}
}

// Close cancels every pending timer and stops the loop goroutine.
// Calling Close more than once is safe. It must not be called from a loop
// callback.
func (l *Loop) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	for lt := range l.pending {
		lt.state = timerStopped
		lt.t.Stop()
	}
	l.pending = make(map[*loopTimer]struct{})
	l.mu.Unlock()

	close(l.quit)
	<-l.done
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

type loopTimer struct {
	loop  *Loop
	f     func()
	t     *time.Timer
	state int
}

// enqueue runs on the time package's goroutine when the clock fires.
func (lt *loopTimer) enqueue() {
	select {
	case lt.loop.tasks <- lt.fire:
	case <-lt.loop.quit:
	}
}

// fire runs on the loop goroutine.
func (lt *loopTimer) fire() {
	l := lt.loop
	l.mu.Lock()
	if lt.state != timerPending {
		l.mu.Unlock()
		return
	}
	lt.state = timerFired
	delete(l.pending, lt)
	l.mu.Unlock()

	lt.f()
}

func (lt *loopTimer) Stop() bool {
	l := lt.loop
	l.mu.Lock()
	defer l.mu.Unlock()

	if lt.state != timerPending {
		return false
	}
	lt.state = timerStopped
	delete(l.pending, lt)
	if lt.t != nil {
		lt.t.Stop()
	}
	return true
}
