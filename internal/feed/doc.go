// Package feed simulates the live metrics feed behind the apex dashboard.
//
// An Engine owns one Snapshot, one Status and the last ping sample. It is
// driven entirely by fire-once timers on a sched.Scheduler:
//
//	idle ──Start──▶ connecting ──2000ms──▶ connected ──lag spike──▶ reconnecting
//	                                          ▲                          │
//	                                          └──────────800ms───────────┘
//
// While connected, each tick either applies Next to the snapshot and
// publishes it, or (5% of ticks) simulates a lag spike that freezes the
// snapshot and drops the status to reconnecting. Every change is published
// to a Sink as an Update value.
//
// Engine methods are not goroutine-safe. Call them from the scheduler's
// goroutine, for example through sched.Loop.Do.
package feed
