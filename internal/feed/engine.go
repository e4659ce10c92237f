package feed

import (
	"time"

	"github.com/google/uuid"
	"github.com/rileyhilliard/apex/internal/logger"
	"github.com/rileyhilliard/apex/internal/sched"
)

// Timing holds every delay the engine schedules.
type Timing struct {
	ConnectDelay   time.Duration
	FirstTick      time.Duration
	ReconnectDelay time.Duration
	LagRetry       time.Duration
	BurstDelay     time.Duration
	MinDelay       time.Duration
	MaxDelay       time.Duration
}

// DefaultTiming returns the stock delays.
func DefaultTiming() Timing {
	return Timing{
		ConnectDelay:   2000 * time.Millisecond,
		FirstTick:      500 * time.Millisecond,
		ReconnectDelay: 800 * time.Millisecond,
		LagRetry:       1000 * time.Millisecond,
		BurstDelay:     200 * time.Millisecond,
		MinDelay:       500 * time.Millisecond,
		MaxDelay:       2000 * time.Millisecond,
	}
}

// Odds holds per-tick probabilities.
type Odds struct {
	// LagSpike is the chance a tick simulates a disconnect.
	LagSpike float64
	// Burst is the chance a regular tick schedules the next one after
	// BurstDelay.
	Burst float64
}

// DefaultOdds returns the stock probabilities.
func DefaultOdds() Odds {
	return Odds{LagSpike: 0.05, Burst: 0.3}
}

// Options configures an Engine. Scheduler is required. Zero Seed and Timing
// fall back to the defaults; zero Odds mean no lag spikes and no bursts.
type Options struct {
	Seed      Snapshot
	Timing    Timing
	Odds      Odds
	Scheduler sched.Scheduler
	Rand      Rand
	Sink      Sink
	Logger    logger.Logger

	// Now stamps published updates. Defaults to time.Now.
	Now func() time.Time
}

// Engine drives the simulated feed. The zero value is not usable; create
// one with NewEngine.
type Engine struct {
	seed   Snapshot
	timing Timing
	odds   Odds
	sched  sched.Scheduler
	rand   Rand
	sink   Sink
	log    logger.Logger
	now    func() time.Time

	status  Status
	snap    Snapshot
	ping    int
	seq     uint64
	session string

	// gen is bumped on Start and Stop so callbacks from an earlier run
	// recognise themselves as stale.
	gen uint64

	connectTimer   sched.Timer
	reconnectTimer sched.Timer
	tickTimer      sched.Timer
}

// NewEngine creates an idle engine.
func NewEngine(opts Options) *Engine {
	if opts.Scheduler == nil {
		panic("feed: NewEngine requires a Scheduler")
	}
	if opts.Seed == (Snapshot{}) {
		opts.Seed = DefaultSeed()
	}
	opts.Seed.Deviation = Deviation
	if opts.Timing == (Timing{}) {
		opts.Timing = DefaultTiming()
	}
	if opts.Rand == nil {
		opts.Rand = NewRand(0)
	}
	if opts.Sink == nil {
		opts.Sink = discardSink{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Engine{
		seed:   opts.Seed,
		timing: opts.Timing,
		odds:   opts.Odds,
		sched:  opts.Scheduler,
		rand:   opts.Rand,
		sink:   opts.Sink,
		log:    opts.Logger,
		now:    opts.Now,
		snap:   opts.Seed,
	}
}

// Start begins a new session: the status becomes connecting and the
// handshake timer is armed. Start on a running engine does nothing.
func (e *Engine) Start() {
	if e.status != StatusIdle {
		return
	}
	e.gen++
	e.session = uuid.NewString()
	e.snap = e.seed
	e.ping = 0
	e.seq = 0
	e.log.Info("feed started (session %s)", e.session)

	e.setStatus(StatusConnecting)
	gen := e.gen
	e.connectTimer = e.sched.AfterFunc(e.timing.ConnectDelay, func() {
		if gen != e.gen {
			return
		}
		e.connectTimer = nil
		e.connect()
	})
}

// Stop cancels every pending timer and resets the engine to idle with the
// seed snapshot. Nothing is published after Stop returns. Stop on an idle
// engine does nothing.
func (e *Engine) Stop() {
	if e.status == StatusIdle {
		return
	}
	e.gen++
	e.connectTimer = stopTimer(e.connectTimer)
	e.reconnectTimer = stopTimer(e.reconnectTimer)
	e.tickTimer = stopTimer(e.tickTimer)

	e.log.Info("feed stopped (session %s, %d ticks)", e.session, e.seq)
	e.status = StatusIdle
	e.snap = e.seed
	e.ping = 0
	e.seq = 0
	e.session = ""
}

// Status returns the current connection status.
func (e *Engine) Status() Status {
	return e.status
}

// Snapshot returns a copy of the current metrics.
func (e *Engine) Snapshot() Snapshot {
	return e.snap
}

// State returns the update the engine would publish right now.
func (e *Engine) State() Update {
	return Update{
		Seq:     e.seq,
		Session: e.session,
		Status:  e.status,
		Snap:    e.snap,
		Ping:    e.ping,
		At:      e.now(),
	}
}

// Running reports whether the engine has been started and not stopped.
func (e *Engine) Running() bool {
	return e.status != StatusIdle
}

// connect enters connected and arms a fresh first tick, replacing any tick
// left over from before.
func (e *Engine) connect() {
	e.setStatus(StatusConnected)
	e.scheduleTick(e.timing.FirstTick)
}

func (e *Engine) scheduleTick(d time.Duration) {
	stopTimer(e.tickTimer)
	gen := e.gen
	var t sched.Timer
	t = e.sched.AfterFunc(d, func() {
		if gen != e.gen || e.tickTimer != t {
			return
		}
		e.tickTimer = nil
		e.tick()
	})
	e.tickTimer = t
}

func (e *Engine) tick() {
	if e.status != StatusConnected {
		return
	}

	if e.rand.Float64() > 1-e.odds.LagSpike {
		e.log.Debug("lag spike after tick %d", e.seq)
		e.setStatus(StatusReconnecting)
		gen := e.gen
		e.reconnectTimer = stopTimer(e.reconnectTimer)
		e.reconnectTimer = e.sched.AfterFunc(e.timing.ReconnectDelay, func() {
			if gen != e.gen {
				return
			}
			e.reconnectTimer = nil
			e.connect()
		})
		e.scheduleTick(e.timing.LagRetry)
		return
	}

	e.snap = Next(e.snap, e.rand)
	e.ping = NextPing(e.rand)
	e.seq++
	e.publish()

	e.scheduleTick(e.nextDelay())
}

func (e *Engine) nextDelay() time.Duration {
	if e.rand.Float64() > 1-e.odds.Burst {
		return e.timing.BurstDelay
	}
	span := float64(e.timing.MaxDelay - e.timing.MinDelay)
	return e.timing.MinDelay + time.Duration(e.rand.Float64()*span)
}

func (e *Engine) setStatus(s Status) {
	if e.status == s {
		return
	}
	e.log.Debug("status %s -> %s", e.status, s)
	e.status = s
	e.publish()
}

func (e *Engine) publish() {
	e.sink.Publish(e.State())
}

func stopTimer(t sched.Timer) sched.Timer {
	if t != nil {
		t.Stop()
	}
	return nil
}
