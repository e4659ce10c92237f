// Package mount attaches the metrics feed to a display surface.
//
// An App mounts exactly once. Mount builds the event loop and engine, runs
// the surface, starts the feed when the surface reports it is ready, and
// tears everything down when the surface returns.
package mount

import (
	"context"
	"os"
	"sync/atomic"

	"github.com/rileyhilliard/apex/internal/config"
	"github.com/rileyhilliard/apex/internal/errors"
	"github.com/rileyhilliard/apex/internal/feed"
	"github.com/rileyhilliard/apex/internal/logger"
	"github.com/rileyhilliard/apex/internal/sched"
	"golang.org/x/term"
)

// Surface is something the dashboard can be drawn on.
type Surface interface {
	// Name identifies the surface in logs.
	Name() string
	// Sink receives every feed update.
	Sink() feed.Sink
	// Run blocks until the surface closes. It must call ready once it can
	// accept updates.
	Run(ctx context.Context, ready func()) error
}

// Options configures an App.
type Options struct {
	Config *config.Config
	Logger logger.Logger

	// NewRunner creates the event loop. Defaults to sched.NewLoop.
	NewRunner func() sched.Runner
	// Rand overrides the random source built from Config.RandomSeed.
	Rand feed.Rand
}

// App owns one mounted dashboard.
type App struct {
	cfg       *config.Config
	log       logger.Logger
	newRunner func() sched.Runner
	rand      feed.Rand

	mounted atomic.Bool
}

// New creates an App. A nil config uses the defaults.
func New(opts Options) *App {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Default()
	}
	if opts.NewRunner == nil {
		opts.NewRunner = func() sched.Runner { return sched.NewLoop() }
	}
	if opts.Rand == nil {
		opts.Rand = feed.NewRand(opts.Config.RandomSeed)
	}
	return &App{
		cfg:       opts.Config,
		log:       opts.Logger,
		newRunner: opts.NewRunner,
		rand:      opts.Rand,
	}
}

// Mount runs the dashboard on surface until it closes. A nil surface fails
// immediately. Mount may succeed at most once per App.
func (a *App) Mount(ctx context.Context, surface Surface) error {
	if surface == nil {
		return errors.New(errors.ErrMount,
			"Could not find a display surface to mount to",
			"Run apex in a terminal, or use 'apex stream' to print updates as lines")
	}
	if !a.mounted.CompareAndSwap(false, true) {
		return errors.New(errors.ErrMount,
			"Dashboard is already mounted",
			"Create a new App for each dashboard")
	}

	var published atomic.Int64
	counter := feed.SinkFunc(func(feed.Update) { published.Add(1) })

	loop := a.newRunner()
	engine := feed.NewEngine(EngineOptions(a.cfg, loop, a.rand, feed.Tee(surface.Sink(), counter), a.log))

	a.log.Info("mounting dashboard on %s surface", surface.Name())
	ready := func() {
		if err := loop.Do(engine.Start); err != nil {
			a.log.Warn("feed not started: %v", err)
		}
	}

	runErr := surface.Run(ctx, ready)

	// Stop before Close so every timer is cancelled on the loop goroutine.
	_ = loop.Do(engine.Stop)
	loop.Close()
	a.log.Info("dashboard unmounted from %s surface after %d updates", surface.Name(), published.Load())

	if runErr != nil {
		return errors.WrapWithCode(runErr, errors.ErrRender,
			"Dashboard surface failed",
			"Check that the terminal supports full-screen programs, or use 'apex stream'")
	}
	return nil
}

// Mounted reports whether Mount has been called.
func (a *App) Mounted() bool {
	return a.mounted.Load()
}

// EngineOptions maps config onto feed engine options.
func EngineOptions(cfg *config.Config, s sched.Scheduler, r feed.Rand, sink feed.Sink, log logger.Logger) feed.Options {
	return feed.Options{
		Seed: feed.Snapshot{
			GrowthROI:      cfg.Seed.GrowthROI,
			TotalLeads:     cfg.Seed.TotalLeads,
			ConversionLift: cfg.Seed.ConversionLift,
			CPLReduction:   cfg.Seed.CPLReduction,
			Confidence:     cfg.Seed.Confidence,
			Deviation:      feed.Deviation,
		},
		Timing: feed.Timing{
			ConnectDelay:   cfg.Timing.ConnectDelay,
			FirstTick:      cfg.Timing.FirstTick,
			ReconnectDelay: cfg.Timing.ReconnectDelay,
			LagRetry:       cfg.Timing.LagRetry,
			BurstDelay:     cfg.Timing.BurstDelay,
			MinDelay:       cfg.Timing.MinDelay,
			MaxDelay:       cfg.Timing.MaxDelay,
		},
		Odds: feed.Odds{
			LagSpike: cfg.Odds.LagSpike,
			Burst:    cfg.Odds.Burst,
		},
		Scheduler: s,
		Rand:      r,
		Sink:      sink,
		Logger:    log,
	}
}

// Seed returns the configured starting snapshot.
func Seed(cfg *config.Config) feed.Snapshot {
	return EngineOptions(cfg, nil, nil, nil, nil).Seed
}

// Terminal returns f when it is attached to a terminal, nil otherwise.
func Terminal(f *os.File) *os.File {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	return f
}
