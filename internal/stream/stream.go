// Package stream prints feed updates as lines, for pipes and logs where a
// full-screen dashboard cannot run.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/rileyhilliard/apex/internal/errors"
	"github.com/rileyhilliard/apex/internal/feed"
)

// Format selects the line encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatText:
		return Format(s), nil
	default:
		return "", errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown stream format %q", s),
			"Use --format json or --format text")
	}
}

// Options configures a stream surface.
type Options struct {
	Out    io.Writer
	Format Format
	// Count stops the stream after that many updates. Zero streams until
	// the context is cancelled.
	Count int
}

// Surface writes one line per feed update.
type Surface struct {
	mu      sync.Mutex
	out     io.Writer
	format  Format
	limit   int
	written int
	err     error

	done     chan struct{}
	doneOnce sync.Once
}

// New creates a stream surface.
func New(opts Options) *Surface {
	if opts.Format == "" {
		opts.Format = FormatJSON
	}
	return &Surface{
		out:    opts.Out,
		format: opts.Format,
		limit:  opts.Count,
		done:   make(chan struct{}),
	}
}

// Name identifies the surface in logs.
func (s *Surface) Name() string {
	return "stream"
}

// Sink returns the surface itself.
func (s *Surface) Sink() feed.Sink {
	return s
}

// Publish writes u as one line. Updates after the limit, or after a write
// error, are dropped.
func (s *Surface) Publish(u feed.Update) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil || (s.limit > 0 && s.written >= s.limit) {
		return
	}

	if err := s.writeLine(u); err != nil {
		s.err = errors.WrapWithCode(err, errors.ErrRender,
			"Could not write feed update",
			"Check that the output pipe is still open")
		s.finish()
		return
	}

	s.written++
	if s.limit > 0 && s.written >= s.limit {
		s.finish()
	}
}

// Run calls ready and blocks until ctx is cancelled, the update limit is
// reached, or a write fails.
func (s *Surface) Run(ctx context.Context, ready func()) error {
	ready()

	select {
	case <-ctx.Done():
		return nil
	case <-s.done:
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Written returns the number of lines written.
func (s *Surface) Written() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.written
}

func (s *Surface) finish() {
	s.doneOnce.Do(func() { close(s.done) })
}

func (s *Surface) writeLine(u feed.Update) error {
	if s.format == FormatText {
		_, err := fmt.Fprintln(s.out, TextLine(u))
		return err
	}
	return json.NewEncoder(s.out).Encode(u)
}

// TextLine renders u for humans:
//
//	15:04:05.000 LIVE SCALING roi=300.2% leads=50,288 lift=+24.8% cpl=-42.0% confidence=99.2% ±0.4% ping=28ms
func TextLine(u feed.Update) string {
	snap := u.Snap
	return fmt.Sprintf("%s %s roi=%.1f%% leads=%s lift=+%.1f%% cpl=-%.1f%% confidence=%.1f%% ±%.1f%% ping=%dms",
		u.At.Format("15:04:05.000"),
		u.Status.Label(),
		snap.GrowthROI,
		humanize.Comma(snap.TotalLeads),
		snap.ConversionLift,
		snap.CPLReduction,
		snap.Confidence,
		snap.Deviation,
		u.Ping,
	)
}
