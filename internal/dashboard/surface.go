package dashboard

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/apex/internal/feed"
)

// Surface runs the dashboard full screen on a terminal.
type Surface struct {
	bridge *Bridge

	program *tea.Program
	ready   func()
}

// SurfaceOptions configures a terminal surface.
type SurfaceOptions struct {
	Input  io.Reader
	Output io.Writer
	// Seed is shown until the first update arrives.
	Seed feed.Snapshot
	// AltScreen switches to the alternate screen buffer.
	AltScreen bool
}

// NewSurface creates the Bubble Tea program for the dashboard. Updates sent
// to Sink before Run is called block until the program starts, so the feed
// should only be started from the ready callback passed to Run.
func NewSurface(opts SurfaceOptions) *Surface {
	s := &Surface{}

	model := NewModel(opts.Seed, s.onReady)

	progOpts := []tea.ProgramOption{}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	s.program = tea.NewProgram(model, progOpts...)
	s.bridge = NewBridge(s.program)
	return s
}

// Name identifies the surface in logs.
func (s *Surface) Name() string {
	return "terminal"
}

// Sink returns the bridge feeding the program.
func (s *Surface) Sink() feed.Sink {
	return s.bridge
}

// Run blocks until the user quits or ctx is cancelled. ready is called once
// the program accepts updates.
func (s *Surface) Run(ctx context.Context, ready func()) error {
	s.ready = ready

	stop := context.AfterFunc(ctx, s.program.Quit)
	defer stop()

	// Run cancels the program context on return, so a Send still in
	// flight from the feed is dropped instead of blocking.
	_, err := s.program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

func (s *Surface) onReady() {
	if s.ready != nil {
		s.ready()
	}
}
