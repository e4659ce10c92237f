package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/apex/internal/feed"
)

// UpdateMsg carries one feed update into the program.
type UpdateMsg feed.Update

// pulseMsg drives the "live" dot animation.
type pulseMsg time.Time

// pulseInterval is half the period of the live dot pulse.
const pulseInterval = time.Second

// SpinnerFrames is the animation used while the feed is not connected.
var SpinnerFrames = spinner.Spinner{
	Frames: []string{"◐", "◓", "◑", "◒"},
	FPS:    time.Second / 10,
}

// Model is the Bubble Tea model for the metrics dashboard.
type Model struct {
	update  feed.Update
	history *History
	keys    KeyMap
	help    help.Model
	spinner spinner.Model

	width    int
	height   int
	showHelp bool
	quitting bool
	pulse    bool

	// ready is called once the program is running and can receive
	// UpdateMsg values.
	ready func()
}

// NewModel creates a dashboard showing seed until the first update.
// ready may be nil.
func NewModel(seed feed.Snapshot, ready func()) Model {
	sp := spinner.New()
	sp.Spinner = SpinnerFrames
	sp.Style = lipgloss.NewStyle().Foreground(ColorTextMuted)

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(ColorTextSecondary).Bold(true)
	h.Styles.ShortDesc = MutedStyle
	h.Styles.ShortSeparator = MutedStyle

	m := Model{
		update:  feed.Update{Snap: seed},
		history: NewHistory(DefaultHistorySize),
		keys:    DefaultKeyMap(),
		help:    h,
		spinner: sp,
		ready:   ready,
	}
	m.history.Push(seed.GrowthROI, seed.TotalLeads, seed.ConversionLift)
	return m
}

// Init starts the animations and reports the program as ready.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, pulseCmd()}
	if m.ready != nil {
		ready := m.ready
		cmds = append(cmds, func() tea.Msg {
			ready()
			return nil
		})
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case UpdateMsg:
		m.apply(feed.Update(msg))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pulseMsg:
		m.pulse = !m.pulse
		return m, pulseCmd()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderDashboard()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.Close):
		m.showHelp = false
	}
	return m, nil
}

// apply records an update. A new session restarts the history from its
// seed snapshot; each new tick appends one sample.
func (m *Model) apply(u feed.Update) {
	prev := m.update
	m.update = u

	if u.Session != prev.Session {
		m.history.Reset()
		m.history.Push(u.Snap.GrowthROI, u.Snap.TotalLeads, u.Snap.ConversionLift)
		return
	}
	if u.Seq != prev.Seq {
		m.history.Push(u.Snap.GrowthROI, u.Snap.TotalLeads, u.Snap.ConversionLift)
	}
}

// Status returns the last known feed status.
func (m Model) Status() feed.Status {
	return m.update.Status
}

// Snapshot returns the metrics currently on screen.
func (m Model) Snapshot() feed.Snapshot {
	return m.update.Snap
}

// Ping returns the last ping sample.
func (m Model) Ping() int {
	return m.update.Ping
}

// ShowingHelp reports whether the help overlay is open.
func (m Model) ShowingHelp() bool {
	return m.showHelp
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

func pulseCmd() tea.Cmd {
	return tea.Tick(pulseInterval, func(t time.Time) tea.Msg {
		return pulseMsg(t)
	})
}
