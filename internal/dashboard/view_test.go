package dashboard

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/apex/internal/feed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sized(t *testing.T, width int) Model {
	t.Helper()
	m := NewModel(feed.DefaultSeed(), nil)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: width, Height: 40})
	return m
}

func lineWith(view, s string) int {
	for i, line := range strings.Split(view, "\n") {
		if strings.Contains(line, s) {
			return i
		}
	}
	return -1
}

func TestView_Header(t *testing.T) {
	tests := []struct {
		status feed.Status
		label  string
	}{
		{feed.StatusConnecting, "INITIALIZING SOCKET"},
		{feed.StatusConnected, "LIVE SCALING"},
		{feed.StatusReconnecting, "RECONNECTING..."},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			m := sized(t, 100)
			m, _ = send(t, m, UpdateMsg(feed.Update{Session: "s", Status: tt.status, Snap: feed.DefaultSeed()}))
			view := m.View()

			assert.Contains(t, view, "EXPERIMENT ENGINE v2.0")
			assert.Contains(t, view, "PROJECT APEX REAL-TIME")
			assert.Contains(t, view, "ENGINE STATUS")
			assert.Contains(t, view, tt.label)
		})
	}
}

func TestView_Footer(t *testing.T) {
	m := sized(t, 100)

	m, _ = send(t, m, UpdateMsg(feed.Update{Session: "s", Status: feed.StatusConnecting, Snap: feed.DefaultSeed()}))
	assert.Contains(t, m.View(), "Establishing secure connection...")
	assert.NotContains(t, m.View(), "Live feed active")

	m, _ = send(t, m, tickUpdate("s", 1, feed.DefaultSeed()))
	assert.Contains(t, m.View(), "Live feed active (28ms)")
	assert.NotContains(t, m.View(), "Establishing secure connection")

	m, _ = send(t, m, UpdateMsg(feed.Update{Session: "s", Seq: 1, Status: feed.StatusReconnecting, Snap: feed.DefaultSeed(), Ping: 28}))
	assert.Contains(t, m.View(), "Establishing secure connection...")
}

func TestView_KeyHints(t *testing.T) {
	view := sized(t, 100).View()
	assert.Contains(t, view, "quit")
	assert.Contains(t, view, "help")
}

func TestView_Cards(t *testing.T) {
	m := sized(t, 100)
	snap := feed.Snapshot{
		GrowthROI:      300.2,
		TotalLeads:     50288,
		ConversionLift: 24.8,
		CPLReduction:   42.0,
		Confidence:     99.2,
		Deviation:      0.4,
	}
	m, _ = send(t, m, tickUpdate("s", 1, snap))
	view := m.View()

	for _, want := range []string{
		"GROWTH ROI", "300.2%", "+14.2% Week over Week",
		"TOTAL LEADS", "50,288", "Target: 60k", "84%", "Velocity: High Impact",
		"CONVERSION LIFT", "+24.8%", "Confidence", "99.2%", "Deviation", "±0.4%", "STATISTICALLY SIGNIFICANT",
		"CPL REDUCTION", "-42.0%", "70%", "Optimization", "Tier 1 Efficiency", "Lowering acquisition overhead",
		"WINNING STRATEGY", "Variant B-102", "ACTIVE CYCLE",
		"Hyper-personalized landing headlines (+12% lift)",
		"Predictive CTA intent triggers enabled",
		"Zero-latency API middleware integration",
		"Segmented multi-channel attribution model",
	} {
		assert.Contains(t, view, want)
	}
}

func TestView_GridLayout(t *testing.T) {
	view := sized(t, 100).View()

	roi := lineWith(view, "GROWTH ROI")
	require.NotEqual(t, -1, roi)
	assert.Equal(t, roi, lineWith(view, "TOTAL LEADS"))
	assert.Equal(t, lineWith(view, "CONVERSION LIFT"), lineWith(view, "CPL REDUCTION"))
	assert.Greater(t, lineWith(view, "CONVERSION LIFT"), roi)

	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 100)
	}
}

func TestView_NarrowStacksCards(t *testing.T) {
	view := sized(t, 60).View()

	roi := lineWith(view, "GROWTH ROI")
	leads := lineWith(view, "TOTAL LEADS")
	lift := lineWith(view, "CONVERSION LIFT")
	cpl := lineWith(view, "CPL REDUCTION")

	require.NotEqual(t, -1, roi)
	assert.Greater(t, leads, roi)
	assert.Greater(t, lift, leads)
	assert.Greater(t, cpl, lift)

	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 60)
	}
}

func TestView_WideIsCapped(t *testing.T) {
	view := sized(t, 200).View()
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), MaxWidth)
	}
}

func TestView_BeforeWindowSize(t *testing.T) {
	m := NewModel(feed.DefaultSeed(), nil)
	view := m.View()
	assert.Contains(t, view, "OFFLINE")
	assert.Contains(t, view, "50,284")
}

func TestStatusDot_Pulses(t *testing.T) {
	m := sized(t, 100)
	m, _ = send(t, m, tickUpdate("s", 1, feed.DefaultSeed()))

	m.pulse = false
	assert.Equal(t, GlyphLive, m.statusDot())
	m.pulse = true
	assert.Equal(t, GlyphDimmed, m.statusDot())

	m, _ = send(t, m, UpdateMsg(feed.Update{Session: "s", Seq: 1, Status: feed.StatusReconnecting}))
	assert.Equal(t, GlyphLive, m.statusDot(), "only the live state pulses")
}
