package dashboard

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/apex/internal/feed"
	"github.com/stretchr/testify/assert"
)

func TestStatusColor(t *testing.T) {
	assert.Equal(t, ColorPrimary, StatusColor(feed.StatusConnected))
	assert.Equal(t, ColorAmber, StatusColor(feed.StatusReconnecting))
	assert.Equal(t, ColorTextMuted, StatusColor(feed.StatusConnecting))
	assert.Equal(t, ColorTextMuted, StatusColor(feed.StatusIdle))
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		width   int
		percent float64
		want    string
	}{
		{10, 0, "──────────"},
		{10, 50, "━━━━━─────"},
		{10, 100, "━━━━━━━━━━"},
		{10, 150, "━━━━━━━━━━"},
		{10, -5, "──────────"},
		{0, 50, "─"},
	}

	for _, tt := range tests {
		got := ProgressBar(tt.width, tt.percent, ColorAccent)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, max(tt.width, 1), lipgloss.Width(got))
	}
}

func TestGauge(t *testing.T) {
	assert.Equal(t, "◑ 70%", Gauge(70, ColorAccent))
	assert.Equal(t, "○ 0%", Gauge(0, ColorAccent))
	assert.Equal(t, "● 100%", Gauge(100, ColorAccent))
}

func TestSpread(t *testing.T) {
	assert.Equal(t, "a    b", spread("a", "b", 6))
	assert.Equal(t, "ab cd", spread("ab", "cd", 2), "always at least one space")
}
