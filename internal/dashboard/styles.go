package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/apex/internal/feed"
)

// Dashboard color palette
const (
	ColorDarkBg    = lipgloss.Color("#0A0A0F")
	ColorSurfaceBg = lipgloss.Color("#12121A")
	ColorBorder    = lipgloss.Color("#2A2A4A")

	// Primary is the "live" green, Accent the secondary highlight.
	ColorPrimary = lipgloss.Color("#0BDA54")
	ColorAccent  = lipgloss.Color("#00E5FF")
	ColorAmber   = lipgloss.Color("#FBBF24")

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#D1D5DB")
	ColorTextMuted     = lipgloss.Color("#6B7280")
)

// Layout breakpoints
const (
	BreakpointGrid = 80

	// MaxWidth caps the dashboard so cards do not stretch on wide terminals.
	MaxWidth = 100
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Bold(true)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	CardLabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Bold(true)

	CardValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	PrimaryStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	BodyStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(ColorBorder).
			Foreground(ColorTextMuted).
			Padding(0, 1)
)

// Status glyphs
const (
	GlyphLive    = "●"
	GlyphDimmed  = "○"
	GlyphBullet  = "•"
	GlyphWifi    = "≋"
	GlyphTrophy  = "✦"
	GlyphTrendUp = "↗"
)

// StatusColor returns the banner color for a feed status.
func StatusColor(s feed.Status) lipgloss.Color {
	switch s {
	case feed.StatusConnected:
		return ColorPrimary
	case feed.StatusReconnecting:
		return ColorAmber
	default:
		return ColorTextMuted
	}
}

// StatusStyle returns the banner style for a feed status.
func StatusStyle(s feed.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(StatusColor(s)).Bold(true)
}

// ProgressBar renders a bar of the given width filled to percent.
func ProgressBar(width int, percent float64, color lipgloss.Color) string {
	if width < 1 {
		width = 1
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}

	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("━", filled)) +
		lipgloss.NewStyle().Foreground(ColorBorder).Render(strings.Repeat("─", width-filled))
}

// Gauge renders a compact ring-style gauge: ◔ 70%.
func Gauge(percent int, color lipgloss.Color) string {
	glyphs := []string{"○", "◔", "◑", "◕", "●"}
	idx := percent * (len(glyphs) - 1) / 100
	if idx < 0 {
		idx = 0
	}
	if idx >= len(glyphs) {
		idx = len(glyphs) - 1
	}
	style := lipgloss.NewStyle().Foreground(color).Bold(true)
	return style.Render(glyphs[idx]) + " " + style.Render(fmt.Sprintf("%d%%", percent))
}
