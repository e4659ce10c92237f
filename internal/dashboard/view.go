package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/apex/internal/feed"
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	width := m.contentWidth()

	var b strings.Builder
	b.WriteString(m.renderHeader(width))
	b.WriteString("\n")
	b.WriteString(m.renderCards(width))
	b.WriteString("\n")
	b.WriteString(m.renderFooter(width))
	return b.String()
}

// contentWidth is the usable width, capped at MaxWidth. Before the first
// WindowSizeMsg the grid breakpoint is assumed.
func (m Model) contentWidth() int {
	switch {
	case m.width <= 0:
		return BreakpointGrid
	case m.width > MaxWidth:
		return MaxWidth
	default:
		return m.width
	}
}

func (m Model) renderHeader(width int) string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("EXPERIMENT ENGINE ")+VersionStyle.Render("v2.0"),
		SubtitleStyle.Render("PROJECT APEX REAL-TIME"),
	)

	status := m.update.Status
	right := lipgloss.JoinVertical(lipgloss.Right,
		SubtitleStyle.Render("ENGINE STATUS"),
		m.statusDot()+" "+StatusStyle(status).Render(status.Label()),
	)

	// HeaderStyle pads one column each side.
	return HeaderStyle.Render(spread(left, right, width-2))
}

// statusDot pulses while connected and is solid otherwise.
func (m Model) statusDot() string {
	status := m.update.Status
	glyph := GlyphLive
	if status == feed.StatusConnected && m.pulse {
		glyph = GlyphDimmed
	}
	return lipgloss.NewStyle().Foreground(StatusColor(status)).Render(glyph)
}

// renderCards lays out the metric cards: a 2x2 grid plus a full-width
// strategy card, or a single column on narrow terminals.
func (m Model) renderCards(width int) string {
	metrics := []func(int) string{
		m.growthCard,
		m.leadsCard,
		m.liftCard,
		m.cplCard,
	}

	if width < BreakpointGrid {
		inner := cardInnerWidth(width)
		var rows []string
		for _, card := range metrics {
			rows = append(rows, cardRow(inner, card(inner)))
		}
		rows = append(rows, cardRow(inner, m.strategyCard(inner)))
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	// Two bordered cards and a one-column gutter share the width.
	half := cardInnerWidth((width - 1) / 2)
	full := cardInnerWidth(width)
	return lipgloss.JoinVertical(lipgloss.Left,
		cardRow(half, m.growthCard(half), m.leadsCard(half)),
		cardRow(half, m.liftCard(half), m.cplCard(half)),
		cardRow(full, m.strategyCard(full)),
	)
}

func (m Model) renderFooter(width int) string {
	var left string
	if m.update.Status == feed.StatusConnected {
		left = PrimaryStyle.Render(GlyphWifi) + " " +
			MutedStyle.Italic(true).Render(fmt.Sprintf("Live feed active (%dms)", m.update.Ping))
	} else {
		left = m.spinner.View() + " " +
			MutedStyle.Italic(true).Render("Establishing secure connection...")
	}

	return FooterStyle.Render(spread(left, m.help.View(m.keys), width-2))
}

// cardInnerWidth converts an outer card width to the content width left
// after the border and horizontal padding.
func cardInnerWidth(outer int) int {
	inner := outer - 4
	if inner < 10 {
		inner = 10
	}
	return inner
}

// cardRow renders bodies as equal-height cards side by side.
func cardRow(inner int, bodies ...string) string {
	height := 0
	for _, body := range bodies {
		if h := lipgloss.Height(body); h > height {
			height = h
		}
	}

	cards := make([]string, 0, len(bodies)*2)
	for i, body := range bodies {
		if i > 0 {
			cards = append(cards, " ")
		}
		cards = append(cards, CardStyle.Width(inner+2).Height(height).Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// spread places left and right at opposite ends of width columns.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right)
}
