package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Fixed copy shown on the cards.
const (
	leadsTarget     = "Target: 60k"
	leadsProgress   = 84
	cplGauge        = 70
	strategyVariant = "Variant B-102"
)

var strategyPoints = []struct {
	label   string
	primary bool
}{
	{"Hyper-personalized landing headlines (+12% lift)", true},
	{"Predictive CTA intent triggers enabled", true},
	{"Zero-latency API middleware integration", false},
	{"Segmented multi-channel attribution model", false},
}

func (m Model) growthCard(width int) string {
	snap := m.update.Snap
	return lines(
		cardTitle("GROWTH ROI", PrimaryStyle.Render("▮▮"), width),
		CardValueStyle.Render(fmt.Sprintf("%.1f%%", snap.GrowthROI)),
		RenderSparkline(m.history.ROI(width), width, ColorBorder, ColorPrimary),
		PrimaryStyle.Render(GlyphTrendUp+" +14.2% Week over Week"),
	)
}

func (m Model) leadsCard(width int) string {
	snap := m.update.Snap
	return lines(
		cardTitle("TOTAL LEADS", AccentStyle.Render("⚇"), width),
		CardValueStyle.Render(humanize.Comma(snap.TotalLeads)),
		spread(MutedStyle.Render(leadsTarget), MutedStyle.Render(fmt.Sprintf("%d%%", leadsProgress)), width),
		ProgressBar(width, leadsProgress, ColorAccent),
		AccentStyle.Render("Velocity: High Impact"),
	)
}

func (m Model) liftCard(width int) string {
	snap := m.update.Snap
	return lines(
		cardTitle("CONVERSION LIFT", PrimaryStyle.Render("◎"), width),
		CardValueStyle.Render(fmt.Sprintf("+%.1f%%", snap.ConversionLift)),
		spread(MutedStyle.Render("Confidence"), MutedStyle.Render("Deviation"), width),
		spread(
			PrimaryStyle.Render(fmt.Sprintf("%.1f%%", snap.Confidence)),
			BodyStyle.Bold(true).Render(fmt.Sprintf("±%.1f%%", snap.Deviation)),
			width,
		),
		PrimaryStyle.Render("✓ STATISTICALLY SIGNIFICANT"),
	)
}

func (m Model) cplCard(width int) string {
	snap := m.update.Snap
	gauge := lipgloss.JoinHorizontal(lipgloss.Top,
		Gauge(cplGauge, ColorAccent),
		"  ",
		lipgloss.JoinVertical(lipgloss.Left,
			TitleStyle.Render("Optimization"),
			MutedStyle.Render("Tier 1 Efficiency"),
		),
	)
	return lines(
		cardTitle("CPL REDUCTION", AccentStyle.Render("ϟ"), width),
		CardValueStyle.Render(fmt.Sprintf("-%.1f%%", snap.CPLReduction)),
		gauge,
		MutedStyle.Bold(true).Render("Lowering acquisition overhead"),
	)
}

func (m Model) strategyCard(width int) string {
	title := PrimaryStyle.Render(GlyphTrophy) + " " +
		TitleStyle.Render("WINNING STRATEGY: ") +
		PrimaryStyle.Italic(true).Render(strategyVariant)

	out := []string{spread(title, BadgeStyle.Render("ACTIVE CYCLE"), width)}
	for _, p := range strategyPoints {
		bullet := AccentStyle.Render(GlyphBullet)
		if p.primary {
			bullet = PrimaryStyle.Render(GlyphBullet)
		}
		out = append(out, bullet+" "+BodyStyle.Render(p.label))
	}
	return lines(out...)
}

// cardTitle renders a card label with an icon flush right.
func cardTitle(label, icon string, width int) string {
	return spread(CardLabelStyle.Render(label), icon, width)
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n")
}
