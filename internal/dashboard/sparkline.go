package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
var sparklineBlocks = []rune("▁▂▃▄▅▆▇█")

// RenderSparkline draws the most recent width values scaled between their
// min and max. The newest block is drawn in accent; the rest in color.
func RenderSparkline(data []float64, width int, color, accent lipgloss.Color) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}

	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	levels := len(sparklineBlocks)
	valueRange := maxVal - minVal

	var sb strings.Builder
	sb.Grow(len(data) * 3)
	for _, v := range data[:len(data)-1] {
		sb.WriteRune(sparklineBlocks[sparkLevel(v, minVal, valueRange, levels)])
	}
	lastBlock := string(sparklineBlocks[sparkLevel(data[len(data)-1], minVal, valueRange, levels)])

	return lipgloss.NewStyle().Foreground(color).Render(sb.String()) +
		lipgloss.NewStyle().Foreground(accent).Render(lastBlock)
}

func sparkLevel(v, minVal, valueRange float64, levels int) int {
	if valueRange == 0 {
		return levels / 2
	}
	level := int((v - minVal) / valueRange * float64(levels-1))
	if level < 0 {
		return 0
	}
	if level >= levels {
		return levels - 1
	}
	return level
}
