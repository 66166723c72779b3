package viz

import (
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	GlassPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(1, 2)

	GradientTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	NeonGlow = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff00ff")).
			Background(lipgloss.Color("#1a001a"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	// Missing marks a query the state does not implement.
	Missing = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ff4444")).
		Italic(true)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	SparkHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	SparkMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	SparkLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// sparkLevel maps v in [lo, hi] to an index into sparkLevels and its
// normalized height.
func sparkLevel(v, lo, hi float64) (int, float64) {
	if hi == lo {
		return 0, 0
	}
	norm := (v - lo) / (hi - lo)
	return int(math.Round(norm * float64(len(sparkLevels)-1))), norm
}

// resample picks n values spread evenly over values, always keeping the
// first and last sample. n is capped at len(values).
func resample(values []float64, n int) []float64 {
	n = min(n, len(values))
	if n == 1 {
		return values[len(values)-1:]
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = values[i*(len(values)-1)/(n-1)]
	}
	return out
}

func sparkRunes(values []float64, width int) ([]rune, []float64) {
	samples := resample(values, width)
	lo, hi := slices.Min(samples), slices.Max(samples)

	runes := make([]rune, len(samples))
	norms := make([]float64, len(samples))
	for i, v := range samples {
		idx, norm := sparkLevel(v, lo, hi)
		runes[i], norms[i] = sparkLevels[idx], norm
	}
	return runes, norms
}

// SparklineChart draws values as a one-line bar chart at most width cells
// wide. Series longer than width are resampled over their whole range.
func SparklineChart(values []float64, width int) string {
	if width < 1 {
		return ""
	}
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	runes, norms := sparkRunes(values, width)
	var b strings.Builder
	for i, r := range runes {
		style := SparkLow
		if norms[i] > 0.7 {
			style = SparkHigh
		} else if norms[i] > 0.3 {
			style = SparkMid
		}
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

// Separator draws a decorative rule of the given width.
func Separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", max(mid-3, 0))
	right := strings.Repeat("─", max(width-mid-3, 0))
	return Subtle.Render(left + " ◆ " + right)
}
