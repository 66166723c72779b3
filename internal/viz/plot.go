package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/fluidstate/internal/probe"
)

// PlotSweep draws the fugacity of each component against the sweep
// temperature, one graph per component.
func PlotSweep(points []probe.SweepPoint, names []string) string {
	if len(points) == 0 {
		return ""
	}

	var b strings.Builder
	first, last := points[0].Temperature, points[len(points)-1].Temperature
	for compIdx := range points[0].Fugacity {
		name := fmt.Sprintf("c%d", compIdx)
		if compIdx < len(names) {
			name = names[compIdx]
		}
		graph := asciigraph.Plot(probe.Series(points, compIdx),
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("fugacity %s [Pa], T = %.1f .. %.1f K", name, first, last)),
		)
		b.WriteString(graph)
		b.WriteString("\n\n")
	}
	return b.String()
}
