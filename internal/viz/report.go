package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fluidstate/internal/fluidstate"
	"github.com/san-kum/fluidstate/internal/probe"
)

const (
	colOp    = 20
	colIndex = 10
	colValue = 26
	colUnit  = 9
)

// IndexLabel formats the indices of an entry, e.g. "p1 c0".
func IndexLabel(e probe.Entry) string {
	var parts []string
	if e.Phase != probe.NoIndex {
		parts = append(parts, fmt.Sprintf("p%d", e.Phase))
	}
	if e.Comp != probe.NoIndex {
		parts = append(parts, fmt.Sprintf("c%d", e.Comp))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

// FormatValue renders a value, or "n/a (op)" for a query that is not
// implemented.
func FormatValue(e probe.Entry) string {
	if e.Err != nil {
		if op, ok := fluidstate.IsNotImplemented(e.Err); ok {
			return fmt.Sprintf("n/a (%s)", op)
		}
		return "error"
	}
	return fmt.Sprintf("%.6g", e.Value)
}

func cell(s string, width int, style lipgloss.Style) string {
	return style.Width(width).Render(s)
}

// RenderReport lays out every entry of r as a table with units.
func RenderReport(r *probe.Report) string {
	var b strings.Builder

	title := fmt.Sprintf("%s  phases=%d components=%d solvents=%d",
		r.Name, r.Counts.Phases, r.Counts.Components, r.Counts.Solvents)
	b.WriteString(GradientTitle.Render(title))
	b.WriteString("\n")

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		cell("QUERY", colOp, MetricLabel),
		cell("INDEX", colIndex, MetricLabel),
		cell("VALUE", colValue, MetricLabel),
		cell("UNIT", colUnit, MetricLabel),
	)
	b.WriteString(HeaderStyle.Render(header))
	b.WriteString("\n")

	for _, e := range r.Entries {
		valueStyle := MetricValue
		if e.Err != nil {
			valueStyle = Missing
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			cell(e.Op, colOp, lipgloss.NewStyle()),
			cell(IndexLabel(e), colIndex, Subtle),
			cell(FormatValue(e), colValue, valueStyle),
			cell(fluidstate.Unit(e.Op), colUnit, Subtle),
		)
		b.WriteString(row)
		b.WriteString("\n")
	}

	if missing := r.Missing(); len(missing) > 0 {
		b.WriteString("\n")
		b.WriteString(Missing.Render("not implemented: " + strings.Join(missing, ", ")))
		b.WriteString("\n")
	}
	return b.String()
}
