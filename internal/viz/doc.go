// Package viz renders fluid-state probes in the terminal.
//
//   - [RenderReport]: lipgloss table of every query over every index
//   - [PlotSweep]: asciigraph plot of fugacities against temperature
//   - [Explorer]: Bubble Tea view stepping through phase/component indices
//
// # Key Bindings
//
//	←/→   - Previous/next phase
//	↑/↓   - Previous/next component
//	Tab   - Next state
//	Q     - Quit
package viz
