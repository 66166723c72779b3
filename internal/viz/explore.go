package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/fluidstate/internal/fluidstate"
	"github.com/san-kum/fluidstate/internal/probe"
)

// Explorer is a Bubble Tea model showing the queries of one state at the
// selected phase and component index.
type Explorer struct {
	states  []probe.Named
	current int
	phase   int
	comp    int
	width   int
}

func NewExplorer(states ...probe.Named) Explorer {
	return Explorer{states: states, width: 60}
}

func (m Explorer) Init() tea.Cmd { return nil }

func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m Explorer) handleKey(msg tea.KeyMsg) (Explorer, tea.Cmd) {
	if len(m.states) == 0 {
		return m, tea.Quit
	}
	c := fluidstate.CountsOf(m.states[m.current].State)

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "right", "l":
		m.phase = (m.phase + 1) % c.Phases
	case "left", "h":
		m.phase = (m.phase + c.Phases - 1) % c.Phases
	case "down", "j":
		m.comp = (m.comp + 1) % c.Components
	case "up", "k":
		m.comp = (m.comp + c.Components - 1) % c.Components
	case "tab":
		m.current = (m.current + 1) % len(m.states)
		m.phase, m.comp = 0, 0
	}
	return m, nil
}

// Selection identifies the state and indices shown by an Explorer.
type Selection struct {
	Name  string
	Phase int
	Comp  int
}

func (m Explorer) Selection() Selection {
	if len(m.states) == 0 {
		return Selection{}
	}
	return Selection{Name: m.states[m.current].Name, Phase: m.phase, Comp: m.comp}
}

func (m Explorer) View() string {
	if len(m.states) == 0 {
		return Subtle.Render("no fluid states") + "\n"
	}
	named := m.states[m.current]
	fs := named.State
	c := fluidstate.CountsOf(fs)

	rows := []struct {
		op string
		q  func() float64
	}{
		{fluidstate.OpSaturation, func() float64 { return fs.Saturation(m.phase) }},
		{fluidstate.OpMoleFrac, func() float64 { return fs.MoleFrac(m.phase, m.comp) }},
		{fluidstate.OpPhaseConcentration, func() float64 { return fs.PhaseConcentration(m.phase) }},
		{fluidstate.OpConcentration, func() float64 { return fs.Concentration(m.phase, m.comp) }},
		{fluidstate.OpDensity, func() float64 { return fs.Density(m.phase) }},
		{fluidstate.OpAverageMolarMass, func() float64 { return fs.AverageMolarMass(m.phase) }},
		{fluidstate.OpFugacity, func() float64 { return fs.Fugacity(m.comp) }},
		{fluidstate.OpPhasePressure, func() float64 { return fs.PhasePressure(m.phase) }},
		{fluidstate.OpTemperature, fs.Temperature},
	}

	var b strings.Builder
	b.WriteString(GradientTitle.Render(fmt.Sprintf("%s  [%d/%d]", named.Name, m.current+1, len(m.states))))
	b.WriteString("\n")
	b.WriteString(NeonGlow.Render(fmt.Sprintf(" phase %d/%d  component %d/%d ", m.phase, c.Phases, m.comp, c.Components)))
	b.WriteString("\n\n")

	for _, row := range rows {
		v, err := fluidstate.Query(row.q)
		e := probe.Entry{Op: row.op, Value: v, Err: err}
		style := MetricValue
		if err != nil {
			style = Missing
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			MetricLabel.Render(fmt.Sprintf("%-20s", row.op)),
			style.Render(fmt.Sprintf("%-26s", FormatValue(e))),
			Subtle.Render(fluidstate.Unit(row.op)))
	}

	b.WriteString("\n")
	b.WriteString(Separator(min(m.width, 60)))
	b.WriteString("\n")
	b.WriteString(KeyHint.Render("←/→ phase  ↑/↓ component  tab state  q quit"))
	b.WriteString("\n")
	return GlassPanel.Render(b.String())
}

// RunExplorer starts the explorer on the alternate screen and returns the
// selection it was left on.
func RunExplorer(states ...probe.Named) (Selection, error) {
	final, err := tea.NewProgram(NewExplorer(states...), tea.WithAltScreen()).Run()
	if err != nil {
		return Selection{}, err
	}
	m, ok := final.(Explorer)
	if !ok {
		return Selection{}, nil
	}
	return m.Selection(), nil
}
