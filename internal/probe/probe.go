// Package probe queries fluid states the way a numerical model does: by
// phase and component index, treating a missing override as a reportable
// failure instead of a crash.
package probe

import (
	"github.com/san-kum/fluidstate/internal/fluidstate"
)

// NoIndex marks an Entry index the query does not take.
const NoIndex = -1

// Entry is the outcome of one query call.
type Entry struct {
	Op    string
	Phase int
	Comp  int
	Value float64
	Err   error
}

// Report holds every query of a state over every valid index.
type Report struct {
	Name    string
	Counts  fluidstate.Counts
	Entries []Entry
}

// Probe calls each query of fs for all phase indices in [0, NumPhases) and
// component indices in [0, NumComponents).
func Probe(name string, fs fluidstate.FluidState[float64]) *Report {
	c := fluidstate.CountsOf(fs)
	r := &Report{Name: name, Counts: c}

	add := func(op string, phase, comp int, q func() float64) {
		v, err := fluidstate.Query(q)
		r.Entries = append(r.Entries, Entry{Op: op, Phase: phase, Comp: comp, Value: v, Err: err})
	}

	for p := 0; p < c.Phases; p++ {
		add(fluidstate.OpSaturation, p, NoIndex, func() float64 { return fs.Saturation(p) })
	}
	for p := 0; p < c.Phases; p++ {
		for k := 0; k < c.Components; k++ {
			add(fluidstate.OpMoleFrac, p, k, func() float64 { return fs.MoleFrac(p, k) })
		}
	}
	for p := 0; p < c.Phases; p++ {
		add(fluidstate.OpPhaseConcentration, p, NoIndex, func() float64 { return fs.PhaseConcentration(p) })
	}
	for p := 0; p < c.Phases; p++ {
		for k := 0; k < c.Components; k++ {
			add(fluidstate.OpConcentration, p, k, func() float64 { return fs.Concentration(p, k) })
		}
	}
	for p := 0; p < c.Phases; p++ {
		add(fluidstate.OpDensity, p, NoIndex, func() float64 { return fs.Density(p) })
	}
	for p := 0; p < c.Phases; p++ {
		add(fluidstate.OpAverageMolarMass, p, NoIndex, func() float64 { return fs.AverageMolarMass(p) })
	}
	for k := 0; k < c.Components; k++ {
		add(fluidstate.OpFugacity, NoIndex, k, func() float64 { return fs.Fugacity(k) })
	}
	for p := 0; p < c.Phases; p++ {
		add(fluidstate.OpPhasePressure, p, NoIndex, func() float64 { return fs.PhasePressure(p) })
	}
	add(fluidstate.OpTemperature, NoIndex, NoIndex, fs.Temperature)

	return r
}

// Lookup finds the entry for op at the given indices; pass NoIndex for an
// index the query does not take.
func (r *Report) Lookup(op string, phase, comp int) (Entry, bool) {
	for _, e := range r.Entries {
		if e.Op == op && e.Phase == phase && e.Comp == comp {
			return e, true
		}
	}
	return Entry{}, false
}

// Implemented lists the queries that answered at least once, in the order
// of fluidstate.Ops.
func (r *Report) Implemented() []string {
	return r.filterOps(func(ok, failed bool) bool { return ok })
}

// Missing lists the queries that reported NotImplemented for every index.
func (r *Report) Missing() []string {
	return r.filterOps(func(ok, failed bool) bool { return failed && !ok })
}

func (r *Report) filterOps(keep func(ok, failed bool) bool) []string {
	ok := make(map[string]bool)
	failed := make(map[string]bool)
	for _, e := range r.Entries {
		if e.Err == nil {
			ok[e.Op] = true
		} else {
			failed[e.Op] = true
		}
	}

	var ops []string
	for _, op := range fluidstate.Ops {
		if keep(ok[op], failed[op]) {
			ops = append(ops, op)
		}
	}
	return ops
}

// Named pairs a fluid state with a display name.
type Named struct {
	Name  string
	State fluidstate.FluidState[float64]
}

// ProbeAll probes states in parallel. The states are only read, so one
// state may appear more than once.
func ProbeAll(states []Named) []*Report {
	reports := make([]*Report, len(states))
	ParallelFor(len(states), 1, func(start, end int) {
		for i := start; i < end; i++ {
			reports[i] = Probe(states[i].Name, states[i].State)
		}
	})
	return reports
}
