package fluidsystems

import "github.com/san-kum/fluidstate/internal/fluidstate"

// Compositional is a fully populated fluid state for any system S. The
// producer sets saturations, mole fractions, densities, pressures, the
// temperature and the component molar masses; concentrations and average
// molar masses are derived from them:
//
//	M_a   = sum_k x_a,k * M_k
//	c_a,k = rho_a / M_a * x_a,k
//
// Fugacities are ideal partial pressures in the reference phase
// (x_ref,k * p_ref), phase 0 unless SetReferencePhase says otherwise.
type Compositional[S fluidstate.System] struct {
	fluidstate.Base[float64, S]

	refPhase    int
	temperature float64
	saturation  []float64
	pressure    []float64
	density     []float64
	moleFrac    [][]float64
	molarMass   []float64
}

// NewCompositional allocates storage sized by the counts of S.
func NewCompositional[S fluidstate.System]() *Compositional[S] {
	c := &Compositional[S]{}
	numPhases, numComponents := c.NumPhases(), c.NumComponents()

	c.saturation = make([]float64, numPhases)
	c.pressure = make([]float64, numPhases)
	c.density = make([]float64, numPhases)
	c.moleFrac = make([][]float64, numPhases)
	for i := range c.moleFrac {
		c.moleFrac[i] = make([]float64, numComponents)
	}
	c.molarMass = make([]float64, numComponents)
	return c
}

func (c *Compositional[S]) SetSaturation(phaseIdx int, v float64) { c.saturation[phaseIdx] = v }
func (c *Compositional[S]) SetMoleFrac(phaseIdx, compIdx int, v float64) {
	c.moleFrac[phaseIdx][compIdx] = v
}
func (c *Compositional[S]) SetDensity(phaseIdx int, v float64)       { c.density[phaseIdx] = v }
func (c *Compositional[S]) SetPhasePressure(phaseIdx int, v float64) { c.pressure[phaseIdx] = v }
func (c *Compositional[S]) SetTemperature(v float64)                 { c.temperature = v }
func (c *Compositional[S]) SetMolarMass(compIdx int, v float64)      { c.molarMass[compIdx] = v }
func (c *Compositional[S]) SetReferencePhase(phaseIdx int)           { c.refPhase = phaseIdx }

func (c *Compositional[S]) Saturation(phaseIdx int) float64 { return c.saturation[phaseIdx] }

func (c *Compositional[S]) MoleFrac(phaseIdx, compIdx int) float64 {
	return c.moleFrac[phaseIdx][compIdx]
}

func (c *Compositional[S]) Density(phaseIdx int) float64       { return c.density[phaseIdx] }
func (c *Compositional[S]) PhasePressure(phaseIdx int) float64 { return c.pressure[phaseIdx] }
func (c *Compositional[S]) Temperature() float64               { return c.temperature }

func (c *Compositional[S]) AverageMolarMass(phaseIdx int) float64 {
	return fluidstate.MoleFracWeightedMolarMass(c, phaseIdx, c.molarMass)
}

// Concentration is zero for a phase whose average molar mass is zero, i.e.
// a phase with no composition or molar masses set yet. That zero is a
// policy of this state for unpopulated phases, not a value the contract
// defines.
func (c *Compositional[S]) Concentration(phaseIdx, compIdx int) float64 {
	m := c.AverageMolarMass(phaseIdx)
	if m == 0 {
		return 0
	}
	return c.density[phaseIdx] / m * c.moleFrac[phaseIdx][compIdx]
}

func (c *Compositional[S]) PhaseConcentration(phaseIdx int) float64 {
	return fluidstate.SumConcentrations[float64](c, phaseIdx, len(c.molarMass))
}

func (c *Compositional[S]) Fugacity(compIdx int) float64 {
	return c.moleFrac[c.refPhase][compIdx] * c.pressure[c.refPhase]
}
