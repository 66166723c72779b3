package fluidsystems

import "github.com/san-kum/fluidstate/internal/fluidstate"

const gasPhaseIdx = 0

// IdealGas is a single-phase ideal-gas mixture described by its temperature
// and component concentrations. Every phase index refers to the one gas
// phase. Saturation is left unimplemented.
type IdealGas struct {
	fluidstate.Base[float64, IdealGasMixture]

	temperature float64
	conc        [3]float64
	molarMass   [3]float64
}

// NewIdealGas builds an ideal-gas state at temperature [K] with component
// concentrations [mol/m^3] and molar masses [kg/mol].
func NewIdealGas(temperature float64, conc, molarMass [3]float64) *IdealGas {
	return &IdealGas{temperature: temperature, conc: conc, molarMass: molarMass}
}

// NewAir is dry air at temperature and total pressure [Pa], with argon
// lumped into nitrogen.
func NewAir(temperature, pressure float64) *IdealGas {
	total := pressure / (fluidstate.GasConstant * temperature)
	return NewIdealGas(temperature,
		[3]float64{0.7901 * total, 0.2095 * total, 0.0004 * total},
		[3]float64{MolarMassN2, MolarMassO2, MolarMassCO2},
	)
}

func (g *IdealGas) Temperature() float64 { return g.temperature }

func (g *IdealGas) Concentration(_, compIdx int) float64 { return g.conc[compIdx] }

func (g *IdealGas) PhaseConcentration(phaseIdx int) float64 {
	return fluidstate.SumConcentrations[float64](g, phaseIdx, len(g.conc))
}

// MoleFrac is c_k / sum(c). A gas with no concentrations at all reports
// zero for every component; that is a policy of this state for an empty
// mixture, not a value the contract defines.
func (g *IdealGas) MoleFrac(phaseIdx, compIdx int) float64 {
	total := g.PhaseConcentration(phaseIdx)
	if total == 0 {
		return 0
	}
	return g.conc[compIdx] / total
}

// Fugacity equals the partial pressure R*T*c of the component.
func (g *IdealGas) Fugacity(compIdx int) float64 {
	return fluidstate.IdealGasFugacity[float64](g, gasPhaseIdx, compIdx)
}

// PhasePressure is the sum of the partial pressures (Dalton).
func (g *IdealGas) PhasePressure(int) float64 {
	var p float64
	for compIdx := range g.conc {
		p += g.Fugacity(compIdx)
	}
	return p
}

func (g *IdealGas) AverageMolarMass(phaseIdx int) float64 {
	return fluidstate.MoleFracWeightedMolarMass(g, phaseIdx, g.molarMass[:])
}

func (g *IdealGas) Density(int) float64 {
	var rho float64
	for compIdx, c := range g.conc {
		rho += c * g.molarMass[compIdx]
	}
	return rho
}

// WithTemperature returns a copy at a different temperature with the same
// concentrations.
func (g *IdealGas) WithTemperature(temperature float64) *IdealGas {
	c := *g
	c.temperature = temperature
	return &c
}
