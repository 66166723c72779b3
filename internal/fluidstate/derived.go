package fluidstate

// GasConstant is the universal gas constant R. [J/(mol*K)]
const GasConstant = 8.314462618

// The helpers below take the concrete state as a type parameter bound only by
// the queries they need, so a call on a concrete type resolves statically and
// an implementation can use them to derive one quantity from others it
// already overrides.

// IdealGasFugacity returns R*T*c for a component of a phase. [Pa]
func IdealGasFugacity[T Scalar, F interface {
	Concentration(phaseIdx, compIdx int) T
	Temperature() T
}](fs F, phaseIdx, compIdx int) T {
	return T(GasConstant) * fs.Temperature() * fs.Concentration(phaseIdx, compIdx)
}

// SumConcentrations adds the concentrations of the first numComponents
// components of a phase. [mol/m^3]
func SumConcentrations[T Scalar, F interface {
	Concentration(phaseIdx, compIdx int) T
}](fs F, phaseIdx, numComponents int) T {
	var sum T
	for compIdx := 0; compIdx < numComponents; compIdx++ {
		sum += fs.Concentration(phaseIdx, compIdx)
	}
	return sum
}

// TotalMoleFrac adds the mole fractions of the first numComponents
// components of a phase. It is 1 for a normalized composition.
func TotalMoleFrac[T Scalar, F interface {
	MoleFrac(phaseIdx, compIdx int) T
}](fs F, phaseIdx, numComponents int) T {
	var sum T
	for compIdx := 0; compIdx < numComponents; compIdx++ {
		sum += fs.MoleFrac(phaseIdx, compIdx)
	}
	return sum
}

// MoleFracWeightedMolarMass returns sum_k x_k*M_k over the components in
// molarMass. [kg/mol]
func MoleFracWeightedMolarMass[T Scalar, F interface {
	MoleFrac(phaseIdx, compIdx int) T
}](fs F, phaseIdx int, molarMass []T) T {
	var sum T
	for compIdx, m := range molarMass {
		sum += fs.MoleFrac(phaseIdx, compIdx) * m
	}
	return sum
}
