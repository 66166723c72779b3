package fluidstate

import "golang.org/x/exp/constraints"

// Scalar is the numeric type a fluid state reports its quantities in.
type Scalar interface {
	constraints.Float
}

// System declares the counts of a fluid system. Implementations are usually
// zero-size types whose methods return constants.
type System interface {
	// NumPhases is the maximum number of phases that can occur.
	NumPhases() int
	// NumComponents is the number of chemical (pseudo-) species.
	NumComponents() int
	// NumSolvents is the number of highly miscible carrier components; the
	// remaining components are only resolved as traces in liquid phases.
	NumSolvents() int
}

// State is the read-only view of an equilibrium snapshot.
type State[T Scalar] interface {
	// Saturation is the fraction of the pore volume occupied by a phase. [-]
	Saturation(phaseIdx int) T

	// MoleFrac is the mole fraction of a component within a phase. [-]
	MoleFrac(phaseIdx, compIdx int) T

	// PhaseConcentration is the sum of the concentrations of all
	// components in a phase. [mol/m^3]
	PhaseConcentration(phaseIdx int) T

	// Concentration is the molar concentration of a component in a
	// phase. [mol/m^3]
	Concentration(phaseIdx, compIdx int) T

	// Density is the mass density of a phase. [kg/m^3]
	Density(phaseIdx int) T

	// AverageMolarMass is the sum of the component molar masses weighted
	// by their mole fractions in a phase. [kg/mol]
	AverageMolarMass(phaseIdx int) T

	// Fugacity is the effective partial pressure of a component. For an
	// ideal gas it equals R*T*c. [Pa]
	Fugacity(compIdx int) T

	// PhasePressure is the total pressure of a phase. [Pa]
	PhasePressure(phaseIdx int) T

	// Temperature is the temperature at which the equilibrium was
	// computed, uniform across phases. [K]
	Temperature() T
}

// FluidState is a State that also reports the counts of its fluid system.
type FluidState[T Scalar] interface {
	System
	State[T]
}

// Base supplies the counts of S and a default for every query of State.
// The defaults panic with a *NotImplementedError naming the query; embedding
// types override the queries they can answer.
//
// The S System constraint is the presence check for the three counts: a
// system type missing one of them cannot instantiate Base.
type Base[T Scalar, S System] struct{}

func (Base[T, S]) NumPhases() int {
	var s S
	return s.NumPhases()
}

func (Base[T, S]) NumComponents() int {
	var s S
	return s.NumComponents()
}

func (Base[T, S]) NumSolvents() int {
	var s S
	return s.NumSolvents()
}

func (Base[T, S]) Saturation(int) T         { panic(notImplemented(OpSaturation)) }
func (Base[T, S]) MoleFrac(int, int) T      { panic(notImplemented(OpMoleFrac)) }
func (Base[T, S]) PhaseConcentration(int) T { panic(notImplemented(OpPhaseConcentration)) }
func (Base[T, S]) Concentration(int, int) T { panic(notImplemented(OpConcentration)) }
func (Base[T, S]) Density(int) T            { panic(notImplemented(OpDensity)) }
func (Base[T, S]) AverageMolarMass(int) T   { panic(notImplemented(OpAverageMolarMass)) }
func (Base[T, S]) Fugacity(int) T           { panic(notImplemented(OpFugacity)) }
func (Base[T, S]) PhasePressure(int) T      { panic(notImplemented(OpPhasePressure)) }
func (Base[T, S]) Temperature() T           { panic(notImplemented(OpTemperature)) }

// Counts is a snapshot of the three counts of a System.
type Counts struct {
	Phases     int
	Components int
	Solvents   int
}

// CountsOf reads the counts of sys.
func CountsOf(sys System) Counts {
	return Counts{
		Phases:     sys.NumPhases(),
		Components: sys.NumComponents(),
		Solvents:   sys.NumSolvents(),
	}
}

// ValidateSystem checks numPhases >= 1, numComponents >= 1 and
// 0 <= numSolvents <= numComponents. Base never calls it; a system that
// violates these is a bug in the system, and callers that register systems
// check it up front.
func ValidateSystem(sys System) error {
	c := CountsOf(sys)
	switch {
	case c.Phases < 1:
		return &SystemError{Counts: c, Reason: "numPhases must be at least 1"}
	case c.Components < 1:
		return &SystemError{Counts: c, Reason: "numComponents must be at least 1"}
	case c.Solvents < 0:
		return &SystemError{Counts: c, Reason: "numSolvents must not be negative"}
	case c.Solvents > c.Components:
		return &SystemError{Counts: c, Reason: "numSolvents exceeds numComponents"}
	}
	return nil
}
