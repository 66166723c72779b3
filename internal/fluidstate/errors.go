package fluidstate

import (
	"errors"
	"fmt"
)

// Query names carried by NotImplementedError.
const (
	OpSaturation         = "saturation"
	OpMoleFrac           = "moleFrac"
	OpPhaseConcentration = "phaseConcentration"
	OpConcentration      = "concentration"
	OpDensity            = "density"
	OpAverageMolarMass   = "averageMolarMass"
	OpFugacity           = "fugacity"
	OpPhasePressure      = "phasePressure"
	OpTemperature        = "temperature"
)

// Ops lists every query of State in declaration order.
var Ops = []string{
	OpSaturation,
	OpMoleFrac,
	OpPhaseConcentration,
	OpConcentration,
	OpDensity,
	OpAverageMolarMass,
	OpFugacity,
	OpPhasePressure,
	OpTemperature,
}

var (
	// ErrNotImplemented indicates a query the concrete fluid state does not override.
	ErrNotImplemented = errors.New("fluidstate: query not implemented")

	// ErrInvalidSystem indicates counts that violate the fluid system invariants.
	ErrInvalidSystem = errors.New("fluidstate: invalid fluid system")
)

// NotImplementedError is the panic value of every default query in Base.
type NotImplementedError struct {
	Op string
}

func notImplemented(op string) *NotImplementedError {
	return &NotImplementedError{Op: op}
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("fluidstate: %s not implemented", e.Op)
}

func (e *NotImplementedError) Unwrap() error {
	return ErrNotImplemented
}

// SystemError reports which invariant a System's counts violate.
type SystemError struct {
	Counts Counts
	Reason string
}

func (e *SystemError) Error() string {
	return fmt.Sprintf("%v: %s (phases=%d components=%d solvents=%d)",
		ErrInvalidSystem, e.Reason, e.Counts.Phases, e.Counts.Components, e.Counts.Solvents)
}

func (e *SystemError) Unwrap() error {
	return ErrInvalidSystem
}

// Catch runs fn and returns the *NotImplementedError it panics with, if any.
// Any other panic is re-raised unchanged.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		nie, ok := r.(*NotImplementedError)
		if !ok {
			panic(r)
		}
		err = nie
	}()
	fn()
	return nil
}

// Query evaluates a single query and reports a missing override as an error.
//
//	rho, err := fluidstate.Query(func() float64 { return fs.Density(0) })
func Query[T Scalar](q func() T) (T, error) {
	var v T
	err := Catch(func() { v = q() })
	return v, err
}

// IsNotImplemented reports whether err is a NotImplemented failure and, if
// so, which query it names.
func IsNotImplemented(err error) (string, bool) {
	var nie *NotImplementedError
	if errors.As(err, &nie) {
		return nie.Op, true
	}
	return "", errors.Is(err, ErrNotImplemented)
}
