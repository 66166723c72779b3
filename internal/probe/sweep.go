package probe

import (
	"errors"
	"fmt"

	"github.com/san-kum/fluidstate/internal/fluidstate"
)

var ErrSweepRange = errors.New("probe: sweep needs from < to and at least two steps")

// SweepPoint is one temperature sample of a sweep.
type SweepPoint struct {
	Temperature float64
	Fugacity    []float64
	Pressure    float64
}

// Sweep samples the fugacities of all components and the pressure of phase 0
// at steps temperatures evenly spaced over [from, to]. at produces the fluid
// state for a temperature. A query the states do not implement aborts the
// sweep with its NotImplemented error.
func Sweep(at func(temperature float64) (fluidstate.FluidState[float64], error), from, to float64, steps int) ([]SweepPoint, error) {
	if steps < 2 || !(from < to) {
		return nil, ErrSweepRange
	}

	points := make([]SweepPoint, steps)
	dT := (to - from) / float64(steps-1)
	for i := range points {
		temperature := from + float64(i)*dT
		fs, err := at(temperature)
		if err != nil {
			return nil, fmt.Errorf("sweep at %.2f K: %w", temperature, err)
		}
		pt := SweepPoint{Temperature: temperature, Fugacity: make([]float64, fs.NumComponents())}

		err = fluidstate.Catch(func() {
			for k := range pt.Fugacity {
				pt.Fugacity[k] = fs.Fugacity(k)
			}
			pt.Pressure = fs.PhasePressure(0)
		})
		if err != nil {
			return nil, fmt.Errorf("sweep at %.2f K: %w", temperature, err)
		}
		points[i] = pt
	}
	return points, nil
}

// Series extracts the fugacity of one component across a sweep.
func Series(points []SweepPoint, compIdx int) []float64 {
	out := make([]float64, len(points))
	for i, pt := range points {
		out[i] = pt.Fugacity[compIdx]
	}
	return out
}
