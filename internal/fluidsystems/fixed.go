package fluidsystems

import "github.com/san-kum/fluidstate/internal/fluidstate"

// Fixed answers saturation and mole fraction queries from configured values
// and leaves every other query unimplemented.
type Fixed struct {
	fluidstate.Base[float64, TwoPhaseTwoComponent]

	Saturations [2]float64
	MoleFracs   [2][2]float64
}

func NewFixed(saturations [2]float64, moleFracs [2][2]float64) *Fixed {
	return &Fixed{Saturations: saturations, MoleFracs: moleFracs}
}

func (f *Fixed) Saturation(phaseIdx int) float64       { return f.Saturations[phaseIdx] }
func (f *Fixed) MoleFrac(phaseIdx, compIdx int) float64 { return f.MoleFracs[phaseIdx][compIdx] }
