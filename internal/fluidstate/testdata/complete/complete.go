// Package complete is the well-formed counterpart of package incomplete.
package complete

import "github.com/san-kum/fluidstate/internal/fluidstate"

type TwoByTwo struct{}

func (TwoByTwo) NumPhases() int     { return 2 }
func (TwoByTwo) NumComponents() int { return 2 }
func (TwoByTwo) NumSolvents() int   { return 2 }

type State struct {
	fluidstate.Base[float64, TwoByTwo]
}

var _ fluidstate.FluidState[float64] = State{}
