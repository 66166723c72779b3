// Package nocomponents declares a fluid system without a component count.
// It must not type-check.
package nocomponents

import "github.com/san-kum/fluidstate/internal/fluidstate"

type NoComponents struct{}

func (NoComponents) NumPhases() int   { return 2 }
func (NoComponents) NumSolvents() int { return 1 }

type State struct {
	fluidstate.Base[float64, NoComponents]
}
