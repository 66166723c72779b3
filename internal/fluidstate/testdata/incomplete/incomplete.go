// Package incomplete declares a fluid system without a solvent count. It
// must not type-check.
package incomplete

import "github.com/san-kum/fluidstate/internal/fluidstate"

type NoSolvents struct{}

func (NoSolvents) NumPhases() int     { return 2 }
func (NoSolvents) NumComponents() int { return 2 }

type State struct {
	fluidstate.Base[float64, NoSolvents]
}
