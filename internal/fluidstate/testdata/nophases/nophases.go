// Package nophases declares a fluid system without a phase count. It must
// not type-check.
package nophases

import "github.com/san-kum/fluidstate/internal/fluidstate"

type NoPhases struct{}

func (NoPhases) NumComponents() int { return 2 }
func (NoPhases) NumSolvents() int   { return 2 }

type State struct {
	fluidstate.Base[float64, NoPhases]
}
