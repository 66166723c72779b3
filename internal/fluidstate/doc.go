// Package fluidstate defines the query contract of a fluid state: the
// thermodynamic equilibrium of a multi-phase, multi-component mixture at a
// single point.
//
// The package does not compute equilibria. It only fixes how the resulting
// quantities are accessed:
//
//   - [System]: the phase, component and solvent counts of a fluid system
//   - [State]: the nine read-only queries with their units
//   - [FluidState]: a [State] that also reports its system's counts
//   - [Base]: embeddable defaults, every query panics with [NotImplementedError]
//
// # Implementing a fluid state
//
// A concrete state embeds [Base] parameterized by its scalar type and its
// system type, then overrides the queries it can answer:
//
//	type Brine struct{}
//
//	func (Brine) NumPhases() int     { return 1 }
//	func (Brine) NumComponents() int { return 2 }
//	func (Brine) NumSolvents() int   { return 1 }
//
//	type BrineState struct {
//	    fluidstate.Base[float64, Brine]
//	    rho float64
//	}
//
//	func (s *BrineState) Density(int) float64 { return s.rho }
//
// A system type that lacks any of the three counts does not satisfy [System]
// and the embedding fails to compile.
//
// # Dispatch
//
// Consumers either hold a [State] (interface dispatch) or take the concrete
// type as a type parameter bound by the capability they need, as the
// derived-quantity helpers in this package do. The interface path costs one
// indirect call per query; it is the default because it lets a model mix
// fluid systems at runtime.
//
// # Indices
//
// Phase indices run over [0, NumPhases) and component indices over
// [0, NumComponents). Nothing here bounds-checks them; behavior for an
// out-of-range index belongs to the concrete implementation.
package fluidstate
