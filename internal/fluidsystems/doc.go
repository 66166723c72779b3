// Package fluidsystems provides concrete fluid systems and fluid states that
// fulfil the [fluidstate.FluidState] contract.
//
//   - [TwoPhaseTwoComponent], [IdealGasMixture], [WaterAir]: system counts
//   - [Fixed]: preconfigured saturations and mole fractions only
//   - [IdealGas]: single-phase ideal-gas mixture of three components
//   - [Compositional]: fully populated state for any system
//
// None of these compute an equilibrium; an equilibrium solver (or a config
// file) supplies the values and the states answer queries from them.
//
// # Indices
//
// All states index fixed arrays or slices sized from the system counts. An
// out-of-range index panics with the Go runtime's index error, not with
// [fluidstate.NotImplementedError].
package fluidsystems
