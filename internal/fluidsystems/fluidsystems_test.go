package fluidsystems_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fluidstate/internal/fluidstate"
	"github.com/san-kum/fluidstate/internal/fluidsystems"
)

var (
	_ fluidstate.FluidState[float64] = (*fluidsystems.Fixed)(nil)
	_ fluidstate.FluidState[float64] = (*fluidsystems.IdealGas)(nil)
	_ fluidstate.FluidState[float64] = (*fluidsystems.Compositional[fluidsystems.WaterAir])(nil)
)

func notImplementedOp(fn func()) string {
	op, _ := fluidstate.IsNotImplemented(fluidstate.Catch(fn))
	return op
}

var _ = Describe("system counts", func() {
	DescribeTable("satisfy the fluid system invariants",
		func(sys fluidstate.System, phases, components, solvents int) {
			Expect(fluidstate.ValidateSystem(sys)).To(Succeed())
			Expect(fluidstate.CountsOf(sys)).To(Equal(fluidstate.Counts{
				Phases: phases, Components: components, Solvents: solvents,
			}))
		},
		Entry("two-phase two-component", fluidsystems.TwoPhaseTwoComponent{}, 2, 2, 2),
		Entry("ideal gas mixture", fluidsystems.IdealGasMixture{}, 1, 3, 3),
		Entry("water-air", fluidsystems.WaterAir{}, 2, 2, 1),
	)
})

var _ = Describe("Fixed", func() {
	var fs *fluidsystems.Fixed

	BeforeEach(func() {
		fs = fluidsystems.NewFixed(
			[2]float64{0.35, 0.65},
			[2][2]float64{{0.98, 0.02}, {0.1, 0.9}},
		)
	})

	It("returns the configured saturations and mole fractions", func() {
		Expect(fluidstate.Catch(func() { fs.Saturation(0) })).To(Succeed())
		Expect(fs.Saturation(0)).To(Equal(0.35))
		Expect(fs.Saturation(1)).To(Equal(0.65))
		Expect(fs.MoleFrac(0, 1)).To(Equal(0.02))
	})

	It("reports density as not implemented", func() {
		Expect(notImplementedOp(func() { fs.Density(0) })).To(Equal(fluidstate.OpDensity))
	})

	DescribeTable("leaves the remaining queries unimplemented",
		func(op string, q func(fluidstate.State[float64])) {
			Expect(notImplementedOp(func() { q(fs) })).To(Equal(op))
		},
		Entry(nil, fluidstate.OpPhaseConcentration, func(s fluidstate.State[float64]) { s.PhaseConcentration(0) }),
		Entry(nil, fluidstate.OpConcentration, func(s fluidstate.State[float64]) { s.Concentration(0, 0) }),
		Entry(nil, fluidstate.OpAverageMolarMass, func(s fluidstate.State[float64]) { s.AverageMolarMass(1) }),
		Entry(nil, fluidstate.OpFugacity, func(s fluidstate.State[float64]) { s.Fugacity(0) }),
		Entry(nil, fluidstate.OpPhasePressure, func(s fluidstate.State[float64]) { s.PhasePressure(0) }),
		Entry(nil, fluidstate.OpTemperature, func(s fluidstate.State[float64]) { s.Temperature() }),
	)

	It("accepts zero-based phase indices below NumPhases", func() {
		for phaseIdx := 0; phaseIdx < fs.NumPhases(); phaseIdx++ {
			Expect(fluidstate.Catch(func() { fs.Saturation(phaseIdx) })).To(Succeed())
		}
	})

	It("leaves out-of-range phase indices to the array bounds", func() {
		policy := "no panic"
		func() {
			defer func() {
				if r := recover(); r != nil {
					policy = fmt.Sprintf("panics: %v", r)
				}
			}()
			fs.Saturation(fs.NumPhases())
		}()
		AddReportEntry("Fixed.Saturation(NumPhases())", policy)
	})
})

var _ = Describe("IdealGas", func() {
	const temperature = 320.0
	conc := [3]float64{30.0, 8.0, 0.5}
	molarMass := [3]float64{fluidsystems.MolarMassN2, fluidsystems.MolarMassO2, fluidsystems.MolarMassCO2}

	var gas *fluidsystems.IdealGas

	BeforeEach(func() {
		gas = fluidsystems.NewIdealGas(temperature, conc, molarMass)
	})

	It("computes the fugacity as R*T*c", func() {
		want := fluidstate.GasConstant * temperature * conc[1]
		Expect(gas.Fugacity(1)).To(BeNumerically("~", want, 1e-9*want))
		Expect(gas.Temperature()).To(Equal(temperature))
	})

	It("has a pressure equal to the sum of its fugacities", func() {
		var sum float64
		for compIdx := 0; compIdx < gas.NumComponents(); compIdx++ {
			sum += gas.Fugacity(compIdx)
		}
		Expect(gas.PhasePressure(0)).To(BeNumerically("~", sum, 1e-9*sum))
	})

	It("derives a normalized composition", func() {
		Expect(fluidstate.TotalMoleFrac[float64](gas, 0, gas.NumComponents())).To(BeNumerically("~", 1.0, 1e-12))
		Expect(gas.PhaseConcentration(0)).To(BeNumerically("~", 38.5, 1e-12))
	})

	It("is consistent between density, concentration and molar mass", func() {
		Expect(gas.Density(0)).To(BeNumerically("~", gas.PhaseConcentration(0)*gas.AverageMolarMass(0), 1e-12))
	})

	It("does not implement saturation", func() {
		Expect(notImplementedOp(func() { gas.Saturation(0) })).To(Equal(fluidstate.OpSaturation))
	})

	It("builds air at the requested pressure", func() {
		air := fluidsystems.NewAir(293.15, 101325)
		Expect(air.PhasePressure(0)).To(BeNumerically("~", 101325, 1e-6))
		Expect(air.AverageMolarMass(0)).To(BeNumerically("~", fluidsystems.MolarMassAir, 5e-4))
	})

	It("reports zero mole fractions for an empty mixture", func() {
		empty := fluidsystems.NewIdealGas(temperature, [3]float64{}, molarMass)
		for compIdx := 0; compIdx < empty.NumComponents(); compIdx++ {
			Expect(empty.MoleFrac(0, compIdx)).To(BeZero())
		}
		Expect(empty.PhasePressure(0)).To(BeZero())
	})

	It("keeps concentrations when the temperature changes", func() {
		hot := gas.WithTemperature(2 * temperature)
		Expect(hot.Concentration(0, 2)).To(Equal(gas.Concentration(0, 2)))
		Expect(hot.Fugacity(2)).To(BeNumerically("~", 2*gas.Fugacity(2), 1e-9))
		Expect(gas.Temperature()).To(Equal(temperature))
	})
})

var _ = Describe("Compositional", func() {
	var fs *fluidsystems.Compositional[fluidsystems.WaterAir]

	BeforeEach(func() {
		fs = fluidsystems.NewCompositional[fluidsystems.WaterAir]()
		fs.SetTemperature(293.15)
		fs.SetMolarMass(fluidsystems.H2OIdx, fluidsystems.MolarMassH2O)
		fs.SetMolarMass(fluidsystems.AirIdx, fluidsystems.MolarMassAir)

		fs.SetSaturation(fluidsystems.WPhaseIdx, 0.4)
		fs.SetSaturation(fluidsystems.GPhaseIdx, 0.6)
		fs.SetPhasePressure(fluidsystems.WPhaseIdx, 1.02e5)
		fs.SetPhasePressure(fluidsystems.GPhaseIdx, 1.0e5)
		fs.SetDensity(fluidsystems.WPhaseIdx, 998.2)
		fs.SetDensity(fluidsystems.GPhaseIdx, 1.19)

		fs.SetMoleFrac(fluidsystems.WPhaseIdx, fluidsystems.H2OIdx, 0.99998)
		fs.SetMoleFrac(fluidsystems.WPhaseIdx, fluidsystems.AirIdx, 0.00002)
		fs.SetMoleFrac(fluidsystems.GPhaseIdx, fluidsystems.H2OIdx, 0.023)
		fs.SetMoleFrac(fluidsystems.GPhaseIdx, fluidsystems.AirIdx, 0.977)
		fs.SetReferencePhase(fluidsystems.GPhaseIdx)
	})

	It("implements every query", func() {
		for phaseIdx := 0; phaseIdx < fs.NumPhases(); phaseIdx++ {
			for compIdx := 0; compIdx < fs.NumComponents(); compIdx++ {
				Expect(fluidstate.Catch(func() {
					fs.Saturation(phaseIdx)
					fs.MoleFrac(phaseIdx, compIdx)
					fs.PhaseConcentration(phaseIdx)
					fs.Concentration(phaseIdx, compIdx)
					fs.Density(phaseIdx)
					fs.AverageMolarMass(phaseIdx)
					fs.Fugacity(compIdx)
					fs.PhasePressure(phaseIdx)
					fs.Temperature()
				})).To(Succeed())
			}
		}
	})

	It("sums component concentrations to the phase concentration", func() {
		for phaseIdx := 0; phaseIdx < fs.NumPhases(); phaseIdx++ {
			sum := fs.Concentration(phaseIdx, fluidsystems.H2OIdx) + fs.Concentration(phaseIdx, fluidsystems.AirIdx)
			Expect(fs.PhaseConcentration(phaseIdx)).To(BeNumerically("~", sum, 1e-9))
			Expect(fs.PhaseConcentration(phaseIdx) * fs.AverageMolarMass(phaseIdx)).
				To(BeNumerically("~", fs.Density(phaseIdx), 1e-9))
		}
	})

	It("uses the reference phase for fugacities", func() {
		Expect(fs.Fugacity(fluidsystems.AirIdx)).To(BeNumerically("~", 0.977*1.0e5, 1e-6))

		fs.SetReferencePhase(fluidsystems.WPhaseIdx)
		Expect(fs.Fugacity(fluidsystems.AirIdx)).To(BeNumerically("~", 0.00002*1.02e5, 1e-9))
	})

	It("reports zero concentration for an unset phase", func() {
		empty := fluidsystems.NewCompositional[fluidsystems.TwoPhaseTwoComponent]()
		Expect(empty.Concentration(0, 0)).To(BeZero())
		Expect(empty.PhaseConcentration(1)).To(BeZero())
	})
})
