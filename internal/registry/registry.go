// Package registry maps fluid system names to constructors that load a
// configured snapshot into a concrete fluid state.
package registry

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/san-kum/fluidstate/internal/config"
	"github.com/san-kum/fluidstate/internal/fluidstate"
	"github.com/san-kum/fluidstate/internal/fluidsystems"
)

// Builder loads a validated snapshot into a fluid state.
type Builder func(cfg *config.Config) (fluidstate.FluidState[float64], error)

type entry struct {
	system fluidstate.System
	info   string
	build  Builder
}

type Registry struct {
	systems map[string]entry
}

// NewRegistry returns a registry holding the built-in fluid systems.
func NewRegistry() *Registry {
	r := &Registry{systems: make(map[string]entry)}

	r.mustRegister("two_phase", "saturations and mole fractions only",
		fluidsystems.TwoPhaseTwoComponent{}, buildFixed)
	r.mustRegister("ideal_gas", "single-phase ideal gas, three components",
		fluidsystems.IdealGasMixture{}, buildIdealGas)
	r.mustRegister("water_air", "compositional liquid water and gas",
		fluidsystems.WaterAir{}, buildCompositional[fluidsystems.WaterAir])
	r.mustRegister("two_phase_compositional", "compositional two-phase two-component",
		fluidsystems.TwoPhaseTwoComponent{}, buildCompositional[fluidsystems.TwoPhaseTwoComponent])

	return r
}

// Register adds a fluid system. Systems whose counts violate the fluid
// system invariants are rejected.
func (r *Registry) Register(name, info string, sys fluidstate.System, build Builder) error {
	if _, ok := r.systems[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSystem, name)
	}
	if err := fluidstate.ValidateSystem(sys); err != nil {
		return fmt.Errorf("register %s: %w", name, err)
	}
	r.systems[name] = entry{system: sys, info: info, build: build}

	c := fluidstate.CountsOf(sys)
	log.Debug().
		Str("system", name).
		Int("phases", c.Phases).
		Int("components", c.Components).
		Int("solvents", c.Solvents).
		Msg("registered fluid system")
	return nil
}

func (r *Registry) mustRegister(name, info string, sys fluidstate.System, build Builder) {
	if err := r.Register(name, info, sys, build); err != nil {
		panic(err)
	}
}

// Build validates cfg and loads it into the fluid state of cfg.System.
func (r *Registry) Build(cfg *config.Config) (fluidstate.FluidState[float64], error) {
	e, ok := r.systems[cfg.System]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSystem, cfg.System)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fs, err := e.build(cfg)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("system", cfg.System).Float64("temperature", cfg.Temperature).Msg("built fluid state")
	return fs, nil
}

func (r *Registry) Counts(name string) (fluidstate.Counts, error) {
	e, ok := r.systems[name]
	if !ok {
		return fluidstate.Counts{}, fmt.Errorf("%w: %s", ErrUnknownSystem, name)
	}
	return fluidstate.CountsOf(e.system), nil
}

// Info returns the one-line description of a registered system.
func (r *Registry) Info(name string) (string, error) {
	e, ok := r.systems[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownSystem, name)
	}
	return e.info, nil
}

func (r *Registry) ListSystems() []string {
	names := make([]string, 0, len(r.systems))
	for name := range r.systems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func checkLen(system, field string, want, got int) error {
	if want != got {
		return &ShapeError{System: system, Field: field, Want: want, Got: got}
	}
	return nil
}

func checkPhases(cfg *config.Config, c fluidstate.Counts) error {
	if err := checkLen(cfg.System, "phases", c.Phases, len(cfg.Phases)); err != nil {
		return err
	}
	for i, p := range cfg.Phases {
		field := fmt.Sprintf("phases[%d].mole_fracs", i)
		if err := checkLen(cfg.System, field, c.Components, len(p.MoleFracs)); err != nil {
			return err
		}
	}
	return nil
}

func buildFixed(cfg *config.Config) (fluidstate.FluidState[float64], error) {
	if err := checkPhases(cfg, fluidstate.CountsOf(fluidsystems.TwoPhaseTwoComponent{})); err != nil {
		return nil, err
	}
	var sat [2]float64
	var x [2][2]float64
	for i, p := range cfg.Phases {
		sat[i] = p.Saturation
		copy(x[i][:], p.MoleFracs)
	}
	return fluidsystems.NewFixed(sat, x), nil
}

func buildIdealGas(cfg *config.Config) (fluidstate.FluidState[float64], error) {
	n := fluidsystems.IdealGasMixture{}.NumComponents()
	if err := checkLen(cfg.System, "concentrations", n, len(cfg.Concentrations)); err != nil {
		return nil, err
	}
	if err := checkLen(cfg.System, "molar_masses", n, len(cfg.MolarMasses)); err != nil {
		return nil, err
	}
	var conc, molarMass [3]float64
	copy(conc[:], cfg.Concentrations)
	copy(molarMass[:], cfg.MolarMasses)
	return fluidsystems.NewIdealGas(cfg.Temperature, conc, molarMass), nil
}

func buildCompositional[S fluidstate.System](cfg *config.Config) (fluidstate.FluidState[float64], error) {
	fs := fluidsystems.NewCompositional[S]()
	c := fluidstate.CountsOf(fs)
	if err := checkPhases(cfg, c); err != nil {
		return nil, err
	}
	if err := checkLen(cfg.System, "molar_masses", c.Components, len(cfg.MolarMasses)); err != nil {
		return nil, err
	}
	if cfg.ReferencePhase >= c.Phases {
		return nil, &ShapeError{System: cfg.System, Field: "reference_phase", Want: c.Phases - 1, Got: cfg.ReferencePhase}
	}

	fs.SetTemperature(cfg.Temperature)
	fs.SetReferencePhase(cfg.ReferencePhase)
	for compIdx, m := range cfg.MolarMasses {
		fs.SetMolarMass(compIdx, m)
	}
	for phaseIdx, p := range cfg.Phases {
		fs.SetSaturation(phaseIdx, p.Saturation)
		fs.SetPhasePressure(phaseIdx, p.Pressure)
		fs.SetDensity(phaseIdx, p.Density)
		for compIdx, x := range p.MoleFracs {
			fs.SetMoleFrac(phaseIdx, compIdx, x)
		}
	}
	return fs, nil
}
