package config

import "sort"

var Presets = map[string]map[string]*Config{
	"two_phase": {
		"drainage": {
			System: "two_phase", Temperature: DefaultTemperature,
			Phases: []PhaseConfig{
				{Name: "wetting", Saturation: 0.8, MoleFracs: []float64{0.99, 0.01}},
				{Name: "nonwetting", Saturation: 0.2, MoleFracs: []float64{0.05, 0.95}},
			},
		},
		"imbibition": {
			System: "two_phase", Temperature: DefaultTemperature,
			Phases: []PhaseConfig{
				{Name: "wetting", Saturation: 0.35, MoleFracs: []float64{0.97, 0.03}},
				{Name: "nonwetting", Saturation: 0.65, MoleFracs: []float64{0.1, 0.9}},
			},
		},
	},
	"ideal_gas": {
		"air": {
			System: "ideal_gas", Temperature: DefaultTemperature,
			Concentrations: []float64{32.41, 8.594, 0.0164},
			MolarMasses:    []float64{0.0280134, 0.0319988, 0.0440095},
		},
		"flue": {
			System: "ideal_gas", Temperature: 420.0,
			Concentrations: []float64{22.1, 1.43, 4.30},
			MolarMasses:    []float64{0.0280134, 0.0319988, 0.0440095},
		},
	},
	"water_air": {
		"ambient": DefaultConfig(),
		"deep": {
			System: "water_air", Temperature: 318.15, ReferencePhase: 1,
			Phases: []PhaseConfig{
				{Name: "water", Saturation: 0.9, Pressure: 1.5e6, Density: 994.0, MoleFracs: []float64{0.9997, 0.0003}},
				{Name: "gas", Saturation: 0.1, Pressure: 1.48e6, Density: 16.2, MoleFracs: []float64{0.006, 0.994}},
			},
			MolarMasses: []float64{0.018015, 0.02896},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(system, preset string) *Config {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	cfg, ok := systemPresets[preset]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(system string) []string {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(systemPresets))
	for name := range systemPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
