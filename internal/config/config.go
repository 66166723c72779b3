package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSystem      = "water_air"
	DefaultTemperature = 293.15
	DefaultPressure    = 1.0e5
)

var ErrInvalidConfig = errors.New("config: invalid snapshot configuration")

// Config describes one equilibrium snapshot to load into a fluid state.
// Which fields matter depends on the system; the registry checks their shape.
type Config struct {
	System         string        `yaml:"system" validate:"required"`
	Temperature    float64       `yaml:"temperature" validate:"gt=0"`
	ReferencePhase int           `yaml:"reference_phase" validate:"gte=0"`
	Phases         []PhaseConfig `yaml:"phases" validate:"dive"`
	MolarMasses    []float64     `yaml:"molar_masses" validate:"dive,gt=0"`
	Concentrations []float64     `yaml:"concentrations" validate:"dive,gte=0"`
}

type PhaseConfig struct {
	Name       string    `yaml:"name"`
	Saturation float64   `yaml:"saturation" validate:"gte=0,lte=1"`
	Pressure   float64   `yaml:"pressure" validate:"gte=0"`
	Density    float64   `yaml:"density" validate:"gte=0"`
	MoleFracs  []float64 `yaml:"mole_fracs" validate:"dive,gte=0,lte=1"`
}

var validate = validator.New()

func DefaultConfig() *Config {
	return &Config{
		System:         DefaultSystem,
		Temperature:    DefaultTemperature,
		ReferencePhase: 1,
		Phases: []PhaseConfig{
			{Name: "water", Saturation: 0.5, Pressure: DefaultPressure, Density: 998.2, MoleFracs: []float64{0.99998, 0.00002}},
			{Name: "gas", Saturation: 0.5, Pressure: DefaultPressure, Density: 1.19, MoleFracs: []float64{0.023, 0.977}},
		},
		MolarMasses: []float64{0.018015, 0.02896},
	}
}

// Load reads a snapshot file over the defaults. List fields replace the
// default lists rather than merging with them.
func Load(path string) (*Config, error) {
	base := DefaultConfig()
	base.Phases, base.MolarMasses, base.Concentrations = nil, nil, nil
	return load(path, base, false)
}

// LoadOver reads a snapshot file on top of base, which is left unchanged.
// Fields present in the file win, and a list present in the file replaces
// the whole list of base. The file may not switch base to another system.
func LoadOver(path string, base *Config) (*Config, error) {
	return load(path, base, true)
}

func load(path string, base *Config, pinSystem bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if pinSystem && cfg.System != base.System {
		return nil, fmt.Errorf("%w: %s describes %s, not %s", ErrInvalidConfig, path, cfg.System, base.System)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Clone returns a deep copy so presets can be modified by callers.
func (c *Config) Clone() *Config {
	out := *c
	out.Phases = make([]PhaseConfig, len(c.Phases))
	for i, p := range c.Phases {
		p.MoleFracs = append([]float64(nil), p.MoleFracs...)
		out.Phases[i] = p
	}
	out.MolarMasses = append([]float64(nil), c.MolarMasses...)
	out.Concentrations = append([]float64(nil), c.Concentrations...)
	return &out
}
