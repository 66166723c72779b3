package fluidsystems

// TwoPhaseTwoComponent is a generic two-phase system of two fully miscible
// components.
type TwoPhaseTwoComponent struct{}

func (TwoPhaseTwoComponent) NumPhases() int     { return 2 }
func (TwoPhaseTwoComponent) NumComponents() int { return 2 }
func (TwoPhaseTwoComponent) NumSolvents() int   { return 2 }

// IdealGasMixture is a single gas phase of three components.
type IdealGasMixture struct{}

func (IdealGasMixture) NumPhases() int     { return 1 }
func (IdealGasMixture) NumComponents() int { return 3 }
func (IdealGasMixture) NumSolvents() int   { return 3 }

// WaterAir is a liquid water phase and a gas phase with air dissolved as a
// trace in the liquid.
type WaterAir struct{}

func (WaterAir) NumPhases() int     { return 2 }
func (WaterAir) NumComponents() int { return 2 }
func (WaterAir) NumSolvents() int   { return 1 }

// Phase and component indices of WaterAir.
const (
	WPhaseIdx = 0
	GPhaseIdx = 1

	H2OIdx = 0
	AirIdx = 1
)

// Molar masses [kg/mol].
const (
	MolarMassH2O = 0.018015
	MolarMassAir = 0.02896
	MolarMassN2  = 0.0280134
	MolarMassO2  = 0.0319988
	MolarMassCO2 = 0.0440095
)
