package fluidstate

var units = map[string]string{
	OpSaturation:         "-",
	OpMoleFrac:           "-",
	OpPhaseConcentration: "mol/m^3",
	OpConcentration:      "mol/m^3",
	OpDensity:            "kg/m^3",
	OpAverageMolarMass:   "kg/mol",
	OpFugacity:           "Pa",
	OpPhasePressure:      "Pa",
	OpTemperature:        "K",
}

// Unit returns the SI unit of a query's result, or "" for an unknown name.
func Unit(op string) string {
	return units[op]
}
