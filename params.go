package main

// Params holds the engine tunables. The defaults reproduce the reference
// behavior; every field can be overridden from the config file.
type Params struct {
	K               float64 // Coulomb constant
	ExclusionRadius float64 // contributions inside this distance are skipped entirely
	ChargeRadius    float64 // charge body radius; hit radius for opposite-polarity charges
	CatchAllRadius  float64 // hit radius for any charge regardless of polarity
	StepSize        float64 // nominal integration step
	MinStep         float64 // adaptive step floor
	MinFieldMag     float64 // below this the field counts as vanished
	MaxSteps        int     // step cap per trace
	Density         int     // field lines seeded per charge
	MinLinePoints   int     // shorter traces are discarded
}

// DefaultParams returns the stock tunables.
func DefaultParams() Params {
	return Params{
		K:               8.99e9,
		ExclusionRadius: 5,
		ChargeRadius:    20,
		CatchAllRadius:  15,
		StepSize:        3,
		MinStep:         0.5,
		MinFieldMag:     1e-3,
		MaxSteps:        2000,
		Density:         24,
		MinLinePoints:   6,
	}
}
