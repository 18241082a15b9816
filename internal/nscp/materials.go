package nscp

import (
	"fmt"
	"strings"
)

// NSCP 2015 structural steel constants

const (
	// Modulus of elasticity for structural steel (Section 502.3)
	Es = 200000.0 // MPa

	// Resistance factor for flexure (Section 506.1)
	PhiFlexure = 0.90
)

// SteelGrade is a structural steel specification.
type SteelGrade struct {
	Name string
	Fy   float64 // yield strength (MPa)
	Fu   float64 // tensile strength (MPa)
}

// SteelGrades lists the grades commonly rolled into shapes and plates.
var SteelGrades = []SteelGrade{
	{Name: "A36", Fy: 248, Fu: 400},
	{Name: "A572-50", Fy: 345, Fu: 450},
	{Name: "A992", Fy: 345, Fu: 450},
}

// LookupGrade finds a grade by name, ignoring case.
func LookupGrade(name string) (SteelGrade, error) {
	for _, g := range SteelGrades {
		if strings.EqualFold(g.Name, name) {
			return g, nil
		}
	}
	return SteelGrade{}, fmt.Errorf("unknown steel grade %q", name)
}

// YieldStrain is fy/Es.
func YieldStrain(fy float64) float64 {
	return fy / Es
}

// YieldMoment is the moment at first yield, My = fy·S.
// fy in MPa, S in mm³, result in kN-m.
func YieldMoment(fy, s float64) float64 {
	return fy * s / 1e6
}

// PlasticMoment is the fully plastic moment, Mp = fy·Z.
// fy in MPa, Z in mm³, result in kN-m.
func PlasticMoment(fy, z float64) float64 {
	return fy * z / 1e6
}

// DesignFlexuralStrength is φb·Mn.
func DesignFlexuralStrength(mn float64) float64 {
	return PhiFlexure * mn
}

// ShapeFactor is Z/S, the reserve of plastic over first-yield capacity.
func ShapeFactor(z, s float64) float64 {
	if s == 0 {
		return 0
	}
	return z / s
}
