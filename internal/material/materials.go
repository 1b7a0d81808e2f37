// Package material provides elastic constants for common beam materials.
package material

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Material is a linear elastic isotropic material
type Material struct {
	Name    string
	E       float64 // Young's modulus (Pa)
	Density float64 // ρ (kg/m³)
}

const (
	// Aluminium alloy used in the reference cantilever example
	AluminumE       = 7e10 // Pa
	AluminumDensity = 2780 // kg/m³

	// Structural steel (NSCP 2015 Section 420.2.2, Es = 200 000 MPa)
	SteelE       = 200e9 // Pa
	SteelDensity = 7850  // kg/m³

	// Normal weight concrete
	ConcreteDensity = 2400 // kg/m³
)

var presets = map[string]Material{
	"aluminum": {Name: "aluminum", E: AluminumE, Density: AluminumDensity},
	"steel":    {Name: "steel", E: SteelE, Density: SteelDensity},
}

// ConcreteModulus returns Ec = 4700·√f'c (MPa) for normal weight concrete
// NSCP 2015 Section 419.2.2.1, converted to Pa
func ConcreteModulus(fc float64) float64 {
	return 4700 * math.Sqrt(fc) * 1e6
}

// Concrete returns a normal weight concrete with strength f'c (MPa)
func Concrete(fc float64) Material {
	return Material{
		Name:    fmt.Sprintf("concrete-%g", fc),
		E:       ConcreteModulus(fc),
		Density: ConcreteDensity,
	}
}

// Lookup returns a preset by name. Concrete is selected as "concrete" (f'c = 28 MPa)
// or "concrete-<fc>", e.g. "concrete-35".
func Lookup(name string) (Material, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if m, ok := presets[key]; ok {
		return m, nil
	}
	if key == "concrete" {
		return Concrete(28), nil
	}
	if rest, ok := strings.CutPrefix(key, "concrete-"); ok {
		var fc float64
		if _, err := fmt.Sscanf(rest, "%g", &fc); err != nil || fc <= 0 {
			return Material{}, fmt.Errorf("invalid concrete strength %q", rest)
		}
		return Concrete(fc), nil
	}
	return Material{}, fmt.Errorf("unknown material %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Names lists the available preset names
func Names() []string {
	names := make([]string, 0, len(presets)+1)
	for k := range presets {
		names = append(names, k)
	}
	names = append(names, "concrete[-fc]")
	sort.Strings(names)
	return names
}
