package section

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// LoadFromFile loads a polygon profile from a JSON file
func LoadFromFile(filepath string) (*Polygon, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var p Polygon
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &ValidationError{msg: fmt.Sprintf("parse %s: %v", filepath, err)}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Rigidity holds the section quantities that enter the beam equation
type Rigidity struct {
	EI           float64 // flexural rigidity (N·m²)
	MassPerLen   float64 // ρA (kg/m)
	WaveConstant float64 // √(EI/ρA) (m²/s), 0 when ρA is 0
}

// Analyze combines the section of s with a modulus e (Pa) and density rho
// (kg/m³)
func Analyze(s Shape, e, rho float64) (Rigidity, error) {
	if err := s.Validate(); err != nil {
		return Rigidity{}, err
	}
	if !(e > 0) {
		return Rigidity{}, &ValidationError{msg: fmt.Sprintf("modulus must be positive, got %g", e)}
	}
	if !(rho >= 0) {
		return Rigidity{}, &ValidationError{msg: fmt.Sprintf("density must not be negative, got %g", rho)}
	}

	r := Rigidity{
		EI:         e * s.SecondMoment(),
		MassPerLen: rho * s.Area(),
	}
	if r.MassPerLen > 0 {
		r.WaveConstant = math.Sqrt(r.EI / r.MassPerLen)
	}
	return r, nil
}
