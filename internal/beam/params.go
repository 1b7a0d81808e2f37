package beam

import (
	"math"

	"github.com/alexiusacademia/beamvib/internal/section"
)

// Params describes a prismatic beam and its discretization
type Params struct {
	// Geometry (m)
	Length float64 // L - beam length
	Height float64 // h - section depth in the bending plane
	Width  float64 // b - section width

	// Material
	YoungsModulus float64 // E (Pa)
	Density       float64 // ρ (kg/m³)

	// Mesh
	Elements int // n - number of finite elements

	// Supports lists the fixed DOFs. Nil means Cantilever().
	Supports []Support

	// Profile, when set, replaces the b×h rectangle as the cross-section
	Profile *section.Polygon
}

// Validate checks every parameter without building anything
func (p Params) Validate() error {
	if p.Elements < 1 {
		return invalidf("element count must be at least 1, got %d", p.Elements)
	}
	if !positive(p.Length) {
		return invalidf("length must be positive, got %g", p.Length)
	}
	if !positive(p.YoungsModulus) {
		return invalidf("Young's modulus must be positive, got %g", p.YoungsModulus)
	}
	// Zero density is a valid stiffness model; the eigensolve rejects it.
	if !(p.Density >= 0) || math.IsInf(p.Density, 0) {
		return invalidf("density must not be negative, got %g", p.Density)
	}
	if err := p.Section().Validate(); err != nil {
		return invalidf("invalid section: %v", err)
	}
	if _, err := ConstrainedDOFs(p.supports(), p.Elements+1); err != nil {
		return err
	}
	return nil
}

// Section returns the cross-section in use
func (p Params) Section() section.Shape {
	if p.Profile != nil {
		return p.Profile
	}
	return section.Rectangle{Width: p.Width, Height: p.Height}
}

// Area returns the cross-sectional area A (m²)
func (p Params) Area() float64 {
	return p.Section().Area()
}

// Inertia returns the second moment of area I (m⁴)
func (p Params) Inertia() float64 {
	return p.Section().SecondMoment()
}

// ElementLength returns Le = L/n (m)
func (p Params) ElementLength() float64 {
	return p.Length / float64(p.Elements)
}

func (p Params) supports() []Support {
	if p.Supports == nil {
		return Cantilever()
	}
	return p.Supports
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
