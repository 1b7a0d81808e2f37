package section

import "fmt"

// Shape is a beam cross-section with the two properties bending vibration needs
type Shape interface {
	Area() float64         // m²
	SecondMoment() float64 // m⁴, about the horizontal centroidal axis
	Validate() error
}

// Rectangle is a solid rectangular cross-section
type Rectangle struct {
	Width  float64 `json:"width" toml:"width"`   // b (m)
	Height float64 `json:"height" toml:"height"` // h (m), in the bending plane
}

// Polygon represents an arbitrary cross-section defined by vertices
// The section is defined in a local coordinate system where:
// - Y-axis points upward (bending plane)
// - X-axis points to the right
// - Origin can be at any convenient location
type Polygon struct {
	Name string `json:"name,omitempty" toml:"name,omitempty"`

	// Vertices should be listed counter-clockwise for the outer boundary.
	// The section is assumed to be a simple polygon (no holes).
	Vertices []Point `json:"vertices" toml:"vertices"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x" toml:"x"` // m
	Y float64 `json:"y" toml:"y"` // m
}

// Properties holds calculated geometric properties
type Properties struct {
	Width  float64 // Maximum width (m)
	Height float64 // Total height (m)
	Area   float64 // Gross area (m²)

	// Centroid location
	CentroidX float64 // m
	CentroidY float64 // m

	// Second moment of area about the horizontal centroidal axis (m⁴)
	Ixx float64

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Validate checks the rectangle dimensions
func (r Rectangle) Validate() error {
	if !(r.Width > 0) {
		return &ValidationError{msg: fmt.Sprintf("width must be positive, got %g", r.Width)}
	}
	if !(r.Height > 0) {
		return &ValidationError{msg: fmt.Sprintf("height must be positive, got %g", r.Height)}
	}
	return nil
}

// Validate checks if the polygon definition is valid
func (p *Polygon) Validate() error {
	if len(p.Vertices) < 3 {
		return &ValidationError{"section must have at least 3 vertices"}
	}
	if p.Area() <= 0 {
		return &ValidationError{"section polygon has zero area"}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
