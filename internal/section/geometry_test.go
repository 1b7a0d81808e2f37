package section

import (
	"errors"
	"math"
	"testing"
)

func TestRectangle(t *testing.T) {
	t.Parallel()
	r := Rectangle{Width: 0.06, Height: 0.02}
	if got, want := r.Area(), 0.0012; math.Abs(got-want) > 1e-15 {
		t.Errorf("Area() = %v, want %v", got, want)
	}
	if got, want := r.SecondMoment(), 4e-8; math.Abs(got-want) > 1e-20 {
		t.Errorf("SecondMoment() = %v, want %v", got, want)
	}
	if err := r.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestRectangleValidate(t *testing.T) {
	t.Parallel()
	for _, r := range []Rectangle{{0, 1}, {1, 0}, {-1, 1}} {
		var verr *ValidationError
		if err := r.Validate(); !errors.As(err, &verr) {
			t.Errorf("Validate(%+v) = %v, want *ValidationError", r, err)
		}
	}
}

func TestPolygonMatchesRectangle(t *testing.T) {
	t.Parallel()
	// Offset from the origin so the centroid shift is exercised.
	tests := []struct {
		name     string
		vertices []Point
	}{
		{
			name: "counter-clockwise",
			vertices: []Point{
				{X: 1, Y: 2}, {X: 1.06, Y: 2}, {X: 1.06, Y: 2.02}, {X: 1, Y: 2.02},
			},
		},
		{
			name: "clockwise",
			vertices: []Point{
				{X: 1, Y: 2}, {X: 1, Y: 2.02}, {X: 1.06, Y: 2.02}, {X: 1.06, Y: 2},
			},
		},
	}
	r := Rectangle{Width: 0.06, Height: 0.02}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := &Polygon{Vertices: tt.vertices}
			if err := p.Validate(); err != nil {
				t.Fatalf("Validate() = %v", err)
			}
			if got := p.Area(); math.Abs(got-r.Area()) > 1e-12 {
				t.Errorf("Area() = %v, want %v", got, r.Area())
			}
			if got := p.SecondMoment(); math.Abs(got-r.SecondMoment())/r.SecondMoment() > 1e-9 {
				t.Errorf("SecondMoment() = %v, want %v", got, r.SecondMoment())
			}
			props := p.CalculateProperties()
			if math.Abs(props.CentroidY-2.01) > 1e-12 || math.Abs(props.Height-0.02) > 1e-12 {
				t.Errorf("centroid/height = %v/%v", props.CentroidY, props.Height)
			}
		})
	}
}

func TestPolygonFarFromOrigin(t *testing.T) {
	t.Parallel()
	r := Rectangle{Width: 0.06, Height: 0.02}
	for _, y0 := range []float64{10, 100, 1000} {
		p := &Polygon{Vertices: []Point{
			{X: y0, Y: y0}, {X: y0 + 0.06, Y: y0}, {X: y0 + 0.06, Y: y0 + 0.02}, {X: y0, Y: y0 + 0.02},
		}}
		// The stored vertices are the rectangle up to rounding of y0 + h
		h := (y0 + 0.02) - y0
		b := (y0 + 0.06) - y0
		want := b * h * h * h / 12
		if got := p.SecondMoment(); math.Abs(got-want)/want > 1e-9 {
			t.Errorf("y0 = %g: SecondMoment() = %v, want %v (rectangle %v)", y0, got, want, r.SecondMoment())
		}
		if got := p.Area(); math.Abs(got-b*h)/(b*h) > 1e-12 {
			t.Errorf("y0 = %g: Area() = %v, want %v", y0, got, b*h)
		}
	}
}

func TestPolygonTSection(t *testing.T) {
	t.Parallel()
	// Web 0.3 x 0.4 with a 0.6 x 0.1 flange on top.
	p := &Polygon{Vertices: []Point{
		{X: 0.15, Y: 0}, {X: 0.45, Y: 0}, {X: 0.45, Y: 0.4}, {X: 0.6, Y: 0.4},
		{X: 0.6, Y: 0.5}, {X: 0, Y: 0.5}, {X: 0, Y: 0.4}, {X: 0.15, Y: 0.4},
	}}
	props := p.CalculateProperties()
	if math.Abs(props.Area-0.18) > 1e-12 {
		t.Errorf("Area = %v, want 0.18", props.Area)
	}
	// ȳ = (0.12·0.2 + 0.06·0.45) / 0.18
	wantY := (0.12*0.2 + 0.06*0.45) / 0.18
	if math.Abs(props.CentroidY-wantY) > 1e-12 {
		t.Errorf("CentroidY = %v, want %v", props.CentroidY, wantY)
	}
	web := 0.3*math.Pow(0.4, 3)/12 + 0.12*math.Pow(0.2-wantY, 2)
	flange := 0.6*math.Pow(0.1, 3)/12 + 0.06*math.Pow(0.45-wantY, 2)
	if math.Abs(props.Ixx-(web+flange)) > 1e-12 {
		t.Errorf("Ixx = %v, want %v", props.Ixx, web+flange)
	}
}

func TestPolygonValidate(t *testing.T) {
	t.Parallel()
	tests := []*Polygon{
		{Vertices: []Point{{0, 0}, {1, 0}}},
		{Vertices: []Point{{0, 0}, {1, 0}, {2, 0}}},
	}
	for _, p := range tests {
		var verr *ValidationError
		if err := p.Validate(); !errors.As(err, &verr) {
			t.Errorf("Validate(%v) = %v, want *ValidationError", p.Vertices, err)
		}
	}
}
