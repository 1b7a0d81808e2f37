package section

import "math"

// Area returns b·h
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// SecondMoment returns b·h³/12
func (r Rectangle) SecondMoment() float64 {
	return r.Width * r.Height * r.Height * r.Height / 12
}

// Area returns the enclosed polygon area
func (p *Polygon) Area() float64 {
	area, _, _ := p.calculateAreaAndCentroid()
	return area
}

// SecondMoment returns Ixx about the centroidal axis parallel to X
func (p *Polygon) SecondMoment() float64 {
	return p.CalculateProperties().Ixx
}

// CalculateProperties computes geometric properties of the section
func (p *Polygon) CalculateProperties() *Properties {
	props := &Properties{}

	if len(p.Vertices) < 3 {
		return props
	}

	// Find bounding box
	props.MinX, props.MaxX = p.Vertices[0].X, p.Vertices[0].X
	props.MinY, props.MaxY = p.Vertices[0].Y, p.Vertices[0].Y

	for _, v := range p.Vertices {
		props.MinX = math.Min(props.MinX, v.X)
		props.MaxX = math.Max(props.MaxX, v.X)
		props.MinY = math.Min(props.MinY, v.Y)
		props.MaxY = math.Max(props.MaxY, v.Y)
	}

	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	props.Area, props.CentroidX, props.CentroidY = p.calculateAreaAndCentroid()
	if props.Area > 0 {
		props.Ixx = p.secondMomentAbout(props.CentroidX, props.CentroidY)
	}

	return props
}

// calculateAreaAndCentroid uses the shoelace formula. Coordinates are taken
// relative to the first vertex so a profile far from the origin keeps its
// precision.
func (p *Polygon) calculateAreaAndCentroid() (area, cx, cy float64) {
	n := len(p.Vertices)
	if n < 3 {
		return 0, 0, 0
	}

	o := p.Vertices[0]
	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		xi, yi := p.Vertices[i].X-o.X, p.Vertices[i].Y-o.Y
		xj, yj := p.Vertices[j].X-o.X, p.Vertices[j].Y-o.Y
		cross := xi*yj - xj*yi
		signedArea += cross
		sumX += (xi + xj) * cross
		sumY += (yi + yj) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = o.X + sumX/(6*signedArea)
		cy = o.Y + sumY/(6*signedArea)
	}

	return area, cx, cy
}

// secondMomentAbout integrates (y - cy)² over the polygon with coordinates
// relative to (cx, cy), independent of vertex orientation
func (p *Polygon) secondMomentAbout(cx, cy float64) float64 {
	n := len(p.Vertices)
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		xi, yi := p.Vertices[i].X-cx, p.Vertices[i].Y-cy
		xj, yj := p.Vertices[j].X-cx, p.Vertices[j].Y-cy
		cross := xi*yj - xj*yi
		sum += cross * (yi*yi + yi*yj + yj*yj)
	}
	return math.Abs(sum / 12)
}
