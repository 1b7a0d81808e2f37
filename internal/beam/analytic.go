package beam

import "math"

// cantileverRoots are the first roots βₙL of 1 + cos(βL)·cosh(βL) = 0
var cantileverRoots = []float64{
	1.8751040687119611,
	4.6940911329741745,
	7.8547574382376126,
	10.995540734875467,
	14.137168391046471,
}

// CantileverRoot returns βₙL for mode n (0-based). Beyond the tabulated
// roots it uses the asymptote (2n+1)π/2.
func CantileverRoot(n int) float64 {
	if n < len(cantileverRoots) {
		return cantileverRoots[n]
	}
	return float64(2*n+1) * math.Pi / 2
}

// CantileverFrequencies returns the closed-form Euler-Bernoulli natural
// frequencies (Hz) of a clamped-free beam
//
//	fₙ = (βₙL)² / (2π L²) · √(EI / ρA)
func CantileverFrequencies(p Params, count int) []float64 {
	c := math.Sqrt(p.YoungsModulus * p.Inertia() / (p.Density * p.Area()))
	freqs := make([]float64, count)
	for i := range freqs {
		bl := CantileverRoot(i)
		freqs[i] = bl * bl / (2 * math.Pi * p.Length * p.Length) * c
	}
	return freqs
}
