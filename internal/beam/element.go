package beam

// ElementMatrix is a 4×4 elemental matrix in the DOF order
// (v₁, θ₁, v₂, θ₂): translation and rotation of the first node, then of the second.
type ElementMatrix [4][4]float64

// IsSymmetric reports whether m equals its transpose within tol
func (m *ElementMatrix) IsSymmetric(tol float64) bool {
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			d := m[i][j] - m[j][i]
			if d > tol || d < -tol {
				return false
			}
		}
	}
	return true
}

// ElementStiffness returns the Euler-Bernoulli bending stiffness matrix
// obtained from cubic Hermite shape functions
//
//	K = EI/L³ · |  12    6L   -12    6L  |
//	            |  6L    4L²  -6L    2L² |
//	            | -12   -6L    12   -6L  |
//	            |  6L    2L²  -6L    4L² |
func ElementStiffness(e, le, i float64) ElementMatrix {
	ei := e * i
	l2 := le * le
	l3 := l2 * le

	k1 := 12 * ei / l3
	k2 := 6 * ei / l2
	k3 := 4 * ei / le
	k4 := 2 * ei / le

	return ElementMatrix{
		{k1, k2, -k1, k2},
		{k2, k3, -k2, k4},
		{-k1, -k2, k1, -k2},
		{k2, k4, -k2, k3},
	}
}

// ElementMass returns the consistent mass matrix built from the same Hermite
// shape functions, scaled by ρ·A
//
//	M = ρAL/420 · |  156    22L    54    -13L  |
//	              |  22L    4L²    13L   -3L²  |
//	              |  54     13L    156   -22L  |
//	              | -13L   -3L²   -22L    4L²  |
func ElementMass(le, rho, a float64) ElementMatrix {
	l2 := le * le
	l3 := l2 * le
	ra := rho * a

	m11 := ra * 13 * le / 35
	m12 := ra * 11 * l2 / 210
	m13 := ra * 9 * le / 70
	m14 := ra * 13 * l2 / 420
	m22 := ra * l3 / 105
	m24 := ra * l3 / 140

	return ElementMatrix{
		{m11, m12, m13, -m14},
		{m12, m22, m14, -m24},
		{m13, m14, m11, -m12},
		{-m14, -m24, -m12, m22},
	}
}
