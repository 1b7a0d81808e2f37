package beam

import "gonum.org/v1/gonum/mat"

// Assemble scatters the same elemental matrix into a global ndof×ndof matrix
// once per element of conn. Contributions to shared DOFs add up.
func Assemble(conn [][4]int, ndof int, local ElementMatrix) *mat.SymDense {
	return AssembleFunc(conn, ndof, func(int) ElementMatrix { return local })
}

// AssembleFunc is Assemble with a per-element matrix. Only the upper triangle
// of each local matrix is read.
func AssembleFunc(conn [][4]int, ndof int, local func(e int) ElementMatrix) *mat.SymDense {
	global := mat.NewSymDense(ndof, nil)
	for e, dofs := range conn {
		k := local(e)
		for p := 0; p < 4; p++ {
			for q := p; q < 4; q++ {
				i, j := dofs[p], dofs[q]
				global.SetSym(i, j, global.At(i, j)+k[p][q])
			}
		}
	}
	return global
}
