package beam

import "gonum.org/v1/gonum/mat"

// Reduce removes the rows and columns of the constrained DOFs from a,
// keeping the remaining DOFs in their original order. It returns the reduced
// matrix and, for each of its rows, the global DOF it came from.
func Reduce(a mat.Symmetric, constrained []int) (*mat.SymDense, []int, error) {
	n := a.SymmetricDim()
	drop := make([]bool, n)
	for _, d := range constrained {
		if d < 0 || d >= n {
			return nil, nil, invalidf("constrained DOF %d out of range [0, %d)", d, n)
		}
		drop[d] = true
	}

	kept := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !drop[i] {
			kept = append(kept, i)
		}
	}
	if len(kept) == 0 {
		return nil, nil, invalidf("all %d DOFs are constrained", n)
	}

	r := mat.NewSymDense(len(kept), nil)
	for ri, i := range kept {
		for rj := ri; rj < len(kept); rj++ {
			r.SetSym(ri, rj, a.At(i, kept[rj]))
		}
	}
	return r, kept, nil
}
