// Package eigen solves the dense generalized symmetric-definite eigenproblem
// K v = λ M v on top of gonum's Cholesky and symmetric eigen decompositions.
package eigen

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrNotPositiveDefinite is returned when the mass matrix cannot be factorized
// as L·Lᵀ, i.e. it is singular or indefinite.
var ErrNotPositiveDefinite = errors.New("mass matrix is not positive definite")

// ErrNoConvergence is returned when the symmetric eigen decomposition fails.
var ErrNoConvergence = errors.New("symmetric eigen decomposition did not converge")

// Result holds the eigenpairs of a generalized problem
type Result struct {
	Values  []float64  // λ, ascending
	Vectors *mat.Dense // column j pairs with Values[j]
}

// Len returns the number of eigenpairs
func (r *Result) Len() int {
	return len(r.Values)
}

// Vector returns a copy of the j-th eigenvector
func (r *Result) Vector(j int) []float64 {
	return mat.Col(nil, j, r.Vectors)
}

// SolveGeneralized returns all eigenpairs of K v = λ M v sorted ascending by λ.
//
// M is reduced to standard form through its Cholesky factor M = L·Lᵀ:
//
//	C = L⁻¹·K·L⁻ᵀ,  C·y = λ·y,  v = L⁻ᵀ·y
//
// Eigenvectors come out M-orthonormal (vᵀ·M·v = 1).
func SolveGeneralized(k, m mat.Symmetric) (*Result, error) {
	n := k.SymmetricDim()
	if m.SymmetricDim() != n {
		return nil, fmt.Errorf("dimension mismatch: K is %dx%d, M is %dx%d", n, n, m.SymmetricDim(), m.SymmetricDim())
	}
	if n == 0 {
		return nil, errors.New("empty eigenproblem")
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(m); !ok {
		return nil, fmt.Errorf("cholesky factorization failed: %w", ErrNotPositiveDefinite)
	}

	var l mat.TriDense
	chol.LTo(&l)

	var linv mat.TriDense
	if err := linv.InverseTri(&l); err != nil {
		// A Condition error means L is numerically singular.
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, fmt.Errorf("mass matrix condition number %.3g: %w", float64(cond), ErrNotPositiveDefinite)
		}
		return nil, err
	}

	var tmp, c mat.Dense
	tmp.Mul(&linv, k)
	c.Mul(&tmp, linv.T())

	// C is symmetric in exact arithmetic; average out the rounding.
	cs := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			cs.SetSym(i, j, 0.5*(c.At(i, j)+c.At(j, i)))
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(cs, true); !ok {
		return nil, ErrNoConvergence
	}
	values := es.Values(nil)
	var y mat.Dense
	es.VectorsTo(&y)

	var v mat.Dense
	v.Mul(linv.T(), &y)

	// EigenSym already returns ascending values; sort anyway so the ordering
	// does not depend on the LAPACK implementation.
	inds := make([]int, n)
	floats.Argsort(values, inds)

	vectors := mat.NewDense(n, n, nil)
	col := make([]float64, n)
	for j, src := range inds {
		mat.Col(col, src, &v)
		vectors.SetCol(j, col)
	}

	return &Result{Values: values, Vectors: vectors}, nil
}
