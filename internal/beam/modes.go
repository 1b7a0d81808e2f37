package beam

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Normalization selects the reference value each mode shape is divided by
type Normalization int

const (
	// NormalizeTip divides by the last (free-end) value so every shape ends
	// at 1. A zero tip value is reported as a *NormalizationError.
	NormalizeTip Normalization = iota

	// NormalizeMaxAbs divides by the entry of largest magnitude, keeping its
	// sign, so the peak of every shape is 1.
	NormalizeMaxAbs
)

// zeroRefTol is the relative magnitude below which a reference value is
// treated as zero.
const zeroRefTol = 1e-12

func (n Normalization) String() string {
	switch n {
	case NormalizeTip:
		return "tip"
	case NormalizeMaxAbs:
		return "max"
	default:
		return fmt.Sprintf("Normalization(%d)", int(n))
	}
}

// ParseNormalization accepts "tip" or "max" (empty means "tip")
func ParseNormalization(s string) (Normalization, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "tip":
		return NormalizeTip, nil
	case "max", "maxabs", "max-abs":
		return NormalizeMaxAbs, nil
	default:
		return 0, invalidf("unknown normalization %q (want tip or max)", s)
	}
}

// ExtractModes keeps the translational rows of the first count eigenvector
// columns. kept maps each eigenvector row to its global DOF; stride is the
// number of DOFs per node. It returns the shapes (free nodes × count) and
// the node of each row.
func ExtractModes(vectors *mat.Dense, kept []int, stride, count int) (*mat.Dense, []int, error) {
	rows, cols := vectors.Dims()
	if rows != len(kept) {
		return nil, nil, fmt.Errorf("eigenvectors have %d rows, DOF map has %d", rows, len(kept))
	}
	if count < 1 || count > cols {
		return nil, nil, invalidf("mode count %d out of range [1, %d]", count, cols)
	}

	var sel, nodes []int
	for r, dof := range kept {
		if dof%stride == 0 {
			sel = append(sel, r)
			nodes = append(nodes, dof/stride)
		}
	}
	if len(sel) == 0 {
		return nil, nil, invalidf("no free translational DOF to extract")
	}

	shapes := mat.NewDense(len(sel), count, nil)
	for i, r := range sel {
		for j := 0; j < count; j++ {
			shapes.Set(i, j, vectors.At(r, j))
		}
	}
	return shapes, nodes, nil
}

// Normalize scales every column of shapes in place by its reference value.
// All columns are checked before any is modified.
func Normalize(shapes *mat.Dense, method Normalization) error {
	rows, cols := shapes.Dims()
	refs := make([]float64, cols)
	col := make([]float64, rows)

	for j := 0; j < cols; j++ {
		mat.Col(col, j, shapes)
		peak := floats.Norm(col, math.Inf(1))
		if peak == 0 || math.IsNaN(peak) || math.IsInf(peak, 0) {
			return &NormalizationError{Mode: j + 1, Reason: fmt.Sprintf("shape has no finite nonzero entry (peak %g)", peak)}
		}

		switch method {
		case NormalizeTip:
			refs[j] = col[rows-1]
			if math.Abs(refs[j]) <= zeroRefTol*peak {
				return &NormalizationError{Mode: j + 1, Reason: fmt.Sprintf("tip value %g is zero relative to peak %g", refs[j], peak)}
			}
		case NormalizeMaxAbs:
			for _, v := range col {
				if math.Abs(v) == peak {
					refs[j] = v
					break
				}
			}
		default:
			return fmt.Errorf("unknown normalization %v", method)
		}
	}

	for j, ref := range refs {
		for i := 0; i < rows; i++ {
			shapes.Set(i, j, shapes.At(i, j)/ref)
		}
	}
	return nil
}
