package beam

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/alexiusacademia/beamvib/internal/eigen"
	"gonum.org/v1/gonum/mat"
)

// Model is an assembled beam. Its mesh and global matrices are built once by
// NewModel and only read afterwards; a Model is safe for concurrent Analyze
// calls.
type Model struct {
	Params Params
	Mesh   *Mesh

	k, m        *mat.SymDense
	constrained []int
	logger      *slog.Logger
}

// Option configures a Model
type Option func(*Model)

// WithLogger sets the logger used for diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewModel validates p, meshes the beam and assembles the global stiffness
// and mass matrices
func NewModel(p Params, opts ...Option) (*Model, error) {
	model := &Model{Params: p, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(model)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	mesh, err := NewMesh(p.Length, p.Elements)
	if err != nil {
		return nil, err
	}
	model.Mesh = mesh

	model.constrained, err = ConstrainedDOFs(p.supports(), mesh.Nodes)
	if err != nil {
		return nil, err
	}

	le := mesh.ElementLength
	ke := ElementStiffness(p.YoungsModulus, le, p.Inertia())
	me := ElementMass(le, p.Density, p.Area())
	model.k = Assemble(mesh.Connectivity, mesh.DOFs, ke)
	model.m = Assemble(mesh.Connectivity, mesh.DOFs, me)

	model.logger.Debug("model assembled",
		"elements", mesh.Elements,
		"dofs", mesh.DOFs,
		"constrained", model.constrained,
		"A", p.Area(),
		"I", p.Inertia(),
	)
	return model, nil
}

// Stiffness returns the global stiffness matrix K. It must not be modified.
func (m *Model) Stiffness() mat.Symmetric { return m.k }

// Mass returns the global mass matrix M. It must not be modified.
func (m *Model) Mass() mat.Symmetric { return m.m }

// ConstrainedDOFs returns the eliminated global DOFs
func (m *Model) ConstrainedDOFs() []int {
	return append([]int(nil), m.constrained...)
}

// IsCantilever reports whether exactly node 0 is fully fixed
func (m *Model) IsCantilever() bool {
	return len(m.constrained) == 2 && m.constrained[0] == 0 && m.constrained[1] == 1
}

// AnalysisOptions controls mode extraction
type AnalysisOptions struct {
	Modes         int // number of mode shapes to extract; 0 means all
	Normalization Normalization
}

// Analysis is the result of one modal analysis
type Analysis struct {
	Eigenvalues []float64  // λ = ω² (rad²/s²), all of them, ascending
	Vectors     *mat.Dense // reduced eigenvectors, columns aligned with Eigenvalues
	KeptDOFs    []int      // global DOF of each eigenvector row

	Modes       int        // number of extracted shapes
	Shapes      *mat.Dense // free nodes × Modes, normalized
	Nodes       []int      // node of each shape row
	X           []float64  // coordinate of each shape row (m)
	Frequencies []float64  // natural frequencies f = ω/2π (Hz), len Modes
}

// Analyze reduces K and M by the supports, solves K·v = λ·M·v and extracts
// the normalized translational mode shapes
func (m *Model) Analyze(opts AnalysisOptions) (*Analysis, error) {
	kr, kept, err := Reduce(m.k, m.constrained)
	if err != nil {
		return nil, err
	}
	mr, _, err := Reduce(m.m, m.constrained)
	if err != nil {
		return nil, err
	}
	m.logger.Debug("boundary conditions applied", "full", m.Mesh.DOFs, "reduced", len(kept))

	start := time.Now()
	res, err := eigen.SolveGeneralized(kr, mr)
	if err != nil {
		return nil, fmt.Errorf("modal analysis of %d DOFs: %w", len(kept), err)
	}
	m.logger.Debug("eigenproblem solved", "pairs", res.Len(), "elapsed", time.Since(start))

	count := opts.Modes
	if count == 0 {
		count = res.Len()
	}
	shapes, nodes, err := ExtractModes(res.Vectors, kept, DOFsPerNode, count)
	if err != nil {
		return nil, err
	}
	if err := Normalize(shapes, opts.Normalization); err != nil {
		return nil, err
	}

	a := &Analysis{
		Eigenvalues: res.Values,
		Vectors:     res.Vectors,
		KeptDOFs:    kept,
		Modes:       count,
		Shapes:      shapes,
		Nodes:       nodes,
		X:           make([]float64, len(nodes)),
		Frequencies: make([]float64, count),
	}
	for i, n := range nodes {
		a.X[i] = m.Mesh.X[n]
	}
	for i := range a.Frequencies {
		a.Frequencies[i] = a.AngularFrequency(i) / (2 * math.Pi)
	}
	return a, nil
}

// AngularFrequency returns ω = √λ (rad/s) of mode i (0-based). Eigenvalues
// that are negative through rounding map to 0.
func (a *Analysis) AngularFrequency(i int) float64 {
	return math.Sqrt(math.Max(a.Eigenvalues[i], 0))
}

// Shape returns a copy of mode shape j (0-based)
func (a *Analysis) Shape(j int) []float64 {
	return mat.Col(nil, j, a.Shapes)
}

// Plotter receives mode shapes for display
type Plotter interface {
	Plot(label string, x, y []float64)
}

// Plot sends the first n mode shapes to sink; n <= 0 or n > Modes sends all
func (a *Analysis) Plot(sink Plotter, n int) {
	if n <= 0 || n > a.Modes {
		n = a.Modes
	}
	for j := 0; j < n; j++ {
		sink.Plot(ModeLabel(j, a.Frequencies[j]), a.X, a.Shape(j))
	}
}

// ModeLabel returns the display name of mode j (0-based)
func ModeLabel(j int, freq float64) string {
	return fmt.Sprintf("Mode %d (%.1f Hz)", j+1, freq)
}
