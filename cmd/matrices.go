package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/beamvib/internal/beam"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

var (
	matricesBeam    beamFlags
	matricesExcerpt int
	matricesReduced bool
)

var matricesCmd = &cobra.Command{
	Use:   "matrices",
	Short: "Show the element and global stiffness and mass matrices",
	Long: `Print the 4×4 element stiffness and consistent mass matrices of the
beam element, the sizes of the assembled global matrices and an excerpt
of them.

Element DOF order is (w₁, θ₁, w₂, θ₂): translation and rotation at the
start node followed by the end node.

Examples:
  # Element matrices of a 10 element cantilever
  beamvib matrices -n 10

  # Corners of the reduced matrices after applying pinned supports
  beamvib matrices -n 20 -s pinned-pinned --reduced --excerpt 4`,
	RunE: runMatrices,
}

func init() {
	rootCmd.AddCommand(matricesCmd)

	matricesBeam.register(matricesCmd)
	matricesCmd.Flags().IntVar(&matricesExcerpt, "excerpt", 3, "Rows and columns shown from each corner of the global matrices (0 for all)")
	matricesCmd.Flags().BoolVar(&matricesReduced, "reduced", false, "Show the matrices after removing the constrained DOFs")
}

func runMatrices(cmd *cobra.Command, args []string) error {
	cfg, err := matricesBeam.config(cmd)
	if err != nil {
		return err
	}
	p, err := cfg.Params()
	if err != nil {
		return err
	}
	model, err := beam.NewModel(p, beam.WithLogger(logger))
	if err != nil {
		return err
	}

	le := p.ElementLength()
	ke := beam.ElementStiffness(p.YoungsModulus, le, p.Inertia())
	me := beam.ElementMass(le, p.Density, p.Area())

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     EULER-BERNOULLI BEAM ELEMENT MATRICES")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Element length (Le):\t%.6g m\n", le)
	fmt.Fprintf(w, "  EI:\t%.6g N·m²\n", p.YoungsModulus*p.Inertia())
	fmt.Fprintf(w, "  ρA:\t%.6g kg/m\n", p.Density*p.Area())
	w.Flush()
	fmt.Fprintln(out)

	printElementMatrix(out, "ELEMENT STIFFNESS (Ke):", ke)
	printElementMatrix(out, "ELEMENT MASS (Me):", me)

	k, m := model.Stiffness(), model.Mass()
	title := "GLOBAL"
	if matricesReduced {
		var kept []int
		if k, kept, err = beam.Reduce(k, model.ConstrainedDOFs()); err != nil {
			return err
		}
		if m, _, err = beam.Reduce(m, model.ConstrainedDOFs()); err != nil {
			return err
		}
		title = fmt.Sprintf("REDUCED (%d of %d DOFs free)", len(kept), model.Mesh.DOFs)
	}

	fmt.Fprintf(out, "%s STIFFNESS (K), %d×%d:\n", title, k.SymmetricDim(), k.SymmetricDim())
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	printGlobalMatrix(out, k, matricesExcerpt)

	fmt.Fprintf(out, "%s MASS (M), %d×%d:\n", title, m.SymmetricDim(), m.SymmetricDim())
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	printGlobalMatrix(out, m, matricesExcerpt)

	fmt.Fprintf(out, "  Constrained DOFs: %v\n\n", model.ConstrainedDOFs())
	return nil
}

func printElementMatrix(out io.Writer, title string, a beam.ElementMatrix) {
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i := range a {
		fmt.Fprint(w, "  ")
		for j := range a[i] {
			fmt.Fprintf(w, "%.6g\t", a[i][j])
		}
		fmt.Fprintln(w)
	}
	w.Flush()

	status := "✓"
	if !a.IsSymmetric(1e-12) {
		status = "⚠ not symmetric"
	}
	fmt.Fprintf(out, "  Symmetric: %s\n\n", status)
}

func printGlobalMatrix(out io.Writer, a mat.Matrix, excerpt int) {
	opts := []mat.FormatOption{mat.Prefix("  "), mat.Squeeze()}
	if excerpt > 0 {
		opts = append(opts, mat.Excerpt(excerpt))
	}
	fmt.Fprintf(out, "  %.6g\n\n", mat.Formatted(a, opts...))
}
