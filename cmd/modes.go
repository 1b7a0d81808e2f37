package cmd

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/beamvib/internal/beam"
	"github.com/alexiusacademia/beamvib/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	modesBeam beamFlags

	// Analysis options
	modesCount     int
	modesNormalize string

	// Output options
	modesShapes bool
	modesEvery  int
	modesPlot   bool
	modesColor  bool
	modesOutput string
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "Compute natural frequencies and mode shapes of a beam",
	Long: `Assemble the Euler-Bernoulli finite element model of a prismatic
beam, apply the supports and solve the generalized eigenproblem K·v = λ·M·v.

Each mode shape is normalized so the tip translation equals 1
(--normalize tip) or so its largest translation has magnitude 1
(--normalize max). For a cantilever the closed-form frequencies are
listed next to the finite element results.

Examples:
  # Aluminum cantilever 350 x 60 x 20 mm, 100 elements, first 5 modes
  beamvib modes

  # Steel pinned-pinned beam with a terminal plot
  beamvib modes -m steel -s pinned-pinned -L 2 --height 0.1 --width 0.05 --plot

  # Beam from a JSON file, exporting the mode shapes
  beamvib modes -f beam.json -o modes.png`,
	RunE: runModes,
}

func init() {
	rootCmd.AddCommand(modesCmd)

	modesBeam.register(modesCmd)

	// Analysis flags
	modesCmd.Flags().IntVarP(&modesCount, "modes", "k", 5, "Number of modes to report (0 for all)")
	modesCmd.Flags().StringVar(&modesNormalize, "normalize", "tip", "Mode shape normalization (tip, max)")

	// Output flags
	modesCmd.Flags().BoolVar(&modesShapes, "shapes", false, "Print the mode shape table")
	modesCmd.Flags().IntVar(&modesEvery, "every", 10, "Print every n-th node in the mode shape table")
	modesCmd.Flags().BoolVarP(&modesPlot, "plot", "p", false, "Draw the mode shapes in the terminal")
	modesCmd.Flags().BoolVar(&modesColor, "color", false, "Use ANSI colors in the terminal plot")
	modesCmd.Flags().StringVarP(&modesOutput, "output", "o", "", "Export the mode shapes to an image (png, svg, pdf)")
}

func runModes(cmd *cobra.Command, args []string) error {
	cfg, err := modesBeam.config(cmd)
	if err != nil {
		return err
	}
	if modesBeam.configFile == "" || cmd.Flags().Changed("modes") {
		cfg.Modes = modesCount
	}
	if modesBeam.configFile == "" || cmd.Flags().Changed("normalize") {
		cfg.Normalization = modesNormalize
	}
	if modesEvery < 1 {
		return fmt.Errorf("--every must be at least 1, got %d", modesEvery)
	}

	p, err := cfg.Params()
	if err != nil {
		return err
	}
	opts, err := cfg.AnalysisOptions()
	if err != nil {
		return err
	}

	model, err := beam.NewModel(p, beam.WithLogger(logger))
	if err != nil {
		return err
	}
	result, err := model.Analyze(opts)
	if err != nil {
		return err
	}
	logger.Info("modal analysis complete", "elements", p.Elements, "modes", result.Modes)

	out := cmd.OutOrStdout()
	printModesReport(out, model, result, opts)

	if modesPlot {
		chart := diagram.NewASCIIPlot(70, 15)
		chart.Color = modesColor
		result.Plot(chart, 0)
		fmt.Fprintln(out, "MODE SHAPES:")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		fmt.Fprintln(out, chart.Render())
	}

	if modesOutput != "" {
		img := diagram.NewImagePlot(fmt.Sprintf("Mode shapes, %s beam, %d elements", supportLabel(model), p.Elements))
		result.Plot(img, 0)
		if err := img.Save(modesOutput); err != nil {
			return fmt.Errorf("export mode shapes: %w", err)
		}
		saved := modesOutput
		switch strings.ToLower(filepath.Ext(saved)) {
		case ".png", ".svg", ".pdf":
		default:
			saved += ".png"
		}
		fmt.Fprintf(out, "  Mode shapes saved to %s\n\n", saved)
	}

	return nil
}

func printModesReport(out io.Writer, model *beam.Model, result *beam.Analysis, opts beam.AnalysisOptions) {
	p := model.Params

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     EULER-BERNOULLI BEAM - FREE VIBRATION ANALYSIS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	// Input summary
	fmt.Fprintln(out, "INPUT DATA:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Length (L):\t%.4g m\n", p.Length)
	if p.Profile != nil {
		name := p.Profile.Name
		if name == "" {
			name = "polygon"
		}
		fmt.Fprintf(w, "  Section:\t%s (%d vertices)\n", name, len(p.Profile.Vertices))
	} else {
		fmt.Fprintf(w, "  Section (b × h):\t%.4g × %.4g m\n", p.Width, p.Height)
	}
	fmt.Fprintf(w, "  Young's modulus (E):\t%.4g Pa\n", p.YoungsModulus)
	fmt.Fprintf(w, "  Density (ρ):\t%.4g kg/m³\n", p.Density)
	fmt.Fprintf(w, "  Supports:\t%s\n", supportLabel(model))
	w.Flush()
	fmt.Fprintln(out)

	// Derived properties
	fmt.Fprintln(out, "SECTION AND MESH:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area (A):\t%.6g m²\n", p.Area())
	fmt.Fprintf(w, "  Second moment (I):\t%.6g m⁴\n", p.Inertia())
	fmt.Fprintf(w, "  Mass per length (ρA):\t%.6g kg/m\n", p.Density*p.Area())
	fmt.Fprintf(w, "  Elements:\t%d (Le = %.4g m)\n", p.Elements, p.ElementLength())
	fmt.Fprintf(w, "  Nodes:\t%d\n", model.Mesh.Nodes)
	fmt.Fprintf(w, "  DOFs:\t%d total, %d free\n", model.Mesh.DOFs, len(result.KeptDOFs))
	fmt.Fprintf(w, "  Normalization:\t%s\n", opts.Normalization)
	w.Flush()
	fmt.Fprintln(out)

	// Frequencies
	var analytic []float64
	if model.IsCantilever() {
		analytic = beam.CantileverFrequencies(p, result.Modes)
	}

	fmt.Fprintln(out, "NATURAL FREQUENCIES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	if analytic != nil {
		fmt.Fprintln(w, "  Mode\tλ (rad²/s²)\tω (rad/s)\tf (Hz)\tExact (Hz)\tError\t")
	} else {
		fmt.Fprintln(w, "  Mode\tλ (rad²/s²)\tω (rad/s)\tf (Hz)\t")
	}
	for i := 0; i < result.Modes; i++ {
		fmt.Fprintf(w, "  %d\t%.6g\t%.4f\t%.4f\t", i+1, result.Eigenvalues[i], result.AngularFrequency(i), result.Frequencies[i])
		if analytic != nil {
			fmt.Fprintf(w, "%.4f\t%+.4f%%\t", analytic[i], 100*(result.Frequencies[i]-analytic[i])/analytic[i])
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Fprintln(out)

	if result.Modes > 0 {
		lines := []string{
			fmt.Sprintf("f₁ = %.4f Hz", result.Frequencies[0]),
			fmt.Sprintf("ω₁ = %.4f rad/s", result.AngularFrequency(0)),
			"T₁ = " + formatPeriod(result.Frequencies[0]),
		}
		fmt.Fprint(out, diagram.DrawSummaryBox("FUNDAMENTAL MODE", lines))
		fmt.Fprintln(out)
	}

	if modesShapes && result.Modes > 0 {
		printShapeTable(out, result, modesEvery)
	}
}

// printShapeTable prints every n-th free node and always the last one
func printShapeTable(out io.Writer, result *beam.Analysis, every int) {
	fmt.Fprintln(out, "MODE SHAPES (normalized translation):")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(w, "  Node\tx (m)\t")
	for j := 0; j < result.Modes; j++ {
		fmt.Fprintf(w, "Mode %d\t", j+1)
	}
	fmt.Fprintln(w)

	last := len(result.Nodes) - 1
	for i, n := range result.Nodes {
		if i%every != 0 && i != last {
			continue
		}
		fmt.Fprintf(w, "  %d\t%.4f\t", n, result.X[i])
		for j := 0; j < result.Modes; j++ {
			v := result.Shapes.At(i, j)
			if math.Abs(v) < 5e-7 {
				v = 0
			}
			fmt.Fprintf(w, "%.6f\t", v)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Fprintln(out)
}

// formatPeriod prints T = 1/f, or "-" for a rigid-body (zero) frequency
func formatPeriod(f float64) string {
	if !(f > 0) || math.IsInf(f, 0) {
		return "-"
	}
	return fmt.Sprintf("%.6f s", 1/f)
}

// supportLabel names the preset matching the model supports, or lists them
func supportLabel(model *beam.Model) string {
	constrained := model.ConstrainedDOFs()
	if len(constrained) == 0 {
		return "free-free"
	}
	for _, name := range beam.SupportPresetNames() {
		preset, _ := beam.SupportPreset(name)
		dofs, err := beam.ConstrainedDOFs(preset, model.Mesh.Nodes)
		if err == nil && slices.Equal(dofs, constrained) {
			return name
		}
	}

	parts := make([]string, len(model.Params.Supports))
	for i, s := range model.Params.Supports {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}
