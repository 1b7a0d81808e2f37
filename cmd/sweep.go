package cmd

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/beamvib/internal/beam"
	"github.com/alexiusacademia/beamvib/internal/sweep"
	"github.com/spf13/cobra"
)

var (
	sweepBeam        beamFlags
	sweepElements    []int
	sweepModes       int
	sweepConcurrency int
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Study mesh convergence of the natural frequencies",
	Long: `Run the modal analysis of one beam at several mesh resolutions in
parallel and tabulate the lowest natural frequencies for each mesh.

The change column is the relative change of f₁ from the previous mesh.
For a cantilever the closed-form frequencies are printed as reference.

Examples:
  # Default aluminum cantilever at 5, 10, 20, 40, 80 and 160 elements
  beamvib sweep

  # Fixed-fixed steel beam, first 3 modes
  beamvib sweep -m steel -s fixed-fixed -L 1.5 --elements-list 4,8,16,32 -k 3`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepBeam.register(sweepCmd)
	sweepCmd.Flags().IntSliceVar(&sweepElements, "elements-list", []int{5, 10, 20, 40, 80, 160}, "Element counts to analyze")
	sweepCmd.Flags().IntVarP(&sweepModes, "modes", "k", 3, "Number of frequencies per mesh")
	sweepCmd.Flags().IntVarP(&sweepConcurrency, "concurrency", "j", 0, "Parallel analyses (0 for all CPUs)")
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := sweepBeam.config(cmd)
	if err != nil {
		return err
	}
	if len(sweepElements) == 0 {
		return fmt.Errorf("--elements-list must not be empty")
	}
	// Validate with the first mesh; Run sets Elements per mesh
	cfg.Elements = sweepElements[0]
	p, err := cfg.Params()
	if err != nil {
		return err
	}

	results, err := sweep.Run(cmd.Context(), p, sweepElements, sweep.Options{
		Modes:       sweepModes,
		Concurrency: sweepConcurrency,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     MESH CONVERGENCE - NATURAL FREQUENCIES (Hz)")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := []string{"  Elements", "DOFs"}
	for j := 0; j < sweepModes; j++ {
		header = append(header, fmt.Sprintf("f%d", j+1))
	}
	header = append(header, "Δf₁")
	fmt.Fprintln(w, strings.Join(header, "\t")+"\t")

	for i, r := range results {
		fmt.Fprintf(w, "  %d\t%d\t", r.Elements, r.DOFs)
		for _, f := range r.Frequencies {
			fmt.Fprintf(w, "%.4f\t", f)
		}
		if i > 0 {
			fmt.Fprintf(w, "%s\t", formatChange(sweep.Change(results[i-1], r)[0]))
		} else {
			fmt.Fprint(w, "-\t")
		}
		fmt.Fprintln(w)
	}

	if isCantileverConfig(cfg) {
		fmt.Fprint(w, "  exact\t\t")
		for _, f := range beam.CantileverFrequencies(p, sweepModes) {
			fmt.Fprintf(w, "%.4f\t", f)
		}
		fmt.Fprintln(w, "\t")
	}
	w.Flush()
	fmt.Fprintln(out)

	return nil
}

// formatChange prints a relative change, or "-" when it is undefined
func formatChange(c float64) string {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return "-"
	}
	return fmt.Sprintf("%+.2e", c)
}

func isCantileverConfig(cfg *beam.Config) bool {
	if cfg.Supports != nil {
		return false
	}
	return cfg.Support == "" || cfg.Support == "cantilever"
}
