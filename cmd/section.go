package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/beamvib/internal/diagram"
	"github.com/alexiusacademia/beamvib/internal/material"
	"github.com/alexiusacademia/beamvib/internal/section"
	"github.com/spf13/cobra"
)

var (
	sectionFile     string
	sectionWidth    float64
	sectionHeight   float64
	sectionMaterial string
	sectionModulus  float64
	sectionDensity  float64
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Show the bending properties of a beam cross-section",
	Long: `Compute the area, centroid and second moment of area of a
rectangular or polygonal cross-section, and the flexural rigidity EI and
mass per length ρA it gives with the chosen material.

A polygonal profile is defined in a JSON file with its vertices in
metres, listed around the boundary. The same object can be used as the
"profile" of a beam file given to 'beamvib modes -f'.

Example JSON file structure:
{
  "name": "T-section",
  "vertices": [
    {"x": 0.015, "y": 0},
    {"x": 0.045, "y": 0},
    {"x": 0.045, "y": 0.04},
    {"x": 0.06, "y": 0.04},
    {"x": 0.06, "y": 0.05},
    {"x": 0, "y": 0.05},
    {"x": 0, "y": 0.04},
    {"x": 0.015, "y": 0.04}
  ]
}

Examples:
  beamvib section --width 0.06 --height 0.02
  beamvib section -f t-section.json -m steel`,
	RunE: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	sectionCmd.Flags().StringVarP(&sectionFile, "file", "f", "", "Path to polygon profile JSON file")
	sectionCmd.Flags().Float64VarP(&sectionWidth, "width", "b", 0.06, "Rectangle width (m)")
	sectionCmd.Flags().Float64Var(&sectionHeight, "height", 0.02, "Rectangle depth in the bending plane (m)")

	sectionCmd.Flags().StringVarP(&sectionMaterial, "material", "m", "aluminum", "Material preset: "+strings.Join(material.Names(), ", "))
	sectionCmd.Flags().Float64VarP(&sectionModulus, "modulus", "E", 0, "Young's modulus (Pa), overrides the material")
	sectionCmd.Flags().Float64Var(&sectionDensity, "density", 0, "Density (kg/m³), overrides the material")
}

func runSection(cmd *cobra.Command, args []string) error {
	var (
		shape section.Shape
		props *section.Properties
		name  string
	)
	if sectionFile != "" {
		poly, err := section.LoadFromFile(sectionFile)
		if err != nil {
			return err
		}
		shape, props, name = poly, poly.CalculateProperties(), poly.Name
	} else {
		rect := section.Rectangle{Width: sectionWidth, Height: sectionHeight}
		if err := rect.Validate(); err != nil {
			return err
		}
		// The rectangle as a polygon gives the centroid and bounding box
		poly := &section.Polygon{Vertices: []section.Point{
			{X: 0, Y: 0}, {X: rect.Width, Y: 0}, {X: rect.Width, Y: rect.Height}, {X: 0, Y: rect.Height},
		}}
		shape, props, name = rect, poly.CalculateProperties(), "rectangle"
	}

	m, err := material.Lookup(sectionMaterial)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("modulus") {
		m.E = sectionModulus
	}
	if cmd.Flags().Changed("density") {
		m.Density = sectionDensity
	}

	rig, err := section.Analyze(shape, m.E, m.Density)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     BEAM CROSS-SECTION PROPERTIES")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	if name != "" {
		fmt.Fprintf(out, "  Section: %s\n\n", name)
	}

	fmt.Fprintln(out, "SECTION GEOMETRY:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width (max):\t%.6g m\n", props.Width)
	fmt.Fprintf(w, "  Height:\t%.6g m\n", props.Height)
	fmt.Fprintf(w, "  Area (A):\t%.6g m²\n", shape.Area())
	fmt.Fprintf(w, "  Centroid (x, y):\t(%.6g, %.6g) m\n", props.CentroidX, props.CentroidY)
	fmt.Fprintf(w, "  Second moment (I):\t%.6g m⁴\n", shape.SecondMoment())
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "MATERIAL:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Material:\t%s\n", m.Name)
	fmt.Fprintf(w, "  Young's modulus (E):\t%.4g Pa\n", m.E)
	fmt.Fprintf(w, "  Density (ρ):\t%.4g kg/m³\n", m.Density)
	w.Flush()
	fmt.Fprintln(out)

	lines := []string{
		fmt.Sprintf("EI = %.6g N·m²", rig.EI),
		fmt.Sprintf("ρA = %.6g kg/m", rig.MassPerLen),
	}
	if rig.WaveConstant > 0 {
		lines = append(lines, fmt.Sprintf("√(EI/ρA) = %.6g m²/s", rig.WaveConstant))
	}
	fmt.Fprint(out, diagram.DrawSummaryBox("BENDING RIGIDITY", lines))
	fmt.Fprintln(out)

	return nil
}
