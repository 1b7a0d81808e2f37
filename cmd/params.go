package cmd

import (
	"strings"

	"github.com/alexiusacademia/beamvib/internal/beam"
	"github.com/alexiusacademia/beamvib/internal/material"
	"github.com/spf13/cobra"
)

// beamFlags are the beam definition flags shared by the analysis commands
type beamFlags struct {
	configFile string

	// Geometry (m)
	length float64
	height float64
	width  float64

	// Material
	material string
	modulus  float64 // Pa, 0 means from material
	density  float64 // kg/m³, used only when set

	// Mesh and supports
	elements int
	support  string
}

func (f *beamFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configFile, "config", "f", "", "Path to beam JSON file (flags override its values)")

	// Geometry flags
	cmd.Flags().Float64VarP(&f.length, "length", "L", 0.35, "Beam length (m)")
	cmd.Flags().Float64Var(&f.height, "height", 0.02, "Section depth in the bending plane (m)")
	cmd.Flags().Float64VarP(&f.width, "width", "b", 0.06, "Section width (m)")

	// Material flags
	cmd.Flags().StringVarP(&f.material, "material", "m", "aluminum", "Material preset: "+strings.Join(material.Names(), ", "))
	cmd.Flags().Float64VarP(&f.modulus, "modulus", "E", 0, "Young's modulus (Pa), overrides the material")
	cmd.Flags().Float64Var(&f.density, "density", 0, "Density (kg/m³), overrides the material")

	// Mesh flags
	cmd.Flags().IntVarP(&f.elements, "elements", "n", 100, "Number of finite elements")
	cmd.Flags().StringVarP(&f.support, "support", "s", "cantilever", "Supports: "+strings.Join(beam.SupportPresetNames(), ", "))
}

// config merges the JSON file (if any) with the flags. Without a file every
// flag applies, defaults included; with a file only flags given on the
// command line override it.
func (f *beamFlags) config(cmd *cobra.Command) (*beam.Config, error) {
	cfg := &beam.Config{}
	fromFile := f.configFile != ""
	if fromFile {
		var err error
		if cfg, err = beam.LoadFromFile(f.configFile); err != nil {
			return nil, err
		}
	}

	set := func(name string) bool {
		return !fromFile || cmd.Flags().Changed(name)
	}

	if set("length") {
		cfg.Length = f.length
	}
	if set("height") {
		cfg.Height = f.height
	}
	if set("width") {
		cfg.Width = f.width
	}
	if set("material") {
		cfg.Material = f.material
	}
	if cmd.Flags().Changed("modulus") {
		cfg.YoungsModulus = f.modulus
	}
	if cmd.Flags().Changed("density") {
		d := f.density
		cfg.Density = &d
	}
	if set("elements") {
		cfg.Elements = f.elements
	}
	if set("support") {
		cfg.Support = f.support
		cfg.Supports = nil
	}
	return cfg, nil
}
