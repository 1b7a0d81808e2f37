package beam

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/alexiusacademia/beamvib/internal/material"
	"github.com/alexiusacademia/beamvib/internal/section"
)

// Config is the file form of a modal analysis job, read from JSON or TOML
//
//	{
//	  "length": 0.35, "height": 0.02, "width": 0.06,
//	  "material": "aluminum",
//	  "elements": 100,
//	  "support": "cantilever",
//	  "modes": 5
//	}
type Config struct {
	Length        float64  `json:"length" toml:"length"`                                     // m
	Height        float64  `json:"height,omitempty" toml:"height,omitempty"`                 // m
	Width         float64  `json:"width,omitempty" toml:"width,omitempty"`                   // m
	YoungsModulus float64  `json:"youngs_modulus,omitempty" toml:"youngs_modulus,omitempty"` // Pa
	Density       *float64 `json:"density,omitempty" toml:"density,omitempty"`               // kg/m³
	Elements      int      `json:"elements" toml:"elements"`

	// Material fills YoungsModulus and Density when they are not given
	Material string `json:"material,omitempty" toml:"material,omitempty"`

	// Support names a preset; Supports lists DOFs explicitly and wins over it.
	// An empty Supports list leaves the beam free.
	Support  string    `json:"support,omitempty" toml:"support,omitempty"`
	Supports []Support `json:"supports,omitempty" toml:"supports,omitempty"`

	Profile *section.Polygon `json:"profile,omitempty" toml:"profile,omitempty"`

	Modes         int    `json:"modes,omitempty" toml:"modes,omitempty"`
	Normalization string `json:"normalization,omitempty" toml:"normalization,omitempty"`
}

// LoadFromFile loads an analysis configuration. Files ending in .toml are
// read as TOML, anything else as JSON.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err = toml.Decode(string(data), &cfg)
	} else {
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, invalidf("parse %s: %v", path, err)
	}

	if _, err := cfg.Params(); err != nil {
		return nil, err
	}
	if _, err := cfg.AnalysisOptions(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Params resolves material and support presets and validates the result
func (c *Config) Params() (Params, error) {
	p := Params{
		Length:        c.Length,
		Height:        c.Height,
		Width:         c.Width,
		YoungsModulus: c.YoungsModulus,
		Elements:      c.Elements,
		Profile:       c.Profile,
	}
	if c.Density != nil {
		p.Density = *c.Density
	}

	if c.Material != "" {
		m, err := material.Lookup(c.Material)
		if err != nil {
			return Params{}, invalidf("%v", err)
		}
		if p.YoungsModulus == 0 {
			p.YoungsModulus = m.E
		}
		if c.Density == nil {
			p.Density = m.Density
		}
	}

	switch {
	case c.Supports != nil:
		p.Supports = c.Supports
	case c.Support != "":
		s, err := SupportPreset(c.Support)
		if err != nil {
			return Params{}, err
		}
		p.Supports = s
	}

	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// AnalysisOptions returns the mode count and normalization of the job
func (c *Config) AnalysisOptions() (AnalysisOptions, error) {
	if c.Modes < 0 {
		return AnalysisOptions{}, invalidf("modes must not be negative, got %d", c.Modes)
	}
	norm, err := ParseNormalization(c.Normalization)
	if err != nil {
		return AnalysisOptions{}, err
	}
	return AnalysisOptions{Modes: c.Modes, Normalization: norm}, nil
}
