package section

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	good := filepath.Join(dir, "rect.json")
	data := `{"name": "bar", "vertices": [{"x":0,"y":0},{"x":0.06,"y":0},{"x":0.06,"y":0.02},{"x":0,"y":0.02}]}`
	if err := os.WriteFile(good, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadFromFile(good)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if p.Name != "bar" || len(p.Vertices) != 4 {
		t.Errorf("loaded %+v", p)
	}
	if math.Abs(p.Area()-1.2e-3) > 1e-15 {
		t.Errorf("Area = %v, want 1.2e-3", p.Area())
	}

	tests := []struct {
		name string
		data string
	}{
		{"malformed", `{"vertices": [`},
		{"two vertices", `{"vertices": [{"x":0,"y":0},{"x":1,"y":0}]}`},
		{"collinear", `{"vertices": [{"x":0,"y":0},{"x":1,"y":0},{"x":2,"y":0}]}`},
	}
	for _, tt := range tests {
		path := filepath.Join(dir, tt.name+".json")
		if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadFromFile(path)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: error = %v, want *ValidationError", tt.name, err)
		}
	}

	if _, err := LoadFromFile(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: error = %v, want os.ErrNotExist", err)
	}
}

func TestAnalyze(t *testing.T) {
	t.Parallel()
	r := Rectangle{Width: 0.06, Height: 0.02}

	got, err := Analyze(r, 70e9, 2780)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	wantEI := 70e9 * 0.06 * 0.02 * 0.02 * 0.02 / 12
	wantMass := 2780 * 0.06 * 0.02
	if math.Abs(got.EI-wantEI) > 1e-9*wantEI {
		t.Errorf("EI = %v, want %v", got.EI, wantEI)
	}
	if math.Abs(got.MassPerLen-wantMass) > 1e-12 {
		t.Errorf("MassPerLen = %v, want %v", got.MassPerLen, wantMass)
	}
	if want := math.Sqrt(wantEI / wantMass); math.Abs(got.WaveConstant-want) > 1e-9*want {
		t.Errorf("WaveConstant = %v, want %v", got.WaveConstant, want)
	}

	massless, err := Analyze(r, 70e9, 0)
	if err != nil {
		t.Fatalf("Analyze with zero density: %v", err)
	}
	if massless.WaveConstant != 0 {
		t.Errorf("WaveConstant = %v for zero density, want 0", massless.WaveConstant)
	}

	for _, tt := range []struct {
		name   string
		s      Shape
		e, rho float64
	}{
		{"zero modulus", r, 0, 2780},
		{"negative density", r, 70e9, -1},
		{"NaN density", r, 70e9, math.NaN()},
		{"bad section", Rectangle{Width: 0.06}, 70e9, 2780},
	} {
		_, err := Analyze(tt.s, tt.e, tt.rho)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: error = %v, want *ValidationError", tt.name, err)
		}
	}
}
