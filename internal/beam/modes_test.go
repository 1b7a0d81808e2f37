package beam

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestExtractModes(t *testing.T) {
	t.Parallel()
	// Rows map to global DOFs 2..7: v1 θ1 v2 θ2 v3 θ3.
	vectors := mat.NewDense(6, 3, []float64{
		1, 10, 100,
		2, 20, 200,
		3, 30, 300,
		4, 40, 400,
		5, 50, 500,
		6, 60, 600,
	})
	kept := []int{2, 3, 4, 5, 6, 7}
	shapes, nodes, err := ExtractModes(vectors, kept, DOFsPerNode, 2)
	if err != nil {
		t.Fatalf("ExtractModes() error = %v", err)
	}
	want := mat.NewDense(3, 2, []float64{1, 10, 3, 30, 5, 50})
	if !mat.Equal(shapes, want) {
		t.Errorf("shapes =\n%v\nwant\n%v", mat.Formatted(shapes), mat.Formatted(want))
	}
	if len(nodes) != 3 || nodes[0] != 1 || nodes[2] != 3 {
		t.Errorf("nodes = %v, want [1 2 3]", nodes)
	}
}

func TestExtractModesPinned(t *testing.T) {
	t.Parallel()
	// Node 0 translation fixed, so the first kept row is a rotation.
	vectors := mat.NewDense(3, 1, []float64{7, 8, 9})
	kept := []int{1, 2, 3}
	shapes, nodes, err := ExtractModes(vectors, kept, DOFsPerNode, 1)
	if err != nil {
		t.Fatal(err)
	}
	if r, _ := shapes.Dims(); r != 1 || shapes.At(0, 0) != 8 || nodes[0] != 1 {
		t.Errorf("shapes = %v, nodes = %v", mat.Formatted(shapes), nodes)
	}
}

func TestExtractModesInvalid(t *testing.T) {
	t.Parallel()
	vectors := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	tests := []struct {
		name  string
		kept  []int
		count int
	}{
		{name: "too many modes", kept: []int{2, 3}, count: 3},
		{name: "zero modes", kept: []int{2, 3}, count: 0},
		{name: "rotations only", kept: []int{1, 3}, count: 1},
		{name: "map mismatch", kept: []int{2}, count: 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, _, err := ExtractModes(vectors, tt.kept, DOFsPerNode, tt.count); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNormalizeTip(t *testing.T) {
	t.Parallel()
	shapes := mat.NewDense(3, 2, []float64{
		0.1, 0.3,
		0.2, -0.1,
		0.3, -0.7,
	})
	if err := Normalize(shapes, NormalizeTip); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	for j := 0; j < 2; j++ {
		if got := shapes.At(2, j); got != 1 {
			t.Errorf("mode %d tip = %v, want exactly 1", j+1, got)
		}
	}
	num, ref := 0.3, -0.7
	if got, want := shapes.At(0, 1), num/ref; got != want {
		t.Errorf("shapes[0,1] = %v, want %v", got, want)
	}
}

func TestNormalizeTipZero(t *testing.T) {
	t.Parallel()
	shapes := mat.NewDense(3, 2, []float64{
		0.1, 1,
		0.2, 0,
		0.3, 0,
	})
	orig := mat.DenseCopyOf(shapes)
	err := Normalize(shapes, NormalizeTip)
	var nerr *NormalizationError
	if !errors.As(err, &nerr) {
		t.Fatalf("Normalize() error = %v, want *NormalizationError", err)
	}
	if nerr.Mode != 2 {
		t.Errorf("Mode = %d, want 2", nerr.Mode)
	}
	if !mat.Equal(shapes, orig) {
		t.Error("shapes modified despite error")
	}
}

func TestNormalizeMaxAbs(t *testing.T) {
	t.Parallel()
	shapes := mat.NewDense(3, 2, []float64{
		0.1, 1,
		-0.4, 0,
		0.3, 0,
	})
	if err := Normalize(shapes, NormalizeMaxAbs); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	want := mat.NewDense(3, 2, []float64{
		0.1 / -0.4, 1,
		1, 0,
		0.3 / -0.4, 0,
	})
	if !mat.EqualApprox(shapes, want, 1e-15) {
		t.Errorf("shapes =\n%v\nwant\n%v", mat.Formatted(shapes), mat.Formatted(want))
	}
	if shapes.At(1, 0) != 1 || shapes.At(0, 1) != 1 {
		t.Error("peak entries are not exactly 1")
	}
	for j := 0; j < 2; j++ {
		col := mat.Col(nil, j, shapes)
		for _, v := range col {
			if math.Abs(v) > 1 {
				t.Errorf("mode %d has |%v| > 1", j+1, v)
			}
		}
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	t.Parallel()
	for _, method := range []Normalization{NormalizeTip, NormalizeMaxAbs} {
		shapes := mat.NewDense(2, 1, nil)
		var nerr *NormalizationError
		if err := Normalize(shapes, method); !errors.As(err, &nerr) {
			t.Errorf("%v: error = %v, want *NormalizationError", method, err)
		}
	}
}

func TestParseNormalization(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    Normalization
		wantErr bool
	}{
		{in: "", want: NormalizeTip},
		{in: "tip", want: NormalizeTip},
		{in: "MAX", want: NormalizeMaxAbs},
		{in: "max-abs", want: NormalizeMaxAbs},
		{in: "rms", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseNormalization(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseNormalization(%q) error = %v", tt.in, err)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseNormalization(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
