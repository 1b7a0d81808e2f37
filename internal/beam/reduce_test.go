package beam

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestReduce(t *testing.T) {
	t.Parallel()
	a := mat.NewSymDense(4, []float64{
		1, 2, 3, 4,
		2, 5, 6, 7,
		3, 6, 8, 9,
		4, 7, 9, 10,
	})
	tests := []struct {
		name        string
		constrained []int
		wantKept    []int
		want        []float64
	}{
		{
			name:        "cantilever",
			constrained: []int{0, 1},
			wantKept:    []int{2, 3},
			want:        []float64{8, 9, 9, 10},
		},
		{
			name:        "interleaved",
			constrained: []int{2, 0},
			wantKept:    []int{1, 3},
			want:        []float64{5, 7, 7, 10},
		},
		{
			name:        "duplicates",
			constrained: []int{3, 3},
			wantKept:    []int{0, 1, 2},
			want:        []float64{1, 2, 3, 2, 5, 6, 3, 6, 8},
		},
		{
			name:        "none",
			constrained: nil,
			wantKept:    []int{0, 1, 2, 3},
			want:        []float64{1, 2, 3, 4, 2, 5, 6, 7, 3, 6, 8, 9, 4, 7, 9, 10},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, kept, err := Reduce(a, tt.constrained)
			if err != nil {
				t.Fatalf("Reduce() error = %v", err)
			}
			if len(kept) != len(tt.wantKept) {
				t.Fatalf("kept = %v, want %v", kept, tt.wantKept)
			}
			for i := range kept {
				if kept[i] != tt.wantKept[i] {
					t.Fatalf("kept = %v, want %v", kept, tt.wantKept)
				}
			}
			want := mat.NewDense(len(kept), len(kept), tt.want)
			if !mat.Equal(r, want) {
				t.Errorf("Reduce() =\n%v\nwant\n%v", mat.Formatted(r), mat.Formatted(want))
			}
		})
	}
}

func TestReduceInvalid(t *testing.T) {
	t.Parallel()
	a := mat.NewSymDense(2, []float64{1, 0, 0, 1})
	for _, c := range [][]int{{2}, {-1}, {0, 1}} {
		var verr *ValidationError
		if _, _, err := Reduce(a, c); !errors.As(err, &verr) {
			t.Errorf("Reduce(%v) error = %v, want *ValidationError", c, err)
		}
	}
}

func TestReduceCantileverSizes(t *testing.T) {
	t.Parallel()
	m, err := NewMesh(0.35, 100)
	if err != nil {
		t.Fatal(err)
	}
	k := Assemble(m.Connectivity, m.DOFs, ElementStiffness(7e10, m.ElementLength, 4e-8))
	if r, c := k.Dims(); r != 202 || c != 202 {
		t.Fatalf("K is %dx%d, want 202x202", r, c)
	}
	dofs, err := ConstrainedDOFs(Cantilever(), m.Nodes)
	if err != nil {
		t.Fatal(err)
	}
	kr, kept, err := Reduce(k, dofs)
	if err != nil {
		t.Fatal(err)
	}
	if r, c := kr.Dims(); r != 200 || c != 200 {
		t.Errorf("reduced K is %dx%d, want 200x200", r, c)
	}
	if kept[0] != 2 {
		t.Errorf("first kept DOF = %d, want 2", kept[0])
	}
	if !isSymmetric(kr) {
		t.Error("reduced K not symmetric")
	}
}
