package sweep

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/beamvib/internal/beam"
)

var base = beam.Params{
	Length:        0.35,
	Height:        0.02,
	Width:         0.06,
	YoungsModulus: 7e10,
	Density:       2780,
}

func TestRun(t *testing.T) {
	t.Parallel()
	elements := []int{2, 4, 8, 16}
	results, err := Run(context.Background(), base, elements, Options{Modes: 3, Concurrency: 2})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(results) != len(elements) {
		t.Fatalf("got %d results", len(results))
	}
	for i, r := range results {
		if r.Elements != elements[i] {
			t.Errorf("results[%d].Elements = %d, want %d", i, r.Elements, elements[i])
		}
		if r.DOFs != 2*elements[i] {
			t.Errorf("results[%d].DOFs = %d, want %d", i, r.DOFs, 2*elements[i])
		}
		if len(r.Frequencies) != 3 {
			t.Errorf("results[%d] has %d frequencies", i, len(r.Frequencies))
		}
	}
	// Consistent mass gives upper bounds that decrease under refinement.
	for i := 1; i < len(results); i++ {
		for j, c := range Change(results[i-1], results[i]) {
			if c > 1e-9 {
				t.Errorf("n=%d mode %d: frequency rose by %.3e", results[i].Elements, j+1, c)
			}
		}
	}
	last := Change(results[2], results[3])
	if math.Abs(last[0]) > 1e-4 {
		t.Errorf("f1 still changing by %.3e at n=16", last[0])
	}
}

func TestRunFailure(t *testing.T) {
	t.Parallel()
	_, err := Run(context.Background(), base, []int{4, 0, 8}, Options{Modes: 1})
	var verr *beam.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("Run() error = %v, want *beam.ValidationError", err)
	}
}

func TestRunCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, base, []int{4, 8}, Options{Modes: 1})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestRunNoModes(t *testing.T) {
	t.Parallel()
	if _, err := Run(context.Background(), base, []int{4}, Options{}); err == nil {
		t.Error("expected error for zero modes")
	}
}

func TestChangeZeroFrequency(t *testing.T) {
	t.Parallel()
	prev := Result{Frequencies: []float64{0, 10}}
	cur := Result{Frequencies: []float64{0.5, 9}}
	got := Change(prev, cur)
	if !math.IsNaN(got[0]) {
		t.Errorf("change from zero = %v, want NaN", got[0])
	}
	if math.Abs(got[1]+0.1) > 1e-15 {
		t.Errorf("change = %v, want -0.1", got[1])
	}
}
