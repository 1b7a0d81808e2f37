// Package sweep runs independent modal analyses of one beam at several mesh
// resolutions.
package sweep

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/alexiusacademia/beamvib/internal/beam"
)

// Result is the outcome of one mesh in a sweep
type Result struct {
	Elements    int
	DOFs        int       // reduced problem size
	Frequencies []float64 // Hz
}

// Options controls a sweep
type Options struct {
	Modes       int // frequencies kept per mesh
	Concurrency int // parallel analyses; 0 means GOMAXPROCS
	Logger      *slog.Logger
}

// Run analyzes base once per element count, in parallel, and returns the
// results in the order of elements. The first failure cancels the rest.
func Run(ctx context.Context, base beam.Params, elements []int, opts Options) ([]Result, error) {
	if opts.Modes < 1 {
		return nil, fmt.Errorf("sweep needs at least one mode, got %d", opts.Modes)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(elements))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, n := range elements {
		i, n := i, n
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p := base
			p.Elements = n
			model, err := beam.NewModel(p, beam.WithLogger(logger.With("elements", n)))
			if err != nil {
				return fmt.Errorf("n=%d: %w", n, err)
			}
			a, err := model.Analyze(beam.AnalysisOptions{Modes: opts.Modes, Normalization: beam.NormalizeMaxAbs})
			if err != nil {
				return fmt.Errorf("n=%d: %w", n, err)
			}
			results[i] = Result{Elements: n, DOFs: len(a.KeptDOFs), Frequencies: a.Frequencies}
			logger.Debug("mesh analyzed", "elements", n, "f1", a.Frequencies[0])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Change returns the relative change of each frequency of cur with respect
// to prev. It is NaN where the previous frequency is zero.
func Change(prev, cur Result) []float64 {
	n := min(len(prev.Frequencies), len(cur.Frequencies))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		if prev.Frequencies[i] == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = (cur.Frequencies[i] - prev.Frequencies[i]) / prev.Frequencies[i]
	}
	return out
}
