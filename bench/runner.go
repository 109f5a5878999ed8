package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/closestpair/closest"
	"github.com/katalvlaran/closestpair/pointgen"
)

// verifyTolerance absorbs last-ulp differences between equal distances.
const verifyTolerance = 1e-9

// Finder computes the closest pair of points, returning two indices.
type Finder func(points []closest.Point) (i, j int, err error)

// BruteForceFinder adapts closest.BruteForce to a Finder.
func BruteForceFinder(points []closest.Point) (int, int, error) {
	i, j, ok := closest.BruteForce(points)
	if !ok {
		return 0, 0, closest.ErrInsufficientInput
	}
	return i, j, nil
}

// DivideAndConquerFinder returns a Finder running closest.DivideAndConquer
// with opts.
func DivideAndConquerFinder(opts closest.Options) Finder {
	return func(points []closest.Point) (int, int, error) {
		return closest.DivideAndConquer(points, &opts)
	}
}

// Runner executes benchmarks described by a Config.
//
// A Runner is not safe for concurrent use; run one benchmark at a time.
type Runner struct {
	cfg     Config
	finders map[string]Finder
	logger  *slog.Logger
	metrics *Metrics
	clock   func() time.Time
}

// Option customizes a Runner.
type Option func(*Runner)

// WithLogger sets the structured logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records every timed call on m.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithFinder registers (or replaces) the finder used for name.
func WithFinder(name string, f Finder) Option {
	return func(r *Runner) { r.finders[name] = f }
}

// withClock replaces time.Now; tests use it for stable durations.
func withClock(now func() time.Time) Option {
	return func(r *Runner) { r.clock = now }
}

// NewRunner validates cfg and returns a Runner with the built-in finders
// (AlgBruteForce, AlgDivideAndConquer) plus any registered via options.
func NewRunner(cfg *Config, opts ...Option) (*Runner, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dnc := closest.DefaultOptions()
	dnc.Parallel = cfg.Parallel
	r := &Runner{
		cfg: *cfg,
		finders: map[string]Finder{
			AlgBruteForce:       BruteForceFinder,
			AlgDivideAndConquer: DivideAndConquerFinder(dnc),
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, name := range r.cfg.Algorithms {
		if r.finders[name] == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
		}
	}
	return r, nil
}

// Run executes every size and run, in order, and returns the aggregated
// report. Cancellation is checked before each run; a cancelled context
// returns ctx.Err() and no report.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		RunID:      uuid.NewString(),
		StartedAt:  r.clock().UTC(),
		Algorithms: append([]string(nil), r.cfg.Algorithms...),
		Runs:       r.cfg.Runs,
		Seed:       r.cfg.Seed,
	}
	log := r.logger.With("run_id", report.RunID)
	log.Info("benchmark started",
		"sizes", len(r.cfg.Sizes), "runs", r.cfg.Runs, "algorithms", r.cfg.Algorithms)

	for si, n := range r.cfg.Sizes {
		totals := make([]time.Duration, len(r.cfg.Algorithms))

		for run := 0; run < r.cfg.Runs; run++ {
			if err := ctx.Err(); err != nil {
				log.Warn("benchmark cancelled", "n", n, "run", run, "error", err)
				return nil, err
			}

			points, err := pointgen.Distinct(n, pointgen.Options{
				Min:  r.cfg.CoordMin,
				Max:  r.cfg.CoordMax,
				Seed: pointgen.StreamSeed(r.cfg.Seed, uint64(si)<<32|uint64(run)),
			})
			if err != nil {
				return nil, fmt.Errorf("bench: generate n=%d run=%d: %w", n, run, err)
			}

			samples, err := r.measure(points)
			if err != nil {
				return nil, fmt.Errorf("n=%d run=%d: %w", n, run, err)
			}
			for k, s := range samples {
				totals[k] += s.Duration
				log.Debug("run timed", "n", n, "run", run, "algorithm", s.Algorithm,
					"duration", s.Duration, "distance", s.Distance)
			}

			if r.cfg.Verify {
				if err := r.verify(n, run, samples); err != nil {
					log.Error("verification failed", "n", n, "run", run, "error", err)
					return nil, err
				}
			}
		}

		res := SizeResult{N: n, Average: make(map[string]time.Duration, len(totals))}
		for k, name := range r.cfg.Algorithms {
			res.Average[name] = totals[k] / time.Duration(r.cfg.Runs)
		}
		report.Results = append(report.Results, res)

		attrs := []any{"n", n}
		for _, name := range r.cfg.Algorithms {
			attrs = append(attrs, name+"_avg_ms", milliseconds(res.Average[name]))
		}
		log.Info("size complete", attrs...)
	}

	report.FinishedAt = r.clock().UTC()
	log.Info("benchmark finished", "elapsed", report.FinishedAt.Sub(report.StartedAt))
	return report, nil
}

// Sample is one timed finder call.
type Sample struct {
	Algorithm string
	I, J      int
	Distance  float64
	Duration  time.Duration
}

// measure times each configured finder once on points.
func (r *Runner) measure(points []closest.Point) ([]Sample, error) {
	samples := make([]Sample, 0, len(r.cfg.Algorithms))
	for _, name := range r.cfg.Algorithms {
		start := r.clock()
		i, j, err := r.finders[name](points)
		elapsed := r.clock().Sub(start)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrFinderFailed, name, err)
		}
		if n := len(points); i < 0 || i >= n || j < 0 || j >= n {
			return nil, fmt.Errorf("%w: %s: pair (%d,%d) outside [0,%d)", ErrFinderFailed, name, i, j, n)
		}

		r.metrics.observe(name, len(points), elapsed)
		samples = append(samples, Sample{
			Algorithm: name,
			I:         i,
			J:         j,
			Distance:  closest.PairDistance(points, i, j),
			Duration:  elapsed,
		})
	}
	return samples, nil
}

// verify requires every sample to name two distinct indices and to match the
// first sample's distance.
func (r *Runner) verify(n, run int, samples []Sample) error {
	if len(samples) == 0 {
		return nil
	}
	ref := samples[0]
	if ref.I == ref.J {
		r.metrics.mismatch()
		return fmt.Errorf("%w: n=%d run=%d %s returned a degenerate pair (%d,%d)", ErrMismatch, n, run,
			ref.Algorithm, ref.I, ref.J)
	}
	for _, s := range samples[1:] {
		if s.I == s.J || math.Abs(s.Distance-ref.Distance) > verifyTolerance {
			r.metrics.mismatch()
			return fmt.Errorf("%w: n=%d run=%d %s=(%d,%d)@%g %s=(%d,%d)@%g", ErrMismatch, n, run,
				ref.Algorithm, ref.I, ref.J, ref.Distance, s.Algorithm, s.I, s.J, s.Distance)
		}
	}
	return nil
}
