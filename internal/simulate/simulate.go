// Package simulate runs Monte Carlo simulations of a two-state return process:
// every period the position grows by Up with probability ProbUp, otherwise by
// Down.
package simulate

import (
	"context"
	"math/rand/v2"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/idilsaglam/finmetrics/internal/metrics"
	"github.com/idilsaglam/finmetrics/internal/model"
)

// chunkSize is the number of runs sharing one random stream. Fixing it makes
// the output independent of the worker count.
const chunkSize = 500

// Result holds the raw samples and the derived statistics of one simulation.
type Result struct {
	Params     model.SimulationParams
	Finals     []float64
	CAGRs      []float64
	Paths      [][]float64 // first Params.KeepPaths runs, Periods+1 values each
	MedianPath []float64
	Summary    model.SimulationSummary
	Elapsed    time.Duration
}

type options struct {
	progress func(done, total int)
	logger   *zap.Logger
	now      func() time.Time
}

type Option func(*options)

// WithProgress registers a callback invoked after every finished chunk.
// Calls are serialized.
func WithProgress(fn func(done, total int)) Option {
	return func(o *options) { o.progress = fn }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Validate checks the parameters without running anything.
func Validate(p model.SimulationParams) error {
	const op = "simulate.validate"
	switch {
	case p.Initial <= 0:
		return model.Invalid(op, "initial investment must be positive, got %g", p.Initial)
	case p.Up <= -1 || p.Down <= -1:
		return model.Invalid(op, "returns must stay above -100%%")
	case p.ProbUp < 0 || p.ProbUp > 1:
		return model.Invalid(op, "probability must be in [0, 1], got %g", p.ProbUp)
	case p.Periods < 1:
		return model.Invalid(op, "periods must be at least 1, got %d", p.Periods)
	case p.Runs < 1:
		return model.Invalid(op, "runs must be at least 1, got %d", p.Runs)
	case p.KeepPaths < 0:
		return model.Invalid(op, "keep paths must not be negative, got %d", p.KeepPaths)
	case p.Workers < 0:
		return model.Invalid(op, "workers must not be negative, got %d", p.Workers)
	}
	return nil
}

// Run executes the simulation. A zero Seed is replaced by a time based one,
// reported back in Result.Params.
func Run(ctx context.Context, p model.SimulationParams, opts ...Option) (*Result, error) {
	o := options{logger: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if err := Validate(p); err != nil {
		return nil, err
	}
	if p.Seed == 0 {
		p.Seed = uint64(o.now().UnixNano())
	}
	p.KeepPaths = min(p.KeepPaths, p.Runs)
	workers := p.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	started := o.now()
	o.logger.Debug("simulation started",
		zap.Int("runs", p.Runs),
		zap.Int("periods", p.Periods),
		zap.Int("workers", workers),
		zap.Uint64("seed", p.Seed))

	res := &Result{
		Params: p,
		Finals: make([]float64, p.Runs),
		Paths:  make([][]float64, p.KeepPaths),
	}

	var (
		mu   sync.Mutex
		done int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for chunk, start := 0, 0; start < p.Runs; chunk, start = chunk+1, start+chunkSize {
		end := min(start+chunkSize, p.Runs)
		c := chunk
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			simulateChunk(gctx, p, c, start, end, res)
			if err := gctx.Err(); err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			done += end - start
			if o.progress != nil {
				o.progress(done, p.Runs)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		o.logger.Warn("simulation aborted", zap.Error(err))
		return nil, &model.OpError{Op: "simulate.run", Kind: model.KindCanceled, Err: err}
	}

	res.CAGRs = make([]float64, len(res.Finals))
	for i, v := range res.Finals {
		res.CAGRs[i] = metrics.CAGR(v/p.Initial, p.Periods)
	}
	res.MedianPath = medianPath(res.Paths, p.Periods)
	res.Summary = summarize(p, res.Finals, res.CAGRs)
	res.Elapsed = o.now().Sub(started)

	o.logger.Info("simulation finished",
		zap.Int("runs", p.Runs),
		zap.Duration("elapsed", res.Elapsed),
		zap.Float64("prob_loss", res.Summary.ProbLoss))
	return res, nil
}

// simulateChunk fills Finals[start:end] and any kept paths in that range.
// Chunks write disjoint indices so no locking is needed.
func simulateChunk(ctx context.Context, p model.SimulationParams, chunk, start, end int, res *Result) {
	rng := rand.New(rand.NewPCG(p.Seed, uint64(chunk)))
	upFactor, downFactor := 1+p.Up, 1+p.Down
	for i := start; i < end; i++ {
		if i%100 == 0 && ctx.Err() != nil {
			return
		}
		value := p.Initial
		var path []float64
		if i < len(res.Paths) {
			path = make([]float64, 0, p.Periods+1)
			path = append(path, value)
		}
		for range p.Periods {
			if rng.Float64() < p.ProbUp {
				value *= upFactor
			} else {
				value *= downFactor
			}
			if path != nil {
				path = append(path, value)
			}
		}
		res.Finals[i] = value
		if path != nil {
			res.Paths[i] = path
		}
	}
}

func medianPath(paths [][]float64, periods int) []float64 {
	if len(paths) == 0 {
		return nil
	}
	out := make([]float64, periods+1)
	col := make([]float64, len(paths))
	for t := range out {
		for i, path := range paths {
			col[i] = path[t]
		}
		out[t] = metrics.Median(col)
	}
	return out
}

func summarize(p model.SimulationParams, finals, cagrs []float64) model.SimulationSummary {
	values := metrics.Percentiles(finals, model.Percentiles)
	rates := metrics.Percentiles(cagrs, model.Percentiles)
	rows := make([]model.PercentileRow, len(model.Percentiles))
	for i, pct := range model.Percentiles {
		rows[i] = model.PercentileRow{Percentile: pct, Value: values[i], CAGR: rates[i]}
	}
	return model.SimulationSummary{
		ArithmeticExpected: metrics.ExpectedReturn(p.Up, p.Down, p.ProbUp),
		GeometricMean:      metrics.Median(cagrs),
		MeanFinal:          metrics.Mean(finals),
		MedianFinal:        metrics.Median(finals),
		StdFinal:           metrics.StdDev(finals),
		ProbLoss:           metrics.FractionBelow(finals, p.Initial),
		ProbDouble:         metrics.FractionAtLeast(finals, 2*p.Initial),
		Percentiles:        rows,
	}
}
