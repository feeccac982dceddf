package model

import "time"

// SimulationParams describes one Monte Carlo run. Returns and probabilities
// are decimals (0.6 means +60%).
type SimulationParams struct {
	Initial   float64 `json:"initial" yaml:"initial"`
	Up        float64 `json:"up" yaml:"up"`
	Down      float64 `json:"down" yaml:"down"`
	ProbUp    float64 `json:"prob_up" yaml:"prob_up"`
	Periods   int     `json:"periods" yaml:"periods"`
	Runs      int     `json:"runs" yaml:"runs"`
	Workers   int     `json:"-" yaml:"-"`
	Seed      uint64  `json:"seed" yaml:"seed"`
	KeepPaths int     `json:"keep_paths" yaml:"keep_paths"`
}

// Percentiles reported for every simulation, in order.
var Percentiles = []float64{1, 5, 10, 25, 50, 75, 90, 95, 99}

// PercentileRow is one line of the outcome percentile table.
type PercentileRow struct {
	Percentile float64 `json:"percentile" yaml:"percentile"`
	Value      float64 `json:"value" yaml:"value"`
	CAGR       float64 `json:"cagr" yaml:"cagr"`
}

// SimulationSummary holds the statistics kept once raw samples are dropped.
type SimulationSummary struct {
	ArithmeticExpected float64         `json:"arithmetic_expected" yaml:"arithmetic_expected"`
	GeometricMean      float64         `json:"geometric_mean" yaml:"geometric_mean"`
	MeanFinal          float64         `json:"mean_final" yaml:"mean_final"`
	MedianFinal        float64         `json:"median_final" yaml:"median_final"`
	StdFinal           float64         `json:"std_final" yaml:"std_final"`
	ProbLoss           float64         `json:"prob_loss" yaml:"prob_loss"`
	ProbDouble         float64         `json:"prob_double" yaml:"prob_double"`
	Percentiles        []PercentileRow `json:"percentiles" yaml:"percentiles"`
}

// Run is a persisted simulation.
type Run struct {
	ID        string            `json:"id" yaml:"id"`
	CreatedAt time.Time         `json:"created_at" yaml:"created_at"`
	Elapsed   time.Duration     `json:"elapsed" yaml:"elapsed"`
	Params    SimulationParams  `json:"params" yaml:"params"`
	Summary   SimulationSummary `json:"summary" yaml:"summary"`
}
