// Package calculator renders the interactive return vs volatility calculator:
// a single scenario analysis and a sweep over volatility ratios.
package calculator

import (
	"github.com/idilsaglam/finmetrics/internal/metrics"
	"github.com/idilsaglam/finmetrics/internal/model"
)

// TreeMaxPeriods is the largest horizon for which every outcome is listed.
const TreeMaxPeriods = 3

// ScenarioInput uses decimals: Up 1.0 means +100%.
type ScenarioInput struct {
	Up, Down, ProbUp float64
	Periods          int
}

type ScenarioReport struct {
	Input ScenarioInput
	// ArithmeticMean is probability weighted; the outcome statistics treat
	// every path as equally likely.
	ArithmeticMean float64
	Outcomes       metrics.ScenarioOutcomes
}

// Scenario analyses one up/down investment over Periods.
func Scenario(in ScenarioInput) (ScenarioReport, error) {
	if in.ProbUp < 0 || in.ProbUp > 1 {
		return ScenarioReport{}, model.Invalid("calculator.scenario", "probability must be in [0, 1], got %g", in.ProbUp)
	}
	out, err := metrics.Scenario(in.Up, in.Down, in.Periods)
	if err != nil {
		return ScenarioReport{}, err
	}
	return ScenarioReport{
		Input:          in,
		ArithmeticMean: metrics.ExpectedReturn(in.Up, in.Down, in.ProbUp),
		Outcomes:       out,
	}, nil
}

// VolatilityInput uses a decimal Target mean return.
type VolatilityInput struct {
	Target   float64
	MaxRatio float64
	Steps    int
}

type VolatilityReport struct {
	Input     VolatilityInput
	Scenarios []metrics.VolatilityScenario
	Summary   metrics.VolatilitySummary
}

// MinRatio is the lowest volatility ratio of a sweep.
const MinRatio = 1.1

// Volatility sweeps Steps ratios from MinRatio to MaxRatio at a fixed mean.
func Volatility(in VolatilityInput) (VolatilityReport, error) {
	const op = "calculator.volatility"
	if in.MaxRatio < MinRatio {
		return VolatilityReport{}, model.Invalid(op, "max ratio must be at least %g, got %g", MinRatio, in.MaxRatio)
	}
	if in.Steps < 2 {
		return VolatilityReport{}, model.Invalid(op, "steps must be at least 2, got %d", in.Steps)
	}
	sc, err := metrics.VolatilityScenarios(in.Target, metrics.Linspace(MinRatio, in.MaxRatio, in.Steps))
	if err != nil {
		return VolatilityReport{}, err
	}
	return VolatilityReport{Input: in, Scenarios: sc, Summary: metrics.Summarize(sc)}, nil
}
