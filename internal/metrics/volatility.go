package metrics

import (
	"fmt"
	"math"
	"slices"

	"github.com/idilsaglam/finmetrics/internal/model"
)

// DefaultVolatilityRatios are used when no ratios are given.
var DefaultVolatilityRatios = []float64{1.1, 1.5, 2.0, 3.0, 4.0, 5.0}

// VolatilityScenario is a symmetric up/down pair sharing a fixed arithmetic
// mean, where (1+up)/(1+down) equals Ratio.
type VolatilityScenario struct {
	Ratio            float64
	Up               float64
	Down             float64
	ArithmeticMean   float64
	Geometric2Period float64
	Median2Period    float64
	TerminalUpUp     float64
	TerminalUpDown   float64
	TerminalDownDown float64
}

// Description is the half spread around the mean, e.g. "±30.0%".
func (v VolatilityScenario) Description() string {
	return fmt.Sprintf("±%.1f%%", math.Abs(v.Up-v.ArithmeticMean)*100)
}

// Drag is the gap between the arithmetic and two-period geometric means.
func (v VolatilityScenario) Drag() float64 {
	return v.ArithmeticMean - v.Geometric2Period
}

// VolatilityScenarios solves, for every ratio, the up/down pair with
// 0.5*up + 0.5*down = mean, and evaluates the four two-period outcomes.
// Geometric2Period is the mean of the per-path CAGRs, the same measure
// Scenario reports as GeometricMean.
func VolatilityScenarios(mean float64, ratios []float64) ([]VolatilityScenario, error) {
	if len(ratios) == 0 {
		ratios = DefaultVolatilityRatios
	}
	out := make([]VolatilityScenario, 0, len(ratios))
	for _, ratio := range ratios {
		if ratio <= 0 {
			return nil, model.Invalid("metrics.volatility", "ratio must be positive, got %g", ratio)
		}
		up := (ratio*(1+2*mean) - 1) / (ratio + 1)
		down := 2*mean - up

		outcomes := []float64{
			(1 + up) * (1 + up),
			(1 + up) * (1 + down),
			(1 + down) * (1 + up),
			(1 + down) * (1 + down),
		}
		cagrs := make([]float64, len(outcomes))
		for i, o := range outcomes {
			cagrs[i] = CAGR(o, 2)
		}
		out = append(out, VolatilityScenario{
			Ratio:            ratio,
			Up:               up,
			Down:             down,
			ArithmeticMean:   mean,
			Geometric2Period: Mean(cagrs),
			Median2Period:    math.Sqrt(Median(outcomes)) - 1,
			TerminalUpUp:     outcomes[0],
			TerminalUpDown:   outcomes[1],
			TerminalDownDown: outcomes[3],
		})
	}
	return out, nil
}

// VolatilitySummary condenses a scenario sweep.
type VolatilitySummary struct {
	ArithmeticMean float64
	MinGeometric   float64
	MaxGeometric   float64
	MaxDrag        float64
}

// Summarize reports the geometric range across scenarios.
func Summarize(scenarios []VolatilityScenario) VolatilitySummary {
	if len(scenarios) == 0 {
		return VolatilitySummary{}
	}
	geo := make([]float64, len(scenarios))
	for i, s := range scenarios {
		geo[i] = s.Geometric2Period
	}
	mean := scenarios[0].ArithmeticMean
	lo := slices.Min(geo)
	return VolatilitySummary{
		ArithmeticMean: mean,
		MinGeometric:   lo,
		MaxGeometric:   slices.Max(geo),
		MaxDrag:        mean - lo,
	}
}
