package metrics

import (
	"math"

	"github.com/idilsaglam/finmetrics/internal/model"
)

// ArithmeticReturn is the simple average of the returns.
func ArithmeticReturn(rs []float64) (float64, error) {
	if err := requireNonEmpty("metrics.arithmetic", rs); err != nil {
		return 0, err
	}
	return Mean(rs), nil
}

// GeometricReturn is the constant per-period rate that compounds to the same
// terminal wealth (CAGR).
func GeometricReturn(rs []float64) (float64, error) {
	if err := requireNonEmpty("metrics.geometric", rs); err != nil {
		return 0, err
	}
	prod := 1.0
	for _, r := range rs {
		prod *= 1 + r
	}
	if prod < 0 {
		return 0, model.Invalid("metrics.geometric", "terminal wealth %.4f is negative", prod)
	}
	return math.Pow(prod, 1/float64(len(rs))) - 1, nil
}

// LogReturn is the mean continuously compounded return.
func LogReturn(rs []float64) (float64, error) {
	if err := requireNonEmpty("metrics.log", rs); err != nil {
		return 0, err
	}
	var sum float64
	for _, r := range rs {
		if 1+r <= 0 {
			return 0, model.Invalid("metrics.log", "return %.4f wipes out the position", r)
		}
		sum += math.Log1p(r)
	}
	return sum / float64(len(rs)), nil
}

// ExpectedReturn weights up and down by the probability of the up move.
func ExpectedReturn(up, down, probUp float64) float64 {
	return probUp*up + (1-probUp)*down
}

// CAGR converts a terminal wealth multiple over periods into a per-period rate.
func CAGR(multiple float64, periods int) float64 {
	if periods <= 0 {
		return math.NaN()
	}
	return math.Pow(multiple, 1/float64(periods)) - 1
}
