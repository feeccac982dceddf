package metrics

import (
	"slices"

	"github.com/idilsaglam/finmetrics/internal/model"
)

// MaxScenarioPeriods bounds the 2^n enumeration.
const MaxScenarioPeriods = 16

// Outcome is one equally likely path of up/down moves.
type Outcome struct {
	Sequence []float64
	Terminal float64
	CAGR     float64
}

// Arrows renders the sequence as ↑/↓ marks.
func (o Outcome) Arrows() string {
	b := make([]rune, 0, 2*len(o.Sequence))
	for i, r := range o.Sequence {
		if i > 0 {
			b = append(b, ' ')
		}
		if r > 0 {
			b = append(b, '↑')
		} else {
			b = append(b, '↓')
		}
	}
	return string(b)
}

// ScenarioOutcomes summarises every sequence of a two-state return process.
type ScenarioOutcomes struct {
	Up, Down       float64
	Periods        int
	Outcomes       []Outcome
	ArithmeticMean float64
	GeometricMean  float64 // mean of the per-path CAGRs
	MedianCAGR     float64
	MeanTerminal   float64
	MedianTerminal float64
	ProbLoss       float64
	WorstCase      float64
	BestCase       float64
}

// Terminals returns the terminal multiples in sequence order.
func (s ScenarioOutcomes) Terminals() []float64 {
	out := make([]float64, len(s.Outcomes))
	for i, o := range s.Outcomes {
		out[i] = o.Terminal
	}
	return out
}

// CAGRs returns the per-path CAGRs in sequence order.
func (s ScenarioOutcomes) CAGRs() []float64 {
	out := make([]float64, len(s.Outcomes))
	for i, o := range s.Outcomes {
		out[i] = o.CAGR
	}
	return out
}

// Scenario enumerates all 2^periods sequences, up moves first, and computes
// terminal wealth per unit invested.
func Scenario(up, down float64, periods int) (ScenarioOutcomes, error) {
	const op = "metrics.scenario"
	if periods < 1 || periods > MaxScenarioPeriods {
		return ScenarioOutcomes{}, model.Invalid(op, "periods must be in [1, %d], got %d", MaxScenarioPeriods, periods)
	}
	if 1+up < 0 || 1+down < 0 {
		return ScenarioOutcomes{}, model.Invalid(op, "returns below -100%% are not possible")
	}

	n := 1 << periods
	outcomes := make([]Outcome, 0, n)
	for mask := 0; mask < n; mask++ {
		seq := make([]float64, periods)
		terminal := 1.0
		for i := 0; i < periods; i++ {
			// high bit first so that index 0 is all-up
			r := up
			if mask&(1<<(periods-1-i)) != 0 {
				r = down
			}
			seq[i] = r
			terminal *= 1 + r
		}
		outcomes = append(outcomes, Outcome{
			Sequence: seq,
			Terminal: terminal,
			CAGR:     CAGR(terminal, periods),
		})
	}

	s := ScenarioOutcomes{
		Up:             up,
		Down:           down,
		Periods:        periods,
		Outcomes:       outcomes,
		ArithmeticMean: 0.5*up + 0.5*down,
	}
	terms, cagrs := s.Terminals(), s.CAGRs()
	s.GeometricMean = Mean(cagrs)
	s.MedianCAGR = Median(cagrs)
	s.MeanTerminal = Mean(terms)
	s.MedianTerminal = Median(terms)
	s.ProbLoss = FractionBelow(terms, 1)
	s.WorstCase = slices.Min(terms)
	s.BestCase = slices.Max(terms)
	return s, nil
}
