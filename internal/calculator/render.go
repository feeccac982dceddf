package calculator

import (
	"fmt"
	"io"

	"github.com/idilsaglam/finmetrics/internal/ui"
)

const labelWidth = 24

// RenderScenario prints the results panel, the outcome tree for short
// horizons and the detailed breakdown.
func RenderScenario(w io.Writer, r ScenarioReport) {
	o := r.Outcomes
	ui.Panel(w, "Single Scenario Analysis", []string{
		ui.KV("Arithmetic mean return", ui.Percent(r.ArithmeticMean), labelWidth),
		ui.KV("Geometric mean return", ui.Percent(o.GeometricMean)+"  "+ui.Delta(o.GeometricMean-r.ArithmeticMean), labelWidth),
		ui.KV("Median CAGR", ui.Percent(o.MedianCAGR), labelWidth),
		ui.KV("Probability of loss", ui.Percent(o.ProbLoss), labelWidth),
	})

	if r.Input.Periods <= TreeMaxPeriods {
		fmt.Fprintln(w, ui.C(ui.Current().Title, "All Possible Outcomes"))
		rows := make([][]string, 0, len(o.Outcomes))
		for _, oc := range o.Outcomes {
			val := ui.Multiple(oc.Terminal, 3)
			if oc.Terminal >= 1 {
				val = ui.C(ui.Current().Success, val)
			} else {
				val = ui.C(ui.Current().Error, val)
			}
			rows = append(rows, []string{oc.Arrows(), val, ui.SignedPercent(oc.Terminal - 1), ui.Percent(oc.CAGR)})
		}
		ui.PrintTable(w, []string{"Sequence", "Terminal Value", "Return", "CAGR"}, rows)
	}

	ui.Panel(w, "Detailed Breakdown", []string{
		ui.C(ui.Current().Accent, "Scenario Parameters"),
		"- Up return: " + ui.Percent(r.Input.Up),
		"- Down return: " + ui.Percent(r.Input.Down),
		"- Probability of up: " + ui.Percent(r.Input.ProbUp),
		fmt.Sprintf("- Number of periods: %d", r.Input.Periods),
		"",
		ui.C(ui.Current().Accent, "Calculated Metrics"),
		"- Best case terminal value: " + ui.Multiple(o.BestCase, 3),
		"- Worst case terminal value: " + ui.Multiple(o.WorstCase, 3),
		"- Mean terminal value: " + ui.Multiple(o.MeanTerminal, 3),
		"- Median terminal value: " + ui.Multiple(o.MedianTerminal, 3),
	})
}

// RenderVolatility prints the scenario table and the volatility impact summary.
func RenderVolatility(w io.Writer, r VolatilityReport) {
	fmt.Fprintln(w, ui.C(ui.Current().Title, "Volatility Impact Analysis"))
	rows := make([][]string, 0, len(r.Scenarios))
	for _, s := range r.Scenarios {
		rows = append(rows, []string{
			fmt.Sprintf("%.2f", s.Ratio),
			s.Description(),
			ui.Percent(s.Up),
			ui.Percent(s.Down),
			ui.Percent(s.Geometric2Period),
			ui.Percent(s.Median2Period),
		})
	}
	ui.PrintTable(w, []string{"Volatility Ratio", "Spread", "Up Return", "Down Return", "Geometric Mean (avg path CAGR)", "Median Return"}, rows)

	s := r.Summary
	ui.Panel(w, "Volatility Impact Summary", []string{
		fmt.Sprintf("- Arithmetic mean return: %s (constant across all scenarios)", ui.Percent(s.ArithmeticMean)),
		fmt.Sprintf("- Geometric mean range: %s to %s", ui.Percent(s.MinGeometric), ui.Percent(s.MaxGeometric)),
		fmt.Sprintf("- Maximum volatility drag: %s", ui.Percent(s.MaxDrag)),
		"- Geometric mean is the average CAGR of the four 2-period paths,",
		"  not sqrt(mean terminal value) - 1, which always equals the arithmetic mean",
		"",
		"As volatility increases, the geometric mean return decreases while",
		"the arithmetic mean stays constant: the \"volatility drag\" effect.",
	})
}

// RenderTakeaways prints the closing notes of the calculator page.
func RenderTakeaways(w io.Writer) {
	fmt.Fprintln(w, ui.C(ui.Current().Title, "Key Takeaways"))
	for i, ln := range []string{
		"Volatility Drag: higher volatility reduces compound returns even when the arithmetic mean stays constant",
		"Multiplicative Process: investing involves multiplying returns, not adding them",
		"Geometric vs Arithmetic: the geometric mean better represents actual investment experience",
		"Risk Assessment: consider both expected return AND volatility when evaluating investments",
	} {
		fmt.Fprintf(w, "%d. %s\n", i+1, ln)
	}
}
