package simulate

import (
	"fmt"
	"io"
	"time"

	"github.com/idilsaglam/finmetrics/internal/model"
	"github.com/idilsaglam/finmetrics/internal/ui"
)

const labelWidth = 25

// RenderParams prints the inputs and the expected arithmetic return.
func RenderParams(w io.Writer, p model.SimulationParams) {
	ui.Panel(w, "Simulation Parameters", []string{
		ui.KV("Initial investment", ui.Money(p.Initial), labelWidth),
		ui.KV("Up scenario return", ui.WholePercent(p.Up), labelWidth),
		ui.KV("Down scenario return", ui.WholePercent(p.Down), labelWidth),
		ui.KV("Probability of up", ui.Percent(p.ProbUp), labelWidth),
		ui.KV("Investment periods", fmt.Sprint(p.Periods), labelWidth),
		ui.KV("Simulations", fmt.Sprint(p.Runs), labelWidth),
		ui.KV("Seed", fmt.Sprint(p.Seed), labelWidth),
		"",
		ui.KV("Arithmetic mean", ui.Percent(p.ProbUp*p.Up+(1-p.ProbUp)*p.Down), labelWidth),
	})
}

// RenderSummary prints the key statistics panel and the percentile table.
// It only needs what a stored run keeps.
func RenderSummary(w io.Writer, p model.SimulationParams, s model.SimulationSummary) {
	ui.Panel(w, "Key Statistics", []string{
		ui.KV("Mean final value", ui.Money(s.MeanFinal), labelWidth),
		ui.KV("Median final value", ui.Money(s.MedianFinal), labelWidth),
		ui.KV("Probability of loss", ui.Percent(s.ProbLoss), labelWidth),
		ui.KV("Probability of doubling", ui.Percent(s.ProbDouble), labelWidth),
		ui.KV("Median CAGR", ui.Percent(s.GeometricMean)+"  "+ui.Delta(s.GeometricMean-s.ArithmeticExpected), labelWidth),
		ui.KV("Standard deviation", ui.Money(s.StdFinal), labelWidth),
	})

	fmt.Fprintln(w, ui.C(ui.Current().Title, "Outcome Percentiles"))
	rows := make([][]string, 0, len(s.Percentiles))
	for _, r := range s.Percentiles {
		rows = append(rows, []string{
			fmt.Sprintf("%g%%", r.Percentile),
			ui.Money(r.Value),
			ui.Percent(r.CAGR),
			fmt.Sprintf("%.2fx", r.Value/p.Initial),
		})
	}
	ui.PrintTable(w, []string{"Percentile", "Final Value", "CAGR", "Multiple"}, rows)
}

// Render prints the full report of a fresh simulation.
func Render(w io.Writer, r *Result, bins int) {
	p, s := r.Params, r.Summary
	RenderSummary(w, p, s)

	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.C(ui.Current().Title, "CAGR Distribution"))
	for _, ln := range ui.Histogram(ui.Bins(r.CAGRs, bins), 40, ui.Percent) {
		fmt.Fprintln(w, "  "+ln)
	}

	if len(r.MedianPath) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, ui.C(ui.Current().Title, fmt.Sprintf("Median Path (across %d kept paths)", len(r.Paths))))
		rows := make([][]string, 0, len(r.MedianPath))
		for t, v := range r.MedianPath {
			rows = append(rows, []string{fmt.Sprint(t), ui.Money(v)})
		}
		ui.PrintTable(w, []string{"Period", "Median Value"}, rows)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.C(ui.Current().Title, "Distribution Analysis"))
	fmt.Fprintf(w, "- The mean final value (%s) is typically higher than the median (%s)\n", ui.Money(s.MeanFinal), ui.Money(s.MedianFinal))
	fmt.Fprintln(w, "- This positive skew occurs because extreme positive outcomes have unlimited upside")
	fmt.Fprintf(w, "- %s of simulations result in a loss\n", ui.Percent(s.ProbLoss))
	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.C(ui.Current().Title, "CAGR Analysis"))
	fmt.Fprintf(w, "- Arithmetic expected return: %s\n", ui.Percent(s.ArithmeticExpected))
	fmt.Fprintf(w, "- Median CAGR: %s\n", ui.Percent(s.GeometricMean))
	fmt.Fprintf(w, "- The difference (%s) represents volatility drag\n", ui.Percent(s.ArithmeticExpected-s.GeometricMean))
	ui.Muted(w, fmt.Sprintf("Completed %d simulations in %s", p.Runs, r.Elapsed.Round(time.Millisecond)))
}
