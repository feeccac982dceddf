package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/idilsaglam/finmetrics/internal/calculator"
	"github.com/idilsaglam/finmetrics/internal/config"
	"github.com/idilsaglam/finmetrics/internal/education"
	"github.com/idilsaglam/finmetrics/internal/model"
	"github.com/idilsaglam/finmetrics/internal/simulate"
)

type sectionID int

const (
	sectionCalculator sectionID = iota
	sectionSimulator
	sectionEducation
)

// section is one entry of the navigation menu.
type section struct {
	id    sectionID
	title string
	desc  string
}

func (s section) Title() string       { return s.title }
func (s section) Description() string { return s.desc }
func (s section) FilterValue() string { return s.title }

func sections() []section {
	return []section{
		{sectionCalculator, "Interactive Calculator", "single scenario and volatility sweep"},
		{sectionSimulator, "Monte Carlo Simulator", "distribution of terminal wealth"},
		{sectionEducation, "Educational Content", "arithmetic vs geometric returns"},
	}
}

// SimulateFunc runs a simulation; simulate.Run satisfies it.
type SimulateFunc func(ctx context.Context, p model.SimulationParams, opts ...simulate.Option) (*simulate.Result, error)

func renderCalculator(c config.Calculator) (string, error) {
	var buf bytes.Buffer
	rep, err := calculator.Scenario(calculator.ScenarioInput{
		Up: c.Up / 100, Down: c.Down / 100, ProbUp: c.Prob / 100, Periods: c.Periods,
	})
	if err != nil {
		return "", err
	}
	calculator.RenderScenario(&buf, rep)
	fmt.Fprintln(&buf)

	vol, err := calculator.Volatility(calculator.VolatilityInput{
		Target: c.Target / 100, MaxRatio: c.MaxRatio, Steps: c.Steps,
	})
	if err != nil {
		return "", err
	}
	calculator.RenderVolatility(&buf, vol)
	fmt.Fprintln(&buf)
	calculator.RenderTakeaways(&buf)
	return buf.String(), nil
}

func renderEducation(r *education.Renderer) (string, error) {
	var sb strings.Builder
	for _, t := range education.Topics() {
		out, err := r.Render(t.ID, education.DefaultInputs())
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func renderSimulation(res *simulate.Result, bins int) string {
	var buf bytes.Buffer
	simulate.Render(&buf, res, bins)
	return buf.String()
}
