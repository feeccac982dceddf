package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/idilsaglam/finmetrics/internal/model"
)

// Allowed simulation sizes.
var RunChoices = []int{1000, 5000, 10000, 25000, 50000}

var themes = []string{"classic", "neon", "mono"}

type rangeCheck struct {
	key      string
	val      float64
	min, max float64
}

func (r rangeCheck) err() error {
	if r.val < r.min || r.val > r.max {
		return fmt.Errorf("%s must be in [%g, %g], got %g", r.key, r.min, r.max, r.val)
	}
	return nil
}

// Section names a group of settings only some commands use.
type Section string

const (
	SectionCalculator Section = "calculator"
	SectionSimulator  Section = "simulator"
)

// Validate checks the shared settings and the listed sections against their
// allowed ranges. Sections not listed are left alone.
func (c Config) Validate(sections ...Section) error {
	var errs []error
	if !slices.Contains(themes, c.Theme) {
		errs = append(errs, fmt.Errorf("theme must be one of %v, got %q", themes, c.Theme))
	}
	for _, sec := range sections {
		switch sec {
		case SectionCalculator:
			errs = append(errs, c.Calculator.Validate())
		case SectionSimulator:
			errs = append(errs, c.Simulator.Validate())
		default:
			errs = append(errs, fmt.Errorf("unknown config section %q", sec))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return &model.OpError{Op: "config.validate", Kind: model.KindInvalidInput, Err: err}
	}
	return nil
}

func (c Calculator) Validate() error {
	checks := []rangeCheck{
		{"calculator.up", c.Up, -50, 200},
		{"calculator.down", c.Down, -90, 50},
		{"calculator.prob", c.Prob, 1, 99},
		{"calculator.periods", float64(c.Periods), 1, 5},
		{"calculator.target", c.Target, 1, 50},
		{"calculator.max_ratio", c.MaxRatio, 1.1, 10},
		{"calculator.steps", float64(c.Steps), 2, 200},
	}
	var errs []error
	for _, ch := range checks {
		errs = append(errs, ch.err())
	}
	return errors.Join(errs...)
}

func (s Simulator) Validate() error {
	checks := []rangeCheck{
		{"simulator.initial", s.Initial, 1000, 1000000},
		{"simulator.up", s.Up, -50, 200},
		{"simulator.down", s.Down, -90, 50},
		{"simulator.prob", s.Prob, 1, 99},
		{"simulator.periods", float64(s.Periods), 1, 30},
		{"simulator.workers", float64(s.Workers), 0, 256},
		{"simulator.keep_paths", float64(s.KeepPaths), 0, float64(s.Runs)},
	}
	var errs []error
	for _, ch := range checks {
		errs = append(errs, ch.err())
	}
	if !slices.Contains(RunChoices, s.Runs) {
		errs = append(errs, fmt.Errorf("simulator.runs must be one of %v, got %d", RunChoices, s.Runs))
	}
	return errors.Join(errs...)
}

// Params converts the percentage based settings into simulation parameters.
func (s Simulator) Params() model.SimulationParams {
	return model.SimulationParams{
		Initial:   s.Initial,
		Up:        s.Up / 100,
		Down:      s.Down / 100,
		ProbUp:    s.Prob / 100,
		Periods:   s.Periods,
		Runs:      s.Runs,
		Workers:   s.Workers,
		Seed:      s.Seed,
		KeepPaths: s.KeepPaths,
	}
}
