// Package education builds the explanatory pages on return vs volatility.
// Each topic is a Markdown template filled with live calculations.
package education

import (
	"bytes"
	"embed"
	"fmt"
	"math"
	"text/template"

	"github.com/idilsaglam/finmetrics/internal/metrics"
	"github.com/idilsaglam/finmetrics/internal/model"
	"github.com/idilsaglam/finmetrics/internal/ui"
)

//go:embed topics/*.md.tmpl
var topicFS embed.FS

var funcs = template.FuncMap{
	"pct":   ui.Percent,
	"whole": ui.WholePercent,
	"mult":  ui.Multiple,
}

var pages = template.Must(template.New("topics").Funcs(funcs).ParseFS(topicFS, "topics/*.md.tmpl"))

// Topic identifies one page.
type Topic struct {
	ID    string
	Title string
	build func(Inputs) (any, error)
}

// Topics lists the pages in reading order.
func Topics() []Topic {
	return []Topic{
		{ID: "arithmetic", Title: "Arithmetic vs Geometric", build: arithmeticData},
		{ID: "multiplicative", Title: "Multiplicative Process", build: multiplicativeData},
		{ID: "drag", Title: "Volatility Drag", build: dragData},
		{ID: "trees", Title: "Outcome Trees", build: treesData},
		{ID: "takeaways", Title: "Key Takeaways", build: takeawaysData},
	}
}

// Find looks a topic up by ID.
func Find(id string) (Topic, error) {
	for _, t := range Topics() {
		if t.ID == id {
			return t, nil
		}
	}
	return Topic{}, &model.OpError{
		Op:   "education.find",
		Kind: model.KindNotFound,
		Err:  fmt.Errorf("unknown topic %q", id),
	}
}

// Inputs drive the interactive examples. Returns are decimals.
type Inputs struct {
	Year1, Year2 float64
	Years        int
	Rate         float64
	TreePeriods  int
	TreeUp       float64
	TreeDown     float64
}

// DefaultInputs are the values the lessons are written around.
func DefaultInputs() Inputs {
	return Inputs{
		Year1:       0.5,
		Year2:       -0.2,
		Years:       10,
		Rate:        0.1,
		TreePeriods: 2,
		TreeUp:      0.5,
		TreeDown:    -0.2,
	}
}

// Validate checks each input against its allowed range.
func (in Inputs) Validate() error {
	const op = "education.inputs"
	switch {
	case in.Year1 < -0.5 || in.Year1 > 1 || in.Year2 < -0.5 || in.Year2 > 1:
		return model.Invalid(op, "yearly returns must be in [-50%%, 100%%]")
	case in.Years < 1 || in.Years > 20:
		return model.Invalid(op, "years must be in [1, 20], got %d", in.Years)
	case in.Rate < 0.01 || in.Rate > 0.2:
		return model.Invalid(op, "annual rate must be in [1%%, 20%%]")
	case in.TreePeriods < 1 || in.TreePeriods > 3:
		return model.Invalid(op, "tree periods must be in [1, 3], got %d", in.TreePeriods)
	case in.TreeUp < 0.1 || in.TreeUp > 1:
		return model.Invalid(op, "tree up return must be in [10%%, 100%%]")
	case in.TreeDown < -0.8 || in.TreeDown > 0.1:
		return model.Invalid(op, "tree down return must be in [-80%%, 10%%]")
	}
	return nil
}

// Markdown renders a topic to Markdown source.
func Markdown(id string, in Inputs) (string, error) {
	t, err := Find(id)
	if err != nil {
		return "", err
	}
	if err := in.Validate(); err != nil {
		return "", err
	}
	data, err := t.build(in)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, t.ID+".md.tmpl", data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.ID, err)
	}
	return buf.String(), nil
}

func arithmeticData(in Inputs) (any, error) {
	arith, err := metrics.ArithmeticReturn([]float64{in.Year1, in.Year2})
	if err != nil {
		return nil, err
	}
	geo, err := metrics.GeometricReturn([]float64{in.Year1, in.Year2})
	if err != nil {
		return nil, err
	}
	gap := arith - geo
	return struct {
		Year1, Year2, Arithmetic, Geometric, Terminal, AfterYear1, Gap, AbsGap float64
		HasGap                                                                 bool
	}{
		Year1: in.Year1, Year2: in.Year2,
		Arithmetic: arith, Geometric: geo,
		Terminal:   (1 + in.Year1) * (1 + in.Year2),
		AfterYear1: 1 + in.Year1,
		Gap:        gap, AbsGap: math.Abs(gap),
		HasGap: math.Abs(gap) > 1e-12,
	}, nil
}

type growthRow struct {
	Year                     int
	Multiplicative, Additive float64
}

func multiplicativeData(in Inputs) (any, error) {
	rows := make([]growthRow, 0, in.Years+1)
	for y := 0; y <= in.Years; y++ {
		rows = append(rows, growthRow{
			Year:           y,
			Multiplicative: math.Pow(1+in.Rate, float64(y)),
			Additive:       1 + in.Rate*float64(y),
		})
	}
	last := rows[len(rows)-1]
	return struct {
		Rate                               float64
		Years                              int
		Rows                               []growthRow
		FinalMultiplicative, FinalAdditive float64
		Bonus                              float64
	}{
		Rate: in.Rate, Years: in.Years, Rows: rows,
		FinalMultiplicative: last.Multiplicative,
		FinalAdditive:       last.Additive,
		Bonus:               last.Multiplicative - last.Additive,
	}, nil
}

type dragRow struct {
	Name                                  string
	Up, Down                              float64
	Arithmetic, Geometric, Drag, ProbLoss float64
}

// DragScenarios are the two examples of the volatility drag page.
var DragScenarios = []struct {
	Name     string
	Up, Down float64
}{
	{"Low Volatility", 0.21, 0.19},
	{"High Volatility", 1.00, -0.60},
}

func dragData(Inputs) (any, error) {
	rows := make([]dragRow, 0, len(DragScenarios))
	for _, s := range DragScenarios {
		out, err := metrics.Scenario(s.Up, s.Down, 2)
		if err != nil {
			return nil, err
		}
		arith := metrics.ExpectedReturn(s.Up, s.Down, 0.5)
		rows = append(rows, dragRow{
			Name: s.Name, Up: s.Up, Down: s.Down,
			Arithmetic: arith,
			Geometric:  out.GeometricMean,
			Drag:       arith - out.GeometricMean,
			ProbLoss:   out.ProbLoss,
		})
	}
	return struct{ Scenarios []dragRow }{rows}, nil
}

type treePath struct {
	Path           string
	Terminal, CAGR float64
}

func treesData(in Inputs) (any, error) {
	out, err := metrics.Scenario(in.TreeUp, in.TreeDown, in.TreePeriods)
	if err != nil {
		return nil, err
	}
	paths := make([]treePath, 0, len(out.Outcomes))
	for _, o := range out.Outcomes {
		label := ""
		for i, r := range o.Sequence {
			if i > 0 {
				label += " -> "
			}
			label += ui.WholePercent(r)
		}
		paths = append(paths, treePath{Path: label, Terminal: o.Terminal, CAGR: o.CAGR})
	}
	return struct {
		Outcomes metrics.ScenarioOutcomes
		Paths    []treePath
	}{out, paths}, nil
}

func takeawaysData(Inputs) (any, error) {
	a, err := metrics.Scenario(0.30, 0.10, 2)
	if err != nil {
		return nil, err
	}
	b, err := metrics.Scenario(0.80, -0.40, 2)
	if err != nil {
		return nil, err
	}
	return struct{ A, B metrics.ScenarioOutcomes }{a, b}, nil
}
