package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/finmetrics/internal/calculator"
	"github.com/idilsaglam/finmetrics/internal/config"
)

func calcCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "calc",
		Short: "Interactive return vs volatility calculator",
	}
	c.AddCommand(
		uses(calcScenarioCmd(a), config.SectionCalculator),
		uses(calcVolatilityCmd(a), config.SectionCalculator),
	)
	return c
}

func calcScenarioCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "scenario",
		Short: "Analyse every outcome of one up/down investment",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := a.cfg.Calculator
			rep, err := calculator.Scenario(calculator.ScenarioInput{
				Up:      in.Up / 100,
				Down:    in.Down / 100,
				ProbUp:  in.Prob / 100,
				Periods: in.Periods,
			})
			if err != nil {
				return err
			}
			a.log.Debug("scenario computed",
				zap.Int("outcomes", len(rep.Outcomes.Outcomes)),
				zap.Float64("geometric_mean", rep.Outcomes.GeometricMean))
			out := cmd.OutOrStdout()
			calculator.RenderScenario(out, rep)
			fmt.Fprintln(out)
			calculator.RenderTakeaways(out)
			return nil
		},
	}
	f := c.Flags()
	f.Float64("up", 100, "up return in percent")
	f.Float64("down", -60, "down return in percent")
	f.Float64("prob", 50, "probability of the up move in percent")
	f.Int("periods", 2, "number of periods")
	bindFlag(f, "up", "calculator.up")
	bindFlag(f, "down", "calculator.down")
	bindFlag(f, "prob", "calculator.prob")
	bindFlag(f, "periods", "calculator.periods")
	return c
}

func calcVolatilityCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "volatility",
		Short: "Sweep volatility ratios at a fixed arithmetic mean",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := a.cfg.Calculator
			rep, err := calculator.Volatility(calculator.VolatilityInput{
				Target:   in.Target / 100,
				MaxRatio: in.MaxRatio,
				Steps:    in.Steps,
			})
			if err != nil {
				return err
			}
			a.log.Debug("volatility sweep computed",
				zap.Int("scenarios", len(rep.Scenarios)),
				zap.Float64("max_drag", rep.Summary.MaxDrag))
			out := cmd.OutOrStdout()
			calculator.RenderVolatility(out, rep)
			fmt.Fprintln(out)
			calculator.RenderTakeaways(out)
			return nil
		},
	}
	f := c.Flags()
	f.Float64("target", 20, "target arithmetic mean return in percent")
	f.Float64("max-ratio", 5, "largest volatility ratio")
	f.Int("steps", 20, "number of ratios between 1.1 and --max-ratio")
	bindFlag(f, "target", "calculator.target")
	bindFlag(f, "max-ratio", "calculator.max_ratio")
	bindFlag(f, "steps", "calculator.steps")
	return c
}
