package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/idilsaglam/finmetrics/internal/model"
	"github.com/idilsaglam/finmetrics/internal/simulate"
	"github.com/idilsaglam/finmetrics/internal/store/jsonstore"
	"github.com/idilsaglam/finmetrics/internal/ui"
)

const progressWidth = 30

func simulateCmd(a *app) *cobra.Command {
	var (
		save bool
		bins int
	)

	c := &cobra.Command{
		Use:   "simulate",
		Short: "Monte Carlo simulation of a two-state investment",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if bins < 1 {
				return usageErrorf("--bins must be at least 1, got %d", bins)
			}
			out := cmd.OutOrStdout()
			p := a.cfg.Simulator.Params()

			opts := []simulate.Option{simulate.WithLogger(a.log)}
			errOut := cmd.ErrOrStderr()
			if isTerminal(errOut) {
				opts = append(opts, simulate.WithProgress(func(done, total int) {
					fmt.Fprintf(errOut, "\r%s", ui.ProgressBar(float64(done)/float64(total), progressWidth))
				}))
			}
			res, err := simulate.Run(cmd.Context(), p, opts...)
			if isTerminal(errOut) {
				fmt.Fprintln(errOut)
			}
			if err != nil {
				return err
			}

			simulate.RenderParams(out, res.Params)
			fmt.Fprintln(out)
			simulate.Render(out, res, bins)

			if !save {
				return nil
			}
			saved, err := jsonstore.New(a.cfg.Store.Dir).Save(model.Run{
				Elapsed: res.Elapsed,
				Params:  res.Params,
				Summary: res.Summary,
			})
			if err != nil {
				return err
			}
			a.log.Info("run saved", zap.String("id", saved.ID), zap.String("dir", a.cfg.Store.Dir))
			ui.OK(out, "saved run "+saved.ID)
			return nil
		},
	}

	f := c.Flags()
	f.BoolVar(&save, "save", false, "store the run summary for later use with 'runs'")
	f.IntVar(&bins, "bins", 20, "histogram bins for the CAGR distribution")
	f.Float64("initial", 10000, "initial investment")
	f.Float64("up", 60, "up return in percent")
	f.Float64("down", -20, "down return in percent")
	f.Float64("prob", 50, "probability of the up move in percent")
	f.Int("periods", 10, "investment periods")
	f.Int("runs", 10000, "number of simulations: 1000, 5000, 10000, 25000 or 50000")
	f.Int("workers", 0, "parallel workers (0 = one per CPU)")
	f.Uint64("seed", 0, "random seed (0 = time based)")
	f.Int("keep-paths", 1000, "paths kept for the median path table")
	for name, key := range map[string]string{
		"initial":    "simulator.initial",
		"up":         "simulator.up",
		"down":       "simulator.down",
		"prob":       "simulator.prob",
		"periods":    "simulator.periods",
		"runs":       "simulator.runs",
		"workers":    "simulator.workers",
		"seed":       "simulator.seed",
		"keep-paths": "simulator.keep_paths",
	} {
		bindFlag(f, name, key)
	}
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
