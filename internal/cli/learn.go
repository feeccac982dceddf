package cli

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/finmetrics/internal/education"
	"github.com/idilsaglam/finmetrics/internal/model"
	"github.com/idilsaglam/finmetrics/internal/ui"
)

func learnCmd(a *app) *cobra.Command {
	var (
		raw bool
		in  = education.DefaultInputs()
		// percentages as typed; converted before use
		year1, year2, rate, treeUp, treeDown float64
	)

	c := &cobra.Command{
		Use:   "learn [topic]",
		Short: "Educational content on return and volatility",
		Long:  "Without a topic, lists the available topics.",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				rows := make([][]string, 0, 5)
				for _, t := range education.Topics() {
					rows = append(rows, []string{t.ID, t.Title})
				}
				ui.PrintTable(out, []string{"Topic", "Title"}, rows)
				return nil
			}

			in.Year1, in.Year2 = year1/100, year2/100
			in.Rate = rate / 100
			in.TreeUp, in.TreeDown = treeUp/100, treeDown/100

			opts := education.RenderOptions{Raw: raw, Width: min(ui.Width(), 100)}
			if a.cfg.NoColor || ui.Current().Name == "mono" {
				opts.Style = "notty"
			}
			r, err := education.NewRenderer(opts)
			if err != nil {
				return err
			}
			err = r.Write(out, args[0], in)
			if model.IsKind(err, model.KindNotFound) {
				return &usageError{err: err}
			}
			return err
		},
	}

	f := c.Flags()
	f.BoolVar(&raw, "raw", false, "print the Markdown source")
	f.Float64Var(&year1, "year1", 100*in.Year1, "arithmetic: year 1 return in percent")
	f.Float64Var(&year2, "year2", 100*in.Year2, "arithmetic: year 2 return in percent")
	f.IntVar(&in.Years, "years", in.Years, "multiplicative: number of years")
	f.Float64Var(&rate, "rate", 100*in.Rate, "multiplicative: annual return in percent")
	f.IntVar(&in.TreePeriods, "tree-periods", in.TreePeriods, "trees: number of periods")
	f.Float64Var(&treeUp, "tree-up", 100*in.TreeUp, "trees: up return in percent")
	f.Float64Var(&treeDown, "tree-down", 100*in.TreeDown, "trees: down return in percent")
	return c
}
