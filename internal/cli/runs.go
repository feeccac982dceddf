package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/finmetrics/internal/model"
	"github.com/idilsaglam/finmetrics/internal/simulate"
	"github.com/idilsaglam/finmetrics/internal/store/jsonstore"
	"github.com/idilsaglam/finmetrics/internal/ui"
)

func runsCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "runs",
		Short: "Manage saved simulation runs",
	}
	c.AddCommand(runsListCmd(a), runsShowCmd(a), runsRemoveCmd(a))
	return c
}

func (a *app) store() *jsonstore.Store {
	return jsonstore.New(a.cfg.Store.Dir)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func runsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List saved runs, newest first",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			runs, err := a.store().List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				ui.Muted(out, "(no saved runs)")
				return nil
			}
			rows := make([][]string, 0, len(runs))
			for _, r := range runs {
				p := r.Params
				rows = append(rows, []string{
					shortID(r.ID),
					r.CreatedAt.Local().Format("2006-01-02 15:04"),
					fmt.Sprint(p.Runs),
					fmt.Sprint(p.Periods),
					ui.WholePercent(p.Up) + " / " + ui.WholePercent(p.Down),
					ui.Money(r.Summary.MedianFinal),
					ui.Percent(r.Summary.ProbLoss),
				})
			}
			ui.PrintTable(out, []string{"ID", "Created", "Runs", "Periods", "Up / Down", "Median Final", "P(loss)"}, rows)
			return nil
		},
	}
}

func runsShowCmd(a *app) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved run; the id may be a unique prefix",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" && format != "yaml" {
				return usageErrorf("unknown format %q (text, json or yaml)", format)
			}
			r, err := a.store().Get(args[0])
			if err != nil {
				return err
			}
			return printRun(cmd.OutOrStdout(), r, format)
		},
	}
	c.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	return c
}

func printRun(w io.Writer, r model.Run, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		return enc.Close()
	}
	fmt.Fprintf(w, "Run %s\n", r.ID)
	ui.Muted(w, fmt.Sprintf("created %s, took %s", r.CreatedAt.Local().Format(time.RFC1123), r.Elapsed.Round(time.Millisecond)))
	fmt.Fprintln(w)
	simulate.RenderParams(w, r.Params)
	fmt.Fprintln(w)
	simulate.RenderSummary(w, r.Params, r.Summary)
	return nil
}

func runsRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a saved run",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.store().Get(args[0])
			if err != nil {
				return err
			}
			if err := a.store().Delete(r.ID); err != nil {
				return err
			}
			a.log.Info("run removed", zap.String("id", r.ID))
			ui.OK(cmd.OutOrStdout(), "removed run "+shortID(r.ID))
			return nil
		},
	}
}
