package cli

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/finmetrics/internal/tui"
)

func tuiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the calculator, simulator and lessons interactively",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return tui.Run(cmd.Context(), tui.Options{
				Config: a.cfg,
				Logger: a.log,
			})
		},
	}
}
