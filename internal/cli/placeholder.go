package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/finmetrics/internal/model"
	"github.com/idilsaglam/finmetrics/internal/stub"
)

func placeholderCmd() *cobra.Command {
	var list bool

	c := &cobra.Command{
		Use:   "placeholder [name]",
		Short: "Run one of the section placeholders",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list || len(args) == 0 {
				for _, p := range stub.Placeholders() {
					fmt.Fprintln(out, p.Name)
				}
				return nil
			}
			p, err := stub.Lookup(args[0])
			if err != nil {
				if model.IsKind(err, model.KindNotFound) {
					return &usageError{err: err}
				}
				return err
			}
			return p.Fn(out)
		},
	}
	c.Flags().BoolVar(&list, "list", false, "print the registered placeholder names")
	return c
}
