package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkgdep/internal/app"
	"pkgdep/internal/shared"
)

func newCompareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <spec> <spec>",
		Short: "Compare two dependency specifiers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := app.NewService()
			a, err := service.Parse(cmd.Context(), args[0], "")
			if err != nil {
				return err
			}
			b, err := service.Parse(cmd.Context(), args[1], "")
			if err != nil {
				return err
			}
			result, err := service.Compare(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", args[0], shared.CompareSymbol(result), args[1])
			return nil
		},
	}
}
