package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkgdep/internal/app"
	"pkgdep/internal/core"
	"pkgdep/internal/shared"
	"pkgdep/internal/types"
)

type sortOptions struct {
	Unique bool
}

func newSortCommand() *cobra.Command {
	opts := sortOptions{}
	cmd := &cobra.Command{
		Use:   "sort [spec...]",
		Short: "Sort dependency specifiers, optionally removing duplicates",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Unique, "unique", false, "Drop structurally equal duplicates")
	_ = viper.BindPFlag("unique", cmd.Flags().Lookup("unique"))

	return cmd
}

func runSort(cmd *cobra.Command, args []string, opts sortOptions) error {
	opts.Unique = resolveBool(cmd, opts.Unique, "unique", "unique")

	service := app.NewService()
	var deps []*types.Dep
	for _, value := range shared.StdinOrArgs(cmd.InOrStdin(), args) {
		dep, err := service.Parse(cmd.Context(), value, "")
		if err != nil {
			return err
		}
		deps = append(deps, dep)
	}

	core.SortDeps(deps)
	if opts.Unique {
		deps = core.DedupDeps(deps)
	}
	for _, dep := range deps {
		fmt.Fprintln(cmd.OutOrStdout(), dep.String())
	}
	return nil
}
