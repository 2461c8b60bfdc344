package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkgdep/internal/core"
	"pkgdep/internal/shared"
	"pkgdep/internal/types"
)

type versionOptions struct {
	Scheme string
}

// newVersionCommand groups raw version-string operations. Unlike the
// specifier commands these work on bare versions and support foreign
// schemes (deb, pip) next to the native ebuild one.
func newVersionCommand() *cobra.Command {
	opts := versionOptions{}
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Compare and sort raw version strings",
	}

	cmd.PersistentFlags().StringVar(&opts.Scheme, "scheme", "ebuild", "Version scheme: ebuild, deb, or pip")
	_ = viper.BindPFlag("scheme", cmd.PersistentFlags().Lookup("scheme"))

	cmd.AddCommand(newVersionCompareCommand(&opts))
	cmd.AddCommand(newVersionSortCommand(&opts))
	return cmd
}

func newVersionCompareCommand(opts *versionOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <version> <version>",
		Short: "Compare two version strings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme := resolveString(cmd, opts.Scheme, "scheme", "scheme")
			comparator, err := core.NewSchemeComparator(types.VersionScheme(scheme))
			if err != nil {
				return err
			}
			result, err := comparator.Compare(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", args[0], shared.CompareSymbol(result), args[1])
			return nil
		},
	}
}

func newVersionSortCommand(opts *versionOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sort [version...]",
		Short: "Sort version strings ascending",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme := resolveString(cmd, opts.Scheme, "scheme", "scheme")
			comparator, err := core.NewSchemeComparator(types.VersionScheme(scheme))
			if err != nil {
				return err
			}
			values := shared.StdinOrArgs(cmd.InOrStdin(), args)
			if err := comparator.Sort(values); err != nil {
				return err
			}
			for _, value := range values {
				fmt.Fprintln(cmd.OutOrStdout(), value)
			}
			return nil
		},
	}
}
