package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"pkgdep/internal/app"
	"pkgdep/internal/shared"
	"pkgdep/internal/types"
)

type parseOptions struct {
	Format string
	Output string
	Repo   string
}

func newParseCommand() *cobra.Command {
	opts := parseOptions{}
	cmd := &cobra.Command{
		Use:   "parse [spec...]",
		Short: "Parse dependency specifiers and print their fields",
		Long: "Parse dependency specifiers given as arguments or on stdin. " +
			"With --format, ${KEY} references expand to record fields " +
			"(e.g. ${CATEGORY}, ${PVR}, ${SLOT}).",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", "", "Output template with ${KEY} field references")
	cmd.Flags().StringVar(&opts.Output, "output", "text", "Output mode: text or yaml")
	cmd.Flags().StringVar(&opts.Repo, "repo", "", "Repository override applied to every record")

	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("repo", cmd.Flags().Lookup("repo"))

	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts parseOptions) error {
	opts.Format = resolveString(cmd, opts.Format, "format", "format")
	opts.Output = resolveString(cmd, opts.Output, "output", "output")
	opts.Repo = resolveString(cmd, opts.Repo, "repo", "repo")

	service := app.NewService()
	var firstErr error

	for _, value := range shared.StdinOrArgs(cmd.InOrStdin(), args) {
		dep, err := service.Parse(cmd.Context(), value, opts.Repo)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "invalid specifier: %s\n", errorMessage(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := printDep(cmd, service, dep, opts); err != nil {
			return err
		}
	}
	return firstErr
}

func printDep(cmd *cobra.Command, service app.Service, dep *types.Dep, opts parseOptions) error {
	switch {
	case opts.Format != "":
		line, err := expandFormat(service, dep, opts.Format)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	case opts.Output == "yaml":
		fields, err := service.Fields(dep)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(fields)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "---\n%s", data)
	default:
		fmt.Fprintln(cmd.OutOrStdout(), dep.String())
	}
	return nil
}

// expandFormat substitutes ${KEY} references with record fields.
func expandFormat(service app.Service, dep *types.Dep, format string) (string, error) {
	var expandErr error
	line := os.Expand(format, func(key string) string {
		value, err := service.Field(dep, key)
		if err != nil && expandErr == nil {
			expandErr = err
		}
		return value
	})
	return line, expandErr
}
