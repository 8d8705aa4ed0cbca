package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/hupe1980/idkey/catalog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newValidateCmd(a *app) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Validate catalog files",
		Long:  `Validate decodes every catalog file and reports malformed space entries, taxa and filter types. With --strict, item and filter ids must also be UUIDs.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problems := make([]error, len(args))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(jobs)
			for i, path := range args {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					data, err := os.ReadFile(path) // #nosec G304 -- paths are provided by the operator
					if err != nil {
						return err
					}
					problems[i] = catalog.Validate(data, a.catalogOptions("")...)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			invalid := 0
			for i, path := range args {
				if problems[i] == nil {
					fmt.Fprintf(out, "%s %s\n", green("✓"), path)
					continue
				}
				invalid++
				fmt.Fprintf(out, "%s %s\n", red("✗"), path)
				for _, p := range unjoin(problems[i]) {
					fmt.Fprintf(out, "    %s\n", p)
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d catalogs invalid", invalid, len(args))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "files validated in parallel")
	return cmd
}

// unjoin splits an errors.Join result into its parts.
func unjoin(err error) []error {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		return joined.Unwrap()
	}
	return []error{err}
}
