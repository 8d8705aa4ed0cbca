package main

import (
	"fmt"

	"github.com/hupe1980/idkey/codec"
	"github.com/spf13/cobra"
)

func newFilterCmd(a *app) *cobra.Command {
	var (
		src    sourceFlags
		sel    selectionFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Run one pass and print the visible items",
		Example: `  idkey filter -f guide.json -s <legs-filter>=6 -s <colour-filter>=#ff0000
  idkey filter --bucket guides --backend s3 --taxon <group-filter>=taxonomy.sources.col:001006`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			key, err := loadKey(ctx, a, &src)
			if err != nil {
				return err
			}
			selection, err := sel.build(key.Catalog())
			if err != nil {
				return err
			}

			res, passErr := key.Apply(ctx, selection)
			if res == nil {
				return passErr
			}

			items := key.VisibleItems()
			out := cmd.OutOrStdout()
			if asJSON {
				views := make([]itemView, len(items))
				for i, it := range items {
					views[i] = newItemView(it)
				}
				data, err := codec.GoJSON{}.MarshalIndent(map[string]any{
					"visible": res.VisibleCount,
					"total":   key.Catalog().Len(),
					"items":   views,
				}, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
			} else {
				printItems(out, items, key.Catalog().Len())
			}
			printPassError(cmd.ErrOrStderr(), res)
			return nil
		},
	}

	src.register(cmd)
	sel.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
