package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hupe1980/idkey/catalog"
	"github.com/hupe1980/idkey/codec"
	"github.com/spf13/cobra"
)

func newPublishCmd(a *app) *cobra.Command {
	var compression string

	cmd := &cobra.Command{
		Use:   "publish <file>",
		Short: "Validate a catalog and publish it as the next CURRENT version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !cmd.Flags().Changed("compression") {
				compression = a.cfg.Catalog.Compression
			}
			comp, err := catalog.ParseCompression(compression)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0]) // #nosec G304 -- path is provided by the operator
			if err != nil {
				return err
			}

			store, pointers, err := openStore(ctx, a.cfg.Store)
			if err != nil {
				return err
			}

			c, _ := codec.ByName(a.cfg.Catalog.Codec)
			p, err := catalog.Publish(ctx, store, pointers, data, catalog.PublishOptions{
				Codec:       c,
				Compression: comp,
				Strict:      a.cfg.Catalog.Strict,
			})
			if err != nil {
				return err
			}

			a.logger.InfoContext(ctx, "catalog published", "version", p.Version, "object", p.Object)
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %d as %s (%s, %s) at %s\n",
				green("Published"), p.Version, p.Object, p.Codec, p.Compression, p.PublishedAt.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&compression, "compression", "none", "compression of the stored catalog (none, zstd, lz4)")
	return cmd
}
