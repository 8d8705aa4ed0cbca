package main

import (
	"context"

	"github.com/hupe1980/idkey"
	"github.com/hupe1980/idkey/catalog"
	"github.com/spf13/cobra"
)

// sourceFlags selects where a catalog is read from.
type sourceFlags struct {
	file string
	name string
	node string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "read the catalog from a local file instead of the store")
	cmd.Flags().StringVar(&f.name, "catalog", "", "catalog object in the store (default: the published CURRENT catalog)")
	cmd.Flags().StringVar(&f.node, "node", "", "guide node to key (default: the start node)")
}

func (f *sourceFlags) source(ctx context.Context, a *app) (catalog.Source, error) {
	opts := a.catalogOptions(f.node)
	if f.file != "" {
		return catalog.NewFileSource(f.file, opts...), nil
	}

	store, pointers, err := openStore(ctx, a.cfg.Store)
	if err != nil {
		return nil, err
	}
	if f.name != "" {
		return catalog.NewStoreSource(store, f.name, opts...), nil
	}
	return catalog.NewPublishedSource(store, pointers, opts...), nil
}

// loadKey creates a key and loads its catalog.
func loadKey(ctx context.Context, a *app, f *sourceFlags, optFns ...idkey.Option) (*idkey.Key, error) {
	src, err := f.source(ctx, a)
	if err != nil {
		return nil, err
	}
	key := idkey.New(append([]idkey.Option{idkey.WithLogger(a.logger)}, optFns...)...)
	if err := key.Load(ctx, src); err != nil {
		return nil, err
	}
	return key, nil
}
