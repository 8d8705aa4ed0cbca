package catalog

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hupe1980/idkey/blobstore"
	"github.com/hupe1980/idkey/codec"
	"github.com/hupe1980/idkey/internal/hash"
	"github.com/hupe1980/idkey/model"
	"golang.org/x/sync/singleflight"
)

// Source fetches a catalog snapshot.
type Source interface {
	Fetch(ctx context.Context) (*model.Catalog, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (*model.Catalog, error)

// Fetch calls f.
func (f SourceFunc) Fetch(ctx context.Context) (*model.Catalog, error) {
	return f(ctx)
}

// Static returns a Source that always yields cat.
func Static(cat *model.Catalog) Source {
	return SourceFunc(func(context.Context) (*model.Catalog, error) {
		return cat, nil
	})
}

// StoreSource reads a catalog object from a blobstore.Store.
type StoreSource struct {
	store    blobstore.Store
	pointers blobstore.PointerStore
	name     string
	opts     []Option
}

// NewStoreSource reads the named object.
func NewStoreSource(store blobstore.Store, name string, optFns ...Option) *StoreSource {
	return &StoreSource{store: store, name: name, opts: optFns}
}

// NewPublishedSource reads whatever object the CURRENT pointer names.
func NewPublishedSource(store blobstore.Store, pointers blobstore.PointerStore, optFns ...Option) *StoreSource {
	return &StoreSource{store: store, pointers: pointers, opts: optFns}
}

// NewFileSource reads a catalog file from the local file system.
func NewFileSource(path string, optFns ...Option) *StoreSource {
	return NewStoreSource(blobstore.NewLocalStore(filepath.Dir(path)), filepath.Base(path), optFns...)
}

// Fetch reads and decodes the catalog.
func (s *StoreSource) Fetch(ctx context.Context) (*model.Catalog, error) {
	name := s.name
	optFns := s.opts
	var checksum string

	if s.pointers != nil {
		p, err := s.pointers.Current(ctx)
		if err != nil {
			return nil, err
		}
		name = p.Object
		checksum = p.Checksum
		if c, ok := codec.ByName(p.Codec); ok {
			optFns = append(append([]Option(nil), optFns...), WithCodec(c))
		}
	}

	data, err := s.store.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := hash.Verify(data, checksum); err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", name, err)
	}
	return Parse(data, optFns...)
}

// SharedSource collapses concurrent fetches into one.
type SharedSource struct {
	src   Source
	group singleflight.Group
}

// Share wraps src.
func Share(src Source) *SharedSource {
	return &SharedSource{src: src}
}

// Fetch joins an in-flight fetch or starts a new one. A canceled caller
// stops waiting without canceling the fetch other callers share.
func (s *SharedSource) Fetch(ctx context.Context) (*model.Catalog, error) {
	ch := s.group.DoChan("fetch", func() (any, error) {
		return s.src.Fetch(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*model.Catalog), nil
	}
}
