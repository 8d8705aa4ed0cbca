package blobstore

import (
	"context"
	"errors"
	"sync"

	"github.com/hupe1980/idkey/codec"
)

// BlobPointerStore keeps the CURRENT record as an object of a Store.
//
// The compare-and-swap is only atomic within one process. Use
// s3.PointerStore when several publishers share a bucket.
type BlobPointerStore struct {
	mu    sync.Mutex
	store Store
	name  string
	codec codec.Codec
}

// NewBlobPointerStore creates a pointer store writing prefix+"CURRENT".
func NewBlobPointerStore(store Store, prefix string) *BlobPointerStore {
	return &BlobPointerStore{
		store: store,
		name:  prefix + CurrentName,
		codec: codec.Default,
	}
}

// Current reads and decodes the CURRENT object.
func (s *BlobPointerStore) Current(ctx context.Context) (Pointer, error) {
	data, err := s.store.Get(ctx, s.name)
	if err != nil {
		return Pointer{}, err
	}
	var p Pointer
	if err := s.codec.Unmarshal(data, &p); err != nil {
		return Pointer{}, err
	}
	return p, nil
}

// Commit writes p if it directly follows the current version.
func (s *BlobPointerStore) Commit(ctx context.Context, p Pointer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var version uint64
	cur, err := s.Current(ctx)
	switch {
	case err == nil:
		version = cur.Version
	case !errors.Is(err, ErrNotFound):
		return err
	}
	if p.Version != version+1 {
		return ErrConcurrentModification
	}

	data, err := s.codec.Marshal(p)
	if err != nil {
		return err
	}
	return s.store.Put(ctx, s.name, data)
}
