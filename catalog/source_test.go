package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hupe1980/idkey/blobstore"
	"github.com/hupe1980/idkey/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSource(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "garden.json", readTestdata(t, "guide.json")))

	cat, err := NewStoreSource(store, "garden.json").Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Len())

	cat, err = NewStoreSource(store, "garden.json", WithNode(butterflyNode)).Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())

	_, err = NewStoreSource(store, "missing.json").Fetch(ctx)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flat.json")
	require.NoError(t, os.WriteFile(path, readTestdata(t, "flat.json"), 0o600))

	cat, err := NewFileSource(path).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())

	_, err = NewFileSource(path, WithStrict(true)).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrInvalidUUID)
}

func TestPublishedSource_NothingPublished(t *testing.T) {
	src := NewPublishedSource(blobstore.NewMemoryStore(), blobstore.NewMemoryPointerStore())
	_, err := src.Fetch(context.Background())
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestSharedSource(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	want := model.NewCatalog(nil, nil, nil)

	src := Share(SourceFunc(func(context.Context) (*model.Catalog, error) {
		calls.Add(1)
		<-release
		return want, nil
	}))

	const callers = 8
	var wg sync.WaitGroup
	results := make(chan *model.Catalog, callers)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cat, err := src.Fetch(context.Background())
			assert.NoError(t, err)
			results <- cat
		}()
	}

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	// Give the remaining callers time to join the in-flight fetch.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	close(results)

	for cat := range results {
		assert.Same(t, want, cat)
	}
	assert.Equal(t, int32(1), calls.Load())

	_, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load(), "completed fetches are not cached")
}

func TestSharedSource_CallerCancel(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	src := Share(SourceFunc(func(ctx context.Context) (*model.Catalog, error) {
		<-release
		return nil, ctx.Err()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := src.Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSharedSource_Error(t *testing.T) {
	boom := errors.New("boom")
	src := Share(SourceFunc(func(context.Context) (*model.Catalog, error) {
		return nil, boom
	}))
	_, err := src.Fetch(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestStatic(t *testing.T) {
	cat := model.NewCatalog(nil, nil, nil)
	got, err := Static(cat).Fetch(context.Background())
	require.NoError(t, err)
	assert.Same(t, cat, got)
}
