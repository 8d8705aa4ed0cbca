package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStores(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemoryStore(),
		"local":  NewLocalStore(t.TempDir()),
	}
}

func TestStore_Lifecycle(t *testing.T) {
	ctx := context.Background()

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(ctx, "keys/missing.json")
			require.ErrorIs(t, err, ErrNotFound)

			data := []byte(`{"children":[]}`)
			require.NoError(t, store.Put(ctx, "keys/a.json", data))
			require.NoError(t, store.Put(ctx, "keys/b.json", []byte("b")))
			require.NoError(t, store.Put(ctx, "other.json", []byte("o")))

			got, err := store.Get(ctx, "keys/a.json")
			require.NoError(t, err)
			assert.Equal(t, data, got)

			// Returned slices are owned by the caller.
			got[0] = 'X'
			again, err := store.Get(ctx, "keys/a.json")
			require.NoError(t, err)
			assert.Equal(t, data, again)

			names, err := store.List(ctx, "keys/")
			require.NoError(t, err)
			assert.Equal(t, []string{"keys/a.json", "keys/b.json"}, names)

			require.NoError(t, store.Delete(ctx, "keys/a.json"))
			require.NoError(t, store.Delete(ctx, "keys/a.json"))
			_, err = store.Get(ctx, "keys/a.json")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, store.Put(ctx, "x", nil), context.Canceled)
			_, err := store.Get(ctx, "x")
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestLocalStore_NoTempFilesLeft(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(t.TempDir())

	require.NoError(t, store.Put(ctx, "a/b/c.json", []byte("c")))

	entries, err := os.ReadDir(filepath.Join(store.Root(), "a", "b"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "c.json", entries[0].Name())
}

func TestLocalStore_ListMissingRoot(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "missing"))
	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func testPointerStores() map[string]PointerStore {
	return map[string]PointerStore{
		"memory": NewMemoryPointerStore(),
		"blob":   NewBlobPointerStore(NewMemoryStore(), "keys/"),
	}
}

func TestPointerStore_Commit(t *testing.T) {
	ctx := context.Background()

	for name, ps := range testPointerStores() {
		t.Run(name, func(t *testing.T) {
			_, err := ps.Current(ctx)
			require.ErrorIs(t, err, ErrNotFound)

			first := Pointer{Version: 1, Object: ObjectName("keys/", 1, "a"), Codec: "go-json", PublishedAt: time.Unix(100, 0).UTC()}
			require.NoError(t, ps.Commit(ctx, first))

			cur, err := ps.Current(ctx)
			require.NoError(t, err)
			assert.Equal(t, first, cur)

			assert.ErrorIs(t, ps.Commit(ctx, first), ErrConcurrentModification)
			assert.ErrorIs(t, ps.Commit(ctx, Pointer{Version: 3}), ErrConcurrentModification)

			require.NoError(t, ps.Commit(ctx, Pointer{Version: 2, Object: ObjectName("keys/", 2, "b")}))
			cur, err = ps.Current(ctx)
			require.NoError(t, err)
			assert.Equal(t, uint64(2), cur.Version)
			assert.Equal(t, "keys/catalog-00000002-b.json", cur.Object)
		})
	}
}

func TestPointerStore_ConcurrentCommits(t *testing.T) {
	ctx := context.Background()

	for name, ps := range testPointerStores() {
		t.Run(name, func(t *testing.T) {
			var (
				wg  sync.WaitGroup
				mu  sync.Mutex
				won int
			)
			for range 8 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					if ps.Commit(ctx, Pointer{Version: 1}) == nil {
						mu.Lock()
						won++
						mu.Unlock()
					}
				}()
			}
			wg.Wait()
			assert.Equal(t, 1, won)
		})
	}
}
