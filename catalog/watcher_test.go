package catalog

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/hupe1980/idkey/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reloads struct {
	mu   sync.Mutex
	cats []*model.Catalog
	errs []error
}

func (r *reloads) record(cat *model.Catalog, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cats = append(r.cats, cat)
	r.errs = append(r.errs, err)
}

func (r *reloads) last() (*model.Catalog, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.cats) == 0 {
		return nil, 0, nil
	}
	return r.cats[len(r.cats)-1], len(r.cats), r.errs[len(r.errs)-1]
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "key.json")
	require.NoError(t, os.WriteFile(path, readTestdata(t, "flat.json"), 0o600))

	var got reloads
	w := NewWatcher(path, got.record, nil, WithMinReloadInterval(time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool {
		cat, n, err := got.last()
		return n >= 1 && err == nil && cat.Len() == 2
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, readTestdata(t, "guide.json"), 0o600))
	require.Eventually(t, func() bool {
		cat, _, err := got.last()
		return err == nil && cat != nil && cat.Len() == 3
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_ReportsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "key.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items": [`), 0o600))

	var got reloads
	w := NewWatcher(path, got.record, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	require.Eventually(t, func() bool {
		cat, n, err := got.last()
		return n >= 1 && err != nil && cat == nil
	}, 5*time.Second, 10*time.Millisecond)
}
