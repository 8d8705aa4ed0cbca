package idkey

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/idkey/catalog"
	"github.com/hupe1980/idkey/facet"
	"github.com/hupe1980/idkey/match"
	"github.com/hupe1980/idkey/model"
)

// State is the lifecycle state of a Key.
type State uint8

const (
	// StateNotReady means no catalog has been loaded yet.
	StateNotReady State = iota
	// StateUnfiltered means no filter is active and every item is visible.
	StateUnfiltered
	// StateFiltered means at least one filter is active.
	StateFiltered
)

func (s State) String() string {
	switch s {
	case StateNotReady:
		return "not-ready"
	case StateUnfiltered:
		return "unfiltered"
	case StateFiltered:
		return "filtered"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Key is one identification key: a catalog snapshot plus the active
// selection and the visibility derived from it.
//
// Passes are serialized. Each runs to completion in call order and is
// never interleaved with another pass, reset or catalog swap.
type Key struct {
	mu sync.Mutex

	metrics   MetricsCollector
	logger    *Logger
	presenter Presenter
	reader    SelectionReader

	cat    *model.Catalog
	sel    model.Selection
	state  State
	result *match.Result
}

// New creates a Key without a catalog. Passes fail with ErrNotReady until
// Load or SetCatalog succeeds.
func New(optFns ...Option) *Key {
	opts := applyOptions(optFns)
	return &Key{
		metrics:   opts.metricsCollector,
		logger:    opts.logger,
		presenter: opts.presenter,
		reader:    opts.selection,
		sel:       model.NewSelection(),
	}
}

// Load fetches a catalog from src and installs it.
//
// On failure the key keeps its previous catalog (or stays not ready).
func (k *Key) Load(ctx context.Context, src catalog.Source) error {
	if src == nil {
		return ErrNilSource
	}

	start := time.Now()
	cat, err := src.Fetch(ctx)
	if err == nil && cat == nil {
		err = ErrNilCatalog
	}
	if err != nil {
		err = fmt.Errorf("load catalog: %w", err)
		k.metrics.RecordLoad(0, time.Since(start), err)
		k.logger.LogLoad(ctx, 0, 0, err)
		return err
	}

	k.install(ctx, cat)
	k.metrics.RecordLoad(cat.Len(), time.Since(start), nil)
	k.logger.LogLoad(ctx, cat.Len(), len(cat.FilterTypes), nil)
	return nil
}

// LoadAsync runs Load in a new goroutine and reports the outcome to done,
// which may be nil.
func (k *Key) LoadAsync(ctx context.Context, src catalog.Source, done func(error)) {
	go func() {
		err := k.Load(ctx, src)
		if done != nil {
			done(err)
		}
	}()
}

// SetCatalog installs cat directly and resets the key.
func (k *Key) SetCatalog(ctx context.Context, cat *model.Catalog) error {
	if cat == nil {
		return ErrNilCatalog
	}
	k.install(ctx, cat)
	return nil
}

func (k *Key) install(ctx context.Context, cat *model.Catalog) {
	k.mu.Lock()
	defer k.mu.Unlock()

	// Rows of the previous catalog mean nothing in the new one, so the
	// presenter gets a full reset instead of a diff.
	k.cat = cat
	k.result = nil
	k.reset(ctx)
}

// ApplyFilters reads the active selection from the configured
// SelectionReader and runs a pass over it.
func (k *Key) ApplyFilters(ctx context.Context) (*match.Result, error) {
	if k.reader == nil {
		return nil, ErrNoSelectionReader
	}
	return k.Apply(ctx, k.reader.ActiveSelection())
}

// Apply replaces the active selection with sel and re-evaluates every item.
//
// An empty selection resets the key. The returned error reports selection
// values that could not be decoded; the pass still completed and the
// affected filters matched no item.
func (k *Key) Apply(ctx context.Context, sel model.Selection) (*match.Result, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.cat == nil {
		return nil, ErrNotReady
	}

	sel = sel.Normalize()
	if sel.IsEmpty() {
		return k.reset(ctx), nil
	}

	start := time.Now()
	res := match.Evaluate(k.cat, sel)
	k.publish(res)
	k.sel = sel
	k.state = StateFiltered

	k.metrics.RecordPass(res.ActiveFilters, res.VisibleCount, time.Since(start), res.Err)
	k.logger.LogPass(ctx, res.ActiveFilters, res.VisibleCount, k.cat.Len(), res.Err)
	return res, res.Err
}

// Reset clears the selection and shows every item.
func (k *Key) Reset(ctx context.Context) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.cat == nil {
		return ErrNotReady
	}
	k.reset(ctx)
	return nil
}

func (k *Key) reset(ctx context.Context) *match.Result {
	start := time.Now()
	res := match.Evaluate(k.cat, nil)
	k.sel = model.NewSelection()
	k.state = StateUnfiltered

	k.presenter.Reset()
	k.publish(res)

	k.metrics.RecordReset(res.VisibleCount, time.Since(start))
	k.logger.LogReset(ctx, res.VisibleCount)
	return res
}

// publish notifies the presenter of every visibility change since the
// previous result, then of the new count and possible values.
func (k *Key) publish(res *match.Result) {
	if k.result == nil {
		for row := range k.cat.Items {
			k.presenter.ItemVisibilityChanged(k.cat.Items[row].UUID, res.IsVisible(row))
		}
	} else {
		changed := roaring.Xor(k.result.Visible, res.Visible)
		it := changed.Iterator()
		for it.HasNext() {
			row := it.Next()
			k.presenter.ItemVisibilityChanged(k.cat.Items[row].UUID, res.Visible.Contains(row))
		}
	}
	k.result = res

	k.presenter.VisibleCountChanged(res.VisibleCount)
	k.presenter.PossibleValuesChanged(res.Possible)
}

// State returns the lifecycle state.
func (k *Key) State() State {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.state
}

// Catalog returns the installed catalog, or nil.
func (k *Key) Catalog() *model.Catalog {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.cat
}

// Selection returns a copy of the active selection.
func (k *Key) Selection() model.Selection {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.sel.Clone()
}

// IsVisible reports whether the item with the given uuid is visible.
// Unknown items and keys without a catalog report false.
func (k *Key) IsVisible(uuid string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.result == nil {
		return false
	}
	row, ok := k.cat.Index(uuid)
	return ok && k.result.IsVisible(row)
}

// VisibleCount returns the number of visible items.
func (k *Key) VisibleCount() int {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.result == nil {
		return 0
	}
	return k.result.VisibleCount
}

// VisibleItems returns the visible items in catalog order.
func (k *Key) VisibleItems() []*model.Item {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.result == nil {
		return nil
	}
	items := make([]*model.Item, 0, k.result.VisibleCount)
	it := k.result.Visible.Iterator()
	for it.HasNext() {
		items = append(items, &k.cat.Items[it.Next()])
	}
	return items
}

// Possible returns the possible-value set of the last pass, or nil.
func (k *Key) Possible() *facet.Set {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.result == nil {
		return nil
	}
	return k.result.Possible
}
