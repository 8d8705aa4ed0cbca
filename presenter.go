package idkey

import (
	"github.com/hupe1980/idkey/facet"
	"github.com/hupe1980/idkey/model"
)

// Presenter receives the results of evaluation passes.
//
// Calls are made synchronously while the key holds its lock; a Presenter
// must not call back into the Key.
type Presenter interface {
	// ItemVisibilityChanged is called for every item whose visibility
	// differs from the previous pass.
	ItemVisibilityChanged(uuid string, visible bool)
	// VisibleCountChanged is called once at the end of every pass and reset.
	VisibleCountChanged(count int)
	// PossibleValuesChanged is called once at the end of every pass and reset.
	PossibleValuesChanged(possible *facet.Set)
	// Reset restores every control to its unselected state.
	Reset()
}

// NoopPresenter discards all notifications.
type NoopPresenter struct{}

func (NoopPresenter) ItemVisibilityChanged(string, bool) {}
func (NoopPresenter) VisibleCountChanged(int)            {}
func (NoopPresenter) PossibleValuesChanged(*facet.Set)   {}
func (NoopPresenter) Reset()                             {}

// SelectionReader supplies the active selection derived from control state.
// Only controls holding a non-empty value contribute an entry.
type SelectionReader interface {
	ActiveSelection() model.Selection
}

// SelectionFunc adapts a function to SelectionReader.
type SelectionFunc func() model.Selection

// ActiveSelection calls f.
func (f SelectionFunc) ActiveSelection() model.Selection {
	return f()
}
