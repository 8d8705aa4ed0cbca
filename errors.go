package idkey

import (
	"errors"
)

var (
	// ErrNotReady is returned when a pass is triggered before a catalog was loaded.
	ErrNotReady = errors.New("key is not ready: no catalog loaded")

	// ErrNilCatalog is returned when a nil catalog is set or fetched.
	ErrNilCatalog = errors.New("catalog is nil")

	// ErrNilSource is returned when Load is called without a source.
	ErrNilSource = errors.New("catalog source is nil")

	// ErrNoSelectionReader is returned by ApplyFilters when the key has no
	// SelectionReader.
	ErrNoSelectionReader = errors.New("no selection reader configured")
)
