// Package facet tracks the facet values still attainable by the items that
// are visible after an evaluation pass.
//
// A Set is rebuilt from scratch on every pass. Each (filter-id, value) key
// owns a Roaring Bitmap posting list of the visible rows carrying it, so the
// set also answers how many visible items hold a value.
//
// The set is advisory: it drives facet enablement and never decides visibility.
package facet
