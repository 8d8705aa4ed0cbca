package match

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/idkey/facet"
	"github.com/hupe1980/idkey/model"
)

// Result is the outcome of one evaluation pass.
type Result struct {
	// Visible holds the rows (catalog item indices) that satisfy the selection.
	Visible *roaring.Bitmap
	// VisibleCount is the cardinality of Visible.
	VisibleCount int
	// Possible holds the facet values attainable by the visible items.
	Possible *facet.Set
	// ActiveFilters is the number of filters in the selection.
	ActiveFilters int
	// Err reports selection values that could not be decoded. The affected
	// filters matched no item.
	Err error
}

// IsVisible reports whether a row is visible.
func (r *Result) IsVisible(row int) bool {
	return r.Visible.Contains(uint32(row))
}

// Evaluate runs a full pass of sel over every item of cat.
//
// Every item is re-evaluated; nothing is carried over from previous passes.
func Evaluate(cat *model.Catalog, sel model.Selection) *Result {
	q, err := Compile(cat.FilterTypes, sel)
	res := EvaluateQuery(cat, q)
	res.Err = err
	return res
}

// EvaluateQuery runs a full pass of a compiled query.
func EvaluateQuery(cat *model.Catalog, q *Query) *Result {
	res := &Result{
		Visible:       roaring.New(),
		Possible:      facet.NewSet(),
		ActiveFilters: q.Len(),
	}

	for row := range cat.Items {
		item := &cat.Items[row]
		if !q.Matches(item) {
			continue
		}
		res.Visible.Add(uint32(row))
		res.Possible.Record(uint32(row), item)
		res.VisibleCount++
	}

	return res
}
