package match

import (
	"errors"
	"fmt"

	"github.com/hupe1980/idkey/model"
)

// ErrUnknownFilter indicates a selected filter id the catalog declares no type for.
var ErrUnknownFilter = errors.New("unknown filter")

// clause is one compiled active filter.
type clause interface {
	matches(item *model.Item) bool
}

// Query is an active selection compiled against a catalog's filter types.
//
// Raw values are parsed once per pass instead of once per item.
type Query struct {
	filterIDs []string
	clauses   []clause
}

// Compile parses the selection for the given filter types.
//
// Compile always returns a usable Query. Values that fail to decode make
// their clause unsatisfiable (fail-closed) and are reported in the error.
func Compile(types map[string]model.FilterType, sel model.Selection) (*Query, error) {
	q := &Query{}
	var errs []error

	for _, id := range sel.FilterIDs() {
		values := sel[id]
		t, ok := types[id]
		if !ok || !t.Valid() {
			q.add(id, neverClause{})
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownFilter, id))
			continue
		}

		switch t {
		case model.RangeFilter:
			v, ok := parseRangeSelection(values)
			q.add(id, rangeClause{filterID: id, value: v, constrained: ok})
		case model.NumberFilter:
			q.add(id, numberClause{filterID: id, values: parseNumbers(values)})
		case model.TextOnlyFilter, model.DescriptiveTextAndImagesFilter:
			q.add(id, codeClause{filterID: id, typ: t, codes: values})
		case model.ColorFilter:
			colors, _ := parseColors(values)
			q.add(id, colorClause{filterID: id, colors: colors})
		case model.TaxonFilter:
			refs, err := decodeTaxonSelections(id, values)
			if err != nil {
				errs = append(errs, err)
				// Fail closed: a partially undecodable selection matches nothing.
				q.add(id, neverClause{})
				continue
			}
			q.add(id, taxonClause{refs: refs})
		}
	}

	return q, errors.Join(errs...)
}

func (q *Query) add(id string, c clause) {
	q.filterIDs = append(q.filterIDs, id)
	q.clauses = append(q.clauses, c)
}

// Len returns the number of active filters.
func (q *Query) Len() int {
	return len(q.clauses)
}

// FilterIDs returns the active filter ids in evaluation order.
func (q *Query) FilterIDs() []string {
	return q.filterIDs
}

// Matches reports whether the item satisfies every active filter.
// Evaluation stops at the first failing filter.
func (q *Query) Matches(item *model.Item) bool {
	for _, c := range q.clauses {
		if !c.matches(item) {
			return false
		}
	}
	return true
}

type neverClause struct{}

func (neverClause) matches(*model.Item) bool { return false }

type rangeClause struct {
	filterID    string
	value       float64
	constrained bool
}

func (c rangeClause) matches(item *model.Item) bool {
	entry, ok := item.Space[c.filterID]
	if !ok || entry.Type != model.RangeFilter {
		return false
	}
	return !c.constrained || inRange(c.value, entry)
}

type numberClause struct {
	filterID string
	values   []float64
}

func (c numberClause) matches(item *model.Item) bool {
	entry, ok := item.Space[c.filterID]
	if !ok || entry.Type != model.NumberFilter {
		return false
	}
	return containsAllNumbers(c.values, entry.Numbers)
}

type codeClause struct {
	filterID string
	typ      model.FilterType
	codes    []string
}

func (c codeClause) matches(item *model.Item) bool {
	entry, ok := item.Space[c.filterID]
	if !ok || entry.Type != c.typ {
		return false
	}
	return containsAllCodes(c.codes, entry.Codes)
}

type colorClause struct {
	filterID string
	colors   []model.Color
}

func (c colorClause) matches(item *model.Item) bool {
	entry, ok := item.Space[c.filterID]
	if !ok || entry.Type != model.ColorFilter {
		return false
	}
	return anyColorEqual(c.colors, entry.Colors)
}

type taxonClause struct {
	refs TaxonSelection
}

// Taxon filters ignore the item space; it is sparse for them.
func (c taxonClause) matches(item *model.Item) bool {
	return c.refs.Contains(item.Taxon)
}
