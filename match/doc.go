// Package match implements the faceted matching core of an identification key.
//
// # Matchers
//
// Every filter type has one pure predicate over the raw selected values and
// an item's space entry:
//
//   - RangeFilter: min <= value <= max, a non-numeric value is no constraint
//   - NumberFilter: every selected number is present on the item
//   - TextOnlyFilter, DescriptiveTextAndImagesFilter: every selected code is present
//   - ColorFilter: any selected color equals any item color
//   - TaxonFilter: the item's taxon descends from any reference taxon
//
// Selections within one filter are ANDed, except ColorFilter and TaxonFilter
// which are disjunctive. Filters are always ANDed with each other.
//
// # Evaluation
//
// Evaluate runs one full pass over a catalog and returns the visible rows,
// the visible count and the possible-value set:
//
//	res := match.Evaluate(catalog, model.Selection{"legs": {"6"}})
//	fmt.Println(res.VisibleCount, res.Possible.Values("wings"))
//
// Evaluate is pure; the stateful engine lives in the root package.
package match
