package model

import (
	"strconv"
)

// Taxon is the taxonomic reference of an item or of a taxon filter.
//
// NUID encodes ancestry: a descendant's NUID always starts with every
// ancestor's NUID within the same Source.
type Taxon struct {
	Source   string `json:"taxon_source"`
	NUID     string `json:"taxon_nuid"`
	Latname  string `json:"taxon_latname,omitempty"`
	Author   string `json:"taxon_author,omitempty"`
	NameUUID string `json:"name_uuid,omitempty"`
}

// SpaceValue is one typed entry of an item's space.
//
// Only the fields belonging to Type are populated.
type SpaceValue struct {
	Type FilterType

	// RangeFilter: inclusive interval.
	Min float64
	Max float64

	// NumberFilter.
	Numbers []float64

	// TextOnlyFilter and DescriptiveTextAndImagesFilter.
	Codes []string

	// ColorFilter.
	Colors []Color
}

// RangeValue returns a RangeFilter space entry.
func RangeValue(lo, hi float64) SpaceValue {
	return SpaceValue{Type: RangeFilter, Min: lo, Max: hi}
}

// NumberValue returns a NumberFilter space entry.
func NumberValue(numbers ...float64) SpaceValue {
	return SpaceValue{Type: NumberFilter, Numbers: numbers}
}

// TextValue returns a TextOnlyFilter space entry.
func TextValue(codes ...string) SpaceValue {
	return SpaceValue{Type: TextOnlyFilter, Codes: codes}
}

// DescriptiveValue returns a DescriptiveTextAndImagesFilter space entry.
func DescriptiveValue(codes ...string) SpaceValue {
	return SpaceValue{Type: DescriptiveTextAndImagesFilter, Codes: codes}
}

// ColorValue returns a ColorFilter space entry.
func ColorValue(colors ...Color) SpaceValue {
	return SpaceValue{Type: ColorFilter, Colors: colors}
}

// Keys returns the discrete values of the entry in their selection encoding.
//
// Range entries are continuous and yield nil.
func (v SpaceValue) Keys() []string {
	switch v.Type {
	case NumberFilter:
		keys := make([]string, len(v.Numbers))
		for i, n := range v.Numbers {
			keys[i] = FormatNumber(n)
		}
		return keys
	case TextOnlyFilter, DescriptiveTextAndImagesFilter:
		return v.Codes
	case ColorFilter:
		keys := make([]string, len(v.Colors))
		for i, c := range v.Colors {
			keys[i] = c.String()
		}
		return keys
	default:
		return nil
	}
}

// FormatNumber formats a number the way number controls encode their values.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Space maps filter ids to the item's typed entries.
//
// Space is sparse only for TaxonFilter.
type Space map[string]SpaceValue

// Item is one selectable node of an identification key.
//
// Items are read-only once part of a Catalog. Visibility is owned by the
// matching engine, not by the item.
type Item struct {
	UUID  string
	Space Space
	Taxon *Taxon

	// Presentation fields carried through from the catalog.
	ID           int64
	MetaNodeID   int64
	NodeType     string
	Name         string
	ImageURL     string
	DecisionRule string
}

// HasTaxon reports whether the item references a taxon.
func (it *Item) HasTaxon() bool {
	return it.Taxon != nil
}
