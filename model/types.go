package model

import (
	"fmt"
)

// FilterType identifies the kind of a matrix filter.
//
// The set is closed: every FilterType has exactly one matching semantic.
type FilterType uint8

const (
	// FilterTypeInvalid represents an unknown filter type.
	FilterTypeInvalid FilterType = iota
	// RangeFilter matches a single numeric value against an item's [min, max] interval.
	RangeFilter
	// NumberFilter matches a set of numbers that must all be present on the item.
	NumberFilter
	// TextOnlyFilter matches a set of opaque codes that must all be present on the item.
	TextOnlyFilter
	// DescriptiveTextAndImagesFilter has the same semantics as TextOnlyFilter.
	DescriptiveTextAndImagesFilter
	// ColorFilter matches if any selected color equals any item color.
	ColorFilter
	// TaxonFilter matches items whose taxon descends from a reference taxon.
	TaxonFilter
)

var filterTypeNames = [...]string{
	FilterTypeInvalid:              "Invalid",
	RangeFilter:                    "RangeFilter",
	NumberFilter:                   "NumberFilter",
	TextOnlyFilter:                 "TextOnlyFilter",
	DescriptiveTextAndImagesFilter: "DescriptiveTextAndImagesFilter",
	ColorFilter:                    "ColorFilter",
	TaxonFilter:                    "TaxonFilter",
}

// FilterTypes lists all valid filter types in declaration order.
var FilterTypes = []FilterType{
	RangeFilter,
	NumberFilter,
	TextOnlyFilter,
	DescriptiveTextAndImagesFilter,
	ColorFilter,
	TaxonFilter,
}

// String returns the wire name of the filter type.
func (t FilterType) String() string {
	if int(t) < len(filterTypeNames) {
		return filterTypeNames[t]
	}
	return fmt.Sprintf("FilterType(%d)", uint8(t))
}

// Valid reports whether t is one of the known filter types.
func (t FilterType) Valid() bool {
	return t > FilterTypeInvalid && t <= TaxonFilter
}

// Enumerable reports whether the values of this filter type are discrete
// and therefore contribute to the possible-value set.
//
// Range values are continuous; taxon filters never carry item space.
func (t FilterType) Enumerable() bool {
	switch t {
	case NumberFilter, TextOnlyFilter, DescriptiveTextAndImagesFilter, ColorFilter:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t FilterType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, &UnknownFilterTypeError{Name: t.String()}
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *FilterType) UnmarshalText(text []byte) error {
	parsed, err := ParseFilterType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseFilterType parses the wire name of a filter type.
func ParseFilterType(name string) (FilterType, error) {
	for _, t := range FilterTypes {
		if filterTypeNames[t] == name {
			return t, nil
		}
	}
	return FilterTypeInvalid, &UnknownFilterTypeError{Name: name}
}

// UnknownFilterTypeError is returned when a filter type name is not recognized.
type UnknownFilterTypeError struct {
	Name string
}

func (e *UnknownFilterTypeError) Error() string {
	return fmt.Sprintf("unknown filter type: %q", e.Name)
}

// FilterDefinition describes one matrix filter of a key.
//
// Position and the descriptive fields are irrelevant to matching.
type FilterDefinition struct {
	UUID        string
	Type        FilterType
	Name        string
	Description string
	Position    int
	Weight      int
	// Definition holds type-specific display parameters (step, unit, ...).
	Definition map[string]any
}
