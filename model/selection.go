package model

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Selection is the active selection: filter-id -> raw values chosen by the user.
//
// Absence of a filter-id means no constraint from that filter. Entries always
// hold at least one value; Set and Normalize maintain that.
type Selection map[string][]string

// NewSelection returns an empty selection.
func NewSelection() Selection {
	return make(Selection)
}

// IsEmpty reports whether no filter is active.
func (s Selection) IsEmpty() bool {
	return len(s) == 0
}

// Set replaces the values of a filter. Empty values clear the filter.
func (s Selection) Set(filterID string, values ...string) {
	values = slices.DeleteFunc(slices.Clone(values), func(v string) bool { return v == "" })
	if len(values) == 0 {
		delete(s, filterID)
		return
	}
	s[filterID] = values
}

// Add appends a value to a filter.
func (s Selection) Add(filterID, value string) {
	if value == "" || slices.Contains(s[filterID], value) {
		return
	}
	s[filterID] = append(s[filterID], value)
}

// Remove drops a value from a filter, clearing the filter when it was the last one.
func (s Selection) Remove(filterID, value string) {
	values := slices.DeleteFunc(slices.Clone(s[filterID]), func(v string) bool { return v == value })
	s.Set(filterID, values...)
}

// Clear removes a filter.
func (s Selection) Clear(filterID string) {
	delete(s, filterID)
}

// FilterIDs returns the active filter ids in sorted order.
func (s Selection) FilterIDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns a deep copy.
func (s Selection) Clone() Selection {
	if s == nil {
		return nil
	}
	clone := make(Selection, len(s))
	for k, v := range s {
		clone[k] = slices.Clone(v)
	}
	return clone
}

// Normalize returns a copy without empty values and empty entries.
func (s Selection) Normalize() Selection {
	out := make(Selection, len(s))
	for k, v := range s {
		out.Set(k, v...)
	}
	return out
}

// Equal reports whether both selections hold the same values in the same order.
func (s Selection) Equal(other Selection) bool {
	if len(s) != len(other) {
		return false
	}
	for k, v := range s {
		if !slices.Equal(v, other[k]) {
			return false
		}
	}
	return true
}

// ParseSelection parses "filter-id=value" pairs. Repeated ids accumulate values.
func ParseSelection(pairs []string) (Selection, error) {
	sel := NewSelection()
	for _, pair := range pairs {
		id, value, ok := strings.Cut(pair, "=")
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid selection %q: expected filter-id=value", pair)
		}
		sel.Add(id, value)
	}
	return sel, nil
}
