package model

import (
	"sort"
)

// Catalog is an immutable snapshot of the items and filters of one key node.
type Catalog struct {
	Items []Item
	// FilterTypes maps every matrix filter id to its type.
	FilterTypes map[string]FilterType
	// Filters are the filter definitions, ordered by Position.
	Filters []FilterDefinition

	index map[string]int
}

// NewCatalog creates a catalog. Filter types declared by definitions are
// merged into types; definitions are sorted by position.
func NewCatalog(items []Item, types map[string]FilterType, filters []FilterDefinition) *Catalog {
	ft := make(map[string]FilterType, len(types)+len(filters))
	for id, t := range types {
		ft[id] = t
	}

	defs := make([]FilterDefinition, len(filters))
	copy(defs, filters)
	sort.SliceStable(defs, func(i, j int) bool { return defs[i].Position < defs[j].Position })
	for _, d := range defs {
		if _, ok := ft[d.UUID]; !ok && d.Type.Valid() {
			ft[d.UUID] = d.Type
		}
	}

	index := make(map[string]int, len(items))
	for i := range items {
		index[items[i].UUID] = i
	}

	return &Catalog{
		Items:       items,
		FilterTypes: ft,
		Filters:     defs,
		index:       index,
	}
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.Items)
}

// TypeOf returns the type of a filter.
func (c *Catalog) TypeOf(filterID string) (FilterType, bool) {
	t, ok := c.FilterTypes[filterID]
	return t, ok && t.Valid()
}

// Item returns the item with the given uuid.
func (c *Catalog) Item(uuid string) (*Item, bool) {
	i, ok := c.Index(uuid)
	if !ok {
		return nil, false
	}
	return &c.Items[i], true
}

// Index returns the row of the item with the given uuid.
func (c *Catalog) Index(uuid string) (int, bool) {
	if c.index == nil {
		for i := range c.Items {
			if c.Items[i].UUID == uuid {
				return i, true
			}
		}
		return 0, false
	}
	i, ok := c.index[uuid]
	return i, ok
}

// Filter returns the definition of a filter, if the catalog carries one.
func (c *Catalog) Filter(filterID string) (FilterDefinition, bool) {
	for _, d := range c.Filters {
		if d.UUID == filterID {
			return d, true
		}
	}
	return FilterDefinition{}, false
}
