package facet

import (
	"iter"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/idkey/model"
)

// Key identifies one facet value.
type Key struct {
	FilterID string
	Value    string
}

// ID returns the composite "<filter-id>_<value>" identifier controls are keyed by.
func (k Key) ID() string {
	return k.FilterID + "_" + k.Value
}

// Set is the possible-value set of a pass.
type Set struct {
	postings map[Key]*roaring.Bitmap
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{postings: make(map[Key]*roaring.Bitmap)}
}

// Add records that the visible row carries value for filterID.
func (s *Set) Add(filterID, value string, row uint32) {
	k := Key{FilterID: filterID, Value: value}
	bm, ok := s.postings[k]
	if !ok {
		bm = roaring.New()
		s.postings[k] = bm
	}
	bm.Add(row)
}

// Record adds every enumerable space value of a visible item.
// Range entries are continuous and skipped. Entries whose filter has no
// declared type never reach an item's space, so they are never recorded.
func (s *Set) Record(row uint32, item *model.Item) {
	for filterID, v := range item.Space {
		if !v.Type.Enumerable() {
			continue
		}
		for _, value := range v.Keys() {
			s.Add(filterID, value, row)
		}
	}
}

// Contains reports whether value is still attainable for filterID.
func (s *Set) Contains(filterID, value string) bool {
	_, ok := s.postings[Key{FilterID: filterID, Value: value}]
	return ok
}

// Count returns how many visible items carry the value.
func (s *Set) Count(filterID, value string) int {
	bm, ok := s.postings[Key{FilterID: filterID, Value: value}]
	if !ok {
		return 0
	}
	return int(bm.GetCardinality())
}

// Rows returns a copy of the posting list of a value, or nil.
func (s *Set) Rows(filterID, value string) *roaring.Bitmap {
	bm, ok := s.postings[Key{FilterID: filterID, Value: value}]
	if !ok {
		return nil
	}
	return bm.Clone()
}

// Len returns the number of distinct keys.
func (s *Set) Len() int {
	return len(s.postings)
}

// Keys returns all keys ordered by filter id, then value.
func (s *Set) Keys() []Key {
	keys := make([]Key, 0, len(s.postings))
	for k := range s.postings {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].FilterID != keys[j].FilterID {
			return keys[i].FilterID < keys[j].FilterID
		}
		return keys[i].Value < keys[j].Value
	})
	return keys
}

// All iterates keys in Keys order together with their counts.
func (s *Set) All() iter.Seq2[Key, int] {
	return func(yield func(Key, int) bool) {
		for _, k := range s.Keys() {
			if !yield(k, int(s.postings[k].GetCardinality())) {
				return
			}
		}
	}
}

// Values returns the attainable values of one filter, sorted.
func (s *Set) Values(filterID string) []string {
	var values []string
	for k := range s.postings {
		if k.FilterID == filterID {
			values = append(values, k.Value)
		}
	}
	sort.Strings(values)
	return values
}

// IDs returns the composite identifiers of all keys, sorted.
func (s *Set) IDs() []string {
	keys := s.Keys()
	ids := make([]string, len(keys))
	for i, k := range keys {
		ids[i] = k.ID()
	}
	return ids
}

// Enabled reports whether a control value should stay available: it is
// either still attainable or currently selected.
func (s *Set) Enabled(sel model.Selection, filterID, value string) bool {
	if s.Contains(filterID, value) {
		return true
	}
	for _, v := range sel[filterID] {
		if v == value {
			return true
		}
	}
	return false
}
