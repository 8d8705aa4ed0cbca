package catalog

import (
	"github.com/hupe1980/idkey/model"
)

// ItemDocument is one item (guide child) as published.
type ItemDocument struct {
	ID           int64          `json:"id,omitempty"`
	MetaNodeID   int64          `json:"meta_node_id,omitempty"`
	NodeType     string         `json:"node_type,omitempty"`
	ImageURL     string         `json:"image_url,omitempty"`
	UUID         string         `json:"uuid"`
	Space        map[string]any `json:"space"`
	IsVisible    bool           `json:"is_visible"`
	Name         string         `json:"name,omitempty"`
	DecisionRule string         `json:"decision_rule,omitempty"`
	Taxon        *model.Taxon   `json:"taxon"`
}

// FilterDocument is one matrix filter definition as published.
type FilterDocument struct {
	UUID        string         `json:"uuid"`
	Name        string         `json:"name,omitempty"`
	FilterType  string         `json:"filter_type,omitempty"`
	Type        string         `json:"type,omitempty"`
	Description string         `json:"description,omitempty"`
	Definition  map[string]any `json:"definition,omitempty"`
	Weight      int            `json:"weight,omitempty"`
	Position    int            `json:"position,omitempty"`
	Space       any            `json:"space,omitempty"`
}

// TypeName returns the filter type name, whichever key carried it.
func (f *FilterDocument) TypeName() string {
	if f.FilterType != "" {
		return f.FilterType
	}
	return f.Type
}

// Document is a flat catalog or one node of a guide.
//
// Flat catalogs carry their items in Items, guide nodes in Children.
type Document struct {
	Items         []ItemDocument    `json:"items,omitempty"`
	Children      []ItemDocument    `json:"children,omitempty"`
	FilterTypes   map[string]string `json:"matrix_filter_types"`
	Filters       []FilterDocument  `json:"matrix_filters,omitempty"`
	ChildrenCount int               `json:"children_count,omitempty"`
}

// Entries returns the items of the document.
func (d *Document) Entries() []ItemDocument {
	if len(d.Items) == 0 {
		return d.Children
	}
	if len(d.Children) == 0 {
		return d.Items
	}
	return append(append(make([]ItemDocument, 0, len(d.Items)+len(d.Children)), d.Items...), d.Children...)
}

// GuideDocument is a nature guide: a tree of nodes, each with its own key.
type GuideDocument struct {
	Name          string               `json:"name,omitempty"`
	Tree          map[string]*Document `json:"tree"`
	StartNodeUUID string               `json:"start_node_uuid"`
}

// envelope decodes either shape in one pass.
type envelope struct {
	Name          string               `json:"name,omitempty"`
	Tree          map[string]*Document `json:"tree,omitempty"`
	StartNodeUUID string               `json:"start_node_uuid,omitempty"`
	Document
}
