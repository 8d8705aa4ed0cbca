package catalog

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/hupe1980/idkey/model"
)

// buildNode converts one node document. Malformed parts are skipped and
// reported in the returned problems.
func buildNode(nodeID string, doc *Document, strict bool) (*model.Catalog, []error) {
	var problems []error
	report := func(item, filterID string, err error, reason string) {
		problems = append(problems, &ValidationError{
			Node:     nodeID,
			Item:     item,
			FilterID: filterID,
			Reason:   reason,
			Err:      err,
		})
	}

	types := make(map[string]model.FilterType, len(doc.FilterTypes))
	for _, id := range sortedKeys(doc.FilterTypes) {
		t, err := model.ParseFilterType(doc.FilterTypes[id])
		if err != nil {
			report("", id, err, "")
			continue
		}
		types[id] = t
		if strict && !isUUID(id) {
			report("", id, ErrInvalidUUID, "filter id")
		}
	}

	defs := make([]model.FilterDefinition, 0, len(doc.Filters))
	for _, f := range doc.Filters {
		t, err := model.ParseFilterType(f.TypeName())
		if err != nil {
			report("", f.UUID, err, "matrix filter definition")
		}
		if declared, ok := types[f.UUID]; ok && t.Valid() && declared != t {
			report("", f.UUID, ErrTypeConflict, fmt.Sprintf("definition says %s, declared %s", t, declared))
		}
		if _, ok := types[f.UUID]; !ok && t.Valid() {
			types[f.UUID] = t
		}
		defs = append(defs, model.FilterDefinition{
			UUID:        f.UUID,
			Type:        t,
			Name:        f.Name,
			Description: f.Description,
			Position:    f.Position,
			Weight:      f.Weight,
			Definition:  f.Definition,
		})
	}

	entries := doc.Entries()
	items := make([]model.Item, 0, len(entries))
	for _, e := range entries {
		if strict && !isUUID(e.UUID) {
			report(e.UUID, "", ErrInvalidUUID, "item uuid")
		}

		item := model.Item{
			UUID:         e.UUID,
			Space:        make(model.Space, len(e.Space)),
			ID:           e.ID,
			MetaNodeID:   e.MetaNodeID,
			NodeType:     e.NodeType,
			Name:         e.Name,
			ImageURL:     e.ImageURL,
			DecisionRule: e.DecisionRule,
		}

		if e.Taxon != nil {
			if e.Taxon.Source == "" || e.Taxon.NUID == "" {
				report(e.UUID, "", ErrInvalidTaxon, "taxon_source and taxon_nuid are required")
			} else {
				taxon := *e.Taxon
				item.Taxon = &taxon
			}
		}

		for _, fid := range sortedKeys(e.Space) {
			t, ok := types[fid]
			if !ok {
				if strict {
					report(e.UUID, fid, ErrUndeclaredFilter, "")
				}
				continue
			}
			if t == model.TaxonFilter {
				// Taxon filters match the item taxon, never the space.
				continue
			}
			v, err := spaceValue(t, e.Space[fid])
			if err != nil {
				report(e.UUID, fid, err, "")
				continue
			}
			item.Space[fid] = v
		}

		items = append(items, item)
	}

	return model.NewCatalog(items, types, defs), problems
}

func isUUID(s string) bool {
	return uuid.Validate(s) == nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
