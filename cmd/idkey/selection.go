package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hupe1980/idkey/match"
	"github.com/hupe1980/idkey/model"
	"github.com/spf13/cobra"
)

// selectionFlags collects the active selection from the command line.
type selectionFlags struct {
	selects []string
	taxa    []string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.selects, "select", "s", nil, "select a value: filter-id=value (repeatable; colors as r,g,b,a or #rrggbb)")
	cmd.Flags().StringArrayVar(&f.taxa, "taxon", nil, "select a taxon: filter-id=source:nuid (repeatable)")
}

// build parses the flags against the filter types of cat.
func (f *selectionFlags) build(cat *model.Catalog) (model.Selection, error) {
	sel, err := model.ParseSelection(f.selects)
	if err != nil {
		return nil, err
	}

	for id, values := range sel {
		if t, _ := cat.TypeOf(id); t != model.ColorFilter {
			continue
		}
		for i, v := range values {
			if !strings.HasPrefix(v, "#") {
				continue
			}
			c, err := model.ParseHexColor(v)
			if err != nil {
				return nil, fmt.Errorf("filter %s: %w", id, err)
			}
			values[i] = c.String()
		}
	}

	refs := make(map[string][]model.Taxon)
	for _, raw := range f.taxa {
		id, ref, ok := strings.Cut(raw, "=")
		source, nuid, ok2 := strings.Cut(ref, ":")
		if !ok || !ok2 || id == "" || source == "" || nuid == "" {
			return nil, fmt.Errorf("invalid taxon %q: expected filter-id=source:nuid", raw)
		}
		refs[id] = append(refs[id], model.Taxon{Source: source, NUID: nuid})
	}
	ids := make([]string, 0, len(refs))
	for id := range refs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		encoded, err := match.EncodeTaxonSelection(match.TaxonSelection{Taxa: refs[id]})
		if err != nil {
			return nil, err
		}
		sel.Add(id, encoded)
	}
	return sel, nil
}
