package main

import (
	"fmt"
	"io"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/hupe1980/idkey/facet"
	"github.com/hupe1980/idkey/match"
	"github.com/hupe1980/idkey/model"
	"github.com/spf13/cobra"
)

func newFacetsCmd(a *app) *cobra.Command {
	var (
		src sourceFlags
		sel selectionFlags
	)

	cmd := &cobra.Command{
		Use:   "facets",
		Short: "Print every filter value and whether it is still attainable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			key, err := loadKey(ctx, a, &src)
			if err != nil {
				return err
			}
			cat := key.Catalog()
			selection, err := sel.build(cat)
			if err != nil {
				return err
			}
			res, passErr := key.Apply(ctx, selection)
			if res == nil {
				return passErr
			}

			all := match.Evaluate(cat, nil).Possible
			printFacets(cmd.OutOrStdout(), cat, key.Selection(), all, res)
			printPassError(cmd.ErrOrStderr(), res)
			return nil
		},
	}

	src.register(cmd)
	sel.register(cmd)
	return cmd
}

// filterHeading is one filter to print, in definition order when the
// catalog carries definitions.
type filterHeading struct {
	id   string
	name string
	typ  model.FilterType
}

func filterHeadings(cat *model.Catalog) []filterHeading {
	seen := make(map[string]bool)
	var out []filterHeading
	for _, d := range cat.Filters {
		if t, ok := cat.TypeOf(d.UUID); ok {
			out = append(out, filterHeading{id: d.UUID, name: d.Name, typ: t})
			seen[d.UUID] = true
		}
	}
	var rest []string
	for id := range cat.FilterTypes {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	for _, id := range rest {
		if t, ok := cat.TypeOf(id); ok {
			out = append(out, filterHeading{id: id, name: id, typ: t})
		}
	}
	return out
}

func printFacets(w io.Writer, cat *model.Catalog, sel model.Selection, all *facet.Set, res *match.Result) {
	fmt.Fprintf(w, "%s %d of %d visible\n\n", cyan("=== Facets ==="), res.VisibleCount, cat.Len())

	for _, h := range filterHeadings(cat) {
		name := h.name
		if name == "" {
			name = h.id
		}
		fmt.Fprintf(w, "%s %s\n", yellow(name), gray(h.typ.String()))

		switch {
		case h.typ == model.RangeFilter:
			lo, hi, ok := visibleBounds(cat, res, h.id)
			if !ok {
				fmt.Fprintf(w, "  %s\n", gray("no visible item"))
				continue
			}
			fmt.Fprintf(w, "  %s..%s\n", model.FormatNumber(lo), model.FormatNumber(hi))
		case h.typ.Enumerable():
			for _, v := range all.Values(h.id) {
				label := v
				if h.typ == model.ColorFilter {
					if c, err := model.ParseColor(v); err == nil {
						// Keys keep the arity of the stored color.
						label = v + " " + gray(c[:strings.Count(v, ",")+1].RGBA())
					}
				}
				count := res.Possible.Count(h.id, v)
				switch {
				case slices.Contains(sel[h.id], v):
					fmt.Fprintf(w, "  %s %s %d\n", green("[x]"), label, count)
				case res.Possible.Enabled(sel, h.id, v):
					fmt.Fprintf(w, "  [ ] %s %d\n", label, count)
				default:
					fmt.Fprintf(w, "  %s\n", gray("[-] "+v))
				}
			}
		default:
			fmt.Fprintf(w, "  %s\n", gray("taxon filter"))
		}
	}
}

func visibleBounds(cat *model.Catalog, res *match.Result, filterID string) (float64, float64, bool) {
	lo, hi := math.Inf(1), math.Inf(-1)
	it := res.Visible.Iterator()
	for it.HasNext() {
		v, ok := cat.Items[it.Next()].Space[filterID]
		if !ok || v.Type != model.RangeFilter {
			continue
		}
		lo = math.Min(lo, v.Min)
		hi = math.Max(hi, v.Max)
	}
	return lo, hi, lo <= hi
}
