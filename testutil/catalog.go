package testutil

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hupe1980/idkey/match"
	"github.com/hupe1980/idkey/model"
)

// Filter ids used by generated catalogs.
const (
	RangeFilterID   = "range"
	NumberFilterID  = "number"
	TextFilterID    = "text"
	DescFilterID    = "descriptive"
	ColorFilterID   = "color"
	TaxonFilterID   = "taxon"
	TaxonSourceCoL  = "taxonomy.sources.col"
	TaxonSourceAlgo = "taxonomy.sources.algaebase"
)

// CatalogOptions controls catalog generation.
type CatalogOptions struct {
	// Items is the number of items. Defaults to 100.
	Items int
	// SparseRatio is the probability that an item misses a non-taxon space entry.
	SparseRatio float64
}

var palette = []model.Color{
	{255, 0, 0, 1},
	{0, 255, 0, 1},
	{0, 0, 255, 0.5},
	{0, 0, 0, 0},
	{255, 255, 255},
}

var codes = []string{"hairy", "smooth", "veined", "scaled", "spotted"}

// Catalog generates a catalog covering every filter type.
func (r *RNG) Catalog(opts CatalogOptions) *model.Catalog {
	if opts.Items <= 0 {
		opts.Items = 100
	}

	items := make([]model.Item, opts.Items)
	for i := range items {
		space := model.Space{}
		if !r.Bool(opts.SparseRatio) {
			lo := float64(r.Intn(10))
			space[RangeFilterID] = model.RangeValue(lo, lo+float64(r.Intn(10)))
		}
		if !r.Bool(opts.SparseRatio) {
			space[NumberFilterID] = model.NumberValue(r.numbers()...)
		}
		if !r.Bool(opts.SparseRatio) {
			space[TextFilterID] = model.TextValue(r.codes()...)
		}
		if !r.Bool(opts.SparseRatio) {
			space[DescFilterID] = model.DescriptiveValue(r.codes()...)
		}
		if !r.Bool(opts.SparseRatio) {
			space[ColorFilterID] = model.ColorValue(r.colors()...)
		}

		items[i] = model.Item{
			UUID:  fmt.Sprintf("item-%04d", i),
			Space: space,
			Taxon: r.taxon(),
		}
	}

	types := map[string]model.FilterType{
		RangeFilterID:  model.RangeFilter,
		NumberFilterID: model.NumberFilter,
		TextFilterID:   model.TextOnlyFilter,
		DescFilterID:   model.DescriptiveTextAndImagesFilter,
		ColorFilterID:  model.ColorFilter,
		TaxonFilterID:  model.TaxonFilter,
	}
	return model.NewCatalog(items, types, nil)
}

// Selection draws up to n active filters whose values come from random items.
func (r *RNG) Selection(cat *model.Catalog, n int) model.Selection {
	ids := make([]string, 0, len(cat.FilterTypes))
	for id := range cat.FilterTypes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	sel := model.NewSelection()
	for range n {
		id := ids[r.Intn(len(ids))]
		item := &cat.Items[r.Intn(cat.Len())]

		switch t := cat.FilterTypes[id]; t {
		case model.RangeFilter:
			sel.Set(id, model.FormatNumber(float64(r.Intn(20))))
		case model.TaxonFilter:
			if item.Taxon == nil {
				continue
			}
			ref := *item.Taxon
			ref.NUID = ref.NUID[:3*(1+r.Intn(len(ref.NUID)/3))]
			v, err := match.EncodeTaxonSelection(match.TaxonSelection{Taxa: []model.Taxon{ref}})
			if err != nil {
				panic(err)
			}
			sel.Set(id, v)
		default:
			entry, ok := item.Space[id]
			if !ok {
				continue
			}
			for _, v := range entry.Keys() {
				if r.Bool(0.5) {
					sel.Add(id, v)
				}
			}
		}
	}
	return sel
}

func (r *RNG) numbers() []float64 {
	n := 1 + r.Intn(3)
	out := make([]float64, 0, n)
	for range n {
		out = append(out, float64(r.Intn(8))/2)
	}
	return out
}

func (r *RNG) codes() []string {
	n := 1 + r.Intn(2)
	out := make([]string, 0, n)
	for range n {
		out = append(out, codes[r.Intn(len(codes))])
	}
	return out
}

func (r *RNG) colors() []model.Color {
	n := 1 + r.Intn(2)
	out := make([]model.Color, 0, n)
	for range n {
		out = append(out, palette[r.Intn(len(palette))])
	}
	return out
}

// taxon returns a taxon whose nuid is a chain of 3-digit levels, or nil.
func (r *RNG) taxon() *model.Taxon {
	if r.Bool(0.1) {
		return nil
	}
	depth := 1 + r.Intn(4)
	var b strings.Builder
	for range depth {
		fmt.Fprintf(&b, "%03d", 1+r.Intn(3))
	}
	source := TaxonSourceCoL
	if r.Bool(0.2) {
		source = TaxonSourceAlgo
	}
	return &model.Taxon{Source: source, NUID: b.String()}
}
