package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIsReproducible(t *testing.T) {
	a := NewRNG(4711).Catalog(CatalogOptions{Items: 20})
	b := NewRNG(4711).Catalog(CatalogOptions{Items: 20})
	assert.Equal(t, a.Items, b.Items)
}

func TestCatalogShape(t *testing.T) {
	cat := NewRNG(1).Catalog(CatalogOptions{Items: 50})
	require.Equal(t, 50, cat.Len())
	assert.Len(t, cat.FilterTypes, 6)

	for _, it := range cat.Items {
		_, hasTaxonEntry := it.Space[TaxonFilterID]
		assert.False(t, hasTaxonEntry, "taxon filters never carry space")
		if it.Taxon != nil {
			assert.Zero(t, len(it.Taxon.NUID)%3)
		}
	}
}

func TestSelectionUsesCatalogFilters(t *testing.T) {
	rng := NewRNG(7)
	cat := rng.Catalog(CatalogOptions{Items: 30})
	for range 20 {
		sel := rng.Selection(cat, 3)
		for id, values := range sel {
			_, ok := cat.FilterTypes[id]
			assert.True(t, ok)
			assert.NotEmpty(t, values)
		}
	}
}

func TestRNGReset(t *testing.T) {
	rng := NewRNG(99)
	first := rng.Intn(1000)
	rng.Reset()
	assert.Equal(t, first, rng.Intn(1000))
	assert.Equal(t, int64(99), rng.Seed())
}
