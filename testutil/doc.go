// Package testutil provides testing utilities for idkey.
//
// This package is intended for use in tests and benchmarks only.
// It generates random but reproducible catalogs and selections.
//
// # Random Catalogs
//
//	rng := testutil.NewRNG(seed)
//	cat := rng.Catalog(testutil.CatalogOptions{Items: 200})
//
// # Random Selections
//
// Selections draw their values from the catalog so that they hit items:
//
//	sel := rng.Selection(cat, 3)
package testutil
