// Package idkey implements an interactive identification key: a faceted
// matching engine that narrows a catalog of taxa or guide nodes by the
// attributes a user selects.
//
// # Quick Start
//
//	ctx := context.Background()
//	key := idkey.New(idkey.WithPresenter(view))
//	if err := key.Load(ctx, catalog.NewFileSource("./guide.json")); err != nil {
//	    log.Fatal(err)
//	}
//
//	sel := model.NewSelection()
//	sel.Set(legsFilterID, "6")
//	sel.Set(colorFilterID, "255,0,0,1")
//	res, err := key.Apply(ctx, sel)
//
// # Matching
//
// An item is visible when it satisfies every active filter. Within one
// filter, number and text selections must all be present on the item while
// color selections need only one match. Range filters take a single value
// that must lie inside the item's inclusive interval; taxon filters match
// items whose taxon descends from one of the selected reference taxa.
//
// Every pass re-evaluates the whole catalog. The presenter is told about
// items whose visibility changed, the visible count and the values that are
// still attainable by a visible item (the possible-value set).
//
// # States
//
// A Key starts not ready. Loading a catalog resets it to unfiltered, where
// every item is visible. Applying a non-empty selection makes it filtered;
// clearing the last filter resets it.
//
// # Catalog sources
//
// Catalogs are decoded by the catalog package from flat catalog documents or
// nature guide trees and fetched from any blobstore.Store: the local file
// system, S3, or MinIO. Published catalogs are addressed through a CURRENT
// pointer that S3 deployments keep in DynamoDB.
package idkey
