// Package model defines the core domain types of an identification key.
//
// These types are shared across the matching engine, the possible-value
// tracker and the catalog decoders.
//
// Key types:
//   - Item: a node of the key (taxon or group) with its attribute space
//   - FilterType: the closed set of matrix filter kinds
//   - FilterDefinition: a named matrix filter
//   - SpaceValue: one typed entry of an item's space
//   - Selection: the active selection, filter-id -> raw control values
//   - Catalog: an immutable snapshot of items and filter types
package model
