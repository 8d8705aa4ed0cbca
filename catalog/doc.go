// Package catalog decodes, validates and publishes identification key catalogs.
//
// Two document shapes are understood:
//
//   - a flat catalog: {"items": [...], "matrix_filter_types": {...}, "matrix_filters": [...]}
//   - a nature guide: {"tree": {node_uuid: {"children": [...], ...}}, "start_node_uuid": "..."}
//
// Both decode into a Guide; a flat catalog is a guide with a single node.
// Space entries are typed by the filter type of their filter id. Blobs may be
// zstd or lz4 compressed; the format is detected from the magic bytes.
package catalog
