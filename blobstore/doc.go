// Package blobstore provides the storage abstraction published catalogs live in.
//
// A Store holds immutable catalog objects by name. A PointerStore holds the
// versioned CURRENT record naming the object readers should load. Publishing
// writes a new object first and then commits the pointer, so readers never
// observe a half-written catalog.
//
// # Built-in Implementations
//
//   - MemoryStore, MemoryPointerStore: in-process, for tests and embedding
//   - LocalStore: local filesystem, reads via mmap
//   - BlobPointerStore: CURRENT kept as an object of any Store
//   - s3.Store, s3.PointerStore: Amazon S3 with DynamoDB conditional commits
//   - minio.Store: MinIO and other S3-compatible storage
//
// Implementations must be safe for concurrent use.
package blobstore
