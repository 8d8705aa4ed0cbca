package blobstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// ErrConcurrentModification is returned when a pointer commit lost a race
// against another publisher.
var ErrConcurrentModification = errors.New("concurrent modification detected")

// Store holds immutable objects by name.
type Store interface {
	// Get returns the full content of an object.
	Get(ctx context.Context, name string) ([]byte, error)
	// Put writes an object atomically.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes an object. Deleting a missing object is not an error.
	Delete(ctx context.Context, name string) error
	// List returns the names of all objects with the prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// CurrentName is the object name of the pointer record.
const CurrentName = "CURRENT"

// Pointer is the CURRENT record of a published catalog.
type Pointer struct {
	// Version increases by one with every commit. The first commit is 1.
	Version uint64 `json:"version"`
	// Object is the name of the catalog object in the Store.
	Object string `json:"object"`
	// Codec is the name of the codec the object was encoded with.
	Codec string `json:"codec,omitempty"`
	// Compression is "none", "zstd" or "lz4".
	Compression string `json:"compression,omitempty"`
	// Checksum of the stored object bytes, e.g. "crc32c:1a2b3c4d".
	Checksum string `json:"checksum,omitempty"`
	// PublishedAt is the commit time.
	PublishedAt time.Time `json:"published_at"`
}

// PointerStore provides compare-and-swap semantics for the CURRENT record.
type PointerStore interface {
	// Current returns the latest committed pointer, or ErrNotFound.
	Current(ctx context.Context) (Pointer, error)
	// Commit stores p. p.Version must be exactly one more than the current
	// version, otherwise ErrConcurrentModification is returned.
	Commit(ctx context.Context, p Pointer) error
}

// ObjectName returns the object name of one publish attempt of a catalog
// version. Racing publishers read the same version, so attempt keeps their
// objects apart.
func ObjectName(prefix string, version uint64, attempt string) string {
	return fmt.Sprintf("%scatalog-%08d-%s.json", prefix, version, attempt)
}
