package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/idkey/blobstore"
	"github.com/hupe1980/idkey/codec"
	"github.com/hupe1980/idkey/internal/hash"
)

// PublishOptions configures Publish.
type PublishOptions struct {
	// Prefix is prepended to the object name.
	Prefix string
	// Codec validates the document and is recorded in the pointer.
	Codec codec.Codec
	// Compression of the stored object.
	Compression Compression
	// Strict rejects documents with any validation problem.
	Strict bool
	// Now returns the publish time. Defaults to time.Now.
	Now func() time.Time
	// AttemptID returns the unique part of the object name. Defaults to a
	// random UUID.
	AttemptID func() string
}

// Publish validates a catalog document, writes it as the next version and
// moves the CURRENT pointer to it.
//
// Every attempt writes its own object. When another publisher commits
// first, the object of this attempt is removed and
// blobstore.ErrConcurrentModification is returned. The winner's object is
// never touched.
func Publish(ctx context.Context, store blobstore.Store, pointers blobstore.PointerStore, data []byte, opts PublishOptions) (blobstore.Pointer, error) {
	if opts.Codec == nil {
		opts.Codec = codec.Default
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.AttemptID == nil {
		opts.AttemptID = uuid.NewString
	}
	if opts.Compression == "" {
		opts.Compression = CompressionNone
	}

	plain, err := Decompress(data)
	if err != nil {
		return blobstore.Pointer{}, err
	}
	if _, err := Decode(plain, WithCodec(opts.Codec), WithStrict(opts.Strict)); err != nil {
		return blobstore.Pointer{}, err
	}

	var version uint64
	cur, err := pointers.Current(ctx)
	switch {
	case err == nil:
		version = cur.Version
	case !errors.Is(err, blobstore.ErrNotFound):
		return blobstore.Pointer{}, err
	}

	payload, err := Compress(plain, opts.Compression)
	if err != nil {
		return blobstore.Pointer{}, err
	}

	p := blobstore.Pointer{
		Version:     version + 1,
		Object:      blobstore.ObjectName(opts.Prefix, version+1, opts.AttemptID()) + extension(opts.Compression),
		Codec:       opts.Codec.Name(),
		Compression: string(opts.Compression),
		Checksum:    hash.Sum(payload),
		PublishedAt: opts.Now().UTC(),
	}

	if err := store.Put(ctx, p.Object, payload); err != nil {
		return blobstore.Pointer{}, err
	}
	if err := pointers.Commit(ctx, p); err != nil {
		_ = store.Delete(ctx, p.Object)
		return blobstore.Pointer{}, fmt.Errorf("catalog: publish version %d: %w", p.Version, err)
	}
	return p, nil
}

func extension(c Compression) string {
	switch c {
	case CompressionZSTD:
		return ".zst"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}
