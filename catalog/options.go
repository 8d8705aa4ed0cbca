package catalog

import (
	"github.com/hupe1980/idkey/codec"
)

type options struct {
	codec  codec.Codec
	strict bool
	node   string
}

// Option configures decoding.
type Option func(*options)

// WithCodec sets the codec documents are decoded with. Defaults to codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithStrict turns every validation problem into a decode error and
// additionally requires UUID-formatted item and filter ids.
func WithStrict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// WithNode selects the guide node Parse and sources build the catalog of.
// Defaults to the start node.
func WithNode(uuid string) Option {
	return func(o *options) { o.node = uuid }
}

func applyOptions(optFns []Option) options {
	o := options{codec: codec.Default}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}
