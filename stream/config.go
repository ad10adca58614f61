// Package stream wires package alias's promotion protocol and package
// wire's codec into a single streaming compress/decompress API (spec
// §4.7): Compressor.Compress walks a value tree, replaces eligible String
// leaves with Alias lookups, prepends any newly-promoted Define records,
// and optionally runs the finished buffer through a compress.Codec.
// Decompressor mirrors the process on the way back in.
package stream

import (
	"github.com/arloliu/wyre/compress"
	"github.com/arloliu/wyre/internal/options"
)

// Config configures a Compressor/Decompressor pair. MaxCache,
// MaxFutureCache, and ReconsiderEvery are used only by the Compressor: a
// Decompressor has no cache of its own to size and learns every promotion
// from the in-band Define records, so it ignores them. Only Payload must
// match on both sides.
//
// The zero Config is valid: cache tiers fall back to package alias's
// defaults and Payload defaults to no payload compression.
type Config struct {
	MaxCache        int
	MaxFutureCache  int
	ReconsiderEvery int

	// Payload, if non-nil, compresses the finished wire buffer (Compressor)
	// or decompresses it before wire-decoding (Decompressor).
	Payload compress.Codec
}

// WithMaxCache sets the active alias cache's capacity.
func WithMaxCache(n int) options.Option[*Config] {
	return options.NoError(func(c *Config) { c.MaxCache = n })
}

// WithMaxFutureCache sets the future alias cache's capacity.
func WithMaxFutureCache(n int) options.Option[*Config] {
	return options.NoError(func(c *Config) { c.MaxFutureCache = n })
}

// WithReconsiderEvery sets how often (in Lookup calls) the future cache is
// re-ranked for promotion.
func WithReconsiderEvery(n int) options.Option[*Config] {
	return options.NoError(func(c *Config) { c.ReconsiderEvery = n })
}

// WithPayloadCodec sets the codec applied to the finished wire buffer.
func WithPayloadCodec(codec compress.Codec) options.Option[*Config] {
	return options.NoError(func(c *Config) { c.Payload = codec })
}

// NewConfig builds a Config from functional options, following the
// teacher's With*-option construction pattern.
func NewConfig(opts ...options.Option[*Config]) Config {
	cfg := &Config{}
	_ = options.Apply[*Config](cfg, opts...)
	return *cfg
}
