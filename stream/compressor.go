package stream

import (
	"github.com/arloliu/wyre/alias"
	"github.com/arloliu/wyre/compress"
	"github.com/arloliu/wyre/value"
	"github.com/arloliu/wyre/wire"
)

// Compressor is the encode side of the streaming alias-cache compressor.
// It is not safe for concurrent use (spec §5: single-writer ownership).
type Compressor struct {
	cache   *alias.Cache
	payload compress.Compressor
}

// NewCompressor creates a Compressor with the given Config.
func NewCompressor(cfg Config) *Compressor {
	return &Compressor{
		cache: alias.New(alias.Config{
			MaxCache:        cfg.MaxCache,
			MaxFutureCache:  cfg.MaxFutureCache,
			ReconsiderEvery: cfg.ReconsiderEvery,
		}),
		payload: cfg.Payload,
	}
}

// Compress encodes v, substituting any String leaf the alias cache reports
// a hit for with an Alias record, prepending Special::Define records for
// any strings the lookup promoted to the active cache this call (spec
// §4.6: "encoder and decoder MUST agree on this ordering"). If the Config
// carries a Payload codec, the finished buffer is compressed before
// returning.
func (c *Compressor) Compress(v value.Value) ([]byte, error) {
	var promotions []string
	substituted := c.substitute(v, &promotions)

	enc := wire.NewEncoder()
	defer enc.Reset()

	for _, s := range promotions {
		enc.Encode(value.Define(value.String(s)))
	}
	enc.Encode(substituted)

	buf := append([]byte(nil), enc.Bytes()...)

	if c.payload != nil {
		return c.payload.Compress(buf)
	}
	return buf, nil
}

// Forget evicts id from the active alias cache and returns the wire
// encoding of the Special::Forget record announcing the eviction, for the
// caller to emit on the stream. It reports false if id was not active.
func (c *Compressor) Forget(id uint64) ([]byte, bool) {
	if !c.cache.Forget(id) {
		return nil, false
	}

	enc := wire.NewEncoder()
	defer enc.Reset()
	enc.Encode(value.Forget(id))

	return append([]byte(nil), enc.Bytes()...), true
}

// substitute walks v, replacing eligible String leaves with cache lookups
// and accumulating any strings promoted to the active cache along the way.
// Object keys are never substituted: the wire format encodes them as
// varint-length-prefixed bytes, not as header-tagged values, so they have
// no Alias representation to begin with.
func (c *Compressor) substitute(v value.Value, promotions *[]string) value.Value {
	switch v.Kind() {
	case value.KindString:
		out := c.cache.Lookup(v.Str())
		*promotions = append(*promotions, out.Promotions...)
		if out.Hit {
			return value.Alias(out.AliasID)
		}
		return v

	case value.KindArray:
		elems := v.Elems()
		substituted := make([]value.Value, len(elems))
		for i, elem := range elems {
			substituted[i] = c.substitute(elem, promotions)
		}
		return value.Array(substituted)

	case value.KindObject:
		fields := v.Fields()
		substituted := make(map[string]value.Value, len(fields))
		for k, fv := range fields {
			substituted[k] = c.substitute(fv, promotions)
		}
		return value.Object(substituted)

	case value.KindSpecial:
		if v.SpecialTag() == value.SpecialDefine {
			return value.Define(c.substitute(v.DefineInner(), promotions))
		}
		return v

	default:
		return v
	}
}
