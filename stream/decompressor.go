package stream

import (
	"fmt"

	"github.com/arloliu/wyre/alias"
	"github.com/arloliu/wyre/compress"
	"github.com/arloliu/wyre/value"
	"github.com/arloliu/wyre/wire"
)

// Decompressor is the decode side of the streaming alias-cache compressor.
// It is not safe for concurrent use (spec §5: single-writer ownership).
type Decompressor struct {
	table   *alias.Table
	payload compress.Decompressor
}

// NewDecompressor creates a Decompressor with the given Config. Payload, if
// set, must match the codec the corresponding Compressor was configured
// with.
func NewDecompressor(cfg Config) *Decompressor {
	return &Decompressor{
		table:   alias.NewTable(),
		payload: cfg.Payload,
	}
}

// Decompress reads one logical value from data: any leading
// Special::Define or Special::Forget records are applied to the
// decompressor's alias table (in order, per spec §4.6), and the first
// non-Special::Define/Forget record decoded is returned with its Alias
// nodes resolved against that table. If data holds nothing but
// Define/Forget records (such as a frame from Compressor.Forget), they are
// applied and Special::None is returned.
//
// If the Config carries a Payload codec, data is first decompressed as a
// whole and consumed reports len(data); the payload boundary and the wire
// record boundary are not independently addressable once compressed.
// Otherwise consumed reports exactly the wire bytes read, so a caller
// streaming multiple records from one buffer can slice data[consumed:]
// for the next call.
func (d *Decompressor) Decompress(data []byte) (value.Value, int, error) {
	raw := data
	if d.payload != nil {
		decoded, err := d.payload.Decompress(data)
		if err != nil {
			return value.Value{}, 0, fmt.Errorf("payload decompress: %w", err)
		}
		raw = decoded
	}

	total := 0
	for {
		if total > 0 && total == len(raw) {
			// The frame held only Define/Forget records.
			if d.payload != nil {
				return value.None(), len(data), nil
			}
			return value.None(), total, nil
		}

		v, n, err := wire.Decode(raw[total:])
		if err != nil {
			return value.Value{}, 0, err
		}
		total += n

		if v.Kind() == value.KindSpecial {
			switch v.SpecialTag() {
			case value.SpecialDefine:
				d.table.Define(v.DefineInner())
				continue
			case value.SpecialForget:
				if err := d.table.Forget(v.ForgetID()); err != nil {
					return value.Value{}, 0, err
				}
				continue
			}
		}

		resolved, err := d.resolve(v)
		if err != nil {
			return value.Value{}, 0, err
		}

		if d.payload != nil {
			return resolved, len(data), nil
		}
		return resolved, total, nil
	}
}

// resolve recursively replaces Alias nodes in v with their bound value from
// the decompressor's alias table.
func (d *Decompressor) resolve(v value.Value) (value.Value, error) {
	switch v.Kind() {
	case value.KindAlias:
		return d.table.Resolve(v.AliasID())

	case value.KindArray:
		elems := v.Elems()
		resolved := make([]value.Value, len(elems))
		for i, elem := range elems {
			r, err := d.resolve(elem)
			if err != nil {
				return value.Value{}, err
			}
			resolved[i] = r
		}
		return value.Array(resolved), nil

	case value.KindObject:
		fields := v.Fields()
		resolved := make(map[string]value.Value, len(fields))
		for k, fv := range fields {
			r, err := d.resolve(fv)
			if err != nil {
				return value.Value{}, err
			}
			resolved[k] = r
		}
		return value.Object(resolved), nil

	case value.KindSpecial:
		if v.SpecialTag() == value.SpecialDefine {
			inner, err := d.resolve(v.DefineInner())
			if err != nil {
				return value.Value{}, err
			}
			return value.Define(inner), nil
		}
		return v, nil

	default:
		return v, nil
	}
}
