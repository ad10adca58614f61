// Package varint implements the base-offset variable-length unsigned
// integer codec used by the wire format's header overflow continuation and
// by Object entry key lengths.
//
// It is a LEB128-style continuation scheme (the low 7 bits of each byte
// are payload, the high bit set means "more follows") combined with a
// base offset per byte width: the smallest k-byte encoding decodes to
// BASE[k-1] + little_value, where BASE[k] is the cumulative count of all
// strictly-shorter encodings. This makes every representable uint64 have
// exactly one encoding (spec §4.1, §8 non-redundancy law).
package varint

import "github.com/arloliu/wyre/errs"

// maxBytes is the widest a varint can ever be: 10 continuation bytes cover
// every uint64 once the base offsets of the shorter widths are subtracted.
const maxBytes = 10

// limits[k] is the number of distinct values a (k+1)-byte payload can hold
// before the base offset is applied: 2^(7*(k+1)).
var limits = [9]uint64{
	0x80,
	0x4000,
	0x20_0000,
	0x1000_0000,
	0x08_0000_0000,
	0x0400_0000_0000,
	0x0002_0000_0000_0000,
	0x0100_0000_0000_0000,
	0x8000_0000_0000_0000,
}

// base[k] is the cumulative count of all encodings strictly shorter than
// k+1 bytes; base[0] == 0.
var base = func() [10]uint64 {
	var b [10]uint64
	for i, limit := range limits {
		b[i+1] = b[i] + limit
	}
	return b
}()

// Encode returns the non-redundant base-offset varint encoding of n.
func Encode(n uint64) []byte {
	return AppendEncode(nil, n)
}

// AppendEncode appends the varint encoding of n to dst and returns the
// extended slice, avoiding an intermediate allocation on hot encode paths.
func AppendEncode(dst []byte, n uint64) []byte {
	nbBytes := maxBytes
	for k, limit := range limits {
		if n < limit {
			nbBytes = k + 1
			break
		}
		n -= limit
	}

	for i := 0; i < nbBytes-1; i++ {
		dst = append(dst, byte(n&0x7F)|0x80)
		n >>= 7
	}

	return append(dst, byte(n&0x7F))
}

// Decode reads a varint from the front of data, returning the decoded
// value and the number of bytes consumed.
//
// It fails with errs.ErrMissingBytes if data ends while a continuation bit
// is still set, or errs.ErrVarintTooBig if the 10th byte still carries a
// continuation bit.
func Decode(data []byte) (uint64, int, error) {
	var raw uint64

	limit := maxBytes
	if len(data) < limit {
		limit = len(data)
	}

	for i := 0; i < limit; i++ {
		b := data[i]
		raw |= uint64(b&0x7F) << (7 * i)

		if b&0x80 == 0 {
			return raw + base[i], i + 1, nil
		}
	}

	if len(data) >= maxBytes {
		return 0, 0, errs.ErrVarintTooBig
	}

	return 0, 0, errs.ErrMissingBytes
}
