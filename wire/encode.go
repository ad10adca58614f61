package wire

import (
	"math"

	"github.com/arloliu/wyre/endian"
	"github.com/arloliu/wyre/header"
	"github.com/arloliu/wyre/value"
	"github.com/arloliu/wyre/varint"
)

var le = endian.GetLittleEndianEngine()

// Encode returns the wire encoding of v as a freshly allocated slice.
//
// For encoding many values, prefer NewEncoder, which reuses a pooled
// buffer across calls (spec §5: encoder is infallible and performs no I/O).
func Encode(v value.Value) []byte {
	return appendValue(make([]byte, 0, 32), v)
}

// appendValue appends the wire encoding of v to dst and returns the
// extended slice. This is the single recursive encode rule set for every
// data type (spec §4.4).
func appendValue(dst []byte, v value.Value) []byte {
	switch v.Kind() {
	case value.KindSpecial:
		return appendSpecial(dst, v)
	case value.KindInteger:
		return appendInteger(dst, v)
	case value.KindFloat:
		dst = append(dst, header.Pack(header.TagFloat, floatLow5))
		return le.AppendUint64(dst, math.Float64bits(v.Float64()))
	case value.KindString:
		return appendLengthTagged(dst, header.TagString, []byte(v.Str()))
	case value.KindArray:
		return appendArray(dst, v)
	case value.KindObject:
		return appendObject(dst, v)
	case value.KindAlias:
		return appendOverflowID(dst, header.TagAlias, v.AliasID())
	default:
		panic("wire: unknown value kind")
	}
}

// floatLow5 is the low-5-bit payload Float headers always carry (spec §4.3).
const floatLow5 = 8

func appendSpecial(dst []byte, v value.Value) []byte {
	tag := v.SpecialTag()
	switch tag {
	case value.SpecialNone:
		return append(dst, header.Pack(header.TagSpecial, uint8(specialNone)))
	case value.SpecialNull:
		return append(dst, header.Pack(header.TagSpecial, uint8(specialNull)))
	case value.SpecialDefine:
		dst = append(dst, header.Pack(header.TagSpecial, uint8(specialDefine)))
		return appendValue(dst, v.DefineInner())
	case value.SpecialForget:
		dst = append(dst, header.Pack(header.TagSpecial, uint8(specialForget)))
		return varint.AppendEncode(dst, v.ForgetID())
	default:
		panic("wire: unknown special tag")
	}
}

func appendInteger(dst []byte, v value.Value) []byte {
	switch v.IntKind() {
	case value.IntBool:
		sign := uint8(0)
		if v.Bool() {
			sign = 1
		}
		return append(dst, header.Pack(header.TagInteger, sign<<4))
	case value.IntPositive:
		return appendMagnitude(dst, v.Magnitude(), 0)
	case value.IntNegative:
		return appendMagnitude(dst, v.Magnitude(), 1)
	default:
		panic("wire: unknown integer kind")
	}
}

// appendMagnitude picks the canonical minimum byte width for n (1, 2, 4, or
// 8 bytes; spec §4.4 — widths 3/5/6/7 are reserved and never emitted) and
// appends the header plus that many little-endian bytes.
func appendMagnitude(dst []byte, n uint64, sign uint8) []byte {
	w := magnitudeWidth(n)
	dst = append(dst, header.Pack(header.TagInteger, sign<<4|uint8(w)))

	switch w {
	case 1:
		return append(dst, byte(n))
	case 2:
		return le.AppendUint16(dst, uint16(n))
	case 4:
		return le.AppendUint32(dst, uint32(n))
	default:
		return le.AppendUint64(dst, n)
	}
}

func magnitudeWidth(n uint64) int {
	switch {
	case n <= 0xFF:
		return 1
	case n <= 0xFFFF:
		return 2
	case n <= 0xFFFF_FFFF:
		return 4
	default:
		return 8
	}
}

func appendLengthTagged(dst []byte, tag header.Tag, payload []byte) []byte {
	low5, overflow := header.EncodeLength(uint64(len(payload)))
	dst = append(dst, header.Pack(tag, low5))
	dst = append(dst, overflow...)
	return append(dst, payload...)
}

func appendOverflowID(dst []byte, tag header.Tag, id uint64) []byte {
	low5, overflow := header.EncodeLength(id)
	dst = append(dst, header.Pack(tag, low5))
	return append(dst, overflow...)
}

func appendArray(dst []byte, v value.Value) []byte {
	elems := v.Elems()
	low5, overflow := header.EncodeLength(uint64(len(elems)))
	dst = append(dst, header.Pack(header.TagArray, low5))
	dst = append(dst, overflow...)
	for _, e := range elems {
		dst = appendValue(dst, e)
	}
	return dst
}

func appendObject(dst []byte, v value.Value) []byte {
	fields := v.Fields()
	low5, overflow := header.EncodeLength(uint64(len(fields)))
	dst = append(dst, header.Pack(header.TagObject, low5))
	dst = append(dst, overflow...)
	for k, val := range fields {
		dst = varint.AppendEncode(dst, uint64(len(k)))
		dst = append(dst, k...)
		dst = appendValue(dst, val)
	}
	return dst
}
