// Package header packs and unpacks the 1-byte type+length header that
// begins every encoded value (spec §4.3), including the F=5 overflow
// continuation rule shared by String, Array, Object, and Alias headers.
package header

import (
	"github.com/arloliu/wyre/errs"
	"github.com/arloliu/wyre/varint"
)

// Tag is the top 3 bits of a header byte: the data type discriminant.
//
// This mirrors the teacher's small uint8-backed enums
// (format.EncodingType, format.CompressionType) rather than a Go iota
// int, since the value is a wire quantity, not just an in-process
// discriminant.
type Tag uint8

const (
	TagSpecial Tag = iota
	TagInteger
	TagFloat
	TagString
	TagArray
	TagObject
	TagAlias
)

func (t Tag) String() string {
	switch t {
	case TagSpecial:
		return "Special"
	case TagInteger:
		return "Integer"
	case TagFloat:
		return "Float"
	case TagString:
		return "String"
	case TagArray:
		return "Array"
	case TagObject:
		return "Object"
	case TagAlias:
		return "Alias"
	default:
		return "Unknown"
	}
}

const (
	// flagBits is F, the number of low bits in the header reserved for the
	// type-specific payload (spec §4.3).
	flagBits = 5
	// continueBit is the high bit of the F-bit field: set when the length
	// or id overflows into an appended varint.
	continueBit = 1 << (flagBits - 1) // 0x10
	// inlineMax is one past the largest length/id storable directly in the
	// remaining F-1 bits (values 0..15).
	inlineMax = continueBit // 16
	// lowMask isolates the F-1 low bits used for the overflow's low nibble.
	lowMask = continueBit - 1 // 0x0F
)

// Pack combines a Tag and a type-specific 5-bit payload into one header
// byte.
func Pack(tag Tag, low5 uint8) byte {
	return byte(tag)<<flagBits | low5&0x1F
}

// Unpack splits a header byte into its Tag and 5-bit payload.
func Unpack(b byte) (Tag, uint8) {
	return Tag(b >> flagBits), b & 0x1F
}

// ParseTag validates that b names one of the seven known data types.
func ParseTag(b byte) (Tag, error) {
	tag, _ := Unpack(b)
	if tag > TagAlias {
		return 0, errs.ErrUnknownDataType
	}
	return tag, nil
}

// EncodeLength implements the overflow-continuation encoding shared by
// String, Array, Object, and Alias headers: values below inlineMax are
// stored directly in the header's low 4 bits with the continue bit clear;
// larger values set the continue bit, pack the low 4 bits of (n-16) into
// the header, and append a varint carrying the remaining high bits.
func EncodeLength(n uint64) (low5 uint8, overflow []byte) {
	if n < inlineMax {
		return uint8(n), nil
	}

	n -= inlineMax
	low4 := uint8(n & lowMask)

	return low4 | continueBit, varint.Encode(n >> 4)
}

// DecodeLength reverses EncodeLength given the header's low5 field and the
// bytes immediately following the header. It returns the decoded length
// (or id) and how many of the overflow bytes it consumed.
func DecodeLength(low5 uint8, rest []byte) (n uint64, overflowConsumed int, err error) {
	if low5&continueBit == 0 {
		return uint64(low5 & lowMask), 0, nil
	}

	hi, consumed, err := varint.Decode(rest)
	if err != nil {
		return 0, 0, err
	}

	low4 := uint64(low5 & lowMask)

	return (hi<<4 | low4) + inlineMax, consumed, nil
}
