package wire

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/arloliu/wyre/errs"
	"github.com/arloliu/wyre/header"
	"github.com/arloliu/wyre/value"
	"github.com/arloliu/wyre/varint"
)

// Decode reads one value from the front of data, returning the decoded
// value and the number of bytes consumed. Decode never reads past the
// reported consumed count (spec §4.4, §8).
//
// On error the returned consumed length is not meaningful (spec §7): the
// decoder does not attempt partial recovery.
func Decode(data []byte) (value.Value, int, error) {
	return decodeValue(data)
}

func missingBytes(need int) error {
	return fmt.Errorf("need %d more byte(s): %w", need, errs.ErrMissingBytes)
}

func decodeValue(data []byte) (value.Value, int, error) {
	if len(data) < 1 {
		return value.Value{}, 0, missingBytes(1)
	}

	tag, low5 := header.Unpack(data[0])

	switch tag {
	case header.TagSpecial:
		return decodeSpecial(data, low5)
	case header.TagInteger:
		return decodeInteger(data, low5)
	case header.TagFloat:
		return decodeFloat(data, low5)
	case header.TagString:
		return decodeString(data, low5)
	case header.TagArray:
		return decodeArray(data, low5)
	case header.TagObject:
		return decodeObject(data, low5)
	case header.TagAlias:
		return decodeAlias(data, low5)
	default:
		return value.Value{}, 0, fmt.Errorf("tag %d: %w", tag, errs.ErrUnknownDataType)
	}
}

func decodeSpecial(data []byte, low5 uint8) (value.Value, int, error) {
	if low5 > uint8(maxSpecialTag) {
		return value.Value{}, 0, fmt.Errorf("special tag %d: %w", low5, errs.ErrUnknownSpecialType)
	}

	switch specialTag(low5) {
	case specialNone:
		return value.None(), 1, nil
	case specialNull:
		return value.Null(), 1, nil
	case specialDefine:
		inner, n, err := decodeValue(data[1:])
		if err != nil {
			return value.Value{}, 0, err
		}
		return value.Define(inner), 1 + n, nil
	case specialForget:
		id, n, err := varint.Decode(data[1:])
		if err != nil {
			return value.Value{}, 0, err
		}
		return value.Forget(id), 1 + n, nil
	default:
		return value.Value{}, 0, fmt.Errorf("special tag %d: %w", low5, errs.ErrUnknownSpecialType)
	}
}

func decodeInteger(data []byte, low5 uint8) (value.Value, int, error) {
	negative := low5&0x10 != 0
	width := int(low5 & 0x0F)

	if width == 0 {
		return value.Bool(negative), 1, nil
	}

	need := 1 + width
	if len(data) < need {
		return value.Value{}, 0, missingBytes(need - len(data))
	}

	n := decodeLittleEndian(data[1:need])
	if negative {
		return value.Negative(n), need, nil
	}
	return value.Positive(n), need, nil
}

// decodeLittleEndian assembles up to 8 little-endian bytes into a uint64.
// Integer width is forward-compatible per spec §4.4/§9: decoders accept
// any width a future encoder might emit, not just the canonical 1/2/4/8.
func decodeLittleEndian(b []byte) uint64 {
	var n uint64
	for i := len(b) - 1; i >= 0; i-- {
		n = n<<8 | uint64(b[i])
	}
	return n
}

func decodeFloat(data []byte, _ uint8) (value.Value, int, error) {
	const need = 1 + 8
	if len(data) < need {
		return value.Value{}, 0, missingBytes(need - len(data))
	}

	bits := le.Uint64(data[1:need])
	return value.Float(math.Float64frombits(bits)), need, nil
}

// decodeOverflow reads the header's overflow-continuation length/id field
// and returns it along with the total bytes consumed so far (header byte
// plus any appended varint).
func decodeOverflow(data []byte, low5 uint8) (n uint64, consumed int, err error) {
	length, overflowConsumed, err := header.DecodeLength(low5, data[1:])
	if err != nil {
		return 0, 0, err
	}
	return length, 1 + overflowConsumed, nil
}

// boundedEnd validates that a field of n bytes starting at offset fits
// within data, comparing in uint64 arithmetic so an adversarial n up to
// 2^64-1 can never wrap or sign-flip an int-sized end offset (spec §7: a
// malformed length is an error, never a panic).
func boundedEnd(dataLen, offset int, n uint64) (end int, err error) {
	remaining := uint64(dataLen - offset)
	if n > remaining {
		return 0, fmt.Errorf("need %d more byte(s): %w", n-remaining, errs.ErrMissingBytes)
	}
	return offset + int(n), nil
}

func decodeString(data []byte, low5 uint8) (value.Value, int, error) {
	length, offset, err := decodeOverflow(data, low5)
	if err != nil {
		return value.Value{}, 0, err
	}

	end, err := boundedEnd(len(data), offset, length)
	if err != nil {
		return value.Value{}, 0, err
	}

	payload := data[offset:end]
	if !utf8.Valid(payload) {
		return value.Value{}, 0, fmt.Errorf("string payload: %w", errs.ErrBadUTF8)
	}

	return value.String(string(payload)), end, nil
}

func decodeArray(data []byte, low5 uint8) (value.Value, int, error) {
	length, offset, err := decodeOverflow(data, low5)
	if err != nil {
		return value.Value{}, 0, err
	}

	capHint := int(length)
	if remaining := len(data) - offset; capHint > remaining {
		capHint = remaining // defend against pathological headers (spec §5)
	}
	if capHint < 0 {
		capHint = 0
	}

	elems := make([]value.Value, 0, capHint)
	total := offset

	for i := uint64(0); i < length; i++ {
		elem, n, err := decodeValue(data[total:])
		if err != nil {
			return value.Value{}, 0, err
		}
		elems = append(elems, elem)
		total += n
	}

	return value.Array(elems), total, nil
}

func decodeObject(data []byte, low5 uint8) (value.Value, int, error) {
	length, offset, err := decodeOverflow(data, low5)
	if err != nil {
		return value.Value{}, 0, err
	}

	capHint := int(length)
	if remaining := len(data) - offset; capHint > remaining {
		capHint = remaining
	}
	if capHint < 0 {
		capHint = 0
	}

	fields := make(map[string]value.Value, capHint)
	total := offset

	for i := uint64(0); i < length; i++ {
		keyLen, n, err := varint.Decode(data[total:])
		if err != nil {
			return value.Value{}, 0, err
		}
		total += n

		keyEnd, err := boundedEnd(len(data), total, keyLen)
		if err != nil {
			return value.Value{}, 0, err
		}

		keyBytes := data[total:keyEnd]
		if !utf8.Valid(keyBytes) {
			return value.Value{}, 0, fmt.Errorf("object key: %w", errs.ErrBadUTF8)
		}
		key := string(keyBytes)
		total = keyEnd

		if _, dup := fields[key]; dup {
			return value.Value{}, 0, fmt.Errorf("key %q: %w", key, errs.ErrDuplicateKey)
		}

		val, n, err := decodeValue(data[total:])
		if err != nil {
			return value.Value{}, 0, err
		}
		fields[key] = val
		total += n
	}

	return value.Object(fields), total, nil
}

func decodeAlias(data []byte, low5 uint8) (value.Value, int, error) {
	id, consumed, err := decodeOverflow(data, low5)
	if err != nil {
		return value.Value{}, 0, err
	}
	return value.Alias(id), consumed, nil
}
